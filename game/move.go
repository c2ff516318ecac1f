package game

// ActionType represents the kind of move a player can submit.
type ActionType int8

const (
	PlaceAction ActionType = iota
	PassAction
	ResignAction
)

func (a ActionType) String() string {
	switch a {
	case PlaceAction:
		return "place"
	case PassAction:
		return "pass"
	case ResignAction:
		return "resign"
	default:
		return "unknown"
	}
}

func parseActionType(s string) (ActionType, bool) {
	switch s {
	case "place":
		return PlaceAction, true
	case "pass":
		return PassAction, true
	case "resign":
		return ResignAction, true
	default:
		return 0, false
	}
}

// Move is a tagged move variant. Pos is meaningful only for PlaceAction.
// Pass is meaningful only for territory-capture; resign is valid in any
// variant and immediately ends the game.
type Move struct {
	Action ActionType
	Pos    Position
}

// PlaceMove builds a placement at p.
func PlaceMove(p Position) Move {
	return Move{Action: PlaceAction, Pos: p}
}

var (
	PassMove   = Move{Action: PassAction}
	ResignMove = Move{Action: ResignAction}
)
