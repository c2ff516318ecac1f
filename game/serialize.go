package game

import (
	"encoding/json"
	"fmt"
)

// Wire format of a saved game, per the external snapshot contract.
type gameRecord struct {
	Ruleset       string       `json:"ruleset"`
	BoardSize     int          `json:"board_size"`
	Komi          *float64     `json:"komi,omitempty"`
	Grid          []string     `json:"grid"`
	History       []moveRecord `json:"history"`
	CurrentPlayer string       `json:"current_player"`
	PassCount     int          `json:"pass_count"`
	Finished      bool         `json:"finished"`
	Winner        *string      `json:"winner"`
}

type moveRecord struct {
	Player string   `json:"player"`
	Move   moveBody `json:"move"`
}

type moveBody struct {
	Type     string    `json:"type"`
	Position *Position `json:"position,omitempty"`
}

// Save serializes the full game record. Load(Save(g)) is field-for-field
// equal to g.
func (g *Game) Save() ([]byte, error) {
	rec := gameRecord{
		Ruleset:       g.rules.ID(),
		BoardSize:     g.size,
		Grid:          make([]string, 0, g.size*g.size),
		History:       make([]moveRecord, 0, len(g.history)),
		CurrentPlayer: g.current.Symbol(),
		PassCount:     g.passes,
		Finished:      g.finished,
	}
	if g.rules.ID() == TerritoryCapture {
		komi := g.komi
		rec.Komi = &komi
	}
	for _, c := range g.board.Cells() {
		rec.Grid = append(rec.Grid, c.Symbol())
	}
	for _, e := range g.history {
		mr := moveRecord{
			Player: e.Player.Symbol(),
			Move:   moveBody{Type: e.Move.Action.String()},
		}
		if e.Move.Action == PlaceAction {
			pos := e.Move.Pos
			mr.Move.Position = &pos
		}
		rec.History = append(rec.History, mr)
	}
	if g.winner != WinnerNone {
		w := g.winner.String()
		rec.Winner = &w
	}
	return json.Marshal(rec)
}

// Load deserializes a saved game. Beyond field validation, the recorded
// history is replayed from the variant's starting grid and must reproduce
// the stored grid, current player, pass counter and outcome exactly; any
// divergence fails with ErrCorruptState and no game is returned.
func Load(data []byte) (*Game, error) {
	var rec gameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if !KnownRuleset(rec.Ruleset) {
		return nil, fmt.Errorf("%w: unknown ruleset %q", ErrCorruptState, rec.Ruleset)
	}
	if rec.BoardSize < MinBoardSize || rec.BoardSize > MaxBoardSize {
		return nil, fmt.Errorf("%w: board size %d out of range", ErrCorruptState, rec.BoardSize)
	}
	komi := 0.0
	if rec.Komi != nil {
		komi = *rec.Komi
	}
	g, err := NewGame(rec.Ruleset, rec.BoardSize, komi)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	want, err := parseGrid(rec.BoardSize, rec.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	for i, mr := range rec.History {
		mover, ok := parseSymbol(mr.Player)
		if !ok || mover == NoPlayer {
			return nil, fmt.Errorf("%w: history[%d] has player %q", ErrCorruptState, i, mr.Player)
		}
		move, err := parseMove(mr.Move, g.size)
		if err != nil {
			return nil, fmt.Errorf("%w: history[%d]: %v", ErrCorruptState, i, err)
		}
		if g.CurrentPlayer() != mover {
			return nil, fmt.Errorf("%w: history[%d] is out of turn", ErrCorruptState, i)
		}
		if err := g.ApplyMove(move); err != nil {
			return nil, fmt.Errorf("%w: history[%d] does not replay: %v", ErrCorruptState, i, err)
		}
	}
	if !g.board.Equal(want) {
		return nil, fmt.Errorf("%w: grid does not match replayed history", ErrCorruptState)
	}
	if g.current.Symbol() != rec.CurrentPlayer {
		return nil, fmt.Errorf("%w: current player %q does not match replayed history", ErrCorruptState, rec.CurrentPlayer)
	}
	if g.passes != rec.PassCount {
		return nil, fmt.Errorf("%w: pass count %d does not match replayed history", ErrCorruptState, rec.PassCount)
	}
	if g.finished != rec.Finished {
		return nil, fmt.Errorf("%w: finished flag does not match replayed history", ErrCorruptState)
	}
	wantWinner := WinnerNone
	if rec.Winner != nil {
		switch *rec.Winner {
		case "a":
			wantWinner = WinnerA
		case "b":
			wantWinner = WinnerB
		case "draw":
			wantWinner = WinnerDraw
		default:
			return nil, fmt.Errorf("%w: winner %q", ErrCorruptState, *rec.Winner)
		}
	}
	if g.winner != wantWinner {
		return nil, fmt.Errorf("%w: winner does not match replayed history", ErrCorruptState)
	}
	return g, nil
}

func parseGrid(size int, symbols []string) (*Board, error) {
	if len(symbols) != size*size {
		return nil, fmt.Errorf("grid has %d cells, want %d", len(symbols), size*size)
	}
	cells := make([]Player, 0, len(symbols))
	for i, s := range symbols {
		c, ok := parseSymbol(s)
		if !ok {
			return nil, fmt.Errorf("grid[%d] has cell %q", i, s)
		}
		cells = append(cells, c)
	}
	return BoardFromCells(size, cells)
}

func parseMove(body moveBody, size int) (Move, error) {
	action, ok := parseActionType(body.Type)
	if !ok {
		return Move{}, fmt.Errorf("unknown move type %q", body.Type)
	}
	if action != PlaceAction {
		return Move{Action: action}, nil
	}
	if body.Position == nil {
		return Move{}, fmt.Errorf("place move without position")
	}
	pos := *body.Position
	if pos.Row < 0 || pos.Row >= size || pos.Col < 0 || pos.Col >= size {
		return Move{}, fmt.Errorf("position %v out of bounds for size %d", pos, size)
	}
	return PlaceMove(pos), nil
}
