package game

import "fmt"

// Board sizes allowed for every variant.
const (
	MinBoardSize = 8
	MaxBoardSize = 19
)

// Player identifies one of the two sides. NoPlayer doubles as the empty
// cell state on the board.
type Player int8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other side, or NoPlayer for NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

// Symbol returns the wire symbol for a cell state: "empty", "a" or "b".
func (p Player) Symbol() string {
	switch p {
	case PlayerA:
		return "a"
	case PlayerB:
		return "b"
	default:
		return "empty"
	}
}

func parseSymbol(s string) (Player, bool) {
	switch s {
	case "a":
		return PlayerA, true
	case "b":
		return PlayerB, true
	case "empty":
		return NoPlayer, true
	default:
		return NoPlayer, false
	}
}

// Position is an immutable board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos builds a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

type direction struct {
	dr, dc int
}

func (p Position) step(d direction) Position {
	return Position{Row: p.Row + d.dr, Col: p.Col + d.dc}
}

var dirs4 = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var dirs8 = []direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square grid of cell states. Cells are stored row-major in a
// flat slice indexed by row*size+col. Board carries no variant logic.
type Board struct {
	size  int
	cells []Player
}

// NewBoard creates an empty board. Size must be within [MinBoardSize, MaxBoardSize].
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("board size %d out of range [%d,%d]", size, MinBoardSize, MaxBoardSize)
	}
	return &Board{
		size:  size,
		cells: make([]Player, size*size),
	}, nil
}

// BoardFromCells rebuilds a board from a row-major cell sequence.
func BoardFromCells(size int, cells []Player) (*Board, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("expected %d cells, got %d", size*size, len(cells))
	}
	copy(b.cells, cells)
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) index(p Position) int {
	return p.Row*b.size + p.Col
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

func (b *Board) Get(p Position) Player {
	return b.cells[b.index(p)]
}

func (b *Board) Set(p Position, c Player) {
	b.cells[b.index(p)] = c
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p.
func (b *Board) Neighbors4(p Position) []Position {
	return b.neighbors(p, dirs4)
}

// Neighbors8 returns the in-bounds orthogonal and diagonal neighbors of p.
func (b *Board) Neighbors8(p Position) []Position {
	return b.neighbors(p, dirs8)
}

func (b *Board) neighbors(p Position, dirs []direction) []Position {
	res := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		n := p.step(d)
		if b.InBounds(n) {
			res = append(res, n)
		}
	}
	return res
}

// Positions returns every board position exactly once in row-major order.
func (b *Board) Positions() []Position {
	res := make([]Position, 0, b.size*b.size)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			res = append(res, Position{Row: r, Col: c})
		}
	}
	return res
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Cells returns a copy of the row-major cell sequence, the board's compact
// serialized form.
func (b *Board) Cells() []Player {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == NoPlayer {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Player) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i, c := range b.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
