package board

import "github.com/cellwise/nurikabe/internal/grid"

// CellState is the state of one non-fixed cell. Clue is a fourth,
// terminal state reserved for clue cells.
type CellState int

const (
	Empty CellState = iota
	Wall
	Garden
	Clue
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Garden:
		return "Garden"
	case Clue:
		return "Clue"
	default:
		return "Unknown"
	}
}

// Next returns the state following s in the user click cycle
// Empty -> Wall -> Garden -> Empty. Clue is terminal and maps to itself.
func (s CellState) Next() CellState {
	switch s {
	case Empty:
		return Wall
	case Wall:
		return Garden
	case Garden:
		return Empty
	default:
		return s
	}
}

// Cell is one position of the board: its coordinate, its clue value (0 if
// none) and its current state. A cell is Clue iff Clue > 0; that invariant
// is established once at Board construction and never changes afterwards.
type Cell struct {
	Coord grid.Coord
	Clue  int
	State CellState
}

// HasClue reports whether the cell carries a clue.
func (c Cell) HasClue() bool {
	return c.Clue > 0
}
