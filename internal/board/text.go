package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cellwise/nurikabe/internal/grid"
)

// ParseRows builds a Board from spec.md's scenario notation: one string per
// row, comma-separated cells, where "_" is Empty, "X" is Wall, "O" is
// Garden, and a positive integer is a clue of that value. It is meant for
// tests, not for production level loading: the CLI, including its
// --use-solver=false raw-board mode, loads levels through internal/level.
func ParseRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board: no rows")
	}
	var clues []Clue
	nonClueState := make(map[grid.Coord]CellState)
	cols := -1
	for r, row := range rows {
		fields := strings.Split(row, ",")
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("board: ragged row %d: got %d cols, want %d", r, len(fields), cols)
		}
		for c, f := range fields {
			f = strings.TrimSpace(f)
			coord := grid.Coord{Row: r, Col: c}
			switch f {
			case "_":
				nonClueState[coord] = Empty
			case "X":
				nonClueState[coord] = Wall
			case "O":
				nonClueState[coord] = Garden
			default:
				v, err := strconv.Atoi(f)
				if err != nil || v <= 0 {
					return nil, fmt.Errorf("board: bad cell %q at %v", f, coord)
				}
				clues = append(clues, Clue{Coord: coord, Value: v})
			}
		}
	}
	b, err := New(len(rows), cols, clues)
	if err != nil {
		return nil, err
	}
	for coord, state := range nonClueState {
		b.SetCellState(coord, state, "parse")
	}
	b.history = newHistory() // parsing isn't a solver run; start with a clean journal
	return b, nil
}

// Render draws the board using spec.md's scenario notation, one row per
// line, optionally framed with row/col index headers (the CLI's
// --include-grid-numbers toggle).
func (b *Board) Render(includeGridNumbers bool) string {
	var sb strings.Builder
	if includeGridNumbers {
		sb.WriteString("    ")
		for c := 0; c < b.rg.Cols; c++ {
			fmt.Fprintf(&sb, "%2d ", c)
		}
		sb.WriteString("\n")
	}
	for r := 0; r < b.rg.Rows; r++ {
		if includeGridNumbers {
			fmt.Fprintf(&sb, "%2d  ", r)
		}
		for c := 0; c < b.rg.Cols; c++ {
			if c > 0 {
				sb.WriteString(",")
			}
			cell := b.Cell(grid.Coord{Row: r, Col: c})
			sb.WriteString(cellGlyph(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellGlyph(cell Cell) string {
	switch cell.State {
	case Empty:
		return "_"
	case Wall:
		return "X"
	case Garden:
		return "O"
	case Clue:
		return strconv.Itoa(cell.Clue)
	default:
		return "?"
	}
}
