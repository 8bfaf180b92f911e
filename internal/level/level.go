// Package level parses the YAML level-source format SPEC_FULL.md
// concretizes spec.md's abstract "rectangular 2-D array of optional
// positive integers" into, grounded on OpenTowerMUD's YAML-tagged config
// structs (internal/config, internal/logger/config.go).
package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
)

// ErrBadLevelSetup is returned when a level file is malformed: unreadable,
// invalid YAML, non-positive dimensions, a non-positive clue value, or a
// clue placed out of range.
type ErrBadLevelSetup struct {
	Reason string
}

func (e *ErrBadLevelSetup) Error() string {
	return fmt.Sprintf("bad level setup: %s", e.Reason)
}

// clueSpec is one clue entry in the YAML document.
type clueSpec struct {
	Row   int `yaml:"row"`
	Col   int `yaml:"col"`
	Value int `yaml:"value"`
}

// document is the top-level YAML shape.
type document struct {
	Rows  int        `yaml:"rows"`
	Cols  int        `yaml:"cols"`
	Clues []clueSpec `yaml:"clues"`
}

// Level is a parsed level source: dimensions plus clue placements. Parse
// checks dimensions, clue values and clue bounds; clue adjacency is only
// checked when Board builds the board.
type Level struct {
	Rows  int
	Cols  int
	Clues []board.Clue
}

// Load reads and parses a YAML level file from path.
func Load(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, &ErrBadLevelSetup{Reason: fmt.Sprintf("reading %s: %v", path, err)}
	}
	return Parse(data)
}

// Parse parses a YAML level document from data.
func Parse(data []byte) (Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Level{}, &ErrBadLevelSetup{Reason: fmt.Sprintf("invalid yaml: %v", err)}
	}
	if doc.Rows <= 0 || doc.Cols <= 0 {
		return Level{}, &ErrBadLevelSetup{Reason: fmt.Sprintf("non-positive dimensions %dx%d", doc.Rows, doc.Cols)}
	}

	clues := make([]board.Clue, 0, len(doc.Clues))
	for _, cs := range doc.Clues {
		if cs.Value <= 0 {
			return Level{}, &ErrBadLevelSetup{Reason: fmt.Sprintf("clue at (%d,%d) has non-positive value %d", cs.Row, cs.Col, cs.Value)}
		}
		if cs.Row < 0 || cs.Row >= doc.Rows || cs.Col < 0 || cs.Col >= doc.Cols {
			return Level{}, &ErrBadLevelSetup{Reason: fmt.Sprintf("clue at (%d,%d) out of %dx%d bounds", cs.Row, cs.Col, doc.Rows, doc.Cols)}
		}
		clues = append(clues, board.Clue{Coord: grid.Coord{Row: cs.Row, Col: cs.Col}, Value: cs.Value})
	}

	return Level{Rows: doc.Rows, Cols: doc.Cols, Clues: clues}, nil
}

// Board builds a *board.Board from the level, surfacing
// board.ErrAdjacentClues if two clues are orthogonally adjacent.
func (l Level) Board() (*board.Board, error) {
	return board.New(l.Rows, l.Cols, l.Clues)
}
