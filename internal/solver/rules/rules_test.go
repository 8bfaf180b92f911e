package rules

import (
	"testing"

	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
)

// TestSeparateCluesScenarioA: an Empty cell orthogonally adjacent to two
// clue cells must become Wall, since it cannot join both gardens.
func TestSeparateCluesScenarioA(t *testing.T) {
	b, err := board.ParseRows([]string{
		"1,_,2",
	})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := SeparateClues{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 0, Col: 1}).State != board.Wall {
		t.Errorf("cell between two clues = %v, want Wall", b.Cell(grid.Coord{Row: 0, Col: 1}).State)
	}
}

// TestEnsureNoTwoByTwoWallsScenarioB: a 2x2 block with 3 walls already
// forces its one Empty cell to Garden.
func TestEnsureNoTwoByTwoWallsScenarioB(t *testing.T) {
	b, err := board.ParseRows([]string{
		"X,X",
		"X,_",
	})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := EnsureNoTwoByTwoWalls{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 1, Col: 1}).State != board.Garden {
		t.Errorf("cell = %v, want Garden", b.Cell(grid.Coord{Row: 1, Col: 1}).State)
	}
}

func TestEnsureNoTwoByTwoWallsContradiction(t *testing.T) {
	b, err := board.ParseRows([]string{
		"X,X",
		"X,X",
	})
	if err != nil {
		t.Fatal(err)
	}
	_, contradiction := EnsureNoTwoByTwoWalls{}.Apply(b)
	if contradiction == nil {
		t.Fatal("expected a contradiction for an all-wall 2x2 block")
	}
}

// TestEncloseFullGardenScenarioC: a garden already at its clue's size
// walls off its remaining empty neighbors.
func TestEncloseFullGardenScenarioC(t *testing.T) {
	b, err := board.ParseRows([]string{
		"2,O,_",
	})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := EncloseFullGarden{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 0, Col: 2}).State != board.Wall {
		t.Errorf("cell past the completed garden = %v, want Wall", b.Cell(grid.Coord{Row: 0, Col: 2}).State)
	}
}

// TestNaivelyUnreachableFromClueCellScenarioD: an empty cell too far from
// every clue to ever join its garden becomes Wall.
func TestNaivelyUnreachableFromClueCellScenarioD(t *testing.T) {
	b, err := board.ParseRows([]string{
		"2,_,_,_,_",
	})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := NaivelyUnreachableFromClueCell{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	far := grid.Coord{Row: 0, Col: 4}
	if b.Cell(far).State != board.Wall {
		t.Errorf("far cell = %v, want Wall", b.Cell(far).State)
	}
	near := grid.Coord{Row: 0, Col: 1}
	if b.Cell(near).State != board.Empty {
		t.Errorf("near cell = %v, want unchanged Empty", b.Cell(near).State)
	}
	if !changes.HasAny() {
		t.Fatal("expected at least one change")
	}
}

func TestAllReturnsThirteenRules(t *testing.T) {
	all := All()
	if len(all) != 13 {
		t.Fatalf("All() returned %d rules, want 13", len(all))
	}
	seen := make(map[string]bool)
	for _, r := range all {
		if seen[r.Name()] {
			t.Errorf("duplicate rule name %q", r.Name())
		}
		seen[r.Name()] = true
	}
}
