package rules

import (
	"testing"

	"github.com/cellwise/nurikabe/internal/board"
	"github.com/cellwise/nurikabe/internal/grid"
)

func TestFillCorrectlySizedWeakGarden(t *testing.T) {
	b, err := board.ParseRows([]string{"3,O,_"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := FillCorrectlySizedWeakGarden{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 0, Col: 2}).State != board.Garden {
		t.Errorf("trailing empty cell = %v, want Garden", b.Cell(grid.Coord{Row: 0, Col: 2}).State)
	}
}

func TestEnsureGardenCanExpandOneRoute(t *testing.T) {
	b, err := board.ParseRows([]string{
		"3,X",
		"_,X",
	})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := EnsureGardenCanExpandOneRoute{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 1, Col: 0}).State != board.Garden {
		t.Errorf("sole escape cell = %v, want Garden", b.Cell(grid.Coord{Row: 1, Col: 0}).State)
	}
}

func TestEnsureGardenCanExpandOneRouteContradictionOnMultiClueGarden(t *testing.T) {
	b, err := board.ParseRows([]string{"1,O,2"})
	if err != nil {
		t.Fatal(err)
	}
	_, contradiction := EnsureGardenCanExpandOneRoute{}.Apply(b)
	if contradiction == nil {
		t.Fatal("expected a contradiction: garden carries two clues")
	}
}

func TestSeparateGardensWithClues(t *testing.T) {
	b, err := board.ParseRows([]string{
		"2,_,3",
	})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := SeparateGardensWithClues{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 0, Col: 1}).State != board.Wall {
		t.Errorf("cell between two incomplete clue gardens = %v, want Wall", b.Cell(grid.Coord{Row: 0, Col: 1}).State)
	}
}

func TestNaivelyUnreachableFromGarden(t *testing.T) {
	// Clue of 2 at (0,0), already sized 1: remaining budget is 1, so
	// only (0,1) is within Manhattan reach; everything past it must wall off.
	b, err := board.ParseRows([]string{"2,_,_,_,_"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := NaivelyUnreachableFromGarden{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	for _, c := range []grid.Coord{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}} {
		if b.Cell(c).State != board.Wall {
			t.Errorf("cell %v = %v, want Wall", c, b.Cell(c).State)
		}
	}
	if b.Cell(grid.Coord{Row: 0, Col: 1}).State != board.Empty {
		t.Errorf("cell (0,1) = %v, want still Empty (within the naive Manhattan budget)", b.Cell(grid.Coord{Row: 0, Col: 1}).State)
	}
}

func TestNaivelyUnreachableFromGardenNoOpWithoutIncompleteGardens(t *testing.T) {
	b, err := board.ParseRows([]string{"_,_,_"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := NaivelyUnreachableFromGarden{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if changes.HasAny() {
		t.Errorf("expected no changes with no clue-bearing gardens, got %v", changes.All())
	}
}

func TestUnreachableFromGarden(t *testing.T) {
	// Clue of 2 at (0,0), already sized 1: remaining budget is 1, so the
	// path search allows MaxLength=2 edges, reaching (0,1) and (0,2) but
	// not (0,3)/(0,4).
	b, err := board.ParseRows([]string{"2,_,_,_,_"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := UnreachableFromGarden{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	for _, c := range []grid.Coord{{Row: 0, Col: 3}, {Row: 0, Col: 4}} {
		if b.Cell(c).State != board.Wall {
			t.Errorf("cell %v = %v, want Wall", c, b.Cell(c).State)
		}
	}
	for _, c := range []grid.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 2}} {
		if b.Cell(c).State != board.Empty {
			t.Errorf("cell %v = %v, want still Empty (within the path budget)", c, b.Cell(c).State)
		}
	}
}

func TestNoIsolatedWallSectionsNaive(t *testing.T) {
	b, err := board.ParseRows([]string{"X,_,X"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := NoIsolatedWallSectionsNaive{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if changes.Len() != 1 {
		t.Fatalf("Changes.Len() = %d, want 1", changes.Len())
	}
	if b.Cell(grid.Coord{Row: 0, Col: 1}).State != board.Wall {
		t.Errorf("bridging cell = %v, want Wall", b.Cell(grid.Coord{Row: 0, Col: 1}).State)
	}
}

func TestNoIsolatedWallSectionsNaiveNoOpWithOneSection(t *testing.T) {
	b, err := board.ParseRows([]string{"X,X,_"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := NoIsolatedWallSectionsNaive{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if changes.HasAny() {
		t.Errorf("expected no change with a single wall section, got %v", changes.All())
	}
}

func TestNoIsolatedWallSections(t *testing.T) {
	b, err := board.ParseRows([]string{"X,_,X"})
	if err != nil {
		t.Fatal(err)
	}
	changes, contradiction := NoIsolatedWallSections{}.Apply(b)
	if contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", contradiction)
	}
	if !changes.HasAny() {
		t.Fatal("expected a change")
	}
	if b.Cell(grid.Coord{Row: 0, Col: 1}).State != board.Wall {
		t.Errorf("bridging cell = %v, want Wall", b.Cell(grid.Coord{Row: 0, Col: 1}).State)
	}
}
