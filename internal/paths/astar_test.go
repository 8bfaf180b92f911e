package paths

import (
	"reflect"
	"testing"

	"github.com/cellwise/nurikabe/internal/grid"
)

func TestFindGroupCostScenario(t *testing.T) {
	// spec.md Scenario E: 3x3 empty board, start={(2,0)}, end={(0,0)},
	// other={{(1,1),(1,2)}}. Shortest path [(2,0),(1,0),(0,0)], cost 5:
	// two unit edges plus the other group's size plus one (2+1) charged once
	// when the path becomes adjacent to it at (1,0).
	rg := grid.Range{Rows: 3, Cols: 3}
	start := NewGroup([]grid.Coord{{Row: 2, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	other := NewGroup([]grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}})

	res, err := Find(rg, Request{Start: start, End: end, Other: []Group{other}})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []grid.Coord{{Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v, want %v", res.Path, want)
	}
	if res.Cost != 5 {
		t.Errorf("Cost = %d, want 5", res.Cost)
	}
	if !reflect.DeepEqual(res.Credited, []int{0}) {
		t.Errorf("Credited = %v, want [0]", res.Credited)
	}
}

func TestFindMaxLengthExceeded(t *testing.T) {
	rg := grid.Range{Rows: 3, Cols: 3}
	start := NewGroup([]grid.Coord{{Row: 2, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	other := NewGroup([]grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}})

	_, err := Find(rg, Request{Start: start, End: end, Other: []Group{other}, MaxLength: 4})
	if err == nil {
		t.Fatal("expected NotFoundError, got nil")
	}
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("err = %T, want *NotFoundError", err)
	}
}

func TestFindMaxLengthSufficient(t *testing.T) {
	rg := grid.Range{Rows: 3, Cols: 3}
	start := NewGroup([]grid.Coord{{Row: 2, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	other := NewGroup([]grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}})

	res, err := Find(rg, Request{Start: start, End: end, Other: []Group{other}, MaxLength: 5})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if res.Cost != 5 {
		t.Errorf("Cost = %d, want 5", res.Cost)
	}
}

func TestFindUnreachableEnd(t *testing.T) {
	rg := grid.Range{Rows: 3, Cols: 1}
	start := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 2, Col: 0}})
	offLimits := map[grid.Coord]bool{{Row: 1, Col: 0}: true}

	_, err := Find(rg, Request{Start: start, End: end, OffLimits: offLimits})
	if _, ok := err.(*NotFoundError); !ok {
		t.Fatalf("err = %T, want *NotFoundError", err)
	}
}

func TestFindSetupErrorOtherAdjacentToStart(t *testing.T) {
	rg := grid.Range{Rows: 2, Cols: 2}
	start := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 1, Col: 1}})
	other := NewGroup([]grid.Coord{{Row: 0, Col: 1}})

	_, err := Find(rg, Request{Start: start, End: end, Other: []Group{other}})
	if _, ok := err.(*SetupError); !ok {
		t.Fatalf("err = %T, want *SetupError", err)
	}
}

func TestFindSetupErrorOverlappingOthers(t *testing.T) {
	rg := grid.Range{Rows: 3, Cols: 3}
	start := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 2, Col: 2}})
	a := NewGroup([]grid.Coord{{Row: 1, Col: 1}})
	b := NewGroup([]grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}})

	_, err := Find(rg, Request{Start: start, End: end, Other: []Group{a, b}})
	if _, ok := err.(*SetupError); !ok {
		t.Fatalf("err = %T, want *SetupError", err)
	}
}

func TestFindSetupErrorStartOffLimits(t *testing.T) {
	rg := grid.Range{Rows: 2, Cols: 2}
	start := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 1, Col: 1}})
	offLimits := map[grid.Coord]bool{{Row: 0, Col: 0}: true}

	_, err := Find(rg, Request{Start: start, End: end, OffLimits: offLimits})
	if _, ok := err.(*SetupError); !ok {
		t.Fatalf("err = %T, want *SetupError", err)
	}
}

func TestFindDirectAdjacentNoOtherGroups(t *testing.T) {
	rg := grid.Range{Rows: 2, Cols: 2}
	start := NewGroup([]grid.Coord{{Row: 0, Col: 0}})
	end := NewGroup([]grid.Coord{{Row: 0, Col: 1}})

	res, err := Find(rg, Request{Start: start, End: end})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if res.Cost != 1 {
		t.Errorf("Cost = %d, want 1", res.Cost)
	}
	if len(res.Credited) != 0 {
		t.Errorf("Credited = %v, want empty", res.Credited)
	}
}
