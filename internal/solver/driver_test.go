package solver

import (
	"context"
	"testing"

	"github.com/cellwise/nurikabe/internal/board"
)

type fixedRule struct {
	name       string
	cost       int
	saturating bool
	triggers   []board.Transition
	apply      func(b *board.Board) (*board.CellChanges, *board.ContradictionError)
	calls      *int
}

func (r fixedRule) Name() string                      { return r.name }
func (r fixedRule) Cost() int                          { return r.cost }
func (r fixedRule) IsSaturating() bool                 { return r.saturating }
func (r fixedRule) Triggers() []board.Transition       { return r.triggers }
func (r fixedRule) Apply(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
	if r.calls != nil {
		*r.calls++
	}
	return r.apply(b)
}

func TestDriverStopsOnContradiction(t *testing.T) {
	b, err := board.ParseRows([]string{"X,X", "X,X"})
	if err != nil {
		t.Fatal(err)
	}
	d := NewDriver(nil)
	result := d.Solve(b)
	if result.Contradiction == nil {
		t.Fatal("expected a contradiction from an all-wall 2x2 block")
	}
}

func TestTriggeredByMatchesObservedTransition(t *testing.T) {
	r := fixedRule{triggers: []board.Transition{{Before: board.Empty, After: board.Wall}}}
	if !triggeredBy(r, []board.Transition{{Before: board.Empty, After: board.Wall}}) {
		t.Error("expected a match on an identical transition")
	}
	if triggeredBy(r, []board.Transition{{Before: board.Empty, After: board.Garden}}) {
		t.Error("expected no match on a different transition")
	}
}

func TestTriggeredByNoTriggersNeverMatches(t *testing.T) {
	r := fixedRule{}
	if triggeredBy(r, []board.Transition{{Before: board.Empty, After: board.Wall}}) {
		t.Error("a rule with no declared triggers should never be retriggered")
	}
}

func TestSortByCostOrdersAscending(t *testing.T) {
	rules := []Rule{
		fixedRule{name: "c", cost: 30},
		fixedRule{name: "a", cost: 10},
		fixedRule{name: "b", cost: 20},
	}
	sortByCost(rules)
	for i := 1; i < len(rules); i++ {
		if rules[i-1].Cost() > rules[i].Cost() {
			t.Fatalf("rules not sorted ascending by cost: %v", rules)
		}
	}
	if rules[0].Name() != "a" {
		t.Errorf("cheapest rule = %q, want %q", rules[0].Name(), "a")
	}
}

func TestDriverRunsRulesInCostOrder(t *testing.T) {
	var order []string
	record := func(name string) func(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
		return func(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
			order = append(order, name)
			return board.NewCellChanges(), nil
		}
	}
	expensive := fixedRule{name: "expensive", cost: 100, apply: record("expensive")}
	cheap := fixedRule{name: "cheap", cost: 1, apply: record("cheap")}
	b, err := board.ParseRows([]string{"1,_"})
	if err != nil {
		t.Fatal(err)
	}
	d := NewDriver([]Rule{expensive, cheap})
	d.Solve(b)
	if len(order) != 2 || order[0] != "cheap" || order[1] != "expensive" {
		t.Errorf("execution order = %v, want [cheap expensive]", order)
	}
}

func TestDriverReturnsChangesMadeByRule(t *testing.T) {
	b, err := board.ParseRows([]string{"_,_,_"})
	if err != nil {
		t.Fatal(err)
	}
	toWall := fixedRule{
		name: "toWall",
		cost: 1,
		apply: func(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
			cc := board.NewCellChanges()
			for _, c := range b.EmptyCells() {
				if c.Col == 0 {
					cc.Add(b.SetCellState(c, board.Wall, "toWall"))
					break
				}
			}
			return cc, nil
		},
	}
	d := NewDriver([]Rule{toWall})
	result := d.Solve(b)
	if result.Contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", result.Contradiction)
	}
	if result.Changes.Len() != 1 {
		t.Errorf("Changes.Len() = %d, want 1", result.Changes.Len())
	}
}

func TestCheckDetectsOversizedGarden(t *testing.T) {
	b, err := board.ParseRows([]string{"1,O"})
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(b); err == nil {
		t.Fatal("expected a contradiction: garden of size 2 exceeds clue value 1")
	}
}

func TestCheckDetectsMultiClueGarden(t *testing.T) {
	b, err := board.ParseRows([]string{"1,O,2"})
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(b); err == nil {
		t.Fatal("expected a contradiction: one garden contains two clues")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	var calls int
	r := fixedRule{
		name:     "loops",
		cost:     1,
		triggers: []board.Transition{{Before: board.Empty, After: board.Wall}},
		calls:    &calls,
		apply: func(b *board.Board) (*board.CellChanges, *board.ContradictionError) {
			cc := board.NewCellChanges()
			for _, c := range b.EmptyCells() {
				cc.Add(b.SetCellState(c, board.Wall, "loops"))
				break
			}
			return cc, nil
		},
	}
	b, err := board.ParseRows([]string{"_,_,_"})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewDriver([]Rule{r})
	result := d.Run(ctx, b)
	if result.Contradiction != nil {
		t.Fatalf("unexpected contradiction: %v", result.Contradiction)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0: an already-cancelled context must stop before the first rule runs", calls)
	}
}

func TestCheckAcceptsCleanBoard(t *testing.T) {
	b, err := board.ParseRows([]string{"1,_,2"})
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(b); err != nil {
		t.Fatalf("unexpected contradiction on a clean board: %v", err)
	}
}
