package rules

import "github.com/cellwise/nurikabe/internal/solver"

// All returns every rule in the library. The driver sorts these by Cost()
// itself; the order returned here doesn't matter.
func All() []solver.Rule {
	return []solver.Rule{
		SeparateClues{},
		EnsureGardenCanExpandOneRoute{},
		EnsureNoTwoByTwoWalls{},
		NaivelyUnreachableFromClueCell{},
		NoIsolatedWallSectionsNaive{},
		FillCorrectlySizedWeakGarden{},
		EncloseFullGarden{},
		EnsureGardenWithoutClueCanExpand{},
		EnsureGardenWithClueCanExpand{},
		SeparateGardensWithClues{},
		NaivelyUnreachableFromGarden{},
		UnreachableFromGarden{},
		NoIsolatedWallSections{},
	}
}
