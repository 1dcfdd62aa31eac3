package position

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Positions spaced well clear of Epsilon and MinPosition so the direct-write
// fast path is the expected outcome.
func safeItems(slots []int) []Item {
	seen := map[int]bool{}
	out := make([]Item, 0, len(slots))
	for _, s := range slots {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, Item{ID: uuid.New(), Pos: float64(s) * 10.0})
	}
	return out
}

func TestProperty_AssignOnCreateKeepsSafeRequests(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("non-colliding requested positions are returned unchanged", prop.ForAll(
		func(slots []int, candidateSlot int) bool {
			siblings := safeItems(slots)
			// Offset by 5 puts the candidate mid-slot, at least 5 away from
			// every sibling and far above MinPosition.
			candidate := float64(candidateSlot)*10.0 + 5.0

			got, rebalanced := AssignOnCreate(siblings, uuid.New(), candidate)
			return got == candidate && rebalanced == nil
		},
		gen.SliceOf(gen.IntRange(1, 1000)),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}

func TestProperty_RebalanceSpacing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("rebalanced positions start at 2^47 spaced exactly 2^14", prop.ForAll(
		func(positions []float64) bool {
			itemsIn := make([]Item, len(positions))
			for i, p := range positions {
				itemsIn[i] = Item{ID: uuid.New(), Pos: p}
			}

			out := Rebalance(itemsIn)
			if len(out) == 0 {
				return true
			}
			if out[0].Pos != RebalanceBase {
				return false
			}
			for i := 1; i < len(out); i++ {
				if out[i].Pos-out[i-1].Pos != RebalanceStep {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 1e15)),
	))

	properties.Property("rebalance is idempotent", prop.ForAll(
		func(positions []float64) bool {
			itemsIn := make([]Item, len(positions))
			for i, p := range positions {
				itemsIn[i] = Item{ID: uuid.New(), Pos: p}
			}

			once := Rebalance(itemsIn)
			twice := Rebalance(once)
			for i := range once {
				if once[i].ID != twice[i].ID || once[i].Pos != twice[i].Pos {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 1e15)),
	))

	properties.TestingRun(t)
}

func TestProperty_MoveRejectsNegativeTargets(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("negative targets always fail", prop.ForAll(
		func(slots []int, target float64) bool {
			siblings := safeItems(slots)
			if len(siblings) == 0 {
				siblings = []Item{{ID: uuid.New(), Pos: 10}}
			}

			_, _, err := Move(siblings, siblings[0].ID, target)
			return err == ErrInvalidPosition
		},
		gen.SliceOf(gen.IntRange(1, 100)),
		gen.Float64Range(-1e12, -1e-9),
	))

	properties.TestingRun(t)
}
