// Package position maintains the floating-point ordering keys used to sort
// sibling items (lists within a board, cards within a list) without renumbering
// every sibling on each insert or move.
package position

import (
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	// Epsilon is the minimum distance between two positions below which they
	// are considered colliding.
	Epsilon = 0.0001

	// MinPosition guards the "drag to top" case: repeated midpoint bisection
	// near zero loses float precision quickly, so anything at or below this
	// value forces a rebalance.
	MinPosition = 0.125

	// RebalanceBase is the position assigned to the first item after a rebalance.
	RebalanceBase = float64(1 << 47)

	// RebalanceStep is the gap between successive items after a rebalance,
	// wide enough for many midpoint inserts before precision runs out.
	RebalanceStep = float64(1 << 14)

	// MaxPosition is the largest accepted ordering key (2^53-1, the biggest
	// integer a float64 represents exactly).
	MaxPosition = float64(1<<53 - 1)
)

var (
	// ErrInvalidPosition is returned for negative or overflowing target positions
	ErrInvalidPosition = errors.New("position: invalid target position")

	// ErrItemNotFound is returned when the moved item is not among the siblings
	ErrItemNotFound = errors.New("position: item not found")
)

// Item pairs an entity identity with its current ordering key
type Item struct {
	ID  uuid.UUID
	Pos float64
}

// DetectCollision reports whether any existing position lies within Epsilon of candidate
func DetectCollision(existing []float64, candidate float64) bool {
	for _, p := range existing {
		if math.Abs(p-candidate) < Epsilon {
			return true
		}
	}
	return false
}

// Rebalance sorts items ascending by current position and reassigns every
// position starting at RebalanceBase with RebalanceStep between neighbours.
// The returned slice is in final order; input order is not modified.
func Rebalance(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	for i := range out {
		out[i].Pos = RebalanceBase + float64(i)*RebalanceStep
	}
	return out
}

// AssignOnCreate resolves the position for a new sibling. When the requested
// position collides with an existing one or falls at or below MinPosition, all
// siblings (including the new item) are rebalanced and the new item's
// rebalanced position is returned alongside the full reassignment; otherwise
// the requested position is accepted as-is with a nil reassignment.
func AssignOnCreate(siblings []Item, newID uuid.UUID, requested float64) (float64, []Item) {
	if !DetectCollision(positionsOf(siblings), requested) && requested > MinPosition {
		return requested, nil
	}

	all := append(append([]Item(nil), siblings...), Item{ID: newID, Pos: requested})
	rebalanced := Rebalance(all)
	return positionFor(rebalanced, newID), rebalanced
}

// Move resolves the position for an existing sibling moved to target. Negative
// or overflowing targets are rejected. A collision with any other sibling, or a
// target below MinPosition, triggers a rebalance of all siblings with the moved
// item placed at target first; the item's rebalanced position is then returned
// alongside the full reassignment.
func Move(siblings []Item, id uuid.UUID, target float64) (float64, []Item, error) {
	if target < 0 || target > MaxPosition {
		return 0, nil, ErrInvalidPosition
	}

	idx := -1
	for i := range siblings {
		if siblings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, nil, ErrItemNotFound
	}

	others := make([]float64, 0, len(siblings)-1)
	for i := range siblings {
		if i != idx {
			others = append(others, siblings[i].Pos)
		}
	}

	if !DetectCollision(others, target) && target >= MinPosition {
		return target, nil, nil
	}

	all := make([]Item, len(siblings))
	copy(all, siblings)
	all[idx].Pos = target
	rebalanced := Rebalance(all)
	return positionFor(rebalanced, id), rebalanced, nil
}

func positionsOf(items []Item) []float64 {
	out := make([]float64, len(items))
	for i := range items {
		out[i] = items[i].Pos
	}
	return out
}

func positionFor(items []Item, id uuid.UUID) float64 {
	for i := range items {
		if items[i].ID == id {
			return items[i].Pos
		}
	}
	return 0
}
