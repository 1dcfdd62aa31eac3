package position

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(positions ...float64) []Item {
	out := make([]Item, len(positions))
	for i, p := range positions {
		out[i] = Item{ID: uuid.New(), Pos: p}
	}
	return out
}

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name      string
		existing  []float64
		candidate float64
		want      bool
	}{
		{"empty set", nil, 100, false},
		{"far from all", []float64{10, 20, 30}, 15, false},
		{"exact match", []float64{10, 20}, 20, true},
		{"within epsilon below", []float64{10.0}, 10.00005, true},
		{"within epsilon above", []float64{10.0}, 9.99995, true},
		{"exactly epsilon apart", []float64{10.0}, 10.0001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCollision(tt.existing, tt.candidate))
		})
	}
}

func TestRebalance_SpacingAndOrder(t *testing.T) {
	in := items(30, 10, 20)
	out := Rebalance(in)

	require.Len(t, out, 3)
	assert.Equal(t, RebalanceBase, out[0].Pos)
	for i := 1; i < len(out); i++ {
		assert.Equal(t, RebalanceStep, out[i].Pos-out[i-1].Pos)
	}

	// Relative order by previous position is preserved: the item that was at
	// 10 comes first, then 20, then 30.
	assert.Equal(t, in[1].ID, out[0].ID)
	assert.Equal(t, in[2].ID, out[1].ID)
	assert.Equal(t, in[0].ID, out[2].ID)
}

func TestRebalance_Idempotent(t *testing.T) {
	once := Rebalance(items(5, 1, 3, 2))
	twice := Rebalance(once)

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.Equal(t, once[i].ID, twice[i].ID)
		assert.Equal(t, once[i].Pos, twice[i].Pos)
	}
}

func TestAssignOnCreate_AcceptsNonCollidingPosition(t *testing.T) {
	siblings := items(10, 20, 30)
	got, rebalanced := AssignOnCreate(siblings, uuid.New(), 25)

	assert.Equal(t, 25.0, got)
	assert.Nil(t, rebalanced)
}

func TestAssignOnCreate_RebalancesOnCollision(t *testing.T) {
	// Spec scenario: positions {10.0, 10.00005}, insert at 10.00002 collides
	// within epsilon and forces a full rebalance.
	siblings := items(10.0, 10.00005)
	newID := uuid.New()

	got, rebalanced := AssignOnCreate(siblings, newID, 10.00002)

	require.Len(t, rebalanced, 3)
	assert.Equal(t, RebalanceBase, rebalanced[0].Pos)
	assert.Equal(t, RebalanceBase+RebalanceStep, rebalanced[1].Pos)
	assert.Equal(t, RebalanceBase+2*RebalanceStep, rebalanced[2].Pos)
	assert.Equal(t, positionFor(rebalanced, newID), got)
}

func TestAssignOnCreate_RebalancesNearZero(t *testing.T) {
	siblings := items(10, 20)
	newID := uuid.New()

	got, rebalanced := AssignOnCreate(siblings, newID, 0.125)

	require.NotNil(t, rebalanced)
	// Requested 0.125 sorts before every sibling, so the new item lands first.
	assert.Equal(t, RebalanceBase, got)
}

func TestMove_RejectsInvalidTargets(t *testing.T) {
	siblings := items(10, 20)

	_, _, err := Move(siblings, siblings[0].ID, -1)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, _, err = Move(siblings, siblings[0].ID, MaxPosition+1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestMove_UnknownItem(t *testing.T) {
	_, _, err := Move(items(10, 20), uuid.New(), 15)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMove_DirectWriteWhenSafe(t *testing.T) {
	siblings := items(10, 20, 30)
	got, rebalanced, err := Move(siblings, siblings[2].ID, 15)

	require.NoError(t, err)
	assert.Equal(t, 15.0, got)
	assert.Nil(t, rebalanced)
}

func TestMove_SelfPositionIsNotACollision(t *testing.T) {
	siblings := items(10, 20)
	// Moving an item onto (almost) its own position only collides against the
	// other siblings.
	got, rebalanced, err := Move(siblings, siblings[0].ID, 10.00001)

	require.NoError(t, err)
	assert.Equal(t, 10.00001, got)
	assert.Nil(t, rebalanced)
}

func TestMove_RebalancesOnCollisionAndLowTarget(t *testing.T) {
	siblings := items(10, 20, 30)
	moved := siblings[2].ID

	got, rebalanced, err := Move(siblings, moved, 10.00005)
	require.NoError(t, err)
	require.Len(t, rebalanced, 3)
	assert.Equal(t, positionFor(rebalanced, moved), got)

	// Target below MinPosition moves the item to the front via rebalance.
	got, rebalanced, err = Move(siblings, moved, 0.1)
	require.NoError(t, err)
	require.NotNil(t, rebalanced)
	assert.Equal(t, RebalanceBase, got)
}
