package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var pool = []Item{
	{Name: "alpha", Value: 5, Weight: 2},
	{Name: "beta", Value: 3, Weight: 1},
	{Name: "gamma", Value: 8, Weight: 4},
}

func TestNew(t *testing.T) {
	t.Run("rejects negative budget", func(t *testing.T) {
		state, err := New(pool, -1, TotalValue)

		require.Nil(t, state)
		require.Error(t, err)
	})

	t.Run("rejects nil objective", func(t *testing.T) {
		state, err := New(pool, 1, nil)

		require.Nil(t, state)
		require.Error(t, err)
	})

	t.Run("starts with the full pool remaining", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)

		require.NoError(t, err)
		require.Len(t, state.LegalActions(), 3)
		require.Empty(t, state.Picked())
		require.Equal(t, 2, state.Budget())
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("enumerates remaining candidates in pool order", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)
		require.NoError(t, err)

		actions := state.LegalActions()

		require.Len(t, actions, 3)
		require.Equal(t, "alpha", actions[0].String())
		require.Equal(t, "beta", actions[1].String())
		require.Equal(t, "gamma", actions[2].String())
	})

	t.Run("empty with no budget", func(t *testing.T) {
		state, err := New(pool, 0, TotalValue)
		require.NoError(t, err)

		require.Empty(t, state.LegalActions(),
			"A terminal state has no legal actions")
	})

	t.Run("shrinks as candidates are picked", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)
		require.NoError(t, err)

		next := state.Apply(state.LegalActions()[1])

		actions := next.LegalActions()
		require.Len(t, actions, 2)
		require.Equal(t, "alpha", actions[0].String())
		require.Equal(t, "gamma", actions[1].String())
	})
}

func TestApply(t *testing.T) {
	t.Run("moves the candidate into the selection", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)
		require.NoError(t, err)

		next := state.Apply(Pick{Index: 2, Item: pool[2]}).(*State)

		require.Equal(t, []Item{pool[2]}, next.Picked())
		require.Equal(t, 1, next.Budget())
		require.Len(t, next.LegalActions(), 2)
	})

	t.Run("returns a new state and leaves the original untouched", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)
		require.NoError(t, err)

		state.Apply(Pick{Index: 0, Item: pool[0]})

		require.Empty(t, state.Picked(), "Apply must not mutate the receiver")
		require.Equal(t, 2, state.Budget())
		require.Len(t, state.LegalActions(), 3)
	})

	t.Run("panics on a candidate outside the remaining pool", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)
		require.NoError(t, err)
		next := state.Apply(Pick{Index: 0, Item: pool[0]})

		require.Panics(t, func() {
			next.Apply(Pick{Index: 0, Item: pool[0]})
		}, "Picking the same candidate twice violates the transition contract")
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("terminal when the budget is spent", func(t *testing.T) {
		state, err := New(pool, 1, TotalValue)
		require.NoError(t, err)

		next := state.Apply(state.LegalActions()[0])

		require.False(t, state.IsTerminal())
		require.True(t, next.IsTerminal())
	})

	t.Run("terminal when the pool empties before the budget", func(t *testing.T) {
		state, err := New(pool[:1], 5, TotalValue)
		require.NoError(t, err)

		next := state.Apply(state.LegalActions()[0])

		require.True(t, next.IsTerminal())
	})

	t.Run("terminal immediately with budget zero", func(t *testing.T) {
		state, err := New(pool, 0, TotalValue)
		require.NoError(t, err)

		require.True(t, state.IsTerminal())
	})
}

func TestReward(t *testing.T) {
	t.Run("evaluates the objective over the picked items", func(t *testing.T) {
		state, err := New(pool, 2, TotalValue)
		require.NoError(t, err)

		next := state.
			Apply(Pick{Index: 0, Item: pool[0]}).
			Apply(Pick{Index: 2, Item: pool[2]})

		require.InDelta(t, 13.0, next.Reward(), 1e-9)
	})
}

func TestObjectives(t *testing.T) {
	t.Run("TotalValue sums picked values", func(t *testing.T) {
		require.InDelta(t, 16.0, TotalValue(pool), 1e-9)
		require.Zero(t, TotalValue(nil), "An empty selection is worth nothing")
	})

	t.Run("CappedValue keeps feasible selections", func(t *testing.T) {
		objective := CappedValue(3)

		require.InDelta(t, 8.0, objective(pool[:2]), 1e-9,
			"Weight 3 fits capacity 3")
	})

	t.Run("CappedValue zeroes infeasible selections", func(t *testing.T) {
		objective := CappedValue(3)

		require.Zero(t, objective(pool),
			"Weight 7 exceeds capacity 3 and scores as worthless")
	})
}

func TestPicked(t *testing.T) {
	state, err := New(pool, 3, TotalValue)
	require.NoError(t, err)

	next := state.
		Apply(Pick{Index: 2, Item: pool[2]}).
		Apply(Pick{Index: 0, Item: pool[0]})

	require.Equal(t, []Item{pool[2], pool[0]}, next.(*State).Picked(),
		"Picked should preserve pick order")
}
