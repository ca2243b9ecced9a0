package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(DefaultExploration, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(DefaultExploration, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("unvisited child scores infinity", func(t *testing.T) {
		policy := newUCT(DefaultExploration, 100)

		got := policy.evaluate(0, 0)

		require.True(t, math.IsInf(got, 1),
			"Zero visits should score positive infinity")
	})

	t.Run("zero exploration reduces to the mean reward", func(t *testing.T) {
		policy := newUCT(0, 100)

		require.InDelta(t, 0.5, policy.evaluate(5.0, 10), 0.0001,
			"c=0 should leave only the exploitation term")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		policy1 := newUCT(DefaultExploration, 100)
		policy2 := newUCT(DefaultExploration, 1000)

		score1 := policy1.evaluate(5.0, 10)
		score2 := policy2.evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(DefaultExploration, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(5.0, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(DefaultExploration, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(10.0, 10)

		require.Greater(t, score2, score1,
			"More rewards should increase exploitation term")
	})
}
