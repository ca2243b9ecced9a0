package experiments

import (
	"math"
	"sort"
	"time"

	"picker/experiments/metrics"
	"picker/problem"
	"picker/searcher"
	"picker/selection"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

const NumRuns = 20 // Per sweep config

// A fixed instance with a known optimum so regret is measurable.
var sweepPool = []selection.Item{
	{Name: "ant", Value: 4, Weight: 2},
	{Name: "bee", Value: 9, Weight: 5},
	{Name: "cat", Value: 1, Weight: 1},
	{Name: "dog", Value: 7, Weight: 4},
	{Name: "eel", Value: 3, Weight: 2},
	{Name: "fox", Value: 8, Weight: 3},
	{Name: "gnu", Value: 2, Weight: 1},
	{Name: "hen", Value: 6, Weight: 3},
	{Name: "ibex", Value: 5, Weight: 2},
	{Name: "jay", Value: 10, Weight: 6},
}

const sweepBudget = 3

var sweepConfigs = []metrics.SweepConfig{
	{ID: 1, Exploration: 0, Iterations: 200},
	{ID: 2, Exploration: 0.5, Iterations: 200},
	{ID: 3, Exploration: math.Sqrt2, Iterations: 200},
	{ID: 4, Exploration: 2, Iterations: 200},
	{ID: 5, Exploration: math.Sqrt2, Iterations: 50},
	{ID: 6, Exploration: math.Sqrt2, Iterations: 800},
}

// RunExplorationSweep measures how the exploration constant and the
// iteration budget trade off against selection quality on the fixed
// instance, and stores the results as CSV.
func RunExplorationSweep() error {
	optimum := bestPossible(sweepPool, sweepBudget)

	log.Info().Msg("starting exploration sweep...")
	records := []metrics.RunRecord{}
	for ci, config := range sweepConfigs {
		log.Info().Msgf("sweeping config %d of %d: %+v...", ci+1, len(sweepConfigs), config)

		for run := 0; run < NumRuns; run++ {
			seed := config.Seed + uint64(run) + 1
			start := time.Now()
			value, err := commitSelection(config, seed)
			if err != nil {
				return err
			}
			records = append(records, metrics.RunRecord{
				Config:   config.ID,
				Run:      run + 1,
				Value:    value,
				Optimum:  optimum,
				Regret:   optimum - value,
				Duration: time.Since(start),
			})
		}
	}
	log.Info().Msg("completed exploration sweep")

	writer, err := metrics.NewWriter("exploration")
	if err != nil {
		return err
	}
	if err := writer.WriteSweepConfigs(sweepConfigs); err != nil {
		return err
	}
	log.Info().Msg("stored sweep configs")

	if err := writer.WriteRunRecords(records); err != nil {
		return err
	}
	log.Info().Msg("stored run records")
	return nil
}

// commitSelection runs the full decision loop: a fresh tree per pick,
// committing the robust child each time, until the selection completes.
func commitSelection(config metrics.SweepConfig, seed uint64) (float64, error) {
	state, err := selection.New(sweepPool, sweepBudget, selection.TotalValue)
	if err != nil {
		return 0, err
	}

	// One random source across the whole run keeps it reproducible
	rng := rand.New(rand.NewSource(seed))

	var current problem.State = state
	for !current.IsTerminal() {
		m, err := searcher.New(current,
			searcher.WithIterations(config.Iterations),
			searcher.WithExploration(config.Exploration),
			searcher.WithRand(rng))
		if err != nil {
			return 0, err
		}
		if err := m.Run(); err != nil {
			return 0, err
		}
		action, err := m.BestAction()
		if err != nil {
			return 0, err
		}
		current = current.Apply(action)
	}
	return current.Reward(), nil
}

// bestPossible is the exhaustive optimum under TotalValue: the budget
// highest-valued candidates.
func bestPossible(pool []selection.Item, budget int) float64 {
	values := make([]float64, len(pool))
	for i, item := range pool {
		values[i] = item.Value
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	if budget > len(values) {
		budget = len(values)
	}
	return floats.Sum(values[:budget])
}
