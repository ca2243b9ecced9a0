package main

import (
	"fmt"
	"os"
	"time"

	"picker/experiments"
	"picker/problem"
	"picker/searcher"
	"picker/selection"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var demoPool = []selection.Item{
	{Name: "compass", Value: 9, Weight: 1},
	{Name: "rope", Value: 6, Weight: 4},
	{Name: "lantern", Value: 7, Weight: 3},
	{Name: "tent", Value: 8, Weight: 7},
	{Name: "rations", Value: 5, Weight: 2},
	{Name: "map", Value: 10, Weight: 1},
	{Name: "axe", Value: 4, Weight: 5},
	{Name: "flint", Value: 3, Weight: 1},
}

var (
	flagIterations  int
	flagDuration    time.Duration
	flagExploration float64
	flagSeed        uint64
	flagBudget      int
	flagCapacity    float64
	flagVerbose     bool
)

func main() {
	root := &cobra.Command{
		Use:   "picker",
		Short: "Monte-Carlo tree search over combinatorial selection problems",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	pick := &cobra.Command{
		Use:   "pick",
		Short: "Search the demo pool and print the committed selection",
		RunE:  runPick,
	}
	pick.Flags().IntVar(&flagIterations, "iterations", 500, "search iterations per decision")
	pick.Flags().DurationVar(&flagDuration, "duration", 0, "wall-clock budget per decision (overrides --iterations)")
	pick.Flags().Float64Var(&flagExploration, "c", searcher.DefaultExploration, "UCT exploration constant")
	pick.Flags().Uint64Var(&flagSeed, "seed", 1, "random seed")
	pick.Flags().IntVar(&flagBudget, "budget", 3, "number of items to pick")
	pick.Flags().Float64Var(&flagCapacity, "capacity", 0, "weight capacity (0 disables the feasibility penalty)")

	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Run the exploration sweep and store CSV records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return experiments.RunExplorationSweep()
		},
	}

	root.AddCommand(pick, sweep)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runPick makes one real-world decision per committed pick: a fresh tree
// is built from the current state, the robust child is committed, and
// the next search starts from the resulting state.
func runPick(cmd *cobra.Command, args []string) error {
	objective := selection.Objective(selection.TotalValue)
	if flagCapacity > 0 {
		objective = selection.CappedValue(flagCapacity)
	}
	state, err := selection.New(demoPool, flagBudget, objective)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(flagSeed))

	var current problem.State = state
	step := 0
	for !current.IsTerminal() {
		options := []searcher.Option{
			searcher.WithExploration(flagExploration),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		}
		if flagDuration > 0 {
			options = append(options, searcher.WithDuration(flagDuration))
		} else {
			options = append(options, searcher.WithIterations(flagIterations))
		}

		m, err := searcher.New(current, options...)
		if err != nil {
			return err
		}
		if err := m.Run(); err != nil {
			return err
		}
		action, err := m.BestAction()
		if err != nil {
			return err
		}

		step++
		metric := m.Metrics()
		log.Info().
			Int("step", step).
			Stringer("pick", action).
			Int("iterations", metric.Iterations).
			Dur("duration", metric.Duration).
			Msg("committed pick")

		current = current.Apply(action)
	}

	for _, item := range current.(*selection.State).Picked() {
		fmt.Printf("picked %s (value %.1f, weight %.1f)\n", item.Name, item.Value, item.Weight)
	}
	fmt.Printf("objective value: %.1f\n", current.Reward())
	return nil
}
