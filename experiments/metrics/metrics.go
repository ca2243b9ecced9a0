package metrics

import "time"

// SweepConfig identifies one searcher configuration in a sweep.
type SweepConfig struct {
	ID          int
	Exploration float64
	Iterations  int
	Seed        uint64
}

// RunRecord captures the quality of the selection one config committed.
type RunRecord struct {
	Config   int // SweepConfig.ID
	Run      int
	Value    float64
	Optimum  float64
	Regret   float64
	Duration time.Duration
}
