package searcher

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// SearchMetrics summarizes one completed search.
type SearchMetrics struct {
	StartTime         time.Time
	Duration          time.Duration
	Iterations        int
	Rollouts          int
	MeanRolloutDepth  float64
	MeanRolloutReward float64
}

type Collector interface {
	Start()
	AddIteration()
	AddRollout(depth int, reward float64)
	Complete() SearchMetrics
}

type collector struct {
	startTime  time.Time
	iterations int
	depths     []float64
	rewards    []float64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) AddRollout(depth int, reward float64) {
	c.depths = append(c.depths, float64(depth))
	c.rewards = append(c.rewards, reward)
}

func (c *collector) Complete() SearchMetrics {
	m := SearchMetrics{
		StartTime:  c.startTime,
		Duration:   time.Since(c.startTime),
		Iterations: c.iterations,
		Rollouts:   len(c.depths),
	}
	if len(c.depths) > 0 {
		m.MeanRolloutDepth = stat.Mean(c.depths, nil)
		m.MeanRolloutReward = stat.Mean(c.rewards, nil)
	}
	return m
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                  {}
func (dummyCollector) AddIteration()           {}
func (dummyCollector) AddRollout(int, float64) {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
