package searcher

import (
	"time"

	"picker/problem"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultRolloutDepth guards against problems whose transitions never
// reach a terminal state.
const DefaultRolloutDepth = 10000

// RolloutPolicy chooses the action to play at each rollout step. The
// legal slice is never empty.
type RolloutPolicy func(state problem.State, legal []problem.Action, rng *rand.Rand) problem.Action

// UniformRollout picks uniformly among the legal actions.
func UniformRollout(_ problem.State, legal []problem.Action, rng *rand.Rand) problem.Action {
	return legal[rng.Intn(len(legal))]
}

// ExpansionPolicy chooses which untried action to expand next, returning
// an index into untried. The untried slice is never empty.
type ExpansionPolicy func(untried []problem.Action, rng *rand.Rand) int

// FirstExpansion expands untried actions in enumeration order.
func FirstExpansion([]problem.Action, *rand.Rand) int {
	return 0
}

// RandomExpansion expands a uniformly random untried action.
func RandomExpansion(untried []problem.Action, rng *rand.Rand) int {
	return rng.Intn(len(untried))
}

type Option func(m *MCTS)

// WithIterations sets a fixed iteration count as the stopping condition.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		m.iterations = iterations
	}
}

// WithDuration sets a wall-clock budget as the stopping condition. The
// budget is checked between iterations only; an iteration always
// completes once started.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

// WithExploration sets the UCT exploration constant c.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

// WithSeed seeds the driver's random source. A fixed seed yields a
// fully reproducible sequence of iterations.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the driver's random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithRolloutPolicy replaces the uniform random rollout policy.
func WithRolloutPolicy(policy RolloutPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

// WithRolloutDepth sets the rollout non-termination guard.
func WithRolloutDepth(depth int) Option {
	return func(m *MCTS) {
		m.maxDepth = depth
	}
}

// WithExpansion replaces the in-order expansion policy.
func WithExpansion(policy ExpansionPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.expansion = policy
		}
	}
}

// WithMetrics collects per-search metrics instead of discarding them.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// MCTS owns one search tree rooted at the state a decision is to be made
// from. It is fully sequential: one iteration always completes before
// the next begins, and only the driver mutates the tree.
type MCTS struct {
	root        *node
	exploration float64
	iterations  int
	duration    time.Duration
	maxDepth    int
	rng         *rand.Rand
	rollout     RolloutPolicy
	expansion   ExpansionPolicy
	metrics     Collector
	completed   int
	summary     SearchMetrics
}

// New builds a driver for one search episode from root.
func New(root problem.State, options ...Option) (*MCTS, error) {
	if root == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "root state must not be nil")
	}

	m := &MCTS{ // Default values
		root:        newNode(nil, nil, root),
		exploration: DefaultExploration,
		maxDepth:    DefaultRolloutDepth,
		rollout:     UniformRollout,
		expansion:   FirstExpansion,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}

	if m.exploration < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "exploration constant %v is negative", m.exploration)
	}
	if m.maxDepth <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "rollout depth guard %d is not positive", m.maxDepth)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m, nil
}

// Run executes iterations of selection, expansion, rollout, and
// backpropagation until the iteration count or the time budget elapses.
func (m *MCTS) Run() error {
	if m.iterations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "iteration count %d is not positive", m.iterations)
	}
	if m.duration < 0 {
		return errors.Wrapf(ErrInvalidConfig, "time budget %v is not positive", m.duration)
	}
	if m.iterations == 0 && m.duration == 0 {
		return errors.Wrap(ErrInvalidConfig, "must specify search iterations or duration")
	}

	m.metrics.Start()
	var err error
	if m.iterations > 0 {
		err = m.iterate()
	} else {
		err = m.countdown()
	}
	if err != nil {
		return err
	}

	m.summary = m.metrics.Complete()
	log.Debug().
		Int("iterations", m.completed).
		Dur("duration", m.summary.Duration).
		Msg("search complete")
	return nil
}

func (m *MCTS) iterate() error {
	for i := 0; i < m.iterations; i++ {
		if err := m.simulate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MCTS) countdown() error {
	start := time.Now()
	for time.Since(start) < m.duration {
		if err := m.simulate(); err != nil {
			return err
		}
	}
	return nil
}

// simulate runs one iteration of the four-phase loop.
func (m *MCTS) simulate() error {
	current := m.selectNode()

	if !current.terminal() {
		child, err := current.expand(m.expansion(current.untried, m.rng))
		if err != nil {
			return err
		}
		current = child
	}

	reward, err := m.rolloutFrom(current.state)
	if err != nil {
		return err
	}

	current.backup(reward)
	m.completed++
	m.metrics.AddIteration()
	return nil
}

// selectNode descends from the root by UCT until it reaches a node that
// is terminal or still has untried actions.
func (m *MCTS) selectNode() *node {
	current := m.root
	for !current.terminal() && current.fullyExpanded() {
		current = current.selectChild(m.exploration)
	}
	return current
}

// rolloutFrom plays the rollout policy to a terminal state and returns
// its reward. Rollout states are transient; the tree is never mutated.
func (m *MCTS) rolloutFrom(state problem.State) (float64, error) {
	depth := 0
	for !state.IsTerminal() {
		if depth >= m.maxDepth {
			return 0, errors.Wrapf(ErrRolloutDepth, "after %d transitions", depth)
		}
		legal := state.LegalActions()
		state = state.Apply(m.rollout(state, legal, m.rng))
		depth++
	}

	reward := state.Reward()
	m.metrics.AddRollout(depth, reward)
	return reward, nil
}

// BestAction recommends the root action per the robust child rule.
func (m *MCTS) BestAction() (problem.Action, error) {
	best, err := m.root.robustChild()
	if err != nil {
		return nil, err
	}
	return best.action, nil
}

// Policy returns the root children's visit counts normalized to a
// probability distribution over actions. Empty before any iteration.
func (m *MCTS) Policy() map[problem.Action]float64 {
	policy := make(map[problem.Action]float64, len(m.root.children))

	total := 0
	for _, child := range m.root.children {
		total += child.visits
	}
	if total == 0 {
		return policy
	}

	for _, child := range m.root.children {
		policy[child.action] = float64(child.visits) / float64(total)
	}
	return policy
}

// Metrics reports the summary of the last completed Run. Zero unless
// the driver was built with WithMetrics.
func (m *MCTS) Metrics() SearchMetrics {
	return m.summary
}
