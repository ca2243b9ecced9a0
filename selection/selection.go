package selection

import (
	"fmt"

	"picker/problem"

	"github.com/pkg/errors"
)

// Item is one candidate in the selection pool.
type Item struct {
	Name   string
	Value  float64
	Weight float64
}

// Objective scores a completed selection.
type Objective func(picked []Item) float64

// Pick is the action of adding one candidate to the selection.
type Pick struct {
	Index int
	Item  Item
}

func (p Pick) String() string {
	return p.Item.Name
}

// State is a partial selection of items from a fixed candidate pool
// under a pick budget: the items picked so far, the candidates still
// available, and the number of picks remaining.
type State struct {
	pool      []Item
	picked    []int
	remaining []int
	budget    int
	objective Objective
}

// New returns the empty selection over pool with budget picks to make.
// The objective evaluates the completed selection.
func New(pool []Item, budget int, objective Objective) (*State, error) {
	if budget < 0 {
		return nil, errors.Errorf("budget must be non-negative, got %d", budget)
	}
	if objective == nil {
		return nil, errors.New("objective must not be nil")
	}

	remaining := make([]int, len(pool))
	for i := range pool {
		remaining[i] = i
	}
	return &State{
		pool:      pool,
		remaining: remaining,
		budget:    budget,
		objective: objective,
	}, nil
}

func (s *State) copy() *State {
	picked := make([]int, len(s.picked))
	copy(picked, s.picked)

	remaining := make([]int, len(s.remaining))
	copy(remaining, s.remaining)

	return &State{
		pool:      s.pool, // The pool is immutable and shared
		picked:    picked,
		remaining: remaining,
		budget:    s.budget,
		objective: s.objective,
	}
}

// LegalActions returns one Pick per remaining candidate, in pool order.
func (s *State) LegalActions() []problem.Action {
	if s.budget == 0 {
		return nil
	}
	actions := make([]problem.Action, 0, len(s.remaining))
	for _, idx := range s.remaining {
		actions = append(actions, Pick{Index: idx, Item: s.pool[idx]})
	}
	return actions
}

// Apply moves the picked candidate from the remaining pool to the
// selection and decrements the budget, returning a new state.
func (s *State) Apply(action problem.Action) problem.State {
	pick, ok := action.(Pick)
	if !ok {
		panic(fmt.Sprintf("unexpected action type %T", action))
	}

	next := s.copy()
	removed := false
	for i, idx := range next.remaining {
		if idx == pick.Index {
			next.remaining = append(next.remaining[:i], next.remaining[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		panic(fmt.Sprintf("candidate %q is not in the remaining pool", pick))
	}

	next.picked = append(next.picked, pick.Index)
	next.budget--
	return next
}

func (s *State) IsTerminal() bool {
	return s.budget == 0 || len(s.remaining) == 0
}

// Reward evaluates the objective over the picked items. Only meaningful
// on terminal states.
func (s *State) Reward() float64 {
	return s.objective(s.Picked())
}

// Picked returns the selected items in pick order.
func (s *State) Picked() []Item {
	items := make([]Item, len(s.picked))
	for i, idx := range s.picked {
		items[i] = s.pool[idx]
	}
	return items
}

// Budget returns the number of picks remaining.
func (s *State) Budget() int {
	return s.budget
}
