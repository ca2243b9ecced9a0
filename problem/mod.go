package problem

// Action is a single decision applicable in some state. Implementations
// should be comparable values so the searcher can key visit
// distributions by action.
type Action interface {
	String() string
}

// State should be immutable - Apply always returns a new copy.
//
// Any decision problem that aims to be searchable by the MCTS driver
// implements this interface (the searcher package is standalone; problem
// packages import neither it nor each other).
type State interface {
	// LegalActions enumerates every action applicable in this state. The
	// slice is empty exactly when the state is terminal. Enumeration
	// order is the tie-break order used throughout the searcher, so it
	// must be deterministic for a given state.
	LegalActions() []Action

	// Apply plays an action and returns the resulting state. Transitions
	// may be stochastic: the same (state, action) pair may yield
	// different states across calls, but every call returns a valid next
	// state.
	Apply(Action) State

	IsTerminal() bool

	// Reward evaluates the outcome from the decision-maker's
	// perspective. Defined only on terminal states.
	Reward() float64
}
