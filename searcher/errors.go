package searcher

import "github.com/pkg/errors"

// Error kinds surfaced by the searcher. All are programmer or
// configuration errors reported immediately to the caller; none are
// retried internally. Match with errors.Is.
var (
	// ErrInvalidConfig covers a non-positive iteration or time budget
	// and a negative exploration constant.
	ErrInvalidConfig = errors.New("invalid search configuration")

	// ErrEmptyTree is returned when a recommendation is requested before
	// any iteration expanded a child under the root.
	ErrEmptyTree = errors.New("search tree has no expanded children")

	// ErrInvalidExpansion is returned when expansion is attempted on a
	// node with no untried actions.
	ErrInvalidExpansion = errors.New("expansion on a node with no untried actions")

	// ErrRolloutDepth is returned when a rollout exceeds the configured
	// depth guard without reaching a terminal state. Truncating silently
	// would corrupt reward semantics, so the rollout fails instead.
	ErrRolloutDepth = errors.New("rollout exceeded maximum depth without terminating")
)
