package searcher

import (
	"math"

	"picker/problem"

	"github.com/pkg/errors"
)

// node is one state in the search tree. A parent exclusively owns its
// children; the parent link is a non-owning back-reference used only to
// walk the path during backpropagation. The untried actions and the
// actions behind children partition the state's legal actions.
type node struct {
	parent   *node
	action   problem.Action // Incoming action, nil at the root
	state    problem.State
	untried  []problem.Action
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, action problem.Action, state problem.State) *node {
	return &node{
		parent:  parent,
		action:  action,
		state:   state,
		untried: state.LegalActions(),
	}
}

func (n *node) terminal() bool {
	return n.state.IsTerminal()
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

// expand applies the ith untried action and attaches the resulting state
// as a new child with zero visits.
func (n *node) expand(i int) (*node, error) {
	if len(n.untried) == 0 {
		return nil, errors.Wrapf(ErrInvalidExpansion, "node with %d children", len(n.children))
	}

	action := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)

	child := newNode(n, action, n.state.Apply(action))
	n.children = append(n.children, child)
	return child, nil
}

// selectChild returns the UCT-best child of a fully-expanded node. An
// unvisited child always wins; ties go to the first child in expansion
// order.
func (n *node) selectChild(c float64) *node {
	policy := newUCT(c, n.visits)

	best := n.children[0]
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := policy.evaluate(child.rewards, child.visits)
		if math.IsInf(score, 1) {
			return child
		}
		if score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// backup adds a rollout reward to every node on the path from n up to
// and including the root. A fresh node's first backup takes it from 0
// to 1 visit.
func (n *node) backup(reward float64) {
	for node := n; node != nil; node = node.parent {
		node.rewards += reward
		node.visits++
	}
}

// meanReward is Q = W/N, defined as 0 before any visit.
func (n *node) meanReward() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// robustChild picks the most-visited child, breaking ties by mean
// reward and then by expansion order. Visits are preferred over mean
// reward because they are less sensitive to rollout variance.
func (n *node) robustChild() (*node, error) {
	if len(n.children) == 0 {
		return nil, errors.Wrap(ErrEmptyTree, "no iterations expanded a child")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits ||
			(child.visits == best.visits && child.meanReward() > best.meanReward()) {
			best = child
		}
	}
	return best, nil
}
