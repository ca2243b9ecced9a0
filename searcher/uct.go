package searcher

import "math"

// DefaultExploration is the UCT exploration constant c.
const DefaultExploration = math.Sqrt2

type uct struct {
	numerator float64
}

// newUCT precomputes the shared part of the UCT formula, c^2*ln(N), for
// one fully-expanded parent with N visits.
func newUCT(c float64, parentVisits int) *uct {
	if parentVisits == 0 {
		panic("cannot compute UCT: parent has 0 visits")
	}
	return &uct{numerator: c * c * math.Log(float64(parentVisits))}
}

// evaluate scores one child.
// UCT = q/n + sqrt(c^2*ln(N)/n)
// An unvisited child scores +Inf so that every child is tried once
// before any sibling is revisited.
func (u uct) evaluate(rewards float64, visits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	n := float64(visits)
	return rewards/n + math.Sqrt(u.numerator/n)
}
