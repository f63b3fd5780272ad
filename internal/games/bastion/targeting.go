package bastion

import "math"

// Policy selects which enemy in range a tower shoots at.
type Policy int

const (
	PolicyFirst    Policy = iota // furthest along the path
	PolicyLast                   // least far along the path
	PolicyClosest                // nearest to the tower
	PolicyWeakest                // lowest remaining HP
	PolicyStrongest              // highest remaining HP

	policyCount
)

func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	case PolicyLast:
		return "last"
	case PolicyClosest:
		return "closest"
	case PolicyWeakest:
		return "weakest"
	case PolicyStrongest:
		return "strongest"
	default:
		return "unknown"
	}
}

// Next cycles to the following policy, wrapping around.
func (p Policy) Next() Policy {
	return (p + 1) % policyCount
}

// acquire picks a target among the enemies within radius of (tx, ty)
// according to the policy. Returns nil when nothing is in range.
// Ties resolve to the earlier enemy in slice order, which is spawn order,
// so selection is stable between ticks.
func acquire(p Policy, enemies []*enemy, tx, ty, radius float64) *enemy {
	var best *enemy
	var bestKey float64

	for _, e := range enemies {
		if !e.alive() {
			continue
		}
		ex, ey := e.position()
		d := math.Hypot(ex-tx, ey-ty)
		if d > radius {
			continue
		}

		var key float64
		switch p {
		case PolicyFirst:
			key = -e.progress // maximize progress
		case PolicyLast:
			key = e.progress
		case PolicyClosest:
			key = d
		case PolicyWeakest:
			key = float64(e.hp)
		case PolicyStrongest:
			key = -float64(e.hp)
		}

		if best == nil || key < bestKey {
			best = e
			bestKey = key
		}
	}
	return best
}
