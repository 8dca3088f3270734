package main

import (
	"math"
)

type snapPredicate int

const (
	snapGreaterEqual snapPredicate = iota
	snapLessEqual
	snapNear
)

// snapRule matches a released pitch angle against a threshold and names the
// angle to converge to. All angles are radians here; the config layer
// converts from degrees.
type snapRule struct {
	predicate snapPredicate
	threshold float64
	target    float64
}

func (r snapRule) matches(angle float64) bool {
	switch r.predicate {
	case snapGreaterEqual:
		return angle >= r.threshold
	case snapLessEqual:
		return angle <= r.threshold
	case snapNear:
		return math.Abs(angle-r.target) <= r.threshold
	}
	return false
}

const (
	snapEpsilon      = 0.001
	snapApproachRate = 0.2
)

// snapState is the post-drag convergence toward a rule-selected target.
// Activated by evaluateSnapRules, advanced by the animation clock, cleared
// by a new drag or any dispatched action.
type snapState struct {
	active  bool
	target  float64
	epsilon float64
	rate    float64
}

// evaluateSnapRules checks rules in declaration order and returns the state
// for the first match. No match returns an inactive state, never a stale
// previous activation.
func evaluateSnapRules(angle float64, rules []snapRule) snapState {
	for _, r := range rules {
		if r.matches(angle) {
			return snapState{
				active:  true,
				target:  r.target,
				epsilon: snapEpsilon,
				rate:    snapApproachRate,
			}
		}
	}
	return snapState{}
}

// tick moves angle toward the target by the approach rate of the remaining
// delta. Within epsilon the angle is pinned exactly and the state
// deactivates.
func (s *snapState) tick(angle float64) float64 {
	if !s.active {
		return angle
	}
	delta := s.target - angle
	if math.Abs(delta) <= s.epsilon {
		s.active = false
		return s.target
	}
	return angle + delta*s.rate
}
