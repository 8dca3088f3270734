package main

import (
	"math"
)

// orientation is the pose of the currently loaded model. Yaw is unbounded
// and wraps freely; pitch is kept inside the clamp bounds after every
// mutation. A new model load replaces the whole value with the zero pose.
type orientation struct {
	yaw, pitch float64
}

// clampBounds is the inclusive pitch range, in radians. Immutable after
// config load.
type clampBounds struct {
	min, max float64
}

func (c clampBounds) clamp(pitch float64) float64 {
	if pitch < c.min {
		return c.min
	}
	if pitch > c.max {
		return c.max
	}
	return pitch
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
