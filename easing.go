package main

// easeInOutCubic maps tween progress in [0, 1] to eased progress.
// Slow start, slow stop.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
