package main

import (
	"time"
)

// tween is one time-bounded eased interpolation channel. Starting an active
// channel silently restarts it. When the duration elapses, the channel
// deactivates and the output is pinned exactly to the end value so no eased
// residue is left behind.
type tween struct {
	active   bool
	start    time.Time
	duration time.Duration
	from, to float64
}

func (tw *tween) Start(from, to float64, d time.Duration, now time.Time) {
	tw.active = true
	tw.start = now
	tw.duration = d
	tw.from = from
	tw.to = to
}

func (tw *tween) Stop() {
	tw.active = false
}

// Tick returns the channel value at now and whether the tween has finished.
// Calling Tick on an inactive channel returns the end value.
func (tw *tween) Tick(now time.Time) (float64, bool) {
	if !tw.active {
		return tw.to, true
	}
	if tw.duration <= 0 {
		tw.active = false
		return tw.to, true
	}
	t := now.Sub(tw.start).Seconds() / tw.duration.Seconds()
	if t >= 1 {
		tw.active = false
		return tw.to, true
	}
	if t < 0 {
		t = 0
	}
	return tw.from + (tw.to-tw.from)*easeInOutCubic(t), false
}

func clampOpacity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
