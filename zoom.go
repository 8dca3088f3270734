package main

import (
	"math"
	"time"
)

// Wheel deltas are wildly device dependent: classic wheels report one fixed
// magnitude per detent while trackpads stream small continuous values.
// wheelScale folds both into roughly detent-sized steps by detecting the
// stepwise case and tracking a decaying delta-rate peak for the rest.
type wheelScale struct {
	now func() time.Time

	ready  bool
	events int

	repeatAbs float64
	repeats   int
	stepwise  bool

	peak  float64
	accum float64
	prev  time.Time
}

const (
	wheelDetectCount = 4
	wheelInitialPeak = 10
	wheelRateWindow  = 0.1
)

func (w *wheelScale) Scale(d float64) (float64, bool) {
	if w.events > wheelDetectCount {
		w.ready = true
	} else {
		w.events++
	}

	abs := math.Abs(d)
	if abs == 0 {
		return 0, w.ready
	}

	if abs == w.repeatAbs {
		w.repeats++
	} else {
		w.repeats = 0
	}
	w.repeatAbs = abs

	stepwise := w.repeats > wheelDetectCount
	if stepwise != w.stepwise {
		w.peak = wheelInitialPeak
	}
	w.stepwise = stepwise

	now := w.now()
	w.accum += d
	if dt := now.Sub(w.prev).Seconds(); dt > 0 {
		if dt > wheelRateWindow {
			dt = wheelRateWindow
		}
		rate := math.Abs(w.accum / dt)
		w.accum = 0
		w.prev = now

		if w.peak < rate {
			// Halfway toward the new rate to suppress spikes.
			w.peak = (w.peak + rate) / 2
		}
		w.peak *= 0.95
	}
	if w.peak < 1 {
		w.peak = 1
	}

	if w.stepwise {
		if d < 0 {
			return -1, w.ready
		}
		return 1, w.ready
	}
	return d * 250 / w.peak, w.ready
}

const (
	zoomMin  = 0.3
	zoomMax  = 3.0
	zoomStep = 0.05
)

// zoomControl scales the autoframed camera distance by a wheel-driven
// factor. Reframing a model resets the factor to 1.
type zoomControl struct {
	scale  wheelScale
	factor float64
}

func newZoomControl() zoomControl {
	return zoomControl{
		scale:  wheelScale{now: time.Now},
		factor: 1,
	}
}

func (z *zoomControl) reset() {
	z.factor = 1
}

func (z *zoomControl) Wheel(delta float64) {
	step, ok := z.scale.Scale(delta)
	if !ok {
		return
	}
	z.factor *= 1 + zoomStep*step
	if z.factor < zoomMin {
		z.factor = zoomMin
	} else if z.factor > zoomMax {
		z.factor = zoomMax
	}
}

func (z *zoomControl) distance(f cameraFrame) float64 {
	return f.distance * z.factor
}
