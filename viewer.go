package main

import (
	"math"
	"time"
)

const (
	defaultFOV = math.Pi / 3

	spinDuration        = 2 * time.Second
	turnDuration        = 1250 * time.Millisecond
	tiltDuration        = time.Second
	tiltNeutralDuration = 900 * time.Millisecond
	fadeInDuration      = time.Second

	tiltActionDeg = 25.0
)

// renderState is what the render loop needs from one clock tick.
type renderState struct {
	yaw, pitch float64
	opacity    float64
}

// viewer owns all mutable state of the orientation and animation control:
// the model pose, the snap convergence, the three tween channels and the
// action queue. Every mutation happens on the render-loop goroutine; events
// reach it through channels, so no locking is involved.
type viewer struct {
	clamp clampBounds
	rules []snapRule

	ori  orientation
	snap snapState
	drag dragState

	fade, spin, tilt tween
	opacity          float64

	fov    float64
	bounds bounds3D
	frame  cameraFrame
	zoom   zoomControl

	ready   bool
	started bool
	pending []string

	logPrint func(msg interface{})
}

func newViewer(cfg *viewerConfig) (*viewer, error) {
	rules, err := cfg.snapRules()
	if err != nil {
		return nil, err
	}
	return &viewer{
		clamp:    cfg.clampBounds(),
		rules:    rules,
		fov:      defaultFOV,
		zoom:     newZoomControl(),
		logPrint: func(msg interface{}) { println(msg) },
	}, nil
}

// SetModel makes a newly loaded model current: the pose is replaced by the
// zero orientation, the camera is reframed, the fade-in starts, and any
// actions queued before the very first load are flushed in arrival order.
func (v *viewer) SetModel(b bounds3D, now time.Time) {
	v.bounds = b
	v.frame = frameBounds(b, v.fov)
	v.zoom.reset()
	v.ori = orientation{}
	v.snap = snapState{}
	v.drag = dragState{}
	v.spin.Stop()
	v.tilt.Stop()
	v.opacity = 0
	v.fade.Start(0, 1, fadeInDuration, now)
	v.ready = true
	if !v.started {
		v.started = true
		pending := v.pending
		v.pending = nil
		for _, a := range pending {
			v.apply(a, now)
		}
	}
}

// Dispatch runs one named action. An explicit action always takes priority
// over a passive snap-back, so any active snap is cleared first. Actions
// arriving before the first model load are held and replayed by SetModel;
// once a model has been seen, actions without a current model are dropped.
func (v *viewer) Dispatch(action string, now time.Time) {
	v.snap = snapState{}
	if !v.started {
		v.pending = append(v.pending, action)
		return
	}
	if !v.ready {
		v.logPrint("warning: dropped action without model: " + action)
		return
	}
	v.apply(action, now)
}

func (v *viewer) apply(action string, now time.Time) {
	switch action {
	case "reset-view":
		v.spin.Stop()
		v.tilt.Stop()
		v.ori = orientation{}
		v.frame = frameBounds(v.bounds, v.fov)
		v.zoom.reset()
	case "spin":
		v.spin.Start(v.ori.yaw, v.ori.yaw+2*math.Pi, spinDuration, now)
	case "turn-left":
		v.spin.Start(v.ori.yaw, v.ori.yaw-math.Pi/2, turnDuration, now)
	case "turn-right":
		v.spin.Start(v.ori.yaw, v.ori.yaw+math.Pi/2, turnDuration, now)
	case "tilt-forward":
		target := deg2rad(tiltActionDeg)
		if target > v.clamp.max {
			target = v.clamp.max
		}
		v.tilt.Start(v.ori.pitch, target, tiltDuration, now)
	case "tilt-back":
		target := deg2rad(-tiltActionDeg)
		if target < v.clamp.min {
			target = v.clamp.min
		}
		v.tilt.Start(v.ori.pitch, target, tiltDuration, now)
	case "tilt-neutral":
		v.tilt.Start(v.ori.pitch, 0, tiltNeutralDuration, now)
	default:
		v.logPrint("warning: unknown action: " + action)
	}
}

// Tick advances the animation state by one frame. Snap convergence runs
// before the tween channels so a tween targeting the same axis writes last
// within the frame.
func (v *viewer) Tick(now time.Time) renderState {
	v.ori.pitch = v.snap.tick(v.ori.pitch)

	if v.spin.active {
		v.ori.yaw, _ = v.spin.Tick(now)
	}
	if v.tilt.active {
		val, _ := v.tilt.Tick(now)
		v.ori.pitch = v.clamp.clamp(val)
	}
	if v.fade.active {
		val, _ := v.fade.Tick(now)
		v.opacity = clampOpacity(val)
	}

	return renderState{
		yaw:     v.ori.yaw,
		pitch:   v.ori.pitch,
		opacity: v.opacity,
	}
}

// Distance is the camera distance for the current frame and zoom factor.
func (v *viewer) Distance() float64 {
	return v.zoom.distance(v.frame)
}
