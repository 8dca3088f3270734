package main

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestViewer_SetModel(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)

	v.SetModel(testBounds(), t0)
	if !v.ready {
		t.Fatal("SetModel must mark a model as current")
	}
	if v.frame.distance <= 0 {
		t.Error("SetModel must reframe the camera")
	}

	st := v.Tick(t0)
	if st.opacity != 0 {
		t.Errorf("Fade-in must start from zero opacity, got %f", st.opacity)
	}
	st = v.Tick(t0.Add(fadeInDuration))
	if st.opacity != 1 {
		t.Errorf("Fade-in must end fully opaque, got %f", st.opacity)
	}

	// A second load replaces the pose and animation state wholesale.
	v.Dispatch("spin", t0.Add(2*time.Second))
	v.DragStart(0, 0)
	v.DragMove(50, 30)
	v.zoom.factor = 2

	v.SetModel(testBounds(), t0.Add(3*time.Second))
	if v.ori.yaw != 0 || v.ori.pitch != 0 {
		t.Error("SetModel must reset the orientation to the zero pose")
	}
	if v.spin.active {
		t.Error("SetModel must stop a running spin")
	}
	if v.drag.pt0 != nil {
		t.Error("SetModel must abort an in-flight drag")
	}
	if v.zoom.factor != 1 {
		t.Error("SetModel must reset the zoom factor")
	}
}

func TestViewer_TurnLandsExactly(t *testing.T) {
	t0 := time.Unix(1000, 0)
	testCases := map[string]struct {
		action   string
		expected float64
		duration time.Duration
	}{
		"TurnLeft":  {"turn-left", -math.Pi / 2, turnDuration},
		"TurnRight": {"turn-right", math.Pi / 2, turnDuration},
		"Spin":      {"spin", 2 * math.Pi, spinDuration},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := newTestViewer(t)
			v.SetModel(testBounds(), t0)
			v.Dispatch(tt.action, t0)

			st := v.Tick(t0.Add(tt.duration / 2))
			if st.yaw == 0 || st.yaw == tt.expected {
				t.Errorf("Yaw must be mid-flight at half duration, got %f", st.yaw)
			}
			st = v.Tick(t0.Add(tt.duration))
			if st.yaw != tt.expected {
				t.Errorf("Yaw must land exactly on %f, got %f", tt.expected, st.yaw)
			}
		})
	}
}

func TestViewer_SpinIsRelative(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)
	v.SetModel(testBounds(), t0)

	v.Dispatch("turn-right", t0)
	v.Tick(t0.Add(turnDuration))

	v.Dispatch("spin", t0.Add(2*time.Second))
	st := v.Tick(t0.Add(2*time.Second + spinDuration))
	expected := math.Pi/2 + 2*math.Pi
	if st.yaw != expected {
		t.Errorf("Spin must add a full turn to the current yaw, expected %f, got %f", expected, st.yaw)
	}
}

func TestViewer_Tilt(t *testing.T) {
	t0 := time.Unix(1000, 0)

	t.Run("Forward", func(t *testing.T) {
		v := newTestViewer(t)
		v.SetModel(testBounds(), t0)
		v.Dispatch("tilt-forward", t0)
		st := v.Tick(t0.Add(tiltDuration))
		if st.pitch != deg2rad(tiltActionDeg) {
			t.Errorf("Expected pitch %f, got %f", deg2rad(tiltActionDeg), st.pitch)
		}
	})

	t.Run("Back", func(t *testing.T) {
		v := newTestViewer(t)
		v.SetModel(testBounds(), t0)
		v.Dispatch("tilt-back", t0)
		st := v.Tick(t0.Add(tiltDuration))
		if st.pitch != deg2rad(-tiltActionDeg) {
			t.Errorf("Expected pitch %f, got %f", deg2rad(-tiltActionDeg), st.pitch)
		}
	})

	t.Run("TargetClampedToBounds", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.ClampMin = -10
		cfg.ClampMax = 10
		cfg.Snap = nil
		v, err := newViewer(cfg)
		if err != nil {
			t.Fatalf("Failed to create viewer: %v", err)
		}
		v.SetModel(testBounds(), t0)

		v.Dispatch("tilt-forward", t0)
		st := v.Tick(t0.Add(tiltDuration))
		if st.pitch != deg2rad(10) {
			t.Errorf("Forward tilt must stop at the clamp, expected %f, got %f", deg2rad(10), st.pitch)
		}

		v.Dispatch("tilt-back", t0.Add(2*time.Second))
		st = v.Tick(t0.Add(2*time.Second + tiltDuration))
		if st.pitch != deg2rad(-10) {
			t.Errorf("Back tilt must stop at the clamp, expected %f, got %f", deg2rad(-10), st.pitch)
		}
	})

	t.Run("Neutral", func(t *testing.T) {
		v := newTestViewer(t)
		v.SetModel(testBounds(), t0)
		v.Dispatch("tilt-forward", t0)
		v.Tick(t0.Add(tiltDuration))
		v.Dispatch("tilt-neutral", t0.Add(2*time.Second))
		st := v.Tick(t0.Add(2*time.Second + tiltNeutralDuration))
		if st.pitch != 0 {
			t.Errorf("Neutral tilt must land on zero pitch, got %f", st.pitch)
		}
	})
}

func TestViewer_ResetView(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)
	v.SetModel(testBounds(), t0)

	v.Dispatch("turn-right", t0)
	v.Dispatch("tilt-forward", t0)
	v.Tick(t0.Add(turnDuration))
	v.zoom.factor = 2

	v.Dispatch("reset-view", t0.Add(2*time.Second))
	st := v.Tick(t0.Add(2*time.Second))
	if st.yaw != 0 || st.pitch != 0 {
		t.Errorf("Reset must return to the zero pose, got yaw %f pitch %f", st.yaw, st.pitch)
	}
	if v.spin.active || v.tilt.active {
		t.Error("Reset must stop running animations")
	}
	if v.zoom.factor != 1 {
		t.Error("Reset must restore the autoframed distance")
	}

	// Resetting an already reset view is a no-op.
	v.Dispatch("reset-view", t0.Add(3*time.Second))
	st = v.Tick(t0.Add(3*time.Second))
	if st.yaw != 0 || st.pitch != 0 {
		t.Error("Repeated reset must stay at the zero pose")
	}
}

func TestViewer_PendingActionsFlushedInOrder(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)

	v.Dispatch("turn-right", t0)
	v.Dispatch("reset-view", t0)
	v.Dispatch("tilt-forward", t0)

	if len(v.pending) != 3 {
		t.Fatalf("Actions before the first model must be queued, got %d", len(v.pending))
	}

	v.SetModel(testBounds(), t0.Add(time.Second))
	if v.pending != nil {
		t.Error("Queue must be drained by the first model load")
	}

	// reset-view undid the turn, then the tilt started.
	st := v.Tick(t0.Add(time.Second + tiltDuration))
	if st.yaw != 0 {
		t.Errorf("Reset in the replayed queue must undo the turn, got yaw %f", st.yaw)
	}
	if st.pitch != deg2rad(tiltActionDeg) {
		t.Errorf("Tilt replayed last must win, got pitch %f", st.pitch)
	}

	// The queue only exists before the first load.
	v.Dispatch("turn-left", t0.Add(2*time.Second))
	if len(v.pending) != 0 {
		t.Error("Actions after the first load must not be queued")
	}
}

func TestViewer_UnknownActionWarns(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)
	var logged []string
	v.logPrint = func(msg interface{}) {
		logged = append(logged, msg.(string))
	}
	v.SetModel(testBounds(), t0)

	v.Dispatch("barrel-roll", t0)
	if len(logged) != 1 || !strings.Contains(logged[0], "unknown action") {
		t.Errorf("Unknown action must be logged and ignored, got %v", logged)
	}
	st := v.Tick(t0)
	if st.yaw != 0 || st.pitch != 0 {
		t.Error("Unknown action must not disturb the pose")
	}
}

func TestViewer_DroppedActionWarns(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)
	var logged []string
	v.logPrint = func(msg interface{}) {
		logged = append(logged, msg.(string))
	}
	v.started = true

	v.Dispatch("spin", t0)
	if len(logged) != 1 || !strings.Contains(logged[0], "dropped action") {
		t.Errorf("Action without a current model must be logged and dropped, got %v", logged)
	}
	if v.spin.active {
		t.Error("Dropped action must not start an animation")
	}
}

func TestViewer_DispatchCancelsSnap(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)
	v.SetModel(testBounds(), t0)
	v.snap = snapState{active: true, target: 1, epsilon: snapEpsilon, rate: snapApproachRate}

	v.Dispatch("tilt-neutral", t0)
	if v.snap.active {
		t.Error("An explicit action must cancel a pending snap")
	}
}

func TestViewer_Distance(t *testing.T) {
	t0 := time.Unix(1000, 0)
	v := newTestViewer(t)
	v.SetModel(testBounds(), t0)

	d0 := v.Distance()
	if d0 != v.frame.distance {
		t.Errorf("Unzoomed distance must equal the framed distance, got %f", d0)
	}
	v.zoom.factor = 2
	if v.Distance() != 2*d0 {
		t.Errorf("Distance must scale with the zoom factor, got %f", v.Distance())
	}
}
