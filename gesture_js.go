package main

import (
	"math"

	webgl "github.com/seqsense/webgl-go"
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureRotate
	gesturePinch
)

// gesture reduces pointer events to the two interactions the viewer knows:
// one pointer rotates the model, two pointers pinch-zoom. Pinch deltas are
// reported through onPinch in wheel units.
type gesture struct {
	canvas   webgl.Canvas
	pointers map[int]webgl.PointerEvent
	primary  webgl.PointerEvent

	onDragStart func(x, y int) bool
	onDragMove  func(x, y int)
	onDragEnd   func(x, y int)
	onPinch     func(delta float64)

	mode      gestureMode
	distance0 float64
	captured  int
}

func newGesture(canvas webgl.Canvas) *gesture {
	return &gesture{
		canvas:   canvas,
		pointers: make(map[int]webgl.PointerEvent),
		captured: -1,
	}
}

func (g *gesture) pointerDown(e webgl.PointerEvent) {
	g.pointers[e.PointerId] = e

	switch len(g.pointers) {
	case 1:
		g.primary = e
	case 2:
		g.distance0 = g.pointerDistance()
	}
}

func (g *gesture) pointerMove(e webgl.PointerEvent) {
	if _, ok := g.pointers[e.PointerId]; !ok {
		return
	}
	g.pointers[e.PointerId] = e

	if g.mode == gestureNone {
		switch len(g.pointers) {
		case 1:
			if g.onDragStart(g.primary.OffsetX, g.primary.OffsetY) {
				g.mode = gestureRotate
				g.captured = g.primary.PointerId
				capturePointer(g.canvas, g.captured)
			}
		case 2:
			g.mode = gesturePinch
		}
	}
	switch g.mode {
	case gestureRotate:
		if e.IsPrimary {
			g.onDragMove(e.OffsetX, e.OffsetY)
		}
	case gesturePinch:
		if len(g.pointers) != 2 {
			break
		}
		d := g.pointerDistance()
		g.onPinch((g.distance0 - d) / 10)
		g.distance0 = d
	}
	if e.IsPrimary {
		g.primary = e
	}
}

// pointerUp handles up, leave and cancel alike: the drag ends and the snap
// rules get their chance.
func (g *gesture) pointerUp(e webgl.PointerEvent) {
	delete(g.pointers, e.PointerId)
	if len(g.pointers) > 0 {
		return
	}
	if e.IsPrimary {
		g.primary = e
	}
	if g.mode == gestureRotate {
		g.onDragEnd(g.primary.OffsetX, g.primary.OffsetY)
	}
	if g.captured >= 0 {
		releasePointer(g.canvas, g.captured)
		g.captured = -1
	}
	g.mode = gestureNone
}

func (g *gesture) pointerDistance() float64 {
	pp := make([]webgl.PointerEvent, 0, len(g.pointers))
	for id := range g.pointers {
		pp = append(pp, g.pointers[id])
	}
	return math.Hypot(
		float64(pp[0].OffsetX-pp[1].OffsetX),
		float64(pp[0].OffsetY-pp[1].OffsetY),
	)
}
