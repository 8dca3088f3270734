package main

// dragSpeed is the rotation applied per pixel of pointer travel.
const dragSpeed = 0.02

// dragState is Idle while pt0 is nil and Dragging otherwise. The pose at
// drag start is kept so each move applies the total delta, not increments.
type dragState struct {
	pt0          *pointerPos
	yaw0, pitch0 float64
}

type pointerPos struct {
	x, y int
}

// DragStart enters the Dragging state. Returns false when no model is
// current; the caller must not capture the pointer in that case. Starting
// a drag cancels any pending snap.
func (v *viewer) DragStart(x, y int) bool {
	if !v.ready {
		return false
	}
	v.snap = snapState{}
	v.drag.pt0 = &pointerPos{x: x, y: y}
	v.drag.yaw0 = v.ori.yaw
	v.drag.pitch0 = v.ori.pitch
	return true
}

func (v *viewer) DragMove(x, y int) {
	d := &v.drag
	if d.pt0 == nil {
		return
	}
	dx := float64(x - d.pt0.x)
	dy := float64(y - d.pt0.y)
	v.ori.yaw = d.yaw0 - dragSpeed*dx
	v.ori.pitch = v.clamp.clamp(d.pitch0 - dragSpeed*dy)
}

// DragEnd leaves the Dragging state and evaluates the snap rules against
// the final pitch. Pointer up, leave and cancel all end up here.
func (v *viewer) DragEnd(x, y int) {
	if v.drag.pt0 == nil {
		return
	}
	v.DragMove(x, y)
	v.drag.pt0 = nil
	v.snap = evaluateSnapRules(v.ori.pitch, v.rules)
}
