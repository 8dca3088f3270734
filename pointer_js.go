package main

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

func capturePointer(c webgl.Canvas, id int) {
	defer func() { _ = recover() }()
	js.Value(c).Call("setPointerCapture", id)
}

// releasePointer ignores failures: the pointer may already have lost
// capture by the time release is attempted.
func releasePointer(c webgl.Canvas, id int) {
	defer func() { _ = recover() }()
	js.Value(c).Call("releasePointerCapture", id)
}
