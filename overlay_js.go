package main

import (
	"errors"
	"syscall/js"
)

// overlayIO is the texture-loader collaborator: a filename in, a decoded 2D
// image resource out.
type overlayIO interface {
	loadOverlay(path string) (overlayImage, error)
}

type overlayImage interface {
	Width() int
	Height() int
	Interface() interface{}
}

type overlayIOImpl struct{}

func (overlayIOImpl) loadOverlay(path string) (overlayImage, error) {
	img := js.Global().Get("Image").New()
	chOK := make(chan bool, 1)
	img.Call("addEventListener", "load",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chOK <- true
			return nil
		}),
	)
	img.Call("addEventListener", "error",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chOK <- false
			return nil
		}),
	)
	img.Set("src", path)

	if !<-chOK {
		return nil, errors.New("failed to load overlay image")
	}
	return overlayImageImpl(img), nil
}

type overlayImageImpl js.Value

func (m overlayImageImpl) Width() int {
	return js.Value(m).Get("width").Int()
}

func (m overlayImageImpl) Height() int {
	return js.Value(m).Get("height").Int()
}

func (m overlayImageImpl) Interface() interface{} {
	return js.Value(m)
}
