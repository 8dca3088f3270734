package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// bounds3D is the axis-aligned box of the loaded model's geometry.
type bounds3D struct {
	min, max mat.Vec3
}

func (b bounds3D) center() mat.Vec3 {
	return b.min.Add(b.max).Mul(0.5)
}

// cameraFrame is the camera placement that fits a bounding box in view.
type cameraFrame struct {
	distance, near, far float64
}

const (
	framePadding      = 1.5
	frameMinDistance  = 1.0
	frameMinNear      = 0.01
	frameMinFar       = 2000.0
	frameNearDivisor  = 1000.0
	frameFarMultipler = 100.0
)

// frameBounds computes the camera distance and clipping planes so the box
// fits the given vertical field of view. Point-like bounds fall back to a
// fixed positive distance instead of a degenerate zero camera position.
func frameBounds(b bounds3D, fov float64) cameraFrame {
	size := b.max.Sub(b.min)
	maxDim := float64(size[0])
	if d := float64(size[1]); d > maxDim {
		maxDim = d
	}
	if d := float64(size[2]); d > maxDim {
		maxDim = d
	}

	distance := frameMinDistance
	if maxDim > 0 {
		distance = maxDim / (2 * math.Tan(fov/2)) * framePadding
	}

	near := distance / frameNearDivisor
	if near < frameMinNear {
		near = frameMinNear
	}
	far := distance * frameFarMultipler
	if far < frameMinFar {
		far = frameMinFar
	}
	return cameraFrame{distance: distance, near: near, far: far}
}
