package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// perspective builds the column-major projection matrix for the render
// loop. near and far come from the camera framer.
func perspective(fov, aspect, near, far float32) mat.Mat4 {
	halfFovCot := 1 / float32(math.Tan(float64(fov/2)))
	return mat.Mat4{
		halfFovCot, 0, 0, 0,
		0, aspect * halfFovCot, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -2 * far * near / (far - near), 0,
	}
}
