package main

import (
	"bytes"

	"github.com/seqsense/pcgol/pc"
)

// modelIO is the asset-loader collaborator: a filename in, a decoded point
// cloud out. Decoding itself is pcgol's job.
type modelIO interface {
	loadModel(path string) (*pc.PointCloud, error)
}

type modelIOImpl struct{}

func (modelIOImpl) loadModel(path string) (*pc.PointCloud, error) {
	b, err := fetchGet(path)
	if err != nil {
		return nil, err
	}
	return pc.Unmarshal(bytes.NewReader(b))
}
