package main

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

func TestCloudBounds(t *testing.T) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Fields: []string{"x", "y", "z"},
			Size:   []int{4, 4, 4},
			Type:   []string{"F", "F", "F"},
			Count:  []int{1, 1, 1},
			Width:  3,
			Height: 1,
		},
		Points: 3,
	}
	pp.Data = make([]byte, 3*pp.Stride())
	it, err := pp.Vec3Iterator()
	if err != nil {
		t.Fatalf("Failed to create iterator: %v", err)
	}
	for _, p := range []mat.Vec3{
		{1, -2, 0},
		{-3, 4, 5},
		{2, 0, -1},
	} {
		it.SetVec3(p)
		it.Incr()
	}

	b, err := cloudBounds(pp)
	if err != nil {
		t.Fatalf("Failed to compute bounds: %v", err)
	}
	expectedMin := mat.Vec3{-3, -2, -1}
	expectedMax := mat.Vec3{2, 4, 5}
	if b.min != expectedMin {
		t.Errorf("Expected min %v, got %v", expectedMin, b.min)
	}
	if b.max != expectedMax {
		t.Errorf("Expected max %v, got %v", expectedMax, b.max)
	}

	c := b.center()
	if c != (mat.Vec3{-0.5, 1, 2}) {
		t.Errorf("Expected center (-0.5, 1, 2), got %v", c)
	}
}

func TestSelectConfigPath(t *testing.T) {
	testCases := map[string]struct {
		search   string
		expected string
	}{
		"Default":   {"", "viewer.yaml"},
		"FromQuery": {"?config=other.yaml", "other.yaml"},
		"Malformed": {"?config=%zz", "viewer.yaml"},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if p := selectConfigPath(tt.search, "viewer.yaml"); p != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, p)
			}
		})
	}
}

func TestSelectAssets(t *testing.T) {
	testCases := map[string]struct {
		search   string
		cfg      viewerConfig
		expected assetSelection
	}{
		"ConfigOnly": {
			search:   "",
			cfg:      viewerConfig{Model: "robot.pcd", Overlay: "floor.png"},
			expected: assetSelection{model: "robot.pcd", overlay: "floor.png"},
		},
		"QueryWins": {
			search:   "?model=other.pcd&overlay=grid.png",
			cfg:      viewerConfig{Model: "robot.pcd", Overlay: "floor.png"},
			expected: assetSelection{model: "other.pcd", overlay: "grid.png"},
		},
		"QueryModelOnly": {
			search:   "?model=other.pcd",
			cfg:      viewerConfig{Model: "robot.pcd", Overlay: "floor.png"},
			expected: assetSelection{model: "other.pcd", overlay: "floor.png"},
		},
		"FallbackDefault": {
			search:   "",
			cfg:      viewerConfig{},
			expected: assetSelection{model: defaultModelPath},
		},
		"UnrelatedParams": {
			search:   "?theme=dark",
			cfg:      viewerConfig{Model: "robot.pcd"},
			expected: assetSelection{model: "robot.pcd"},
		},
		"MalformedQuery": {
			search:   "?model=%zz",
			cfg:      viewerConfig{Model: "robot.pcd"},
			expected: assetSelection{model: "robot.pcd"},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			sel := selectAssets(tt.search, &tt.cfg)
			if sel != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, sel)
			}
		})
	}
}
