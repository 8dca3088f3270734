package main

import (
	"net/url"
	"strings"

	"github.com/seqsense/pcgol/pc"
)

// cloudBounds derives the axis-aligned box of a loaded cloud. Recomputed on
// every load; never persisted across models.
func cloudBounds(pp *pc.PointCloud) (bounds3D, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return bounds3D{}, err
	}
	min, max, err := pc.MinMaxVec3(it)
	if err != nil {
		return bounds3D{}, err
	}
	return bounds3D{min: min, max: max}, nil
}

// selectConfigPath picks the config file to fetch. It runs before the
// config itself is known, so it only reads the query string.
func selectConfigPath(search, fallback string) string {
	q, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return fallback
	}
	if c := q.Get("config"); c != "" {
		return c
	}
	return fallback
}

// assetSelection is which files the page asked for. Query parameters win
// over the config file; the model falls back to a fixed default name.
type assetSelection struct {
	model, overlay string
}

func selectAssets(search string, cfg *viewerConfig) assetSelection {
	sel := assetSelection{
		model:   cfg.Model,
		overlay: cfg.Overlay,
	}
	q, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return sel
	}
	if m := q.Get("model"); m != "" {
		sel.model = m
	}
	if o := q.Get("overlay"); o != "" {
		sel.overlay = o
	}
	if sel.model == "" {
		sel.model = defaultModelPath
	}
	return sel
}
