package main

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const defaultModelPath = "model.pcd"

// viewerConfig is the optional viewer.yaml fetched next to the page.
// Angles are degrees in the file and converted to radians on use.
type viewerConfig struct {
	Model    string           `yaml:"model"`
	Overlay  string           `yaml:"overlay"`
	ClampMin float64          `yaml:"clamp_min"`
	ClampMax float64          `yaml:"clamp_max"`
	Snap     []snapRuleConfig `yaml:"snap"`
}

type snapRuleConfig struct {
	Predicate string  `yaml:"predicate"`
	Threshold float64 `yaml:"threshold"`
	Target    float64 `yaml:"target"`
}

func defaultConfig() *viewerConfig {
	return &viewerConfig{
		Model:    defaultModelPath,
		ClampMin: -90,
		ClampMax: 90,
		Snap: []snapRuleConfig{
			{Predicate: "greater_equal", Threshold: 25, Target: 90},
			{Predicate: "less_equal", Threshold: -25, Target: -90},
			{Predicate: "near", Threshold: 5, Target: 0},
		},
	}
}

// parseConfig overlays the file content on the defaults.
func parseConfig(b []byte) (*viewerConfig, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if cfg.Model == "" {
		cfg.Model = defaultModelPath
	}
	if cfg.ClampMin > cfg.ClampMax {
		return nil, fmt.Errorf("invalid clamp bounds: [%f, %f]", cfg.ClampMin, cfg.ClampMax)
	}
	return cfg, nil
}

func (cfg *viewerConfig) clampBounds() clampBounds {
	return clampBounds{
		min: deg2rad(cfg.ClampMin),
		max: deg2rad(cfg.ClampMax),
	}
}

func (cfg *viewerConfig) snapRules() ([]snapRule, error) {
	rules := make([]snapRule, 0, len(cfg.Snap))
	for _, rc := range cfg.Snap {
		var p snapPredicate
		switch rc.Predicate {
		case "greater_equal":
			p = snapGreaterEqual
		case "less_equal":
			p = snapLessEqual
		case "near":
			p = snapNear
		default:
			return nil, fmt.Errorf("unknown snap predicate: %q", rc.Predicate)
		}
		rules = append(rules, snapRule{
			predicate: p,
			threshold: deg2rad(rc.Threshold),
			target:    deg2rad(rc.Target),
		})
	}
	return rules, nil
}
