package config

import (
	"errors"
	"fmt"
	"os"
)

// Merge combines two configs where overlay takes precedence over base.
// Each key set in overlay replaces the base value entirely; lists are not
// concatenated.
func Merge(base, overlay *Config) *Config {
	if base == nil {
		return overlay
	}
	if overlay == nil {
		return base
	}

	result := *base
	if len(overlay.Extensions) > 0 {
		result.Extensions = overlay.Extensions
	}
	if overlay.Mode != "" {
		result.Mode = overlay.Mode
	}
	if len(overlay.Types) > 0 {
		result.Types = overlay.Types
	}
	return &result
}

// MergeAll merges multiple configs in order (lowest precedence first).
func MergeAll(configs []*Config) (*Config, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs to merge")
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = Merge(result, configs[i])
	}
	return result, nil
}

// HierarchicalOptions controls LoadHierarchical.
type HierarchicalOptions struct {
	ProjectPath      string
	SystemConfigPath string
	UserConfigPath   string

	// NoInherit loads only the project layer.
	NoInherit bool
}

// HierarchicalResult is the merged config plus the layers that were checked.
type HierarchicalResult struct {
	Config *Config
	Layers []ConfigLayerInfo
}

// LoadHierarchical loads the system, user and project layers that exist,
// merges them, applies environment overrides and validates the result.
// A missing layer is skipped; a layer that exists but cannot be read or
// parsed fails the load.
func LoadHierarchical(opts HierarchicalOptions) (*HierarchicalResult, error) {
	layers := layerPaths(opts)

	var loaded []*Config
	for i := range layers {
		layer := &layers[i]
		cfg, err := Parse(layer.Path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			layer.Err = err
			return nil, fmt.Errorf("%s config: %w", layer.Level, err)
		}
		layer.Loaded = true
		loaded = append(loaded, cfg)
	}

	merged := &Config{}
	if len(loaded) > 0 {
		var err error
		if merged, err = MergeAll(loaded); err != nil {
			return nil, err
		}
	}

	ApplyEnv(merged)

	if errs := Validate(merged); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &HierarchicalResult{Config: merged, Layers: layers}, nil
}
