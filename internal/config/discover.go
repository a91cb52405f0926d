package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultFileName is the project-level config file looked up by default.
const DefaultFileName = "hasher.yaml"

// Environment variables read by ApplyEnv and EnvNoInherit.
const (
	EnvExtensions   = "HASHER_FILE_EXTENSIONS"
	EnvMode         = "HASHER_DIGEST_MODE"
	EnvTypes        = "HASHER_DIGEST_TYPES"
	EnvNoInheritVar = "HASHER_NO_INHERIT"
)

// ConfigLevel is the precedence level of a config file.
type ConfigLevel string

const (
	LevelSystem  ConfigLevel = "system"
	LevelUser    ConfigLevel = "user"
	LevelProject ConfigLevel = "project"
)

// ConfigLayerInfo describes a config file that was looked for.
type ConfigLayerInfo struct {
	Err    error // non-nil if the file exists but failed to load
	Path   string
	Level  ConfigLevel
	Loaded bool
}

// layerPaths lists the config files to try, lowest precedence first. With
// NoInherit (or HASHER_NO_INHERIT) only the project file is listed. A file
// reachable from two levels is kept at the lower one.
func layerPaths(opts HierarchicalOptions) []ConfigLayerInfo {
	candidates := []ConfigLayerInfo{{Path: opts.ProjectPath, Level: LevelProject}}
	if !opts.NoInherit && !EnvNoInherit() {
		system := opts.SystemConfigPath
		if system == "" {
			system = systemConfigPath()
		}
		user := opts.UserConfigPath
		if user == "" {
			user = userConfigPath()
		}
		candidates = []ConfigLayerInfo{
			{Path: system, Level: LevelSystem},
			{Path: user, Level: LevelUser},
			candidates[0],
		}
	}

	var layers []ConfigLayerInfo
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.Path == "" {
			continue
		}
		key := c.Path
		if abs, err := filepath.Abs(c.Path); err == nil {
			key = abs
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		layers = append(layers, c)
	}
	return layers
}

// systemConfigPath is /etc/hasher/hasher.yaml. Windows has no system layer.
func systemConfigPath() string {
	if runtime.GOOS == "windows" {
		return ""
	}
	return filepath.Join("/etc", "hasher", DefaultFileName)
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hasher", DefaultFileName)
}

// EnvNoInherit reports whether HASHER_NO_INHERIT is "1" or "true".
func EnvNoInherit() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvNoInheritVar)))
	return v == "1" || v == "true"
}

// ApplyEnv overrides config keys with the HASHER_* environment variables
// that are set and non-empty.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvExtensions)); v != "" {
		cfg.Extensions = ParseList(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		cfg.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTypes)); v != "" {
		cfg.Types = ParseList(v)
	}
}
