package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "bulbs.yaml"

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.bulbs/configs/bulbs.yaml ->
// ./configs/bulbs.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes. A custom path that cannot be read or parsed is an error; the
// implicit locations are skipped when unreadable.
func Load(customPath string) (BulbsConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (BulbsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBulbsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, p := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(defaultBulbsYAML)
	if err != nil {
		return DefaultBulbsConfig(), nil
	}
	return cfg, nil
}

func decode(data []byte) (BulbsConfig, error) {
	cfg := DefaultBulbsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBulbsConfig(), err
	}
	return cfg, nil
}

// HomeDir returns ~/.bulbs, or "" if the home directory is unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bulbs")
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
