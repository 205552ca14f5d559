// Package cmdconfig reads the protoir CLI's own optional TOML config
// file, in the role the teacher's internal/config plays for generator
// settings, using the TOML library the invowk-invowk pack depends on.
package cmdconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the shape of ~/.protoir.toml.
type FileConfig struct {
	LogLevel   string `toml:"log_level"`
	StrictMode bool   `toml:"strict_mode"`
}

// Load reads the user's config file if present, returning defaults
// otherwise. A missing file is not an error; a malformed one is.
func Load() (FileConfig, error) {
	cfg := FileConfig{LogLevel: "info"}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(home, ".protoir.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cmdconfig: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cmdconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}
