// Package config loads optional user configuration from
// $XDG_CONFIG_HOME/showinfm/config.toml. A missing file is not an error;
// everything here has a sensible zero value.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/showinfm/pkg/errors"
	"github.com/arthur-debert/showinfm/pkg/logging"
)

var log = logging.GetLogger("config")

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	// FileManager forces a specific file manager instead of resolving one
	// from the desktop environment.
	FileManager string `toml:"file_manager"`

	// SelectFolder opens a window with the folder itself selected rather
	// than showing its contents, when a directory path is given.
	SelectFolder bool `toml:"select_folder"`

	// Verbose echoes launched commands to stdout.
	Verbose bool `toml:"verbose"`

	// Debug raises the log level as if --verbose --verbose was passed.
	Debug bool `toml:"debug"`
}

// Path returns the config file location under the XDG config directory.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "showinfm", "config.toml")
}

// Load reads the config file at Path. When the file does not exist the zero
// Config is returned with no error.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses a specific config file.
func LoadFrom(path string) (Config, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No config file, using defaults")
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	logger.Debug().
		Str("file_manager", cfg.FileManager).
		Bool("select_folder", cfg.SelectFolder).
		Msg("Config loaded")

	return cfg, nil
}
