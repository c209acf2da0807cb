package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config represents the TOML configuration structure
type Config struct {
	Output struct {
		Dir string `toml:"dir"`
	} `toml:"output"`

	Vocab struct {
		MinFreq        int  `toml:"min_freq"`
		MaxItems       int  `toml:"max_items"`
		StoreFreqs     bool `toml:"store_freqs"`
		ExcludeSymbols bool `toml:"exclude_symbols"`
	} `toml:"vocab"`

	Logging struct {
		Debug bool `toml:"debug"`
	} `toml:"logging"`
}

var (
	configOnce sync.Once
	config     *Config
	configPath string
)

// GetConfigPaths returns the list of possible config file paths. An explicit
// BUILDVOCAB_CONFIG is the only candidate when set.
func GetConfigPaths() []string {
	if p := clean("BUILDVOCAB_CONFIG"); p != "" {
		return []string{p}
	}

	var paths []string
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		paths = append(paths, filepath.Join(xdgConfig, "buildvocab", "config.toml"))
	}

	home, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "buildvocab", "config.toml"),
			filepath.Join(home, ".buildvocab", "config.toml"),
		)
	}

	return paths
}

// loadConfig loads the first available configuration file
func loadConfig() (*Config, string, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			var cfg Config
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return nil, "", fmt.Errorf("error parsing config file %s: %w", path, err)
			}
			return &cfg, path, nil
		}
	}
	return nil, "", nil
}

func resetConfigFile() {
	configOnce = sync.Once{}
	config = nil
	configPath = ""
}

// GetConfigValue returns the value for a given environment variable key from the config file
func GetConfigValue(key string) string {
	configOnce.Do(func() {
		var err error
		config, configPath, err = loadConfig()
		if err != nil {
			slog.Warn("failed to load config file", "error", err)
		} else if config != nil {
			slog.Debug("loaded config file", "path", configPath)
		}
	})

	if config == nil {
		return ""
	}

	switch key {
	case "BUILDVOCAB_OUTPUT_DIR":
		return config.Output.Dir
	case "BUILDVOCAB_MIN_FREQ":
		if config.Vocab.MinFreq != 0 {
			return strconv.Itoa(config.Vocab.MinFreq)
		}
	case "BUILDVOCAB_MAX_ITEMS":
		if config.Vocab.MaxItems != 0 {
			return strconv.Itoa(config.Vocab.MaxItems)
		}
	case "BUILDVOCAB_STORE_FREQS":
		return strconv.FormatBool(config.Vocab.StoreFreqs)
	case "BUILDVOCAB_EXCLUDE_SYMBOLS":
		return strconv.FormatBool(config.Vocab.ExcludeSymbols)
	case "BUILDVOCAB_DEBUG":
		return strconv.FormatBool(config.Logging.Debug)
	}

	return ""
}

// ConfigFile returns the path of the config file in use, if any.
func ConfigFile() string {
	GetConfigValue("")
	return configPath
}
