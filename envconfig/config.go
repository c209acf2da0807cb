package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var (
	// Set via BUILDVOCAB_DEBUG in the environment
	Debug bool
	// Set via BUILDVOCAB_OUTPUT_DIR in the environment
	OutputDir string
	// Set via BUILDVOCAB_MIN_FREQ in the environment
	MinFreq int
	// Set via BUILDVOCAB_MAX_ITEMS in the environment
	MaxItems int
	// Set via BUILDVOCAB_STORE_FREQS in the environment
	StoreFreqs bool
	// Set via BUILDVOCAB_EXCLUDE_SYMBOLS in the environment
	ExcludeSymbols bool
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"BUILDVOCAB_CONFIG":          {"BUILDVOCAB_CONFIG", clean("BUILDVOCAB_CONFIG"), "Path to a TOML config file"},
		"BUILDVOCAB_DEBUG":           {"BUILDVOCAB_DEBUG", Debug, "Show additional debug information (e.g. BUILDVOCAB_DEBUG=1)"},
		"BUILDVOCAB_EXCLUDE_SYMBOLS": {"BUILDVOCAB_EXCLUDE_SYMBOLS", ExcludeSymbols, "Omit reserved symbols by default"},
		"BUILDVOCAB_MAX_ITEMS":       {"BUILDVOCAB_MAX_ITEMS", MaxItems, "Default vocabulary size cap (default 0, unbounded)"},
		"BUILDVOCAB_MIN_FREQ":        {"BUILDVOCAB_MIN_FREQ", MinFreq, "Default minimum token frequency (default 0)"},
		"BUILDVOCAB_OUTPUT_DIR":      {"BUILDVOCAB_OUTPUT_DIR", OutputDir, "Default output directory for per-file vocabularies (default \".\")"},
		"BUILDVOCAB_STORE_FREQS":     {"BUILDVOCAB_STORE_FREQS", StoreFreqs, "Store frequencies alongside IDs by default"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// lookup prefers the environment over the config file
func lookup(key string) string {
	if v := clean(key); v != "" {
		return v
	}
	return GetConfigValue(key)
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	resetConfigFile()

	Debug = false
	OutputDir = "."
	MinFreq = 0
	MaxItems = 0
	StoreFreqs = false
	ExcludeSymbols = false

	if debug := lookup("BUILDVOCAB_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	if dir := lookup("BUILDVOCAB_OUTPUT_DIR"); dir != "" {
		OutputDir = dir
	}

	MinFreq = loadCount("BUILDVOCAB_MIN_FREQ")
	MaxItems = loadCount("BUILDVOCAB_MAX_ITEMS")
	StoreFreqs = loadBool("BUILDVOCAB_STORE_FREQS")
	ExcludeSymbols = loadBool("BUILDVOCAB_EXCLUDE_SYMBOLS")
}

func loadCount(key string) int {
	s := lookup(key)
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		slog.Error("invalid setting must be a non-negative integer", key, s, "error", err)
		return 0
	}

	return n
}

func loadBool(key string) bool {
	s := lookup(key)
	if s == "" {
		return false
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		slog.Error("invalid setting", key, s, "error", err)
		return false
	}

	return b
}
