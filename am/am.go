package am

import "time"

// Config represents the glyphnote configuration
type Config struct {
	Notation NotationConfig `mapstructure:"notation"`
	Log      LogConfig      `mapstructure:"log"`
}

// NotationConfig configures symbol resolution
type NotationConfig struct {
	Defaults        []string `mapstructure:"defaults"`          // Tie-break modifiers (default: ["r"])
	TablePath       string   `mapstructure:"table_path"`        // .toml/.yaml table file; empty = builtin table
	Watch           bool     `mapstructure:"watch"`             // Reload table_path when it changes
	WatchDebounceMS int      `mapstructure:"watch_debounce_ms"` // Quiet period before a reload (default: 250)
}

// LogConfig configures structured logging
type LogConfig struct {
	JSON      bool `mapstructure:"json"`      // JSON output instead of console
	Verbosity int  `mapstructure:"verbosity"` // 0 = warnings, 1 = info, 2 = debug
}

// Config file and environment constants
const (
	EnvPrefix      = "GLYPHNOTE"
	ConfigFileName = "glyphnote.toml"
	UserConfigDir  = ".glyphnote"

	DefaultWatchDebounceMS = 250
)

// WatchDebounce returns the debounce period as a duration
func (c NotationConfig) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// UsesBuiltinTable reports whether no table file is configured
func (c NotationConfig) UsesBuiltinTable() bool {
	return c.TablePath == ""
}
