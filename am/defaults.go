package am

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Notation defaults
	v.SetDefault("notation.defaults", []string{"r"}) // "r" picks the rightward variant on ties
	v.SetDefault("notation.table_path", "")          // builtin table
	v.SetDefault("notation.watch", false)
	v.SetDefault("notation.watch_debounce_ms", DefaultWatchDebounceMS)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// String returns a string representation of the config
func (c *Config) String() string {
	table := c.Notation.TablePath
	if table == "" {
		table = "builtin"
	}
	return fmt.Sprintf("Config{Notation: {Table: %s, Defaults: [%s], Watch: %t}, Log: {JSON: %t, Verbosity: %d}}",
		table, strings.Join(c.Notation.Defaults, " "), c.Notation.Watch, c.Log.JSON, c.Log.Verbosity)
}
