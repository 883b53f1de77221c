// Package am loads glyphnote configuration.
//
// Sources, lowest precedence first: defaults, ~/.glyphnote/config.toml, the
// nearest glyphnote.toml found walking up from the working directory, and
// GLYPHNOTE_* environment variables (GLYPHNOTE_NOTATION_TABLE_PATH, ...).
package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/glyphnote/errors"
	"github.com/teranos/glyphnote/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the configuration using Viper. The result is cached until Reset.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, on top of the
// defaults. Environment variables are not consulted.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}

	// A relative table path is relative to the file that names it.
	if p := config.Notation.TablePath; p != "" && !filepath.IsAbs(p) {
		config.Notation.TablePath = filepath.Join(filepath.Dir(configPath), p)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// GLYPHNOTE_NOTATION_TABLE_PATH -> notation.table_path
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for glyphnote.toml by walking up the directory
// tree. Returns the first path found, or empty string if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}

// configPaths lists config files in precedence order, lowest first
func configPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, UserConfigDir, "config.toml"))
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	return paths
}

// mergeConfigFiles merges existing config files into v, later files winning.
// Files land in viper's config layer, so GLYPHNOTE_* variables still override
// them. Unreadable files are skipped; configuration must never block lookups.
func mergeConfigFiles(v *viper.Viper) {
	for _, configPath := range configPaths() {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file",
				logger.FieldPath, configPath,
				logger.FieldError, err)
			continue
		}

		settings := tempViper.AllSettings()
		// A relative table path is relative to the file that names it.
		if p := tempViper.GetString("notation.table_path"); p != "" && !filepath.IsAbs(p) {
			if notation, ok := settings["notation"].(map[string]interface{}); ok {
				notation["table_path"] = filepath.Join(filepath.Dir(configPath), p)
			}
		}

		if err := v.MergeConfigMap(settings); err != nil {
			logger.Warnw("Skipping config file that failed to merge",
				logger.FieldPath, configPath,
				logger.FieldError, err)
		}
	}
}
