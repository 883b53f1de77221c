package am

import (
	"github.com/teranos/glyphnote/errors"
	"github.com/teranos/glyphnote/modifier"
)

// Validate checks that the configuration is valid. Errors wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	// Default modifiers must fit the compact token, or tie-breaking would
	// silently ignore them.
	for i, tok := range c.Notation.Defaults {
		if tok == "" {
			return errors.NewInvalidConfigError("notation.defaults[%d] is empty", i)
		}
		if _, err := modifier.New(tok); err != nil {
			return errors.Mark(errors.Wrapf(err, "notation.defaults[%d]", i), errors.ErrInvalidConfig)
		}
	}

	// Watching only makes sense for a table file
	if c.Notation.Watch && c.Notation.TablePath == "" {
		return errors.WithHint(
			errors.NewInvalidConfigError("notation.watch requires notation.table_path"),
			"the builtin table never changes; set notation.table_path or disable notation.watch")
	}

	// Debounce: 0 = reload on the first event, negative = invalid
	if c.Notation.WatchDebounceMS < 0 {
		return errors.NewInvalidConfigError("notation.watch_debounce_ms must be >= 0, got %d", c.Notation.WatchDebounceMS)
	}

	if c.Log.Verbosity < 0 {
		return errors.NewInvalidConfigError("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
