// Package resolve picks the table entry that best fits a decoded notation.
//
// Every entry sharing the query's name is a candidate. Each is scored (see
// Score) and the first candidate with the highest score wins, so among equal
// scores the table's own order decides.
package resolve

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/glyphnote/errors"
	"github.com/teranos/glyphnote/logger"
	"github.com/teranos/glyphnote/modifier"
	"github.com/teranos/glyphnote/notation"
	"github.com/teranos/glyphnote/table"
)

// DefaultModifiers is the tie-break set used when none is configured.
var DefaultModifiers = []string{"r"}

// ScoreAt scores the i-th entry of t against the requested modifiers.
func ScoreAt(t *table.Table, i int, mods, defaults modifier.Set) Score {
	var s Score
	for _, m := range t.ModifiersAt(i) {
		if mods.Contains(m) {
			s.Matching++
		}
		if defaults.Contains(m) {
			s.Default++
		}
		s.Total++
	}
	return s
}

// BestMatch returns the highest-scoring entry named name. It reports false
// when the table has no entry with that name.
func BestMatch(name string, mods modifier.Set, t *table.Table, defaults modifier.Set) (table.Entry, bool) {
	i, _, ok := bestIndex(name, mods, t, defaults)
	if !ok {
		return table.Entry{}, false
	}
	return t.At(i), true
}

func bestIndex(name string, mods modifier.Set, t *table.Table, defaults modifier.Set) (int, Score, bool) {
	lo, hi := t.Candidates(name)
	if lo == hi {
		return 0, Score{}, false
	}

	best := lo
	bestScore := ScoreAt(t, lo, mods, defaults)
	for i := lo + 1; i < hi; i++ {
		if s := ScoreAt(t, i, mods, defaults); bestScore.Less(s) {
			best, bestScore = i, s
		}
	}
	return best, bestScore, true
}

// Resolver resolves notations against one table with one default set. It
// holds no mutable state and is safe for concurrent use.
type Resolver struct {
	table    *table.Table
	defaults modifier.Set
	log      *zap.SugaredLogger
}

// Option configures a Resolver.
type Option func(*config)

type config struct {
	defaults []string
	log      *zap.SugaredLogger
}

// WithDefaults replaces the tie-break set. Passing no tokens disables
// default tie-breaking.
func WithDefaults(tokens ...string) Option {
	return func(c *config) {
		c.defaults = tokens
	}
}

// WithLogger sets the logger. Without it the resolver logs through the
// package-global logger as it is at log time, so logging set up after New
// still applies.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		c.log = l
	}
}

// New builds a Resolver over t. A default token that does not fit a
// modifier is a configuration error.
func New(t *table.Table, opts ...Option) (*Resolver, error) {
	if t == nil {
		return nil, errors.AssertionFailedf("resolve.New: nil table")
	}

	cfg := config{defaults: DefaultModifiers}
	for _, opt := range opts {
		opt(&cfg)
	}

	defaults, err := modifier.ParseSet(cfg.defaults...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid default modifier")
	}

	return &Resolver{table: t, defaults: defaults, log: cfg.log}, nil
}

// MustNew is like New but panics.
func MustNew(t *table.Table, opts ...Option) *Resolver {
	r, err := New(t, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Table returns the table the resolver searches.
func (r *Resolver) Table() *table.Table {
	return r.table
}

// Defaults returns the tie-break set.
func (r *Resolver) Defaults() modifier.Set {
	return r.defaults
}

// Resolve returns the symbol for s, or false if nothing matches.
func (r *Resolver) Resolve(s string) (rune, bool) {
	e, ok := r.Lookup(s)
	return e.Symbol, ok
}

// Lookup is like Resolve but returns the whole winning entry.
func (r *Resolver) Lookup(s string) (table.Entry, bool) {
	q, ok := notation.Decode(s)
	if !ok {
		return table.Entry{}, false
	}
	debug := r.debugEnabled()
	if debug && q.Dropped > 0 {
		r.debugw("Dropped overlength modifiers",
			logger.FieldNotation, s,
			logger.FieldCount, q.Dropped)
	}

	i, score, ok := bestIndex(q.Name, q.Modifiers(), r.table, r.defaults)
	if !ok {
		if debug {
			r.debugw("No symbol for notation",
				logger.FieldNotation, s,
				logger.FieldName, q.Name)
		}
		return table.Entry{}, false
	}

	e := r.table.At(i)
	if debug {
		r.debugw("Resolved notation",
			logger.FieldNotation, s,
			logger.FieldModifiers, q.Modifiers().Strings(),
			logger.FieldSymbol, string(e.Symbol),
			logger.FieldScore, score.String())
	}
	return e, true
}

// debugEnabled reports whether debug entries would be written. Fields are
// only built when it is true.
func (r *Resolver) debugEnabled() bool {
	l := r.log
	if l == nil {
		l = logger.Logger
	}
	return l != nil && l.Level().Enabled(zapcore.DebugLevel)
}

func (r *Resolver) debugw(msg string, keysAndValues ...interface{}) {
	if r.log != nil {
		r.log.Debugw(msg, keysAndValues...)
		return
	}
	logger.Debugw(msg, append(keysAndValues, logger.FieldComponent, "resolve")...)
}
