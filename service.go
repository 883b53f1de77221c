package glyphnote

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/teranos/glyphnote/am"
	"github.com/teranos/glyphnote/errors"
	"github.com/teranos/glyphnote/logger"
	"github.com/teranos/glyphnote/resolve"
	"github.com/teranos/glyphnote/table"
	"github.com/teranos/glyphnote/version"
)

const builtinSource = "builtin"

// Service resolves notations against a configured table. When the table comes
// from a watched file, each reload swaps in a new resolver; lookups in flight
// finish against the table they started with.
type Service struct {
	resolver atomic.Pointer[resolve.Resolver]
	watcher  *table.Watcher
	source   string
	opts     []resolve.Option
	log      *zap.SugaredLogger
}

// OpenDefault loads configuration with am.Load, initialises logging from it
// and opens a Service.
func OpenDefault() (*Service, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := logger.InitializeWithVerbosity(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	logger.Debugw("Opening glyphnote",
		logger.FieldVersion, version.Get().String(),
		logger.FieldLogLevel, logger.LevelName(cfg.Log.Verbosity),
		"config", cfg.String())
	return Open(cfg)
}

// Open validates cfg and builds a Service. The builtin table is used when
// cfg.Notation.TablePath is empty. The default modifier set is exactly
// cfg.Notation.Defaults; am.SetDefaults fills in ["r"].
func Open(cfg *am.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.AssertionFailedf("glyphnote.Open: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source := builtinSource
	if !cfg.Notation.UsesBuiltinTable() {
		source = cfg.Notation.TablePath
	}

	log := logger.ChildLogger(logger.ComponentLogger("glyphnote"), logger.FieldTable, source)
	s := &Service{
		source: source,
		log:    log,
		opts: []resolve.Option{
			resolve.WithDefaults(cfg.Notation.Defaults...),
			resolve.WithLogger(log.Named("resolve")),
		},
	}

	var (
		t   *table.Table
		err error
	)
	switch {
	case cfg.Notation.UsesBuiltinTable():
		t = table.Builtin()
	case cfg.Notation.Watch:
		s.watcher, err = table.NewWatcher(cfg.Notation.TablePath,
			table.WithDebounce(cfg.Notation.WatchDebounce()),
			table.WithWatcherLogger(log.Named("table")))
		if err != nil {
			return nil, err
		}
		t = s.watcher.Table()
	default:
		if t, err = table.LoadFile(cfg.Notation.TablePath); err != nil {
			return nil, err
		}
	}

	if err := s.install(t); err != nil {
		if s.watcher != nil {
			s.watcher.Close()
		}
		return nil, err
	}

	if s.watcher != nil {
		s.watcher.OnReload(func(t *table.Table) {
			if err := s.install(t); err != nil {
				s.log.Errorw("Failed to install reloaded table",
					logger.FieldError, err)
			}
		})
	}

	return s, nil
}

func (s *Service) install(t *table.Table) error {
	r, err := resolve.New(t, s.opts...)
	if err != nil {
		return err
	}
	s.resolver.Store(r)

	s.log.Infow("Symbol table ready",
		logger.FieldEntries, t.Len(),
		logger.FieldDigest, t.Digest())
	return nil
}

// Watch applies table file changes until ctx is cancelled. It returns nil at
// once when the service is not watching a file.
func (s *Service) Watch(ctx context.Context) error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Run(ctx)
}

// Get returns the symbol for a notation.
func (s *Service) Get(notation string) (rune, bool) {
	return s.resolver.Load().Resolve(notation)
}

// Lookup returns the table entry a notation resolves to.
func (s *Service) Lookup(notation string) (table.Entry, bool) {
	return s.resolver.Load().Lookup(notation)
}

// Explain shows how a notation is scored.
func (s *Service) Explain(notation string) resolve.Explanation {
	return s.resolver.Load().Explain(notation)
}

// Table returns the table currently in use.
func (s *Service) Table() *table.Table {
	return s.resolver.Load().Table()
}

// Entries lists the current table in order.
func (s *Service) Entries() []table.Entry {
	return s.Table().Entries()
}

// Source names where the table came from: a file path or "builtin".
func (s *Service) Source() string {
	return s.source
}

// Close stops watching the table file, if any, and flushes buffered logs.
func (s *Service) Close() error {
	defer logger.Cleanup()
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}
