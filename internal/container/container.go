// Package container provides dependency injection for the application. It
// centralizes the creation and wiring of the store, engine, scheduler and
// reminder loop so commands receive their dependencies ready-made.
package container

import (
	"fmt"
	"time"

	"tallybook/internal/config"
	"tallybook/internal/export"
	"tallybook/internal/ledger"
	"tallybook/internal/logging"
	"tallybook/internal/notify"
	"tallybook/internal/reminder"
	"tallybook/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation: fields are private and reachable only through getters.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	store    store.Store
	engine   *ledger.Engine
	scanner  *reminder.Scanner
	loop     *reminder.Loop
	exporter *export.Exporter
}

// Option overrides a dependency during construction, mainly for tests.
type Option func(*Container)

// WithStore replaces the file-backed store.
func WithStore(st store.Store) Option {
	return func(c *Container) { c.store = st }
}

// WithNotifier replaces the console notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Container) {
		c.scanner = reminder.NewScanner(n, c.logger, time.Now)
	}
}

// New creates and wires all application dependencies from configuration.
func New(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	c := &Container{
		logger:   logger,
		config:   cfg,
		store:    store.NewSnapshotStore(cfg.Data.File, logger),
		engine:   ledger.New(logger, time.Now),
		scanner:  reminder.NewScanner(notify.NewConsoleNotifier(nil), logger, time.Now),
		exporter: export.New(cfg.CSV.Delimiter, logger, time.Now),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.loop = reminder.NewLoop(c.scanner, cfg.ReminderInterval(), logger)
	return c, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the snapshot store.
func (c *Container) Store() store.Store { return c.store }

// Engine returns the ledger engine.
func (c *Container) Engine() *ledger.Engine { return c.engine }

// Scanner returns the reminder scanner.
func (c *Container) Scanner() *reminder.Scanner { return c.scanner }

// Loop returns the reminder loop.
func (c *Container) Loop() *reminder.Loop { return c.loop }

// Exporter returns the CSV exporter.
func (c *Container) Exporter() *export.Exporter { return c.exporter }
