package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"blinkdeploys/tokenscope/pkg/catalog"
)

// AgeRecorder receives the catalog age after every check.
type AgeRecorder interface {
	SetCatalogAge(days float64)
}

// Config configures the staleness audit.
type Config struct {
	// Schedule is a standard 5-field cron expression. Empty disables the
	// scheduler; Check can still be called directly.
	Schedule string

	// MaxAge is the age after which the catalog is reported stale.
	MaxAge time.Duration
}

// Finding is the outcome of one check.
type Finding struct {
	AsOf    time.Time
	Age     time.Duration
	MaxAge  time.Duration
	Stale   bool
	Undated bool
}

// Auditor periodically checks how old the catalog prices are. It only
// reads the catalog.
type Auditor struct {
	catalog  *catalog.Catalog
	config   Config
	recorder AgeRecorder
	now      func() time.Time

	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// New creates an auditor for c. recorder may be nil.
func New(c *catalog.Catalog, cfg Config, recorder AgeRecorder) *Auditor {
	return &Auditor{
		catalog:  c,
		config:   cfg,
		recorder: recorder,
		now:      time.Now,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "catalog.audit"),
	}
}

// Check inspects the catalog age once, logs the result and reports it to
// the recorder.
func (a *Auditor) Check() Finding {
	f := Finding{
		AsOf:   a.catalog.AsOf(),
		MaxAge: a.config.MaxAge,
	}

	if f.AsOf.IsZero() {
		f.Undated = true
		a.logger.Warn("catalog has no as_of date, cannot judge staleness")
		return f
	}

	f.Age = a.catalog.Age(a.now())
	f.Stale = a.config.MaxAge > 0 && f.Age > a.config.MaxAge

	days := f.Age.Hours() / 24
	if a.recorder != nil {
		a.recorder.SetCatalogAge(days)
	}

	if f.Stale {
		a.logger.Warn("pricing catalog is stale",
			"as_of", f.AsOf.Format(catalog.AsOfLayout),
			"age_days", int(days),
			"max_age_days", int(a.config.MaxAge.Hours()/24),
		)
	} else {
		a.logger.Debug("pricing catalog is current",
			"as_of", f.AsOf.Format(catalog.AsOfLayout),
			"age_days", int(days),
		)
	}

	return f
}

// Start runs one check immediately, then schedules Check on the configured
// cron expression until ctx is cancelled or Stop is called.
func (a *Auditor) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.Schedule == "" {
		a.logger.Info("audit schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(a.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", a.config.Schedule, err)
	}

	if _, err := a.cron.AddFunc(a.config.Schedule, func() { a.Check() }); err != nil {
		return fmt.Errorf("failed to schedule catalog audit: %w", err)
	}

	a.Check()

	a.cron.Start()
	a.running = true

	a.logger.Info("catalog audit scheduler started",
		"schedule", a.config.Schedule,
		"max_age", a.config.MaxAge.String(),
	)

	go func() {
		<-ctx.Done()
		a.Stop()
	}()

	return nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (a *Auditor) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		<-a.cron.Stop().Done()
		a.running = false
		a.logger.Info("catalog audit scheduler stopped")
	}
}

// IsRunning reports whether the scheduler is active.
func (a *Auditor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.running
}

// NextRun returns the next scheduled check, or nil when not scheduled.
func (a *Auditor) NextRun() *time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := a.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
