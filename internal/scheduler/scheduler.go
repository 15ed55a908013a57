// Package scheduler runs the scrape pipeline on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/service"
)

// DefaultSchedule runs one scrape a day.
const DefaultSchedule = "@every 24h"

// Config controls the scheduler.
type Config struct {
	Enabled  bool          `mapstructure:"enabled"`
	Schedule string        `mapstructure:"schedule"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Runner runs one scrape.
type Runner interface {
	Run(ctx context.Context) (*service.RunReport, error)
}

// Scheduler triggers Runner on a standard five-field cron spec or a
// descriptor such as "@every 6h". Overlapping ticks are skipped.
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	timeout time.Duration
	log     logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	entry  cron.EntryID
}

// New parses cfg.Schedule and registers the scrape job. It does not start.
func New(cfg Config, runner Runner, log logger.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.NewNop()
	}
	spec := cfg.Schedule
	if spec == "" {
		spec = DefaultSchedule
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	cronLog := cronLogger{log: log}
	c := cron.New(
		cron.WithParser(parser),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{cron: c, runner: runner, timeout: cfg.Timeout, log: log, ctx: ctx, cancel: cancel}

	id, err := c.AddFunc(spec, s.runOnce)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

// Start begins dispatching scheduled runs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scrape scheduler started", logger.Time("next_run", s.Next()))
}

// Stop cancels a running scrape and waits for it to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.log.Info("Scrape scheduler stopped")
}

// Next reports when the scrape will next fire; zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

func (s *Scheduler) runOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report, err := s.runner.Run(ctx)
	if err != nil {
		s.log.Error("Scheduled scrape failed", logger.Error(err))
		return
	}
	s.log.Info("Scheduled scrape finished",
		logger.String("run_id", report.RunID),
		logger.Int("normalized", report.Normalized),
		logger.Int("inserted", report.Inserted))
}

// cronLogger adapts Logger to cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, kvFields(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(kvFields(keysAndValues), logger.Error(err))...)
}

func kvFields(kv []any) []logger.Field {
	fields := make([]logger.Field, 0, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields = append(fields, logger.Any(key, kv[i+1]))
	}
	return fields
}
