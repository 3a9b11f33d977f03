package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/logger"
)

// jobTimeout bounds a single scheduled job body. Stopping the scheduler
// never cancels a body already in flight; it only prevents future firings.
const jobTimeout = 5 * time.Minute

// Pipeline is the set of ingestion job bodies the scheduler drives
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/pipeline.go -package=mocks -mock_names=Pipeline=MockPipeline
type Pipeline interface {
	IngestCurrentDay(ctx context.Context) error
	IngestPreviousDay(ctx context.Context) error
	IngestHistorical(ctx context.Context) error
	PurgeExpired(ctx context.Context, retentionDays int) (int64, error)
}

// Config holds the scheduler's cron specs and retention window
type Config struct {
	CurrentDaySpec  string
	PreviousDaySpec string
	HistoricalSpec  string
	CleanupSpec     string
	RetentionDays   int
}

// Status is an observable snapshot of the scheduler
type Status struct {
	Running  bool `json:"is_running"`
	JobCount int  `json:"job_count"`
}

// Scheduler owns the four recurring ingestion jobs. It is a two-state
// machine (stopped/running); stop fully deregisters the jobs and a
// subsequent start registers fresh ones.
type Scheduler struct {
	config   Config
	pipeline Pipeline

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// New creates a new scheduler around the given pipeline
func New(cfg Config, pipeline Pipeline) *Scheduler {
	return &Scheduler{
		config:   cfg,
		pipeline: pipeline,
	}
}

// Start registers the recurring jobs and transitions to running. Calling
// Start on a running scheduler is a logged no-op. Immediately after
// entering the running state one eager current-day and one eager
// previous-day ingestion run best-effort in the background.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		logger.Warn("scheduler already running, ignoring start")
		return nil
	}

	c := cron.New()

	jobs := []struct {
		kind domain.JobKind
		spec string
	}{
		{domain.JobCurrentDay, s.config.CurrentDaySpec},
		{domain.JobPreviousDay, s.config.PreviousDaySpec},
		{domain.JobHistorical, s.config.HistoricalSpec},
		{domain.JobCleanup, s.config.CleanupSpec},
	}
	for _, job := range jobs {
		kind := job.kind
		if _, err := c.AddFunc(job.spec, func() { s.runScheduled(kind) }); err != nil {
			return fmt.Errorf("failed to register %s job: %w", kind, err)
		}
	}

	s.cron = c
	s.running = true
	c.Start()

	logger.Info("scheduler started",
		zap.String("current_day_spec", s.config.CurrentDaySpec),
		zap.String("previous_day_spec", s.config.PreviousDaySpec),
		zap.String("historical_spec", s.config.HistoricalSpec),
		zap.String("cleanup_spec", s.config.CleanupSpec),
	)

	// Eager first pull so a fresh deployment has data before the first tick
	go func() {
		s.runScheduled(domain.JobCurrentDay)
		s.runScheduled(domain.JobPreviousDay)
	}()

	return nil
}

// Stop cancels the recurring jobs and transitions to stopped. Calling Stop
// on a stopped scheduler is a logged no-op. An in-flight job body runs to
// completion; only future firings are prevented.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		logger.Warn("scheduler already stopped, ignoring stop")
		return
	}

	s.cron.Stop()
	s.cron = nil
	s.running = false

	logger.Info("scheduler stopped")
}

// Status returns an observable snapshot of the scheduler
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{Running: s.running}
	if s.running {
		status.JobCount = len(s.cron.Entries())
	}
	return status
}

// Trigger runs one job body once, outside the schedule and regardless of
// the running state. Unlike scheduled runs, failures propagate to the
// caller.
func (s *Scheduler) Trigger(ctx context.Context, kind domain.JobKind) error {
	body, err := s.jobBody(kind)
	if err != nil {
		return err
	}
	return body(ctx)
}

// jobBody maps a job kind to its pipeline call
func (s *Scheduler) jobBody(kind domain.JobKind) (func(context.Context) error, error) {
	switch kind {
	case domain.JobCurrentDay:
		return s.pipeline.IngestCurrentDay, nil
	case domain.JobPreviousDay:
		return s.pipeline.IngestPreviousDay, nil
	case domain.JobHistorical:
		return s.pipeline.IngestHistorical, nil
	case domain.JobCleanup:
		return func(ctx context.Context) error {
			_, err := s.pipeline.PurgeExpired(ctx, s.config.RetentionDays)
			return err
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownJobKind, kind)
	}
}

// runScheduled executes one job body under the scheduled-run error policy:
// the error is classified, logged and swallowed so a failed run never stops
// subsequent firings or crashes the process.
func (s *Scheduler) runScheduled(kind domain.JobKind) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Errorf("panic in scheduled job: %v", r), zap.String("job", string(kind)))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger.InfoCtx(ctx, "scheduled job starting", zap.String("job", string(kind)))
	start := time.Now()

	body, err := s.jobBody(kind)
	if err == nil {
		err = body(ctx)
	}
	elapsed := time.Since(start)

	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("job", string(kind)),
			zap.String("classification", classifyError(err)),
			zap.Duration("elapsed", elapsed),
		)
		return
	}

	logger.InfoCtx(ctx, "scheduled job completed",
		zap.String("job", string(kind)),
		zap.Duration("elapsed", elapsed),
	)
}

// classifyError tags an ingestion failure by which pipeline stage raised it
func classifyError(err error) string {
	var fetchErr *domain.FetchError
	var payloadErr *domain.InvalidPayloadError
	var storageErr *domain.StorageError

	switch {
	case errors.As(err, &fetchErr):
		return "remote_fetch"
	case errors.As(err, &payloadErr):
		return "invalid_payload"
	case errors.As(err, &storageErr):
		return "storage"
	default:
		return "unknown"
	}
}
