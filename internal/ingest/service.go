package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bayasdev/power-grid-balance/internal/adapter"
	"github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/normalizer"
	"github.com/bayasdev/power-grid-balance/internal/providers/ree"
	"github.com/bayasdev/power-grid-balance/internal/store"
)

const (
	// historicalWindowStart and historicalWindowEnd bound the trailing
	// backfill window in days before today. Upstream revises a day's data
	// for a while after the fact; this window re-pulls those revisions.
	historicalWindowStart = 2
	historicalWindowEnd   = 8
)

// Service runs the fetch → normalize → persist pipeline for one date at a
// time. It owns no schedule of its own; the scheduler (or a manual trigger)
// invokes it.
type Service struct {
	client ree.Client
	store  store.Store
	clock  adapter.Clock
}

// NewService creates a new ingestion service
func NewService(client ree.Client, st store.Store, clock adapter.Clock) *Service {
	return &Service{
		client: client,
		store:  st,
		clock:  clock,
	}
}

// IngestDate runs the full pipeline for one calendar day
func (s *Service) IngestDate(ctx context.Context, date time.Time) error {
	payload, err := s.client.FetchDay(ctx, date)
	if err != nil {
		return err
	}

	normalized, err := normalizer.Normalize(payload)
	if err != nil {
		return err
	}

	if err := s.store.UpsertBalance(ctx, date, normalized); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "ingested balance",
		zap.String("balance_id", normalized.Balance.NaturalID),
		zap.Time("date", date),
		zap.Int("categories", len(normalized.Categories)),
	)

	return nil
}

// IngestCurrentDay ingests today's balance
func (s *Service) IngestCurrentDay(ctx context.Context) error {
	return s.IngestDate(ctx, s.clock.Now())
}

// IngestPreviousDay re-ingests yesterday's balance to catch late revisions
func (s *Service) IngestPreviousDay(ctx context.Context) error {
	return s.IngestDate(ctx, s.clock.Now().AddDate(0, 0, -1))
}

// IngestHistorical re-pulls the trailing backfill window one day at a time.
// A failed day does not stop the remaining days; the per-day errors are
// joined and returned so a manual trigger still sees them.
func (s *Service) IngestHistorical(ctx context.Context) error {
	now := s.clock.Now()

	var errs []error
	for daysAgo := historicalWindowStart; daysAgo <= historicalWindowEnd; daysAgo++ {
		date := now.AddDate(0, 0, -daysAgo)
		if err := s.IngestDate(ctx, date); err != nil {
			logger.WarnCtx(ctx, "historical backfill day failed, continuing",
				zap.Time("date", date),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("backfill %s: %w", date.Format("2006-01-02"), err))
		}
	}

	return errors.Join(errs...)
}

// PurgeExpired deletes balances older than the retention window
func (s *Service) PurgeExpired(ctx context.Context, retentionDays int) (int64, error) {
	return s.store.PurgeOlderThan(ctx, retentionDays)
}
