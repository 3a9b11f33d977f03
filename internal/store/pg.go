package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bayasdev/power-grid-balance/internal/adapter"
	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// Migrate creates or updates the balance schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Balance{},
		&schema.Category{},
		&schema.Source{},
		&schema.Value{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = time.Hour
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// calculateSafeBatchSize computes the batch size for bulk value inserts that
// stays under PostgreSQL's 65535-parameter extended-protocol limit, leaving
// headroom for ON CONFLICT assignment parameters.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	safeBatchSize := max((maxParams-totalHeadroom)/fieldsPerRecord, 1)
	if safeBatchSize > totalRecords {
		return totalRecords
	}
	return safeBatchSize
}

// UpsertBalance idempotently persists one normalized ingestion batch. The
// balance row is keyed by (natural_id, balance_date); categories and sources
// by natural id alone; values by (source_id, datetime). Each entity's upsert
// runs independently - there is no batch-wide transaction, so a failure
// partway through leaves earlier entities committed and the next run's
// idempotent upsert is the recovery mechanism.
func (s *pgStore) UpsertBalance(ctx context.Context, balanceDate time.Time, normalized *domain.NormalizedBalance) error {
	day := domain.StartOfDayUTC(balanceDate)

	balance := schema.Balance{
		NaturalID:     normalized.Balance.NaturalID,
		BalanceDate:   day,
		Type:          normalized.Balance.Type,
		Title:         normalized.Balance.Title,
		Description:   normalized.Balance.Description,
		LastUpdate:    normalized.Balance.LastUpdate,
		CacheHit:      normalized.Balance.CacheHit,
		CacheExpireAt: normalized.Balance.CacheExpireAt,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "natural_id"}, {Name: "balance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"type", "title", "description", "last_update", "cache_hit", "cache_expire_at", "updated_at",
		}),
	}).Clauses(clause.Returning{}).Create(&balance).Error; err != nil {
		return &domain.StorageError{Op: "upsert balance", Err: err}
	}

	// Categories are processed sequentially: one category's sources and
	// values are fully upserted before the next category starts.
	for i := range normalized.Categories {
		if err := s.upsertCategory(ctx, balance.ID, &normalized.Categories[i]); err != nil {
			return err
		}
	}

	return nil
}

// upsertCategory persists one category and its sources. The category is
// keyed by natural id alone and re-linked to the given balance: a category
// ingested under an earlier balance is reassigned to the latest balance
// that mentions it.
func (s *pgStore) upsertCategory(ctx context.Context, balanceID int64, record *domain.CategoryRecord) error {
	category := schema.Category{
		BalanceID:   balanceID,
		NaturalID:   record.NaturalID,
		Type:        string(record.Type),
		Title:       record.Title,
		Description: record.Description,
		LastUpdate:  record.LastUpdate,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "natural_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"balance_id", "type", "title", "description", "last_update", "updated_at",
		}),
	}).Clauses(clause.Returning{}).Create(&category).Error; err != nil {
		return &domain.StorageError{Op: "upsert category " + record.NaturalID, Err: err}
	}

	for i := range record.Sources {
		source := &record.Sources[i]
		// Defensive re-check of the normalizer's cross-reference: a source
		// is never persisted under a category whose natural id its group id
		// does not match.
		if source.GroupID != record.NaturalID {
			logger.WarnCtx(ctx, "dropping source with mismatched group id at storage layer",
				zap.String("source_id", source.NaturalID),
				zap.String("group_id", source.GroupID),
				zap.String("category_id", record.NaturalID),
			)
			continue
		}
		if err := s.upsertSource(ctx, category.ID, source); err != nil {
			return err
		}
	}

	return nil
}

// upsertSource persists one source and its values, keyed by natural id
func (s *pgStore) upsertSource(ctx context.Context, categoryID int64, record *domain.SourceRecord) error {
	source := schema.Source{
		CategoryID:      categoryID,
		NaturalID:       record.NaturalID,
		GroupID:         record.GroupID,
		Type:            record.Type,
		Title:           record.Title,
		Description:     record.Description,
		Color:           record.Color,
		Icon:            record.Icon,
		Magnitude:       record.Magnitude,
		Composite:       record.Composite,
		LastUpdate:      record.LastUpdate,
		Total:           record.Total,
		TotalPercentage: record.TotalPercentage,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "natural_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category_id", "group_id", "type", "title", "description", "color", "icon",
			"magnitude", "composite", "last_update", "total", "total_percentage", "updated_at",
		}),
	}).Clauses(clause.Returning{}).Create(&source).Error; err != nil {
		return &domain.StorageError{Op: "upsert source " + record.NaturalID, Err: err}
	}

	if len(record.Values) == 0 {
		return nil
	}

	values := make([]schema.Value, 0, len(record.Values))
	for _, v := range record.Values {
		values = append(values, schema.Value{
			SourceID:   source.ID,
			Datetime:   v.Datetime,
			Value:      v.Value,
			Percentage: v.Percentage,
		})
	}

	batchSize := calculateSafeBatchSize(len(values), 6)
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_id"}, {Name: "datetime"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "percentage", "updated_at"}),
	}).CreateInBatches(&values, batchSize).Error; err != nil {
		return &domain.StorageError{Op: "upsert values for source " + record.NaturalID, Err: err}
	}

	return nil
}

// GetBalanceByDate retrieves the balance for a calendar day with its full
// category/source/value tree preloaded
func (s *pgStore) GetBalanceByDate(ctx context.Context, date time.Time) (*schema.Balance, error) {
	var balance schema.Balance
	err := s.db.WithContext(ctx).
		Preload("Categories.Sources.Values").
		Where("balance_date = ?", domain.StartOfDayUTC(date)).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, &domain.StorageError{Op: "get balance by date", Err: err}
	}
	return &balance, nil
}

// ListBalances retrieves the balances whose date falls in [start, end]
func (s *pgStore) ListBalances(ctx context.Context, start, end time.Time) ([]*schema.Balance, error) {
	var balances []*schema.Balance
	err := s.db.WithContext(ctx).
		Where("balance_date BETWEEN ? AND ?", domain.StartOfDayUTC(start), domain.StartOfDayUTC(end)).
		Order("balance_date ASC").
		Find(&balances).Error
	if err != nil {
		return nil, &domain.StorageError{Op: "list balances", Err: err}
	}
	return balances, nil
}

// SummaryCounts returns aggregate entity counts and the most recent update
func (s *pgStore) SummaryCounts(ctx context.Context) (*Summary, error) {
	var summary Summary

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&schema.Balance{}, &summary.Balances},
		{&schema.Category{}, &summary.Categories},
		{&schema.Source{}, &summary.Sources},
		{&schema.Value{}, &summary.Values},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, &domain.StorageError{Op: "summary counts", Err: err}
		}
	}

	var mostRecent *time.Time
	err := s.db.WithContext(ctx).Model(&schema.Balance{}).
		Select("max(updated_at)").
		Scan(&mostRecent).Error
	if err != nil {
		return nil, &domain.StorageError{Op: "summary most recent update", Err: err}
	}
	summary.MostRecentUpdate = mostRecent

	return &summary, nil
}

// PurgeOlderThan deletes balances created before now minus the retention
// window. Categories, sources and values go with them via the cascade
// constraints. Returns the number of balance rows removed.
func (s *pgStore) PurgeOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.clock.Now().AddDate(0, 0, -retentionDays)

	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&schema.Balance{})
	if result.Error != nil {
		return 0, &domain.StorageError{Op: "purge balances", Err: result.Error}
	}

	if result.RowsAffected > 0 {
		logger.InfoCtx(ctx, "purged balances past retention",
			zap.Int64("deleted", result.RowsAffected),
			zap.Time("cutoff", cutoff),
		)
	}

	return result.RowsAffected, nil
}
