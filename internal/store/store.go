package store

import (
	"context"
	"time"

	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/store/schema"
)

// Summary is the aggregate row-count snapshot served to the dashboard
type Summary struct {
	Balances         int64      `json:"balances"`
	Categories       int64      `json:"categories"`
	Sources          int64      `json:"sources"`
	Values           int64      `json:"values"`
	MostRecentUpdate *time.Time `json:"most_recent_update"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertBalance idempotently persists one normalized ingestion batch
	// keyed by natural identifiers. Upserts within the batch execute
	// independently; a failure leaves earlier entities committed.
	UpsertBalance(ctx context.Context, balanceDate time.Time, normalized *domain.NormalizedBalance) error

	// GetBalanceByDate retrieves the balance for a calendar day with its
	// full category/source/value tree preloaded
	GetBalanceByDate(ctx context.Context, date time.Time) (*schema.Balance, error)

	// ListBalances retrieves the balances whose date falls in [start, end]
	ListBalances(ctx context.Context, start, end time.Time) ([]*schema.Balance, error)

	// SummaryCounts returns aggregate entity counts and the most recent update
	SummaryCounts(ctx context.Context) (*Summary, error)

	// PurgeOlderThan deletes balances created before now minus the retention
	// window, cascading to their categories, sources and values. It returns
	// the number of top-level balance rows removed.
	PurgeOlderThan(ctx context.Context, retentionDays int) (int64, error)
}
