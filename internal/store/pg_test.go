package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bayasdev/power-grid-balance/internal/adapter"
	"github.com/bayasdev/power-grid-balance/internal/domain"
	applogger "github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/store/schema"
)

// fixedClock pins Now so retention cutoffs are deterministic under test
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time                         { return c.now }
func (c fixedClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	if err := applogger.Initialize(applogger.Config{Debug: false}); err != nil {
		panic(err)
	}

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// cleanTables wipes all balance data between tests
func cleanTables(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.Exec("TRUNCATE balances, categories, sources, values RESTART IDENTITY CASCADE").Error)
}

func testNormalized() *domain.NormalizedBalance {
	lastUpdate := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &domain.NormalizedBalance{
		Balance: domain.BalanceRecord{
			NaturalID:  "bal1",
			Type:       "Balance de energía eléctrica",
			Title:      "Balance",
			LastUpdate: lastUpdate,
		},
		Categories: []domain.CategoryRecord{
			{
				NaturalID:  "cat1",
				Type:       domain.CategoryRenewable,
				Title:      "Renovable",
				LastUpdate: lastUpdate,
				Sources: []domain.SourceRecord{
					{
						NaturalID:       "src1",
						GroupID:         "cat1",
						Type:            "Hidráulica",
						Title:           "Hidráulica",
						LastUpdate:      lastUpdate,
						Total:           100,
						TotalPercentage: 50,
						Values: []domain.ValueRecord{
							{Datetime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 10, Percentage: 50},
							{Datetime: time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), Value: 12, Percentage: 52},
						},
					},
				},
			},
		},
	}
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, testDB.Model(model).Count(&count).Error)
	return count
}

func TestUpsertBalance_PersistsTree(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())
	date := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)

	require.NoError(t, st.UpsertBalance(ctx, date, testNormalized()))

	assert.Equal(t, int64(1), countRows(t, &schema.Balance{}))
	assert.Equal(t, int64(1), countRows(t, &schema.Category{}))
	assert.Equal(t, int64(1), countRows(t, &schema.Source{}))
	assert.Equal(t, int64(2), countRows(t, &schema.Value{}))

	balance, err := st.GetBalanceByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "bal1", balance.NaturalID)
	// Balance date is normalized to start-of-day
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), balance.BalanceDate.UTC())

	require.Len(t, balance.Categories, 1)
	require.Len(t, balance.Categories[0].Sources, 1)
	assert.Len(t, balance.Categories[0].Sources[0].Values, 2)
}

func TestUpsertBalance_Idempotent(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, st.UpsertBalance(ctx, date, testNormalized()))
	require.NoError(t, st.UpsertBalance(ctx, date, testNormalized()))

	assert.Equal(t, int64(1), countRows(t, &schema.Balance{}))
	assert.Equal(t, int64(1), countRows(t, &schema.Category{}))
	assert.Equal(t, int64(1), countRows(t, &schema.Source{}))
	assert.Equal(t, int64(2), countRows(t, &schema.Value{}))
}

func TestUpsertBalance_ReingestOverwritesValues(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, st.UpsertBalance(ctx, date, testNormalized()))

	revised := testNormalized()
	revised.Categories[0].Sources[0].Values[0].Value = 99
	require.NoError(t, st.UpsertBalance(ctx, date, revised))

	assert.Equal(t, int64(2), countRows(t, &schema.Value{}))

	var value schema.Value
	require.NoError(t, testDB.
		Where("datetime = ?", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		First(&value).Error)
	assert.Equal(t, float64(99), value.Value)
}

func TestUpsertBalance_SeparateDaysSeparateRows(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())

	require.NoError(t, st.UpsertBalance(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), testNormalized()))
	require.NoError(t, st.UpsertBalance(ctx, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), testNormalized()))

	assert.Equal(t, int64(2), countRows(t, &schema.Balance{}))
	// Category and source natural ids are global, so the second day re-links
	// the existing rows instead of duplicating them
	assert.Equal(t, int64(1), countRows(t, &schema.Category{}))
	assert.Equal(t, int64(1), countRows(t, &schema.Source{}))
}

func TestUpsertBalance_CategoryRelinksToLatestBalance(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())

	require.NoError(t, st.UpsertBalance(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), testNormalized()))
	require.NoError(t, st.UpsertBalance(ctx, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), testNormalized()))

	var balances []schema.Balance
	require.NoError(t, testDB.Order("balance_date ASC").Find(&balances).Error)
	require.Len(t, balances, 2)

	var category schema.Category
	require.NoError(t, testDB.Where("natural_id = ?", "cat1").First(&category).Error)
	assert.Equal(t, balances[1].ID, category.BalanceID)
}

func TestUpsertBalance_MismatchedGroupIDNotPersisted(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())

	normalized := testNormalized()
	normalized.Categories[0].Sources[0].GroupID = "cat-other"

	require.NoError(t, st.UpsertBalance(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), normalized))

	assert.Equal(t, int64(1), countRows(t, &schema.Category{}))
	assert.Equal(t, int64(0), countRows(t, &schema.Source{}))
}

func TestGetBalanceByDate_NonUTCIngestion(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())

	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// Ingestion timestamps arrive in the host zone while API date
	// parameters parse to UTC midnight; both must hit the same day key
	ingestedAt := time.Date(2024, 6, 15, 0, 30, 0, 0, madrid)
	require.NoError(t, st.UpsertBalance(ctx, ingestedAt, testNormalized()))

	queried, err := time.Parse("2006-01-02", "2024-06-15")
	require.NoError(t, err)

	balance, err := st.GetBalanceByDate(ctx, queried)
	require.NoError(t, err)
	assert.Equal(t, "bal1", balance.NaturalID)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), balance.BalanceDate.UTC())

	balances, err := st.ListBalances(ctx, queried, queried)
	require.NoError(t, err)
	assert.Len(t, balances, 1)
}

func TestGetBalanceByDate_NotFound(t *testing.T) {
	cleanTables(t)
	st := NewPGStore(testDB, adapter.NewClock())

	_, err := st.GetBalanceByDate(context.Background(), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrBalanceNotFound)
}

func TestListBalances_RangeAndOrder(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())

	for day := 1; day <= 5; day++ {
		normalized := testNormalized()
		normalized.Balance.NaturalID = fmt.Sprintf("bal%d", day)
		normalized.Categories = nil
		date := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
		require.NoError(t, st.UpsertBalance(ctx, date, normalized))
	}

	balances, err := st.ListBalances(ctx,
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, balances, 3)
	assert.Equal(t, "bal2", balances[0].NaturalID)
	assert.Equal(t, "bal4", balances[2].NaturalID)
}

func TestSummaryCounts(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	st := NewPGStore(testDB, adapter.NewClock())

	summary, err := st.SummaryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Balances)
	assert.Nil(t, summary.MostRecentUpdate)

	require.NoError(t, st.UpsertBalance(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), testNormalized()))

	summary, err = st.SummaryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Balances)
	assert.Equal(t, int64(1), summary.Categories)
	assert.Equal(t, int64(1), summary.Sources)
	assert.Equal(t, int64(2), summary.Values)
	assert.NotNil(t, summary.MostRecentUpdate)
}

// seedBalanceAged inserts a bare balance whose created_at lies daysAgo
// before ref, bypassing the upsert path to control ingestion age directly
func seedBalanceAged(t *testing.T, naturalID string, ref time.Time, daysAgo int) schema.Balance {
	t.Helper()
	balance := schema.Balance{
		NaturalID:   naturalID,
		BalanceDate: domain.StartOfDayUTC(ref.AddDate(0, 0, -daysAgo)),
		Type:        "Balance de energía eléctrica",
		Title:       "Balance",
		CreatedAt:   ref.AddDate(0, 0, -daysAgo),
		UpdatedAt:   ref.AddDate(0, 0, -daysAgo),
	}
	require.NoError(t, testDB.Create(&balance).Error)
	return balance
}

func TestPurgeOlderThan_RemovesOnlyExpired(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	st := NewPGStore(testDB, fixedClock{now: ref})

	seedBalanceAged(t, "bal-today", ref, 0)
	seedBalanceAged(t, "bal-100", ref, 100)
	old := seedBalanceAged(t, "bal-400", ref, 400)

	// Give the expired balance a child tree to verify the cascade
	category := schema.Category{
		BalanceID:  old.ID,
		NaturalID:  "cat-old",
		Type:       string(domain.CategoryRenewable),
		Title:      "Renovable",
		LastUpdate: time.Now().UTC(),
	}
	require.NoError(t, testDB.Create(&category).Error)
	source := schema.Source{
		CategoryID: category.ID,
		NaturalID:  "src-old",
		GroupID:    "cat-old",
		Type:       "Hidráulica",
		Title:      "Hidráulica",
		LastUpdate: time.Now().UTC(),
	}
	require.NoError(t, testDB.Create(&source).Error)
	require.NoError(t, testDB.Create(&schema.Value{
		SourceID: source.ID,
		Datetime: time.Now().UTC(),
	}).Error)

	deleted, err := st.PurgeOlderThan(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	assert.Equal(t, int64(2), countRows(t, &schema.Balance{}))
	assert.Equal(t, int64(0), countRows(t, &schema.Category{}))
	assert.Equal(t, int64(0), countRows(t, &schema.Source{}))
	assert.Equal(t, int64(0), countRows(t, &schema.Value{}))

	var remaining []schema.Balance
	require.NoError(t, testDB.Find(&remaining).Error)
	for _, balance := range remaining {
		assert.NotEqual(t, "bal-400", balance.NaturalID)
	}
}

func TestPurgeOlderThan_NothingExpired(t *testing.T) {
	cleanTables(t)
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	st := NewPGStore(testDB, fixedClock{now: ref})

	seedBalanceAged(t, "bal-today", ref, 0)
	seedBalanceAged(t, "bal-364", ref, 364)

	deleted, err := st.PurgeOlderThan(context.Background(), 365)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	assert.Equal(t, int64(2), countRows(t, &schema.Balance{}))
}
