package ree_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/mocks"
	"github.com/bayasdev/power-grid-balance/internal/providers/ree"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testClientMocks contains all the mocks needed for testing the client
type testClientMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	clock      *mocks.MockClock
	client     *ree.REEClient
}

func setupTestClient(t *testing.T, cfg ree.Config) *testClientMocks {
	ctrl := gomock.NewController(t)

	tm := &testClientMocks{
		ctrl:       ctrl,
		httpClient: mocks.NewMockHTTPClient(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tm.client = ree.NewClient(tm.httpClient, tm.clock, cfg)

	return tm
}

// immediateTick returns an already-closed channel so retry delays resolve
// instantly under test
func immediateTick() <-chan time.Time {
	ch := make(chan time.Time)
	close(ch)
	return ch
}

func TestFetchWindow_Success(t *testing.T) {
	tm := setupTestClient(t, ree.Config{BaseURL: "https://apidatos.ree.es"})
	defer tm.ctrl.Finish()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)

	tm.httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string, result interface{}) error {
			assert.Contains(t, url, "/es/datos/balance/balance-electrico")
			assert.Contains(t, url, "start_date=2024-01-01T00%3A00")
			assert.Contains(t, url, "end_date=2024-01-01T23%3A59")
			assert.Contains(t, url, "time_trunc=day")

			response := result.(*ree.BalanceResponse)
			response.Data.ID = "bal1"
			return nil
		})

	response, err := tm.client.FetchWindow(context.Background(), start, end, domain.TruncDay)
	require.NoError(t, err)
	assert.Equal(t, "bal1", response.Data.ID)
}

func TestFetchWindow_RetriesUntilExhausted(t *testing.T) {
	tm := setupTestClient(t, ree.Config{
		BaseURL:        "https://apidatos.ree.es",
		MaxRetries:     3,
		RetryBaseDelay: time.Second,
	})
	defer tm.ctrl.Finish()

	cause := errors.New("connection refused")

	// Exactly maxRetries transport calls, with a delay between consecutive
	// attempts but not after the last one
	tm.httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cause).
		Times(3)
	gomock.InOrder(
		tm.clock.EXPECT().After(1*time.Second).Return(immediateTick()),
		tm.clock.EXPECT().After(2*time.Second).Return(immediateTick()),
	)

	response, err := tm.client.FetchWindow(context.Background(), time.Now(), time.Now(), domain.TruncDay)
	require.Error(t, err)
	assert.Nil(t, response)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 3, fetchErr.Attempts)
	assert.ErrorIs(t, err, cause)
	assert.True(t, strings.Contains(err.Error(), "after 3 attempts"))
}

func TestFetchWindow_RecoversOnSecondAttempt(t *testing.T) {
	tm := setupTestClient(t, ree.Config{BaseURL: "https://apidatos.ree.es"})
	defer tm.ctrl.Finish()

	gomock.InOrder(
		tm.httpClient.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("transient")),
		tm.clock.EXPECT().After(1*time.Second).Return(immediateTick()),
		tm.httpClient.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
				result.(*ree.BalanceResponse).Data.ID = "bal1"
				return nil
			}),
	)

	response, err := tm.client.FetchWindow(context.Background(), time.Now(), time.Now(), domain.TruncDay)
	require.NoError(t, err)
	assert.Equal(t, "bal1", response.Data.ID)
}

func TestFetchWindow_ContextCancelledDuringBackoff(t *testing.T) {
	tm := setupTestClient(t, ree.Config{BaseURL: "https://apidatos.ree.es"})
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	tm.httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("transient"))
	tm.clock.EXPECT().After(1*time.Second).DoAndReturn(func(time.Duration) <-chan time.Time {
		cancel()
		// Never fires; the select should take ctx.Done instead
		return make(chan time.Time)
	})

	_, err := tm.client.FetchWindow(ctx, time.Now(), time.Now(), domain.TruncDay)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 1, fetchErr.Attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchDay_BuildsDayWindow(t *testing.T) {
	tm := setupTestClient(t, ree.Config{BaseURL: "https://apidatos.ree.es"})
	defer tm.ctrl.Finish()

	date := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tm.httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string, _ interface{}) error {
			assert.Contains(t, url, "start_date=2024-03-15T00%3A00")
			assert.Contains(t, url, "end_date=2024-03-15T23%3A59")
			return nil
		})

	_, err := tm.client.FetchDay(context.Background(), date)
	require.NoError(t, err)
}

func TestFetchToday_UsesClock(t *testing.T) {
	tm := setupTestClient(t, ree.Config{BaseURL: "https://apidatos.ree.es"})
	defer tm.ctrl.Finish()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string, _ interface{}) error {
			assert.Contains(t, url, "start_date=2024-06-01T00%3A00")
			return nil
		})

	_, err := tm.client.FetchToday(context.Background())
	require.NoError(t, err)
}

func TestFetchMonth_CoversWholeMonth(t *testing.T) {
	tm := setupTestClient(t, ree.Config{BaseURL: "https://apidatos.ree.es"})
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, url string, _ interface{}) error {
			assert.Contains(t, url, "start_date=2024-02-01T00%3A00")
			assert.Contains(t, url, "end_date=2024-02-29T23%3A59")
			return nil
		})

	_, err := tm.client.FetchMonth(context.Background(), 2024, time.February)
	require.NoError(t, err)
}
