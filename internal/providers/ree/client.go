package ree

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/bayasdev/power-grid-balance/internal/adapter"
	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/logger"
)

const (
	// balancePath is the national electric balance endpoint
	balancePath = "/es/datos/balance/balance-electrico"

	// timeLayout is the ISO-no-seconds format the datos API expects
	timeLayout = "2006-01-02T15:04"
)

// Client defines the interface for REE balance API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/ree_client.go -package=mocks -mock_names=Client=MockBalanceClient
type Client interface {
	// FetchWindow fetches raw balance data covering [start, end] at the
	// given truncation
	FetchWindow(ctx context.Context, start, end time.Time, trunc domain.Truncation) (*BalanceResponse, error)

	// FetchDay fetches one calendar day at day truncation
	FetchDay(ctx context.Context, date time.Time) (*BalanceResponse, error)

	// FetchToday fetches the current calendar day
	FetchToday(ctx context.Context) (*BalanceResponse, error)

	// FetchRange fetches [start-of-start-day, end-of-end-day] at day truncation
	FetchRange(ctx context.Context, start, end time.Time) (*BalanceResponse, error)

	// FetchMonth fetches one calendar month at day truncation
	FetchMonth(ctx context.Context, year int, month time.Month) (*BalanceResponse, error)
}

// Config holds the REE client configuration
type Config struct {
	BaseURL        string
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// REEClient implements Client against the apidatos.ree.es REST API
type REEClient struct {
	httpClient adapter.HTTPClient
	clock      adapter.Clock
	baseURL    string
	maxRetries int
	baseDelay  time.Duration
}

// NewClient creates a new REE balance API client
func NewClient(httpClient adapter.HTTPClient, clock adapter.Clock, cfg Config) *REEClient {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	baseDelay := cfg.RetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	return &REEClient{
		httpClient: httpClient,
		clock:      clock,
		baseURL:    cfg.BaseURL,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// FetchWindow fetches raw balance data covering [start, end] at the given
// truncation. It retries up to MaxRetries attempts with a linearly growing
// delay (base delay × attempt number) and wraps the last cause in a
// *domain.FetchError once attempts are exhausted. The HTTP adapter applies
// its own short transport-level retry underneath; the two layers are
// deliberately independent.
func (c *REEClient) FetchWindow(ctx context.Context, start, end time.Time, trunc domain.Truncation) (*BalanceResponse, error) {
	reqURL := c.windowURL(start, end, trunc)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		var response BalanceResponse
		err := c.httpClient.Get(ctx, reqURL, &response)
		if err == nil {
			return &response, nil
		}
		lastErr = err

		logger.WarnCtx(ctx, "balance fetch attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", c.maxRetries),
			zap.String("url", reqURL),
			zap.Error(err),
		)

		if attempt == c.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, &domain.FetchError{Attempts: attempt, Err: ctx.Err()}
		case <-c.clock.After(c.baseDelay * time.Duration(attempt)):
		}
	}

	return nil, &domain.FetchError{Attempts: c.maxRetries, Err: lastErr}
}

// FetchDay fetches one calendar day (start-of-day to end-of-day) at day truncation
func (c *REEClient) FetchDay(ctx context.Context, date time.Time) (*BalanceResponse, error) {
	return c.FetchWindow(ctx, domain.StartOfDay(date), domain.EndOfDay(date), domain.TruncDay)
}

// FetchToday fetches the current calendar day
func (c *REEClient) FetchToday(ctx context.Context) (*BalanceResponse, error) {
	return c.FetchDay(ctx, c.clock.Now())
}

// FetchRange fetches a date range at day truncation
func (c *REEClient) FetchRange(ctx context.Context, start, end time.Time) (*BalanceResponse, error) {
	return c.FetchWindow(ctx, domain.StartOfDay(start), domain.EndOfDay(end), domain.TruncDay)
}

// FetchMonth fetches one calendar month at day truncation
func (c *REEClient) FetchMonth(ctx context.Context, year int, month time.Month) (*BalanceResponse, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return c.FetchRange(ctx, first, last)
}

// windowURL builds the balance endpoint URL for a window
func (c *REEClient) windowURL(start, end time.Time, trunc domain.Truncation) string {
	q := url.Values{}
	q.Set("start_date", start.Format(timeLayout))
	q.Set("end_date", end.Format(timeLayout))
	q.Set("time_trunc", string(trunc))
	return fmt.Sprintf("%s%s?%s", c.baseURL, balancePath, q.Encode())
}
