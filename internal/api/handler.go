package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/scheduler"
	"github.com/bayasdev/power-grid-balance/internal/store"
)

// dateLayout is the calendar-day format accepted by the balance endpoints
const dateLayout = "2006-01-02"

// SchedulerControl is the slice of the scheduler the API drives
//
//go:generate mockgen -source=handler.go -destination=../mocks/scheduler_control.go -package=mocks -mock_names=SchedulerControl=MockSchedulerControl
type SchedulerControl interface {
	Status() scheduler.Status
	Trigger(ctx context.Context, kind domain.JobKind) error
}

// handler implements the REST endpoints
type handler struct {
	store     store.Store
	scheduler SchedulerControl
}

// newHandler creates a new REST handler
func newHandler(st store.Store, sched SchedulerControl) *handler {
	return &handler{
		store:     st,
		scheduler: sched,
	}
}

// setupRoutes configures all REST API routes
func setupRoutes(router *gin.Engine, h *handler) {
	router.GET("/health", h.healthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/status", h.getStatus)
		v1.POST("/ingest/:kind", h.triggerIngestion)
		v1.GET("/summary", h.getSummary)
		v1.GET("/balances/:date", h.getBalance)
		v1.GET("/balances", h.listBalances)
	}
}

// healthCheck returns the health status of the API
// GET /health
func (h *handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getStatus returns the scheduler status snapshot
// GET /api/v1/status
func (h *handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.Status())
}

// triggerIngestion runs one ingestion job body outside the schedule
// POST /api/v1/ingest/:kind  (kind: current | previous | historical)
//
// The result is always a structured success/message body: an ingestion
// failure answers 502 with the failure message, not a raw error.
func (h *handler) triggerIngestion(c *gin.Context) {
	kind := domain.JobKind(c.Param("kind"))
	switch kind {
	case domain.JobCurrentDay, domain.JobPreviousDay, domain.JobHistorical:
	default:
		respondBadRequest(c, fmt.Sprintf("unknown ingestion kind %q", c.Param("kind")))
		return
	}

	if err := h.scheduler.Trigger(c.Request.Context(), kind); err != nil {
		c.JSON(http.StatusBadGateway, TriggerResultDTO{
			Success: false,
			Kind:    string(kind),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, TriggerResultDTO{
		Success: true,
		Kind:    string(kind),
		Message: "ingestion completed",
	})
}

// getSummary returns aggregate entity counts
// GET /api/v1/summary
func (h *handler) getSummary(c *gin.Context) {
	summary, err := h.store.SummaryCounts(c.Request.Context())
	if err != nil {
		respondInternalError(c, "failed to load summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getBalance returns one day's balance tree
// GET /api/v1/balances/:date  (date: YYYY-MM-DD)
func (h *handler) getBalance(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		respondBadRequest(c, "date must be formatted YYYY-MM-DD")
		return
	}

	balance, err := h.store.GetBalanceByDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrBalanceNotFound) {
			respondNotFound(c, fmt.Sprintf("no balance for %s", c.Param("date")))
			return
		}
		respondInternalError(c, "failed to load balance", err.Error())
		return
	}

	c.JSON(http.StatusOK, toBalanceDTO(balance, true))
}

// listBalances returns the balances in a date range, without their trees
// GET /api/v1/balances?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *handler) listBalances(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		respondBadRequest(c, "start must be formatted YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		respondBadRequest(c, "end must be formatted YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		respondBadRequest(c, "end must not precede start")
		return
	}

	balances, err := h.store.ListBalances(c.Request.Context(), start, end)
	if err != nil {
		respondInternalError(c, "failed to list balances", err.Error())
		return
	}

	dtos := make([]BalanceDTO, 0, len(balances))
	for _, balance := range balances {
		dtos = append(dtos, toBalanceDTO(balance, false))
	}
	c.JSON(http.StatusOK, gin.H{"balances": dtos})
}
