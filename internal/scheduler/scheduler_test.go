package scheduler_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/mocks"
	"github.com/bayasdev/power-grid-balance/internal/scheduler"
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

func testConfig() scheduler.Config {
	return scheduler.Config{
		CurrentDaySpec:  "*/15 * * * *",
		PreviousDaySpec: "0 * * * *",
		HistoricalSpec:  "30 3 * * *",
		CleanupSpec:     "0 4 * * 0",
		RetentionDays:   365,
	}
}

// stubPipeline counts job invocations without failing. The lifecycle tests
// use it instead of a gomock mock because the eager start runs execute on a
// background goroutine that may outlive the controller.
type stubPipeline struct {
	currentDay  atomic.Int32
	previousDay atomic.Int32
	historical  atomic.Int32
	purged      atomic.Int32
}

func (p *stubPipeline) IngestCurrentDay(context.Context) error {
	p.currentDay.Add(1)
	return nil
}

func (p *stubPipeline) IngestPreviousDay(context.Context) error {
	p.previousDay.Add(1)
	return nil
}

func (p *stubPipeline) IngestHistorical(context.Context) error {
	p.historical.Add(1)
	return nil
}

func (p *stubPipeline) PurgeExpired(context.Context, int) (int64, error) {
	p.purged.Add(1)
	return 0, nil
}

func TestScheduler_Lifecycle(t *testing.T) {
	pipeline := &stubPipeline{}
	sched := scheduler.New(testConfig(), pipeline)

	status := sched.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 0, status.JobCount)

	require.NoError(t, sched.Start())

	status = sched.Status()
	assert.True(t, status.Running)
	assert.Equal(t, 4, status.JobCount)

	sched.Stop()

	status = sched.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 0, status.JobCount)
}

func TestScheduler_StartTwiceIsNoOp(t *testing.T) {
	pipeline := &stubPipeline{}
	sched := scheduler.New(testConfig(), pipeline)

	require.NoError(t, sched.Start())
	require.NoError(t, sched.Start())

	status := sched.Status()
	assert.True(t, status.Running)
	assert.Equal(t, 4, status.JobCount)

	sched.Stop()
}

func TestScheduler_StopTwiceIsNoOp(t *testing.T) {
	pipeline := &stubPipeline{}
	sched := scheduler.New(testConfig(), pipeline)

	require.NoError(t, sched.Start())
	sched.Stop()
	sched.Stop()

	assert.False(t, sched.Status().Running)
}

func TestScheduler_RestartRegistersFreshJobs(t *testing.T) {
	pipeline := &stubPipeline{}
	sched := scheduler.New(testConfig(), pipeline)

	require.NoError(t, sched.Start())
	sched.Stop()
	require.NoError(t, sched.Start())

	status := sched.Status()
	assert.True(t, status.Running)
	assert.Equal(t, 4, status.JobCount)

	sched.Stop()
}

func TestScheduler_StartRunsEagerIngestions(t *testing.T) {
	pipeline := &stubPipeline{}
	sched := scheduler.New(testConfig(), pipeline)

	require.NoError(t, sched.Start())
	defer sched.Stop()

	require.Eventually(t, func() bool {
		return pipeline.currentDay.Load() >= 1 && pipeline.previousDay.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_StartRejectsBadSpec(t *testing.T) {
	cfg := testConfig()
	cfg.HistoricalSpec = "not a cron spec"

	sched := scheduler.New(cfg, &stubPipeline{})
	err := sched.Start()
	require.Error(t, err)
	assert.False(t, sched.Status().Running)
}

func TestScheduler_TriggerDispatchesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mocks.NewMockPipeline(ctrl)
	sched := scheduler.New(testConfig(), pipeline)
	ctx := context.Background()

	pipeline.EXPECT().IngestCurrentDay(ctx).Return(nil)
	pipeline.EXPECT().IngestPreviousDay(ctx).Return(nil)
	pipeline.EXPECT().IngestHistorical(ctx).Return(nil)
	pipeline.EXPECT().PurgeExpired(ctx, 365).Return(int64(3), nil)

	assert.NoError(t, sched.Trigger(ctx, domain.JobCurrentDay))
	assert.NoError(t, sched.Trigger(ctx, domain.JobPreviousDay))
	assert.NoError(t, sched.Trigger(ctx, domain.JobHistorical))
	assert.NoError(t, sched.Trigger(ctx, domain.JobCleanup))
}

func TestScheduler_TriggerPropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mocks.NewMockPipeline(ctrl)
	sched := scheduler.New(testConfig(), pipeline)

	cause := &domain.FetchError{Attempts: 3, Err: errors.New("connection refused")}
	pipeline.EXPECT().IngestCurrentDay(gomock.Any()).Return(cause)

	err := sched.Trigger(context.Background(), domain.JobCurrentDay)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestScheduler_TriggerUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sched := scheduler.New(testConfig(), mocks.NewMockPipeline(ctrl))

	err := sched.Trigger(context.Background(), domain.JobKind("weekly"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownJobKind)
}

func TestScheduler_TriggerWorksWhileStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipeline := mocks.NewMockPipeline(ctrl)
	sched := scheduler.New(testConfig(), pipeline)

	pipeline.EXPECT().IngestHistorical(gomock.Any()).Return(nil)

	require.False(t, sched.Status().Running)
	assert.NoError(t, sched.Trigger(context.Background(), domain.JobHistorical))
}
