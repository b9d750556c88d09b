package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-monitor-api/internal/config"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	insightingmocks "github.com/vfg2006/sales-monitor-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

func newWarmService(insighter *insightingmocks.MockInsighter) *InsightWarmService {
	return &InsightWarmService{
		scheduler: gocron.NewScheduler(time.Local),
		config: config.InsightWarm{
			CronSchedule: "0 6 * * *",
			Enabled:      true,
		},
		resolver:  timewindow.NewResolver("+07:00"),
		insighter: insighter,
	}
}

func TestInsightWarmService_WarmAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightingmocks.NewMockInsighter(ctrl)
	service := newWarmService(mockInsighter)

	// One daily entry for yesterday and one weekly entry for the last
	// complete week, never forcing a refresh.
	mockInsighter.EXPECT().
		DailyInsight(gomock.Any(), gomock.Any()).
		Return(&domain.DailyInsight{}, false, nil)
	mockInsighter.EXPECT().
		WeeklyInsight(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(&domain.WeeklyInsight{}, true, nil)

	service.warmAll(context.Background())

	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunFinishedAt.IsZero())

	status := service.GetStatus()
	assert.Equal(t, true, status["warm_enabled"])
	assert.Equal(t, "0 6 * * *", status["warm_cron"])
	assert.Equal(t, false, status["warm_running"])
}

func TestInsightWarmService_WarmAll_ContinuesAfterDailyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightingmocks.NewMockInsighter(ctrl)
	service := newWarmService(mockInsighter)

	// A failed daily warm must not stop the weekly warm.
	mockInsighter.EXPECT().
		DailyInsight(gomock.Any(), gomock.Any()).
		Return(nil, false, assert.AnError)
	mockInsighter.EXPECT().
		WeeklyInsight(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(&domain.WeeklyInsight{}, false, nil)

	service.warmAll(context.Background())

	assert.False(t, service.lastRunFinishedAt.IsZero())
}

func TestInsightWarmService_TriggerManualRun_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a run in progress means the trigger is a no-op.
	mockInsighter := insightingmocks.NewMockInsighter(ctrl)
	service := newWarmService(mockInsighter)
	service.warmRunning = true

	service.TriggerManualRun()

	status := service.GetStatus()
	assert.Equal(t, true, status["warm_running"])
}

func TestInsightWarmService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := insightingmocks.NewMockInsighter(ctrl)
	service := newWarmService(mockInsighter)
	service.config.Enabled = false

	err := service.Start(context.Background())
	require.NoError(t, err)

	// Nothing was scheduled.
	assert.Empty(t, service.scheduler.Jobs())
}
