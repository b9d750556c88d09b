package insighting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	deepseekmocks "github.com/vfg2006/sales-monitor-api/infrastructure/integrator/deepseek/mocks"
	repomocks "github.com/vfg2006/sales-monitor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	analyzingmocks "github.com/vfg2006/sales-monitor-api/internal/usecases/analyzing/mocks"
	flaggingmocks "github.com/vfg2006/sales-monitor-api/internal/usecases/flagging/mocks"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

type insighterMocks struct {
	analyzer  *analyzingmocks.MockAnalyzer
	detector  *flaggingmocks.MockDetector
	generator *deepseekmocks.MockGenerator
	cacheRepo *repomocks.MockInsightCacheRepository
}

func newInsighter(ctrl *gomock.Controller) (Insighter, insighterMocks) {
	m := insighterMocks{
		analyzer:  analyzingmocks.NewMockAnalyzer(ctrl),
		detector:  flaggingmocks.NewMockDetector(ctrl),
		generator: deepseekmocks.NewMockGenerator(ctrl),
		cacheRepo: repomocks.NewMockInsightCacheRepository(ctrl),
	}
	insighter := NewService(
		timewindow.NewResolver("+07:00"),
		m.analyzer,
		m.detector,
		m.generator,
		m.cacheRepo,
	)
	return insighter, m
}

func TestService_DailyInsight_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	stored := &domain.DailyInsight{
		Date:       "2025-03-10",
		Highlights: []string{"cached highlight"},
		Risks:      []string{"cached risk"},
		Actions:    []string{"cached action"},
		Notes:      "cached notes",
	}
	payload, err := jsonAPI.Marshal(stored)
	require.NoError(t, err)

	m.cacheRepo.EXPECT().GetDaily(gomock.Any(), "2025-03-10").Return(payload, nil)

	insight, cached, err := insighter.DailyInsight(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.True(t, cached)
	assert.Equal(t, stored, insight)
}

func TestService_DailyInsight_GeneratorDisabledUsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	metrics := &domain.AggregatedMetrics{
		Date:          "2025-03-10",
		TotalVisits:   10,
		TotalSalesmen: 2,
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanID: "S1", SalesmanName: "Budi", VisitCount: 10},
		},
	}

	m.cacheRepo.EXPECT().GetDaily(gomock.Any(), "2025-03-10").Return(nil, nil)
	m.analyzer.EXPECT().DailyMetricsForDate(gomock.Any(), "2025-03-10").Return(metrics, nil)
	m.detector.EXPECT().AllForDate(gomock.Any(), "2025-03-10", metrics.SalesmenMetrics).Return(nil, nil)
	m.generator.EXPECT().Enabled().Return(false)
	m.cacheRepo.EXPECT().SaveDaily(gomock.Any(), "2025-03-10", gomock.Any()).Return(nil)

	insight, cached, err := insighter.DailyInsight(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.False(t, cached)
	assert.Equal(t, "2025-03-10", insight.Date)
	assert.NotEmpty(t, insight.Highlights)
	assert.NotEmpty(t, insight.Risks)
	assert.NotEmpty(t, insight.Actions)
}

func TestService_DailyInsight_GenerationFailureUsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	metrics := &domain.AggregatedMetrics{Date: "2025-03-10"}

	m.cacheRepo.EXPECT().GetDaily(gomock.Any(), "2025-03-10").Return(nil, nil)
	m.analyzer.EXPECT().DailyMetricsForDate(gomock.Any(), "2025-03-10").Return(metrics, nil)
	m.detector.EXPECT().AllForDate(gomock.Any(), "2025-03-10", gomock.Any()).Return(nil, nil)
	m.generator.EXPECT().Enabled().Return(true)
	m.generator.EXPECT().DailyInsight(gomock.Any(), metrics, gomock.Any()).
		Return(nil, errors.New("upstream timeout"))
	m.cacheRepo.EXPECT().SaveDaily(gomock.Any(), "2025-03-10", gomock.Any()).Return(nil)

	insight, cached, err := insighter.DailyInsight(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.False(t, cached)
	assert.Equal(t, "Tidak ada aktivitas signifikan pada tanggal ini", insight.Highlights[0])
}

func TestService_DailyInsight_CacheWriteFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	m.cacheRepo.EXPECT().GetDaily(gomock.Any(), "2025-03-10").Return(nil, nil)
	m.analyzer.EXPECT().DailyMetricsForDate(gomock.Any(), "2025-03-10").
		Return(&domain.AggregatedMetrics{Date: "2025-03-10"}, nil)
	m.detector.EXPECT().AllForDate(gomock.Any(), "2025-03-10", gomock.Any()).Return(nil, nil)
	m.generator.EXPECT().Enabled().Return(false)
	m.cacheRepo.EXPECT().SaveDaily(gomock.Any(), "2025-03-10", gomock.Any()).
		Return(errors.New("connection refused"))

	insight, _, err := insighter.DailyInsight(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, insight)
}

func TestService_WeeklyInsight_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	stored := &domain.WeeklyInsight{
		Period: domain.Period{From: "2025-03-03", To: "2025-03-09"},
		Summary: domain.InsightSummary{
			Highlights: []string{"h1", "h2", "h3", "h4", "h5"},
			Risks:      []string{noRiskSentence},
			Actions:    []string{},
		},
	}
	payload, err := jsonAPI.Marshal(stored)
	require.NoError(t, err)

	m.cacheRepo.EXPECT().GetWeekly(gomock.Any(), "2025-03-03", "2025-03-09").Return(payload, nil)

	insight, cached, err := insighter.WeeklyInsight(context.Background(), "2025-03-03", "2025-03-09", false)
	require.NoError(t, err)

	assert.True(t, cached)
	assert.Equal(t, stored, insight)
}

func TestService_WeeklyInsight_RefreshBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	// Single-day period keeps the per-day flag loop to one iteration; the
	// previous period is the day before.
	rangeMetrics := &domain.AggregatedMetrics{
		Period:      &domain.Period{From: "2025-03-10", To: "2025-03-10"},
		TotalVisits: 12,
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanID: "S1", SalesmanName: "Budi", VisitCount: 12, TotalSalesAmount: 400000, OutletWithSalesCount: 5, ConversionRate: 5.0 / 12.0},
		},
	}
	prevMetrics := &domain.AggregatedMetrics{
		Period: &domain.Period{From: "2025-03-09", To: "2025-03-09"},
	}
	groups := &domain.LeaderRegionMetrics{}

	m.analyzer.EXPECT().MetricsForRange(gomock.Any(), "2025-03-10", "2025-03-10").Return(rangeMetrics, nil)
	m.analyzer.EXPECT().MetricsForRange(gomock.Any(), "2025-03-09", "2025-03-09").Return(prevMetrics, nil)
	m.analyzer.EXPECT().LeaderRegionMetrics(gomock.Any(), "2025-03-10", "2025-03-10").Return(groups, nil)
	m.analyzer.EXPECT().LeaderRegionMetrics(gomock.Any(), "2025-03-09", "2025-03-09").Return(groups, nil)
	m.analyzer.EXPECT().DailyMetricsForDate(gomock.Any(), "2025-03-10").Return(rangeMetrics, nil)
	m.detector.EXPECT().AllForDate(gomock.Any(), "2025-03-10", gomock.Any()).Return(nil, nil)
	m.generator.EXPECT().Enabled().Return(false)
	m.cacheRepo.EXPECT().SaveWeekly(gomock.Any(), "2025-03-10", "2025-03-10", gomock.Any()).Return(nil)

	insight, cached, err := insighter.WeeklyInsight(context.Background(), "2025-03-10", "2025-03-10", true)
	require.NoError(t, err)

	assert.False(t, cached)
	assert.Equal(t, "2025-03-10", insight.Period.From)
	require.Len(t, insight.Summary.Highlights, 5)
	assert.Contains(t, insight.Summary.Highlights[3], "Budi")
}

func TestService_SalesPerformanceInsights_GeneratorDisabledUsesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	insighter, m := newInsighter(ctrl)

	metrics := &domain.AggregatedMetrics{
		Period:      &domain.Period{From: "2025-03-03", To: "2025-03-09"},
		TotalVisits: 15,
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanID: "S1", SalesmanName: "Budi", VisitCount: 15, OutletWithSalesCount: 9, ConversionRate: 0.6},
		},
	}

	m.analyzer.EXPECT().MetricsForRange(gomock.Any(), "2025-03-03", "2025-03-09").Return(metrics, nil)
	m.analyzer.EXPECT().DaypartStats(gomock.Any(), "2025-03-03", "2025-03-09").Return(nil, nil)
	m.generator.EXPECT().Enabled().Return(false)

	insights, err := insighter.SalesPerformanceInsights(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", insights.Period.From)
	require.NotEmpty(t, insights.Insights)
	assert.Contains(t, insights.Insights[0], "Budi")
}

func TestVisitPerDayBins(t *testing.T) {
	salesmenMetrics := []domain.SalesmanMetrics{
		{SalesmanID: "S1", VisitCount: 7, OutletWithSalesCount: 3},   // 1/day -> 0-2
		{SalesmanID: "S2", VisitCount: 28, OutletWithSalesCount: 7},  // 4/day -> 3-5
		{SalesmanID: "S3", VisitCount: 70, OutletWithSalesCount: 14}, // 10/day -> 9+
	}

	bins := visitPerDayBins(salesmenMetrics, 7)

	require.Len(t, bins, 4)

	assert.Equal(t, "0-2", bins[0].Label)
	assert.Equal(t, 1, bins[0].SalesmenCount)
	assert.InDelta(t, 3.0/7.0, bins[0].ConversionRate, 1e-9)

	assert.Equal(t, "3-5", bins[1].Label)
	assert.Equal(t, 1, bins[1].SalesmenCount)
	assert.InDelta(t, 0.25, bins[1].ConversionRate, 1e-9)

	assert.Equal(t, "6-8", bins[2].Label)
	assert.Zero(t, bins[2].SalesmenCount)
	assert.Zero(t, bins[2].ConversionRate)

	assert.Equal(t, "9+", bins[3].Label)
	assert.Equal(t, 1, bins[3].SalesmenCount)
	assert.InDelta(t, 0.2, bins[3].ConversionRate, 1e-9)
}
