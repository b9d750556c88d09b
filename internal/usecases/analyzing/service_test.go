package analyzing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-monitor-api/infrastructure/repository"
	"github.com/vfg2006/sales-monitor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

type analyzerMocks struct {
	salesmanRepo *mocks.MockSalesmanRepository
	checkinRepo  *mocks.MockCheckinRepository
	saleRepo     *mocks.MockSaleRepository
	leaderRepo   *mocks.MockLeaderRepository
	regionRepo   *mocks.MockRegionRepository
	outletRepo   *mocks.MockOutletRepository
}

func newAnalyzer(ctrl *gomock.Controller) (Analyzer, analyzerMocks) {
	m := analyzerMocks{
		salesmanRepo: mocks.NewMockSalesmanRepository(ctrl),
		checkinRepo:  mocks.NewMockCheckinRepository(ctrl),
		saleRepo:     mocks.NewMockSaleRepository(ctrl),
		leaderRepo:   mocks.NewMockLeaderRepository(ctrl),
		regionRepo:   mocks.NewMockRegionRepository(ctrl),
		outletRepo:   mocks.NewMockOutletRepository(ctrl),
	}
	analyzer := NewService(
		timewindow.NewResolver("+07:00"),
		m.salesmanRepo,
		m.checkinRepo,
		m.saleRepo,
		m.leaderRepo,
		m.regionRepo,
		m.outletRepo,
	)
	return analyzer, m
}

func TestService_DailyMetricsForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer, m := newAnalyzer(ctrl)

	salesmen := []*domain.Salesman{
		{ID: "S1", Code: "SLS-001", Name: "Budi"},
		{ID: "S2", Code: "SLS-002", Name: "Citra"},
		{ID: "S3", Code: "SLS-003", Name: "Dewi"},
	}

	m.salesmanRepo.EXPECT().ListActive(gomock.Any()).Return(salesmen, nil)
	m.checkinRepo.EXPECT().AggBySalesman(gomock.Any(), gomock.Any()).Return([]repository.SalesmanActivityAgg{
		{SalesmanID: "S1", VisitCount: 10, UniqueOutletCount: 8},
		{SalesmanID: "S2", VisitCount: 5, UniqueOutletCount: 5},
	}, nil)
	m.saleRepo.EXPECT().AggBySalesman(gomock.Any(), gomock.Any()).Return([]repository.SalesmanSalesAgg{
		{SalesmanID: "S1", TotalAmount: 500000, TotalQty: 4, OutletWithSalesCount: 4},
		{SalesmanID: "S2", TotalAmount: 100000, TotalQty: 1, OutletWithSalesCount: 1},
	}, nil)

	metrics, err := analyzer.DailyMetricsForDate(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", metrics.Date)
	assert.Equal(t, 3, metrics.TotalSalesmen)
	assert.Equal(t, 15, metrics.TotalVisits)
	assert.Equal(t, 600000.0, metrics.TotalSalesAmount)
	assert.Equal(t, 5, metrics.TotalSalesQty)
	assert.Equal(t, 5, metrics.TotalOutletsWithSales)

	// Visit-weighted average: 5 outlets with sales over 15 visits, not the
	// mean of the per-salesman rates.
	assert.InDelta(t, 5.0/15.0, metrics.AvgConversionRate, 1e-9)

	require.Len(t, metrics.SalesmenMetrics, 3)
	byID := make(map[string]domain.SalesmanMetrics)
	for _, sm := range metrics.SalesmenMetrics {
		assert.Equal(t, "2025-03-10", sm.Date)
		byID[sm.SalesmanID] = sm
	}

	assert.InDelta(t, 0.4, byID["S1"].ConversionRate, 1e-9)
	assert.InDelta(t, 0.2, byID["S2"].ConversionRate, 1e-9)

	// Zero-activity salesmen still get a row.
	idle := byID["S3"]
	assert.Equal(t, "Dewi", idle.SalesmanName)
	assert.Zero(t, idle.VisitCount)
	assert.Zero(t, idle.TotalSalesAmount)
	assert.Zero(t, idle.ConversionRate)
}

func TestService_MetricsForRange_SetsPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer, m := newAnalyzer(ctrl)

	m.salesmanRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.Salesman{}, nil)

	metrics, err := analyzer.MetricsForRange(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	require.NotNil(t, metrics.Period)
	assert.Equal(t, "2025-03-03", metrics.Period.From)
	assert.Equal(t, "2025-03-09", metrics.Period.To)
	assert.Empty(t, metrics.SalesmenMetrics)
	assert.Zero(t, metrics.AvgConversionRate)
}

func TestService_MetricsForSalesman(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown salesman returns nil ref and empty days", func(t *testing.T) {
		analyzer, m := newAnalyzer(ctrl)
		m.salesmanRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		result, err := analyzer.MetricsForSalesman(context.Background(), "missing", "2025-03-03", "2025-03-05")
		require.NoError(t, err)

		assert.Nil(t, result.Salesman)
		assert.Empty(t, result.DailyMetrics)
	})

	t.Run("zero-fills missing days and keeps max unique outlets", func(t *testing.T) {
		analyzer, m := newAnalyzer(ctrl)
		m.salesmanRepo.EXPECT().GetByID(gomock.Any(), "S1").
			Return(&domain.Salesman{ID: "S1", Code: "SLS-001", Name: "Budi"}, nil)
		m.checkinRepo.EXPECT().DailyVisitCounts(gomock.Any(), "S1", gomock.Any(), gomock.Any()).
			Return([]repository.DailyActivityAgg{
				{Date: "2025-03-03", VisitCount: 6, UniqueOutletCount: 6},
				{Date: "2025-03-05", VisitCount: 4, UniqueOutletCount: 3},
			}, nil)
		m.saleRepo.EXPECT().DailyAggBySalesman(gomock.Any(), "S1", gomock.Any(), gomock.Any()).
			Return([]repository.DailySalesAgg{
				{Date: "2025-03-03", TotalAmount: 250000, TotalQty: 2, OutletWithSalesCount: 2},
			}, nil)

		result, err := analyzer.MetricsForSalesman(context.Background(), "S1", "2025-03-03", "2025-03-05")
		require.NoError(t, err)

		require.NotNil(t, result.Salesman)
		assert.Equal(t, "SLS-001", result.Salesman.Code)

		require.Len(t, result.DailyMetrics, 3)
		assert.Equal(t, "2025-03-03", result.DailyMetrics[0].Date)
		assert.Equal(t, 6, result.DailyMetrics[0].VisitCount)

		// The middle day had no rows; it still appears zeroed.
		assert.Equal(t, "2025-03-04", result.DailyMetrics[1].Date)
		assert.Zero(t, result.DailyMetrics[1].VisitCount)
		assert.Zero(t, result.DailyMetrics[1].TotalSalesAmount)

		assert.Equal(t, 10, result.Totals.TotalVisits)
		assert.Equal(t, 250000.0, result.Totals.TotalSalesAmount)
		// Busiest day's unique outlets, not a sum.
		assert.Equal(t, 6, result.Totals.TotalUniqueOutlets)
		assert.InDelta(t, 2.0/10.0, result.Totals.AvgConversionRate, 1e-9)
	})
}

func TestService_Rankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer, _ := newAnalyzer(ctrl)

	metrics := &domain.AggregatedMetrics{
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanID: "S1", SalesmanName: "Budi", VisitCount: 10, ConversionRate: 0.5, TotalSalesAmount: 900000},
			{SalesmanID: "S2", SalesmanName: "Citra", VisitCount: 8, ConversionRate: 0.25, TotalSalesAmount: 400000},
			{SalesmanID: "S3", SalesmanName: "Dewi", VisitCount: 12, ConversionRate: 0.75, TotalSalesAmount: 300000},
			{SalesmanID: "S4", SalesmanName: "Eka", VisitCount: 0, ConversionRate: 0, TotalSalesAmount: 0},
		},
	}

	rankings := analyzer.Rankings(metrics)

	// Conversion tables skip salesmen without visits.
	require.Len(t, rankings.TopByConversion, 3)
	assert.Equal(t, "S3", rankings.TopByConversion[0].SalesmanID)
	assert.Equal(t, "S1", rankings.TopByConversion[1].SalesmanID)
	assert.Equal(t, "S2", rankings.TopByConversion[2].SalesmanID)

	// Bottom table is worst first.
	require.Len(t, rankings.BottomByConversion, 3)
	assert.Equal(t, "S2", rankings.BottomByConversion[0].SalesmanID)

	// Sales tables include everyone.
	require.Len(t, rankings.TopBySales, 3)
	assert.Equal(t, "S1", rankings.TopBySales[0].SalesmanID)
	require.Len(t, rankings.BottomBySales, 3)
	assert.Equal(t, "S4", rankings.BottomBySales[0].SalesmanID)

	require.Len(t, rankings.TopByVisits, 3)
	assert.Equal(t, "S3", rankings.TopByVisits[0].SalesmanID)
	assert.Equal(t, 12, rankings.TopByVisits[0].VisitCount)
}

func TestService_LeaderRegionMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer, m := newAnalyzer(ctrl)

	leaderID := "L1"
	m.leaderRepo.EXPECT().List(gomock.Any()).Return([]*domain.Leader{
		{ID: "L1", Code: "LD-01", Name: "Pak Agus"},
		{ID: "L2", Code: "LD-02", Name: "Bu Rina"},
	}, nil)
	m.regionRepo.EXPECT().List(gomock.Any()).Return([]*domain.Region{
		{ID: "R1", Code: "RG-01", Name: "Jakarta Barat", LeaderID: &leaderID},
	}, nil)
	m.checkinRepo.EXPECT().AggByLeader(gomock.Any(), gomock.Any()).Return([]repository.GroupActivityAgg{
		{ID: "L1", VisitCount: 20, UniqueOutletCount: 15},
	}, nil)
	m.saleRepo.EXPECT().AggByLeader(gomock.Any(), gomock.Any()).Return([]repository.GroupSalesAgg{
		{ID: "L1", TotalAmount: 750000, TotalQty: 6, OutletWithSalesCount: 5},
	}, nil)
	m.checkinRepo.EXPECT().AggByRegion(gomock.Any(), gomock.Any()).Return([]repository.GroupActivityAgg{
		{ID: "R1", VisitCount: 20, UniqueOutletCount: 15},
	}, nil)
	m.saleRepo.EXPECT().AggByRegion(gomock.Any(), gomock.Any()).Return([]repository.GroupSalesAgg{
		{ID: "R1", TotalAmount: 750000, TotalQty: 6, OutletWithSalesCount: 5},
	}, nil)

	result, err := analyzer.LeaderRegionMetrics(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	require.Len(t, result.Leaders, 2)
	assert.Equal(t, "Pak Agus", result.Leaders[0].Name)
	assert.InDelta(t, 0.25, result.Leaders[0].ConversionRate, 1e-9)

	// Leaders without activity keep their zero row, sorted last.
	assert.Equal(t, "Bu Rina", result.Leaders[1].Name)
	assert.Zero(t, result.Leaders[1].VisitCount)

	require.Len(t, result.Regions, 1)
	require.NotNil(t, result.Regions[0].LeaderID)
	assert.Equal(t, "L1", *result.Regions[0].LeaderID)
}

func TestService_DaypartStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer, m := newAnalyzer(ctrl)

	m.checkinRepo.EXPECT().DaypartSuccess(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]repository.DaypartAgg{
			{SalesmanName: "Budi", Daypart: "Pagi", VisitCount: 4, SuccessCount: 1},
			{SalesmanName: "Citra", Daypart: "Siang", VisitCount: 10, SuccessCount: 5},
			{SalesmanName: "Dewi", Daypart: "Malam", VisitCount: 0, SuccessCount: 0},
		}, nil)

	stats, err := analyzer.DaypartStats(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	// Zero-visit slots are dropped and the rest sort by volume.
	require.Len(t, stats, 2)
	assert.Equal(t, "Citra", stats[0].SalesmanName)
	assert.InDelta(t, 0.5, stats[0].SuccessRate, 1e-9)
	assert.Equal(t, "Budi", stats[1].SalesmanName)
	assert.InDelta(t, 0.25, stats[1].SuccessRate, 1e-9)
}
