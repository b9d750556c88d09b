package flagging

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

func TestLowEffectivenessRule(t *testing.T) {
	tests := []struct {
		name     string
		metrics  domain.SalesmanMetrics
		expected bool
	}{
		{
			name:     "five visits without sales is flagged",
			metrics:  domain.SalesmanMetrics{VisitCount: 5, TotalSalesAmount: 0},
			expected: true,
		},
		{
			name:     "four visits without sales stays below the threshold",
			metrics:  domain.SalesmanMetrics{VisitCount: 4, TotalSalesAmount: 0},
			expected: false,
		},
		{
			name:     "heavy visiting with sales is fine",
			metrics:  domain.SalesmanMetrics{VisitCount: 12, TotalSalesAmount: 150000},
			expected: false,
		},
		{
			name:     "no visits no flag",
			metrics:  domain.SalesmanMetrics{VisitCount: 0, TotalSalesAmount: 0},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := LowEffectivenessRule{}.Evaluate(tt.metrics)
			if !tt.expected {
				assert.Nil(t, flag)
				return
			}
			require.NotNil(t, flag)
			assert.Equal(t, domain.RedFlagLowEffectiveness, flag.Code)
			assert.Equal(t, domain.SeverityHigh, flag.Severity)
		})
	}
}

func TestTooConsistentRule(t *testing.T) {
	tests := []struct {
		name     string
		trailing []int
		expected bool
	}{
		{
			name:     "seven identical counts of five are flagged",
			trailing: []int{5, 5, 5, 5, 5, 5, 5},
			expected: true,
		},
		{
			name:     "six identical then a different day is fine",
			trailing: []int{5, 5, 5, 5, 5, 5, 6},
			expected: false,
		},
		{
			name:     "identical counts below five are fine",
			trailing: []int{4, 4, 4, 4, 4, 4, 4},
			expected: false,
		},
		{
			name:     "short history never flags",
			trailing: []int{5, 5, 5, 5, 5, 5},
			expected: false,
		},
		{
			name:     "seven idle days are fine",
			trailing: []int{0, 0, 0, 0, 0, 0, 0},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := TooConsistentRule{}.Evaluate(domain.SalesmanMetrics{}, tt.trailing)
			if !tt.expected {
				assert.Nil(t, flag)
				return
			}
			require.NotNil(t, flag)
			assert.Equal(t, domain.RedFlagTooConsistent7D, flag.Code)
			assert.Equal(t, domain.SeverityMedium, flag.Severity)
		})
	}
}

func TestService_AllForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkinRepo := mocks.NewMockCheckinRepository(ctrl)
	detector := NewService(timewindow.NewResolver("+07:00"), checkinRepo)

	salesmenMetrics := []domain.SalesmanMetrics{
		{SalesmanID: "S1", SalesmanCode: "SLS-001", SalesmanName: "Budi", VisitCount: 6, TotalSalesAmount: 0},
		{SalesmanID: "S2", SalesmanCode: "SLS-002", SalesmanName: "Citra", VisitCount: 3, TotalSalesAmount: 200000},
	}

	// S1 only visited on two of the trailing days; the zero-filled gaps
	// break the too-consistent pattern so only low effectiveness fires.
	checkinRepo.EXPECT().DailyVisitCounts(gomock.Any(), "S1", gomock.Any(), gomock.Any()).
		Return([]repository.DailyActivityAgg{
			{Date: "2025-03-09", VisitCount: 6},
			{Date: "2025-03-10", VisitCount: 6},
		}, nil)
	checkinRepo.EXPECT().DailyVisitCounts(gomock.Any(), "S2", gomock.Any(), gomock.Any()).
		Return([]repository.DailyActivityAgg{
			{Date: "2025-03-10", VisitCount: 3},
		}, nil)

	results, err := detector.AllForDate(context.Background(), "2025-03-10", salesmenMetrics)
	require.NoError(t, err)

	// Clean salesmen are omitted entirely.
	require.Len(t, results, 1)
	assert.Equal(t, "S1", results[0].SalesmanID)
	require.Len(t, results[0].RedFlags, 1)
	assert.Equal(t, domain.RedFlagLowEffectiveness, results[0].RedFlags[0].Code)
}

func TestService_AllForDate_TooConsistentHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkinRepo := mocks.NewMockCheckinRepository(ctrl)
	detector := NewService(timewindow.NewResolver("+07:00"), checkinRepo)

	salesmenMetrics := []domain.SalesmanMetrics{
		{SalesmanID: "S1", SalesmanCode: "SLS-001", SalesmanName: "Budi", VisitCount: 5, TotalSalesAmount: 300000},
	}

	// Exactly five visits on each of the seven trailing days.
	daily := make([]repository.DailyActivityAgg, 0, 7)
	dates, err := timewindow.DatesBetween("2025-03-04", "2025-03-10")
	require.NoError(t, err)
	for _, d := range dates {
		daily = append(daily, repository.DailyActivityAgg{Date: d, VisitCount: 5})
	}
	checkinRepo.EXPECT().DailyVisitCounts(gomock.Any(), "S1", gomock.Any(), gomock.Any()).
		Return(daily, nil)

	results, err := detector.AllForDate(context.Background(), "2025-03-10", salesmenMetrics)
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.Len(t, results[0].RedFlags, 1)
	assert.Equal(t, domain.RedFlagTooConsistent7D, results[0].RedFlags[0].Code)
}
