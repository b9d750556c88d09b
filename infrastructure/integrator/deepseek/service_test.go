package deepseek

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-monitor-api/infrastructure/integrator/deepseek/mocks"
	"github.com/vfg2006/sales-monitor-api/internal/config"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

func TestService_Enabled(t *testing.T) {
	assert.False(t, New(config.DeepSeek{}, nil).Enabled())
	assert.True(t, New(config.DeepSeek{APIKey: "sk-test"}, nil).Enabled())
}

func TestService_DailyInsight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := &domain.AggregatedMetrics{
		Date:        "2025-03-10",
		TotalVisits: 10,
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanName: "Budi", VisitCount: 10, ConversionRate: 0.4, TotalSalesAmount: 500000},
		},
	}

	t.Run("valid response is parsed", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(`{
			"date": "2025-03-10",
			"highlights": ["Budi mencatat konversi tertinggi"],
			"risks": ["Tidak ada risiko signifikan"],
			"actions": ["Lanjutkan pemantauan"],
			"notes": "Hari yang stabil"
		}`, nil)

		insight, err := generator.DailyInsight(context.Background(), metrics, nil)
		require.NoError(t, err)

		assert.Equal(t, "2025-03-10", insight.Date)
		assert.Len(t, insight.Highlights, 1)
		assert.Equal(t, "Hari yang stabil", insight.Notes)
	})

	t.Run("response missing required fields is rejected", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).
			Return(`{"date": "2025-03-10", "highlights": ["sesuatu"]}`, nil)

		_, err := generator.DailyInsight(context.Background(), metrics, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid structure")
	})

	t.Run("non-JSON response is rejected", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).
			Return("maaf, saya tidak bisa membantu", nil)

		_, err := generator.DailyInsight(context.Background(), metrics, nil)
		require.Error(t, err)
	})

	t.Run("client error propagates", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return("", assert.AnError)

		_, err := generator.DailyInsight(context.Background(), metrics, nil)
		require.Error(t, err)
	})
}

func TestService_WeeklyInsight_ValidatesStructure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := &domain.WeeklyInsightInput{
		Period: domain.Period{From: "2025-03-03", To: "2025-03-09"},
	}

	t.Run("missing period is rejected", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(`{
			"summary": {"highlights": [], "risks": [], "actions": []},
			"detail": "detail",
			"notes": "notes"
		}`, nil)

		_, err := generator.WeeklyInsight(context.Background(), input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid structure")
	})

	t.Run("complete response passes", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).Return(`{
			"period": {"from": "2025-03-03", "to": "2025-03-09"},
			"summary": {
				"highlights": ["h1", "h2", "h3", "h4", "h5"],
				"risks": ["r1"],
				"actions": ["Mitigasi Risiko 1: a1"]
			},
			"detail": "Ringkasan minggu.",
			"notes": "Catatan."
		}`, nil)

		insight, err := generator.WeeklyInsight(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "2025-03-03", insight.Period.From)
		assert.Len(t, insight.Summary.Highlights, 5)
	})
}

func TestService_SalesPerformanceInsights_ValidatesStructure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := &domain.SalesPerformanceInput{
		Period: domain.Period{From: "2025-03-03", To: "2025-03-09"},
	}

	t.Run("empty insights list is rejected", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).
			Return(`{"period": {"from": "2025-03-03", "to": "2025-03-09"}, "insights": []}`, nil)

		_, err := generator.SalesPerformanceInsights(context.Background(), input)
		require.Error(t, err)
	})

	t.Run("valid response is parsed", func(t *testing.T) {
		client := mocks.NewMockClient(ctrl)
		generator := New(config.DeepSeek{APIKey: "sk-test"}, client)

		client.EXPECT().ChatJSON(gomock.Any(), gomock.Any()).
			Return(`{"period": {"from": "2025-03-03", "to": "2025-03-09"}, "insights": ["insight satu"]}`, nil)

		insights, err := generator.SalesPerformanceInsights(context.Background(), input)
		require.NoError(t, err)

		assert.Len(t, insights.Insights, 1)
	})
}

func TestBuildDailyPromptData(t *testing.T) {
	metrics := &domain.AggregatedMetrics{
		Date:              "2025-03-10",
		TotalVisits:       25,
		TotalSalesmen:     3,
		TotalSalesAmount:  900000,
		TotalSalesQty:     5,
		AvgConversionRate: 0.2,
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanName: "Budi", VisitCount: 10, ConversionRate: 0.5, TotalSalesAmount: 600000},
			{SalesmanName: "Citra", VisitCount: 10, ConversionRate: 0.1, TotalSalesAmount: 100000},
			{SalesmanName: "Dewi", VisitCount: 5, ConversionRate: 0.2, TotalSalesAmount: 200000},
		},
	}
	redFlags := []domain.SalesmanRedFlags{
		{
			SalesmanName: "Citra",
			RedFlags: []domain.RedFlag{
				{Code: domain.RedFlagLowEffectiveness, Title: "Efektivitas Rendah", Severity: domain.SeverityHigh},
			},
		},
	}

	data := buildDailyPromptData(metrics, redFlags)

	assert.Equal(t, "2025-03-10", data.Date)
	assert.Equal(t, 25, data.Summary.TotalVisits)

	require.Len(t, data.TopByConversion, 2)
	assert.Equal(t, "Budi", data.TopByConversion[0].Name)

	// Bottom list is worst first.
	require.Len(t, data.BottomByConv, 2)
	assert.Equal(t, "Citra", data.BottomByConv[0].Name)

	require.Len(t, data.TopBySales, 2)
	assert.Equal(t, "Budi", data.TopBySales[0].Name)

	assert.Equal(t, 1, data.RedFlags.TotalCount)
	assert.Equal(t, 1, data.RedFlags.HighSeverity)
	require.Len(t, data.RedFlags.Details, 1)
	assert.Equal(t, []string{"Efektivitas Rendah"}, data.RedFlags.Details[0].Flags)
}
