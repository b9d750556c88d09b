package deepseek

import (
	"context"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-monitor-api/infrastructure/integrator/deepseek/deepseekclient"
	"github.com/vfg2006/sales-monitor-api/internal/config"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Generator produces narrative insight payloads from aggregated data.
// Responses are parsed and structurally validated here; normalization
// and fallbacks belong to the insighting usecase.
type Generator interface {
	Enabled() bool
	DailyInsight(ctx context.Context, metrics *domain.AggregatedMetrics, redFlags []domain.SalesmanRedFlags) (*domain.DailyInsight, error)
	WeeklyInsight(ctx context.Context, input *domain.WeeklyInsightInput) (*domain.WeeklyInsight, error)
	SalesPerformanceInsights(ctx context.Context, input *domain.SalesPerformanceInput) (*domain.SalesPerformanceInsights, error)
}

type Service struct {
	cfg    config.DeepSeek
	Client deepseekclient.Client
}

func New(cfg config.DeepSeek, client deepseekclient.Client) Generator {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.APIKey != ""
}

const dailySystemPrompt = `Anda adalah asisten analitik sales. Analisis data kunjungan sales harian dan berikan insight yang dapat ditindaklanjuti.

ATURAN PENTING:
1. Keluarkan HANYA JSON yang valid dengan format yang persis seperti ditentukan
2. Jangan menuduh siapa pun melakukan kecurangan atau pelanggaran - gunakan frasa seperti "perlu ditinjau" atau "perlu perhatian"
3. Ringkas namun spesifik
4. Fokus pada insight yang dapat ditindaklanjuti

FORMAT OUTPUT (JSON ketat):
{
  "date": "YYYY-MM-DD",
  "highlights": ["array string berisi 2-3 hal positif"],
  "risks": ["array string berisi 2-3 risiko atau hal yang perlu perhatian"],
  "actions": ["array string berisi 2-3 tindakan yang direkomendasikan"],
  "notes": "string tunggal untuk konteks tambahan"
}`

const weeklySystemPrompt = `Anda adalah asisten analitik sales. Buat laporan mingguan dengan format ringkas + detail.

ATURAN PENTING:
1. Keluarkan HANYA JSON yang valid dengan format yang persis seperti ditentukan
2. Jangan menuduh siapa pun melakukan kecurangan atau pelanggaran
3. Hindari kata "bendera" atau "red flag" dalam output
4. Ringkas namun spesifik
5. Ikuti definisi ketat Sorotan/Risiko/Tindakan di bawah

FORMAT OUTPUT (JSON ketat):
{
  "period": { "from": "YYYY-MM-DD", "to": "YYYY-MM-DD" },
  "summary": {
    "highlights": ["array string berisi 5 poin sorotan"],
    "risks": ["array string berisi 1-3 risiko"],
    "actions": ["array string berisi 1-3 tindakan mitigasi"]
  },
  "detail": "paragraf singkat (3-5 kalimat) yang merangkum performa minggu ini",
  "notes": "string tunggal untuk konteks tambahan"
}

DEFINISI KETAT:
- Sorotan: HANYA laporan fakta (metrik, top performer, deskripsi kejadian). Tidak boleh berisi risiko, saran, atau prediksi.
- Risiko: HANYA hal yang dapat menyebabkan kerugian bisnis dalam 30 hari ke depan. Maks 1 risiko utama + 2 risiko sekunder.
- Tindakan: HANYA langkah mitigasi yang secara langsung menjawab risiko yang disebutkan. Tidak boleh ada aksi yang tidak terkait risiko.
- Setiap tindakan WAJIB menyebut target risiko (contoh: "Mitigasi Risiko 1: ...").
- Format Risiko Utama WAJIB satu kalimat: "[WHAT], which may [BUSINESS IMPACT], if not addressed within [TIMEFRAME]."
- Risiko sekunder boleh singkat tanpa penjelasan.
- Jika tidak ada risiko valid, isi risks dengan: ["Tidak ada risiko kritis minggu ini."] dan actions harus [].

FORMAT SOROTAN (WAJIB 5 poin, urutan tetap):
1) Total penjualan + unit terjual, bandingkan dengan minggu sebelumnya.
2) Rata-rata konversi, bandingkan dengan minggu sebelumnya.
3) Performa leader terbaik (sebutkan nama).
4) Sales dengan performa terbaik (sebutkan nama).
5) Daerah (region) dengan kunjungan paling ramai.
}`

const salesPerformanceSystemPrompt = `Anda adalah analis performa sales. Buat insight singkat dan actionable berdasarkan data agregat.

ATURAN PENTING:
1. Keluarkan HANYA JSON valid sesuai format yang diminta.
2. Jangan mengada-ada. Jika data tidak cukup, tulis insight yang aman.
3. Setiap insight 1 kalimat, maksimal 20 kata.
4. Gunakan angka persis yang diberikan.

FORMAT OUTPUT:
{
  "period": { "from": "YYYY-MM-DD", "to": "YYYY-MM-DD" },
  "insights": ["3-5 kalimat insight"]
}`

type dailyPromptData struct {
	Date    string `json:"date"`
	Summary struct {
		TotalVisits       int     `json:"total_visits"`
		TotalSalesmen     int     `json:"total_salesmen"`
		TotalSalesAmount  float64 `json:"total_sales_amount"`
		TotalSalesQty     int     `json:"total_sales_qty"`
		AvgConversionRate float64 `json:"avg_conversion_rate"`
	} `json:"summary"`
	TopByConversion []dailyPromptPerformer `json:"top_by_conversion"`
	BottomByConv    []dailyPromptPerformer `json:"bottom_by_conversion"`
	TopBySales      []dailyPromptPerformer `json:"top_by_sales"`
	RedFlags        struct {
		TotalCount   int                   `json:"total_count"`
		HighSeverity int                   `json:"high_severity"`
		MedSeverity  int                   `json:"medium_severity"`
		LowSeverity  int                   `json:"low_severity"`
		Details      []dailyPromptFlagging `json:"details"`
	} `json:"red_flags"`
}

type dailyPromptPerformer struct {
	Name           string   `json:"name"`
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
	SalesAmount    *float64 `json:"sales_amount,omitempty"`
	Visits         *int     `json:"visits,omitempty"`
	Qty            *int     `json:"qty,omitempty"`
}

type dailyPromptFlagging struct {
	Salesman string   `json:"salesman"`
	Flags    []string `json:"flags"`
}

func buildDailyPromptData(metrics *domain.AggregatedMetrics, redFlags []domain.SalesmanRedFlags) *dailyPromptData {
	byConversion := make([]domain.SalesmanMetrics, 0, len(metrics.SalesmenMetrics))
	for _, m := range metrics.SalesmenMetrics {
		if m.VisitCount > 0 {
			byConversion = append(byConversion, m)
		}
	}
	sort.SliceStable(byConversion, func(i, j int) bool {
		return byConversion[i].ConversionRate > byConversion[j].ConversionRate
	})

	bySales := make([]domain.SalesmanMetrics, len(metrics.SalesmenMetrics))
	copy(bySales, metrics.SalesmenMetrics)
	sort.SliceStable(bySales, func(i, j int) bool {
		return bySales[i].TotalSalesAmount > bySales[j].TotalSalesAmount
	})

	data := &dailyPromptData{Date: metrics.Date}
	data.Summary.TotalVisits = metrics.TotalVisits
	data.Summary.TotalSalesmen = metrics.TotalSalesmen
	data.Summary.TotalSalesAmount = metrics.TotalSalesAmount
	data.Summary.TotalSalesQty = metrics.TotalSalesQty
	data.Summary.AvgConversionRate = metrics.AvgConversionRate

	data.TopByConversion = make([]dailyPromptPerformer, 0, 2)
	for _, m := range topN(byConversion, 2) {
		m := m
		data.TopByConversion = append(data.TopByConversion, dailyPromptPerformer{
			Name:           m.SalesmanName,
			ConversionRate: &m.ConversionRate,
			SalesAmount:    &m.TotalSalesAmount,
		})
	}

	data.BottomByConv = make([]dailyPromptPerformer, 0, 2)
	for _, m := range bottomN(byConversion, 2) {
		m := m
		data.BottomByConv = append(data.BottomByConv, dailyPromptPerformer{
			Name:           m.SalesmanName,
			ConversionRate: &m.ConversionRate,
			Visits:         &m.VisitCount,
		})
	}

	data.TopBySales = make([]dailyPromptPerformer, 0, 2)
	for _, m := range topN(bySales, 2) {
		m := m
		data.TopBySales = append(data.TopBySales, dailyPromptPerformer{
			Name:        m.SalesmanName,
			SalesAmount: &m.TotalSalesAmount,
			Qty:         &m.TotalSalesQty,
		})
	}

	counts := domain.CountRedFlagsBySeverity(redFlags)
	data.RedFlags.TotalCount = len(redFlags)
	data.RedFlags.HighSeverity = counts.High
	data.RedFlags.MedSeverity = counts.Medium
	data.RedFlags.LowSeverity = counts.Low
	data.RedFlags.Details = make([]dailyPromptFlagging, 0, len(redFlags))
	for _, rf := range redFlags {
		titles := make([]string, 0, len(rf.RedFlags))
		for _, f := range rf.RedFlags {
			titles = append(titles, f.Title)
		}
		data.RedFlags.Details = append(data.RedFlags.Details, dailyPromptFlagging{
			Salesman: rf.SalesmanName,
			Flags:    titles,
		})
	}

	return data
}

func topN(metrics []domain.SalesmanMetrics, n int) []domain.SalesmanMetrics {
	if len(metrics) < n {
		n = len(metrics)
	}
	return metrics[:n]
}

// bottomN returns the last n entries, worst first.
func bottomN(metrics []domain.SalesmanMetrics, n int) []domain.SalesmanMetrics {
	if len(metrics) < n {
		n = len(metrics)
	}
	tail := metrics[len(metrics)-n:]
	out := make([]domain.SalesmanMetrics, 0, n)
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}

func (s *Service) DailyInsight(ctx context.Context, metrics *domain.AggregatedMetrics, redFlags []domain.SalesmanRedFlags) (*domain.DailyInsight, error) {
	dataPrompt, err := jsonAPI.MarshalIndent(buildDailyPromptData(metrics, redFlags), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding prompt data: %w", err)
	}

	userPrompt := fmt.Sprintf(`Analisis data kunjungan sales tanggal %s:

%s

Berikan insight sesuai format JSON yang ditentukan.`, metrics.Date, dataPrompt)

	content, err := s.Client.ChatJSON(ctx, []deepseekclient.Message{
		{Role: "system", Content: dailySystemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return nil, err
	}

	parsed := &domain.DailyInsight{}
	if err := jsonAPI.Unmarshal([]byte(content), parsed); err != nil {
		return nil, fmt.Errorf("error parsing daily insight: %w", err)
	}
	if parsed.Date == "" || parsed.Highlights == nil || parsed.Risks == nil || parsed.Actions == nil {
		return nil, errors.New("daily insight response has invalid structure")
	}

	return parsed, nil
}

func (s *Service) WeeklyInsight(ctx context.Context, input *domain.WeeklyInsightInput) (*domain.WeeklyInsight, error) {
	dataPrompt, err := jsonAPI.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding prompt data: %w", err)
	}

	userPrompt := fmt.Sprintf(`Analisis data mingguan berikut dan buat laporan sesuai format JSON:

%s

Patuhi DEFINISI KETAT. Pastikan:
- Sorotan hanya fakta.
- Risiko hanya risiko berdampak 30 hari ke depan, bukan peluang.
- Tindakan harus langsung merespons Risiko dan menyebut "Risiko 1/2/3".
- Risiko utama harus satu kalimat dengan format: "[WHAT], which may [BUSINESS IMPACT], if not addressed within [TIMEFRAME]."
- Sorotan harus mengikuti urutan 1-5 sesuai FORMAT SOROTAN dan menyertakan perbandingan vs minggu sebelumnya.
`, dataPrompt)

	content, err := s.Client.ChatJSON(ctx, []deepseekclient.Message{
		{Role: "system", Content: weeklySystemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return nil, err
	}

	parsed := &domain.WeeklyInsight{}
	if err := jsonAPI.Unmarshal([]byte(content), parsed); err != nil {
		return nil, fmt.Errorf("error parsing weekly insight: %w", err)
	}
	if parsed.Period.From == "" || parsed.Period.To == "" ||
		parsed.Summary.Highlights == nil || parsed.Summary.Risks == nil || parsed.Summary.Actions == nil {
		return nil, errors.New("weekly insight response has invalid structure")
	}

	return parsed, nil
}

func (s *Service) SalesPerformanceInsights(ctx context.Context, input *domain.SalesPerformanceInput) (*domain.SalesPerformanceInsights, error) {
	dataPrompt, err := jsonAPI.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding prompt data: %w", err)
	}

	userPrompt := fmt.Sprintf(`Data agregat periode %s – %s:

%s

Hasilkan 3-5 insight yang actionable. Contoh pola:
- Waktu kunjungan tertentu memiliki success rate rendah/tinggi (jika time_of_day tersedia).
- Pola kunjungan per hari vs konversi (jika visit_per_day_bins tersedia).
`, input.Period.From, input.Period.To, dataPrompt)

	content, err := s.Client.ChatJSON(ctx, []deepseekclient.Message{
		{Role: "system", Content: salesPerformanceSystemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return nil, err
	}

	parsed := &domain.SalesPerformanceInsights{}
	if err := jsonAPI.Unmarshal([]byte(content), parsed); err != nil {
		return nil, fmt.Errorf("error parsing sales performance insights: %w", err)
	}
	if parsed.Period.From == "" || len(parsed.Insights) == 0 {
		return nil, errors.New("sales performance response has invalid structure")
	}

	return parsed, nil
}
