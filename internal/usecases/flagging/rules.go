package flagging

import (
	"fmt"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

const minVisitsForFlag = 5

// LowEffectivenessRule flags a day with heavy visiting and zero sales.
type LowEffectivenessRule struct{}

func (LowEffectivenessRule) Evaluate(metrics domain.SalesmanMetrics) *domain.RedFlag {
	if metrics.VisitCount >= minVisitsForFlag && metrics.TotalSalesAmount == 0 {
		return &domain.RedFlag{
			Code:     domain.RedFlagLowEffectiveness,
			Title:    "Efektivitas Rendah",
			Severity: domain.SeverityHigh,
			Reason:   fmt.Sprintf("Melakukan %d kunjungan tetapi tidak ada penjualan. Pola ini perlu ditinjau.", metrics.VisitCount),
		}
	}
	return nil
}

// TooConsistentRule flags seven identical daily visit counts of at
// least five, ending at the evaluation date.
type TooConsistentRule struct{}

func (TooConsistentRule) Lookback() int { return 7 }

func (TooConsistentRule) Evaluate(_ domain.SalesmanMetrics, trailingVisits []int) *domain.RedFlag {
	if len(trailingVisits) < 7 {
		return nil
	}

	first := trailingVisits[0]
	for _, count := range trailingVisits {
		if count != first {
			return nil
		}
	}

	if first >= minVisitsForFlag {
		return &domain.RedFlag{
			Code:     domain.RedFlagTooConsistent7D,
			Title:    "Kunjungan Tidak Variatif",
			Severity: domain.SeverityMedium,
			Reason:   fmt.Sprintf("Tepat %d kunjungan setiap hari selama 7 hari terakhir. Pola kunjungan tidak variatif dan perlu ditinjau.", first),
		}
	}
	return nil
}
