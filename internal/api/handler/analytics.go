package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/flagging"
	"github.com/vfg2006/sales-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/sales-monitor-api/pkg/log"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

// View modes accepted by the date+mode analytics endpoints.
const (
	ModeDaily   = "daily"
	ModeWeekly  = "weekly"
	ModeMonthly = "monthly"
)

// resolveModeRange turns a (date, mode) pair into an inclusive range.
// Daily mode collapses to a single-day range.
func resolveModeRange(date, mode string) (timewindow.DateRange, error) {
	switch mode {
	case "", ModeDaily:
		return timewindow.DateRange{From: date, To: date}, nil
	case ModeWeekly:
		return timewindow.WeekRangeForDate(date)
	case ModeMonthly:
		return timewindow.MonthRangeForDate(date)
	default:
		return timewindow.DateRange{}, &modeError{mode: mode}
	}
}

type modeError struct {
	mode string
}

func (e *modeError) Error() string {
	return "invalid mode: " + e.mode + " (accepted: daily, weekly, monthly)"
}

// queryDate reads the date parameter, defaulting to today in business
// time. An empty string return means the response was already written.
func queryDate(w http.ResponseWriter, r *http.Request, resolver *timewindow.Resolver) string {
	date := r.URL.Query().Get("date")
	if date == "" {
		return resolver.DaysAgo(0)
	}
	if !timewindow.IsValidDateString(date) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", map[string]string{"date": date})
		return ""
	}
	return date
}

type dailyAnalyticsResponse struct {
	Metrics  *domain.AggregatedMetrics `json:"metrics"`
	RedFlags []domain.SalesmanRedFlags `json:"red_flags,omitempty"`
	Rankings *domain.Rankings          `json:"rankings"`
}

// DailyAnalytics serves metrics plus rankings for a date, widened to
// the containing week or month by mode. Red flags only apply to the
// daily view.
func DailyAnalytics(resolver *timewindow.Resolver, analyzer analyzing.Analyzer, detector flagging.Detector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := queryDate(w, r, resolver)
		if date == "" {
			return
		}
		mode := r.URL.Query().Get("mode")

		dateRange, err := resolveModeRange(date, mode)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		var metrics *domain.AggregatedMetrics
		if dateRange.From == dateRange.To {
			metrics, err = analyzer.DailyMetricsForDate(r.Context(), date)
		} else {
			metrics, err = analyzer.MetricsForRange(r.Context(), dateRange.From, dateRange.To)
		}
		if err != nil {
			logger.WithError(err).WithField("date", date).Error("analytics: failed to aggregate metrics")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		response := dailyAnalyticsResponse{
			Metrics:  metrics,
			Rankings: analyzer.Rankings(metrics),
		}

		if dateRange.From == dateRange.To {
			redFlags, err := detector.AllForDate(r.Context(), date, metrics.SalesmenMetrics)
			if err != nil {
				logger.WithError(err).WithField("date", date).Error("analytics: failed to evaluate red flags")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
				return
			}
			response.RedFlags = redFlags
		}

		writeJSON(w, logger, response)
	})
}

type salesmanAnalyticsResponse struct {
	*domain.SalesmanPeriodMetrics
	RedFlagHistory []domain.DailyRedFlags `json:"red_flag_history"`
}

// SalesmanAnalytics serves one salesman's per-day breakdown over an
// inclusive range, with the flags each day triggered.
func SalesmanAnalytics(analyzer analyzing.Analyzer, detector flagging.Detector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salesmanID := r.URL.Query().Get("salesman_id")
		if salesmanID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "salesman_id is required", nil)
			return
		}

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if !timewindow.IsValidDateString(from) || !timewindow.IsValidDateString(to) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from and to must be YYYY-MM-DD",
				map[string]string{"from": from, "to": to})
			return
		}

		metrics, err := analyzer.MetricsForSalesman(r.Context(), salesmanID, from, to)
		if err != nil {
			logger.WithError(err).WithField("salesman_id", salesmanID).Error("analytics: failed to load salesman metrics")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}
		if metrics.Salesman == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "salesman not found",
				map[string]string{"salesman_id": salesmanID})
			return
		}

		history := make([]domain.DailyRedFlags, 0)
		for _, day := range metrics.DailyMetrics {
			flagged, err := detector.AllForDate(r.Context(), day.Date, []domain.SalesmanMetrics{day})
			if err != nil {
				logger.WithError(err).WithField("date", day.Date).Error("analytics: failed to evaluate red flags")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
				return
			}
			if len(flagged) > 0 {
				history = append(history, domain.DailyRedFlags{Date: day.Date, Flags: flagged[0].RedFlags})
			}
		}

		writeJSON(w, logger, salesmanAnalyticsResponse{
			SalesmanPeriodMetrics: metrics,
			RedFlagHistory:        history,
		})
	})
}

// SalesmanDay serves the raw check-ins and sales for one salesman on
// one date.
func SalesmanDay(resolver *timewindow.Resolver, analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salesmanID := r.URL.Query().Get("salesman_id")
		if salesmanID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "salesman_id is required", nil)
			return
		}

		date := queryDate(w, r, resolver)
		if date == "" {
			return
		}

		detail, err := analyzer.SalesmanDayDetail(r.Context(), salesmanID, date)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"salesman_id": salesmanID,
				"date":        date,
			}).Error("analytics: failed to load salesman day detail")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}
		if detail == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "salesman not found",
				map[string]string{"salesman_id": salesmanID})
			return
		}

		writeJSON(w, logger, detail)
	})
}

// LeaderRegion serves leader and region rollups. The range comes from
// date, range=7d|30d or an explicit from/to pair; the default is the
// last complete week. 30d means the four complete weeks ending with it.
func LeaderRegion(resolver *timewindow.Resolver, analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, ok := leaderRegionRange(w, r, resolver)
		if !ok {
			return
		}

		metrics, err := analyzer.LeaderRegionMetrics(r.Context(), dateRange.From, dateRange.To)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"from": dateRange.From,
				"to":   dateRange.To,
			}).Error("analytics: failed to roll up leaders and regions")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

func leaderRegionRange(w http.ResponseWriter, r *http.Request, resolver *timewindow.Resolver) (timewindow.DateRange, bool) {
	query := r.URL.Query()

	if date := query.Get("date"); date != "" {
		if !timewindow.IsValidDateString(date) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", map[string]string{"date": date})
			return timewindow.DateRange{}, false
		}
		return timewindow.DateRange{From: date, To: date}, true
	}

	if from, to := query.Get("from"), query.Get("to"); from != "" || to != "" {
		if !timewindow.IsValidDateString(from) || !timewindow.IsValidDateString(to) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from and to must be YYYY-MM-DD",
				map[string]string{"from": from, "to": to})
			return timewindow.DateRange{}, false
		}
		return timewindow.DateRange{From: from, To: to}, true
	}

	week := resolver.LastCompleteWeekRange()
	switch query.Get("range") {
	case "", "7d":
		return week, true
	case "30d":
		end, err := timewindow.ParseDate(week.To)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return timewindow.DateRange{}, false
		}
		return timewindow.DateRange{
			From: timewindow.FormatDate(end.AddDate(0, 0, -27)),
			To:   week.To,
		}, true
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid range (accepted: 7d, 30d)",
			map[string]string{"range": query.Get("range")})
		return timewindow.DateRange{}, false
	}
}

type outletsResponse struct {
	Period  domain.Period          `json:"period"`
	Outlets []domain.OutletMetrics `json:"outlets"`
}

// Outlets serves the per-outlet visit/sales table for a date widened by
// mode.
func Outlets(resolver *timewindow.Resolver, analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := queryDate(w, r, resolver)
		if date == "" {
			return
		}

		dateRange, err := resolveModeRange(date, r.URL.Query().Get("mode"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		outlets, err := analyzer.OutletMetricsForPeriod(r.Context(), dateRange.From, dateRange.To)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"from": dateRange.From,
				"to":   dateRange.To,
			}).Error("analytics: failed to aggregate outlets")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, logger, outletsResponse{
			Period:  domain.Period{From: dateRange.From, To: dateRange.To},
			Outlets: outlets,
		})
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
