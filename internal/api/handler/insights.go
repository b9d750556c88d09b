package handler

import (
	"net/http"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/sales-monitor-api/pkg/log"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

type dailyInsightResponse struct {
	Insight *domain.DailyInsight `json:"insight"`
	Cached  bool                 `json:"cached"`
}

// DailyInsight serves the narrative report for one date, defaulting to
// yesterday in business time.
func DailyInsight(resolver *timewindow.Resolver, insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := r.URL.Query().Get("date")
		if date == "" {
			date = resolver.DaysAgo(1)
		}
		if !timewindow.IsValidDateString(date) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", map[string]string{"date": date})
			return
		}

		insight, cached, err := insighter.DailyInsight(r.Context(), date)
		if err != nil {
			logger.WithError(err).WithField("date", date).Error("insights: failed to build daily insight")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, logger, dailyInsightResponse{Insight: insight, Cached: cached})
	})
}

type weeklyInsightResponse struct {
	Insight *domain.WeeklyInsight `json:"insight"`
	Cached  bool                  `json:"cached"`
}

// WeeklyInsight serves the normalized weekly report. Without from/to it
// covers the last complete week; refresh=true bypasses and overwrites
// the cache.
func WeeklyInsight(resolver *timewindow.Resolver, insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" && to == "" {
			week := resolver.LastCompleteWeekRange()
			from, to = week.From, week.To
		}
		if !timewindow.IsValidDateString(from) || !timewindow.IsValidDateString(to) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from and to must be YYYY-MM-DD",
				map[string]string{"from": from, "to": to})
			return
		}

		refresh := r.URL.Query().Get("refresh") == "true"

		insight, cached, err := insighter.WeeklyInsight(r.Context(), from, to, refresh)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"from": from,
				"to":   to,
			}).Error("insights: failed to build weekly insight")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, logger, weeklyInsightResponse{Insight: insight, Cached: cached})
	})
}

// SalesPerformanceInsights serves the free-form insight list for a date
// widened by mode (default: containing week).
func SalesPerformanceInsights(resolver *timewindow.Resolver, insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := queryDate(w, r, resolver)
		if date == "" {
			return
		}

		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = ModeWeekly
		}
		dateRange, err := resolveModeRange(date, mode)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		insights, err := insighter.SalesPerformanceInsights(r.Context(), dateRange.From, dateRange.To)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"from": dateRange.From,
				"to":   dateRange.To,
			}).Error("insights: failed to build sales performance insights")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, logger, insights)
	})
}
