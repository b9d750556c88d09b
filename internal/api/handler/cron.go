package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-monitor-api/internal/scheduler"
	"github.com/vfg2006/sales-monitor-api/pkg/apiErrors"
)

// Cron job types accepted by the manual-run endpoint.
const (
	CronJobTypeInsightWarm = "insight-warm"
	CronJobTypeAll         = "all"
)

// CronJobServices bundles the schedulers the cron endpoints control.
type CronJobServices struct {
	InsightWarmService *scheduler.InsightWarmService
}

// RunCronJob triggers one cron job manually.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeInsightWarm, CronJobTypeAll:
			if services.InsightWarmService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "insight warm service not available", nil)
				return
			}
			services.InsightWarmService.TriggerManualRun()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: insight-warm, all", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the state of every scheduler.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"insight-warm": services.InsightWarmService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
