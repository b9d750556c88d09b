package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-monitor-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/sales-monitor-api/pkg/log"
)

// IngestCheckin appends one visit event, registering unknown salesman
// and outlet codes on the way in.
func IngestCheckin(ingester ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ingesting.CheckinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		checkin, err := ingester.IngestCheckin(r.Context(), req)
		if err != nil {
			var validationErr *ingesting.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Reason, nil)
				return
			}
			logger.WithError(err).Error("ingest: failed to store checkin")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(checkin); err != nil {
			logger.WithError(err).Error("ingest: failed to encode checkin response")
		}
	})
}

// IngestSale appends one sale event. Sales without an invoice number
// receive a generated short reference.
func IngestSale(ingester ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ingesting.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		sale, err := ingester.IngestSale(r.Context(), req)
		if err != nil {
			var validationErr *ingesting.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Reason, nil)
				return
			}
			logger.WithError(err).Error("ingest: failed to store sale")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logger.WithError(err).Error("ingest: failed to encode sale response")
		}
	})
}
