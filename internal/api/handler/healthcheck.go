package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		payload := map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(payload); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
