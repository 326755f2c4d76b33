package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// ReadinessHandler answers 503 until the first snapshot has been published.
func ReadinessHandler(reader dataset.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap, err := reader.Current()
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, snap.Version, map[string]any{
			"variant":   snap.Dataset.Variant,
			"version":   snap.Version,
			"loaded_at": snap.LoadedAt,
		})
	})
}
