package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HeaderDatasetVersion names the snapshot a response was computed from.
const HeaderDatasetVersion = "X-Dataset-Version"

func writeJSON(w http.ResponseWriter, r *http.Request, version string, body any) {
	if version != "" {
		w.Header().Set(HeaderDatasetVersion, version)
	}
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Failed to encode response")
	}
}

// handleUsecaseError maps a usecase failure to the error envelope.
func handleUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	var browsingErr *browsing.BrowsingError
	if errors.As(err, &browsingErr) {
		var details any
		if browsingErr.Field != "" {
			details = map[string]string{"field": browsingErr.Field}
		}
		apiErrors.WriteError(w, browsingErr.Code, browsingErr.Error(), details)
		return
	}

	var metricsErr *metrics.MetricsError
	if errors.As(err, &metricsErr) {
		apiErr := apiErrors.FromError(metricsErr, metricsErr.Code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	if errors.Is(err, dataset.ErrNoSnapshot) {
		apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, "dataset is not loaded yet", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Request failed")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
}
