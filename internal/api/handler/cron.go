package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/scheduler"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

const CronJobTypeSnapshot = "snapshot"

const manualRefreshTimeout = 30 * time.Second

// SnapshotRefresher is the part of the refresh scheduler the API drives.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}

type CronJobServices struct {
	SnapshotRefresh SnapshotRefresher
}

// RunCronJob starts a job by type. With ?wait=true the snapshot refresh runs
// inline and its outcome is the response.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		if cronType != CronJobTypeSnapshot {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: snapshot", nil)
			return
		}

		if services.SnapshotRefresh == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "snapshot refresh is not available", nil)
			return
		}

		if r.URL.Query().Get("wait") != "true" {
			services.SnapshotRefresh.TriggerManualSync()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": "cron job started",
				"type":    cronType,
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), manualRefreshTimeout)
		defer cancel()

		if err := services.SnapshotRefresh.Refresh(ctx); err != nil {
			if errors.Is(err, scheduler.ErrRefreshRunning) {
				apiErrors.WriteError(w, apiErrors.ErrRefreshRunning, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("Manual snapshot refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "snapshot refresh failed", map[string]string{
				"reason": err.Error(),
			})
			return
		}

		logger.Info("Manual snapshot refresh completed")
		writeJSON(w, r, "", map[string]any{
			"message": "cron job completed",
			"type":    cronType,
			"status":  services.SnapshotRefresh.GetStatus(),
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotRefresh != nil {
			status[CronJobTypeSnapshot] = services.SnapshotRefresh.GetStatus()
		}

		writeJSON(w, r, "", status)
	}
}
