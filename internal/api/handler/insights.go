package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

func GetMetrics(service metrics.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary()
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, summary.Version, summary)
	}
}

func GetSales(service dashboard.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
			return
		}

		sales, err := service.Sales(startDate, endDate)
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, sales.Version, sales)
	}
}

func GetDistribution(service charting.Charter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		distribution, err := service.Distribution()
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, distribution.Version, distribution)
	}
}
