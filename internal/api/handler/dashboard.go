package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
	"github.com/vfg2006/restaurant-dashboard-api/web"
)

func GetDashboard(service dashboard.Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.Page()
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, page.Version, page)
	}
}

// RenderDashboard serves the whole page as HTML. The page is rendered into a
// buffer first so a template failure never produces a half-written body.
func RenderDashboard(service dashboard.Composer, templates *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.Page()
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, web.DashboardTemplate, page); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Failed to render dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to render dashboard", nil)
			return
		}

		w.Header().Set(HeaderDatasetVersion, page.Version)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Failed to write dashboard")
		}
	}
}
