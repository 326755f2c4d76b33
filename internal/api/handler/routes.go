package handler

import (
	"html/template"
	"net/http"

	"github.com/vfg2006/restaurant-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/middleware"
)

func Healthcheck(reader dataset.Reader) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/readiness",
			Method:  http.MethodGet,
			Handler: ReadinessHandler(reader),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Browsing(service browsing.Browser) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     ListOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(metricsService metrics.Aggregator, composer dashboard.Composer, charter charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(metricsService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     GetSales(composer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/distribution",
			Method:      http.MethodGet,
			Handler:     GetDistribution(charter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(composer dashboard.Composer, templates *template.Template) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(composer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     RenderDashboard(composer, templates),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
