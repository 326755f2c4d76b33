package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/internal/api/handler"
	"github.com/vfg2006/restaurant-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/middleware"
	"github.com/vfg2006/restaurant-dashboard-api/web"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services is everything the HTTP layer serves from.
type Services struct {
	Reader          dataset.Reader
	Authenticator   authenticating.Authenticator
	Metrics         metrics.Aggregator
	Charting        charting.Charter
	Browsing        browsing.Browser
	Dashboard       dashboard.Composer
	SnapshotRefresh handler.SnapshotRefresher
}

func New(cfg *config.Config, services Services) (*Server, error) {
	h, err := NewHandler(cfg, services)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler builds the routed handler with the global middleware chain.
func NewHandler(cfg *config.Config, services Services) (http.Handler, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, errors.Wrap(err, "parse dashboard templates")
	}

	cronServices := handler.CronJobServices{
		SnapshotRefresh: services.SnapshotRefresh,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Reader)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Browsing(services.Browsing)...),
		router.WithRoutes(handler.Insights(services.Metrics, services.Dashboard, services.Charting)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard, templates)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
