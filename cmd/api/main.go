package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dashboard-api/internal/api"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/scheduler"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

const initialLoadTimeout = 30 * time.Second

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	formatter, err := format.New(cfg.Dashboard.Locale, cfg.Dashboard.Currency)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid dashboard locale or currency")
	}

	repo, closeRepo := datasetRepository(ctx, cfg)
	defer closeRepo()

	store := dataset.NewStore()

	refreshService := scheduler.NewSnapshotRefreshService(repo, store, cfg)

	loadCtx, cancelLoad := context.WithTimeout(ctx, initialLoadTimeout)
	if err := refreshService.Refresh(loadCtx); err != nil {
		// The API still starts; data endpoints answer 503 until a refresh succeeds.
		logrus.WithError(err).Error("Initial dataset load failed")
	}
	cancelLoad()

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start snapshot refresh scheduler")
	}

	metricsService := metrics.NewService(store, formatter, metrics.MetricsConfig{
		Today: cfg.Dashboard.Today,
	})
	chartingService := charting.NewService(store, formatter)
	browsingService := browsing.NewService(store, formatter, browsing.BrowsingConfig{
		ItemPreview: cfg.Dashboard.ItemPreview,
	})
	dashboardService := dashboard.NewService(store, formatter, metricsService, chartingService, browsingService)

	server, err := api.New(cfg, api.Services{
		Reader:          store,
		Authenticator:   authenticating.NewService(cfg.Auth),
		Metrics:         metricsService,
		Charting:        chartingService,
		Browsing:        browsingService,
		Dashboard:       dashboardService,
		SnapshotRefresh: refreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// datasetRepository picks the dataset source. The returned func releases
// whatever the source holds open.
func datasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepository, func()) {
	if cfg.Dataset.Source == config.SourceFixtures {
		logrus.WithField("variant", cfg.Dataset.Variant).Info("Serving compiled-in fixtures")
		return repository.NewFixtureRepository(), func() {}
	}

	if cfg.Database.Migrate {
		if err := migration.Up(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Failed to run migrations")
		}
		logrus.Info("Migrations applied")
	}

	conn := pgconn(ctx, cfg.Database)
	return repository.NewPostgresDatasetRepository(conn), func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close PostgreSQL connection")
		}
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	logrus.Info("Connected to PostgreSQL")
	return conn
}
