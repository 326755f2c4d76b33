// Command script creates the dataset tables and loads the compiled-in fixture
// variants into Postgres. Pass variant names to seed only those.
package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/fixtures"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
)

const seedTimeout = 2 * time.Minute

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Starting dataset seed")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := migration.Up(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}
	logrus.Info("Migrations applied")

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer conn.Close()

	variants := os.Args[1:]
	if len(variants) == 0 {
		variants = fixtures.Variants()
	}

	writer := repository.NewPostgresDatasetRepository(conn)

	failed := 0
	for _, variant := range variants {
		startTime := time.Now()
		logger := logrus.WithField("variant", variant)

		ds, err := fixtures.Load(variant)
		if err != nil {
			logger.WithError(err).Error("Unknown fixture variant")
			failed++
			continue
		}

		if err := writer.Replace(ctx, ds); err != nil {
			logger.WithError(err).Error("Failed to seed variant")
			failed++
			continue
		}

		logger.WithFields(logrus.Fields{
			"customers": len(ds.Customers),
			"orders":    len(ds.Orders),
			"sales":     len(ds.Sales),
			"duration":  time.Since(startTime).String(),
		}).Info("Variant seeded")
	}

	if failed > 0 {
		logrus.Errorf("Seed finished with %d failed variant(s)", failed)
		os.Exit(1)
	}

	logrus.Info("Seed finished")
}
