package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
)

const refreshTimeout = 30 * time.Second

var ErrRefreshRunning = errors.New("snapshot refresh already running")

// SnapshotRefreshConfig is the scheduler view of the application config.
type SnapshotRefreshConfig struct {
	CronSchedule string
	Variant      string
	Source       string
	SyncEnabled  bool
}

// SnapshotRefreshService reloads the dataset from its source and publishes it
// to the store. A failed or invalid load keeps the snapshot being served.
type SnapshotRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotRefreshConfig
	repo                repository.DatasetRepository
	store               *dataset.Store
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastVersion         string
	lastError           string
}

func NewSnapshotRefreshService(
	repo repository.DatasetRepository,
	store *dataset.Store,
	appConfig *config.Config,
) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: appConfig.SnapshotRefresh.CronSchedule,
		Variant:      appConfig.Dataset.Variant,
		Source:       appConfig.Dataset.Source,
		SyncEnabled:  appConfig.SnapshotRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"variant":       refreshConfig.Variant,
		"source":        refreshConfig.Source,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Snapshot refresh scheduler configured")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		repo:      repo,
		store:     store,
	}
}

// Start schedules periodic refreshes. It does not load the first snapshot;
// call Refresh for that before serving traffic.
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting snapshot refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduled()
	})
	if err != nil {
		return errors.Wrap(err, "schedule snapshot refresh")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping snapshot refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotRefreshService) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshRunning) {
		logrus.WithError(err).Error("Scheduled snapshot refresh failed")
	}
}

// Refresh loads, validates and publishes one snapshot. It returns
// ErrRefreshRunning without doing anything when another refresh is in flight.
func (s *SnapshotRefreshService) Refresh(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot refresh already running, skipping")
		return ErrRefreshRunning
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	version, err := s.loadAndPublish(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastVersion = version
		s.lastSyncCompletedAt = time.Now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"variant":  s.config.Variant,
		"version":  version,
		"duration": time.Since(startTime).String(),
	}).Info("Snapshot refreshed")

	return nil
}

func (s *SnapshotRefreshService) loadAndPublish(ctx context.Context) (string, error) {
	ds, err := s.repo.Load(ctx, s.config.Variant)
	if err != nil {
		return "", errors.Wrapf(err, "load dataset %q", s.config.Variant)
	}

	snap, err := s.store.Publish(ds)
	if err != nil {
		return "", errors.Wrapf(err, "publish dataset %q", s.config.Variant)
	}

	return snap.Version, nil
}

// TriggerManualSync starts a refresh in the background.
func (s *SnapshotRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot refresh already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual snapshot refresh")
	go s.runScheduled()
}

func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"variant":                s.config.Variant,
		"source":                 s.config.Source,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_version":           s.lastVersion,
		"last_error":             s.lastError,
	}
}
