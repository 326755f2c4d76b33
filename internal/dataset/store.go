// Package dataset keeps the snapshot the API serves and swaps it when a new
// dataset has been loaded and validated.
package dataset

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

var ErrNoSnapshot = errors.New("no dataset snapshot loaded")

// Snapshot is read-only once published.
type Snapshot struct {
	Dataset  *domain.Dataset
	Version  string
	LoadedAt time.Time
}

// Reader is what request handlers need from the store.
type Reader interface {
	Current() (*Snapshot, error)
}

type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

var _ Reader = (*Store)(nil)

func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoSnapshot
	}

	return s.current, nil
}

// Publish validates ds and makes it the current snapshot. On error the
// previous snapshot stays in place.
func (s *Store) Publish(ds *domain.Dataset) (*Snapshot, error) {
	if err := Validate(ds); err != nil {
		return nil, err
	}

	version, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generate snapshot version")
	}

	snap := &Snapshot{
		Dataset:  ds,
		Version:  version,
		LoadedAt: s.now(),
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	return snap, nil
}
