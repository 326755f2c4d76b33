// Package repository loads and stores dashboard datasets.
package repository

import (
	"context"

	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/fixtures"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

//go:generate mockgen -source=dataset.go -destination=mocks/dataset.go -package=mocks

type DatasetRepository interface {
	Load(ctx context.Context, variant string) (*domain.Dataset, error)
}

type DatasetWriter interface {
	Replace(ctx context.Context, ds *domain.Dataset) error
}

type fixtureRepository struct{}

// NewFixtureRepository serves the compiled-in sample datasets.
func NewFixtureRepository() DatasetRepository {
	return &fixtureRepository{}
}

func (r *fixtureRepository) Load(ctx context.Context, variant string) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return fixtures.Load(variant)
}
