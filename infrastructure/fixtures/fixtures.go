// Package fixtures holds the compiled-in sample datasets.
package fixtures

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

const (
	VariantEnUS = "en-US"
	VariantKoKR = "ko-KR"
)

var ErrUnknownVariant = errors.New("unknown dataset variant")

var builders = map[string]func() *domain.Dataset{
	VariantEnUS: enUS,
	VariantKoKR: koKR,
}

// Load builds a fresh copy of a sample dataset. Callers may keep the result;
// nothing else references it.
func Load(variant string) (*domain.Dataset, error) {
	build, ok := builders[variant]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "%q", variant)
	}

	return build(), nil
}

func Variants() []string {
	variants := make([]string, 0, len(builders))
	for v := range builders {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	return variants
}

func ptr[T any](v T) *T {
	return &v
}
