package charting

import (
	"math"

	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

type CategoryShare struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// ShareDrift is a category whose percentage disagrees with its count.
type ShareDrift struct {
	Name     string  `json:"name"`
	Stored   float64 `json:"stored"`
	Computed float64 `json:"computed"`
}

// Shares recomputes every percentage from the raw counts, rounded to one
// decimal. A zero total gives 0 for every entry.
func Shares(categories []domain.CategoryOrders) []CategoryShare {
	total := totalOrders(categories)

	shares := make([]CategoryShare, 0, len(categories))
	for _, c := range categories {
		shares = append(shares, CategoryShare{
			Name:       c.Name,
			Value:      c.Value,
			Percentage: percentage(c.Value, total),
			Color:      c.Color,
		})
	}
	return shares
}

// CheckShares lists the entries whose Percentage is further than tolerance
// from value/total.
func CheckShares(shares []CategoryShare, tolerance float64) []ShareDrift {
	total := 0
	for _, s := range shares {
		total += s.Value
	}

	drifts := []ShareDrift{}
	for _, s := range shares {
		computed := percentage(s.Value, total)
		if math.Abs(s.Percentage-computed) > tolerance {
			drifts = append(drifts, ShareDrift{Name: s.Name, Stored: s.Percentage, Computed: computed})
		}
	}
	return drifts
}

func totalOrders(categories []domain.CategoryOrders) int {
	return int(metrics.Sum(categories, func(c domain.CategoryOrders) float64 { return float64(c.Value) }))
}

func percentage(value, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithOneDecimalPlace(float64(value) / float64(total) * 100)
}
