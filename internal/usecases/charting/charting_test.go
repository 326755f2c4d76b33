package charting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/fixtures"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

func newService(t *testing.T, variant, locale, currency string) Charter {
	t.Helper()

	ds, err := fixtures.Load(variant)
	require.NoError(t, err)

	store := dataset.NewStore()
	_, err = store.Publish(ds)
	require.NoError(t, err)

	f, err := format.New(locale, currency)
	require.NoError(t, err)

	return NewService(store, f)
}

func percentages(shares []CategoryShare) map[string]float64 {
	out := make(map[string]float64, len(shares))
	for _, s := range shares {
		out[s.Name] = s.Percentage
	}
	return out
}

func TestShares(t *testing.T) {
	tests := []struct {
		name       string
		categories []domain.CategoryOrders
		want       map[string]float64
	}{
		{
			name: "recomputed from counts",
			categories: []domain.CategoryOrders{
				{Name: "Main Courses", Value: 485},
				{Name: "Appetizers", Value: 267},
				{Name: "Beverages", Value: 198},
				{Name: "Desserts", Value: 123},
				{Name: "Salads", Value: 74},
			},
			want: map[string]float64{
				"Main Courses": 42.3,
				"Appetizers":   23.3,
				"Beverages":    17.3,
				"Desserts":     10.7,
				"Salads":       6.5,
			},
		},
		{
			name:       "zero total",
			categories: []domain.CategoryOrders{{Name: "A"}, {Name: "B"}},
			want:       map[string]float64{"A": 0, "B": 0},
		},
		{
			name:       "no categories",
			categories: nil,
			want:       map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, percentages(Shares(tt.categories)))
		})
	}
}

func TestCheckShares(t *testing.T) {
	shares := []CategoryShare{
		{Name: "Main Courses", Value: 485, Percentage: 42.3},
		{Name: "Appetizers", Value: 267, Percentage: 23.3},
		{Name: "Beverages", Value: 198, Percentage: 17.2},
		{Name: "Desserts", Value: 123, Percentage: 10.7},
		{Name: "Salads", Value: 74, Percentage: 6.5},
	}

	drifts := CheckShares(shares, 0.05)
	require.Len(t, drifts, 1)
	assert.Equal(t, "Beverages", drifts[0].Name)
	assert.Equal(t, 17.2, drifts[0].Stored)
	assert.Equal(t, 17.3, drifts[0].Computed)

	assert.Empty(t, CheckShares(Shares(domain.Dataset{}.Categories), 0))
	assert.Empty(t, CheckShares(shares, 0.2))
}

func TestService_Distribution(t *testing.T) {
	t.Run("en-US", func(t *testing.T) {
		dist, err := newService(t, fixtures.VariantEnUS, "en-US", "USD").Distribution()
		require.NoError(t, err)

		assert.Equal(t, 1147, dist.TotalOrders)
		assert.Equal(t, "1,147", dist.TotalOrdersLabel)
		assert.Equal(t, 17.3, percentages(dist.Categories)["Beverages"])
		assert.Equal(t, "#F59E0B", dist.Categories[2].Color)
		assert.Empty(t, CheckShares(dist.Categories, 0))

		assert.Len(t, dist.Hourly, 11)
		assert.Equal(t, 448, int(metrics.Sum(dist.Hourly, func(h HourlyBar) float64 { return float64(h.Orders) })))
		assert.Equal(t, "19:00-20:00", dist.PeakSlot)
		assert.Empty(t, dist.Stores)
		assert.NotNil(t, dist.Stores)
	})

	t.Run("ko-KR", func(t *testing.T) {
		dist, err := newService(t, fixtures.VariantKoKR, "ko-KR", "KRW").Distribution()
		require.NoError(t, err)

		assert.Equal(t, 3220, dist.TotalOrders)
		assert.Equal(t, map[string]float64{
			"버거류": 38.7,
			"치킨류": 26.9,
			"사이드": 16.2,
			"음료":  12.4,
			"디저트": 5.8,
		}, percentages(dist.Categories))
		assert.Equal(t, "19:00-20:00", dist.PeakSlot)

		require.Len(t, dist.Stores, 5)
		assert.Equal(t, "강남점", dist.Stores[0].Store)
		assert.Equal(t, "₩8,900,000", dist.Stores[0].SalesLabel)
	})
}

func TestService_SalesSeries(t *testing.T) {
	svc := newService(t, fixtures.VariantEnUS, "en-US", "USD")

	series, err := svc.SalesSeries(nil, nil)
	require.NoError(t, err)
	require.Len(t, series.Points, 30)

	first := series.Points[0]
	assert.Equal(t, SalesPoint{
		Date:       "2024-05-02",
		Label:      "May 2",
		Sales:      1250.50,
		SalesLabel: "$1,250.50",
		Orders:     45,
	}, first)
	assert.Equal(t, "Jun 1", series.Points[29].Label)

	from := time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC)
	windowed, err := svc.SalesSeries(&from, nil)
	require.NoError(t, err)
	assert.Len(t, windowed.Points, 3)

	_, err = svc.SalesSeries(&from, &time.Time{})
	assert.True(t, errors.Is(err, metrics.ErrInvalidDateRange))
}

func TestService_SalesSeries_KoLabels(t *testing.T) {
	series, err := newService(t, fixtures.VariantKoKR, "ko-KR", "KRW").SalesSeries(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "5월 2일", series.Points[0].Label)
	assert.Equal(t, "₩1,250,000", series.Points[0].SalesLabel)
}

func TestService_NoSnapshot(t *testing.T) {
	f, err := format.New("en-US", "USD")
	require.NoError(t, err)

	svc := NewService(dataset.NewStore(), f)

	_, err = svc.Distribution()
	assert.True(t, errors.Is(err, dataset.ErrNoSnapshot))
}
