package metrics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/fixtures"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

func newStore(t *testing.T, variant string) *dataset.Store {
	t.Helper()

	ds, err := fixtures.Load(variant)
	require.NoError(t, err)

	store := dataset.NewStore()
	_, err = store.Publish(ds)
	require.NoError(t, err)

	return store
}

func newFormatter(t *testing.T, locale, currency string) *format.Formatter {
	t.Helper()

	f, err := format.New(locale, currency)
	require.NoError(t, err)
	return f
}

func day(t *testing.T, s string) *time.Time {
	t.Helper()

	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return &d
}

func tileByKey(tiles []Tile, key string) (Tile, bool) {
	for _, tile := range tiles {
		if tile.Key == key {
			return tile, true
		}
	}
	return Tile{}, false
}

func TestReductions(t *testing.T) {
	values := []float64{1.5, 2.5, 3}

	assert.Equal(t, 7.0, Sum(values, func(v float64) float64 { return v }))
	assert.Equal(t, 2, Count(values, func(v float64) bool { return v > 2 }))
	assert.Equal(t, 3, Count(values, nil))
	assert.Equal(t, 0.0, Sum([]float64{}, func(v float64) float64 { return v }))
	assert.Equal(t, 0.0, Average(0, 0))
	assert.InDelta(t, 2.3333, Average(7, 3), 0.0001)
}

func TestService_Summary_EnUS(t *testing.T) {
	svc := NewService(newStore(t, fixtures.VariantEnUS), newFormatter(t, "en-US", "USD"), MetricsConfig{})

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.InDelta(t, 146.25, summary.TotalSales, 0.001)
	assert.Equal(t, 5, summary.TotalOrders)
	assert.Equal(t, 4, summary.CountedOrders)
	assert.Equal(t, 3, summary.CompletedOrders)
	assert.InDelta(t, 36.5625, summary.AverageOrderValue, 0.0001)
	assert.Equal(t, 5, summary.TotalCustomers)
	assert.Equal(t, 4, summary.ActiveCustomers)
	assert.Equal(t, 100.0, summary.RepeatVisitRate)
	assert.Equal(t, "2024-06-01", summary.ReferenceDay)
	assert.Equal(t, 3, summary.OrdersToday)
	assert.Equal(t, 0, summary.ActiveStores)
	assert.Empty(t, summary.TopStore)
	assert.NotEmpty(t, summary.Version)

	sales, ok := tileByKey(summary.Tiles, TileTotalSales)
	require.True(t, ok)
	assert.Equal(t, "Total Sales", sales.Title)
	assert.Equal(t, "$146.25", sales.Value)

	avg, _ := tileByKey(summary.Tiles, TileAverageOrderValue)
	assert.Equal(t, "$36.56", avg.Value)

	orders, _ := tileByKey(summary.Tiles, TileTotalOrders)
	assert.Equal(t, "3 completed orders", orders.Caption)

	rate, _ := tileByKey(summary.Tiles, TileRepeatVisitRate)
	assert.Equal(t, "100.0%", rate.Value)

	today, _ := tileByKey(summary.Tiles, TileOrdersToday)
	assert.Equal(t, "Latest business day", today.Caption)

	_, ok = tileByKey(summary.Tiles, TileActiveStores)
	assert.False(t, ok, "single-store dataset has no store tile")
}

func TestService_Summary_KoKR(t *testing.T) {
	svc := NewService(newStore(t, fixtures.VariantKoKR), newFormatter(t, "ko-KR", "KRW"), MetricsConfig{})

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.InDelta(t, 76500, summary.TotalSales, 0.001)
	assert.InDelta(t, 19125, summary.AverageOrderValue, 0.001)
	assert.Equal(t, 80.0, summary.RepeatVisitRate)
	assert.Equal(t, "2024-06-02", summary.ReferenceDay)
	assert.Equal(t, 3, summary.OrdersToday)
	assert.Equal(t, 5, summary.ActiveStores)
	assert.Equal(t, "강남점", summary.TopStore)

	sales, _ := tileByKey(summary.Tiles, TileTotalSales)
	assert.Equal(t, "총 매출", sales.Title)
	assert.Equal(t, "₩76,500", sales.Value)

	stores, ok := tileByKey(summary.Tiles, TileActiveStores)
	require.True(t, ok)
	assert.Equal(t, "5", stores.Value)
	assert.Equal(t, "최고 매출 매장: 강남점", stores.Caption)
}

func TestService_Summary_PinnedToday(t *testing.T) {
	svc := NewService(newStore(t, fixtures.VariantEnUS), newFormatter(t, "en-US", "USD"),
		MetricsConfig{Today: "2024-05-31"})

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, "2024-05-31", summary.ReferenceDay)
	assert.Equal(t, 1, summary.OrdersToday)

	today, _ := tileByKey(summary.Tiles, TileOrdersToday)
	assert.Equal(t, "May 31, 2024", today.Caption)
}

func TestService_Summary_EmptyDataset(t *testing.T) {
	store := dataset.NewStore()
	_, err := store.Publish(&domain.Dataset{Variant: "empty"})
	require.NoError(t, err)

	svc := NewService(store, newFormatter(t, "en-US", "USD"), MetricsConfig{})

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0.0, summary.AverageOrderValue)
	assert.Equal(t, 0.0, summary.RepeatVisitRate)
	assert.Equal(t, 0, summary.OrdersToday)
	assert.Empty(t, summary.ReferenceDay)
}

func TestService_NoSnapshot(t *testing.T) {
	svc := NewService(dataset.NewStore(), newFormatter(t, "en-US", "USD"), MetricsConfig{})

	_, err := svc.Summary()
	assert.True(t, errors.Is(err, dataset.ErrNoSnapshot))

	_, err = svc.SalesSummary(nil, nil)
	assert.True(t, errors.Is(err, dataset.ErrNoSnapshot))
}

func TestService_SalesSummary(t *testing.T) {
	store := newStore(t, fixtures.VariantEnUS)
	svc := NewService(store, newFormatter(t, "en-US", "USD"), MetricsConfig{})

	tests := []struct {
		name        string
		from, to    *time.Time
		days        int
		totalSales  float64
		totalOrders int
		average     float64
		peakDay     string
	}{
		{
			name:        "whole series",
			days:        30,
			totalSales:  103577.25,
			totalOrders: 2694,
			average:     103577.25 / 30,
			peakDay:     "2024-05-28",
		},
		{
			name:        "first three days",
			from:        day(t, "2024-05-02"),
			to:          day(t, "2024-05-04"),
			days:        3,
			totalSales:  5291.50,
			totalOrders: 158,
			average:     5291.50 / 3,
			peakDay:     "2024-05-04",
		},
		{
			name:    "window without data",
			from:    day(t, "2023-01-01"),
			to:      day(t, "2023-01-31"),
			days:    0,
			average: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := svc.SalesSummary(tt.from, tt.to)
			require.NoError(t, err)

			assert.Equal(t, tt.days, summary.Days)
			assert.InDelta(t, tt.totalSales, summary.TotalSales, 0.001)
			assert.Equal(t, tt.totalOrders, summary.TotalOrders)
			assert.InDelta(t, tt.average, summary.DailyAverage, 0.001)
			assert.Equal(t, tt.peakDay, summary.PeakDay)
		})
	}
}

func TestService_SalesSummary_KoKRLabels(t *testing.T) {
	svc := NewService(newStore(t, fixtures.VariantKoKR), newFormatter(t, "ko-KR", "KRW"), MetricsConfig{})

	summary, err := svc.SalesSummary(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "₩103,563,000", summary.TotalSalesLabel)
	assert.Equal(t, "6,361", summary.TotalOrdersLabel)
}

func TestService_SalesSummary_InvalidRange(t *testing.T) {
	svc := NewService(newStore(t, fixtures.VariantEnUS), newFormatter(t, "en-US", "USD"), MetricsConfig{})

	_, err := svc.SalesSummary(day(t, "2024-05-10"), day(t, "2024-05-01"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))

	var metricsErr *MetricsError
	require.True(t, errors.As(err, &metricsErr))
	assert.Equal(t, apiErrors.ErrInvalidDateRange, metricsErr.Code)
}
