package fixtures

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/filtering"
)

func mustLoad(t *testing.T, variant string) *domain.Dataset {
	t.Helper()

	ds, err := Load(variant)
	require.NoError(t, err)
	return ds
}

func TestLoad_UnknownVariant(t *testing.T) {
	ds, err := Load("pt-BR")
	assert.Nil(t, ds)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestVariants(t *testing.T) {
	assert.Equal(t, []string{VariantEnUS, VariantKoKR}, Variants())
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	first := mustLoad(t, VariantEnUS)
	first.Orders[0].Items[0].Name = "changed"
	first.Customers = nil

	second := mustLoad(t, VariantEnUS)
	assert.Equal(t, "Caesar Salad", second.Orders[0].Items[0].Name)
	assert.Len(t, second.Customers, 5)
}

func TestFixtures_AreValid(t *testing.T) {
	for _, variant := range Variants() {
		t.Run(variant, func(t *testing.T) {
			ds := mustLoad(t, variant)
			assert.NoError(t, dataset.Validate(ds))
			assert.Equal(t, variant, ds.Variant)
			assert.Len(t, ds.Customers, 5)
			assert.Len(t, ds.Orders, 5)
			assert.Len(t, ds.Sales, 30)
		})
	}
}

func TestFixtures_FinalAmount(t *testing.T) {
	want := map[string][]float64{
		VariantEnUS: {28.50, 19.75, 45.20, 52.80, 16.90},
		VariantKoKR: {13000, 12500, 31500, 11500, 19500},
	}

	for variant, finals := range want {
		ds := mustLoad(t, variant)
		for i, o := range ds.Orders {
			assert.Equal(t, o.TotalAmount-o.DiscountAmount, o.FinalAmount(), "order %d", o.ID)
			assert.InDelta(t, finals[i], o.FinalAmount(), 0.001, "order %d", o.ID)
			assert.InDelta(t, o.TotalAmount, o.ItemsTotal(), 0.005, "order %d", o.ID)
		}
	}
}

func TestFixtures_SalesSeriesTotals(t *testing.T) {
	tests := []struct {
		variant    string
		wantSales  float64
		wantOrders int
	}{
		{variant: VariantEnUS, wantSales: 103577.25, wantOrders: 2694},
		{variant: VariantKoKR, wantSales: 103563000, wantOrders: 6361},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			ds := mustLoad(t, tt.variant)

			sales, orders := 0.0, 0
			for _, day := range ds.Sales {
				sales += day.Sales
				orders += day.Orders
			}

			assert.InDelta(t, tt.wantSales, sales, 0.001)
			assert.Equal(t, tt.wantOrders, orders)
		})
	}
}

func TestFixtures_CompletedOrders(t *testing.T) {
	criteria := filtering.Criteria{Exact: map[string]string{domain.OrderFieldStatus: string(domain.OrderCompleted)}}

	for _, variant := range Variants() {
		ds := mustLoad(t, variant)

		literal := 0
		for _, o := range ds.Orders {
			if o.Status == "completed" {
				literal++
			}
		}

		got := filtering.Filter(ds.Orders, criteria)
		assert.Len(t, got, literal, variant)
		assert.Len(t, got, 3, variant)
	}
}

func TestFixtures_CustomerQuery(t *testing.T) {
	en := filtering.Filter(mustLoad(t, VariantEnUS).Customers, filtering.Criteria{Query: "John"})
	require.Len(t, en, 2)
	assert.Equal(t, "John Smith", en[0].Name)
	assert.Equal(t, "Sarah Johnson", en[1].Name)

	ko := filtering.Filter(mustLoad(t, VariantKoKR).Customers, filtering.Criteria{Query: "김"})
	require.Len(t, ko, 1)
	assert.Equal(t, "김민수", ko[0].Name)
}

func TestFixtures_OrderSearchByStoreAndID(t *testing.T) {
	orders := mustLoad(t, VariantKoKR).Orders

	gangnam := filtering.Filter(orders, filtering.Criteria{Query: "강남"})
	require.Len(t, gangnam, 2)
	assert.Equal(t, 20001, gangnam[0].ID)
	assert.Equal(t, 20004, gangnam[1].ID)

	byID := filtering.Filter(orders, filtering.Criteria{Query: "20003"})
	require.Len(t, byID, 1)
	assert.Equal(t, "이준호", byID[0].CustomerName)

	byStore := filtering.Filter(orders, filtering.Criteria{Exact: map[string]string{domain.OrderFieldStoreID: "1"}})
	assert.Len(t, byStore, 2)
}
