package dashboard

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/fixtures"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	browsingmocks "github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing/mocks"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
	"go.uber.org/mock/gomock"
)

type deps struct {
	store     *dataset.Store
	formatter *format.Formatter
	metrics   metrics.Aggregator
	charts    charting.Charter
	tables    browsing.Browser
}

func newDeps(t *testing.T, variant, locale, currency string) deps {
	t.Helper()

	ds, err := fixtures.Load(variant)
	require.NoError(t, err)

	store := dataset.NewStore()
	_, err = store.Publish(ds)
	require.NoError(t, err)

	f, err := format.New(locale, currency)
	require.NoError(t, err)

	return deps{
		store:     store,
		formatter: f,
		metrics:   metrics.NewService(store, f, metrics.MetricsConfig{}),
		charts:    charting.NewService(store, f),
		tables:    browsing.NewService(store, f, browsing.BrowsingConfig{}),
	}
}

func (d deps) service() Composer {
	return NewService(d.store, d.formatter, d.metrics, d.charts, d.tables)
}

func TestService_Page(t *testing.T) {
	d := newDeps(t, fixtures.VariantEnUS, "en-US", "USD")
	snap, err := d.store.Current()
	require.NoError(t, err)

	page, err := d.service().Page()
	require.NoError(t, err)

	assert.Equal(t, "Restaurant Dashboard", page.Title)
	assert.Equal(t, "Sales, orders and customers at a glance", page.Subtitle)
	assert.Equal(t, "en-US", page.Locale)
	assert.Equal(t, "USD", page.Currency)
	assert.Equal(t, snap.Version, page.Version)
	assert.Len(t, page.Tiles, 6)

	require.Len(t, page.Tabs, 4)
	keys := []string{page.Tabs[0].Key, page.Tabs[1].Key, page.Tabs[2].Key, page.Tabs[3].Key}
	assert.Equal(t, []string{TabCustomers, TabOrders, TabSales, TabDistribution}, keys)

	customers, ok := page.Tabs[0].Data.(*browsing.CustomerTable)
	require.True(t, ok)
	assert.Equal(t, 5, customers.Matched)
	assert.Equal(t, snap.Version, customers.Version)

	orders, ok := page.Tabs[1].Data.(*browsing.OrderTable)
	require.True(t, ok)
	assert.Equal(t, 5, orders.Matched)

	sales, ok := page.Tabs[2].Data.(*SalesTab)
	require.True(t, ok)
	assert.InDelta(t, 103577.25, sales.Summary.TotalSales, 0.001)
	assert.Len(t, sales.Series.Points, 30)
	assert.Equal(t, "Daily average", sales.DailyAverageTitle)

	distribution, ok := page.Tabs[3].Data.(*DistributionTab)
	require.True(t, ok)
	assert.Equal(t, 1147, distribution.Chart.TotalOrders)
	assert.Equal(t, "Peak hour", distribution.PeakHourTitle)
}

func TestService_Page_KoKR(t *testing.T) {
	page, err := newDeps(t, fixtures.VariantKoKR, "ko-KR", "KRW").service().Page()
	require.NoError(t, err)

	assert.Equal(t, "레스토랑 대시보드", page.Title)
	assert.Equal(t, "매출, 주문, 고객 현황을 한눈에", page.Subtitle)
	assert.Len(t, page.Tiles, 7)
	assert.Equal(t, "고객 관리", page.Tabs[0].Title)
	assert.Equal(t, "최근 30일 일별 매출", page.Tabs[2].Description)
}

func TestService_Sales(t *testing.T) {
	svc := newDeps(t, fixtures.VariantEnUS, "en-US", "USD").service()

	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	sales, err := svc.Sales(&from, &to)
	require.NoError(t, err)

	assert.Equal(t, 3, sales.Summary.Days)
	assert.Len(t, sales.Series.Points, 3)
	assert.Equal(t, "$5,291.50", sales.Summary.TotalSalesLabel)
	assert.NotEmpty(t, sales.Version)

	_, err = svc.Sales(&to, &from)
	assert.True(t, errors.Is(err, metrics.ErrInvalidDateRange))
}

func TestService_Page_TableError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(t, fixtures.VariantEnUS, "en-US", "USD")

	tables := browsingmocks.NewMockBrowser(ctrl)
	tables.EXPECT().
		ListCustomersFrom(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	svc := NewService(d.store, d.formatter, d.metrics, d.charts, tables)

	_, err := svc.Page()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customers tab")
}

func TestService_NoSnapshot(t *testing.T) {
	d := newDeps(t, fixtures.VariantEnUS, "en-US", "USD")
	svc := NewService(dataset.NewStore(), d.formatter, d.metrics, d.charts, d.tables)

	_, err := svc.Page()
	assert.True(t, errors.Is(err, dataset.ErrNoSnapshot))

	_, err = svc.Sales(nil, nil)
	assert.True(t, errors.Is(err, dataset.ErrNoSnapshot))
}
