// Package dashboard composes the page: header, metric tiles and the four tabs,
// all computed from one snapshot.
package dashboard

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/filtering"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

// Tab keys, in display order.
const (
	TabCustomers    = "customers"
	TabOrders       = "orders"
	TabSales        = "sales"
	TabDistribution = "distribution"
)

type Tab struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Data        any    `json:"data"`
}

type SalesTab struct {
	Summary           *metrics.SalesSummary `json:"summary"`
	Series            *charting.SalesSeries `json:"series"`
	TotalSalesTitle   string                `json:"total_sales_title"`
	DailyAverageTitle string                `json:"daily_average_title"`
	Version           string                `json:"-"`
}

type DistributionTab struct {
	Chart         *charting.Distribution `json:"chart"`
	PeakHourTitle string                 `json:"peak_hour_title"`
}

type Page struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Locale   string         `json:"locale"`
	Currency string         `json:"currency"`
	Version  string         `json:"version"`
	LoadedAt time.Time      `json:"loaded_at"`
	Tiles    []metrics.Tile `json:"tiles"`
	Tabs     []Tab          `json:"tabs"`
}

type Composer interface {
	Page() (*Page, error)
	Sales(from, to *time.Time) (*SalesTab, error)
}

type Service struct {
	reader    dataset.Reader
	formatter *format.Formatter
	metrics   metrics.Aggregator
	charts    charting.Charter
	tables    browsing.Browser
}

func NewService(
	reader dataset.Reader,
	formatter *format.Formatter,
	metricsService metrics.Aggregator,
	chartingService charting.Charter,
	browsingService browsing.Browser,
) Composer {
	return &Service{
		reader:    reader,
		formatter: formatter,
		metrics:   metricsService,
		charts:    chartingService,
		tables:    browsingService,
	}
}

func (s *Service) Page() (*Page, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "dashboard page")
	}

	f := s.formatter
	neutral := filtering.Criteria{}

	customers, err := s.tables.ListCustomersFrom(snap, neutral)
	if err != nil {
		return nil, errors.Wrap(err, "customers tab")
	}

	orders, err := s.tables.ListOrdersFrom(snap, neutral)
	if err != nil {
		return nil, errors.Wrap(err, "orders tab")
	}

	sales, err := s.salesFrom(snap, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "sales tab")
	}

	distribution := &DistributionTab{
		Chart:         s.charts.DistributionOf(snap),
		PeakHourTitle: f.Text("Peak hour"),
	}

	return &Page{
		Title:    f.Text("Restaurant Dashboard"),
		Subtitle: f.Text("Sales, orders and customers at a glance"),
		Locale:   f.Locale(),
		Currency: f.CurrencyCode(),
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
		Tiles:    s.metrics.SummaryOf(snap).Tiles,
		Tabs: []Tab{
			{Key: TabCustomers, Title: f.Text("Customers"), Description: f.Text("Search and filter the customer list"), Data: customers},
			{Key: TabOrders, Title: f.Text("Orders"), Description: f.Text("Search and filter recent orders"), Data: orders},
			{Key: TabSales, Title: f.Text("Sales"), Description: f.Text("Daily sales for the last 30 days"), Data: sales},
			{Key: TabDistribution, Title: f.Text("Distribution"), Description: f.Text("Orders by category, hour and store"), Data: distribution},
		},
	}, nil
}

// Sales is the sales tab on its own, optionally windowed.
func (s *Service) Sales(from, to *time.Time) (*SalesTab, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "sales")
	}
	return s.salesFrom(snap, from, to)
}

func (s *Service) salesFrom(snap *dataset.Snapshot, from, to *time.Time) (*SalesTab, error) {
	summary, err := s.metrics.SalesSummaryOf(snap, from, to)
	if err != nil {
		return nil, err
	}

	series, err := s.charts.SalesSeriesOf(snap, from, to)
	if err != nil {
		return nil, err
	}

	return &SalesTab{
		Summary:           summary,
		Series:            series,
		TotalSalesTitle:   s.formatter.Text("Total Sales"),
		DailyAverageTitle: s.formatter.Text("Daily average"),
		Version:           snap.Version,
	}, nil
}
