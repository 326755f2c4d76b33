// Package metrics reduces the current snapshot to the dashboard tiles and the
// sales summary.
package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

// Tile keys.
const (
	TileTotalSales        = "total_sales"
	TileTotalOrders       = "total_orders"
	TileAverageOrderValue = "average_order_value"
	TileTotalCustomers    = "total_customers"
	TileRepeatVisitRate   = "repeat_visit_rate"
	TileOrdersToday       = "orders_today"
	TileActiveStores      = "active_stores"
)

type Tile struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

type MetricsSummary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalOrders       int     `json:"total_orders"`
	CountedOrders     int     `json:"counted_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalCustomers    int     `json:"total_customers"`
	ActiveCustomers   int     `json:"active_customers"`
	RepeatVisitRate   float64 `json:"repeat_visit_rate"`
	ReferenceDay      string  `json:"reference_day"`
	OrdersToday       int     `json:"orders_today"`
	ActiveStores      int     `json:"active_stores"`
	TopStore          string  `json:"top_store,omitempty"`
	Tiles             []Tile  `json:"tiles"`
	Version           string  `json:"-"`
}

type SalesSummary struct {
	From         string  `json:"from,omitempty"`
	To           string  `json:"to,omitempty"`
	Days         int     `json:"days"`
	TotalSales   float64 `json:"total_sales"`
	TotalOrders  int     `json:"total_orders"`
	DailyAverage float64 `json:"daily_average"`
	PeakDay      string  `json:"peak_day,omitempty"`

	TotalSalesLabel   string `json:"total_sales_label"`
	TotalOrdersLabel  string `json:"total_orders_label"`
	DailyAverageLabel string `json:"daily_average_label"`

	Version string `json:"-"`
}

type Aggregator interface {
	Summary() (*MetricsSummary, error)
	SummaryOf(snap *dataset.Snapshot) *MetricsSummary
	SalesSummary(from, to *time.Time) (*SalesSummary, error)
	SalesSummaryOf(snap *dataset.Snapshot, from, to *time.Time) (*SalesSummary, error)
}

type MetricsConfig struct {
	// Today pins the reference day (YYYY-MM-DD). Empty means the latest
	// order day of the snapshot.
	Today string
}

type Service struct {
	reader    dataset.Reader
	formatter *format.Formatter
	cfg       MetricsConfig
}

func NewService(reader dataset.Reader, formatter *format.Formatter, cfg MetricsConfig) Aggregator {
	return &Service{
		reader:    reader,
		formatter: formatter,
		cfg:       cfg,
	}
}

func (s *Service) Summary() (*MetricsSummary, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "metrics summary")
	}
	return s.SummaryOf(snap), nil
}

func (s *Service) SummaryOf(snap *dataset.Snapshot) *MetricsSummary {
	ds := snap.Dataset

	counted := func(o domain.Order) bool { return o.CountsAsSale() }
	countedOrders := Count(ds.Orders, counted)
	totalSales := Sum(ds.Orders, func(o domain.Order) float64 {
		if !o.CountsAsSale() {
			return 0
		}
		return o.FinalAmount()
	})

	repeat := Count(ds.Customers, domain.Customer.IsRepeat)
	rate := 0.0
	if len(ds.Customers) > 0 {
		rate = utils.RoundWithOneDecimalPlace(float64(repeat) / float64(len(ds.Customers)) * 100)
	}

	refDay, pinned := s.referenceDay(ds)

	summary := &MetricsSummary{
		TotalSales:      totalSales,
		TotalOrders:     len(ds.Orders),
		CountedOrders:   countedOrders,
		CompletedOrders: Count(ds.Orders, func(o domain.Order) bool { return o.Status == domain.OrderCompleted }),
		TotalCustomers:  len(ds.Customers),
		ActiveCustomers: Count(ds.Customers, func(c domain.Customer) bool { return c.Status == domain.CustomerActive }),
		RepeatVisitRate: rate,
		ReferenceDay:    refDay,
		OrdersToday: Count(ds.Orders, func(o domain.Order) bool {
			return refDay != "" && strings.HasPrefix(o.OrderDate, refDay)
		}),
		ActiveStores: len(ds.Stores),
		TopStore:     topStore(ds.StorePerformance),
		Version:      snap.Version,
	}
	summary.AverageOrderValue = Average(summary.TotalSales, countedOrders)
	summary.Tiles = s.tiles(summary, pinned)

	return summary
}

func (s *Service) referenceDay(ds *domain.Dataset) (string, bool) {
	if s.cfg.Today != "" {
		return s.cfg.Today, true
	}
	return ds.LatestOrderDay(), false
}

func (s *Service) tiles(m *MetricsSummary, pinnedDay bool) []Tile {
	f := s.formatter

	todayCaption := f.Text("Latest business day")
	if pinnedDay {
		if day, err := f.Date(m.ReferenceDay); err == nil {
			todayCaption = day
		}
	}

	tiles := []Tile{
		{
			Key:     TileTotalSales,
			Title:   f.Text("Total Sales"),
			Value:   f.Currency(m.TotalSales),
			Caption: f.Text("Excluding cancellations"),
		},
		{
			Key:     TileTotalOrders,
			Title:   f.Text("Total Orders"),
			Value:   f.Number(m.TotalOrders),
			Caption: f.Text("%d completed orders", m.CompletedOrders),
		},
		{
			Key:     TileAverageOrderValue,
			Title:   f.Text("Average Order Value"),
			Value:   f.Currency(m.AverageOrderValue),
			Caption: f.Text("Excluding cancellations"),
		},
		{
			Key:     TileTotalCustomers,
			Title:   f.Text("Total Customers"),
			Value:   f.Number(m.TotalCustomers),
			Caption: f.Text("%d active", m.ActiveCustomers),
		},
		{
			Key:     TileRepeatVisitRate,
			Title:   f.Text("Repeat Visit Rate"),
			Value:   f.Percent(m.RepeatVisitRate),
			Caption: f.Text("Customers with 2+ orders"),
		},
		{
			Key:     TileOrdersToday,
			Title:   f.Text("Orders Today"),
			Value:   f.Number(m.OrdersToday),
			Caption: todayCaption,
		},
	}

	// Single-store datasets have no store list.
	if m.ActiveStores > 0 {
		tiles = append(tiles, Tile{
			Key:     TileActiveStores,
			Title:   f.Text("Active Stores"),
			Value:   f.Number(m.ActiveStores),
			Caption: f.Text("Top Store") + ": " + m.TopStore,
		})
	}

	return tiles
}

func topStore(perf []domain.StorePerformance) string {
	top := ""
	best := 0.0
	for _, p := range perf {
		if top == "" || p.Sales > best {
			top, best = p.Store, p.Sales
		}
	}
	return top
}

func (s *Service) SalesSummary(from, to *time.Time) (*SalesSummary, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "sales summary")
	}
	return s.SalesSummaryOf(snap, from, to)
}

func (s *Service) SalesSummaryOf(snap *dataset.Snapshot, from, to *time.Time) (*SalesSummary, error) {
	days, err := WindowDays(snap.Dataset.Sales, from, to)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		Days:        len(days),
		TotalSales:  Sum(days, func(d domain.SalesDay) float64 { return d.Sales }),
		TotalOrders: int(Sum(days, func(d domain.SalesDay) float64 { return float64(d.Orders) })),
		Version:     snap.Version,
	}
	if from != nil {
		summary.From = from.Format(time.DateOnly)
	}
	if to != nil {
		summary.To = to.Format(time.DateOnly)
	}
	summary.DailyAverage = Average(summary.TotalSales, summary.Days)

	best := 0.0
	for _, d := range days {
		if summary.PeakDay == "" || d.Sales > best {
			summary.PeakDay, best = d.Date, d.Sales
		}
	}

	summary.TotalSalesLabel = s.formatter.Currency(summary.TotalSales)
	summary.TotalOrdersLabel = s.formatter.Number(summary.TotalOrders)
	summary.DailyAverageLabel = s.formatter.Currency(summary.DailyAverage)

	return summary, nil
}

// WindowDays returns the days inside [from, to] sorted by date. Nil bounds are
// open; from after to is an error.
func WindowDays(sales []domain.SalesDay, from, to *time.Time) ([]domain.SalesDay, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, NewMetricsError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange,
			"start_date must not be after end_date")
	}

	days := make([]domain.SalesDay, 0, len(sales))
	for _, d := range sales {
		if utils.InDateRange(d.Date, from, to) {
			days = append(days, d)
		}
	}

	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days, nil
}
