// Package charting prepares the chart datasets: sales area series, category
// pie, hourly bars and store bars.
package charting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

type SalesPoint struct {
	Date       string  `json:"date"`
	Label      string  `json:"label"`
	Sales      float64 `json:"sales"`
	SalesLabel string  `json:"sales_label"`
	Orders     int     `json:"orders"`
}

type SalesSeries struct {
	Points  []SalesPoint `json:"points"`
	Version string       `json:"-"`
}

type HourlyBar struct {
	Slot   string `json:"slot"`
	Orders int    `json:"orders"`
}

type StoreBar struct {
	Store      string  `json:"store"`
	Orders     int     `json:"orders"`
	Sales      float64 `json:"sales"`
	SalesLabel string  `json:"sales_label"`
}

type Distribution struct {
	Categories       []CategoryShare `json:"categories"`
	TotalOrders      int             `json:"total_orders"`
	TotalOrdersLabel string          `json:"total_orders_label"`
	Hourly           []HourlyBar     `json:"hourly"`
	PeakSlot         string          `json:"peak_slot,omitempty"`
	Stores           []StoreBar      `json:"stores"`
	Version          string          `json:"-"`
}

type Charter interface {
	Distribution() (*Distribution, error)
	DistributionOf(snap *dataset.Snapshot) *Distribution
	SalesSeries(from, to *time.Time) (*SalesSeries, error)
	SalesSeriesOf(snap *dataset.Snapshot, from, to *time.Time) (*SalesSeries, error)
}

type Service struct {
	reader    dataset.Reader
	formatter *format.Formatter
}

func NewService(reader dataset.Reader, formatter *format.Formatter) Charter {
	return &Service{
		reader:    reader,
		formatter: formatter,
	}
}

func (s *Service) Distribution() (*Distribution, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "distribution")
	}
	return s.DistributionOf(snap), nil
}

func (s *Service) DistributionOf(snap *dataset.Snapshot) *Distribution {
	ds := snap.Dataset

	dist := &Distribution{
		Categories:  Shares(ds.Categories),
		TotalOrders: totalOrders(ds.Categories),
		Hourly:      make([]HourlyBar, 0, len(ds.Hourly)),
		Stores:      make([]StoreBar, 0, len(ds.StorePerformance)),
		Version:     snap.Version,
	}
	dist.TotalOrdersLabel = s.formatter.Number(dist.TotalOrders)

	peak := 0
	for _, h := range ds.Hourly {
		dist.Hourly = append(dist.Hourly, HourlyBar{Slot: h.Slot, Orders: h.Orders})
		if dist.PeakSlot == "" || h.Orders > peak {
			dist.PeakSlot, peak = h.Slot, h.Orders
		}
	}

	for _, p := range ds.StorePerformance {
		dist.Stores = append(dist.Stores, StoreBar{
			Store:      p.Store,
			Orders:     p.Orders,
			Sales:      p.Sales,
			SalesLabel: s.formatter.Currency(p.Sales),
		})
	}

	return dist
}

func (s *Service) SalesSeries(from, to *time.Time) (*SalesSeries, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "sales series")
	}
	return s.SalesSeriesOf(snap, from, to)
}

func (s *Service) SalesSeriesOf(snap *dataset.Snapshot, from, to *time.Time) (*SalesSeries, error) {
	days, err := metrics.WindowDays(snap.Dataset.Sales, from, to)
	if err != nil {
		return nil, err
	}

	series := &SalesSeries{
		Points:  make([]SalesPoint, 0, len(days)),
		Version: snap.Version,
	}
	for _, d := range days {
		series.Points = append(series.Points, s.point(d))
	}

	return series, nil
}

func (s *Service) point(d domain.SalesDay) SalesPoint {
	label, err := s.formatter.DayLabel(d.Date)
	if err != nil {
		// validated snapshots never get here
		logrus.WithFields(logrus.Fields{"date": d.Date}).WithError(err).Warn("sales day label")
		label = d.Date
	}

	return SalesPoint{
		Date:       d.Date,
		Label:      label,
		Sales:      d.Sales,
		SalesLabel: s.formatter.Currency(d.Sales),
		Orders:     d.Orders,
	}
}
