// Package browsing turns the customer and order records into filtered,
// display-ready tables.
package browsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/internal/dataset"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/internal/filtering"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

const defaultItemPreview = 2

// YYYY, YYYY-MM, YYYY-MM-DD or any shorter prefix of them.
var datePrefixPattern = regexp.MustCompile(`^\d{1,4}(-(\d{1,2}(-\d{0,2})?)?)?$`)

type CustomerRow struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Gender     string  `json:"gender,omitempty"`
	Orders     int     `json:"orders"`
	Spent      float64 `json:"spent"`
	SpentLabel string  `json:"spent_label"`
	LastVisit  string  `json:"last_visit"`
	Status     Badge   `json:"status"`
	Tier       *Badge  `json:"tier,omitempty"`
}

type CustomerTable struct {
	Rows         []CustomerRow `json:"rows"`
	Matched      int           `json:"matched"`
	Total        int           `json:"total"`
	Summary      string        `json:"summary"`
	EmptyMessage string        `json:"empty_message,omitempty"`
	Version      string        `json:"-"`
}

type OrderRow struct {
	ID           int      `json:"id"`
	Number       string   `json:"number"`
	CustomerID   int      `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	StoreName    string   `json:"store_name,omitempty"`
	OrderedAt    string   `json:"ordered_at"`
	ItemCount    int      `json:"item_count"`
	ItemsLabel   string   `json:"items_label"`
	ItemPreview  []string `json:"item_preview"`
	MoreItems    string   `json:"more_items,omitempty"`
	Amount       float64  `json:"amount"`
	AmountLabel  string   `json:"amount_label"`
	Discount     string   `json:"discount,omitempty"`
	Payment      string   `json:"payment"`
	Status       Badge    `json:"status"`
	OrderType    Badge    `json:"order_type"`
}

type OrderTable struct {
	Rows         []OrderRow `json:"rows"`
	Matched      int        `json:"matched"`
	Total        int        `json:"total"`
	Summary      string     `json:"summary"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	Version      string     `json:"-"`
}

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Browser interface {
	ListCustomers(criteria filtering.Criteria) (*CustomerTable, error)
	ListCustomersFrom(snap *dataset.Snapshot, criteria filtering.Criteria) (*CustomerTable, error)
	ListOrders(criteria filtering.Criteria) (*OrderTable, error)
	ListOrdersFrom(snap *dataset.Snapshot, criteria filtering.Criteria) (*OrderTable, error)
}

type BrowsingConfig struct {
	// ItemPreview is how many order items are listed before "+N more".
	ItemPreview int
}

type Service struct {
	reader    dataset.Reader
	formatter *format.Formatter
	cfg       BrowsingConfig
}

func NewService(reader dataset.Reader, formatter *format.Formatter, cfg BrowsingConfig) Browser {
	if cfg.ItemPreview <= 0 {
		cfg.ItemPreview = defaultItemPreview
	}

	return &Service{
		reader:    reader,
		formatter: formatter,
		cfg:       cfg,
	}
}

func (s *Service) ListCustomers(criteria filtering.Criteria) (*CustomerTable, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	return s.ListCustomersFrom(snap, criteria)
}

func (s *Service) ListCustomersFrom(snap *dataset.Snapshot, criteria filtering.Criteria) (*CustomerTable, error) {
	if err := validateCustomerCriteria(criteria); err != nil {
		return nil, err
	}

	customers := snap.Dataset.Customers
	matched := filtering.Filter(customers, criteria)

	table := &CustomerTable{
		Rows:    make([]CustomerRow, 0, len(matched)),
		Matched: len(matched),
		Total:   len(customers),
		Summary: s.formatter.Text(format.LabelShowing, len(matched), len(customers)),
		Version: snap.Version,
	}
	if len(matched) == 0 {
		table.EmptyMessage = s.formatter.Text(format.LabelNoRecords)
	}

	for _, c := range matched {
		table.Rows = append(table.Rows, s.customerRow(c))
	}

	return table, nil
}

func (s *Service) customerRow(c domain.Customer) CustomerRow {
	f := s.formatter

	row := CustomerRow{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Orders:     c.TotalOrders,
		Spent:      c.TotalSpent,
		SpentLabel: f.Currency(c.TotalSpent),
		LastVisit:  s.date(c.LastVisit, f.Date),
		Status:     badge(f, customerStatusBadges, c.Status),
	}
	if c.Gender != nil {
		row.Gender = label(f, genderLabels, *c.Gender)
	}
	if c.Tier != nil {
		tier := badge(f, tierBadges, *c.Tier)
		row.Tier = &tier
	}

	return row
}

func (s *Service) ListOrders(criteria filtering.Criteria) (*OrderTable, error) {
	snap, err := s.reader.Current()
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return s.ListOrdersFrom(snap, criteria)
}

func (s *Service) ListOrdersFrom(snap *dataset.Snapshot, criteria filtering.Criteria) (*OrderTable, error) {
	if err := validateOrderCriteria(criteria); err != nil {
		return nil, err
	}

	orders := snap.Dataset.Orders
	matched := filtering.Filter(orders, criteria)

	table := &OrderTable{
		Rows:    make([]OrderRow, 0, len(matched)),
		Matched: len(matched),
		Total:   len(orders),
		Summary: s.formatter.Text(format.LabelShowing, len(matched), len(orders)),
		Version: snap.Version,
	}
	if len(matched) == 0 {
		table.EmptyMessage = s.formatter.Text(format.LabelNoRecords)
	}

	for _, o := range matched {
		table.Rows = append(table.Rows, s.orderRow(o))
	}

	return table, nil
}

func (s *Service) orderRow(o domain.Order) OrderRow {
	f := s.formatter

	row := OrderRow{
		ID:           o.ID,
		Number:       "#" + strconv.Itoa(o.ID),
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		StoreName:    o.StoreName,
		OrderedAt:    s.date(o.OrderDate, f.DateTime),
		ItemCount:    len(o.Items),
		ItemsLabel:   f.Text(format.LabelItems, len(o.Items)),
		ItemPreview:  make([]string, 0, s.cfg.ItemPreview),
		Amount:       o.FinalAmount(),
		AmountLabel:  f.Currency(o.FinalAmount()),
		Payment:      label(f, paymentLabels, o.PaymentMethod),
		Status:       badge(f, orderStatusBadges, o.Status),
		OrderType:    badge(f, orderTypeBadges, o.OrderType),
	}

	for i, item := range o.Items {
		if i == s.cfg.ItemPreview {
			row.MoreItems = f.Text(format.LabelMore, len(o.Items)-i)
			break
		}
		row.ItemPreview = append(row.ItemPreview, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}

	if o.DiscountAmount > 0 {
		row.Discount = fmt.Sprintf("%s: -%s", f.Text(format.LabelDiscount), f.Currency(o.DiscountAmount))
	}

	return row
}

// date renders a stored date, keeping the raw value if it cannot be parsed.
func (s *Service) date(value string, render func(string) (string, error)) string {
	out, err := render(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{"value": value}).WithError(err).Warn("unformattable date")
		return value
	}
	return out
}

func validateCustomerCriteria(c filtering.Criteria) error {
	if err := c.Validate(domain.CustomerFilterFields...); err != nil {
		field := strings.Join(c.UnknownFields(domain.CustomerFilterFields...), ",")
		return NewBrowsingError(ErrInvalidFilter, apiErrors.ErrInvalidFilter, field, err.Error())
	}

	checks := map[string]func(string) bool{
		domain.CustomerFieldStatus: func(v string) bool { return domain.CustomerStatus(v).Valid() },
		domain.CustomerFieldTier:   func(v string) bool { return domain.MembershipTier(v).Valid() },
		domain.CustomerFieldGender: func(v string) bool { return domain.Gender(v).Valid() },
	}

	return validateValues(c, checks)
}

func validateOrderCriteria(c filtering.Criteria) error {
	if err := c.Validate(domain.OrderFilterFields...); err != nil {
		field := strings.Join(c.UnknownFields(domain.OrderFilterFields...), ",")
		return NewBrowsingError(ErrInvalidFilter, apiErrors.ErrInvalidFilter, field, err.Error())
	}

	checks := map[string]func(string) bool{
		domain.OrderFieldStatus:        func(v string) bool { return domain.OrderStatus(v).Valid() },
		domain.OrderFieldType:          func(v string) bool { return domain.FulfillmentType(v).Valid() },
		domain.OrderFieldPaymentMethod: func(v string) bool { return domain.PaymentMethod(v).Valid() },
		domain.OrderFieldStoreID:       isID,
		domain.OrderFieldCustomerID:    isID,
	}

	return validateValues(c, checks)
}

func validateValues(c filtering.Criteria, checks map[string]func(string) bool) error {
	for field, value := range c.Exact {
		if value == "" || value == filtering.All {
			continue
		}
		if check, ok := checks[field]; ok && !check(value) {
			return NewBrowsingError(ErrInvalidFilter, apiErrors.ErrInvalidFilter, field,
				fmt.Sprintf("%q is not a valid %s", value, field))
		}
	}

	if c.DatePrefix != "" && !datePrefixPattern.MatchString(c.DatePrefix) {
		return NewBrowsingError(ErrInvalidFilter, apiErrors.ErrInvalidFilter, "date",
			fmt.Sprintf("%q is not a date prefix", c.DatePrefix))
	}

	return nil
}

func isID(v string) bool {
	id, err := strconv.Atoi(v)
	return err == nil && id > 0 && strconv.Itoa(id) == v
}
