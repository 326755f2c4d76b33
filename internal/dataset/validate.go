package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/format"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// ValidationError lists every violation found in one pass.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidDataset.Error(), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataset
}

// amountTolerance is half of the smallest minor unit used by the fixtures.
const amountTolerance = 0.005

// Validate checks the invariants every snapshot must hold before it is served.
func Validate(ds *domain.Dataset) error {
	if ds == nil {
		return &ValidationError{Problems: []string{"dataset is nil"}}
	}

	var problems []string
	addf := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	customerIDs := make(map[int]struct{}, len(ds.Customers))
	for _, c := range ds.Customers {
		if _, dup := customerIDs[c.ID]; dup {
			addf("customer %d: duplicated id", c.ID)
		}
		customerIDs[c.ID] = struct{}{}

		if !c.Status.Valid() {
			addf("customer %d: unknown status %q", c.ID, c.Status)
		}
		if c.Tier != nil && !c.Tier.Valid() {
			addf("customer %d: unknown tier %q", c.ID, *c.Tier)
		}
		if c.Gender != nil && !c.Gender.Valid() {
			addf("customer %d: unknown gender %q", c.ID, *c.Gender)
		}
		if _, err := format.Parse(c.LastVisit); err != nil {
			addf("customer %d: last visit %q does not parse", c.ID, c.LastVisit)
		}
	}

	orderIDs := make(map[int]struct{}, len(ds.Orders))
	for _, o := range ds.Orders {
		if _, dup := orderIDs[o.ID]; dup {
			addf("order %d: duplicated id", o.ID)
		}
		orderIDs[o.ID] = struct{}{}

		if !o.Status.Valid() {
			addf("order %d: unknown status %q", o.ID, o.Status)
		}
		if !o.PaymentMethod.Valid() {
			addf("order %d: unknown payment method %q", o.ID, o.PaymentMethod)
		}
		if !o.OrderType.Valid() {
			addf("order %d: unknown order type %q", o.ID, o.OrderType)
		}
		if _, err := format.Parse(o.OrderDate); err != nil {
			addf("order %d: order date %q does not parse", o.ID, o.OrderDate)
		}
		if o.DiscountAmount < 0 {
			addf("order %d: negative discount %v", o.ID, o.DiscountAmount)
		}
		if o.DiscountAmount > o.TotalAmount {
			addf("order %d: discount %v exceeds total %v", o.ID, o.DiscountAmount, o.TotalAmount)
		}
		if hasPricedItems(o) && math.Abs(o.ItemsTotal()-o.TotalAmount) > amountTolerance {
			addf("order %d: items sum to %v, total is %v", o.ID, o.ItemsTotal(), o.TotalAmount)
		}
	}

	for _, day := range ds.Sales {
		if _, err := format.Parse(day.Date); err != nil {
			addf("sales day %q does not parse", day.Date)
		}
		if day.Sales < 0 || day.Orders < 0 {
			addf("sales day %s: negative value", day.Date)
		}
	}

	for _, c := range ds.Categories {
		if c.Value < 0 {
			addf("category %q: negative value %d", c.Name, c.Value)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}

func hasPricedItems(o domain.Order) bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if item.UnitPrice <= 0 {
			return false
		}
	}
	return true
}
