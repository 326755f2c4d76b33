package domain

import (
	"strconv"
)

type OrderStatus string

const (
	OrderCompleted OrderStatus = "completed"
	OrderPreparing OrderStatus = "preparing"
	OrderPending   OrderStatus = "pending"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCompleted, OrderPreparing, OrderPending, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentMobile PaymentMethod = "mobile"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCard || p == PaymentCash || p == PaymentMobile
}

type FulfillmentType string

const (
	FulfillmentDineIn   FulfillmentType = "dine-in"
	FulfillmentTakeout  FulfillmentType = "takeout"
	FulfillmentDelivery FulfillmentType = "delivery"
)

func (f FulfillmentType) Valid() bool {
	return f == FulfillmentDineIn || f == FulfillmentTakeout || f == FulfillmentDelivery
}

// Order filter fields.
const (
	OrderFieldStatus        = "status"
	OrderFieldType          = "order_type"
	OrderFieldPaymentMethod = "payment_method"
	OrderFieldStoreID       = "store_id"
	OrderFieldCustomerID    = "customer_id"
)

var OrderFilterFields = []string{
	OrderFieldStatus,
	OrderFieldType,
	OrderFieldPaymentMethod,
	OrderFieldStoreID,
	OrderFieldCustomerID,
}

type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

type Order struct {
	ID             int             `json:"id"`
	CustomerID     int             `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	StoreID        *int            `json:"store_id,omitempty"`
	StoreName      string          `json:"store_name,omitempty"`
	OrderDate      string          `json:"order_date"` // YYYY-MM-DDTHH:MM:SS, local time
	Items          []OrderItem     `json:"items"`
	TotalAmount    float64         `json:"total_amount"`
	DiscountAmount float64         `json:"discount_amount"`
	Status         OrderStatus     `json:"status"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	OrderType      FulfillmentType `json:"order_type"`
}

// FinalAmount is what the customer paid. It is always derived, never stored.
func (o Order) FinalAmount() float64 {
	return o.TotalAmount - o.DiscountAmount
}

func (o Order) ItemsTotal() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// CountsAsSale is false for orders whose money never stayed with the store.
func (o Order) CountsAsSale() bool {
	return o.Status != OrderCancelled && o.Status != OrderRefunded
}

// Day is the YYYY-MM-DD part of the order timestamp.
func (o Order) Day() string {
	if len(o.OrderDate) < 10 {
		return o.OrderDate
	}
	return o.OrderDate[:10]
}

func (o Order) SearchFields() []string {
	return []string{o.CustomerName, strconv.Itoa(o.ID), o.StoreName}
}

func (o Order) FieldValue(field string) (string, bool) {
	switch field {
	case OrderFieldStatus:
		return string(o.Status), true
	case OrderFieldType:
		return string(o.OrderType), true
	case OrderFieldPaymentMethod:
		return string(o.PaymentMethod), true
	case OrderFieldStoreID:
		if o.StoreID == nil {
			return "", false
		}
		return strconv.Itoa(*o.StoreID), true
	case OrderFieldCustomerID:
		return strconv.Itoa(o.CustomerID), true
	}

	return "", false
}

func (o Order) DateValue() string {
	return o.OrderDate
}
