package fixtures

import "github.com/vfg2006/restaurant-dashboard-api/internal/domain"

func enUS() *domain.Dataset {
	return &domain.Dataset{
		Variant:          VariantEnUS,
		Customers:        enUSCustomers(),
		Orders:           enUSOrders(),
		Stores:           []domain.Store{},
		Sales:            enUSSales(),
		Categories:       enUSCategories(),
		Hourly:           enUSHourly(),
		StorePerformance: []domain.StorePerformance{},
	}
}

func enUSCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:           1,
			Name:         "John Smith",
			Email:        "john.smith@email.com",
			Phone:        "(555) 123-4567",
			TotalOrders:  15,
			TotalSpent:   342.50,
			LastVisit:    "2024-05-28",
			RegisteredAt: "2023-02-10",
			Status:       domain.CustomerActive,
		},
		{
			ID:           2,
			Name:         "Sarah Johnson",
			Email:        "sarah.j@email.com",
			Phone:        "(555) 987-6543",
			TotalOrders:  8,
			TotalSpent:   198.25,
			LastVisit:    "2024-05-30",
			RegisteredAt: "2023-06-18",
			Status:       domain.CustomerActive,
		},
		{
			ID:           3,
			Name:         "Mike Davis",
			Email:        "mike.davis@email.com",
			Phone:        "(555) 456-7890",
			TotalOrders:  3,
			TotalSpent:   67.80,
			LastVisit:    "2024-04-15",
			RegisteredAt: "2023-11-02",
			Status:       domain.CustomerInactive,
		},
		{
			ID:           4,
			Name:         "Emily Wilson",
			Email:        "emily.w@email.com",
			Phone:        "(555) 321-0987",
			TotalOrders:  22,
			TotalSpent:   589.40,
			LastVisit:    "2024-06-01",
			RegisteredAt: "2022-09-14",
			Status:       domain.CustomerActive,
		},
		{
			ID:           5,
			Name:         "David Brown",
			Email:        "david.brown@email.com",
			Phone:        "(555) 654-3210",
			TotalOrders:  12,
			TotalSpent:   276.15,
			LastVisit:    "2024-05-25",
			RegisteredAt: "2023-03-27",
			Status:       domain.CustomerActive,
		},
	}
}

func enUSOrders() []domain.Order {
	return []domain.Order{
		{
			ID:           1001,
			CustomerID:   1,
			CustomerName: "John Smith",
			OrderDate:    "2024-06-01T14:30:00",
			Items: []domain.OrderItem{
				{Name: "Caesar Salad", Quantity: 1, UnitPrice: 9.50},
				{Name: "Grilled Chicken", Quantity: 1, UnitPrice: 15.50},
				{Name: "Iced Tea", Quantity: 1, UnitPrice: 3.50},
			},
			TotalAmount:   28.50,
			Status:        domain.OrderCompleted,
			PaymentMethod: domain.PaymentCard,
			OrderType:     domain.FulfillmentDineIn,
		},
		{
			ID:           1002,
			CustomerID:   2,
			CustomerName: "Sarah Johnson",
			OrderDate:    "2024-06-01T12:15:00",
			Items: []domain.OrderItem{
				{Name: "Burger Deluxe", Quantity: 1, UnitPrice: 12.25},
				{Name: "French Fries", Quantity: 1, UnitPrice: 4.50},
				{Name: "Soda", Quantity: 1, UnitPrice: 3.00},
			},
			TotalAmount:   19.75,
			Status:        domain.OrderCompleted,
			PaymentMethod: domain.PaymentCash,
			OrderType:     domain.FulfillmentDineIn,
		},
		{
			ID:           1003,
			CustomerID:   4,
			CustomerName: "Emily Wilson",
			OrderDate:    "2024-06-01T18:45:00",
			Items: []domain.OrderItem{
				{Name: "Pasta Carbonara", Quantity: 1, UnitPrice: 18.70},
				{Name: "Garlic Bread", Quantity: 1, UnitPrice: 6.50},
				{Name: "Wine", Quantity: 1, UnitPrice: 20.00},
			},
			TotalAmount:   45.20,
			Status:        domain.OrderPending,
			PaymentMethod: domain.PaymentCard,
			OrderType:     domain.FulfillmentDineIn,
		},
		{
			ID:           1004,
			CustomerID:   5,
			CustomerName: "David Brown",
			OrderDate:    "2024-05-31T19:20:00",
			Items: []domain.OrderItem{
				{Name: "Steak Dinner", Quantity: 1, UnitPrice: 36.80},
				{Name: "Mashed Potatoes", Quantity: 1, UnitPrice: 7.00},
				{Name: "Beer", Quantity: 1, UnitPrice: 9.00},
			},
			TotalAmount:   52.80,
			Status:        domain.OrderCompleted,
			PaymentMethod: domain.PaymentCard,
			OrderType:     domain.FulfillmentDineIn,
		},
		{
			ID:           1005,
			CustomerID:   1,
			CustomerName: "John Smith",
			OrderDate:    "2024-05-30T13:10:00",
			Items: []domain.OrderItem{
				{Name: "Fish Tacos", Quantity: 1, UnitPrice: 12.40},
				{Name: "Chips & Salsa", Quantity: 1, UnitPrice: 4.50},
			},
			TotalAmount:   16.90,
			Status:        domain.OrderCancelled,
			PaymentMethod: domain.PaymentCard,
			OrderType:     domain.FulfillmentDineIn,
		},
	}
}

// enUSSales has no entry for May 31.
func enUSSales() []domain.SalesDay {
	return []domain.SalesDay{
		{Date: "2024-05-02", Sales: 1250.50, Orders: 45},
		{Date: "2024-05-03", Sales: 1890.25, Orders: 52},
		{Date: "2024-05-04", Sales: 2150.75, Orders: 61},
		{Date: "2024-05-05", Sales: 1675.00, Orders: 48},
		{Date: "2024-05-06", Sales: 2340.25, Orders: 67},
		{Date: "2024-05-07", Sales: 2890.50, Orders: 78},
		{Date: "2024-05-08", Sales: 3120.75, Orders: 85},
		{Date: "2024-05-09", Sales: 2765.25, Orders: 72},
		{Date: "2024-05-10", Sales: 2456.50, Orders: 69},
		{Date: "2024-05-11", Sales: 2890.75, Orders: 76},
		{Date: "2024-05-12", Sales: 3345.25, Orders: 89},
		{Date: "2024-05-13", Sales: 3567.50, Orders: 94},
		{Date: "2024-05-14", Sales: 3234.75, Orders: 87},
		{Date: "2024-05-15", Sales: 2987.25, Orders: 81},
		{Date: "2024-05-16", Sales: 3456.50, Orders: 92},
		{Date: "2024-05-17", Sales: 3789.75, Orders: 98},
		{Date: "2024-05-18", Sales: 4123.25, Orders: 105},
		{Date: "2024-05-19", Sales: 3876.50, Orders: 96},
		{Date: "2024-05-20", Sales: 3567.75, Orders: 89},
		{Date: "2024-05-21", Sales: 3890.25, Orders: 94},
		{Date: "2024-05-22", Sales: 4234.50, Orders: 108},
		{Date: "2024-05-23", Sales: 4567.75, Orders: 115},
		{Date: "2024-05-24", Sales: 4123.25, Orders: 102},
		{Date: "2024-05-25", Sales: 3876.50, Orders: 97},
		{Date: "2024-05-26", Sales: 4345.75, Orders: 110},
		{Date: "2024-05-27", Sales: 4678.25, Orders: 118},
		{Date: "2024-05-28", Sales: 4890.50, Orders: 123},
		{Date: "2024-05-29", Sales: 4567.75, Orders: 115},
		{Date: "2024-05-30", Sales: 4234.25, Orders: 108},
		{Date: "2024-06-01", Sales: 4789.50, Orders: 120},
	}
}

func enUSCategories() []domain.CategoryOrders {
	return []domain.CategoryOrders{
		{Name: "Main Courses", Value: 485, Color: "#3B82F6"},
		{Name: "Appetizers", Value: 267, Color: "#10B981"},
		{Name: "Beverages", Value: 198, Color: "#F59E0B"},
		{Name: "Desserts", Value: 123, Color: "#EF4444"},
		{Name: "Salads", Value: 74, Color: "#8B5CF6"},
	}
}

func enUSHourly() []domain.HourlyOrders {
	return []domain.HourlyOrders{
		{Slot: "11:00-12:00", Orders: 15},
		{Slot: "12:00-13:00", Orders: 45},
		{Slot: "13:00-14:00", Orders: 38},
		{Slot: "14:00-15:00", Orders: 22},
		{Slot: "15:00-16:00", Orders: 18},
		{Slot: "16:00-17:00", Orders: 25},
		{Slot: "17:00-18:00", Orders: 52},
		{Slot: "18:00-19:00", Orders: 68},
		{Slot: "19:00-20:00", Orders: 72},
		{Slot: "20:00-21:00", Orders: 58},
		{Slot: "21:00-22:00", Orders: 35},
	}
}
