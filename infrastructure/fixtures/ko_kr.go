package fixtures

import "github.com/vfg2006/restaurant-dashboard-api/internal/domain"

func koKR() *domain.Dataset {
	return &domain.Dataset{
		Variant:          VariantKoKR,
		Customers:        koKRCustomers(),
		Orders:           koKROrders(),
		Stores:           koKRStores(),
		Sales:            koKRSales(),
		Categories:       koKRCategories(),
		Hourly:           koKRHourly(),
		StorePerformance: koKRStorePerformance(),
	}
}

func koKRStores() []domain.Store {
	return []domain.Store{
		{ID: 1, Name: "시카파마 강남점"},
		{ID: 2, Name: "시카파마 홍대점"},
		{ID: 3, Name: "시카파마 부산점"},
		{ID: 4, Name: "시카파마 인천점"},
		{ID: 5, Name: "시카파마 대구점"},
	}
}

func koKRCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:           10001,
			Name:         "김민수",
			Email:        "minsu.kim@email.com",
			Phone:        "010-1234-5678",
			Address:      ptr("서울시 강남구 테헤란로 123"),
			BirthDate:    ptr("1990-03-15"),
			Gender:       ptr(domain.GenderMale),
			TotalOrders:  24,
			TotalSpent:   468000,
			LastVisit:    "2024-06-02",
			RegisteredAt: "2023-01-15",
			Status:       domain.CustomerActive,
			Tier:         ptr(domain.TierGold),
		},
		{
			ID:           10002,
			Name:         "박서영",
			Email:        "seoyoung.park@email.com",
			Phone:        "010-2345-6789",
			Address:      ptr("서울시 마포구 와우산로 45"),
			BirthDate:    ptr("1995-07-22"),
			Gender:       ptr(domain.GenderFemale),
			TotalOrders:  12,
			TotalSpent:   198500,
			LastVisit:    "2024-06-02",
			RegisteredAt: "2023-05-20",
			Status:       domain.CustomerActive,
			Tier:         ptr(domain.TierSilver),
		},
		{
			ID:           10003,
			Name:         "이준호",
			Email:        "junho.lee@email.com",
			Phone:        "010-3456-7890",
			Address:      ptr("부산시 해운대구 해운대로 77"),
			BirthDate:    ptr("1988-11-03"),
			Gender:       ptr(domain.GenderMale),
			TotalOrders:  31,
			TotalSpent:   752000,
			LastVisit:    "2024-06-02",
			RegisteredAt: "2022-11-08",
			Status:       domain.CustomerActive,
			Tier:         ptr(domain.TierVIP),
		},
		{
			ID:           10004,
			Name:         "최유진",
			Email:        "yujin.choi@email.com",
			Phone:        "010-4567-8901",
			BirthDate:    ptr("1999-02-10"),
			Gender:       ptr(domain.GenderFemale),
			TotalOrders:  1,
			TotalSpent:   11500,
			LastVisit:    "2024-06-01",
			RegisteredAt: "2024-05-30",
			Status:       domain.CustomerInactive,
			Tier:         ptr(domain.TierBronze),
		},
		{
			ID:           10005,
			Name:         "정민철",
			Email:        "mincheol.jung@email.com",
			Phone:        "010-5678-9012",
			Address:      ptr("인천시 연수구 컨벤시아대로 8"),
			TotalOrders:  7,
			TotalSpent:   143000,
			LastVisit:    "2024-06-01",
			RegisteredAt: "2023-09-12",
			Status:       domain.CustomerActive,
		},
	}
}

func koKROrders() []domain.Order {
	return []domain.Order{
		{
			ID:           20001,
			CustomerID:   10001,
			CustomerName: "김민수",
			StoreID:      ptr(1),
			StoreName:    "시카파마 강남점",
			OrderDate:    "2024-06-02T12:30:00",
			Items: []domain.OrderItem{
				{Name: "스파이시 치킨 버거", Quantity: 1, UnitPrice: 8500},
				{Name: "감자튀김 (L)", Quantity: 1, UnitPrice: 3000},
				{Name: "콜라 (L)", Quantity: 1, UnitPrice: 2500},
			},
			TotalAmount:    14000,
			DiscountAmount: 1000,
			Status:         domain.OrderCompleted,
			PaymentMethod:  domain.PaymentCard,
			OrderType:      domain.FulfillmentDineIn,
		},
		{
			ID:           20002,
			CustomerID:   10002,
			CustomerName: "박서영",
			StoreID:      ptr(2),
			StoreName:    "시카파마 홍대점",
			OrderDate:    "2024-06-02T14:15:00",
			Items: []domain.OrderItem{
				{Name: "치즈 버거 세트", Quantity: 1, UnitPrice: 9500},
				{Name: "오니언링", Quantity: 1, UnitPrice: 3500},
			},
			TotalAmount:    13000,
			DiscountAmount: 500,
			Status:         domain.OrderPreparing,
			PaymentMethod:  domain.PaymentMobile,
			OrderType:      domain.FulfillmentTakeout,
		},
		{
			ID:           20003,
			CustomerID:   10003,
			CustomerName: "이준호",
			StoreID:      ptr(3),
			StoreName:    "시카파마 부산점",
			OrderDate:    "2024-06-02T18:45:00",
			Items: []domain.OrderItem{
				{Name: "더블 치킨 버거", Quantity: 2, UnitPrice: 11000},
				{Name: "치킨 너겟 (10pc)", Quantity: 1, UnitPrice: 6500},
				{Name: "사이다 (L)", Quantity: 2, UnitPrice: 2500},
			},
			TotalAmount:    33500,
			DiscountAmount: 2000,
			Status:         domain.OrderCompleted,
			PaymentMethod:  domain.PaymentCard,
			OrderType:      domain.FulfillmentDelivery,
		},
		{
			ID:           20004,
			CustomerID:   10004,
			CustomerName: "최유진",
			StoreID:      ptr(1),
			StoreName:    "시카파마 강남점",
			OrderDate:    "2024-06-01T11:20:00",
			Items: []domain.OrderItem{
				{Name: "베지 버거", Quantity: 1, UnitPrice: 7500},
				{Name: "스무디 (딸기)", Quantity: 1, UnitPrice: 4000},
			},
			TotalAmount:   11500,
			Status:        domain.OrderCancelled,
			PaymentMethod: domain.PaymentCash,
			OrderType:     domain.FulfillmentDineIn,
		},
		{
			ID:           20005,
			CustomerID:   10005,
			CustomerName: "정민철",
			StoreID:      ptr(4),
			StoreName:    "시카파마 인천점",
			OrderDate:    "2024-06-01T19:30:00",
			Items: []domain.OrderItem{
				{Name: "프리미엄 스테이크 버거", Quantity: 1, UnitPrice: 13500},
				{Name: "웨지 포테이토", Quantity: 1, UnitPrice: 4500},
				{Name: "아이스 아메리카노", Quantity: 1, UnitPrice: 3000},
			},
			TotalAmount:    21000,
			DiscountAmount: 1500,
			Status:         domain.OrderCompleted,
			PaymentMethod:  domain.PaymentCard,
			OrderType:      domain.FulfillmentDineIn,
		},
	}
}

func koKRSales() []domain.SalesDay {
	return []domain.SalesDay{
		{Date: "2024-05-02", Sales: 1250000, Orders: 67},
		{Date: "2024-05-03", Sales: 1890000, Orders: 89},
		{Date: "2024-05-04", Sales: 2150000, Orders: 102},
		{Date: "2024-05-05", Sales: 1675000, Orders: 78},
		{Date: "2024-05-06", Sales: 2340000, Orders: 134},
		{Date: "2024-05-07", Sales: 2890000, Orders: 156},
		{Date: "2024-05-08", Sales: 3120000, Orders: 189},
		{Date: "2024-05-09", Sales: 2765000, Orders: 145},
		{Date: "2024-05-10", Sales: 2456000, Orders: 128},
		{Date: "2024-05-11", Sales: 2890000, Orders: 167},
		{Date: "2024-05-12", Sales: 3345000, Orders: 201},
		{Date: "2024-05-13", Sales: 3567000, Orders: 234},
		{Date: "2024-05-14", Sales: 3234000, Orders: 198},
		{Date: "2024-05-15", Sales: 2987000, Orders: 176},
		{Date: "2024-05-16", Sales: 3456000, Orders: 213},
		{Date: "2024-05-17", Sales: 3789000, Orders: 245},
		{Date: "2024-05-18", Sales: 4123000, Orders: 267},
		{Date: "2024-05-19", Sales: 3876000, Orders: 234},
		{Date: "2024-05-20", Sales: 3567000, Orders: 201},
		{Date: "2024-05-21", Sales: 3890000, Orders: 223},
		{Date: "2024-05-22", Sales: 4234000, Orders: 278},
		{Date: "2024-05-23", Sales: 4567000, Orders: 298},
		{Date: "2024-05-24", Sales: 4123000, Orders: 267},
		{Date: "2024-05-25", Sales: 3876000, Orders: 245},
		{Date: "2024-05-26", Sales: 4345000, Orders: 289},
		{Date: "2024-05-27", Sales: 4678000, Orders: 312},
		{Date: "2024-05-28", Sales: 4890000, Orders: 334},
		{Date: "2024-05-29", Sales: 4567000, Orders: 298},
		{Date: "2024-05-30", Sales: 4234000, Orders: 278},
		{Date: "2024-06-01", Sales: 4789000, Orders: 315},
	}
}

func koKRCategories() []domain.CategoryOrders {
	return []domain.CategoryOrders{
		{Name: "버거류", Value: 1245, Color: "#3B82F6"},
		{Name: "치킨류", Value: 867, Color: "#10B981"},
		{Name: "사이드", Value: 523, Color: "#F59E0B"},
		{Name: "음료", Value: 398, Color: "#EF4444"},
		{Name: "디저트", Value: 187, Color: "#8B5CF6"},
	}
}

func koKRHourly() []domain.HourlyOrders {
	return []domain.HourlyOrders{
		{Slot: "11:00-12:00", Orders: 23},
		{Slot: "12:00-13:00", Orders: 89},
		{Slot: "13:00-14:00", Orders: 67},
		{Slot: "14:00-15:00", Orders: 34},
		{Slot: "15:00-16:00", Orders: 28},
		{Slot: "16:00-17:00", Orders: 45},
		{Slot: "17:00-18:00", Orders: 78},
		{Slot: "18:00-19:00", Orders: 134},
		{Slot: "19:00-20:00", Orders: 156},
		{Slot: "20:00-21:00", Orders: 98},
		{Slot: "21:00-22:00", Orders: 56},
	}
}

func koKRStorePerformance() []domain.StorePerformance {
	return []domain.StorePerformance{
		{Store: "강남점", Orders: 456, Sales: 8900000},
		{Store: "홍대점", Orders: 389, Sales: 7200000},
		{Store: "부산점", Orders: 367, Sales: 6800000},
		{Store: "인천점", Orders: 234, Sales: 4500000},
		{Store: "대구점", Orders: 198, Sales: 3800000},
	}
}
