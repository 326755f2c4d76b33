package domain

type Store struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SalesDay is one point of the daily sales series.
type SalesDay struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// CategoryOrders holds the raw count only; shares are computed on read.
type CategoryOrders struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type HourlyOrders struct {
	Slot   string `json:"slot"` // HH:MM-HH:MM
	Orders int    `json:"orders"`
}

type StorePerformance struct {
	Store  string  `json:"store"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}
