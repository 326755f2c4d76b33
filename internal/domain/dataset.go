package domain

// Dataset is one immutable set of sample records. Nothing mutates it after it
// has been loaded; a refresh builds a new value.
type Dataset struct {
	Variant          string             `json:"variant"`
	Customers        []Customer         `json:"customers"`
	Orders           []Order            `json:"orders"`
	Stores           []Store            `json:"stores"`
	Sales            []SalesDay         `json:"sales"`
	Categories       []CategoryOrders   `json:"categories"`
	Hourly           []HourlyOrders     `json:"hourly"`
	StorePerformance []StorePerformance `json:"store_performance"`
}

// LatestOrderDay is the most recent YYYY-MM-DD among the orders, or "" when
// there are none.
func (d *Dataset) LatestOrderDay() string {
	latest := ""
	for _, o := range d.Orders {
		if day := o.Day(); day > latest {
			latest = day
		}
	}
	return latest
}
