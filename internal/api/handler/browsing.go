package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/restaurant-dashboard-api/internal/filtering"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/browsing"
)

// Query parameters that are not exact-match fields.
const (
	paramQuery = "q"
	paramDate  = "date"
)

// criteriaFromQuery maps ?q=&date=&<field>= onto filter criteria. Every other
// parameter becomes an exact-match field and is validated by the usecase.
func criteriaFromQuery(values url.Values) filtering.Criteria {
	criteria := filtering.Criteria{
		Query:      values.Get(paramQuery),
		DatePrefix: strings.TrimSpace(values.Get(paramDate)),
		Exact:      make(map[string]string),
	}

	for key := range values {
		if key == paramQuery || key == paramDate {
			continue
		}
		criteria.Exact[key] = strings.TrimSpace(values.Get(key))
	}

	return criteria
}

func ListCustomers(service browsing.Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := service.ListCustomers(criteriaFromQuery(r.URL.Query()))
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, table.Version, table)
	}
}

func ListOrders(service browsing.Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := service.ListOrders(criteriaFromQuery(r.URL.Query()))
		if err != nil {
			handleUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, table.Version, table)
	}
}
