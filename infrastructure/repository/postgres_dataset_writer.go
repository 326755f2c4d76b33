package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

// Replace swaps every row of ds.Variant for the content of ds in one
// transaction.
func (r *postgresDatasetRepository) Replace(ctx context.Context, ds *domain.Dataset) error {
	if ds == nil || ds.Variant == "" {
		return errors.New("dataset variant is required")
	}

	inserts, err := buildInserts(ds)
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range datasetTables {
			query, args, err := squirrel.
				Delete(table).
				Where(squirrel.Eq{"variant": ds.Variant}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return errors.Wrapf(err, "build delete %s", table)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "delete %s", table)
			}
		}

		for _, ins := range inserts {
			if _, err := tx.ExecContext(ctx, ins.query, ins.args...); err != nil {
				return errors.Wrapf(err, "insert %s", ins.table)
			}
		}

		return nil
	})
}

type pendingInsert struct {
	table   string
	rows    int
	builder squirrel.InsertBuilder
}

type insertStatement struct {
	table string
	query string
	args  []interface{}
}

// buildInserts renders one batched INSERT per non-empty table, parents first.
func buildInserts(ds *domain.Dataset) ([]insertStatement, error) {
	var pending []pendingInsert
	add := func(table string, rows int, b squirrel.InsertBuilder) {
		pending = append(pending, pendingInsert{table: table, rows: rows, builder: b})
	}

	stores := insertInto(storesTable, "variant", "id", "name")
	for _, s := range ds.Stores {
		stores = stores.Values(ds.Variant, s.ID, s.Name)
	}
	add(storesTable, len(ds.Stores), stores)

	customers := insertInto(customersTable,
		"variant", "id", "name", "email", "phone", "address", "birth_date", "gender",
		"total_orders", "total_spent", "last_visit", "registered_at", "status", "tier")
	for _, c := range ds.Customers {
		customers = customers.Values(
			ds.Variant,
			c.ID,
			c.Name,
			c.Email,
			c.Phone,
			c.Address,
			c.BirthDate,
			nullableString(c.Gender),
			c.TotalOrders,
			c.TotalSpent,
			c.LastVisit,
			c.RegisteredAt,
			string(c.Status),
			nullableString(c.Tier),
		)
	}
	add(customersTable, len(ds.Customers), customers)

	orders := insertInto(ordersTable,
		"variant", "id", "customer_id", "customer_name", "store_id", "store_name", "order_date",
		"total_amount", "discount_amount", "status", "payment_method", "order_type")
	items := insertInto(orderItemsTable, "variant", "order_id", "position", "name", "quantity", "unit_price")
	itemCount := 0
	for _, o := range ds.Orders {
		orders = orders.Values(
			ds.Variant,
			o.ID,
			o.CustomerID,
			o.CustomerName,
			o.StoreID,
			o.StoreName,
			o.OrderDate,
			o.TotalAmount,
			o.DiscountAmount,
			string(o.Status),
			string(o.PaymentMethod),
			string(o.OrderType),
		)
		for i, item := range o.Items {
			items = items.Values(ds.Variant, o.ID, i, item.Name, item.Quantity, item.UnitPrice)
			itemCount++
		}
	}
	add(ordersTable, len(ds.Orders), orders)
	add(orderItemsTable, itemCount, items)

	sales := insertInto(salesDaysTable, "variant", "day", "sales", "orders")
	for _, d := range ds.Sales {
		sales = sales.Values(ds.Variant, d.Date, d.Sales, d.Orders)
	}
	add(salesDaysTable, len(ds.Sales), sales)

	categories := insertInto(categoryOrdersTable, "variant", "position", "name", "value", "color")
	for i, c := range ds.Categories {
		categories = categories.Values(ds.Variant, i, c.Name, c.Value, c.Color)
	}
	add(categoryOrdersTable, len(ds.Categories), categories)

	hourly := insertInto(hourlyOrdersTable, "variant", "position", "slot", "orders")
	for i, h := range ds.Hourly {
		hourly = hourly.Values(ds.Variant, i, h.Slot, h.Orders)
	}
	add(hourlyOrdersTable, len(ds.Hourly), hourly)

	performance := insertInto(storePerformanceTable, "variant", "position", "store", "orders", "sales")
	for i, p := range ds.StorePerformance {
		performance = performance.Values(ds.Variant, i, p.Store, p.Orders, p.Sales)
	}
	add(storePerformanceTable, len(ds.StorePerformance), performance)

	statements := make([]insertStatement, 0, len(pending))
	for _, entry := range pending {
		if entry.rows == 0 {
			continue
		}

		query, args, err := entry.builder.ToSql()
		if err != nil {
			return nil, errors.Wrapf(err, "build insert %s", entry.table)
		}

		statements = append(statements, insertStatement{table: entry.table, query: query, args: args})
	}

	return statements, nil
}

func insertInto(table string, columns ...string) squirrel.InsertBuilder {
	return squirrel.
		Insert(table).
		Columns(columns...).
		PlaceholderFormat(squirrel.Dollar)
}

func nullableString[T ~string](v *T) interface{} {
	if v == nil {
		return nil
	}
	return string(*v)
}
