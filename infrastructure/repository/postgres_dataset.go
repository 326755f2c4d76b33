package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

const (
	storesTable           = "stores"
	customersTable        = "customers"
	ordersTable           = "orders"
	orderItemsTable       = "order_items"
	salesDaysTable        = "sales_days"
	categoryOrdersTable   = "category_orders"
	hourlyOrdersTable     = "hourly_orders"
	storePerformanceTable = "store_performance"

	timestampLayout = "2006-01-02T15:04:05"
)

// tables in delete order; inserts go the other way.
var datasetTables = []string{
	storePerformanceTable,
	hourlyOrdersTable,
	categoryOrdersTable,
	salesDaysTable,
	orderItemsTable,
	ordersTable,
	customersTable,
	storesTable,
}

var ErrEmptyDataset = errors.New("dataset variant has no rows")

type postgresDatasetRepository struct {
	conn postgres.Conn
}

type PostgresDatasetRepository interface {
	DatasetRepository
	DatasetWriter
}

func NewPostgresDatasetRepository(conn postgres.Conn) PostgresDatasetRepository {
	return &postgresDatasetRepository{
		conn: conn,
	}
}

func (r *postgresDatasetRepository) Load(ctx context.Context, variant string) (*domain.Dataset, error) {
	ds := &domain.Dataset{Variant: variant}

	var err error
	if ds.Stores, err = r.loadStores(ctx, variant); err != nil {
		return nil, err
	}
	if ds.Customers, err = r.loadCustomers(ctx, variant); err != nil {
		return nil, err
	}
	if ds.Orders, err = r.loadOrders(ctx, variant); err != nil {
		return nil, err
	}
	if ds.Sales, err = r.loadSales(ctx, variant); err != nil {
		return nil, err
	}
	if ds.Categories, err = r.loadCategories(ctx, variant); err != nil {
		return nil, err
	}
	if ds.Hourly, err = r.loadHourly(ctx, variant); err != nil {
		return nil, err
	}
	if ds.StorePerformance, err = r.loadStorePerformance(ctx, variant); err != nil {
		return nil, err
	}

	if len(ds.Customers) == 0 && len(ds.Orders) == 0 && len(ds.Sales) == 0 {
		return nil, errors.Wrapf(ErrEmptyDataset, "%q", variant)
	}

	logrus.WithFields(logrus.Fields{
		"variant":   variant,
		"customers": len(ds.Customers),
		"orders":    len(ds.Orders),
		"sales":     len(ds.Sales),
	}).Debug("Dataset loaded from postgres")

	return ds, nil
}

func selectVariant(variant, table, orderBy string, columns ...string) squirrel.SelectBuilder {
	return squirrel.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"variant": variant}).
		OrderBy(orderBy).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *postgresDatasetRepository) query(ctx context.Context, b squirrel.SelectBuilder) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "run query")
	}

	return rows, nil
}

func (r *postgresDatasetRepository) loadStores(ctx context.Context, variant string) ([]domain.Store, error) {
	rows, err := r.query(ctx, selectVariant(variant, storesTable, "id", "id", "name"))
	if err != nil {
		return nil, errors.Wrap(err, storesTable)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, errors.Wrap(err, "scan store")
		}
		stores = append(stores, s)
	}

	return stores, errors.Wrap(rows.Err(), storesTable)
}

func (r *postgresDatasetRepository) loadCustomers(ctx context.Context, variant string) ([]domain.Customer, error) {
	rows, err := r.query(ctx, selectVariant(variant, customersTable, "id",
		"id",
		"name",
		"email",
		"phone",
		"address",
		"birth_date",
		"gender",
		"total_orders",
		"total_spent",
		"last_visit",
		"registered_at",
		"status",
		"tier",
	))
	if err != nil {
		return nil, errors.Wrap(err, customersTable)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan customer")
		}
		customers = append(customers, *c)
	}

	return customers, errors.Wrap(rows.Err(), customersTable)
}

func scanCustomer(rows *sql.Rows) (*domain.Customer, error) {
	var (
		c            domain.Customer
		address      sql.NullString
		birthDate    sql.NullTime
		gender       sql.NullString
		tier         sql.NullString
		lastVisit    time.Time
		registeredAt time.Time
	)

	err := rows.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&address,
		&birthDate,
		&gender,
		&c.TotalOrders,
		&c.TotalSpent,
		&lastVisit,
		&registeredAt,
		&c.Status,
		&tier,
	)
	if err != nil {
		return nil, err
	}

	if address.Valid {
		c.Address = &address.String
	}
	if birthDate.Valid {
		d := birthDate.Time.Format(time.DateOnly)
		c.BirthDate = &d
	}
	if gender.Valid {
		g := domain.Gender(gender.String)
		c.Gender = &g
	}
	if tier.Valid {
		t := domain.MembershipTier(tier.String)
		c.Tier = &t
	}
	c.LastVisit = lastVisit.Format(time.DateOnly)
	c.RegisteredAt = registeredAt.Format(time.DateOnly)

	return &c, nil
}

func (r *postgresDatasetRepository) loadOrders(ctx context.Context, variant string) ([]domain.Order, error) {
	items, err := r.loadOrderItems(ctx, variant)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, selectVariant(variant, ordersTable, "id",
		"id",
		"customer_id",
		"customer_name",
		"store_id",
		"store_name",
		"order_date",
		"total_amount",
		"discount_amount",
		"status",
		"payment_method",
		"order_type",
	))
	if err != nil {
		return nil, errors.Wrap(err, ordersTable)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			o         domain.Order
			storeID   sql.NullInt64
			orderDate time.Time
		)

		err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.CustomerName,
			&storeID,
			&o.StoreName,
			&orderDate,
			&o.TotalAmount,
			&o.DiscountAmount,
			&o.Status,
			&o.PaymentMethod,
			&o.OrderType,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan order")
		}

		if storeID.Valid {
			id := int(storeID.Int64)
			o.StoreID = &id
		}
		o.OrderDate = orderDate.Format(timestampLayout)
		o.Items = items[o.ID]
		if o.Items == nil {
			o.Items = []domain.OrderItem{}
		}

		orders = append(orders, o)
	}

	return orders, errors.Wrap(rows.Err(), ordersTable)
}

func (r *postgresDatasetRepository) loadOrderItems(ctx context.Context, variant string) (map[int][]domain.OrderItem, error) {
	rows, err := r.query(ctx, selectVariant(variant, orderItemsTable, "order_id, position",
		"order_id", "name", "quantity", "unit_price"))
	if err != nil {
		return nil, errors.Wrap(err, orderItemsTable)
	}
	defer rows.Close()

	items := make(map[int][]domain.OrderItem)
	for rows.Next() {
		var (
			orderID int
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, errors.Wrap(rows.Err(), orderItemsTable)
}

func (r *postgresDatasetRepository) loadSales(ctx context.Context, variant string) ([]domain.SalesDay, error) {
	rows, err := r.query(ctx, selectVariant(variant, salesDaysTable, "day", "day", "sales", "orders"))
	if err != nil {
		return nil, errors.Wrap(err, salesDaysTable)
	}
	defer rows.Close()

	days := make([]domain.SalesDay, 0)
	for rows.Next() {
		var (
			d   domain.SalesDay
			day time.Time
		)
		if err := rows.Scan(&day, &d.Sales, &d.Orders); err != nil {
			return nil, errors.Wrap(err, "scan sales day")
		}
		d.Date = day.Format(time.DateOnly)
		days = append(days, d)
	}

	return days, errors.Wrap(rows.Err(), salesDaysTable)
}

func (r *postgresDatasetRepository) loadCategories(ctx context.Context, variant string) ([]domain.CategoryOrders, error) {
	rows, err := r.query(ctx, selectVariant(variant, categoryOrdersTable, "position", "name", "value", "color"))
	if err != nil {
		return nil, errors.Wrap(err, categoryOrdersTable)
	}
	defer rows.Close()

	categories := make([]domain.CategoryOrders, 0)
	for rows.Next() {
		var c domain.CategoryOrders
		if err := rows.Scan(&c.Name, &c.Value, &c.Color); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		categories = append(categories, c)
	}

	return categories, errors.Wrap(rows.Err(), categoryOrdersTable)
}

func (r *postgresDatasetRepository) loadHourly(ctx context.Context, variant string) ([]domain.HourlyOrders, error) {
	rows, err := r.query(ctx, selectVariant(variant, hourlyOrdersTable, "position", "slot", "orders"))
	if err != nil {
		return nil, errors.Wrap(err, hourlyOrdersTable)
	}
	defer rows.Close()

	hourly := make([]domain.HourlyOrders, 0)
	for rows.Next() {
		var h domain.HourlyOrders
		if err := rows.Scan(&h.Slot, &h.Orders); err != nil {
			return nil, errors.Wrap(err, "scan hourly orders")
		}
		hourly = append(hourly, h)
	}

	return hourly, errors.Wrap(rows.Err(), hourlyOrdersTable)
}

func (r *postgresDatasetRepository) loadStorePerformance(ctx context.Context, variant string) ([]domain.StorePerformance, error) {
	rows, err := r.query(ctx, selectVariant(variant, storePerformanceTable, "position", "store", "orders", "sales"))
	if err != nil {
		return nil, errors.Wrap(err, storePerformanceTable)
	}
	defer rows.Close()

	performance := make([]domain.StorePerformance, 0)
	for rows.Next() {
		var p domain.StorePerformance
		if err := rows.Scan(&p.Store, &p.Orders, &p.Sales); err != nil {
			return nil, errors.Wrap(err, "scan store performance")
		}
		performance = append(performance, p)
	}

	return performance, errors.Wrap(rows.Err(), storePerformanceTable)
}
