package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
)

type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	db *sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	return &Connection{db: db}, nil
}

func (c *Connection) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

func (c *Connection) Begin(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// RunInTransaction runs fn in a transaction, rolling back on error or panic.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback failed: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
