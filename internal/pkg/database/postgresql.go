package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var errHandleClosed = errors.New("database handle closed")

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(ctx context.Context, dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Handle opens the pool on first use and hands the same pool to every later caller.
// A failed open is remembered; callers build a new Handle to retry.
type Handle struct {
	dsn  string
	open func(ctx context.Context, dsn string) (*DB, error)

	mu     sync.Mutex
	opened bool
	db     *DB
	err    error
}

func NewHandle(dsn string) *Handle {
	return &Handle{dsn: dsn, open: NewPostgreSQLDB}
}

func (h *Handle) Get(ctx context.Context) (*DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.opened {
		h.opened = true
		h.db, h.err = h.open(ctx, h.dsn)
		if h.err != nil {
			h.err = fmt.Errorf("failed to connect to database: %w", h.err)
		}
	}
	return h.db, h.err
}

// Close releases the pool if it was ever opened. Later Gets fail.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.opened = true
	if h.db != nil && h.db.Pool != nil {
		h.db.Close()
	}
	h.db, h.err = nil, errHandleClosed
}
