package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mikimas/truster/internal/domain/errors"
	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses. pgxmock pools satisfy
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage is the persistent order store backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the repository view over the storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            status TEXT NOT NULL,
            product_url TEXT NOT NULL,
            extra_info TEXT NOT NULL DEFAULT '',
            full_name TEXT NOT NULL,
            dni TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            address_line1 TEXT NOT NULL,
            address_line2 TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL,
            postal_code TEXT NOT NULL,
            province TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Save inserts the order; the id comes from the orders sequence, which keeps
// identifier assignment safe under concurrent requests.
func (r *orderRepository) Save(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders
                   (status, product_url, extra_info, full_name, dni, email, phone,
                    address_line1, address_line2, city, postal_code, province, notes, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                   RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		order.Status, order.ProductURL, order.ExtraInfo, order.FullName, order.DNI,
		order.Email, order.Phone, order.AddressLine1, order.AddressLine2,
		order.City, order.PostalCode, order.Province, order.Notes, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		r.storage.logger.Error("save order failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
	}
	return nil
}

// List returns stored orders newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, status, product_url, extra_info, full_name, dni, email, phone,
                          address_line1, address_line2, city, postal_code, province, notes, created_at
                   FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.ProductURL, &o.ExtraInfo, &o.FullName, &o.DNI,
			&o.Email, &o.Phone, &o.AddressLine1, &o.AddressLine2,
			&o.City, &o.PostalCode, &o.Province, &o.Notes, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPersistence, err)
	}
	return result, nil
}
