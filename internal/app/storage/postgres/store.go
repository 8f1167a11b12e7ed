// Package postgres implements the storage interfaces backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/luizcurti/go-monolith/internal/app/domain/client"
	"github.com/luizcurti/go-monolith/internal/app/domain/payment"
	"github.com/luizcurti/go-monolith/internal/app/domain/product"
	"github.com/luizcurti/go-monolith/internal/app/storage"
)

// Store implements the storage interfaces over a database handle.
type Store struct {
	db *sql.DB
}

var _ storage.ClientStore = (*Store)(nil)
var _ storage.ProductStore = (*Store)(nil)
var _ storage.CatalogStore = (*Store)(nil)
var _ storage.TransactionStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

func translateSaveError(err error, entity, id string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		if strings.Contains(pqErr.Constraint, "email") {
			return fmt.Errorf("%s %s: %w", entity, id, storage.ErrDuplicateEmail)
		}
	}
	return err
}

// --- ClientStore ------------------------------------------------------------

func (s *Store) SaveClient(ctx context.Context, c client.Client) (client.Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	// RETURNING reflects the stored created_at so an upsert over an existing
	// row reports the original creation time, matching the memory store.
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO clients (id, name, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, address = EXCLUDED.address, updated_at = EXCLUDED.updated_at
		RETURNING created_at
	`, c.ID, c.Name, c.Email, c.Address, c.CreatedAt, c.UpdatedAt)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return client.Client{}, translateSaveError(err, "client", c.ID)
	}
	return c, nil
}

func (s *Store) GetClient(ctx context.Context, id string) (client.Client, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, address, created_at, updated_at
		FROM clients
		WHERE id = $1
	`, id)

	var c client.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return client.Client{}, fmt.Errorf("client %s: %w", id, storage.ErrNotFound)
		}
		return client.Client{}, err
	}
	return c, nil
}

func (s *Store) ListClients(ctx context.Context) ([]client.Client, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, address, created_at, updated_at
		FROM clients
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// --- ProductStore -----------------------------------------------------------

func (s *Store) SaveProduct(ctx context.Context, p product.Product) (product.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO products (id, name, description, purchase_price, sales_price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description, purchase_price = EXCLUDED.purchase_price,
		    sales_price = EXCLUDED.sales_price, stock = EXCLUDED.stock, updated_at = EXCLUDED.updated_at
		RETURNING created_at
	`, p.ID, p.Name, p.Description, p.PurchasePrice, p.SalesPrice, p.Stock, p.CreatedAt, p.UpdatedAt)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (product.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, purchase_price, sales_price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id)

	var p product.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PurchasePrice, &p.SalesPrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product.Product{}, fmt.Errorf("product %s: %w", id, storage.ErrNotFound)
		}
		return product.Product{}, err
	}
	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]product.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, purchase_price, sales_price, stock, created_at, updated_at
		FROM products
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PurchasePrice, &p.SalesPrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// --- CatalogStore -----------------------------------------------------------

// The catalog reads the same products table through a narrower column set;
// the purchase price never leaves the database here.

func (s *Store) GetCatalogItem(ctx context.Context, id string) (product.CatalogItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, sales_price
		FROM products
		WHERE id = $1
	`, id)

	var item product.CatalogItem
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.SalesPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product.CatalogItem{}, fmt.Errorf("product %s: %w", id, storage.ErrNotFound)
		}
		return product.CatalogItem{}, err
	}
	return item, nil
}

func (s *Store) ListCatalogItems(ctx context.Context) ([]product.CatalogItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, sales_price
		FROM products
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []product.CatalogItem
	for rows.Next() {
		var item product.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.SalesPrice); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// --- TransactionStore -------------------------------------------------------

func (s *Store) SaveTransaction(ctx context.Context, tx payment.Transaction) (payment.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO transactions (id, order_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET order_id = EXCLUDED.order_id, amount = EXCLUDED.amount, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
		RETURNING created_at
	`, tx.ID, tx.OrderID, tx.Amount, string(tx.Status), tx.CreatedAt, tx.UpdatedAt)
	if err := row.Scan(&tx.CreatedAt); err != nil {
		return payment.Transaction{}, err
	}
	return tx, nil
}

func (s *Store) GetTransaction(ctx context.Context, id string) (payment.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, order_id, amount, status, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`, id)

	var (
		tx     payment.Transaction
		status string
	)
	if err := row.Scan(&tx.ID, &tx.OrderID, &tx.Amount, &status, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payment.Transaction{}, fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
		}
		return payment.Transaction{}, err
	}
	tx.Status = payment.Status(status)
	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]payment.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, amount, status, created_at, updated_at
		FROM transactions
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []payment.Transaction
	for rows.Next() {
		var (
			tx     payment.Transaction
			status string
		)
		if err := rows.Scan(&tx.ID, &tx.OrderID, &tx.Amount, &status, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, err
		}
		tx.Status = payment.Status(status)
		result = append(result, tx)
	}
	return result, rows.Err()
}
