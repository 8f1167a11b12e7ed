// Package storage defines the persistence contracts for the domain
// entities, plus the error kinds the implementations share.
package storage

import (
	"context"
	"errors"

	"github.com/luizcurti/go-monolith/internal/app/domain/client"
	"github.com/luizcurti/go-monolith/internal/app/domain/payment"
	"github.com/luizcurti/go-monolith/internal/app/domain/product"
)

var (
	// ErrNotFound signals a lookup miss. Callers translate it into a 404
	// instead of matching on message text.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail signals a violated client email uniqueness
	// invariant, which is enforced at the storage boundary.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ClientStore persists client records. Save is an upsert keyed by ID.
type ClientStore interface {
	SaveClient(ctx context.Context, c client.Client) (client.Client, error)
	GetClient(ctx context.Context, id string) (client.Client, error)
	ListClients(ctx context.Context) ([]client.Client, error)
}

// ProductStore persists inventory products.
type ProductStore interface {
	SaveProduct(ctx context.Context, p product.Product) (product.Product, error)
	GetProduct(ctx context.Context, id string) (product.Product, error)
	ListProducts(ctx context.Context) ([]product.Product, error)
}

// CatalogStore reads the storefront projection over the products table.
type CatalogStore interface {
	GetCatalogItem(ctx context.Context, id string) (product.CatalogItem, error)
	ListCatalogItems(ctx context.Context) ([]product.CatalogItem, error)
}

// TransactionStore persists payment transactions.
type TransactionStore interface {
	SaveTransaction(ctx context.Context, tx payment.Transaction) (payment.Transaction, error)
	GetTransaction(ctx context.Context, id string) (payment.Transaction, error)
	ListTransactions(ctx context.Context) ([]payment.Transaction, error)
}
