// Package catalog implements the read-only storefront use cases.
package catalog

import (
	"context"

	"github.com/luizcurti/go-monolith/internal/app/domain/product"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/pkg/logger"
)

// Service reads the storefront projection of the product table.
type Service struct {
	store storage.CatalogStore
	log   *logger.Logger
}

// New constructs a catalog service.
func New(store storage.CatalogStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("catalog")
	}
	return &Service{store: store, log: log}
}

// List returns every catalog item.
func (s *Service) List(ctx context.Context) ([]product.CatalogItem, error) {
	return s.store.ListCatalogItems(ctx)
}

// Get retrieves a single catalog item by identifier.
func (s *Service) Get(ctx context.Context, id string) (product.CatalogItem, error) {
	return s.store.GetCatalogItem(ctx, id)
}
