// Package products implements the inventory administration use cases.
package products

import (
	"context"

	"github.com/luizcurti/go-monolith/internal/app/domain/product"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/pkg/logger"
)

// AddInput carries the fields accepted when registering a product. A zero
// SalesPrice defaults to the purchase price.
type AddInput struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice float64
	SalesPrice    float64
	Stock         int
}

// Service manages inventory products.
type Service struct {
	store storage.ProductStore
	log   *logger.Logger
}

// New constructs a product service.
func New(store storage.ProductStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("products")
	}
	return &Service{store: store, log: log}
}

// Add validates and persists a new product.
func (s *Service) Add(ctx context.Context, in AddInput) (product.Product, error) {
	p, err := product.New(in.ID, in.Name, in.Description, in.PurchasePrice, in.SalesPrice, in.Stock)
	if err != nil {
		return product.Product{}, err
	}

	saved, err := s.store.SaveProduct(ctx, p)
	if err != nil {
		return product.Product{}, err
	}

	s.log.WithField("product_id", saved.ID).
		WithField("stock", saved.Stock).
		Info("product created")
	return saved, nil
}

// CheckStock returns the stock level of a product.
func (s *Service) CheckStock(ctx context.Context, id string) (product.StockLevel, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return product.StockLevel{}, err
	}
	return product.StockLevel{ProductID: p.ID, Stock: p.Stock}, nil
}
