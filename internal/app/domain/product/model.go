// Package product holds the inventory entity and its storefront projection.
package product

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luizcurti/go-monolith/internal/app/domain"
)

var (
	ErrNameRequired         = domain.InvalidError("name is required")
	ErrDescriptionRequired  = domain.InvalidError("description is required")
	ErrInvalidPurchasePrice = domain.InvalidError("purchasePrice must be greater than 0")
	ErrInvalidSalesPrice    = domain.InvalidError("salesPrice must be greater than or equal to 0")
	ErrInvalidStock         = domain.InvalidError("stock must be greater than or equal to 0")
)

// Product is the administration view of an inventory item. The storefront
// sees the same row through CatalogItem.
type Product struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice float64
	SalesPrice    float64
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CatalogItem is the read-only storefront projection of a product row. It
// never carries the purchase price.
type CatalogItem struct {
	ID          string
	Name        string
	Description string
	SalesPrice  float64
}

// StockLevel is the stock-check projection of a product row.
type StockLevel struct {
	ProductID string
	Stock     int
}

// New constructs a product, generating an identifier when none is supplied.
// A zero sales price defaults to the purchase price.
func New(id, name, description string, purchasePrice, salesPrice float64, stock int) (Product, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return Product{}, ErrNameRequired
	}
	if description == "" {
		return Product{}, ErrDescriptionRequired
	}
	if purchasePrice <= 0 {
		return Product{}, ErrInvalidPurchasePrice
	}
	if salesPrice < 0 {
		return Product{}, ErrInvalidSalesPrice
	}
	if stock < 0 {
		return Product{}, ErrInvalidStock
	}
	if salesPrice == 0 {
		salesPrice = purchasePrice
	}
	if id == "" {
		id = uuid.NewString()
	}

	return Product{
		ID:            id,
		Name:          name,
		Description:   description,
		PurchasePrice: purchasePrice,
		SalesPrice:    salesPrice,
		Stock:         stock,
	}, nil
}

// Catalog returns the storefront projection of the product.
func (p Product) Catalog() CatalogItem {
	return CatalogItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SalesPrice:  p.SalesPrice,
	}
}
