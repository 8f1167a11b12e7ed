// Package app wires the domain services to their stores.
package app

import (
	"github.com/luizcurti/go-monolith/internal/app/services/catalog"
	"github.com/luizcurti/go-monolith/internal/app/services/clients"
	"github.com/luizcurti/go-monolith/internal/app/services/payments"
	"github.com/luizcurti/go-monolith/internal/app/services/products"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/internal/app/storage/memory"
	"github.com/luizcurti/go-monolith/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to a
// shared in-memory implementation.
type Stores struct {
	Clients      storage.ClientStore
	Products     storage.ProductStore
	Catalog      storage.CatalogStore
	Transactions storage.TransactionStore
}

// Application ties the domain services together. The object graph is built
// explicitly here once; there is no process-wide singleton.
type Application struct {
	log *logger.Logger

	Clients  *clients.Service
	Products *products.Service
	Catalog  *catalog.Service
	Payments *payments.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewDefault("app")
	}

	mem := memory.New()
	if stores.Clients == nil {
		stores.Clients = mem
	}
	if stores.Products == nil {
		stores.Products = mem
	}
	if stores.Catalog == nil {
		stores.Catalog = mem
	}
	if stores.Transactions == nil {
		stores.Transactions = mem
	}

	return &Application{
		log:      log,
		Clients:  clients.New(stores.Clients, log),
		Products: products.New(stores.Products, log),
		Catalog:  catalog.New(stores.Catalog, log),
		Payments: payments.New(stores.Transactions, log),
	}, nil
}
