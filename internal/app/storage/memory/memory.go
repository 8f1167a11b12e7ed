// Package memory provides an in-memory implementation of the storage
// interfaces. It is safe for concurrent use and is primarily intended for
// tests and local development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luizcurti/go-monolith/internal/app/domain/client"
	"github.com/luizcurti/go-monolith/internal/app/domain/payment"
	"github.com/luizcurti/go-monolith/internal/app/domain/product"
	"github.com/luizcurti/go-monolith/internal/app/storage"
)

// Store holds all entities in maps guarded by a single RWMutex.
type Store struct {
	mu             sync.RWMutex
	clients        map[string]client.Client
	clientsByEmail map[string]string
	products       map[string]product.Product
	transactions   map[string]payment.Transaction
}

var _ storage.ClientStore = (*Store)(nil)
var _ storage.ProductStore = (*Store)(nil)
var _ storage.CatalogStore = (*Store)(nil)
var _ storage.TransactionStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		clients:        make(map[string]client.Client),
		clientsByEmail: make(map[string]string),
		products:       make(map[string]product.Product),
		transactions:   make(map[string]payment.Transaction),
	}
}

// ClientStore implementation -------------------------------------------------

func (s *Store) SaveClient(_ context.Context, c client.Client) (client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if ownerID, taken := s.clientsByEmail[c.Email]; taken && ownerID != c.ID {
		return client.Client{}, fmt.Errorf("client email %s: %w", c.Email, storage.ErrDuplicateEmail)
	}

	now := time.Now().UTC()
	if existing, ok := s.clients[c.ID]; ok {
		c.CreatedAt = existing.CreatedAt
		delete(s.clientsByEmail, existing.Email)
	} else {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	s.clients[c.ID] = c
	s.clientsByEmail[c.Email] = c.ID
	return c, nil
}

func (s *Store) GetClient(_ context.Context, id string) (client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return client.Client{}, fmt.Errorf("client %s: %w", id, storage.ErrNotFound)
	}
	return c, nil
}

func (s *Store) ListClients(_ context.Context) ([]client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]client.Client, 0, len(s.clients))
	for _, c := range s.clients {
		result = append(result, c)
	}
	sortByCreation(result, func(c client.Client) time.Time { return c.CreatedAt })
	return result, nil
}

// ProductStore implementation ------------------------------------------------

func (s *Store) SaveProduct(_ context.Context, p product.Product) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	if existing, ok := s.products[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.products[p.ID] = p
	return p, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return product.Product{}, fmt.Errorf("product %s: %w", id, storage.ErrNotFound)
	}
	return p, nil
}

func (s *Store) ListProducts(_ context.Context) ([]product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	sortByCreation(result, func(p product.Product) time.Time { return p.CreatedAt })
	return result, nil
}

// CatalogStore implementation ------------------------------------------------

func (s *Store) GetCatalogItem(ctx context.Context, id string) (product.CatalogItem, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return product.CatalogItem{}, err
	}
	return p.Catalog(), nil
}

func (s *Store) ListCatalogItems(ctx context.Context) ([]product.CatalogItem, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]product.CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, p.Catalog())
	}
	return items, nil
}

// TransactionStore implementation --------------------------------------------

func (s *Store) SaveTransaction(_ context.Context, tx payment.Transaction) (payment.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	if existing, ok := s.transactions[tx.ID]; ok {
		tx.CreatedAt = existing.CreatedAt
	} else {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	s.transactions[tx.ID] = tx
	return tx, nil
}

func (s *Store) GetTransaction(_ context.Context, id string) (payment.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return payment.Transaction{}, fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
	}
	return tx, nil
}

func (s *Store) ListTransactions(_ context.Context) ([]payment.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]payment.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		result = append(result, tx)
	}
	sortByCreation(result, func(tx payment.Transaction) time.Time { return tx.CreatedAt })
	return result, nil
}

func sortByCreation[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
}
