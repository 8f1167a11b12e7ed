// Package clients implements the client administration use cases.
package clients

import (
	"context"

	"github.com/luizcurti/go-monolith/internal/app/domain/client"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/pkg/logger"
)

// AddInput carries the fields accepted when registering a client. A blank
// ID requests a generated one.
type AddInput struct {
	ID      string
	Name    string
	Email   string
	Address string
}

// Service manages client records.
type Service struct {
	store storage.ClientStore
	log   *logger.Logger
}

// New constructs a client service.
func New(store storage.ClientStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("clients")
	}
	return &Service{store: store, log: log}
}

// Add validates and persists a new client record.
func (s *Service) Add(ctx context.Context, in AddInput) (client.Client, error) {
	c, err := client.New(in.ID, in.Name, in.Email, in.Address)
	if err != nil {
		return client.Client{}, err
	}

	saved, err := s.store.SaveClient(ctx, c)
	if err != nil {
		return client.Client{}, err
	}

	s.log.WithField("client_id", saved.ID).Info("client created")
	return saved, nil
}

// Get retrieves a client by identifier.
func (s *Service) Get(ctx context.Context, id string) (client.Client, error) {
	return s.store.GetClient(ctx, id)
}
