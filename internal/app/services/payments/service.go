// Package payments implements the payment approval use case.
package payments

import (
	"context"

	"github.com/luizcurti/go-monolith/internal/app/domain/payment"
	"github.com/luizcurti/go-monolith/internal/app/metrics"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/pkg/logger"
)

// Service decides and records payment transactions.
type Service struct {
	store storage.TransactionStore
	log   *logger.Logger
}

// New constructs a payment service.
func New(store storage.TransactionStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("payments")
	}
	return &Service{store: store, log: log}
}

// Process builds a pending transaction, applies the approval rule in
// memory, and persists the transaction once in its final state. The
// pending state is never written to the store.
func (s *Service) Process(ctx context.Context, orderID string, amount float64) (payment.Transaction, error) {
	tx, err := payment.NewTransaction("", orderID, amount)
	if err != nil {
		return payment.Transaction{}, err
	}

	if err := tx.Process(); err != nil {
		return payment.Transaction{}, err
	}

	saved, err := s.store.SaveTransaction(ctx, tx)
	if err != nil {
		return payment.Transaction{}, err
	}

	metrics.RecordPayment(string(saved.Status))
	s.log.WithField("transaction_id", saved.ID).
		WithField("order_id", saved.OrderID).
		WithField("status", saved.Status).
		Info("payment processed")
	return saved, nil
}

// Get retrieves a transaction by identifier.
func (s *Service) Get(ctx context.Context, id string) (payment.Transaction, error) {
	return s.store.GetTransaction(ctx, id)
}
