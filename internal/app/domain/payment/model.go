// Package payment holds the payment transaction entity and the approval
// rule applied to it.
package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luizcurti/go-monolith/internal/app/domain"
)

// Status is the lifecycle state of a transaction. Transitions only move
// forward from pending, via Approve or Decline.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// ApprovalThreshold is the minimum amount that is automatically approved.
// Exactly this amount is approved.
const ApprovalThreshold = 100

var (
	ErrOrderIDRequired = domain.InvalidError("orderId is required")
	ErrInvalidAmount   = domain.InvalidError("amount must be greater than 0")
	ErrFinalized       = domain.InvalidError("transaction is already finalized")
)

// Transaction is a payment decision record. It is created pending, decided
// in memory, and persisted once in its final state.
type Transaction struct {
	ID        string
	OrderID   string
	Amount    float64
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction constructs a pending transaction, generating an identifier
// when none is supplied.
func NewTransaction(id, orderID string, amount float64) (Transaction, error) {
	orderID = strings.TrimSpace(orderID)

	if orderID == "" {
		return Transaction{}, ErrOrderIDRequired
	}
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if id == "" {
		id = uuid.NewString()
	}

	return Transaction{
		ID:      id,
		OrderID: orderID,
		Amount:  amount,
		Status:  StatusPending,
	}, nil
}

// Approve moves a pending transaction to approved.
func (t *Transaction) Approve() error {
	if t.Status != StatusPending {
		return ErrFinalized
	}
	t.Status = StatusApproved
	return nil
}

// Decline moves a pending transaction to declined.
func (t *Transaction) Decline() error {
	if t.Status != StatusPending {
		return ErrFinalized
	}
	t.Status = StatusDeclined
	return nil
}

// Process applies the approval rule: amounts of at least ApprovalThreshold
// are approved, everything below is declined.
func (t *Transaction) Process() error {
	if t.Amount >= ApprovalThreshold {
		return t.Approve()
	}
	return t.Decline()
}
