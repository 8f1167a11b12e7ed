// Package client holds the client record entity.
package client

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luizcurti/go-monolith/internal/app/domain"
)

var (
	ErrNameRequired    = domain.InvalidError("name is required")
	ErrAddressRequired = domain.InvalidError("address is required")
	ErrInvalidEmail    = domain.InvalidError("email is invalid")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Client is a customer record. Records are immutable after creation; the
// email uniqueness invariant is enforced at the storage boundary.
type Client struct {
	ID        string
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New constructs a client, generating an identifier when none is supplied.
func New(id, name, email, address string) (Client, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	address = strings.TrimSpace(address)

	if name == "" {
		return Client{}, ErrNameRequired
	}
	if !emailPattern.MatchString(email) {
		return Client{}, ErrInvalidEmail
	}
	if address == "" {
		return Client{}, ErrAddressRequired
	}
	if id == "" {
		id = uuid.NewString()
	}

	return Client{
		ID:      id,
		Name:    name,
		Email:   email,
		Address: address,
	}, nil
}
