package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/luizcurti/go-monolith/internal/app/domain/client"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/internal/app/storage/memory"
)

func TestAddAndGetRoundTrip(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	created, err := svc.Add(ctx, AddInput{Name: "Alice", Email: "alice@example.com", Address: "Street 1"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected id to be generated")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice" || got.Email != "alice@example.com" || got.Address != "Street 1" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAddGeneratesDistinctIDs(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	first, err := svc.Add(ctx, AddInput{Name: "Alice", Email: "alice@example.com", Address: "a"})
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	second, err := svc.Add(ctx, AddInput{Name: "Bob", Email: "bob@example.com", Address: "b"})
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %s", first.ID)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, AddInput{Email: "alice@example.com", Address: "a"}); !errors.Is(err, client.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Add(ctx, AddInput{Name: "Alice", Email: "nope", Address: "a"}); !errors.Is(err, client.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestAddPropagatesDuplicateEmail(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, AddInput{Name: "Alice", Email: "alice@example.com", Address: "a"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := svc.Add(ctx, AddInput{Name: "Impostor", Email: "alice@example.com", Address: "b"})
	if !errors.Is(err, storage.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetMissingClient(t *testing.T) {
	svc := New(memory.New(), nil)
	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
