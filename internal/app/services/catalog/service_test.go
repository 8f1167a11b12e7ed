package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/luizcurti/go-monolith/internal/app/domain/product"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/internal/app/storage/memory"
)

func TestListReflectsStoredProducts(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)
	ctx := context.Background()

	p, err := store.SaveProduct(ctx, product.Product{
		Name:          "Widget",
		Description:   "A widget",
		PurchasePrice: 10,
		SalesPrice:    25,
		Stock:         3,
	})
	if err != nil {
		t.Fatalf("save product: %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != p.ID || items[0].SalesPrice != 25 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestGetMissingItem(t *testing.T) {
	svc := New(memory.New(), nil)
	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
