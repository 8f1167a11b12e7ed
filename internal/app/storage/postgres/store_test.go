package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/luizcurti/go-monolith/internal/app/domain/client"
	"github.com/luizcurti/go-monolith/internal/app/domain/payment"
	"github.com/luizcurti/go-monolith/internal/app/storage"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestSaveClientMapsUniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "clients_email_key"})

	_, err := store.SaveClient(context.Background(), client.Client{
		ID: "c1", Name: "Alice", Email: "alice@example.com", Address: "a",
	})
	if !errors.Is(err, storage.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveClientKeepsStoredCreationTime(t *testing.T) {
	store, mock := newMockStore(t)

	original := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO clients").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(original))

	saved, err := store.SaveClient(context.Background(), client.Client{
		ID: "c1", Name: "Alice", Email: "alice@example.com", Address: "a",
	})
	if err != nil {
		t.Fatalf("save client: %v", err)
	}
	if !saved.CreatedAt.Equal(original) {
		t.Fatalf("expected stored creation time %v, got %v", original, saved.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetClientMapsNoRowsToNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, name, email, address, created_at, updated_at").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetClient(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCatalogItemReadsNarrowColumnSet(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "sales_price"}).
		AddRow("p1", "Widget", "A widget", 25.0)
	mock.ExpectQuery("SELECT id, name, description, sales_price").
		WithArgs("p1").
		WillReturnRows(rows)

	item, err := store.GetCatalogItem(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get catalog item: %v", err)
	}
	if item.SalesPrice != 25 {
		t.Fatalf("expected sales price 25, got %v", item.SalesPrice)
	}
}

func TestSaveTransactionPersistsFinalStatus(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs("t1", "o1", 150.0, "approved", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()))

	tx := payment.Transaction{ID: "t1", OrderID: "o1", Amount: 150, Status: payment.StatusApproved}
	saved, err := store.SaveTransaction(context.Background(), tx)
	if err != nil {
		t.Fatalf("save transaction: %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStoreIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := New(db)
	ctx := context.Background()

	c, err := store.SaveClient(ctx, client.Client{
		Name:    "Integration",
		Email:   "integration-" + time.Now().UTC().Format("20060102150405") + "@example.com",
		Address: "Street 1",
	})
	if err != nil {
		t.Fatalf("save client: %v", err)
	}

	got, err := store.GetClient(ctx, c.ID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if got.Email != c.Email {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, c)
	}
}
