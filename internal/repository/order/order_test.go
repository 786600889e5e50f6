package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"savage-storefront/internal/domain"
	"savage-storefront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE orders RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate orders: %v", err)
	}
}

func sampleOrder(number, email string) domain.Order {
	return domain.Order{
		OrderNumber:   number,
		CustomerName:  "Raven Kaur",
		CustomerEmail: email,
		CustomerPhone: "+91 98765 43210",
		ShippingAddress: domain.ShippingAddress{
			Street:  "13 Crypt Lane",
			City:    "Mumbai",
			State:   "MH",
			ZipCode: "400001",
			Country: "India",
		},
		Items: []domain.OrderItem{
			{ProductID: "p1", ProductName: "Death Metal Hoodie", Size: "M", Color: "Black", Quantity: 2, Price: 2999},
		},
		TotalAmount:   5998,
		Status:        domain.StatusPending,
		PaymentMethod: "credit_card",
	}
}

func TestPostgres_CreateRoundTrips(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, sampleOrder("ORD-1-AAAAAAAAA", "raven@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected store-assigned id and timestamp, got %+v", created)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	got := orders[0]
	if got.OrderNumber != "ORD-1-AAAAAAAAA" || got.Status != domain.StatusPending {
		t.Fatalf("unexpected order %+v", got)
	}
	if got.ShippingAddress.City != "Mumbai" {
		t.Fatalf("shipping address lost in round trip: %+v", got.ShippingAddress)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("items lost in round trip: %+v", got.Items)
	}
	if got.Notes != "" {
		t.Fatalf("expected empty notes, got %q", got.Notes)
	}
}

func TestPostgres_ListByStatusAndEmail(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	first, err := repo.Create(ctx, sampleOrder("ORD-1-AAAAAAAAA", "raven@example.com"))
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	if _, err := repo.Create(ctx, sampleOrder("ORD-2-BBBBBBBBB", "ghoul@example.com")); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if err := repo.UpdateStatus(ctx, first.ID, domain.StatusShipped); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	shipped, err := repo.ListByStatus(ctx, domain.StatusShipped)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(shipped) != 1 || shipped[0].ID != first.ID {
		t.Fatalf("unexpected shipped orders %+v", shipped)
	}

	byEmail, err := repo.ListByEmail(ctx, "ghoul@example.com")
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].OrderNumber != "ORD-2-BBBBBBBBB" {
		t.Fatalf("unexpected orders by email %+v", byEmail)
	}

	none, err := repo.ListByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("ListByEmail empty: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no orders, got %+v", none)
	}
}

func TestPostgres_UpdateStatusLastWriteWins(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, sampleOrder("ORD-1-AAAAAAAAA", "raven@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Any sequence of writes is accepted, including moving backwards.
	for _, status := range []domain.OrderStatus{domain.StatusDelivered, domain.StatusPending, domain.StatusProcessing} {
		if err := repo.UpdateStatus(ctx, created.ID, status); err != nil {
			t.Fatalf("UpdateStatus %s: %v", status, err)
		}
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if orders[0].Status != domain.StatusProcessing {
		t.Fatalf("expected last written status, got %s", orders[0].Status)
	}
}

func TestPostgres_UpdateStatusMissingOrder(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	err := repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", domain.StatusShipped)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
