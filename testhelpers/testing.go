package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/amikaross/rails-engine/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the table layout the repositories expect
const Schema = `
CREATE TABLE IF NOT EXISTS merchants (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS items (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL,
	unit_price   DOUBLE PRECISION NOT NULL,
	merchant_id  BIGINT NOT NULL REFERENCES merchants(id),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS invoices (
	id           BIGSERIAL PRIMARY KEY,
	merchant_id  BIGINT NOT NULL REFERENCES merchants(id),
	customer_id  BIGINT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'shipped',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS invoice_items (
	id          BIGSERIAL PRIMARY KEY,
	item_id     BIGINT NOT NULL REFERENCES items(id),
	invoice_id  BIGINT NOT NULL REFERENCES invoices(id),
	quantity    INTEGER NOT NULL,
	unit_price  DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS index_items_on_merchant_id ON items (merchant_id);
CREATE INDEX IF NOT EXISTS index_invoice_items_on_item_id ON invoice_items (item_id);
CREATE INDEX IF NOT EXISTS index_invoice_items_on_invoice_id ON invoice_items (invoice_id);
`

const truncateSQL = `TRUNCATE invoice_items, invoices, items, merchants RESTART IDENTITY`

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB connects to TEST_DATABASE_URL, creates the schema and empties
// every table. The test is skipped when no database is configured.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if _, err := pool.Exec(ctx, Schema); err != nil {
		pool.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}
	if _, err := pool.Exec(ctx, truncateSQL); err != nil {
		pool.Close()
		t.Fatalf("Failed to reset tables: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// SeedMerchant inserts a merchant
func SeedMerchant(t *testing.T, db *TestDB, name string) *models.Merchant {
	t.Helper()

	merchant := &models.Merchant{Name: name}
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO merchants (name) VALUES ($1) RETURNING id, created_at, updated_at`, name).
		Scan(&merchant.ID, &merchant.CreatedAt, &merchant.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test merchant: %v", err)
	}
	return merchant
}

// SeedItem inserts an item owned by merchantID
func SeedItem(t *testing.T, db *TestDB, merchantID int64, name string, unitPrice float64) *models.Item {
	t.Helper()

	item := &models.Item{Name: name, Description: name + " description", UnitPrice: unitPrice, MerchantID: merchantID}
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO items (name, description, unit_price, merchant_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		item.Name, item.Description, item.UnitPrice, item.MerchantID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item
}

// SeedInvoice inserts an invoice with one invoice item per given item
func SeedInvoice(t *testing.T, db *TestDB, merchantID int64, items ...*models.Item) *models.Invoice {
	t.Helper()

	ctx := context.Background()
	invoice := &models.Invoice{MerchantID: merchantID, CustomerID: 1, Status: models.DefaultInvoiceStatus}
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO invoices (merchant_id, customer_id, status) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		invoice.MerchantID, invoice.CustomerID, invoice.Status).
		Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test invoice: %v", err)
	}

	for _, item := range items {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO invoice_items (item_id, invoice_id, quantity, unit_price) VALUES ($1, $2, 1, $3)`,
			item.ID, invoice.ID, item.UnitPrice)
		if err != nil {
			t.Fatalf("Failed to create test invoice item: %v", err)
		}
	}
	return invoice
}

// CountInvoices reports how many of the given invoices still exist
func CountInvoices(t *testing.T, db *TestDB, ids ...int64) int {
	t.Helper()

	var count int
	err := db.Pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE id = ANY($1)`, ids).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count invoices: %v", err)
	}
	return count
}
