package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"

	"github.com/jackc/pgx/v5"
)

const (
	invoiceCreateSQL = `
		INSERT INTO invoices (merchant_id, customer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	invoiceGetByIDSQL = `
		SELECT id, merchant_id, customer_id, status, created_at, updated_at
		FROM invoices
		WHERE id = $1
	`
	// every invoice left without join rows, not only those touched by the
	// current deletion
	invoiceDeleteEmptySQL = `
		DELETE FROM invoices i
		WHERE NOT EXISTS (
			SELECT 1 FROM invoice_items ii WHERE ii.invoice_id = i.id
		)
		RETURNING i.id
	`
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id int64) (*models.Invoice, error)
	DeleteEmpty(ctx context.Context) ([]int64, error)
	WithTx(tx pgx.Tx) InvoiceRepository
}

type invoiceRepo struct {
	db DBTX
}

func NewInvoiceRepo(db DBTX) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) WithTx(tx pgx.Tx) InvoiceRepository {
	return &invoiceRepo{db: tx}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	err := r.db.QueryRow(ctx, invoiceCreateSQL, invoice.MerchantID, invoice.CustomerID, invoice.Status).
		Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	err := r.db.QueryRow(ctx, invoiceGetByIDSQL, id).
		Scan(&invoice.ID, &invoice.MerchantID, &invoice.CustomerID, &invoice.Status, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Invoice", id)
		}
		return nil, fmt.Errorf("get invoice %d: %w", id, err)
	}
	return invoice, nil
}

// DeleteEmpty removes invoices that have no invoice items and returns their
// ids. Running it again without new deletions removes nothing.
func (r *invoiceRepo) DeleteEmpty(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, invoiceDeleteEmptySQL)
	if err != nil {
		return nil, fmt.Errorf("delete empty invoices: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("delete empty invoices: %w", err)
	}
	return ids, nil
}
