package repositories

import (
	"context"
	"fmt"

	"github.com/amikaross/rails-engine/internal/models"

	"github.com/jackc/pgx/v5"
)

const (
	invoiceItemCreateSQL = `
		INSERT INTO invoice_items (item_id, invoice_id, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	invoiceItemDeleteByItemSQL = `DELETE FROM invoice_items WHERE item_id = $1`
	invoiceItemListByInvoiceSQL = `
		SELECT id, item_id, invoice_id, quantity, unit_price, created_at, updated_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`
)

type InvoiceItemRepository interface {
	Create(ctx context.Context, invoiceItem *models.InvoiceItem) error
	DeleteByItemID(ctx context.Context, itemID int64) (int64, error)
	ListByInvoiceID(ctx context.Context, invoiceID int64) ([]*models.InvoiceItem, error)
	WithTx(tx pgx.Tx) InvoiceItemRepository
}

type invoiceItemRepo struct {
	db DBTX
}

func NewInvoiceItemRepo(db DBTX) InvoiceItemRepository {
	return &invoiceItemRepo{db: db}
}

func (r *invoiceItemRepo) WithTx(tx pgx.Tx) InvoiceItemRepository {
	return &invoiceItemRepo{db: tx}
}

func (r *invoiceItemRepo) Create(ctx context.Context, invoiceItem *models.InvoiceItem) error {
	err := r.db.QueryRow(ctx, invoiceItemCreateSQL, invoiceItem.ItemID, invoiceItem.InvoiceID, invoiceItem.Quantity, invoiceItem.UnitPrice).
		Scan(&invoiceItem.ID, &invoiceItem.CreatedAt, &invoiceItem.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create invoice item: %w", err)
	}
	return nil
}

// DeleteByItemID removes every join row of an item and reports how many went
func (r *invoiceItemRepo) DeleteByItemID(ctx context.Context, itemID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, invoiceItemDeleteByItemSQL, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete invoice items of item %d: %w", itemID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *invoiceItemRepo) ListByInvoiceID(ctx context.Context, invoiceID int64) ([]*models.InvoiceItem, error) {
	rows, err := r.db.Query(ctx, invoiceItemListByInvoiceSQL, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoiceItems := []*models.InvoiceItem{}
	for rows.Next() {
		ii := &models.InvoiceItem{}
		if err := rows.Scan(&ii.ID, &ii.ItemID, &ii.InvoiceID, &ii.Quantity, &ii.UnitPrice, &ii.CreatedAt, &ii.UpdatedAt); err != nil {
			return nil, err
		}
		invoiceItems = append(invoiceItems, ii)
	}
	return invoiceItems, rows.Err()
}
