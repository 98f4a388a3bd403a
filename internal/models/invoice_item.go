package models

import "time"

// InvoiceItem joins one invoice to one item; UnitPrice is the price at sale time
type InvoiceItem struct {
	ID        int64     `json:"id" db:"id"`
	ItemID    int64     `json:"item_id" db:"item_id"`
	InvoiceID int64     `json:"invoice_id" db:"invoice_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type InvoiceItemInput struct {
	ItemID   *int64 `json:"item_id"`
	Quantity *int   `json:"quantity"`
}
