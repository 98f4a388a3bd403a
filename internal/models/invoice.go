package models

import "time"

const DefaultInvoiceStatus = "shipped"

type Invoice struct {
	ID         int64     `json:"id" db:"id"`
	MerchantID int64     `json:"merchant_id" db:"merchant_id"`
	CustomerID int64     `json:"customer_id" db:"customer_id"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// InvoiceInput is the payload for creating an invoice; nil means not given
type InvoiceInput struct {
	MerchantID *int64             `json:"merchant_id"`
	CustomerID *int64             `json:"customer_id"`
	Status     *string            `json:"status"`
	Items      []InvoiceItemInput `json:"items"`
}
