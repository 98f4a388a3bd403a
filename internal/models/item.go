package models

import "time"

type Item struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	UnitPrice   float64   `json:"unit_price" db:"unit_price"`
	MerchantID  int64     `json:"merchant_id" db:"merchant_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ItemUpdate carries the fields a partial update may change; nil means unchanged
type ItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price"`
	MerchantID  *int64   `json:"merchant_id"`
}

// Apply copies the set fields onto item
func (u *ItemUpdate) Apply(item *Item) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.UnitPrice != nil {
		item.UnitPrice = *u.UnitPrice
	}
	if u.MerchantID != nil {
		item.MerchantID = *u.MerchantID
	}
}
