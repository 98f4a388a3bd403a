package common

import (
	"strconv"

	"github.com/amikaross/rails-engine/internal/models"
)

// Resource is the {id, type, attributes} shape every entity is rendered in
type Resource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

type ItemAttributes struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	MerchantID  int64   `json:"merchant_id"`
}

type MerchantAttributes struct {
	Name string `json:"name"`
}

type InvoiceAttributes struct {
	MerchantID   int64      `json:"merchant_id"`
	CustomerID   int64      `json:"customer_id"`
	Status       string     `json:"status"`
	InvoiceItems []Resource `json:"invoice_items"`
}

type InvoiceItemAttributes struct {
	ItemID    int64   `json:"item_id"`
	InvoiceID int64   `json:"invoice_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func ItemResource(item *models.Item) Resource {
	return Resource{
		ID:   strconv.FormatInt(item.ID, 10),
		Type: "item",
		Attributes: ItemAttributes{
			Name:        item.Name,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			MerchantID:  item.MerchantID,
		},
	}
}

func MerchantResource(merchant *models.Merchant) Resource {
	return Resource{
		ID:         strconv.FormatInt(merchant.ID, 10),
		Type:       "merchant",
		Attributes: MerchantAttributes{Name: merchant.Name},
	}
}

// InvoiceResource embeds the invoice's items in its attributes
func InvoiceResource(invoice *models.Invoice, invoiceItems []*models.InvoiceItem) Resource {
	embedded := make([]Resource, 0, len(invoiceItems))
	for _, invoiceItem := range invoiceItems {
		embedded = append(embedded, InvoiceItemResource(invoiceItem))
	}
	return Resource{
		ID:   strconv.FormatInt(invoice.ID, 10),
		Type: "invoice",
		Attributes: InvoiceAttributes{
			MerchantID:   invoice.MerchantID,
			CustomerID:   invoice.CustomerID,
			Status:       invoice.Status,
			InvoiceItems: embedded,
		},
	}
}

func InvoiceItemResource(invoiceItem *models.InvoiceItem) Resource {
	return Resource{
		ID:   strconv.FormatInt(invoiceItem.ID, 10),
		Type: "invoice_item",
		Attributes: InvoiceItemAttributes{
			ItemID:    invoiceItem.ItemID,
			InvoiceID: invoiceItem.InvoiceID,
			Quantity:  invoiceItem.Quantity,
			UnitPrice: invoiceItem.UnitPrice,
		},
	}
}

// SerializeItems always yields a non-nil slice so empty collections render as []
func SerializeItems(items []*models.Item) DataResponse {
	data := make([]Resource, 0, len(items))
	for _, item := range items {
		data = append(data, ItemResource(item))
	}
	return DataResponse{Data: data}
}

func SerializeMerchants(merchants []*models.Merchant) DataResponse {
	data := make([]Resource, 0, len(merchants))
	for _, merchant := range merchants {
		data = append(data, MerchantResource(merchant))
	}
	return DataResponse{Data: data}
}

func SerializeItem(item *models.Item) DataResponse {
	return DataResponse{Data: ItemResource(item)}
}

func SerializeMerchant(merchant *models.Merchant) DataResponse {
	return DataResponse{Data: MerchantResource(merchant)}
}

func SerializeInvoice(invoice *models.Invoice, invoiceItems []*models.InvoiceItem) DataResponse {
	return DataResponse{Data: InvoiceResource(invoice, invoiceItems)}
}

func SerializeInvoiceItem(invoiceItem *models.InvoiceItem) DataResponse {
	return DataResponse{Data: InvoiceItemResource(invoiceItem)}
}
