package handlers

import "github.com/labstack/echo/v4"

// RegisterAPIRoutes mounts the item, merchant, search and invoice routes on
// a versioned group
func RegisterAPIRoutes(api *echo.Group, items *ItemHandlers, merchants *MerchantHandlers, searches *SearchHandlers, invoices *InvoiceHandlers) {
	api.GET("/items/find", searches.FindItem)
	api.GET("/items/find_all", searches.FindAllItems)
	api.GET("/items", items.ListItems)
	api.POST("/items", items.CreateItem)
	api.GET("/items/:id", items.GetItem)
	api.PATCH("/items/:id", items.UpdateItem)
	api.PUT("/items/:id", items.UpdateItem)
	api.DELETE("/items/:id", items.DeleteItem)
	api.GET("/items/:id/merchant", items.GetItemMerchant)

	api.GET("/merchants/find", searches.FindMerchant)
	api.GET("/merchants/find_all", searches.FindAllMerchants)
	api.GET("/merchants", merchants.ListMerchants)
	api.GET("/merchants/:id", merchants.GetMerchant)
	api.GET("/merchants/:id/items", merchants.ListMerchantItems)

	api.POST("/invoices", invoices.CreateInvoice)
	api.GET("/invoices/:id", invoices.GetInvoice)
	api.POST("/invoices/:id/items", invoices.AddInvoiceItem)
}
