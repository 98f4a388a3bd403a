package handlers

import (
	"net/http"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// InvoiceHandlers handles invoice related HTTP requests
type InvoiceHandlers struct {
	invoiceService services.InvoiceServiceInterface
}

// NewInvoiceHandlers creates a new invoice handlers instance
func NewInvoiceHandlers(invoiceService services.InvoiceServiceInterface) *InvoiceHandlers {
	return &InvoiceHandlers{invoiceService: invoiceService}
}

type InvoiceRequest struct {
	Invoice *models.InvoiceInput `json:"invoice"`
}

type InvoiceItemRequest struct {
	InvoiceItem *models.InvoiceItemInput `json:"invoice_item"`
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Creates an invoice together with at least one invoice item; item prices are recorded at creation
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      InvoiceRequest  true  "Invoice attributes"
// @Success      201   {object}  common.DataResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      404   {object}  common.ErrorResponse
// @Router       /invoices [post]
func (h *InvoiceHandlers) CreateInvoice(c echo.Context) error {
	var req InvoiceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Invoice == nil {
		return common.NewMissingAttributesError(missingParamMessage + "invoice")
	}

	invoice, invoiceItems, err := h.invoiceService.Create(c.Request().Context(), req.Invoice)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, common.SerializeInvoice(invoice, invoiceItems))
}

// GetInvoice godoc
// @Summary      Get an invoice with its items
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  common.DataResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandlers) GetInvoice(c echo.Context) error {
	id, err := pathID(c, "id", "Invoice")
	if err != nil {
		return err
	}
	invoice, invoiceItems, err := h.invoiceService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeInvoice(invoice, invoiceItems))
}

// AddInvoiceItem godoc
// @Summary      Add an item to an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Invoice id"
// @Param        body  body      InvoiceItemRequest  true  "Invoice item attributes"
// @Success      201   {object}  common.DataResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      404   {object}  common.ErrorResponse
// @Router       /invoices/{id}/items [post]
func (h *InvoiceHandlers) AddInvoiceItem(c echo.Context) error {
	id, err := pathID(c, "id", "Invoice")
	if err != nil {
		return err
	}
	var req InvoiceItemRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.InvoiceItem == nil {
		return common.NewMissingAttributesError(missingParamMessage + "invoice_item")
	}

	invoiceItem, err := h.invoiceService.AddItem(c.Request().Context(), id, req.InvoiceItem)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, common.SerializeInvoiceItem(invoiceItem))
}
