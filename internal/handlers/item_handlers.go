package handlers

import (
	"net/http"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// ItemHandlers handles HTTP requests for items
type ItemHandlers struct {
	itemService services.ItemService
}

// NewItemHandlers creates a new item handlers instance
func NewItemHandlers(itemService services.ItemService) *ItemHandlers {
	return &ItemHandlers{itemService: itemService}
}

// ItemRequest is the body of item create and update requests
type ItemRequest struct {
	Item *models.ItemUpdate `json:"item"`
}

func (h *ItemHandlers) bindItem(c echo.Context) (*models.ItemUpdate, error) {
	var req ItemRequest
	if err := bindBody(c, &req); err != nil {
		return nil, err
	}
	if req.Item == nil {
		return nil, common.NewMissingAttributesError(missingParamMessage + "item")
	}
	return req.Item, nil
}

// ListItems godoc
// @Summary      List items
// @Description  Lists every item, or the items of one merchant when merchant_id names an existing merchant
// @Tags         items
// @Produce      json
// @Param        merchant_id  query     string  false  "Merchant id"
// @Success      200          {object}  common.DataResponse
// @Router       /items [get]
func (h *ItemHandlers) ListItems(c echo.Context) error {
	items, err := h.itemService.List(c.Request().Context(), c.QueryParam("merchant_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeItems(items))
}

// GetItem godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  common.DataResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /items/{id} [get]
func (h *ItemHandlers) GetItem(c echo.Context) error {
	id, err := pathID(c, "id", "Item")
	if err != nil {
		return err
	}
	item, err := h.itemService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeItem(item))
}

// CreateItem godoc
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      ItemRequest  true  "Item attributes"
// @Success      201   {object}  common.DataResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      404   {object}  common.ErrorResponse
// @Router       /items [post]
func (h *ItemHandlers) CreateItem(c echo.Context) error {
	attrs, err := h.bindItem(c)
	if err != nil {
		return err
	}
	item, err := h.itemService.Create(c.Request().Context(), attrs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, common.SerializeItem(item))
}

// UpdateItem godoc
// @Summary      Update an item
// @Description  Changes only the attributes present in the body
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Item id"
// @Param        body  body      ItemRequest  true  "Item attributes"
// @Success      200   {object}  common.DataResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      404   {object}  common.ErrorResponse
// @Router       /items/{id} [patch]
func (h *ItemHandlers) UpdateItem(c echo.Context) error {
	id, err := pathID(c, "id", "Item")
	if err != nil {
		return err
	}
	attrs, err := h.bindItem(c)
	if err != nil {
		return err
	}
	item, err := h.itemService.Update(c.Request().Context(), id, attrs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeItem(item))
}

// DeleteItem godoc
// @Summary      Delete an item
// @Description  Deletes the item with its invoice items, then every invoice left without items
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  common.DataResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandlers) DeleteItem(c echo.Context) error {
	id, err := pathID(c, "id", "Item")
	if err != nil {
		return err
	}
	result, err := h.itemService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeItem(result.Item))
}

// GetItemMerchant godoc
// @Summary      Get the merchant of an item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  common.DataResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /items/{id}/merchant [get]
func (h *ItemHandlers) GetItemMerchant(c echo.Context) error {
	id, err := pathID(c, "id", "Item")
	if err != nil {
		return err
	}
	merchant, err := h.itemService.Merchant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeMerchant(merchant))
}
