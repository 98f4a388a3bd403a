package handlers

import (
	"net/http"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// MerchantHandlers handles HTTP requests for merchants
type MerchantHandlers struct {
	merchantService services.MerchantService
	itemService     services.ItemService
}

func NewMerchantHandlers(merchantService services.MerchantService, itemService services.ItemService) *MerchantHandlers {
	return &MerchantHandlers{
		merchantService: merchantService,
		itemService:     itemService,
	}
}

// ListMerchants godoc
// @Summary      List merchants
// @Tags         merchants
// @Produce      json
// @Success      200  {object}  common.DataResponse
// @Router       /merchants [get]
func (h *MerchantHandlers) ListMerchants(c echo.Context) error {
	merchants, err := h.merchantService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeMerchants(merchants))
}

// GetMerchant godoc
// @Summary      Get a merchant
// @Tags         merchants
// @Produce      json
// @Param        id   path      int  true  "Merchant id"
// @Success      200  {object}  common.DataResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /merchants/{id} [get]
func (h *MerchantHandlers) GetMerchant(c echo.Context) error {
	id, err := pathID(c, "id", "Merchant")
	if err != nil {
		return err
	}
	merchant, err := h.merchantService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeMerchant(merchant))
}

// ListMerchantItems godoc
// @Summary      List the items of a merchant
// @Tags         merchants
// @Produce      json
// @Param        id   path      int  true  "Merchant id"
// @Success      200  {object}  common.DataResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /merchants/{id}/items [get]
func (h *MerchantHandlers) ListMerchantItems(c echo.Context) error {
	id, err := pathID(c, "id", "Merchant")
	if err != nil {
		return err
	}
	items, err := h.itemService.ListByMerchant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeItems(items))
}
