package handlers

import (
	"net/http"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/metrics"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/search"
	"github.com/amikaross/rails-engine/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	outcomeRejected = "rejected"
	outcomeEmpty    = "empty"
	outcomeMatched  = "matched"
)

// SearchHandlers validates search queries and shapes the results: find
// returns the first match, find_all returns every match
type SearchHandlers struct {
	searchService services.SearchService
}

func NewSearchHandlers(searchService services.SearchService) *SearchHandlers {
	return &SearchHandlers{searchService: searchService}
}

func (h *SearchHandlers) findItems(c echo.Context) ([]*models.Item, error) {
	query, err := search.ParseItemQuery(c.QueryParams())
	if err != nil {
		metrics.ObserveSearch("item", query.Mode.String(), outcomeRejected)
		return nil, err
	}
	items, err := h.searchService.FindItems(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}
	metrics.ObserveSearch("item", query.Mode.String(), outcome(len(items)))
	return items, nil
}

func (h *SearchHandlers) findMerchants(c echo.Context) ([]*models.Merchant, error) {
	name, err := search.ParseMerchantQuery(c.QueryParams())
	if err != nil {
		metrics.ObserveSearch("merchant", search.NameSearch.String(), outcomeRejected)
		return nil, err
	}
	merchants, err := h.searchService.FindMerchants(c.Request().Context(), name)
	if err != nil {
		return nil, err
	}
	metrics.ObserveSearch("merchant", search.NameSearch.String(), outcome(len(merchants)))
	return merchants, nil
}

func outcome(matches int) string {
	if matches == 0 {
		return outcomeEmpty
	}
	return outcomeMatched
}

// FindItem godoc
// @Summary      Find one item
// @Description  Searches by name substring or by an exclusive price range and returns the first match by name
// @Tags         search
// @Produce      json
// @Param        name       query     string  false  "Name fragment"
// @Param        min_price  query     number  false  "Lower price bound"
// @Param        max_price  query     number  false  "Upper price bound"
// @Success      200        {object}  common.DataResponse
// @Failure      400        {object}  common.ErrorResponse
// @Router       /items/find [get]
func (h *SearchHandlers) FindItem(c echo.Context) error {
	items, err := h.findItems(c)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, common.NoMatchingObject())
	}
	return c.JSON(http.StatusOK, common.SerializeItem(items[0]))
}

// FindAllItems godoc
// @Summary      Find all matching items
// @Tags         search
// @Produce      json
// @Param        name       query     string  false  "Name fragment"
// @Param        min_price  query     number  false  "Lower price bound"
// @Param        max_price  query     number  false  "Upper price bound"
// @Success      200        {object}  common.DataResponse
// @Failure      400        {object}  common.ErrorResponse
// @Router       /items/find_all [get]
func (h *SearchHandlers) FindAllItems(c echo.Context) error {
	items, err := h.findItems(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeItems(items))
}

// FindMerchant godoc
// @Summary      Find one merchant
// @Tags         search
// @Produce      json
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {object}  common.DataResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /merchants/find [get]
func (h *SearchHandlers) FindMerchant(c echo.Context) error {
	merchants, err := h.findMerchants(c)
	if err != nil {
		return err
	}
	if len(merchants) == 0 {
		return c.JSON(http.StatusOK, common.NoMatchingObject())
	}
	return c.JSON(http.StatusOK, common.SerializeMerchant(merchants[0]))
}

// FindAllMerchants godoc
// @Summary      Find all matching merchants
// @Tags         search
// @Produce      json
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {object}  common.DataResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /merchants/find_all [get]
func (h *SearchHandlers) FindAllMerchants(c echo.Context) error {
	merchants, err := h.findMerchants(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, common.SerializeMerchants(merchants))
}
