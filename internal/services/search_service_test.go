package services

import (
	"context"
	"testing"

	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_FindItemsByName(t *testing.T) {
	itemRepo := new(MockItemRepository)
	service := NewSearchService(itemRepo, new(MockMerchantRepository))

	itemRepo.On("SearchByName", mock.Anything, "hArU").
		Return([]*models.Item{{ID: 1, Name: "Harum"}}, nil).Once()

	items, err := service.FindItems(context.Background(), search.ItemQuery{Mode: search.NameSearch, Name: "hArU"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	itemRepo.AssertExpectations(t)
}

func TestSearchService_FindItemsByPrice(t *testing.T) {
	itemRepo := new(MockItemRepository)
	service := NewSearchService(itemRepo, new(MockMerchantRepository))

	minPrice := floatPtr(50)
	itemRepo.On("SearchByPrice", mock.Anything, minPrice, (*float64)(nil)).
		Return([]*models.Item{}, nil).Once()

	items, err := service.FindItems(context.Background(), search.ItemQuery{Mode: search.PriceSearch, Min: minPrice})
	require.NoError(t, err)
	assert.Empty(t, items)
	itemRepo.AssertExpectations(t)
}

func TestSearchService_FindItemsUnknownMode(t *testing.T) {
	service := NewSearchService(new(MockItemRepository), new(MockMerchantRepository))

	_, err := service.FindItems(context.Background(), search.ItemQuery{})
	assert.ErrorContains(t, err, "unsupported item search mode unknown")
}

func TestSearchService_FindMerchants(t *testing.T) {
	merchantRepo := new(MockMerchantRepository)
	service := NewSearchService(new(MockItemRepository), merchantRepo)

	merchantRepo.On("SearchByName", mock.Anything, "ring").
		Return([]*models.Merchant{{ID: 2, Name: "Ring World"}, {ID: 9, Name: "Springs"}}, nil).Once()

	merchants, err := service.FindMerchants(context.Background(), "ring")
	require.NoError(t, err)
	assert.Equal(t, "Ring World", merchants[0].Name)
}
