package services

import (
	"context"
	"fmt"

	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/repositories"
	"github.com/amikaross/rails-engine/internal/search"
)

// SearchService runs already validated queries; it never writes
type SearchService interface {
	FindItems(ctx context.Context, query search.ItemQuery) ([]*models.Item, error)
	FindMerchants(ctx context.Context, name string) ([]*models.Merchant, error)
}

type searchService struct {
	itemRepo     repositories.ItemRepository
	merchantRepo repositories.MerchantRepository
}

func NewSearchService(itemRepo repositories.ItemRepository, merchantRepo repositories.MerchantRepository) SearchService {
	return &searchService{
		itemRepo:     itemRepo,
		merchantRepo: merchantRepo,
	}
}

func (s *searchService) FindItems(ctx context.Context, query search.ItemQuery) ([]*models.Item, error) {
	switch query.Mode {
	case search.NameSearch:
		return s.itemRepo.SearchByName(ctx, query.Name)
	case search.PriceSearch:
		return s.itemRepo.SearchByPrice(ctx, query.Min, query.Max)
	default:
		return nil, fmt.Errorf("unsupported item search mode %s", query.Mode)
	}
}

func (s *searchService) FindMerchants(ctx context.Context, name string) ([]*models.Merchant, error) {
	return s.merchantRepo.SearchByName(ctx, name)
}
