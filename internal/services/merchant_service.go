package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/amikaross/rails-engine/internal/caching"
	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/logger"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/repositories"

	"go.uber.org/zap"
)

type MerchantService interface {
	GetByID(ctx context.Context, id int64) (*models.Merchant, error)
	// Resolve looks a merchant up from a raw id string; anything that is not
	// an id of an existing merchant is a NotFoundError
	Resolve(ctx context.Context, rawID string) (*models.Merchant, error)
	List(ctx context.Context) ([]*models.Merchant, error)
}

type merchantService struct {
	merchantRepo repositories.MerchantRepository
	cacheService caching.CacheService
	cacheTTL     time.Duration
}

func NewMerchantService(merchantRepo repositories.MerchantRepository, cacheService caching.CacheService, cacheTTL time.Duration) MerchantService {
	return &merchantService{
		merchantRepo: merchantRepo,
		cacheService: cacheService,
		cacheTTL:     cacheTTL,
	}
}

func (s *merchantService) GetByID(ctx context.Context, id int64) (*models.Merchant, error) {
	log := logger.FromContext(ctx)

	if cached, err := s.cacheService.GetMerchant(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Warn("Merchant cache read failed", zap.Int64("merchant_id", id), zap.Error(err))
	}

	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetMerchant(ctx, merchant, s.cacheTTL); err != nil {
		log.Warn("Merchant cache write failed", zap.Int64("merchant_id", id), zap.Error(err))
	}
	return merchant, nil
}

func (s *merchantService) Resolve(ctx context.Context, rawID string) (*models.Merchant, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return nil, common.NewNotFoundError("Merchant", rawID)
	}
	return s.GetByID(ctx, id)
}

func (s *merchantService) List(ctx context.Context) ([]*models.Merchant, error) {
	return s.merchantRepo.List(ctx)
}
