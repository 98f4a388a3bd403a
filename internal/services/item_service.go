package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amikaross/rails-engine/internal/caching"
	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/logger"
	"github.com/amikaross/rails-engine/internal/metrics"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/repositories"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItemService interface {
	Create(ctx context.Context, attrs *models.ItemUpdate) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, merchantFilter string) ([]*models.Item, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]*models.Item, error)
	Merchant(ctx context.Context, itemID int64) (*models.Merchant, error)
	Update(ctx context.Context, id int64, attrs *models.ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}

// DeleteResult describes what an item deletion took with it
type DeleteResult struct {
	Item               *models.Item
	InvoiceItemsPurged int64
	InvoicesRemoved    []int64
}

type itemService struct {
	db              repositories.TxBeginner
	itemRepo        repositories.ItemRepository
	invoiceRepo     repositories.InvoiceRepository
	invoiceItemRepo repositories.InvoiceItemRepository
	merchantService MerchantService
	cacheService    caching.CacheService
	cacheTTL        time.Duration
}

func NewItemService(db repositories.TxBeginner, itemRepo repositories.ItemRepository, invoiceRepo repositories.InvoiceRepository, invoiceItemRepo repositories.InvoiceItemRepository, merchantService MerchantService, cacheService caching.CacheService, cacheTTL time.Duration) ItemService {
	return &itemService{
		db:              db,
		itemRepo:        itemRepo,
		invoiceRepo:     invoiceRepo,
		invoiceItemRepo: invoiceItemRepo,
		merchantService: merchantService,
		cacheService:    cacheService,
		cacheTTL:        cacheTTL,
	}
}

// Create checks required attributes before touching the store, then
// resolves the merchant
func (s *itemService) Create(ctx context.Context, attrs *models.ItemUpdate) (*models.Item, error) {
	if err := validateNewItem(attrs); err != nil {
		return nil, err
	}
	if _, err := s.merchantService.GetByID(ctx, *attrs.MerchantID); err != nil {
		return nil, err
	}

	item := &models.Item{}
	attrs.Apply(item)
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func validateNewItem(attrs *models.ItemUpdate) error {
	var messages []string
	if attrs.Name == nil || strings.TrimSpace(*attrs.Name) == "" {
		messages = append(messages, "Name can't be blank")
	}
	if attrs.Description == nil || strings.TrimSpace(*attrs.Description) == "" {
		messages = append(messages, "Description can't be blank")
	}
	if attrs.UnitPrice == nil {
		messages = append(messages, "Unit price can't be blank")
	}
	if attrs.MerchantID == nil {
		messages = append(messages, "Merchant must exist")
	}
	if len(messages) > 0 {
		return common.NewMissingAttributesError(messages...)
	}
	return nil
}

func validateItemUpdate(attrs *models.ItemUpdate) error {
	var messages []string
	if attrs.Name != nil && strings.TrimSpace(*attrs.Name) == "" {
		messages = append(messages, "Name can't be blank")
	}
	if attrs.Description != nil && strings.TrimSpace(*attrs.Description) == "" {
		messages = append(messages, "Description can't be blank")
	}
	if len(messages) > 0 {
		return common.NewMissingAttributesError(messages...)
	}
	return nil
}

func (s *itemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	log := logger.FromContext(ctx)

	if cached, err := s.cacheService.GetItem(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Warn("Item cache read failed", zap.Int64("item_id", id), zap.Error(err))
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetItem(ctx, item, s.cacheTTL); err != nil {
		log.Warn("Item cache write failed", zap.Int64("item_id", id), zap.Error(err))
	}
	return item, nil
}

// List filters by merchant when the filter names one that exists. Anything
// else (blank, not a number, unknown merchant) lists every item.
func (s *itemService) List(ctx context.Context, merchantFilter string) ([]*models.Item, error) {
	if merchantFilter == "" {
		return s.itemRepo.List(ctx)
	}

	merchant, err := s.merchantService.Resolve(ctx, merchantFilter)
	if err != nil {
		if !common.IsNotFound(err) {
			return nil, err
		}
		logger.FromContext(ctx).Warn("Ignoring unresolvable merchant filter",
			zap.String("merchant_id", merchantFilter))
		return s.itemRepo.List(ctx)
	}
	return s.itemRepo.ListByMerchant(ctx, merchant.ID)
}

func (s *itemService) ListByMerchant(ctx context.Context, merchantID int64) ([]*models.Item, error) {
	if _, err := s.merchantService.GetByID(ctx, merchantID); err != nil {
		return nil, err
	}
	return s.itemRepo.ListByMerchant(ctx, merchantID)
}

func (s *itemService) Merchant(ctx context.Context, itemID int64) (*models.Merchant, error) {
	item, err := s.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.merchantService.GetByID(ctx, item.MerchantID)
}

func (s *itemService) Update(ctx context.Context, id int64, attrs *models.ItemUpdate) (*models.Item, error) {
	if err := validateItemUpdate(attrs); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attrs.MerchantID != nil && *attrs.MerchantID != item.MerchantID {
		if _, err := s.merchantService.GetByID(ctx, *attrs.MerchantID); err != nil {
			return nil, err
		}
	}

	attrs.Apply(item)
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.evict(ctx, id)
	return item, nil
}

// Delete removes the item with its invoice items and then every invoice
// left without items, all in one transaction.
func (s *itemService) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	result := &DeleteResult{}

	err := repositories.InTx(ctx, s.db, func(tx pgx.Tx) error {
		itemRepo := s.itemRepo.WithTx(tx)

		if _, err := itemRepo.GetByID(ctx, id); err != nil {
			return err
		}

		purged, err := s.invoiceItemRepo.WithTx(tx).DeleteByItemID(ctx, id)
		if err != nil {
			return err
		}
		result.InvoiceItemsPurged = purged

		deleted, err := itemRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		result.Item = deleted

		removed, err := s.invoiceRepo.WithTx(tx).DeleteEmpty(ctx)
		if err != nil {
			return err
		}
		result.InvoicesRemoved = removed
		return nil
	})
	if err != nil {
		if common.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("delete item %d: %w", id, err)
	}

	s.evict(ctx, id)
	metrics.ObserveInvoicesRemoved("item_delete", len(result.InvoicesRemoved))
	logger.FromContext(ctx).Info("Item deleted",
		zap.Int64("item_id", id),
		zap.Int64("invoice_items_purged", result.InvoiceItemsPurged),
		zap.Int("invoices_removed", len(result.InvoicesRemoved)))
	return result, nil
}

func (s *itemService) evict(ctx context.Context, id int64) {
	if err := s.cacheService.DeleteItem(ctx, id); err != nil {
		logger.FromContext(ctx).Warn("Item cache eviction failed", zap.Int64("item_id", id), zap.Error(err))
	}
}
