package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/logger"
	"github.com/amikaross/rails-engine/internal/metrics"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/repositories"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// InvoiceServiceInterface defines the interface for invoice service
type InvoiceServiceInterface interface {
	Create(ctx context.Context, input *models.InvoiceInput) (*models.Invoice, []*models.InvoiceItem, error)
	GetByID(ctx context.Context, id int64) (*models.Invoice, []*models.InvoiceItem, error)
	AddItem(ctx context.Context, invoiceID int64, input *models.InvoiceItemInput) (*models.InvoiceItem, error)
	SweepEmptyInvoices(ctx context.Context) ([]int64, error)
}

type invoiceService struct {
	db              repositories.TxBeginner
	invoiceRepo     repositories.InvoiceRepository
	invoiceItemRepo repositories.InvoiceItemRepository
	itemRepo        repositories.ItemRepository
	merchantService MerchantService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(db repositories.TxBeginner, invoiceRepo repositories.InvoiceRepository, invoiceItemRepo repositories.InvoiceItemRepository, itemRepo repositories.ItemRepository, merchantService MerchantService) InvoiceServiceInterface {
	return &invoiceService{
		db:              db,
		invoiceRepo:     invoiceRepo,
		invoiceItemRepo: invoiceItemRepo,
		itemRepo:        itemRepo,
		merchantService: merchantService,
	}
}

func validateInvoiceInput(input *models.InvoiceInput) error {
	var messages []string
	if input.MerchantID == nil {
		messages = append(messages, "Merchant must exist")
	}
	if input.CustomerID == nil {
		messages = append(messages, "Customer must exist")
	}
	if input.Status != nil && strings.TrimSpace(*input.Status) == "" {
		messages = append(messages, "Status can't be blank")
	}
	if len(input.Items) == 0 {
		messages = append(messages, "Invoice items can't be blank")
	}
	for i := range input.Items {
		messages = append(messages, invoiceItemMessages(&input.Items[i])...)
	}
	if len(messages) > 0 {
		return common.NewMissingAttributesError(messages...)
	}
	return nil
}

func invoiceItemMessages(input *models.InvoiceItemInput) []string {
	var messages []string
	if input.ItemID == nil {
		messages = append(messages, "Item must exist")
	}
	if input.Quantity == nil {
		messages = append(messages, "Quantity can't be blank")
	} else if *input.Quantity <= 0 {
		messages = append(messages, "Quantity must be greater than 0")
	}
	return messages
}

// Create stores the invoice together with its items so an invoice is never
// visible without at least one item
func (s *invoiceService) Create(ctx context.Context, input *models.InvoiceInput) (*models.Invoice, []*models.InvoiceItem, error) {
	if err := validateInvoiceInput(input); err != nil {
		return nil, nil, err
	}
	if _, err := s.merchantService.GetByID(ctx, *input.MerchantID); err != nil {
		return nil, nil, err
	}

	invoice := &models.Invoice{
		MerchantID: *input.MerchantID,
		CustomerID: *input.CustomerID,
		Status:     models.DefaultInvoiceStatus,
	}
	if input.Status != nil {
		invoice.Status = strings.TrimSpace(*input.Status)
	}

	invoiceItems := make([]*models.InvoiceItem, 0, len(input.Items))
	err := repositories.InTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.invoiceRepo.WithTx(tx).Create(ctx, invoice); err != nil {
			return err
		}
		for i := range input.Items {
			invoiceItem, err := s.addItem(ctx, tx, invoice.ID, &input.Items[i])
			if err != nil {
				return err
			}
			invoiceItems = append(invoiceItems, invoiceItem)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return invoice, invoiceItems, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, []*models.InvoiceItem, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	invoiceItems, err := s.invoiceItemRepo.ListByInvoiceID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list items of invoice %d: %w", id, err)
	}
	return invoice, invoiceItems, nil
}

func (s *invoiceService) AddItem(ctx context.Context, invoiceID int64, input *models.InvoiceItemInput) (*models.InvoiceItem, error) {
	if messages := invoiceItemMessages(input); len(messages) > 0 {
		return nil, common.NewMissingAttributesError(messages...)
	}

	var invoiceItem *models.InvoiceItem
	err := repositories.InTx(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := s.invoiceRepo.WithTx(tx).GetByID(ctx, invoiceID); err != nil {
			return err
		}
		var err error
		invoiceItem, err = s.addItem(ctx, tx, invoiceID, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return invoiceItem, nil
}

// addItem records the item's current price on the join row
func (s *invoiceService) addItem(ctx context.Context, tx pgx.Tx, invoiceID int64, input *models.InvoiceItemInput) (*models.InvoiceItem, error) {
	item, err := s.itemRepo.WithTx(tx).GetByID(ctx, *input.ItemID)
	if err != nil {
		return nil, err
	}
	invoiceItem := &models.InvoiceItem{
		ItemID:    item.ID,
		InvoiceID: invoiceID,
		Quantity:  *input.Quantity,
		UnitPrice: item.UnitPrice,
	}
	if err := s.invoiceItemRepo.WithTx(tx).Create(ctx, invoiceItem); err != nil {
		return nil, err
	}
	return invoiceItem, nil
}

// SweepEmptyInvoices applies the empty-invoice rule outside of an item
// deletion
func (s *invoiceService) SweepEmptyInvoices(ctx context.Context) ([]int64, error) {
	removed, err := s.invoiceRepo.DeleteEmpty(ctx)
	if err != nil {
		return nil, err
	}
	metrics.ObserveInvoicesRemoved("sweep", len(removed))
	if len(removed) > 0 {
		logger.FromContext(ctx).Info("Removed empty invoices", zap.Int("count", len(removed)), zap.Int64s("invoice_ids", removed))
	}
	return removed, nil
}
