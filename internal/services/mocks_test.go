package services

import (
	"context"
	"time"

	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]*models.Item, error) {
	args := m.Called(ctx, merchantID)
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemRepository) SearchByName(ctx context.Context, name string) ([]*models.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemRepository) SearchByPrice(ctx context.Context, minPrice, maxPrice *float64) ([]*models.Item, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	return args.Get(0).([]*models.Item), args.Error(1)
}

// WithTx keeps using the same mock so expectations cover both paths
func (m *MockItemRepository) WithTx(tx pgx.Tx) repositories.ItemRepository {
	return m
}

type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id int64) (*models.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) List(ctx context.Context) ([]*models.Merchant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) SearchByName(ctx context.Context, name string) ([]*models.Merchant, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]*models.Merchant), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteEmpty(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockInvoiceRepository) WithTx(tx pgx.Tx) repositories.InvoiceRepository {
	return m
}

type MockInvoiceItemRepository struct {
	mock.Mock
}

func (m *MockInvoiceItemRepository) Create(ctx context.Context, invoiceItem *models.InvoiceItem) error {
	args := m.Called(ctx, invoiceItem)
	return args.Error(0)
}

func (m *MockInvoiceItemRepository) DeleteByItemID(ctx context.Context, itemID int64) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceItemRepository) ListByInvoiceID(ctx context.Context, invoiceID int64) ([]*models.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]*models.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceItemRepository) WithTx(tx pgx.Tx) repositories.InvoiceItemRepository {
	return m
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockCache) SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error {
	args := m.Called(ctx, item, ttl)
	return args.Error(0)
}

func (m *MockCache) DeleteItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCache) GetMerchant(ctx context.Context, merchantID int64) (*models.Merchant, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Merchant), args.Error(1)
}

func (m *MockCache) SetMerchant(ctx context.Context, merchant *models.Merchant, ttl time.Duration) error {
	args := m.Called(ctx, merchant, ttl)
	return args.Error(0)
}

func (m *MockCache) InvalidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
