package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"
	"github.com/amikaross/rails-engine/internal/search"
	"github.com/amikaross/rails-engine/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, attrs *models.ItemUpdate) (*models.Item, error) {
	args := m.Called(ctx, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, merchantFilter string) ([]*models.Item, error) {
	args := m.Called(ctx, merchantFilter)
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemService) ListByMerchant(ctx context.Context, merchantID int64) ([]*models.Item, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemService) Merchant(ctx context.Context, itemID int64) (*models.Merchant, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Merchant), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id int64, attrs *models.ItemUpdate) (*models.Item, error) {
	args := m.Called(ctx, id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id int64) (*services.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DeleteResult), args.Error(1)
}

type MockMerchantService struct {
	mock.Mock
}

func (m *MockMerchantService) GetByID(ctx context.Context, id int64) (*models.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Merchant), args.Error(1)
}

func (m *MockMerchantService) Resolve(ctx context.Context, rawID string) (*models.Merchant, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Merchant), args.Error(1)
}

func (m *MockMerchantService) List(ctx context.Context) ([]*models.Merchant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Merchant), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) FindItems(ctx context.Context, query search.ItemQuery) ([]*models.Item, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockSearchService) FindMerchants(ctx context.Context, name string) ([]*models.Merchant, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]*models.Merchant), args.Error(1)
}

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, input *models.InvoiceInput) (*models.Invoice, []*models.InvoiceItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Invoice), args.Get(1).([]*models.InvoiceItem), args.Error(2)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, []*models.InvoiceItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Invoice), args.Get(1).([]*models.InvoiceItem), args.Error(2)
}

func (m *MockInvoiceService) AddItem(ctx context.Context, invoiceID int64, input *models.InvoiceItemInput) (*models.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceService) SweepEmptyInvoices(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

type testServer struct {
	echo      *echo.Echo
	items     *MockItemService
	merchants *MockMerchantService
	searches  *MockSearchService
	invoices  *MockInvoiceService
}

func newTestServer() *testServer {
	s := &testServer{
		echo:      echo.New(),
		items:     new(MockItemService),
		merchants: new(MockMerchantService),
		searches:  new(MockSearchService),
		invoices:  new(MockInvoiceService),
	}
	s.echo.HTTPErrorHandler = common.HTTPErrorHandler
	RegisterAPIRoutes(s.echo.Group("/api/v1"),
		NewItemHandlers(s.items),
		NewMerchantHandlers(s.merchants, s.items),
		NewSearchHandlers(s.searches),
		NewInvoiceHandlers(s.invoices),
	)
	return s
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) assertExpectations(t *testing.T) {
	s.items.AssertExpectations(t)
	s.merchants.AssertExpectations(t)
	s.searches.AssertExpectations(t)
	s.invoices.AssertExpectations(t)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
