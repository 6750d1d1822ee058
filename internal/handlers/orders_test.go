package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commerce-gateway/internal/models"
	"commerce-gateway/internal/services"
)

// MockOrdersService for testing the orders handler
type MockOrdersService struct {
	mock.Mock
}

func (m *MockOrdersService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrdersService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrdersService) SearchOrders(ctx context.Context, filters services.OrderSearchFilters) ([]*models.Order, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrdersService) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func newOrdersRouter(service *MockOrdersService) chi.Router {
	r := chi.NewRouter()
	NewOrdersHandler(service, DefaultCartCookieTTL).RegisterRoutes(r)
	return r
}

func TestOrdersHandler_List(t *testing.T) {
	t.Run("forwards filters", func(t *testing.T) {
		service := new(MockOrdersService)
		service.On("SearchOrders", mock.Anything, mock.MatchedBy(func(f services.OrderSearchFilters) bool {
			return f.Status == models.OrderStatusPaid && f.Email == "a@example.com"
		})).Return([]*models.Order{{ID: 1}}, nil)
		router := newOrdersRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/orders?status=paid&email=a@example.com", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("bad created_after is a 400", func(t *testing.T) {
		service := new(MockOrdersService)
		router := newOrdersRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/orders?created_after=yesterday", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "SearchOrders", mock.Anything, mock.Anything)
	})
}

func TestOrdersHandler_GetByID(t *testing.T) {
	service := new(MockOrdersService)
	service.On("GetOrder", mock.Anything, 7).Return(nil, models.ErrOrderNotFound)
	router := newOrdersRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrdersHandler_Checkout(t *testing.T) {
	cartCookie := func(t *testing.T) *http.Cookie {
		return encodeCartCookie(t, &models.Cart{Lines: []models.CartLine{
			{ProductID: 42, VariantID: 1001, Title: "Blue Hoodie", UnitPrice: 9.99, Quantity: 2},
		}})
	}

	t.Run("places the order and clears the cart cookie", func(t *testing.T) {
		service := new(MockOrdersService)
		service.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req *models.OrderCreateRequest) bool {
			return req.Email == "buyer@example.com" &&
				len(req.LineItems) == 1 &&
				req.LineItems[0].VariantID == 1001 &&
				req.LineItems[0].Quantity == 2
		})).Return(&models.Order{ID: 12, Number: "1012", Status: models.OrderStatusPending}, nil)
		router := newOrdersRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"email": "buyer@example.com"}`))
		req.AddCookie(cartCookie(t))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var order models.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
		assert.Equal(t, 12, order.ID)

		cleared := decodeCookieCart(t, rec.Result())
		assert.Empty(t, cleared.Lines)
		service.AssertExpectations(t)
	})

	t.Run("empty cart is a 400", func(t *testing.T) {
		service := new(MockOrdersService)
		router := newOrdersRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"email": "buyer@example.com"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("invalid body is a 400", func(t *testing.T) {
		router := newOrdersRouter(new(MockOrdersService))

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("downstream failure keeps the cart cookie", func(t *testing.T) {
		service := new(MockOrdersService)
		service.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, models.ErrOrdersUnavailable)
		router := newOrdersRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"email": "buyer@example.com"}`))
		req.AddCookie(cartCookie(t))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Result().Cookies(), "cart must survive a failed checkout")
	})
}
