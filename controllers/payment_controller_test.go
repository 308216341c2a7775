package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/controllers"
	"marketplace/middleware"
	"marketplace/models"
	"marketplace/repository"
	"marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// ---- mocks ----

type stubProductRepo struct {
	products []models.Product
}

func (s *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}
	var out []models.Product
	for _, p := range s.products {
		if requested[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubOrderRepo struct {
	orders      map[string]*models.Order
	markPaidErr error
}

func (s *stubOrderRepo) Create(_ context.Context, order *models.Order) error {
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return order, nil
}

func (s *stubOrderRepo) MarkPaid(_ context.Context, id string) error {
	if s.markPaidErr != nil {
		return s.markPaidErr
	}
	order, ok := s.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	order.IsPaid = true
	return nil
}

type stubGateway struct {
	url        string
	lastParams *services.SessionParams
}

func (s *stubGateway) CreateCheckoutSession(_ context.Context, params *services.SessionParams) (string, error) {
	s.lastParams = params
	return s.url, nil
}

// ---- helpers ----

func setupRouter(products *stubProductRepo, orders *stubOrderRepo, gw *stubGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)

	checkout := services.NewCheckoutService(products, orders, gw, "https://shop.example.com", "price_fee_123", zap.NewNop())
	pc := controllers.NewPaymentController(checkout, nil, orders, nil, zap.NewNop())

	r := gin.New()
	authStub := func(c *gin.Context) { c.Set(middleware.UserKey, "user-1") }
	r.POST("/api/payments/session", authStub, pc.CreateSession)
	r.GET("/api/payments/orders/:id/status", authStub, pc.PollOrderStatus)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestCreateSession_Success(t *testing.T) {
	products := &stubProductRepo{products: []models.Product{{ID: "p1", PriceID: "price_a"}}}
	orders := &stubOrderRepo{orders: make(map[string]*models.Order)}
	gw := &stubGateway{url: "https://checkout.stripe.com/pay/cs_test"}
	r := setupRouter(products, orders, gw)

	w := postJSON(r, "/api/payments/session", gin.H{"productIds": []string{"p1"}})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test", resp["url"])
	assert.Len(t, orders.orders, 1)
	var order *models.Order
	for _, o := range orders.orders {
		order = o
	}
	assert.False(t, order.IsPaid)
	assert.Equal(t, []string{"p1"}, order.Products)

	// One line item per product plus the fixed surcharge, metadata carrying
	// the caller and the created order.
	if assert.NotNil(t, gw.lastParams) {
		assert.Len(t, gw.lastParams.LineItems, 2)
		assert.Equal(t, "price_a", gw.lastParams.LineItems[0].PriceID)
		assert.Equal(t, "price_fee_123", gw.lastParams.LineItems[1].PriceID)
		assert.Equal(t, "user-1", gw.lastParams.Metadata["userId"])
		assert.Equal(t, order.ID, gw.lastParams.Metadata["orderId"])
	}
}

func TestCreateSession_NoPurchasableProducts(t *testing.T) {
	// The product exists but carries no gateway price id.
	products := &stubProductRepo{products: []models.Product{{ID: "p1"}}}
	orders := &stubOrderRepo{orders: make(map[string]*models.Order)}
	r := setupRouter(products, orders, &stubGateway{})

	w := postJSON(r, "/api/payments/session", gin.H{"productIds": []string{"p1"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.orders)
}

func TestCreateSession_EmptyProductIDs(t *testing.T) {
	orders := &stubOrderRepo{orders: make(map[string]*models.Order)}
	r := setupRouter(&stubProductRepo{}, orders, &stubGateway{})

	w := postJSON(r, "/api/payments/session", gin.H{"productIds": []string{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, orders.orders)
}

func TestCreateSession_UnknownProducts(t *testing.T) {
	orders := &stubOrderRepo{orders: make(map[string]*models.Order)}
	r := setupRouter(&stubProductRepo{}, orders, &stubGateway{})

	w := postJSON(r, "/api/payments/session", gin.H{"productIds": []string{"ghost"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSession_MalformedBody(t *testing.T) {
	r := setupRouter(&stubProductRepo{}, &stubOrderRepo{orders: make(map[string]*models.Order)}, &stubGateway{})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/session", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPollOrderStatus(t *testing.T) {
	orders := &stubOrderRepo{orders: map[string]*models.Order{
		"o1": {ID: "o1", IsPaid: false, UserID: "user-1"},
	}}
	r := setupRouter(&stubProductRepo{}, orders, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/payments/orders/o1/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["isPaid"])

	orders.orders["o1"].IsPaid = true
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["isPaid"])
}

func TestPollOrderStatus_NotFound(t *testing.T) {
	r := setupRouter(&stubProductRepo{}, &stubOrderRepo{orders: make(map[string]*models.Order)}, &stubGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/payments/orders/ghost/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
