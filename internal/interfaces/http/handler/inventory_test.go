package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliveryapp "github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"github.com/DavidGarzon9580/lite-thinking/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubStorage implements delivery.DocumentStorage for handler tests
type stubStorage struct {
	location string
	err      error
}

func (s *stubStorage) Store(ctx context.Context, companyNIT string, document []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.location, nil
}

// stubMailer implements delivery.Mailer for handler tests
type stubMailer struct {
	err  error
	sent *deliveryapp.Message
}

func (m *stubMailer) Send(ctx context.Context, msg *deliveryapp.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = msg
	return nil
}

func setupInventoryHandler(companyRepo *MockCompanyRepository, productRepo *MockProductRepository, storage *stubStorage, mailer *stubMailer) *InventoryHandler {
	service := deliveryapp.NewInventoryService(
		companyRepo,
		productRepo,
		storage,
		mailer,
		zap.NewNop(),
		deliveryapp.WithClock(func() time.Time {
			return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
		}),
	)
	return NewInventoryHandler(service)
}

func inventoryFixture(t *testing.T) (*catalog.Company, []catalog.Product) {
	t.Helper()

	company, err := catalog.NewCompany(testNIT, "Lite Thinking", "Cra 7 # 12-34", "+57 601 555 1234")
	require.NoError(t, err)

	product, err := catalog.NewProduct(testNIT, "LAP-001", "Portátil Pro 14", "")
	require.NoError(t, err)
	price, err := catalog.NewPrice("USD", decimal.RequireFromString("1299.99"))
	require.NoError(t, err)
	product.ReplacePrices([]catalog.Price{price})

	return company, []catalog.Product{*product}
}

func TestInventoryHandler_Download_Success(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	productRepo := new(MockProductRepository)
	handler := setupInventoryHandler(companyRepo, productRepo, &stubStorage{}, &stubMailer{})

	company, products := inventoryFixture(t)
	companyRepo.On("FindByNIT", mock.Anything, testNIT).Return(company, nil)
	productRepo.On("FindByCompany", mock.Anything, testNIT).Return(products, nil)

	router := setupTestRouter()
	router.GET("/companies/:nit/inventory", handler.Download)

	req := httptest.NewRequest(http.MethodGet, "/companies/"+testNIT+"/inventory", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="inventario-900123456.txt"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.Contains(t, body, "INVENTARIO - Lite Thinking (NIT 900123456)")
	assert.Contains(t, body, "LAP-001")
	assert.Contains(t, body, "USD 1299.99")
	assert.Contains(t, body, "Total de productos: 1")
}

func TestInventoryHandler_Download_CompanyNotFound(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	productRepo := new(MockProductRepository)
	handler := setupInventoryHandler(companyRepo, productRepo, &stubStorage{}, &stubMailer{})

	companyRepo.On("FindByNIT", mock.Anything, "999999999").Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.GET("/companies/:nit/inventory", handler.Download)

	req := httptest.NewRequest(http.MethodGet, "/companies/999999999/inventory", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryHandler_Deliver_Success(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	productRepo := new(MockProductRepository)
	storage := &stubStorage{location: "s3://inventories/900123456/inventory.txt"}
	mailer := &stubMailer{}
	handler := setupInventoryHandler(companyRepo, productRepo, storage, mailer)

	company, products := inventoryFixture(t)
	companyRepo.On("FindByNIT", mock.Anything, testNIT).Return(company, nil)
	productRepo.On("FindByCompany", mock.Anything, testNIT).Return(products, nil)

	router := setupTestRouter()
	router.POST("/companies/:nit/inventory/deliver", handler.Deliver)

	body, _ := json.Marshal(DeliverRequest{Email: "gerencia@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+testNIT+"/inventory/deliver", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w.Body)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gerencia@example.com", data["recipient"])
	assert.Equal(t, "s3://inventories/900123456/inventory.txt", data["backup_location"])

	require.NotNil(t, mailer.sent)
	assert.Equal(t, "Inventario Lite Thinking", mailer.sent.Subject)
	assert.True(t, strings.Contains(mailer.sent.Body, "Copia de respaldo"))
}

func TestInventoryHandler_Deliver_MailFailure(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	productRepo := new(MockProductRepository)
	mailer := &stubMailer{err: errors.New("smtp relay refused")}
	handler := setupInventoryHandler(companyRepo, productRepo, &stubStorage{}, mailer)

	company, products := inventoryFixture(t)
	companyRepo.On("FindByNIT", mock.Anything, testNIT).Return(company, nil)
	productRepo.On("FindByCompany", mock.Anything, testNIT).Return(products, nil)

	router := setupTestRouter()
	router.POST("/companies/:nit/inventory/deliver", handler.Deliver)

	body, _ := json.Marshal(DeliverRequest{Email: "gerencia@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+testNIT+"/inventory/deliver", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeResponse(t, w.Body)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeDeliveryFailed, resp.Error.Code)
}

func TestInventoryHandler_Deliver_InvalidEmail(t *testing.T) {
	handler := setupInventoryHandler(new(MockCompanyRepository), new(MockProductRepository), &stubStorage{}, &stubMailer{})

	router := setupTestRouter()
	router.POST("/companies/:nit/inventory/deliver", handler.Deliver)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+testNIT+"/inventory/deliver", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryHandler_Deliver_StorageFailureStillDelivers(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	productRepo := new(MockProductRepository)
	mailer := &stubMailer{}
	handler := setupInventoryHandler(companyRepo, productRepo, &stubStorage{err: errors.New("bucket unavailable")}, mailer)

	company, products := inventoryFixture(t)
	companyRepo.On("FindByNIT", mock.Anything, testNIT).Return(company, nil)
	productRepo.On("FindByCompany", mock.Anything, testNIT).Return(products, nil)

	router := setupTestRouter()
	router.POST("/companies/:nit/inventory/deliver", handler.Deliver)

	body, _ := json.Marshal(DeliverRequest{Email: "gerencia@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+testNIT+"/inventory/deliver", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w.Body)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	_, hasBackup := data["backup_location"]
	assert.False(t, hasBackup)

	require.NotNil(t, mailer.sent)
	assert.NotContains(t, mailer.sent.Body, "Copia de respaldo")
}
