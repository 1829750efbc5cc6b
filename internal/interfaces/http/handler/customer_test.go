package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestCustomer(companyID uuid.UUID, name string) *domain.Customer {
	customerName, _ := domain.NewCustomerName(name)
	return domain.NewCustomer(companyID, customerName, valueobject.Address{})
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	repos.expectMember(companyID, userID)
	repos.customers.On("ExistsByName", mock.Anything, companyID, mock.Anything, mock.Anything).Return(false, nil)
	repos.customers.On("Create", mock.Anything, mock.AnythingOfType("*invoicing.Customer")).Return(nil)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	body, _ := json.Marshal(CreateCustomerRequest{Name: "Acme Corp"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+companyID.String()+"/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repos.customers.AssertExpectations(t)
}

func TestCustomerHandler_Create_DuplicateName(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	repos.expectMember(companyID, userID)
	repos.customers.On("ExistsByName", mock.Anything, companyID, mock.Anything, mock.Anything).Return(true, nil)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	body, _ := json.Marshal(CreateCustomerRequest{Name: "Acme Corp"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+companyID.String()+"/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCustomerHandler_Create_InvalidJSON(t *testing.T) {
	service, _ := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodPost, "/companies/"+companyID.String()+"/customers", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Create_Unauthenticated(t *testing.T) {
	service, _ := newTestService()
	handler := NewCustomerHandler(service)

	router := setupUnauthenticatedRouter()
	handler.RegisterRoutes(router.Group(""))

	body, _ := json.Marshal(CreateCustomerRequest{Name: "Acme Corp"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+uuid.NewString()+"/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCustomerHandler_Create_NotAMember(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	repos.members.On("FindMember", mock.Anything, companyID, userID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	body, _ := json.Marshal(CreateCustomerRequest{Name: "Acme Corp"})
	req := httptest.NewRequest(http.MethodPost, "/companies/"+companyID.String()+"/customers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	customerID := uuid.New()
	repos.expectMember(companyID, userID)
	repos.customers.On("FindByID", mock.Anything, customerID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String()+"/customers/"+customerID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_Get_OtherCompany(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	customer := newTestCustomer(uuid.New(), "Acme Corp")
	repos.expectMember(companyID, userID)
	repos.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String()+"/customers/"+customer.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_List_Success(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	customers := []domain.Customer{*newTestCustomer(companyID, "Acme Corp")}
	repos.expectMember(companyID, userID)
	repos.customers.On("FindActiveByCompanyID", mock.Anything, companyID).Return(customers, nil)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String()+"/customers", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repos.customers.AssertExpectations(t)
}

func TestCustomerHandler_List_IncludeArchived(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	repos.expectMember(companyID, userID)
	repos.customers.On("FindByCompanyID", mock.Anything, companyID).Return([]domain.Customer{}, nil)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String()+"/customers?include_archived=true", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repos.customers.AssertExpectations(t)
}

func TestCustomerHandler_Archive_Success(t *testing.T) {
	service, repos := newTestService()
	handler := NewCustomerHandler(service)

	userID := uuid.New()
	companyID := uuid.New()
	customer := newTestCustomer(companyID, "Acme Corp")
	repos.expectMember(companyID, userID)
	repos.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	repos.customers.On("Update", mock.Anything, mock.AnythingOfType("*invoicing.Customer")).Return(nil)

	router := setupTestRouter(userID)
	handler.RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodPost, "/companies/"+companyID.String()+"/customers/"+customer.ID.String()+"/archive", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repos.customers.AssertExpectations(t)
}
