package handler

import (
	invoicingapp "github.com/fakturo/backend/internal/application/invoicing"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	service *invoicingapp.InvoiceService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *invoicingapp.InvoiceService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// RegisterRoutes registers customer routes under a company scope
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/companies/:companyID/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.POST("/:id/archive", h.Archive)
	}
}

// AddressRequest carries address fields in customer payloads
type AddressRequest struct {
	Street     string `json:"street" binding:"max=255"`
	City       string `json:"city" binding:"max=255"`
	State      string `json:"state" binding:"max=255"`
	PostalCode string `json:"postal_code" binding:"max=255"`
	Country    string `json:"country" binding:"max=255"`
}

func (r *AddressRequest) toInput() *invoicingapp.AddressInput {
	if r == nil {
		return nil
	}
	return &invoicingapp.AddressInput{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=255"`
	Address *AddressRequest `json:"address"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=255"`
	Address *AddressRequest `json:"address"`
}

// Create creates a customer within the company
func (h *CustomerHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateCustomer(c.Request.Context(), userID, companyID, invoicingapp.CreateCustomerCommand{
		Name:    req.Name,
		Address: req.Address.toInput(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update replaces a customer's name and address
func (h *CustomerHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	customerID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateCustomer(c.Request.Context(), userID, companyID, invoicingapp.UpdateCustomerCommand{
		CustomerID: customerID,
		Name:       req.Name,
		Address:    req.Address.toInput(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	customerID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	resp, err := h.service.GetCustomer(c.Request.Context(), userID, companyID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns the company's customers. Archived customers are included
// only when include_archived=true.
func (h *CustomerHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	includeArchived := c.Query("include_archived") == "true"

	resp, err := h.service.ListCustomers(c.Request.Context(), userID, companyID, includeArchived)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Archive soft-deletes a customer
func (h *CustomerHandler) Archive(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	customerID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.service.ArchiveCustomer(c.Request.Context(), userID, companyID, customerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
