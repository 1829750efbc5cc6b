package handler

import (
	"time"

	invoicingapp "github.com/fakturo/backend/internal/application/invoicing"
	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// dateLayout is the wire format for invoice dates
const dateLayout = "2006-01-02"

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	service *invoicingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *invoicingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// RegisterRoutes registers invoice routes under a company scope
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/companies/:companyID/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.GET("/:id/details", h.GetDetails)
		invoices.PUT("/:id", h.Update)
		invoices.POST("/:id/status", h.ChangeStatus)
		invoices.POST("/:id/archive", h.Archive)
		invoices.DELETE("/:id", h.Delete)
		invoices.POST("/mark-overdue", h.MarkOverdue)
	}
}

// LineItemRequest carries one invoice line. Amounts travel as decimal
// strings so no precision is lost.
type LineItemRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
	Quantity    string `json:"quantity" binding:"required"`
	UnitPrice   string `json:"unit_price" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3"`
	VatRate     string `json:"vat_rate" binding:"required"`
}

// CreateInvoiceRequest represents a request to create a draft invoice
type CreateInvoiceRequest struct {
	CustomerID    uuid.UUID         `json:"customer_id" binding:"required"`
	BankAccountID *uuid.UUID        `json:"bank_account_id"`
	Number        string            `json:"invoice_number" binding:"required,min=1,max=100"`
	InvoiceDate   string            `json:"invoice_date" binding:"required"`
	PaymentTerms  string            `json:"payment_terms" binding:"required"`
	Currency      string            `json:"currency" binding:"required,len=3"`
	LineItems     []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents a request to replace a draft invoice's
// fields and line items
type UpdateInvoiceRequest struct {
	CustomerID    uuid.UUID         `json:"customer_id" binding:"required"`
	BankAccountID *uuid.UUID        `json:"bank_account_id"`
	Number        string            `json:"invoice_number" binding:"required,min=1,max=100"`
	InvoiceDate   string            `json:"invoice_date" binding:"required"`
	PaymentTerms  string            `json:"payment_terms" binding:"required"`
	Currency      string            `json:"currency" binding:"required,len=3"`
	LineItems     []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
}

// ChangeStatusRequest represents a request to move an invoice through
// its lifecycle
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid overdue cancelled"`
}

func toLineItemInputs(items []LineItemRequest) []invoicingapp.LineItemInput {
	inputs := make([]invoicingapp.LineItemInput, len(items))
	for i, item := range items {
		inputs[i] = invoicingapp.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Currency:    item.Currency,
			VatRate:     item.VatRate,
		}
	}
	return inputs
}

// Create creates a draft invoice with its full line item set
func (h *InvoiceHandler) Create(c *gin.Context) {
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

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		h.BadRequest(c, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}

	resp, err := h.service.CreateInvoice(c.Request.Context(), userID, companyID, invoicingapp.CreateInvoiceCommand{
		CustomerID:    req.CustomerID,
		BankAccountID: req.BankAccountID,
		Number:        req.Number,
		InvoiceDate:   invoiceDate,
		PaymentTerms:  req.PaymentTerms,
		Currency:      req.Currency,
		LineItems:     toLineItemInputs(req.LineItems),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update replaces a draft invoice's fields and line items
func (h *InvoiceHandler) Update(c *gin.Context) {
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
	invoiceID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		h.BadRequest(c, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}

	resp, err := h.service.UpdateInvoice(c.Request.Context(), userID, companyID, invoicingapp.UpdateInvoiceCommand{
		InvoiceID:     invoiceID,
		CustomerID:    req.CustomerID,
		BankAccountID: req.BankAccountID,
		Number:        req.Number,
		InvoiceDate:   invoiceDate,
		PaymentTerms:  req.PaymentTerms,
		Currency:      req.Currency,
		LineItems:     toLineItemInputs(req.LineItems),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one invoice with its line items and totals
func (h *InvoiceHandler) Get(c *gin.Context) {
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
	invoiceID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.service.GetInvoice(c.Request.Context(), userID, companyID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetDetails returns the invoice joined with its customer, company and
// bank account, ready for rendering
func (h *InvoiceHandler) GetDetails(c *gin.Context) {
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
	invoiceID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.service.GetInvoiceWithDetails(c.Request.Context(), userID, companyID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns the company's invoices, optionally filtered by status
// and customer
func (h *InvoiceHandler) List(c *gin.Context) {
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

	var filter invoicingapp.InvoiceListFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if customerStr := c.Query("customer_id"); customerStr != "" {
		customerID, err := uuid.Parse(customerStr)
		if err != nil {
			h.BadRequest(c, "Invalid customer ID filter")
			return
		}
		filter.CustomerID = &customerID
	}

	resp, err := h.service.ListInvoices(c.Request.Context(), userID, companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ChangeStatus moves the invoice to a new lifecycle status
func (h *InvoiceHandler) ChangeStatus(c *gin.Context) {
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
	invoiceID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	target, err := domain.ParseInvoiceStatus(req.Status)
	if err != nil {
		h.BadRequest(c, "Invalid invoice status")
		return
	}

	resp, err := h.service.ChangeInvoiceStatus(c.Request.Context(), userID, companyID, invoiceID, target)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Archive soft-deletes an invoice
func (h *InvoiceHandler) Archive(c *gin.Context) {
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
	invoiceID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.service.ArchiveInvoice(c.Request.Context(), userID, companyID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete permanently removes a draft invoice and its line items
func (h *InvoiceHandler) Delete(c *gin.Context) {
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
	invoiceID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), userID, companyID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// MarkOverdue sweeps sent invoices past their due date into overdue
func (h *InvoiceHandler) MarkOverdue(c *gin.Context) {
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

	resp, err := h.service.MarkOverdueInvoices(c.Request.Context(), userID, companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
