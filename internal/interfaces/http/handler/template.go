package handler

import (
	"time"

	invoicingapp "github.com/fakturo/backend/internal/application/invoicing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles invoice template API endpoints
type TemplateHandler struct {
	BaseHandler
	service *invoicingapp.InvoiceService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(service *invoicingapp.InvoiceService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// RegisterRoutes registers template routes under a company scope
func (h *TemplateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	templates := rg.Group("/companies/:companyID/templates")
	{
		templates.POST("", h.CreateFromInvoice)
		templates.GET("", h.List)
		templates.GET("/:id", h.Get)
		templates.POST("/:id/invoices", h.CreateInvoice)
		templates.POST("/:id/archive", h.Archive)
	}
}

// CreateTemplateRequest snapshots an existing invoice into a template
type CreateTemplateRequest struct {
	InvoiceID   uuid.UUID `json:"invoice_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=255"`
	Description *string   `json:"description"`
}

// CreateInvoiceFromTemplateRequest instantiates a template as a new
// draft invoice
type CreateInvoiceFromTemplateRequest struct {
	Number      string `json:"invoice_number" binding:"required,min=1,max=100"`
	InvoiceDate string `json:"invoice_date" binding:"required"`
}

// CreateFromInvoice snapshots an invoice's customer, terms and lines
// into a reusable template
func (h *TemplateHandler) CreateFromInvoice(c *gin.Context) {
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

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateTemplateFromInvoice(c.Request.Context(), userID, companyID, invoicingapp.CreateTemplateFromInvoiceCommand{
		InvoiceID:   req.InvoiceID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// CreateInvoice creates a new draft invoice from the template
func (h *TemplateHandler) CreateInvoice(c *gin.Context) {
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
	templateID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req CreateInvoiceFromTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoiceDate, err := time.Parse(dateLayout, req.InvoiceDate)
	if err != nil {
		h.BadRequest(c, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}

	resp, err := h.service.CreateInvoiceFromTemplate(c.Request.Context(), userID, companyID, invoicingapp.CreateInvoiceFromTemplateCommand{
		TemplateID:  templateID,
		Number:      req.Number,
		InvoiceDate: invoiceDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns the company's templates
func (h *TemplateHandler) List(c *gin.Context) {
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

	resp, err := h.service.ListTemplates(c.Request.Context(), userID, companyID, includeArchived)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns one template with its line items
func (h *TemplateHandler) Get(c *gin.Context) {
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
	templateID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	resp, err := h.service.GetTemplateWithItems(c.Request.Context(), userID, companyID, templateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Archive soft-deletes a template
func (h *TemplateHandler) Archive(c *gin.Context) {
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
	templateID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.service.ArchiveTemplate(c.Request.Context(), userID, companyID, templateID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
