package handler

import (
	invoicingapp "github.com/fakturo/backend/internal/application/invoicing"
	"github.com/gin-gonic/gin"
)

// BankAccountHandler handles bank account API endpoints
type BankAccountHandler struct {
	BaseHandler
	service *invoicingapp.InvoiceService
}

// NewBankAccountHandler creates a new BankAccountHandler
func NewBankAccountHandler(service *invoicingapp.InvoiceService) *BankAccountHandler {
	return &BankAccountHandler{service: service}
}

// RegisterRoutes registers bank account routes under a company scope
func (h *BankAccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/companies/:companyID/bank-accounts")
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.POST("/:id/archive", h.Archive)
	}
}

// CreateBankAccountRequest registers payment details for invoices
type CreateBankAccountRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Iban        string `json:"iban" binding:"required"`
	BankDetails string `json:"bank_details" binding:"max=500"`
}

// Create registers a bank account for the company
func (h *BankAccountHandler) Create(c *gin.Context) {
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

	var req CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateBankAccount(c.Request.Context(), userID, companyID, invoicingapp.CreateBankAccountCommand{
		Name:        req.Name,
		Iban:        req.Iban,
		BankDetails: req.BankDetails,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns the company's bank accounts
func (h *BankAccountHandler) List(c *gin.Context) {
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

	resp, err := h.service.ListBankAccounts(c.Request.Context(), userID, companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Archive soft-deletes a bank account
func (h *BankAccountHandler) Archive(c *gin.Context) {
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
	accountID, err := getPathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bank account ID")
		return
	}

	if err := h.service.ArchiveBankAccount(c.Request.Context(), userID, companyID, accountID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
