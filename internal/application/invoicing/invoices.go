package invoicing

import (
	"context"
	"errors"

	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInvoice creates a draft invoice together with its full line
// item set. All invariants are checked before anything is written: the
// customer must belong to the company, the invoice number must be free,
// the set must be non-empty and every line must use the declared
// invoice currency.
func (s *InvoiceService) CreateInvoice(ctx context.Context, userID, companyID uuid.UUID, cmd CreateInvoiceCommand) (*InvoiceResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	number, err := domain.NewInvoiceNumber(cmd.Number)
	if err != nil {
		return nil, err
	}
	terms, err := valueobject.ParsePaymentTerms(cmd.PaymentTerms)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TERMS", err.Error())
	}
	currency, err := valueobject.ParseCurrency(cmd.Currency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CURRENCY", err.Error())
	}

	if _, err := s.findCompanyCustomer(ctx, companyID, cmd.CustomerID); err != nil {
		return nil, err
	}
	if cmd.BankAccountID != nil {
		if _, err := s.findCompanyBankAccount(ctx, companyID, *cmd.BankAccountID); err != nil {
			return nil, err
		}
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, companyID, number, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrInvoiceNumberExists(number)
	}

	parsed, err := parseLineItems(currency, cmd.LineItems)
	if err != nil {
		return nil, err
	}

	invoice := domain.NewInvoice(companyID, cmd.CustomerID, cmd.BankAccountID, number, cmd.InvoiceDate, terms, currency)
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	items, err := buildLineItems(invoice.ID, parsed)
	if err != nil {
		return nil, err
	}
	if err := s.lineItemRepo.CreateMany(ctx, items); err != nil {
		return nil, err
	}

	totals, err := domain.CalculateTotals(currency, items)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice, items, &totals)
	return &resp, nil
}

// UpdateInvoice replaces a draft invoice's fields and its whole line
// item set. Non-draft invoices are rejected up front.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, userID, companyID uuid.UUID, cmd UpdateInvoiceCommand) (*InvoiceResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.IsEditable() {
		return nil, domain.ErrCannotEditInvoice(invoice.Status)
	}

	number, err := domain.NewInvoiceNumber(cmd.Number)
	if err != nil {
		return nil, err
	}
	terms, err := valueobject.ParsePaymentTerms(cmd.PaymentTerms)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TERMS", err.Error())
	}
	currency, err := valueobject.ParseCurrency(cmd.Currency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CURRENCY", err.Error())
	}

	if _, err := s.findCompanyCustomer(ctx, companyID, cmd.CustomerID); err != nil {
		return nil, err
	}
	if cmd.BankAccountID != nil {
		if _, err := s.findCompanyBankAccount(ctx, companyID, *cmd.BankAccountID); err != nil {
			return nil, err
		}
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, companyID, number, &cmd.InvoiceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrInvoiceNumberExists(number)
	}

	parsed, err := parseLineItems(currency, cmd.LineItems)
	if err != nil {
		return nil, err
	}

	if err := invoice.Update(cmd.CustomerID, cmd.BankAccountID, number, cmd.InvoiceDate, terms, currency); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	items, err := buildLineItems(invoice.ID, parsed)
	if err != nil {
		return nil, err
	}
	if err := s.lineItemRepo.ReplaceForInvoice(ctx, invoice.ID, items); err != nil {
		return nil, err
	}

	totals, err := domain.CalculateTotals(currency, items)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice, items, &totals)
	return &resp, nil
}

// ChangeInvoiceStatus applies one lifecycle transition. Nothing is
// persisted when the transition is rejected.
func (s *InvoiceService) ChangeInvoiceStatus(ctx context.Context, userID, companyID, invoiceID uuid.UUID, target domain.InvoiceStatus) (*InvoiceResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := invoice.ChangeStatus(target); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice, nil, nil)
	return &resp, nil
}

// ArchiveInvoice soft-flags an invoice. Idempotent.
func (s *InvoiceService) ArchiveInvoice(ctx context.Context, userID, companyID, invoiceID uuid.UUID) error {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if invoice.IsArchived() {
		return nil
	}

	invoice.Archive()
	return s.invoiceRepo.Update(ctx, invoice)
}

// DeleteInvoice hard-deletes a draft invoice and its line items.
// Invoices that have left draft can only be cancelled, never deleted.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, companyID, invoiceID uuid.UUID) error {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if !invoice.IsEditable() {
		return domain.ErrCannotEditInvoice(invoice.Status)
	}

	if err := s.lineItemRepo.DeleteByInvoiceID(ctx, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

// GetInvoice returns one invoice with its line items and freshly
// computed totals
func (s *InvoiceService) GetInvoice(ctx context.Context, userID, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.lineItemRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	totals, err := domain.CalculateTotals(invoice.Currency, items)
	if err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice, items, &totals)
	return &resp, nil
}

// GetInvoiceWithDetails joins the invoice with its customer, company
// and optional bank account for rendering. A missing company record is
// an internal error: the invoice references it, so its absence means
// referential integrity was violated upstream.
func (s *InvoiceService) GetInvoiceWithDetails(ctx context.Context, userID, companyID, invoiceID uuid.UUID) (*InvoiceDetailsResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.lineItemRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	totals, err := domain.CalculateTotals(invoice.Currency, items)
	if err != nil {
		return nil, err
	}

	customer, err := s.findCompanyCustomer(ctx, companyID, invoice.CustomerID)
	if err != nil {
		return nil, err
	}

	comp, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("invoice references a missing company",
				zap.String("invoice_id", invoiceID.String()),
				zap.String("company_id", companyID.String()))
			return nil, shared.ErrInternal
		}
		return nil, err
	}

	details := &InvoiceDetailsResponse{
		Invoice:  ToInvoiceResponse(invoice, items, &totals),
		Customer: ToCustomerResponse(customer),
		Company:  ToCompanyResponse(comp),
	}
	if invoice.BankAccountID != nil {
		account, err := s.findCompanyBankAccount(ctx, companyID, *invoice.BankAccountID)
		if err != nil {
			return nil, err
		}
		accountResp := ToBankAccountResponse(account)
		details.BankAccount = &accountResp
	}
	return details, nil
}

// ListInvoices returns the company's invoices, optionally filtered by
// status or customer
func (s *InvoiceService) ListInvoices(ctx context.Context, userID, companyID uuid.UUID, filter InvoiceListFilter) ([]InvoiceResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	var invoices []domain.Invoice
	var err error
	switch {
	case filter.Status != nil:
		var status domain.InvoiceStatus
		status, err = domain.ParseInvoiceStatus(*filter.Status)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_STATUS", err.Error())
		}
		invoices, err = s.invoiceRepo.FindByCompanyAndStatus(ctx, companyID, status)
	case filter.CustomerID != nil:
		invoices, err = s.invoiceRepo.FindByCompanyAndCustomer(ctx, companyID, *filter.CustomerID)
	default:
		invoices, err = s.invoiceRepo.FindByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i], nil, nil))
	}
	return responses, nil
}

// MarkOverdueInvoices transitions every sent invoice past its due date
// to overdue and returns the transitioned ids. Each candidate is
// re-checked at execution time; the stored status only moves here, so
// an invoice can be past due yet still read as sent between sweeps.
func (s *InvoiceService) MarkOverdueInvoices(ctx context.Context, userID, companyID uuid.UUID) (*MarkOverdueResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	today := s.now()
	candidates, err := s.invoiceRepo.FindOverdue(ctx, companyID, today)
	if err != nil {
		return nil, err
	}

	marked := make([]uuid.UUID, 0, len(candidates))
	for i := range candidates {
		invoice := &candidates[i]
		if !invoice.IsOverdue(today) {
			continue
		}
		if err := invoice.ChangeStatus(domain.InvoiceStatusOverdue); err != nil {
			return nil, err
		}
		if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
			return nil, err
		}
		marked = append(marked, invoice.ID)
	}

	s.logger.Info("overdue sweep finished",
		zap.String("company_id", companyID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("marked", len(marked)))

	return &MarkOverdueResponse{MarkedInvoiceIDs: marked}, nil
}

// SetInvoicePDFPath records where the rendered document for the
// invoice is stored
func (s *InvoiceService) SetInvoicePDFPath(ctx context.Context, userID, companyID, invoiceID uuid.UUID, path string) error {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}

	invoice.SetPDFPath(path)
	return s.invoiceRepo.Update(ctx, invoice)
}
