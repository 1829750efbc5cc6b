package invoicing

import (
	"context"

	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/google/uuid"
)

// CreateTemplateFromInvoice snapshots an invoice's customer, bank
// account, terms, currency and line items under a new template name.
// The name must be unique within the company.
func (s *InvoiceService) CreateTemplateFromInvoice(ctx context.Context, userID, companyID uuid.UUID, cmd CreateTemplateFromInvoiceCommand) (*TemplateResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	invoice, err := s.findCompanyInvoice(ctx, companyID, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}
	items, err := s.lineItemRepo.FindByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewTemplateName(cmd.Name)
	if err != nil {
		return nil, err
	}
	exists, err := s.templateRepo.ExistsByName(ctx, companyID, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTemplateNameExists(name)
	}

	template := domain.NewInvoiceTemplate(companyID, invoice.CustomerID, invoice.BankAccountID, name, cmd.Description, invoice.PaymentTerms, invoice.Currency)
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	templateItems := make([]domain.InvoiceTemplateLineItem, 0, len(items))
	for _, item := range items {
		templateItem, err := domain.NewInvoiceTemplateLineItem(template.ID, item.Description, item.Quantity, item.UnitPrice, item.VatRate, item.LineOrder)
		if err != nil {
			return nil, err
		}
		templateItems = append(templateItems, *templateItem)
	}
	if len(templateItems) > 0 {
		if err := s.templateItemRepo.CreateMany(ctx, templateItems); err != nil {
			return nil, err
		}
	}

	resp := ToTemplateResponse(template, templateItems)
	return &resp, nil
}

// CreateInvoiceFromTemplate instantiates a template as a new draft
// invoice with a caller-supplied number and date. It goes through
// CreateInvoice, so every create-time invariant applies again.
func (s *InvoiceService) CreateInvoiceFromTemplate(ctx context.Context, userID, companyID uuid.UUID, cmd CreateInvoiceFromTemplateCommand) (*InvoiceResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	template, err := s.findCompanyTemplate(ctx, companyID, cmd.TemplateID)
	if err != nil {
		return nil, err
	}
	items, err := s.templateItemRepo.FindByTemplateID(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	lineInputs := make([]LineItemInput, 0, len(items))
	for _, item := range items {
		lineInputs = append(lineInputs, LineItemInput{
			Description: item.Description.String(),
			Quantity:    item.Quantity.String(),
			UnitPrice:   item.UnitPrice.Amount().String(),
			Currency:    item.UnitPrice.Currency().String(),
			VatRate:     item.VatRate.Value().String(),
		})
	}

	return s.CreateInvoice(ctx, userID, companyID, CreateInvoiceCommand{
		CustomerID:    template.CustomerID,
		BankAccountID: template.BankAccountID,
		Number:        cmd.Number,
		InvoiceDate:   cmd.InvoiceDate,
		PaymentTerms:  template.PaymentTerms.String(),
		Currency:      template.Currency.String(),
		LineItems:     lineInputs,
	})
}

// ListTemplates returns the company's templates, non-archived only unless
// includeArchived is set
func (s *InvoiceService) ListTemplates(ctx context.Context, userID, companyID uuid.UUID, includeArchived bool) ([]TemplateResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	var templates []domain.InvoiceTemplate
	var err error
	if includeArchived {
		templates, err = s.templateRepo.FindByCompanyID(ctx, companyID)
	} else {
		templates, err = s.templateRepo.FindActiveByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, ToTemplateResponse(&templates[i], nil))
	}
	return responses, nil
}

// GetTemplateWithItems returns one template with its line items
func (s *InvoiceService) GetTemplateWithItems(ctx context.Context, userID, companyID, templateID uuid.UUID) (*TemplateResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	template, err := s.findCompanyTemplate(ctx, companyID, templateID)
	if err != nil {
		return nil, err
	}
	items, err := s.templateItemRepo.FindByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	resp := ToTemplateResponse(template, items)
	return &resp, nil
}

// ArchiveTemplate soft-flags a template. Idempotent.
func (s *InvoiceService) ArchiveTemplate(ctx context.Context, userID, companyID, templateID uuid.UUID) error {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return err
	}

	template, err := s.findCompanyTemplate(ctx, companyID, templateID)
	if err != nil {
		return err
	}
	if template.IsArchived() {
		return nil
	}

	template.Archive()
	return s.templateRepo.Update(ctx, template)
}
