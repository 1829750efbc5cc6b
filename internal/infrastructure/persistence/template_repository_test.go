package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTemplateRepository(t *testing.T) (*GormInvoiceTemplateRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormInvoiceTemplateRepository(gormDB), mock, mockDB
}

var templateColumns = []string{
	"id", "created_at", "updated_at", "company_id", "customer_id", "bank_account_id",
	"name", "description", "payment_terms", "currency", "archived_at",
}

func newTemplateFixture(t *testing.T, companyID uuid.UUID) *invoicing.InvoiceTemplate {
	t.Helper()
	name, err := invoicing.NewTemplateName("Monthly retainer")
	require.NoError(t, err)
	terms, err := valueobject.ParsePaymentTerms("net_30")
	require.NoError(t, err)
	return invoicing.NewInvoiceTemplate(companyID, uuid.New(), nil, name, nil, terms, valueobject.EUR)
}

func TestGormInvoiceTemplateRepository_FindActiveByCompanyID(t *testing.T) {
	t.Run("filters archived templates in the query", func(t *testing.T) {
		repo, mock, mockDB := newMockTemplateRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(templateColumns).
			AddRow(uuid.New(), now, now, companyID, uuid.New(), nil,
				"Monthly retainer", nil, "net_30", "EUR", nil)

		mock.ExpectQuery(`SELECT \* FROM "invoice_templates" WHERE company_id = \$1 AND archived_at IS NULL ORDER BY name ASC`).
			WithArgs(companyID).
			WillReturnRows(rows)

		templates, err := repo.FindActiveByCompanyID(context.Background(), companyID)

		assert.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, "Monthly retainer", templates[0].Name.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceTemplateRepository_FindByCompanyID(t *testing.T) {
	t.Run("includes archived templates", func(t *testing.T) {
		repo, mock, mockDB := newMockTemplateRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(templateColumns).
			AddRow(uuid.New(), now, now, companyID, uuid.New(), nil,
				"Monthly retainer", nil, "net_30", "EUR", now)

		mock.ExpectQuery(`SELECT \* FROM "invoice_templates" WHERE company_id = \$1 ORDER BY name ASC`).
			WithArgs(companyID).
			WillReturnRows(rows)

		templates, err := repo.FindByCompanyID(context.Background(), companyID)

		assert.NoError(t, err)
		require.Len(t, templates, 1)
		assert.True(t, templates[0].IsArchived())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceTemplateRepository_Create(t *testing.T) {
	t.Run("inserts a template row", func(t *testing.T) {
		repo, mock, mockDB := newMockTemplateRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "invoice_templates"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), newTemplateFixture(t, uuid.New()))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique-constraint violation to the name conflict", func(t *testing.T) {
		repo, mock, mockDB := newMockTemplateRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "invoice_templates"`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_template_company_name"})

		err := repo.Create(context.Background(), newTemplateFixture(t, uuid.New()))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TEMPLATE_NAME_EXISTS", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
