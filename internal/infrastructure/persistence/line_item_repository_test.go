package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockLineItemRepository(t *testing.T) (*GormInvoiceLineItemRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormInvoiceLineItemRepository(gormDB), mock, mockDB
}

var lineItemColumns = []string{
	"id", "created_at", "updated_at", "invoice_id",
	"description", "quantity", "unit_price", "currency", "vat_rate", "line_order",
}

func newTestLineItem(t *testing.T, invoiceID uuid.UUID, order int) invoicing.InvoiceLineItem {
	t.Helper()
	description, err := invoicing.NewLineItemDescription("Consulting")
	require.NoError(t, err)
	quantity, err := valueobject.NewQuantityFromString("2")
	require.NoError(t, err)
	price, err := valueobject.NewMoneyFromString("100", valueobject.EUR)
	require.NoError(t, err)
	vat, err := valueobject.NewVatRateFromString("25")
	require.NoError(t, err)
	item, err := invoicing.NewInvoiceLineItem(invoiceID, description, quantity, price, vat, order)
	require.NoError(t, err)
	return *item
}

func TestGormInvoiceLineItemRepository_FindByInvoiceID(t *testing.T) {
	t.Run("returns items in line order", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(lineItemColumns).
			AddRow(uuid.New(), now, now, invoiceID,
				"Consulting", decimal.NewFromInt(2), decimal.NewFromInt(100), "EUR", decimal.NewFromInt(25), 1).
			AddRow(uuid.New(), now, now, invoiceID,
				"Hosting", decimal.NewFromInt(1), decimal.NewFromInt(50), "EUR", decimal.NewFromInt(25), 2)

		mock.ExpectQuery(`SELECT \* FROM "invoice_line_items" WHERE invoice_id = \$1 ORDER BY line_order ASC`).
			WithArgs(invoiceID).
			WillReturnRows(rows)

		items, err := repo.FindByInvoiceID(context.Background(), invoiceID)

		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].LineOrder)
		assert.Equal(t, "Consulting", items[0].Description.String())
		assert.Equal(t, 2, items[1].LineOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects row with out-of-range vat rate", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(lineItemColumns).
			AddRow(uuid.New(), now, now, invoiceID,
				"Consulting", decimal.NewFromInt(2), decimal.NewFromInt(100), "EUR", decimal.NewFromInt(150), 1)

		mock.ExpectQuery(`SELECT \* FROM "invoice_line_items" WHERE invoice_id = \$1 ORDER BY line_order ASC`).
			WithArgs(invoiceID).
			WillReturnRows(rows)

		items, err := repo.FindByInvoiceID(context.Background(), invoiceID)

		assert.Error(t, err)
		assert.Nil(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceLineItemRepository_ReplaceForInvoice(t *testing.T) {
	t.Run("deletes and inserts within one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		items := []invoicing.InvoiceLineItem{
			newTestLineItem(t, invoiceID, 1),
			newTestLineItem(t, invoiceID, 2),
		}

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "invoice_line_items" WHERE invoice_id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO "invoice_line_items"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.ReplaceForInvoice(context.Background(), invoiceID, items)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty replacement only clears existing items", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "invoice_line_items" WHERE invoice_id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ReplaceForInvoice(context.Background(), invoiceID, nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the insert fails", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		items := []invoicing.InvoiceLineItem{newTestLineItem(t, invoiceID, 1)}
		insertErr := errors.New("insert failed")

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "invoice_line_items" WHERE invoice_id = \$1`).
			WithArgs(invoiceID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "invoice_line_items"`).
			WillReturnError(insertErr)
		mock.ExpectRollback()

		err := repo.ReplaceForInvoice(context.Background(), invoiceID, items)

		assert.ErrorIs(t, err, insertErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceLineItemRepository_CreateMany(t *testing.T) {
	t.Run("no-op for empty batch", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		err := repo.CreateMany(context.Background(), nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts the batch", func(t *testing.T) {
		repo, mock, mockDB := newMockLineItemRepository(t)
		defer mockDB.Close()

		invoiceID := uuid.New()
		items := []invoicing.InvoiceLineItem{
			newTestLineItem(t, invoiceID, 1),
			newTestLineItem(t, invoiceID, 2),
		}

		mock.ExpectExec(`INSERT INTO "invoice_line_items"`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.CreateMany(context.Background(), items)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
