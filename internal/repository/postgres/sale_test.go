package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
)

func TestSaleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSaleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := &domain.Sale{
			ProductID:   10,
			Quantity:    2,
			SalePrice:   decimal.NewFromInt(150),
			TotalAmount: decimal.NewFromInt(300),
		}
		rev := &domain.RevenueLog{RevenueType: domain.RevenueTypeSale, Amount: s.TotalAmount}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT quantity_available FROM inventory_status").
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity_available"}).AddRow(5))
		mock.ExpectQuery("INSERT INTO sales").
			WithArgs(s.ProductID, s.Quantity, s.SalePrice, s.TotalAmount, nil, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"sale_id", "sale_date"}).AddRow(7, time.Now()))
		mock.ExpectExec("UPDATE inventory_status SET quantity_available = quantity_available -").
			WithArgs(2, int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE products SET total_quantity = total_quantity -").
			WithArgs(2, int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO revenue_logs").
			WithArgs(nil, sqlmock.AnyArg(), rev.RevenueType, rev.Amount).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, s, rev)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), s.ID)
		assert.NotNil(t, rev.SaleID)
		assert.Equal(t, int64(7), *rev.SaleID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientInventory", func(t *testing.T) {
		s := &domain.Sale{ProductID: 10, Quantity: 9, SalePrice: decimal.NewFromInt(150), TotalAmount: decimal.NewFromInt(1350)}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT quantity_available FROM inventory_status").
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity_available"}).AddRow(5))
		mock.ExpectRollback()

		err := repo.Create(ctx, s, &domain.RevenueLog{})
		var insufficientErr *apperr.InsufficientInventoryError
		assert.ErrorAs(t, err, &insufficientErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		s := &domain.Sale{ProductID: 404, Quantity: 1, SalePrice: decimal.NewFromInt(150), TotalAmount: decimal.NewFromInt(150)}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT quantity_available FROM inventory_status").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"quantity_available"}))
		mock.ExpectRollback()

		err := repo.Create(ctx, s, &domain.RevenueLog{})
		var notFoundErr *apperr.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
