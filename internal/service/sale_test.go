package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
)

func TestSaleService_CreateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSaleRepo)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := NewSaleService(repo)
		sale, err := svc.CreateSale(ctx, SaleInput{
			ProductID: 10,
			Quantity:  3,
			SalePrice: decimal.RequireFromString("149.50"),
		})
		assert.NoError(t, err)
		assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("448.50")))

		call := repo.Calls[len(repo.Calls)-1]
		rev := call.Arguments.Get(2).(*domain.RevenueLog)
		assert.Equal(t, domain.RevenueTypeSale, rev.RevenueType)
		assert.True(t, rev.Amount.Equal(sale.TotalAmount))
	})

	t.Run("InsufficientInventory", func(t *testing.T) {
		repo := new(MockSaleRepo)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(apperr.InsufficientInventory("Insufficient inventory"))

		svc := NewSaleService(repo)
		_, err := svc.CreateSale(ctx, SaleInput{ProductID: 10, Quantity: 99, SalePrice: decimal.NewFromInt(10)})
		var insufficientErr *apperr.InsufficientInventoryError
		assert.ErrorAs(t, err, &insufficientErr)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewSaleService(new(MockSaleRepo))
		_, err := svc.CreateSale(ctx, SaleInput{ProductID: 10, Quantity: 1})
		var validationErr *apperr.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
