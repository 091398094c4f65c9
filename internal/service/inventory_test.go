package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
)

func TestInventoryService_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("EnoughUnits", func(t *testing.T) {
		repo := new(MockInventoryRepo)
		repo.On("GetStatus", mock.Anything, int64(10)).
			Return(&domain.InventoryStatus{ProductID: 10, QuantityAvailable: 5}, nil)
		repo.On("BookedQuantity", mock.Anything, int64(10), "2026-09-01", "2026-09-03").Return(2, nil)

		svc := NewInventoryService(repo)
		result, err := svc.CheckAvailability(ctx, 10, 3, "2026-09-01", "2026-09-03")
		assert.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, 3, result.AvailableQuantity)
		assert.Empty(t, result.Message)
	})

	t.Run("InsufficientUnits", func(t *testing.T) {
		repo := new(MockInventoryRepo)
		repo.On("GetStatus", mock.Anything, int64(10)).
			Return(&domain.InventoryStatus{ProductID: 10, QuantityAvailable: 5}, nil)
		repo.On("BookedQuantity", mock.Anything, int64(10), "2026-09-01", "2026-09-03").Return(4, nil)

		svc := NewInventoryService(repo)
		result, err := svc.CheckAvailability(ctx, 10, 3, "2026-09-01", "2026-09-03")
		assert.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, 1, result.AvailableQuantity)
		assert.Equal(t, "Only 1 units available for selected dates", result.Message)
	})

	t.Run("FullyReserved", func(t *testing.T) {
		repo := new(MockInventoryRepo)
		repo.On("GetStatus", mock.Anything, int64(10)).
			Return(&domain.InventoryStatus{ProductID: 10, QuantityAvailable: 5}, nil)
		repo.On("BookedQuantity", mock.Anything, int64(10), "2026-09-01", "2026-09-03").Return(5, nil)

		svc := NewInventoryService(repo)
		result, err := svc.CheckAvailability(ctx, 10, 1, "2026-09-01", "2026-09-03")
		assert.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, 0, result.AvailableQuantity)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		repo := new(MockInventoryRepo)
		repo.On("GetStatus", mock.Anything, int64(99)).
			Return(nil, apperr.NotFound("Product not found"))

		svc := NewInventoryService(repo)
		result, err := svc.CheckAvailability(ctx, 99, 1, "2026-09-01", "2026-09-03")
		assert.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, "Product not found", result.Message)
	})

	t.Run("BadDates", func(t *testing.T) {
		svc := NewInventoryService(new(MockInventoryRepo))
		_, err := svc.CheckAvailability(ctx, 10, 1, "09/01/2026", "2026-09-03")
		var validationErr *apperr.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		svc := NewInventoryService(new(MockInventoryRepo))
		_, err := svc.CheckAvailability(ctx, 10, 0, "2026-09-01", "2026-09-03")
		var validationErr *apperr.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
