package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
	"github.com/500AN/rental-system/internal/utils"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) ListInventory(ctx context.Context) ([]domain.InventoryStatus, error) {
	return s.inventoryRepo.List(ctx)
}

// CheckAvailability subtracts date-overlapping reservations (line items on
// Booked/Active bookings) from the ledger's available count. The reservation
// is virtual: creating a booking never touches the ledger, only pickup does.
func (s *inventoryService) CheckAvailability(ctx context.Context, productID int64, quantity int, startDate, endDate string) (*domain.AvailabilityResult, error) {
	if productID == 0 || quantity <= 0 {
		return nil, apperr.Validation("product_id and a positive quantity are required")
	}
	if _, err := utils.ParseDate(startDate); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if _, err := utils.ParseDate(endDate); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	status, err := s.inventoryRepo.GetStatus(ctx, productID)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return &domain.AvailabilityResult{Available: false, Message: "Product not found"}, nil
		}
		return nil, err
	}

	booked, err := s.inventoryRepo.BookedQuantity(ctx, productID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	availableQty := status.QuantityAvailable - booked
	result := &domain.AvailabilityResult{
		Available:         availableQty >= quantity,
		AvailableQuantity: availableQty,
	}
	if !result.Available {
		result.Message = fmt.Sprintf("Only %d units available for selected dates", availableQty)
	}
	return result, nil
}
