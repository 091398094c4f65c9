package service

import (
	"context"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
	"github.com/shopspring/decimal"
)

type saleService struct {
	saleRepo repository.SaleRepository
}

func NewSaleService(saleRepo repository.SaleRepository) SaleService {
	return &saleService{saleRepo: saleRepo}
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.saleRepo.List(ctx)
}

func (s *saleService) CreateSale(ctx context.Context, in SaleInput) (*domain.Sale, error) {
	if in.ProductID == 0 || in.Quantity <= 0 || !in.SalePrice.GreaterThan(decimal.Zero) {
		return nil, apperr.Validation("Product, quantity, and sale price are required")
	}

	sale := &domain.Sale{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		SalePrice:   in.SalePrice,
		TotalAmount: in.SalePrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		CustomerID:  in.CustomerID,
		EmployeeID:  in.EmployeeID,
		Notes:       in.Notes,
	}
	rev := &domain.RevenueLog{
		RevenueType: domain.RevenueTypeSale,
		Amount:      sale.TotalAmount,
	}

	if err := s.saleRepo.Create(ctx, sale, rev); err != nil {
		return nil, err
	}
	return sale, nil
}
