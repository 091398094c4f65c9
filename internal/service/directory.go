package service

import (
	"context"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

// Directory services are plain pass-through glue over the CRUD repositories.

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.CustomerName == "" || c.PhoneNumber == "" {
		return apperr.Validation("Customer name and phone number are required")
	}
	return s.customerRepo.Create(ctx, c)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.CustomerName == "" || c.PhoneNumber == "" {
		return apperr.Validation("Customer name and phone number are required")
	}
	return s.customerRepo.Update(ctx, c)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *employeeService) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	if e.EmployeeName == "" {
		return apperr.Validation("Employee name is required")
	}
	return s.employeeRepo.Create(ctx, e)
}

type locationService struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) ListLocations(ctx context.Context) ([]domain.StorageLocation, error) {
	return s.locationRepo.List(ctx)
}

func (s *locationService) CreateLocation(ctx context.Context, l *domain.StorageLocation) error {
	if l.LocationName == "" {
		return apperr.Validation("Location name is required")
	}
	return s.locationRepo.Create(ctx, l)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListAvailable(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.productRepo.GetByBarcode(ctx, barcode)
}

func (s *productService) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.ProductName == "" || p.TotalQuantity < 0 || p.RentalPrice.IsZero() || p.SalePrice.IsZero() {
		return apperr.Validation("All product fields are required")
	}
	return s.productRepo.Create(ctx, p)
}

func (s *productService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if p.ProductName == "" {
		return apperr.Validation("All product fields are required")
	}
	if p.Status == "" {
		p.Status = domain.ProductStatusAvailable
	}
	return s.productRepo.Update(ctx, p)
}
