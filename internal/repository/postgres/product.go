package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productSelect = `
	SELECT p.product_id, p.product_name, p.barcode, p.total_quantity, p.rental_price, p.sale_price,
	       p.storage_location_id, p.status, p.created_at,
	       COALESCE(sl.location_name, ''),
	       COALESCE(i.quantity_available, 0), COALESCE(i.quantity_rented, 0),
	       COALESCE(i.quantity_washing, 0), COALESCE(i.quantity_damaged, 0)
	FROM products p
	LEFT JOIN storage_locations sl ON p.storage_location_id = sl.location_id
	LEFT JOIN inventory_status i ON p.product_id = i.product_id`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.ProductName, &p.Barcode, &p.TotalQuantity, &p.RentalPrice, &p.SalePrice,
		&p.StorageLocationID, &p.Status, &p.CreatedAt,
		&p.LocationName,
		&p.QuantityAvailable, &p.QuantityRented, &p.QuantityWashing, &p.QuantityDamaged)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+` ORDER BY p.product_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	query := productSelect + ` WHERE p.status = 'Available' AND COALESCE(i.quantity_available, 0) > 0 ORDER BY p.product_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+` WHERE p.product_id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Product not found")
	}
	return p, err
}

func (r *productRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+` WHERE p.barcode = $1 AND p.status = 'Available'`, barcode)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Product not found")
	}
	return p, err
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO products (product_name, barcode, total_quantity, rental_price, sale_price, storage_location_id)
		          VALUES ($1, $2, $3, $4, $5, $6) RETURNING product_id, status, created_at`
		err := tx.QueryRowContext(ctx, query, p.ProductName, p.Barcode, p.TotalQuantity, p.RentalPrice, p.SalePrice, p.StorageLocationID).
			Scan(&p.ID, &p.Status, &p.CreatedAt)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO inventory_status (product_id, quantity_available) VALUES ($1, $2)`,
			p.ID, p.TotalQuantity)
		if err != nil {
			return err
		}
		p.QuantityAvailable = p.TotalQuantity
		return nil
	})
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET product_name=$1, barcode=$2, total_quantity=$3, rental_price=$4, sale_price=$5, storage_location_id=$6, status=$7 WHERE product_id=$8`
	res, err := r.db.ExecContext(ctx, query, p.ProductName, p.Barcode, p.TotalQuantity, p.RentalPrice, p.SalePrice, p.StorageLocationID, p.Status, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("Product not found")
	}
	return nil
}
