package postgres

import (
	"context"
	"database/sql"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type locationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) List(ctx context.Context) ([]domain.StorageLocation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT location_id, location_name, created_at FROM storage_locations ORDER BY location_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.StorageLocation
	for rows.Next() {
		var l domain.StorageLocation
		if err := rows.Scan(&l.ID, &l.LocationName, &l.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationRepository) Create(ctx context.Context, l *domain.StorageLocation) error {
	query := `INSERT INTO storage_locations (location_name) VALUES ($1) RETURNING location_id, created_at`
	return r.db.QueryRowContext(ctx, query, l.LocationName).Scan(&l.ID, &l.CreatedAt)
}
