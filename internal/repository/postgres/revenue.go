package postgres

import (
	"context"
	"database/sql"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
	"github.com/shopspring/decimal"
)

type revenueRepository struct {
	db *sql.DB
}

func NewRevenueRepository(db *sql.DB) repository.RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) Daily(ctx context.Context, date string) (*domain.DailyRevenueReport, error) {
	report := &domain.DailyRevenueReport{Date: date, Total: decimal.Zero}

	query := `SELECT revenue_type, SUM(amount), COUNT(*)
	          FROM revenue_logs
	          WHERE log_date = $1
	          GROUP BY revenue_type`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.RevenueBreakdown
		if err := rows.Scan(&b.RevenueType, &b.TotalAmount, &b.TransactionCount); err != nil {
			return nil, err
		}
		report.Breakdown = append(report.Breakdown, b)
		report.Total = report.Total.Add(b.TotalAmount)
	}
	return report, rows.Err()
}

func (r *revenueRepository) Monthly(ctx context.Context, year, month int) (*domain.MonthlyRevenueReport, error) {
	report := &domain.MonthlyRevenueReport{Year: year, Month: month, Total: decimal.Zero}

	query := `SELECT revenue_type, SUM(amount), COUNT(*)
	          FROM revenue_logs
	          WHERE EXTRACT(YEAR FROM log_date) = $1 AND EXTRACT(MONTH FROM log_date) = $2
	          GROUP BY revenue_type`
	rows, err := r.db.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var b domain.RevenueBreakdown
		if err := rows.Scan(&b.RevenueType, &b.TotalAmount, &b.TransactionCount); err != nil {
			rows.Close()
			return nil, err
		}
		report.Breakdown = append(report.Breakdown, b)
		report.Total = report.Total.Add(b.TotalAmount)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dailyQuery := `SELECT to_char(log_date, 'YYYY-MM-DD'), SUM(amount)
	               FROM revenue_logs
	               WHERE EXTRACT(YEAR FROM log_date) = $1 AND EXTRACT(MONTH FROM log_date) = $2
	               GROUP BY log_date
	               ORDER BY log_date`
	dailyRows, err := r.db.QueryContext(ctx, dailyQuery, year, month)
	if err != nil {
		return nil, err
	}
	defer dailyRows.Close()

	for dailyRows.Next() {
		var d domain.DailyTotal
		if err := dailyRows.Scan(&d.LogDate, &d.DailyTotal); err != nil {
			return nil, err
		}
		report.DailyBreakdown = append(report.DailyBreakdown, d)
	}
	return report, dailyRows.Err()
}

func (r *revenueRepository) ListRecent(ctx context.Context, limit int) ([]domain.RevenueLog, error) {
	query := `SELECT r.log_id, to_char(r.log_date, 'YYYY-MM-DD'), r.booking_id, r.sale_id, r.revenue_type, r.amount, r.created_at,
	                 COALESCE(b.booking_number, '')
	          FROM revenue_logs r
	          LEFT JOIN bookings b ON r.booking_id = b.booking_id
	          ORDER BY r.log_date DESC, r.created_at DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.RevenueLog
	for rows.Next() {
		var l domain.RevenueLog
		var saleID sql.NullInt64
		var bookingID sql.NullInt64
		if err := rows.Scan(&l.ID, &l.LogDate, &bookingID, &saleID, &l.RevenueType, &l.Amount, &l.CreatedAt, &l.BookingNumber); err != nil {
			return nil, err
		}
		if bookingID.Valid {
			l.BookingID = &bookingID.Int64
		}
		if saleID.Valid {
			l.SaleID = &saleID.Int64
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
