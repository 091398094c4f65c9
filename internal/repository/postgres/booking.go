package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingSelect = `
	SELECT b.booking_id, b.booking_number, b.customer_id, b.employee_id,
	       to_char(b.rental_start_date, 'YYYY-MM-DD'), to_char(b.rental_end_date, 'YYYY-MM-DD'),
	       b.booking_status, b.total_amount, b.advance_amount, b.final_amount, b.remaining_balance,
	       b.advance_payment_method, b.final_payment_method, b.pickup_date, b.created_at,
	       c.customer_name, c.phone_number, e.employee_name
	FROM bookings b
	JOIN customers c ON b.customer_id = c.customer_id
	JOIN employees e ON b.employee_id = e.employee_id`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.BookingNumber, &b.CustomerID, &b.EmployeeID,
		&b.RentalStartDate, &b.RentalEndDate,
		&b.Status, &b.TotalAmount, &b.AdvanceAmount, &b.FinalAmount, &b.RemainingBalance,
		&b.AdvancePaymentMethod, &b.FinalPaymentMethod, &b.PickupDate, &b.CreatedAt,
		&b.CustomerName, &b.PhoneNumber, &b.EmployeeName)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListDueToday(ctx context.Context) ([]domain.Booking, error) {
	query := bookingSelect + ` WHERE b.rental_end_date = CURRENT_DATE AND b.booking_status = 'Active' ORDER BY b.booking_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.booking_id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Booking not found")
	}
	return b, err
}

func (r *bookingRepository) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.booking_number = $1`, number)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Booking not found")
	}
	return b, err
}

func (r *bookingRepository) Items(ctx context.Context, bookingID int64) ([]domain.BookingItem, error) {
	query := `SELECT bi.booking_item_id, bi.booking_id, bi.product_id, p.product_name, bi.quantity,
	                 bi.rental_duration_days, bi.default_rental_price, bi.agreed_rental_price, bi.item_total_amount
	          FROM booking_items bi
	          JOIN products p ON bi.product_id = p.product_id
	          WHERE bi.booking_id = $1`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.BookingItem
	for rows.Next() {
		var it domain.BookingItem
		if err := rows.Scan(&it.ID, &it.BookingID, &it.ProductID, &it.ProductName, &it.Quantity,
			&it.RentalDurationDays, &it.DefaultRentalPrice, &it.AgreedRentalPrice, &it.ItemTotalAmount); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *bookingRepository) LastNumberLike(ctx context.Context, pattern string) (string, error) {
	var number string
	query := `SELECT booking_number FROM bookings WHERE booking_number LIKE $1 ORDER BY booking_number DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, pattern).Scan(&number)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return number, err
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking, payment *domain.Payment, rev *domain.RevenueLog) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO bookings (booking_number, customer_id, employee_id, rental_start_date, rental_end_date,
		          total_amount, advance_amount, remaining_balance, advance_payment_method)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING booking_id, created_at`
		err := tx.QueryRowContext(ctx, query,
			b.BookingNumber, b.CustomerID, b.EmployeeID, b.RentalStartDate, b.RentalEndDate,
			b.TotalAmount, b.AdvanceAmount, b.RemainingBalance, b.AdvancePaymentMethod).
			Scan(&b.ID, &b.CreatedAt)
		if err != nil {
			return err
		}
		b.Status = domain.BookingStatusBooked

		for i := range b.Items {
			it := &b.Items[i]
			it.BookingID = b.ID
			err := tx.QueryRowContext(ctx,
				`INSERT INTO booking_items (booking_id, product_id, quantity, rental_duration_days, default_rental_price, agreed_rental_price, item_total_amount)
				 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING booking_item_id`,
				it.BookingID, it.ProductID, it.Quantity, it.RentalDurationDays,
				it.DefaultRentalPrice, it.AgreedRentalPrice, it.ItemTotalAmount).Scan(&it.ID)
			if err != nil {
				return err
			}
		}

		if payment != nil {
			payment.BookingID = b.ID
			rev.BookingID = &b.ID
			return insertPaymentAndRevenue(ctx, tx, payment, rev)
		}
		return nil
	})
}

func (r *bookingRepository) Pickup(ctx context.Context, b *domain.Booking, additional []domain.BookingItem, payment *domain.Payment, rev *domain.RevenueLog) error {
	return runInTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT product_id, quantity FROM booking_items WHERE booking_id = $1`, b.ID)
		if err != nil {
			return err
		}
		type line struct {
			productID int64
			quantity  int
		}
		var lines []line
		for rows.Next() {
			var l line
			if err := rows.Scan(&l.productID, &l.quantity); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, l := range lines {
			if err := shiftAvailableToRented(ctx, tx, l.productID, l.quantity); err != nil {
				return err
			}
		}

		for i := range additional {
			it := &additional[i]
			it.BookingID = b.ID
			err := tx.QueryRowContext(ctx,
				`INSERT INTO booking_items (booking_id, product_id, quantity, rental_duration_days, default_rental_price, agreed_rental_price, item_total_amount)
				 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING booking_item_id`,
				it.BookingID, it.ProductID, it.Quantity, it.RentalDurationDays,
				it.DefaultRentalPrice, it.AgreedRentalPrice, it.ItemTotalAmount).Scan(&it.ID)
			if err != nil {
				return err
			}
			if err := shiftAvailableToRented(ctx, tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE bookings SET booking_status='Active', total_amount=$1, final_amount=$2, remaining_balance=$3, final_payment_method=$4, pickup_date=NOW() WHERE booking_id=$5`,
			b.TotalAmount, b.FinalAmount, b.RemainingBalance, b.FinalPaymentMethod, b.ID)
		if err != nil {
			return err
		}

		if payment != nil {
			payment.BookingID = b.ID
			rev.BookingID = &b.ID
			return insertPaymentAndRevenue(ctx, tx, payment, rev)
		}
		return nil
	})
}

func (r *bookingRepository) Return(ctx context.Context, bookingID int64, actions []domain.ItemReturn) error {
	byProduct := make(map[int64]domain.ItemReturn, len(actions))
	for _, a := range actions {
		byProduct[a.ProductID] = a
	}

	return runInTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT product_id, quantity FROM booking_items WHERE booking_id = $1`, bookingID)
		if err != nil {
			return err
		}
		type line struct {
			productID int64
			quantity  int
		}
		var lines []line
		for rows.Next() {
			var l line
			if err := rows.Scan(&l.productID, &l.quantity); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.NotFound("Booking not found")
		}

		for _, l := range lines {
			action, ok := byProduct[l.productID]
			if !ok {
				return apperr.Validation("Missing return action for product %d", l.productID)
			}
			switch action.Action {
			case domain.ReturnActionReturn:
				_, err = tx.ExecContext(ctx,
					`UPDATE inventory_status SET quantity_available = quantity_available + $1, quantity_rented = quantity_rented - $1, last_updated = NOW() WHERE product_id = $2`,
					l.quantity, l.productID)
			case domain.ReturnActionWashing:
				_, err = tx.ExecContext(ctx,
					`UPDATE inventory_status SET quantity_rented = quantity_rented - $1, quantity_washing = quantity_washing + $1, last_updated = NOW() WHERE product_id = $2`,
					l.quantity, l.productID)
				if err == nil {
					_, err = tx.ExecContext(ctx,
						`INSERT INTO washing_items (product_id, quantity) VALUES ($1, $2)`,
						l.productID, l.quantity)
				}
			case domain.ReturnActionDamaged:
				_, err = tx.ExecContext(ctx,
					`UPDATE inventory_status SET quantity_rented = quantity_rented - $1, quantity_damaged = quantity_damaged + $1, last_updated = NOW() WHERE product_id = $2`,
					l.quantity, l.productID)
				if err == nil {
					_, err = tx.ExecContext(ctx,
						`INSERT INTO damaged_items (product_id, quantity, damage_details) VALUES ($1, $2, $3)`,
						l.productID, l.quantity, action.DamageDetails)
				}
			default:
				return apperr.Validation("Unknown return action %q for product %d", action.Action, l.productID)
			}
			if err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE bookings SET booking_status='Completed' WHERE booking_id=$1`, bookingID)
		return err
	})
}

func shiftAvailableToRented(ctx context.Context, tx *sql.Tx, productID int64, qty int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE inventory_status SET quantity_available = quantity_available - $1, quantity_rented = quantity_rented + $1, last_updated = NOW() WHERE product_id = $2`,
		qty, productID)
	return err
}

func insertPaymentAndRevenue(ctx context.Context, tx *sql.Tx, payment *domain.Payment, rev *domain.RevenueLog) error {
	err := tx.QueryRowContext(ctx,
		`INSERT INTO payments (booking_id, payment_type, amount, payment_method) VALUES ($1, $2, $3, $4) RETURNING payment_id, payment_date`,
		payment.BookingID, payment.PaymentType, payment.Amount, payment.PaymentMethod).
		Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO revenue_logs (log_date, booking_id, sale_id, revenue_type, amount) VALUES (CURRENT_DATE, $1, $2, $3, $4)`,
		rev.BookingID, rev.SaleID, rev.RevenueType, rev.Amount)
	return err
}
