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

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("WithAdvancePayment", func(t *testing.T) {
		method := "Cash"
		b := &domain.Booking{
			BookingNumber:        "BK-20260901-001",
			CustomerID:           1,
			EmployeeID:           2,
			RentalStartDate:      "2026-09-01",
			RentalEndDate:        "2026-09-03",
			TotalAmount:          decimal.NewFromInt(690),
			AdvanceAmount:        decimal.NewFromInt(200),
			RemainingBalance:     decimal.NewFromInt(490),
			AdvancePaymentMethod: &method,
			Items: []domain.BookingItem{
				{ProductID: 10, Quantity: 2, RentalDurationDays: 3,
					DefaultRentalPrice: decimal.NewFromInt(100),
					AgreedRentalPrice:  decimal.NewFromInt(90),
					ItemTotalAmount:    decimal.NewFromInt(540)},
			},
		}
		payment := &domain.Payment{PaymentType: domain.PaymentTypeAdvance, Amount: b.AdvanceAmount, PaymentMethod: &method}
		rev := &domain.RevenueLog{RevenueType: domain.RevenueTypeRentalAdvance, Amount: b.AdvanceAmount}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.BookingNumber, b.CustomerID, b.EmployeeID, b.RentalStartDate, b.RentalEndDate,
				b.TotalAmount, b.AdvanceAmount, b.RemainingBalance, b.AdvancePaymentMethod).
			WillReturnRows(sqlmock.NewRows([]string{"booking_id", "created_at"}).AddRow(5, time.Now()))
		mock.ExpectQuery("INSERT INTO booking_items").
			WithArgs(int64(5), int64(10), 2, 3, b.Items[0].DefaultRentalPrice, b.Items[0].AgreedRentalPrice, b.Items[0].ItemTotalAmount).
			WillReturnRows(sqlmock.NewRows([]string{"booking_item_id"}).AddRow(21))
		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(int64(5), payment.PaymentType, payment.Amount, payment.PaymentMethod).
			WillReturnRows(sqlmock.NewRows([]string{"payment_id", "payment_date"}).AddRow(9, time.Now()))
		mock.ExpectExec("INSERT INTO revenue_logs").
			WithArgs(sqlmock.AnyArg(), nil, rev.RevenueType, rev.Amount).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, b, payment, rev)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), b.ID)
		assert.Equal(t, int64(5), b.Items[0].BookingID)
		assert.Equal(t, int64(21), b.Items[0].ID)
		assert.Equal(t, domain.BookingStatusBooked, b.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnItemFailure", func(t *testing.T) {
		b := &domain.Booking{
			BookingNumber: "BK-20260901-002",
			CustomerID:    1,
			EmployeeID:    2,
			Items:         []domain.BookingItem{{ProductID: 99, Quantity: 1}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnRows(sqlmock.NewRows([]string{"booking_id", "created_at"}).AddRow(6, time.Now()))
		mock.ExpectQuery("INSERT INTO booking_items").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Create(ctx, b, nil, nil)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Pickup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	method := "UPI"
	b := &domain.Booking{
		ID:                 5,
		TotalAmount:        decimal.NewFromInt(690),
		FinalAmount:        decimal.NewFromInt(490),
		RemainingBalance:   decimal.Zero,
		FinalPaymentMethod: &method,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT product_id, quantity FROM booking_items").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).AddRow(10, 2))
	// Each line item moves from the shelf to rented.
	mock.ExpectExec("UPDATE inventory_status SET quantity_available = quantity_available -").
		WithArgs(2, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET booking_status='Active'").
		WithArgs(b.TotalAmount, b.FinalAmount, b.RemainingBalance, b.FinalPaymentMethod, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Pickup(ctx, b, nil, nil, nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Return(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("MixedDispositions", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT product_id, quantity FROM booking_items").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).
				AddRow(10, 2).
				AddRow(11, 1))
		// Product 10 goes back to the shelf.
		mock.ExpectExec("UPDATE inventory_status SET quantity_available = quantity_available \\+").
			WithArgs(2, int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		// Product 11 goes to washing.
		mock.ExpectExec("UPDATE inventory_status SET quantity_rented = quantity_rented - (.+) quantity_washing").
			WithArgs(1, int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO washing_items").
			WithArgs(int64(11), 1).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE bookings SET booking_status='Completed'").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Return(ctx, 5, []domain.ItemReturn{
			{ProductID: 10, Action: domain.ReturnActionReturn},
			{ProductID: 11, Action: domain.ReturnActionWashing},
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoItems", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT product_id, quantity FROM booking_items").
			WithArgs(int64(77)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}))
		mock.ExpectRollback()

		err := repo.Return(ctx, 77, []domain.ItemReturn{{ProductID: 10, Action: domain.ReturnActionReturn}})
		var notFoundErr *apperr.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingAction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT product_id, quantity FROM booking_items").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).AddRow(10, 2))
		mock.ExpectRollback()

		err := repo.Return(ctx, 5, []domain.ItemReturn{{ProductID: 11, Action: domain.ReturnActionReturn}})
		var validationErr *apperr.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_GetByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b").
			WithArgs("BK-20260901-404").
			WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

		_, err := repo.GetByNumber(ctx, "BK-20260901-404")
		var notFoundErr *apperr.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestBookingRepository_LastNumberLike(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT booking_number FROM bookings WHERE booking_number LIKE").
			WithArgs("BK-20260901-%").
			WillReturnRows(sqlmock.NewRows([]string{"booking_number"}).AddRow("BK-20260901-007"))

		number, err := repo.LastNumberLike(ctx, "BK-20260901-%")
		assert.NoError(t, err)
		assert.Equal(t, "BK-20260901-007", number)
	})

	t.Run("NoneForDay", func(t *testing.T) {
		mock.ExpectQuery("SELECT booking_number FROM bookings WHERE booking_number LIKE").
			WithArgs("BK-20260902-%").
			WillReturnRows(sqlmock.NewRows([]string{"booking_number"}))

		number, err := repo.LastNumberLike(ctx, "BK-20260902-%")
		assert.NoError(t, err)
		assert.Equal(t, "", number)
	})
}
