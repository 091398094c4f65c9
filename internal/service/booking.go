package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/500AN/rental-system/internal/apperr"
	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/logger"
	"github.com/500AN/rental-system/internal/repository"
	"github.com/500AN/rental-system/internal/utils"
	"github.com/shopspring/decimal"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	customerRepo repository.CustomerRepository
	notifier     Notifier
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) ListDueToday(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListDueToday(ctx)
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.bookingRepo.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Items = items
	return b, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	if in.CustomerID == 0 || in.EmployeeID == 0 || in.RentalStartDate == "" || in.RentalEndDate == "" || len(in.Items) == 0 {
		return nil, apperr.Validation("All booking fields are required")
	}
	start, err := utils.ParseDate(in.RentalStartDate)
	if err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	end, err := utils.ParseDate(in.RentalEndDate)
	if err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if end.Before(start) {
		return nil, apperr.Validation("Rental end date must not be before start date")
	}

	number := in.BookingNumber
	if number == "" {
		number, err = s.nextBookingNumber(ctx, time.Now())
		if err != nil {
			return nil, err
		}
	}
	if _, err := s.bookingRepo.GetByNumber(ctx, number); err == nil {
		return nil, apperr.Conflict("Booking number already exists")
	} else {
		var notFound *apperr.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	total := decimal.Zero
	for _, it := range in.Items {
		total = total.Add(it.ItemTotalAmount)
	}

	b := &domain.Booking{
		BookingNumber:    number,
		CustomerID:       in.CustomerID,
		EmployeeID:       in.EmployeeID,
		RentalStartDate:  in.RentalStartDate,
		RentalEndDate:    in.RentalEndDate,
		TotalAmount:      total,
		AdvanceAmount:    in.AdvanceAmount,
		FinalAmount:      decimal.Zero,
		RemainingBalance: total.Sub(in.AdvanceAmount),
		Items:            in.Items,
	}
	if in.AdvancePaymentMethod != "" {
		b.AdvancePaymentMethod = &in.AdvancePaymentMethod
	}

	var payment *domain.Payment
	var rev *domain.RevenueLog
	if in.AdvanceAmount.GreaterThan(decimal.Zero) {
		payment = &domain.Payment{
			PaymentType:   domain.PaymentTypeAdvance,
			Amount:        in.AdvanceAmount,
			PaymentMethod: b.AdvancePaymentMethod,
		}
		rev = &domain.RevenueLog{
			RevenueType: domain.RevenueTypeRentalAdvance,
			Amount:      in.AdvanceAmount,
		}
	}

	if err := s.bookingRepo.Create(ctx, b, payment, rev); err != nil {
		return nil, err
	}

	s.notifyAsync(BookingEvent{Type: EventBookingCreated, Booking: b}, b.CustomerID)
	return b, nil
}

func (s *bookingService) PickupBooking(ctx context.Context, id int64, in PickupInput) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Additional items are trusted from the payload; the client runs the
	// availability check before submitting them.
	additionalTotal := decimal.Zero
	for _, it := range in.AdditionalItems {
		additionalTotal = additionalTotal.Add(it.ItemTotalAmount)
	}

	b.TotalAmount = b.TotalAmount.Add(additionalTotal)
	b.FinalAmount = in.FinalAmount
	b.RemainingBalance = b.TotalAmount.Sub(b.AdvanceAmount).Sub(in.FinalAmount)
	b.Status = domain.BookingStatusActive
	if in.PaymentMethod != "" {
		b.FinalPaymentMethod = &in.PaymentMethod
	}

	var payment *domain.Payment
	var rev *domain.RevenueLog
	if in.FinalAmount.GreaterThan(decimal.Zero) {
		payment = &domain.Payment{
			PaymentType:   domain.PaymentTypeFinal,
			Amount:        in.FinalAmount,
			PaymentMethod: b.FinalPaymentMethod,
		}
		rev = &domain.RevenueLog{
			RevenueType: domain.RevenueTypeRentalFinal,
			Amount:      in.FinalAmount,
		}
	}

	if err := s.bookingRepo.Pickup(ctx, b, in.AdditionalItems, payment, rev); err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifyAsync(BookingEvent{Type: EventPickup, Booking: updated}, updated.CustomerID)
	return updated, nil
}

func (s *bookingService) ReturnBooking(ctx context.Context, id int64, in ReturnInput) error {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	items, err := s.bookingRepo.Items(ctx, id)
	if err != nil {
		return err
	}

	byProduct := make(map[int64]domain.ItemReturn, len(in.ItemsAction))
	for _, a := range in.ItemsAction {
		switch a.Action {
		case domain.ReturnActionReturn, domain.ReturnActionWashing, domain.ReturnActionDamaged:
		default:
			return apperr.Validation("Invalid return action %q", a.Action)
		}
		byProduct[a.ProductID] = a
	}
	// Partial dispositions are rejected before the transaction starts.
	for _, it := range items {
		if _, ok := byProduct[it.ProductID]; !ok {
			return apperr.Validation("Return action required for product %d", it.ProductID)
		}
	}

	if err := s.bookingRepo.Return(ctx, id, in.ItemsAction); err != nil {
		return err
	}

	b.Status = domain.BookingStatusCompleted
	b.Items = items
	s.notifyAsync(BookingEvent{Type: EventReturn, Booking: b, ItemsAction: in.ItemsAction}, b.CustomerID)
	return nil
}

// nextBookingNumber scans the same-day bookings and takes max+1. The format
// is BK-YYYYMMDD-NNN with the sequence resetting daily.
func (s *bookingService) nextBookingNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := fmt.Sprintf("BK-%s-", utils.CompactDate(now))
	last, err := s.bookingRepo.LastNumberLike(ctx, prefix+"%")
	if err != nil {
		return "", err
	}
	sequence := 1
	if last != "" {
		parts := strings.Split(last, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			sequence = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, sequence), nil
}

// notifyAsync dispatches a booking notification after the transaction has
// committed. Delivery is fire-and-forget: failures are logged, never returned.
func (s *bookingService) notifyAsync(event BookingEvent, customerID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			logger.Error("Failed to load customer for notification", "customer_id", customerID, "error", err)
			return
		}
		event.Customer = customer

		if err := s.notifier.SendBookingNotification(ctx, event); err != nil {
			logger.Error("Failed to send booking notification",
				"type", event.Type, "booking_number", event.Booking.BookingNumber, "error", err)
		}
	}()
}
