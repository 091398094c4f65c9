package jobs

import (
	"context"

	"github.com/500AN/rental-system/internal/logger"
)

// SendReturnReminders notifies customers whose active bookings end today.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func(ctx context.Context) {
		bookings, err := jr.bookings.ListDueToday(ctx)
		if err != nil {
			logger.Error("Failed to list bookings due today", "error", err)
			return
		}

		sent := 0
		for i := range bookings {
			if err := jr.notifier.SendReturnReminder(ctx, &bookings[i]); err != nil {
				logger.Error("Failed to send return reminder",
					"error", err, "booking_number", bookings[i].BookingNumber)
				continue
			}
			sent++
		}
		logger.Info("Return reminders processed", "due", len(bookings), "sent", sent)
	})
}
