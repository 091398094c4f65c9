package jobs

import (
	"context"

	"github.com/500AN/rental-system/internal/logger"
)

// SendWashingAlerts emails the admin a list of items that have sat in
// washing past the configured threshold.
func (jr *JobRunner) SendWashingAlerts() {
	jr.runWithRecovery("SendWashingAlerts", func(ctx context.Context) {
		items, err := jr.washing.ListOverdue(ctx, jr.config.Washing.AlertThresholdDays)
		if err != nil {
			logger.Error("Failed to list overdue washing items", "error", err)
			return
		}
		if len(items) == 0 {
			logger.Info("No overdue washing items")
			return
		}

		if err := jr.notifier.SendWashingAlert(ctx, items); err != nil {
			logger.Error("Failed to send washing alert", "error", err, "items", len(items))
			return
		}
		logger.Info("Washing alert sent", "items", len(items))
	})
}
