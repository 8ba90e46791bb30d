package jobs

import (
	"context"
	"fmt"
	"time"

	"bikeshare-rental-backend/internal/logger"
	"bikeshare-rental-backend/internal/utils"
)

// RemindLongOpenRentals emails cyclists whose rental has been open longer
// than the configured threshold, telling them what the surcharge already
// amounts to. Best-effort: a failed email is logged and skipped.
func (jr *JobRunner) RemindLongOpenRentals() {
	jr.runWithRecovery("RemindLongOpenRentals", func() {
		ctx := context.Background()

		cutoff := time.Now().Add(-time.Duration(jr.cfg.Scheduler.LongOpenAfterHours) * time.Hour)
		rentals, err := jr.rentalRepo.ListOpenSince(ctx, cutoff)
		if err != nil {
			logger.Error("failed to list long-open rentals", "error", err)
			return
		}

		sent := 0
		for _, rental := range rentals {
			cyclist, err := jr.cyclistRepo.GetByID(ctx, rental.CyclistID)
			if err != nil {
				logger.Error("cyclist lookup failed for reminder", "cyclist_id", rental.CyclistID, "error", err)
				continue
			}

			accrued := utils.CalculateSurcharge(rental.StartTime, time.Now())
			body := fmt.Sprintf(
				"Hello %s,\n\nBike %d has been out since %s. The overstay surcharge so far is %d.%02d. Return the bike to any available lock to stop the meter.",
				cyclist.Name, rental.BikeID, rental.StartTime.Format(time.RFC1123), accrued/100, accrued%100)

			if err := jr.notifier.SendEmail(ctx, cyclist.Email, "Your rental is still open", body); err != nil {
				logger.Error("failed to send long-open rental reminder", "rental_id", rental.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("long-open rental reminders sent", "open_rentals", len(rentals), "sent", sent)
	})
}
