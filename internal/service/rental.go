package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/gateway"
	"bikeshare-rental-backend/internal/logger"
	"bikeshare-rental-backend/internal/repository"
	"bikeshare-rental-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	cyclistRepo  repository.CyclistRepository
	equipment    gateway.EquipmentGateway
	payment      gateway.PaymentGateway
	notifier     gateway.NotificationGateway
	baseFeeCents int32
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	cyclistRepo repository.CyclistRepository,
	equipment gateway.EquipmentGateway,
	payment gateway.PaymentGateway,
	notifier gateway.NotificationGateway,
	baseFeeCents int32,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		cyclistRepo:  cyclistRepo,
		equipment:    equipment,
		payment:      payment,
		notifier:     notifier,
		baseFeeCents: baseFeeCents,
	}
}

func (s *rentalService) StartRental(ctx context.Context, cyclistID, startLockID int32) (*domain.Rental, error) {
	cyclist, err := s.cyclistRepo.GetByID(ctx, cyclistID)
	if err != nil {
		return nil, err
	}

	open, err := s.rentalRepo.FindOpenByCyclist(ctx, cyclistID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if open != nil {
		// Tell the cyclist why the request was refused, then refuse it.
		// The email is best-effort like every rental-flow notification.
		if mailErr := s.notifier.SendEmail(ctx, cyclist.Email,
			"Rental refused",
			fmt.Sprintf("Hello %s,\n\nYou already have bike %d out since %s. Return it before starting a new rental.",
				cyclist.Name, open.BikeID, open.StartTime.Format(time.RFC1123)),
		); mailErr != nil {
			logger.Warn("failed to send already-renting notification", "cyclist_id", cyclistID, "error", mailErr)
		}
		return nil, domain.Conflict("cyclist already has an open rental")
	}

	if cyclist.Status != domain.CyclistStatusActive {
		return nil, domain.Validation("cyclist has not confirmed their registration email")
	}

	bike, err := s.equipment.GetBikeAtLock(ctx, startLockID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validation("bike not found at lock")
		}
		return nil, domain.ExternalService("equipment lookup failed", err)
	}

	lock, err := s.equipment.GetLock(ctx, startLockID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validation("lock not found or defective")
		}
		return nil, domain.ExternalService("equipment lookup failed", err)
	}
	if lock.Status != domain.LockStatusOccupied {
		return nil, domain.Validation("lock not found or defective")
	}

	charge, pending, err := s.bill(ctx, cyclistID, s.baseFeeCents)
	if err != nil {
		return nil, domain.ExternalService("could not bill the rental", err)
	}

	if err := s.equipment.Unlock(ctx, startLockID, bike.ID); err != nil {
		// The cyclist is already billed here and there is no refund path;
		// log the charge reference so operators can reconcile.
		logger.Error("unlock failed after billing",
			"cyclist_id", cyclistID, "lock_id", startLockID, "bike_id", bike.ID, "charge_id", charge.ID, "error", err)
		return nil, domain.ExternalService("lock could not be released", err)
	}

	rental := &domain.Rental{
		CyclistID:   cyclistID,
		BikeID:      bike.ID,
		StartLockID: startLockID,
		StartTime:   time.Now(),
		ChargeID:    charge.ID,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Hello %s,\n\nYou rented bike %d at %s. Your card was charged %s.",
		cyclist.Name, bike.Number, rental.StartTime.Format(time.RFC1123), formatCents(charge.AmountCents))
	if pending {
		body = fmt.Sprintf("Hello %s,\n\nYou rented bike %d at %s. A pending charge of %s was recorded and will be collected later.",
			cyclist.Name, bike.Number, rental.StartTime.Format(time.RFC1123), formatCents(charge.AmountCents))
	}
	if err := s.notifier.SendEmail(ctx, cyclist.Email, "Rental confirmed", body); err != nil {
		logger.Warn("failed to send rental confirmation", "cyclist_id", cyclistID, "rental_id", rental.ID, "error", err)
	}

	return rental, nil
}

func (s *rentalService) ReturnRental(ctx context.Context, bikeID, endLockID int32) (*domain.ReturnSummary, error) {
	rental, err := s.rentalRepo.FindOpenByBike(ctx, bikeID)
	if err != nil {
		return nil, err
	}

	lock, err := s.equipment.GetLock(ctx, endLockID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validation("lock not available")
		}
		return nil, domain.ExternalService("equipment lookup failed", err)
	}
	if lock.Status != domain.LockStatusAvailable {
		return nil, domain.Validation("lock not available")
	}

	inUse, err := s.equipment.IsBikeInUse(ctx, bikeID)
	if err != nil {
		return nil, domain.ExternalService("equipment lookup failed", err)
	}
	if !inUse {
		return nil, domain.Validation("bike is not marked as in use")
	}

	now := time.Now()
	surcharge := utils.CalculateSurcharge(rental.StartTime, now)

	var extraChargeID *string
	pending := false
	if surcharge > 0 {
		var charge *domain.Charge
		charge, pending, err = s.bill(ctx, rental.CyclistID, surcharge)
		if err != nil {
			return nil, domain.ExternalService("could not bill the surcharge", err)
		}
		// Last successful charge reference wins.
		extraChargeID = &charge.ID
	}

	rental.EndTime = &now
	rental.EndLockID = &endLockID
	rental.ExtraChargeID = extraChargeID
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	cyclist, err := s.cyclistRepo.GetByID(ctx, rental.CyclistID)
	if err != nil {
		logger.Warn("cyclist lookup failed after return", "cyclist_id", rental.CyclistID, "error", err)
	} else {
		body := fmt.Sprintf("Hello %s,\n\nBike %d was returned at %s.", cyclist.Name, bikeID, now.Format(time.RFC1123))
		switch {
		case surcharge > 0 && pending:
			body += fmt.Sprintf(" A pending surcharge of %s was recorded and will be collected later.", formatCents(surcharge))
		case surcharge > 0:
			body += fmt.Sprintf(" Your card was charged a surcharge of %s.", formatCents(surcharge))
		}
		if mailErr := s.notifier.SendEmail(ctx, cyclist.Email, "Return confirmed", body); mailErr != nil {
			logger.Warn("failed to send return confirmation", "cyclist_id", rental.CyclistID, "rental_id", rental.ID, "error", mailErr)
		}
	}

	// Dock the bike only after the return is durable. If this fails the
	// rental stays closed and only the docking needs to be retried.
	if err := s.equipment.Lock(ctx, endLockID, bikeID); err != nil {
		logger.Error("bike could not be docked after return",
			"rental_id", rental.ID, "bike_id", bikeID, "lock_id", endLockID, "error", err)
		return nil, domain.ExternalService("bike could not be docked", err)
	}

	summary := &domain.ReturnSummary{
		BikeID:         bikeID,
		CyclistID:      rental.CyclistID,
		StartTime:      rental.StartTime,
		EndTime:        now,
		EndLockID:      endLockID,
		SurchargeCents: surcharge,
	}
	if extraChargeID != nil {
		summary.ExtraChargeID = *extraChargeID
	}
	return summary, nil
}

// bill attempts an immediate charge and falls back to the pending-charge
// queue when the payment service declines or is unreachable. The returned
// bool reports whether the pending path was taken.
func (s *rentalService) bill(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, bool, error) {
	charge, err := s.payment.Charge(ctx, cyclistID, amountCents)
	if err == nil {
		return charge, false, nil
	}
	logger.Warn("immediate charge failed, queueing pending charge",
		"cyclist_id", cyclistID, "amount_cents", amountCents, "error", err)

	charge, err = s.payment.EnqueuePendingCharge(ctx, cyclistID, amountCents)
	if err != nil {
		return nil, false, err
	}
	return charge, true, nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
