package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/gateway"
	"bikeshare-rental-backend/internal/repository"
)

type cyclistService struct {
	cyclistRepo repository.CyclistRepository
	rentalRepo  repository.RentalRepository
	equipment   gateway.EquipmentGateway
	payment     gateway.PaymentGateway
	notifier    gateway.NotificationGateway
}

func NewCyclistService(
	cyclistRepo repository.CyclistRepository,
	rentalRepo repository.RentalRepository,
	equipment gateway.EquipmentGateway,
	payment gateway.PaymentGateway,
	notifier gateway.NotificationGateway,
) CyclistService {
	return &cyclistService{
		cyclistRepo: cyclistRepo,
		rentalRepo:  rentalRepo,
		equipment:   equipment,
		payment:     payment,
		notifier:    notifier,
	}
}

// Register creates an INACTIVE cyclist with their payment card. Unlike the
// rental flows, a failed verification email aborts the whole registration:
// a cyclist who never receives the email could never activate the account.
func (s *cyclistService) Register(ctx context.Context, cyclist *domain.Cyclist, password string, card *domain.CreditCard) (*domain.Cyclist, error) {
	if cyclist.CPF == "" && cyclist.Passport == nil {
		return nil, domain.Validation("either a CPF or a passport is required")
	}

	exists, err := s.cyclistRepo.EmailExists(ctx, cyclist.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict("email is already registered")
	}

	if err := s.payment.ValidateCard(ctx, card); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, domain.ExternalService("could not validate the credit card", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	cyclist.PasswordHash = string(hash)
	cyclist.Status = domain.CyclistStatusInactive

	if err := s.cyclistRepo.Create(ctx, cyclist, card); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Hello %s,\n\nWelcome! Confirm your registration by activating your account.", cyclist.Name)
	if err := s.notifier.SendEmail(ctx, cyclist.Email, "Confirm your registration", body); err != nil {
		return nil, domain.ExternalService("could not send the verification email", err)
	}

	return cyclist, nil
}

func (s *cyclistService) Get(ctx context.Context, id int32) (*domain.Cyclist, error) {
	return s.cyclistRepo.GetByID(ctx, id)
}

func (s *cyclistService) Update(ctx context.Context, cyclist *domain.Cyclist, password string) (*domain.Cyclist, error) {
	current, err := s.cyclistRepo.GetByID(ctx, cyclist.ID)
	if err != nil {
		return nil, err
	}

	cyclist.Status = current.Status
	cyclist.PasswordHash = current.PasswordHash
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cyclist.PasswordHash = string(hash)
	}

	if err := s.cyclistRepo.Update(ctx, cyclist); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Hello %s,\n\nYour profile data was updated.", cyclist.Name)
	if err := s.notifier.SendEmail(ctx, cyclist.Email, "Profile updated", body); err != nil {
		return nil, domain.ExternalService("could not send the profile update email", err)
	}

	return cyclist, nil
}

func (s *cyclistService) Activate(ctx context.Context, id int32) (*domain.Cyclist, error) {
	if err := s.cyclistRepo.UpdateStatus(ctx, id, domain.CyclistStatusActive); err != nil {
		return nil, err
	}
	return s.cyclistRepo.GetByID(ctx, id)
}

func (s *cyclistService) EmailInUse(ctx context.Context, email string) (bool, error) {
	return s.cyclistRepo.EmailExists(ctx, email)
}

// CanRent reports whether the cyclist exists and has no open rental.
func (s *cyclistService) CanRent(ctx context.Context, id int32) (bool, error) {
	if _, err := s.cyclistRepo.GetByID(ctx, id); err != nil {
		return false, err
	}
	_, err := s.rentalRepo.FindOpenByCyclist(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// RentedBike resolves the bike a cyclist currently has out, if any.
func (s *cyclistService) RentedBike(ctx context.Context, id int32) (*domain.Bike, error) {
	if _, err := s.cyclistRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	rental, err := s.rentalRepo.FindOpenByCyclist(ctx, id)
	if err != nil {
		return nil, err
	}
	bike, err := s.equipment.GetBikeByID(ctx, rental.BikeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.ExternalService("equipment lookup failed", err)
	}
	return bike, nil
}

func (s *cyclistService) GetCard(ctx context.Context, cyclistID int32) (*domain.CreditCard, error) {
	if _, err := s.cyclistRepo.GetByID(ctx, cyclistID); err != nil {
		return nil, err
	}
	return s.cyclistRepo.GetCard(ctx, cyclistID)
}

// UpdateCard swaps the cyclist's payment card. The card must pass the
// payment service's validation, and the confirmation email is mandatory,
// matching the registration flow.
func (s *cyclistService) UpdateCard(ctx context.Context, card *domain.CreditCard) error {
	cyclist, err := s.cyclistRepo.GetByID(ctx, card.CyclistID)
	if err != nil {
		return err
	}

	if err := s.payment.ValidateCard(ctx, card); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		return domain.ExternalService("could not validate the credit card", err)
	}

	if err := s.cyclistRepo.UpdateCard(ctx, card); err != nil {
		return err
	}

	body := fmt.Sprintf("Hello %s,\n\nYour payment card was updated.", cyclist.Name)
	if err := s.notifier.SendEmail(ctx, cyclist.Email, "Payment card updated", body); err != nil {
		return domain.ExternalService("could not send the card update email", err)
	}
	return nil
}
