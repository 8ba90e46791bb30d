package service

import (
	"context"

	"bikeshare-rental-backend/internal/domain"
)

// RentalService is the rental lifecycle orchestrator. Both operations run
// as one sequential unit: every downstream call is awaited before the next
// step, and nothing is retried here — retry policy belongs to the gateways.
type RentalService interface {
	StartRental(ctx context.Context, cyclistID, startLockID int32) (*domain.Rental, error)
	ReturnRental(ctx context.Context, bikeID, endLockID int32) (*domain.ReturnSummary, error)
}

type CyclistService interface {
	Register(ctx context.Context, cyclist *domain.Cyclist, password string, card *domain.CreditCard) (*domain.Cyclist, error)
	Get(ctx context.Context, id int32) (*domain.Cyclist, error)
	Update(ctx context.Context, cyclist *domain.Cyclist, password string) (*domain.Cyclist, error)
	Activate(ctx context.Context, id int32) (*domain.Cyclist, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	CanRent(ctx context.Context, id int32) (bool, error)
	RentedBike(ctx context.Context, id int32) (*domain.Bike, error)
	GetCard(ctx context.Context, cyclistID int32) (*domain.CreditCard, error)
	UpdateCard(ctx context.Context, card *domain.CreditCard) error
}

type EmployeeService interface {
	Create(ctx context.Context, employee *domain.Employee, password string) (*domain.Employee, error)
	Get(ctx context.Context, registration int32) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee, password string) (*domain.Employee, error)
	Delete(ctx context.Context, registration int32) error
}
