package repository

import (
	"context"
	"time"

	"bikeshare-rental-backend/internal/domain"
)

// RentalRepository owns the Rental record. Create relies on the database's
// partial unique indexes to guarantee at most one open rental per cyclist
// and per bike; a violation comes back as domain.ErrConflict. Update closes
// a rental and refuses to touch one that is already closed.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	Update(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	FindOpenByCyclist(ctx context.Context, cyclistID int32) (*domain.Rental, error)
	FindOpenByBike(ctx context.Context, bikeID int32) (*domain.Rental, error)
	ListOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}

type CyclistRepository interface {
	// Create persists the cyclist, optional passport and credit card in one
	// transaction.
	Create(ctx context.Context, cyclist *domain.Cyclist, card *domain.CreditCard) error
	GetByID(ctx context.Context, id int32) (*domain.Cyclist, error)
	Update(ctx context.Context, cyclist *domain.Cyclist) error
	UpdateStatus(ctx context.Context, id int32, status domain.CyclistStatus) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetCard(ctx context.Context, cyclistID int32) (*domain.CreditCard, error)
	UpdateCard(ctx context.Context, card *domain.CreditCard) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByRegistration(ctx context.Context, registration int32) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, registration int32) error
}
