package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"bikeshare-rental-backend/internal/config"
	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/jobs"
)

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *mockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *mockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) FindOpenByCyclist(ctx context.Context, cyclistID int32) (*domain.Rental, error) {
	args := m.Called(ctx, cyclistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) FindOpenByBike(ctx context.Context, bikeID int32) (*domain.Rental, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *mockRentalRepo) ListOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type mockCyclistRepo struct {
	mock.Mock
}

func (m *mockCyclistRepo) Create(ctx context.Context, cyclist *domain.Cyclist, card *domain.CreditCard) error {
	args := m.Called(ctx, cyclist, card)
	return args.Error(0)
}
func (m *mockCyclistRepo) GetByID(ctx context.Context, id int32) (*domain.Cyclist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cyclist), args.Error(1)
}
func (m *mockCyclistRepo) Update(ctx context.Context, cyclist *domain.Cyclist) error {
	args := m.Called(ctx, cyclist)
	return args.Error(0)
}
func (m *mockCyclistRepo) UpdateStatus(ctx context.Context, id int32, status domain.CyclistStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *mockCyclistRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *mockCyclistRepo) GetCard(ctx context.Context, cyclistID int32) (*domain.CreditCard, error) {
	args := m.Called(ctx, cyclistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}
func (m *mockCyclistRepo) UpdateCard(ctx context.Context, card *domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func jobConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.LongOpenAfterHours = 2
	return cfg
}

func TestRemindLongOpenRentals(t *testing.T) {
	t.Run("Sends one reminder per long-open rental", func(t *testing.T) {
		rentalRepo := new(mockRentalRepo)
		cyclistRepo := new(mockCyclistRepo)
		notifier := new(mockNotifier)
		runner := jobs.NewJobRunner(rentalRepo, cyclistRepo, notifier, jobConfig())

		open := []domain.Rental{
			{ID: 5, CyclistID: 1, BikeID: 42, StartTime: time.Now().Add(-3 * time.Hour)},
			{ID: 6, CyclistID: 2, BikeID: 43, StartTime: time.Now().Add(-4 * time.Hour)},
		}
		rentalRepo.On("ListOpenSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(open, nil)
		cyclistRepo.On("GetByID", mock.Anything, int32(1)).Return(&domain.Cyclist{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil)
		cyclistRepo.On("GetByID", mock.Anything, int32(2)).Return(&domain.Cyclist{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)
		notifier.On("SendEmail", mock.Anything, "ana@example.com", "Your rental is still open", mock.Anything).Return(nil)
		notifier.On("SendEmail", mock.Anything, "bob@example.com", "Your rental is still open", mock.Anything).Return(nil)

		runner.RemindLongOpenRentals()

		notifier.AssertNumberOfCalls(t, "SendEmail", 2)
	})

	t.Run("A failed email does not stop the batch", func(t *testing.T) {
		rentalRepo := new(mockRentalRepo)
		cyclistRepo := new(mockCyclistRepo)
		notifier := new(mockNotifier)
		runner := jobs.NewJobRunner(rentalRepo, cyclistRepo, notifier, jobConfig())

		open := []domain.Rental{
			{ID: 5, CyclistID: 1, BikeID: 42, StartTime: time.Now().Add(-3 * time.Hour)},
			{ID: 6, CyclistID: 2, BikeID: 43, StartTime: time.Now().Add(-4 * time.Hour)},
		}
		rentalRepo.On("ListOpenSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(open, nil)
		cyclistRepo.On("GetByID", mock.Anything, int32(1)).Return(&domain.Cyclist{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil)
		cyclistRepo.On("GetByID", mock.Anything, int32(2)).Return(&domain.Cyclist{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)
		notifier.On("SendEmail", mock.Anything, "ana@example.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
		notifier.On("SendEmail", mock.Anything, "bob@example.com", mock.Anything, mock.Anything).Return(nil)

		runner.RemindLongOpenRentals()

		notifier.AssertNumberOfCalls(t, "SendEmail", 2)
	})

	t.Run("List failure is swallowed", func(t *testing.T) {
		rentalRepo := new(mockRentalRepo)
		cyclistRepo := new(mockCyclistRepo)
		notifier := new(mockNotifier)
		runner := jobs.NewJobRunner(rentalRepo, cyclistRepo, notifier, jobConfig())

		rentalRepo.On("ListOpenSince", mock.Anything, mock.AnythingOfType("time.Time")).Return([]domain.Rental(nil), errors.New("db down"))

		runner.RemindLongOpenRentals()

		notifier.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
