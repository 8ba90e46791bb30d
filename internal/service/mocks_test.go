package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bikeshare-rental-backend/internal/domain"
)

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindOpenByCyclist(ctx context.Context, cyclistID int32) (*domain.Rental, error) {
	args := m.Called(ctx, cyclistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) FindOpenByBike(ctx context.Context, bikeID int32) (*domain.Rental, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockCyclistRepo
type MockCyclistRepo struct {
	mock.Mock
}

func (m *MockCyclistRepo) Create(ctx context.Context, cyclist *domain.Cyclist, card *domain.CreditCard) error {
	args := m.Called(ctx, cyclist, card)
	return args.Error(0)
}
func (m *MockCyclistRepo) GetByID(ctx context.Context, id int32) (*domain.Cyclist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cyclist), args.Error(1)
}
func (m *MockCyclistRepo) Update(ctx context.Context, cyclist *domain.Cyclist) error {
	args := m.Called(ctx, cyclist)
	return args.Error(0)
}
func (m *MockCyclistRepo) UpdateStatus(ctx context.Context, id int32, status domain.CyclistStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCyclistRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockCyclistRepo) GetCard(ctx context.Context, cyclistID int32) (*domain.CreditCard, error) {
	args := m.Called(ctx, cyclistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}
func (m *MockCyclistRepo) UpdateCard(ctx context.Context, card *domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByRegistration(ctx context.Context, registration int32) (*domain.Employee, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, registration int32) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

// MockEquipmentGateway
type MockEquipmentGateway struct {
	mock.Mock
}

func (m *MockEquipmentGateway) GetLock(ctx context.Context, lockID int32) (*domain.Lock, error) {
	args := m.Called(ctx, lockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lock), args.Error(1)
}
func (m *MockEquipmentGateway) GetBikeAtLock(ctx context.Context, lockID int32) (*domain.Bike, error) {
	args := m.Called(ctx, lockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}
func (m *MockEquipmentGateway) GetBikeByID(ctx context.Context, bikeID int32) (*domain.Bike, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}
func (m *MockEquipmentGateway) IsBikeInUse(ctx context.Context, bikeID int32) (bool, error) {
	args := m.Called(ctx, bikeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockEquipmentGateway) Unlock(ctx context.Context, lockID, bikeID int32) error {
	args := m.Called(ctx, lockID, bikeID)
	return args.Error(0)
}
func (m *MockEquipmentGateway) Lock(ctx context.Context, lockID, bikeID int32) error {
	args := m.Called(ctx, lockID, bikeID)
	return args.Error(0)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Charge(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, error) {
	args := m.Called(ctx, cyclistID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}
func (m *MockPaymentGateway) EnqueuePendingCharge(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, error) {
	args := m.Called(ctx, cyclistID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}
func (m *MockPaymentGateway) ValidateCard(ctx context.Context, card *domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// MockNotificationGateway
type MockNotificationGateway struct {
	mock.Mock
}

func (m *MockNotificationGateway) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
