package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(ctx context.Context, employee *domain.Employee, password string) (*domain.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee.PasswordHash = string(hash)

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Get(ctx context.Context, registration int32) (*domain.Employee, error) {
	return s.employeeRepo.GetByRegistration(ctx, registration)
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, employee *domain.Employee, password string) (*domain.Employee, error) {
	current, err := s.employeeRepo.GetByRegistration(ctx, employee.Registration)
	if err != nil {
		return nil, err
	}

	employee.PasswordHash = current.PasswordHash
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = string(hash)
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, registration int32) error {
	return s.employeeRepo.Delete(ctx, registration)
}
