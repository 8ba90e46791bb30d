package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (name, email, password_hash, cpf, role, age)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING registration`
	return r.db.QueryRowContext(ctx, query, e.Name, e.Email, e.PasswordHash, e.CPF, e.Role, e.Age).Scan(&e.Registration)
}

func (r *employeeRepository) GetByRegistration(ctx context.Context, registration int32) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT registration, name, email, password_hash, cpf, role, age FROM employees WHERE registration = $1`
	err := r.db.QueryRowContext(ctx, query, registration).Scan(&e.Registration, &e.Name, &e.Email, &e.PasswordHash, &e.CPF, &e.Role, &e.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("employee")
		}
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT registration, name, email, password_hash, cpf, role, age FROM employees ORDER BY registration`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.Registration, &e.Name, &e.Email, &e.PasswordHash, &e.CPF, &e.Role, &e.Age); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name=$1, email=$2, password_hash=$3, cpf=$4, role=$5, age=$6 WHERE registration=$7`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.Email, e.PasswordHash, e.CPF, e.Role, e.Age, e.Registration)
	if err != nil {
		return err
	}
	return requireRow(res, "employee")
}

func (r *employeeRepository) Delete(ctx context.Context, registration int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE registration = $1`, registration)
	if err != nil {
		return err
	}
	return requireRow(res, "employee")
}
