package postgres

import (
	"database/sql"

	"bikeshare-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.CyclistRepository
	repository.EmployeeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		RentalRepository:   NewRentalRepository(db),
		CyclistRepository:  NewCyclistRepository(db),
		EmployeeRepository: NewEmployeeRepository(db),
	}
}
