package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/repository"
)

const uniqueViolation = "23505"

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (cyclist_id, bike_id, start_lock_id, start_time, charge_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, rt.CyclistID, rt.BikeID, rt.StartLockID, rt.StartTime, rt.ChargeID, now, now).Scan(&rt.ID)
	if err != nil {
		// The partial unique indexes on open rentals serialize concurrent
		// starts for the same cyclist or bike.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Conflict("cyclist or bike already has an open rental")
		}
		return err
	}
	return nil
}

// Update closes an open rental. The end_time IS NULL guard makes the
// transition one-shot: a rental that is already closed is left untouched.
func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET end_lock_id=$1, end_time=$2, extra_charge_id=$3, updated_on=$4
	          WHERE id=$5 AND end_time IS NULL`
	res, err := r.db.ExecContext(ctx, query, rt.EndLockID, rt.EndTime, rt.ExtraChargeID, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.Conflict("rental is already closed")
	}
	return nil
}

const rentalColumns = `id, cyclist_id, bike_id, start_lock_id, end_lock_id, start_time, end_time, charge_id, extra_charge_id, created_on, updated_on`

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) FindOpenByCyclist(ctx context.Context, cyclistID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE cyclist_id = $1 AND end_time IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, query, cyclistID))
}

func (r *rentalRepository) FindOpenByBike(ctx context.Context, bikeID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE bike_id = $1 AND end_time IS NULL`
	return r.scanOne(r.db.QueryRowContext(ctx, query, bikeID))
}

func (r *rentalRepository) ListOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE end_time IS NULL AND start_time < $1 ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CyclistID, &rt.BikeID, &rt.StartLockID, &rt.EndLockID, &rt.StartTime, &rt.EndTime, &rt.ChargeID, &rt.ExtraChargeID, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) scanOne(row *sql.Row) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.CyclistID, &rt.BikeID, &rt.StartLockID, &rt.EndLockID, &rt.StartTime, &rt.EndTime, &rt.ChargeID, &rt.ExtraChargeID, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("rental")
		}
		return nil, err
	}
	return rt, nil
}
