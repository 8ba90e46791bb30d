package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/repository"
)

type cyclistRepository struct {
	db *sql.DB
}

func NewCyclistRepository(db *sql.DB) repository.CyclistRepository {
	return &cyclistRepository{db: db}
}

func (r *cyclistRepository) Create(ctx context.Context, c *domain.Cyclist, card *domain.CreditCard) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now()
	query := `INSERT INTO cyclists (name, email, nationality, birth_date, password_hash, status, cpf, document_photo_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err = tx.QueryRowContext(ctx, query, c.Name, c.Email, c.Nationality, c.BirthDate, c.PasswordHash, c.Status, c.CPF, c.DocumentPhotoURL, now, now).Scan(&c.ID)
	if err != nil {
		return err
	}

	if c.Passport != nil {
		c.Passport.CyclistID = c.ID
		query = `INSERT INTO passports (number, expiry, country, cyclist_id) VALUES ($1, $2, $3, $4) RETURNING id`
		err = tx.QueryRowContext(ctx, query, c.Passport.Number, c.Passport.Expiry, c.Passport.Country, c.ID).Scan(&c.Passport.ID)
		if err != nil {
			return err
		}
	}

	card.CyclistID = c.ID
	query = `INSERT INTO credit_cards (holder_name, number, expiry, cvv, cyclist_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err = tx.QueryRowContext(ctx, query, card.HolderName, card.Number, card.Expiry, card.CVV, c.ID).Scan(&card.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *cyclistRepository) GetByID(ctx context.Context, id int32) (*domain.Cyclist, error) {
	c := &domain.Cyclist{}
	query := `SELECT id, name, email, nationality, birth_date, password_hash, status, cpf, document_photo_url, created_on, updated_on
	          FROM cyclists WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Nationality, &c.BirthDate, &c.PasswordHash, &c.Status, &c.CPF, &c.DocumentPhotoURL, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("cyclist")
		}
		return nil, err
	}

	p := &domain.Passport{}
	query = `SELECT id, number, expiry, country, cyclist_id FROM passports WHERE cyclist_id = $1`
	err = r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Number, &p.Expiry, &p.Country, &p.CyclistID)
	if err == nil {
		c.Passport = p
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return c, nil
}

func (r *cyclistRepository) Update(ctx context.Context, c *domain.Cyclist) error {
	query := `UPDATE cyclists SET name=$1, email=$2, nationality=$3, birth_date=$4, password_hash=$5, cpf=$6, document_photo_url=$7, updated_on=$8
	          WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Nationality, c.BirthDate, c.PasswordHash, c.CPF, c.DocumentPhotoURL, time.Now(), c.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "cyclist")
}

func (r *cyclistRepository) UpdateStatus(ctx context.Context, id int32, status domain.CyclistStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cyclists SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res, "cyclist")
}

func (r *cyclistRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cyclists WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *cyclistRepository) GetCard(ctx context.Context, cyclistID int32) (*domain.CreditCard, error) {
	card := &domain.CreditCard{}
	query := `SELECT id, holder_name, number, expiry, cvv, cyclist_id FROM credit_cards WHERE cyclist_id = $1`
	err := r.db.QueryRowContext(ctx, query, cyclistID).Scan(&card.ID, &card.HolderName, &card.Number, &card.Expiry, &card.CVV, &card.CyclistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("credit card")
		}
		return nil, err
	}
	return card, nil
}

func (r *cyclistRepository) UpdateCard(ctx context.Context, card *domain.CreditCard) error {
	query := `UPDATE credit_cards SET holder_name=$1, number=$2, expiry=$3, cvv=$4 WHERE cyclist_id=$5`
	res, err := r.db.ExecContext(ctx, query, card.HolderName, card.Number, card.Expiry, card.CVV, card.CyclistID)
	if err != nil {
		return err
	}
	return requireRow(res, "credit card")
}

func requireRow(res sql.Result, entity string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound(entity)
	}
	return nil
}
