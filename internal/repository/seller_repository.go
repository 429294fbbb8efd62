package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kamronbek003/sellerProject/internal/domain"
	"github.com/kamronbek003/sellerProject/pkg/errs"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const pqUniqueViolation = "23505"

type SellerRepository interface {
	GetSellerByPhone(ctx context.Context, phone string) (res domain.Seller, err error)
	GetSellerByID(ctx context.Context, id string) (res domain.Seller, err error)
	AddSeller(ctx context.Context, data domain.Seller) (err error)
}

type SellerRepositoryImpl struct {
	db *sqlx.DB
}

func CreateSellerRepository(db *sqlx.DB) SellerRepository {
	return &SellerRepositoryImpl{db: db}
}

func (r *SellerRepositoryImpl) GetSellerByPhone(ctx context.Context, phone string) (res domain.Seller, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM sellers WHERE phone = $1 AND deleted_at IS NULL", phone)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetSellerByPhone").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *SellerRepositoryImpl) GetSellerByID(ctx context.Context, id string) (res domain.Seller, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM sellers WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetSellerByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

// AddSeller relies on the unique index on phone as the authoritative guard
// against concurrent registrations; a unique violation surfaces as the same
// conflict the pre-check reports.
func (r *SellerRepositoryImpl) AddSeller(ctx context.Context, data domain.Seller) (err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO sellers(id, external_id, first_name, last_name, phone, name_of_store, date_birth, image, logo, payment_time, bot_token, hashed_password, is_active, created_at, updated_at)
		VALUES (:id, :external_id, :first_name, :last_name, :phone, :name_of_store, :date_birth, :image, :logo, :payment_time, :bot_token, :hashed_password, :is_active, :created_at, :updated_at)`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddSeller").Msg("")
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return errs.ErrPhoneAlreadyUsed
		}
		return errs.ErrInternalServer
	}

	return nil
}
