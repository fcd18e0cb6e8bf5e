package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

const rentalColumns = `id, user_id, rental_date_from, rental_date_to, client_contact,
	pickup_location, destination, agreed_price, created, email_notification_time`

// RentalReadRepository handles rental read operations
type RentalReadRepository struct {
	db         *sqlx.DB
	connGetter ConnGetter
}

func NewRentalReadRepository(db *sqlx.DB, connGetter ConnGetter) *RentalReadRepository {
	return &RentalReadRepository{db: db, connGetter: connGetter}
}

// ListByUserID returns the rentals of a user, newest first.
func (r *RentalReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Rental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE user_id = $1
		ORDER BY created DESC, id DESC
	`

	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	rentals := []models.Rental{}
	err = sqlx.SelectContext(ctx, ex, &rentals, query, userID)

	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(rentals),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("select rentals: %w", err)
	}
	return rentals, nil
}

// GetByID returns the rental with the given id, or nil if there is none.
// Ownership is checked by the caller.
func (r *RentalReadRepository) GetByID(ctx context.Context, id int64) (*models.Rental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE id = $1
	`

	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	var rental models.Rental
	err = sqlx.GetContext(ctx, ex, &rental, query, id)

	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", []any{id},
		"result", rental,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select rental: %w", err)
	}
	return &rental, nil
}

// ListByNotificationTime returns the rentals whose notification time equals at,
// together with the email of their owners.
func (r *RentalReadRepository) ListByNotificationTime(ctx context.Context, at time.Time) ([]models.RentalNotification, error) {
	const query = `
		SELECT r.id, u.email
		FROM rentals r
		JOIN "user" u ON u.id = r.user_id
		WHERE r.email_notification_time = $1
	`

	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	due := []models.RentalNotification{}
	err = sqlx.SelectContext(ctx, ex, &due, query, at)

	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", []any{at},
		"result", len(due),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("select due rentals: %w", err)
	}
	return due, nil
}

// RentalWriteRepository handles rental write operations
type RentalWriteRepository struct {
	db         *sqlx.DB
	connGetter ConnGetter
}

func NewRentalWriteRepository(db *sqlx.DB, connGetter ConnGetter) *RentalWriteRepository {
	return &RentalWriteRepository{db: db, connGetter: connGetter}
}

// Save inserts a rental owned by userID and returns its id.
func (r *RentalWriteRepository) Save(ctx context.Context, userID int64, form models.RentalForm) (int64, error) {
	const query = `
		INSERT INTO rentals
			(user_id, rental_date_from, rental_date_to, client_contact, pickup_location, destination, agreed_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	args := []any{
		userID,
		form.RentalDateFrom,
		form.RentalDateTo,
		form.ClientContact,
		form.PickupLocation,
		form.Destination,
		form.AgreedPrice,
	}

	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}

	var id int64
	err = sqlx.GetContext(ctx, ex, &id, query, args...)

	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("insert rental: %w", classify(err))
	}
	return id, nil
}

// Update overwrites every mutable field of a rental owned by userID.
// It reports whether a row was changed.
func (r *RentalWriteRepository) Update(ctx context.Context, id, userID int64, form models.RentalForm) (bool, error) {
	const query = `
		UPDATE rentals SET
			rental_date_from = $1,
			rental_date_to = $2,
			client_contact = $3,
			pickup_location = $4,
			destination = $5,
			agreed_price = $6
		WHERE id = $7 AND user_id = $8
	`
	args := []any{
		form.RentalDateFrom,
		form.RentalDateTo,
		form.ClientContact,
		form.PickupLocation,
		form.Destination,
		form.AgreedPrice,
		id,
		userID,
	}

	return r.exec(ctx, query, args)
}

// Delete removes a rental owned by userID and reports whether a row was removed.
func (r *RentalWriteRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	const query = `DELETE FROM rentals WHERE id = $1 AND user_id = $2`
	return r.exec(ctx, query, []any{id, userID})
}

func (r *RentalWriteRepository) exec(ctx context.Context, query string, args []any) (bool, error) {
	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, fmt.Errorf("exec rental statement: %w", classify(err))
	}
	return rowsAffected > 0, nil
}

// classify marks values the store could not convert (bad dates, prices) as models.ErrInvalidData.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsDataException(pgErr.Code) {
		return errors.Join(models.ErrInvalidData, err)
	}
	return err
}
