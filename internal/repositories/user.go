package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

type UserReadRepository struct {
	db         *sqlx.DB
	connGetter ConnGetter
}

func NewUserReadRepository(db *sqlx.DB, connGetter ConnGetter) *UserReadRepository {
	return &UserReadRepository{db: db, connGetter: connGetter}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, password, email, phone_number
		FROM "user"
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, password, email, phone_number
		FROM "user"
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	var user models.User
	err = sqlx.GetContext(ctx, ex, &user, query, arg)

	// Password hashes stay out of the log.
	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", []any{arg},
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	return &user, nil
}

type UserWriteRepository struct {
	db         *sqlx.DB
	connGetter ConnGetter
}

func NewUserWriteRepository(db *sqlx.DB, connGetter ConnGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, connGetter: connGetter}
}

// Save inserts a user and returns its id.
// A duplicate username or email yields models.ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) (int64, error) {
	const query = `
		INSERT INTO "user" (username, password, email, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	ex, err := pick(ctx, r.db, r.connGetter)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}

	var id int64
	err = sqlx.GetContext(ctx, ex, &id, query, user.Username, user.Password, user.Email, user.PhoneNumber)

	logger.Log.Debugw(
		"db query",
		"query", oneLine(query),
		"args", []any{user.Username, user.Email, user.PhoneNumber},
		"result", id,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, errors.Join(models.ErrAlreadyExists, err)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}
