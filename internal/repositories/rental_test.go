package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rentalRowColumns = []string{
	"id", "user_id", "rental_date_from", "rental_date_to", "client_contact",
	"pickup_location", "destination", "agreed_price", "created", "email_notification_time",
}

var sampleForm = models.RentalForm{
	RentalDateFrom: "2024-01-01",
	RentalDateTo:   "2024-01-03",
	ClientContact:  "555-0100",
	PickupLocation: "Manila",
	Destination:    "Baguio",
	AgreedPrice:    "3000",
}

func TestRentalReadRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 ORDER BY created DESC, id DESC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(rentalRowColumns).
			AddRow(2, 1, from, to, "555-0100", "Manila", "Baguio", 3000.0, newer, nil).
			AddRow(1, 1, from, to, "555-0101", "Cebu", "Bohol", 1500.5, older, nil))

	rentals, err := NewRentalReadRepository(db, nil).ListByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, int64(2), rentals[0].ID)
	assert.Equal(t, "Baguio", rentals[0].Destination)
	assert.Equal(t, 1500.5, rentals[1].AgreedPrice)
	assert.Nil(t, rentals[1].EmailNotificationTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalReadRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM rentals").WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(rentalRowColumns))

	rentals, err := NewRentalReadRepository(db, nil).ListByUserID(context.Background(), 9)
	assert.NoError(t, err)
	assert.NotNil(t, rentals)
	assert.Empty(t, rentals)
}

func TestRentalReadRepository_GetByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("FROM rentals WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(rentalRowColumns).
				AddRow(4, 2, now, now, "c", "p", "d", 10.0, now, now))

		rental, err := NewRentalReadRepository(db, nil).GetByID(context.Background(), 4)
		require.NoError(t, err)
		require.NotNil(t, rental)
		assert.Equal(t, int64(2), rental.UserID)
		assert.NotNil(t, rental.EmailNotificationTime)
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM rentals").WithArgs(int64(4)).WillReturnRows(sqlmock.NewRows(rentalRowColumns))

		rental, err := NewRentalReadRepository(db, nil).GetByID(context.Background(), 4)
		assert.NoError(t, err)
		assert.Nil(t, rental)
	})
}

func TestRentalReadRepository_ListByNotificationTime(t *testing.T) {
	db, mock := newMockDB(t)
	at := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.email_notification_time = $1")).
		WithArgs(at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(3, "owner@example.com"))

	due, err := NewRentalReadRepository(db, nil).ListByNotificationTime(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, []models.RentalNotification{{RentalID: 3, Email: "owner@example.com"}}, due)
}

func TestRentalWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rentals")).
		WithArgs(int64(1), "2024-01-01", "2024-01-03", "555-0100", "Manila", "Baguio", "3000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := NewRentalWriteRepository(db, nil).Save(context.Background(), 1, sampleForm)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalWriteRepository_SaveRejectedByStore(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO rentals").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.InvalidDatetimeFormat, Message: `invalid input syntax for type date: "soon"`})

	id, err := NewRentalWriteRepository(db, nil).Save(context.Background(), 1, models.RentalForm{RentalDateFrom: "soon"})
	assert.ErrorIs(t, err, models.ErrInvalidData)
	assert.Zero(t, id)
}

func TestRentalWriteRepository_SaveUnexpectedError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO rentals").WillReturnError(errors.New("connection reset"))

	_, err := NewRentalWriteRepository(db, nil).Save(context.Background(), 1, sampleForm)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidData)
}

func TestRentalWriteRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "owned", affected: 1, want: true},
		{name: "foreign or missing", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(regexp.QuoteMeta("UPDATE rentals SET")).
				WithArgs("2024-01-01", "2024-01-03", "555-0100", "Manila", "Baguio", "3000", int64(5), int64(1)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := NewRentalWriteRepository(db, nil).Update(context.Background(), 5, 1, sampleForm)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRentalWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rentals WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rentals")).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRentalWriteRepository(db, nil)

	ok, err := repo.Delete(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 5, 1)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalWriteRepository_UsesRequestConnection(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM rentals").WillReturnResult(sqlmock.NewResult(0, 1))

	conn, err := db.Connx(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	calls := 0
	getter := func(ctx context.Context) (*sqlx.Conn, error) {
		calls++
		return conn, nil
	}

	ok, err := NewRentalWriteRepository(db, getter).Delete(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}
