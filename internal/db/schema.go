// Package db (re)creates the database schema and runs the start-of-day
// notification sweep that accompanies it.
package db

//go:generate mockgen -source=schema.go -destination=mocks.go -package=db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/van-rental-manager/internal/db/migrations"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/notifications"
)

// DueRentalFinder lists rentals whose notification time equals a given instant.
type DueRentalFinder interface {
	ListByNotificationTime(ctx context.Context, at time.Time) ([]models.RentalNotification, error)
}

// Notifier sends a best-effort email.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string)
}

// Seams for testing.
var (
	gooseEnsureDBVersionContext = func(ctx context.Context, db *sql.DB) (int64, error) {
		return goose.EnsureDBVersionContext(ctx, db)
	}
	gooseResetContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.ResetContext(ctx, db, dir, opts...)
	}
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// now is replaced in tests.
var now = time.Now

// InitSchema drops and recreates every table, then notifies the owners of rentals
// whose notification time equals now plus one day.
func InitSchema(ctx context.Context, db *sql.DB, finder DueRentalFinder, notifier Notifier) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	// Reset reads the version table but never creates it.
	if _, err := gooseEnsureDBVersionContext(ctx, db); err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return fmt.Errorf("ensure version table: %w", err)
	}
	if err := gooseResetContext(ctx, db, "."); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	sweepNotifications(ctx, finder, notifier)
	return nil
}

// sweepNotifications compares stored times with an instant computed right now,
// so it only fires for exact matches.
func sweepNotifications(ctx context.Context, finder DueRentalFinder, notifier Notifier) {
	tomorrow := now().Add(24 * time.Hour)

	due, err := finder.ListByNotificationTime(ctx, tomorrow)
	if err != nil {
		logger.Log.Errorw("failed to list due rentals", "at", tomorrow, "error", err)
		return
	}

	for _, r := range due {
		notifier.Send(ctx, r.Email, notifications.RentalSubject, notifications.RentalBody(tomorrow))
	}

	logger.Log.Infow("notification sweep finished", "at", tomorrow, "notified", len(due))
}
