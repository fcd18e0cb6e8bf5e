package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/notifications"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=rental.go -destination=rental_mock.go -package=services

var (
	// ErrRentalNotFound is returned for rentals that do not exist or belong to another user.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrInvalidRental is returned when the store rejects a date or price.
	ErrInvalidRental = errors.New("invalid rental data")
)

// RentalReader defines read operations for rentals.
type RentalReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Rental, error)
	GetByID(ctx context.Context, id int64) (*models.Rental, error)
}

// RentalWriter defines write operations for rentals.
// Update and Delete report whether a row owned by userID was affected.
type RentalWriter interface {
	Save(ctx context.Context, userID int64, form models.RentalForm) (int64, error)
	Update(ctx context.Context, id, userID int64, form models.RentalForm) (bool, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RentalService manages the rentals of a single owner per call.
type RentalService struct {
	reader      RentalReader
	writer      RentalWriter
	notifier    Notifier
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewRentalService creates a new RentalService. kafkaWriter may be nil.
func NewRentalService(
	reader RentalReader,
	writer RentalWriter,
	notifier Notifier,
	kafkaWriter KafkaWriter,
) *RentalService {
	return &RentalService{
		reader:      reader,
		writer:      writer,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// publishEvent publishes a rental event to Kafka.
func (s *RentalService) publishEvent(ctx context.Context, eventType string, rentalID, userID int64) {
	event := models.RentalEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		RentalID:  rentalID,
		UserID:    userID,
		Type:      eventType,
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rental event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(rentalID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish rental event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Rental event published to Kafka", "event_id", event.EventID, "type", eventType, "rental_id", rentalID)
	}
}

// ListRentals returns the owner's rentals, newest first.
func (s *RentalService) ListRentals(ctx context.Context, owner *models.User) ([]models.Rental, error) {
	rentals, err := s.reader.ListByUserID(ctx, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to list rentals", "user_id", owner.ID, "error", err)
		return nil, err
	}
	return rentals, nil
}

// GetRental returns a rental owned by owner.
func (s *RentalService) GetRental(ctx context.Context, owner *models.User, id int64) (*models.Rental, error) {
	rental, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get rental", "rental_id", id, "error", err)
		return nil, err
	}
	if rental == nil || rental.UserID != owner.ID {
		logger.Log.Infow("rental not found for owner", "rental_id", id, "user_id", owner.ID)
		return nil, ErrRentalNotFound
	}
	return rental, nil
}

// AddRental stores a new rental for owner and emails the owner a reminder
// for the next day.
func (s *RentalService) AddRental(ctx context.Context, owner *models.User, form models.RentalForm) (int64, error) {
	id, err := s.writer.Save(ctx, owner.ID, form)
	if err != nil {
		if errors.Is(err, models.ErrInvalidData) {
			logger.Log.Infow("rental rejected by store", "user_id", owner.ID, "error", err)
			return 0, ErrInvalidRental
		}
		logger.Log.Errorw("failed to save rental", "user_id", owner.ID, "error", err)
		return 0, err
	}

	tomorrow := s.now().Add(24 * time.Hour)
	s.notifier.Send(ctx, owner.Email, notifications.RentalSubject, notifications.RentalBody(tomorrow))

	s.publishEvent(ctx, models.RentalCreated, id, owner.ID)

	return id, nil
}

// UpdateRental overwrites every mutable field of a rental owned by owner.
func (s *RentalService) UpdateRental(ctx context.Context, owner *models.User, id int64, form models.RentalForm) error {
	if _, err := s.GetRental(ctx, owner, id); err != nil {
		return err
	}

	updated, err := s.writer.Update(ctx, id, owner.ID, form)
	if err != nil {
		if errors.Is(err, models.ErrInvalidData) {
			logger.Log.Infow("rental update rejected by store", "rental_id", id, "error", err)
			return ErrInvalidRental
		}
		logger.Log.Errorw("failed to update rental", "rental_id", id, "error", err)
		return err
	}
	if !updated {
		return ErrRentalNotFound
	}

	s.publishEvent(ctx, models.RentalUpdated, id, owner.ID)

	return nil
}

// DeleteRental removes a rental owned by owner.
func (s *RentalService) DeleteRental(ctx context.Context, owner *models.User, id int64) error {
	if _, err := s.GetRental(ctx, owner, id); err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, id, owner.ID)
	if err != nil {
		logger.Log.Errorw("failed to delete rental", "rental_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrRentalNotFound
	}

	s.publishEvent(ctx, models.RentalDeleted, id, owner.ID)

	return nil
}
