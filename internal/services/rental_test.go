package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/notifications"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	owner    = &models.User{ID: 1, Username: "ann", Email: "ann@x.io"}
	stranger = &models.User{ID: 2, Username: "bob", Email: "bob@x.io"}
	manila   = models.RentalForm{
		RentalDateFrom: "2024-06-01",
		RentalDateTo:   "2024-06-03",
		ClientContact:  "555-0100",
		PickupLocation: "Manila",
		Destination:    "Baguio",
		AgreedPrice:    "3000",
	}
)

type rentalMocks struct {
	reader   *MockRentalReader
	writer   *MockRentalWriter
	notifier *MockNotifier
	kafka    *MockKafkaWriter
}

func newTestRentalService(t *testing.T) (*RentalService, rentalMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := rentalMocks{
		reader:   NewMockRentalReader(ctrl),
		writer:   NewMockRentalWriter(ctrl),
		notifier: NewMockNotifier(ctrl),
		kafka:    NewMockKafkaWriter(ctrl),
	}
	svc := NewRentalService(m.reader, m.writer, m.notifier, m.kafka)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestRentalService_ListRentals(t *testing.T) {
	svc, m := newTestRentalService(t)

	rentals := []models.Rental{{ID: 2, UserID: 1}, {ID: 1, UserID: 1}}
	m.reader.EXPECT().ListByUserID(gomock.Any(), int64(1)).Return(rentals, nil)

	got, err := svc.ListRentals(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, rentals, got)

	m.reader.EXPECT().ListByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
	_, err = svc.ListRentals(context.Background(), owner)
	assert.Error(t, err)
}

func TestRentalService_GetRental(t *testing.T) {
	tests := []struct {
		name      string
		rental    *models.Rental
		readerErr error
		wantErr   error
	}{
		{name: "own rental", rental: &models.Rental{ID: 5, UserID: 1}},
		{name: "missing rental", wantErr: ErrRentalNotFound},
		{name: "foreign rental", rental: &models.Rental{ID: 5, UserID: 2}, wantErr: ErrRentalNotFound},
		{name: "reader error", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRentalService(t)
			m.reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(tt.rental, tt.readerErr)

			got, err := svc.GetRental(context.Background(), owner, 5)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.rental, got)
		})
	}
}

func TestRentalService_AddRental(t *testing.T) {
	svc, m := newTestRentalService(t)

	m.writer.EXPECT().Save(gomock.Any(), int64(1), manila).Return(int64(10), nil)
	m.notifier.EXPECT().Send(
		gomock.Any(),
		"ann@x.io",
		"Van Rental Notification",
		"Your van rental is scheduled for 2024-05-11 09:30:00. Please prepare accordingly.",
	)
	m.kafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("10"), msgs[0].Key)

			var event models.RentalEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.RentalCreated, event.Type)
			assert.Equal(t, int64(10), event.RentalID)
			assert.Equal(t, int64(1), event.UserID)
			assert.Equal(t, fixedNow.Unix(), event.Timestamp)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	id, err := svc.AddRental(context.Background(), owner, manila)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestRentalService_AddRental_KafkaFailureIgnored(t *testing.T) {
	svc, m := newTestRentalService(t)

	m.writer.EXPECT().Save(gomock.Any(), int64(1), manila).Return(int64(11), nil)
	m.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), notifications.RentalSubject, gomock.Any())
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	id, err := svc.AddRental(context.Background(), owner, manila)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestRentalService_AddRental_NoKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRentalWriter(ctrl)
	notifier := NewMockNotifier(ctrl)
	svc := NewRentalService(NewMockRentalReader(ctrl), writer, notifier, nil)

	writer.EXPECT().Save(gomock.Any(), int64(1), manila).Return(int64(12), nil)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	_, err := svc.AddRental(context.Background(), owner, manila)
	assert.NoError(t, err)
}

func TestRentalService_AddRental_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{
			name:     "bad date",
			storeErr: fmt.Errorf("insert rental: %w", errors.Join(models.ErrInvalidData, errors.New("22007"))),
			wantErr:  ErrInvalidRental,
		},
		{
			name:     "store down",
			storeErr: errors.New("connection refused"),
			wantErr:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRentalService(t)
			m.writer.EXPECT().Save(gomock.Any(), int64(1), gomock.Any()).Return(int64(0), tt.storeErr)

			_, err := svc.AddRental(context.Background(), owner, models.RentalForm{RentalDateFrom: "soon"})
			assert.EqualError(t, err, tt.wantErr.Error())
		})
	}
}

func TestRentalService_UpdateRental(t *testing.T) {
	changed := manila
	changed.AgreedPrice = "3500"

	t.Run("owner updates", func(t *testing.T) {
		svc, m := newTestRentalService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Rental{ID: 10, UserID: 1}, nil)
		m.writer.EXPECT().Update(gomock.Any(), int64(10), int64(1), changed).Return(true, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.UpdateRental(context.Background(), owner, 10, changed))
	})

	t.Run("foreign rental is not touched", func(t *testing.T) {
		svc, m := newTestRentalService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Rental{ID: 10, UserID: 1}, nil)

		err := svc.UpdateRental(context.Background(), stranger, 10, changed)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})

	t.Run("missing rental", func(t *testing.T) {
		svc, m := newTestRentalService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		err := svc.UpdateRental(context.Background(), owner, 99, changed)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})

	t.Run("row vanished before update", func(t *testing.T) {
		svc, m := newTestRentalService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Rental{ID: 10, UserID: 1}, nil)
		m.writer.EXPECT().Update(gomock.Any(), int64(10), int64(1), changed).Return(false, nil)

		err := svc.UpdateRental(context.Background(), owner, 10, changed)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})

	t.Run("invalid price", func(t *testing.T) {
		svc, m := newTestRentalService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Rental{ID: 10, UserID: 1}, nil)
		m.writer.EXPECT().Update(gomock.Any(), int64(10), int64(1), gomock.Any()).
			Return(false, errors.Join(models.ErrInvalidData, errors.New("22P02")))

		err := svc.UpdateRental(context.Background(), owner, 10, models.RentalForm{AgreedPrice: "cheap"})
		assert.ErrorIs(t, err, ErrInvalidRental)
	})
}

func TestRentalService_DeleteRental(t *testing.T) {
	svc, m := newTestRentalService(t)

	gomock.InOrder(
		m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Rental{ID: 10, UserID: 1}, nil),
		m.writer.EXPECT().Delete(gomock.Any(), int64(10), int64(1)).Return(true, nil),
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
		m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil),
	)

	assert.NoError(t, svc.DeleteRental(context.Background(), owner, 10))
	assert.ErrorIs(t, svc.DeleteRental(context.Background(), owner, 10), ErrRentalNotFound)
}

func TestRentalService_DeleteRental_Foreign(t *testing.T) {
	svc, m := newTestRentalService(t)
	m.reader.EXPECT().GetByID(gomock.Any(), int64(10)).Return(&models.Rental{ID: 10, UserID: 1}, nil)

	err := svc.DeleteRental(context.Background(), stranger, 10)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}
