package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

// SessionRepository keeps session state in Redis
type SessionRepository struct {
	client redis.Cmdable
	exp    time.Duration // idle lifetime of a session
}

// NewSessionRepository creates a new repository; every Set extends the lifetime by expiration.
func NewSessionRepository(client redis.Cmdable, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Get returns the stored session, or nil if it does not exist or has expired.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	key := sessionKey(id)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Debugw(
		"redis get session",
		"key", key,
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	sess.ID = id

	return &sess, nil
}

// Set stores the session with expiration
func (r *SessionRepository) Set(ctx context.Context, sess *models.Session) error {
	key := sessionKey(sess.ID)

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.ID, err)
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw(
		"redis set session",
		"key", key,
		"user_id", sess.UserID,
		"flashes", len(sess.Flashes),
		"error", err,
	)

	return err
}

// Delete removes the session; deleting a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	key := sessionKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw(
		"redis delete session",
		"key", key,
		"error", err,
	)

	return err
}
