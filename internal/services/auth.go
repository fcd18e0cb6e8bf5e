package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/notifications"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrEmailRequired     = errors.New("email is required")
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrIncorrectUsername = errors.New("incorrect username")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (int64, error)
}

// Notifier sends best-effort email; it never reports failures.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string)
}

// AuthService handles registration, login and identity lookup.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	notifier Notifier
	now      func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, notifier Notifier) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		notifier: notifier,
		now:      time.Now,
	}
}

func validateRegistration(form models.RegisterForm) error {
	switch {
	case form.Username == "":
		return ErrUsernameRequired
	case form.Password == "":
		return ErrPasswordRequired
	case form.Password != form.ConfirmPassword:
		return ErrPasswordMismatch
	case form.Email == "":
		return ErrEmailRequired
	}
	return nil
}

// Register validates the form, stores the user with a hashed password and
// sends a welcome email. Only the first validation failure is reported.
func (svc *AuthService) Register(ctx context.Context, form models.RegisterForm) error {
	if err := validateRegistration(form); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user := &models.User{
		Username: form.Username,
		Password: string(hashedPassword),
		Email:    form.Email,
	}
	if form.PhoneNumber != "" {
		phone := form.PhoneNumber
		user.PhoneNumber = &phone
	}

	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			logger.Log.Infow("user already exists", "username", form.Username, "email", form.Email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}
	user.ID = id

	svc.notifier.Send(ctx, user.Email, notifications.WelcomeSubject, notifications.WelcomeBody(user.Username))

	return nil
}

// Login verifies the credentials and returns the matching user.
// The sign-in email is left to NotifyLogin once the session is bound.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, ErrIncorrectUsername
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrIncorrectPassword
	}

	return user, nil
}

// NotifyLogin emails the user about a new sign-in.
func (svc *AuthService) NotifyLogin(ctx context.Context, user *models.User) {
	svc.notifier.Send(ctx, user.Email, notifications.LoginSubject, notifications.LoginBody(user.Username, svc.now()))
}

// GetUser returns the user with the given id, or nil if it no longer exists.
func (svc *AuthService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "user_id", userID, "err", err)
		return nil, err
	}
	return user, nil
}
