// Package notifications delivers best-effort email through an SMTP relay.
package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/wneessen/go-mail"
)

//go:generate mockgen -source=mailer.go -destination=mocks.go -package=notifications

// Sender dispatches composed messages; *mail.Client implements it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Config holds SMTP relay settings.
type Config struct {
	Server   string // relay host; empty disables delivery
	Port     int    // relay port
	Username string // SMTP auth user, also the default sender
	Password string // SMTP auth password
	Sender   string // From address when Username is not an address
}

// Mailer sends notifications and never reports failures to its callers.
// Sends are serialized: a mail.Client holds one connection at a time.
type Mailer struct {
	mu     sync.Mutex
	sender Sender
	from   string
}

// NewMailer builds a Mailer backed by an SMTP client.
// With an empty Server the mailer only logs what it would have sent.
func NewMailer(cfg Config) (*Mailer, error) {
	from := cfg.Username
	if cfg.Sender != "" {
		from = cfg.Sender
	}

	if cfg.Server == "" {
		return NewMailerWithSender(nil, from), nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Server, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return NewMailerWithSender(client, from), nil
}

// NewMailerWithSender builds a Mailer around an existing Sender.
func NewMailerWithSender(sender Sender, from string) *Mailer {
	return &Mailer{sender: sender, from: from}
}

// Send composes a plain-text email and dispatches it.
// Failures are logged and dropped.
func (m *Mailer) Send(ctx context.Context, recipient, subject, body string) {
	if m.sender == nil {
		logger.Log.Infow("mail delivery disabled, skipping", "to", recipient, "subject", subject)
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		logger.Log.Errorw("An error occurred while sending email notification", "to", recipient, "error", err)
		return
	}
	if err := msg.To(recipient); err != nil {
		logger.Log.Errorw("An error occurred while sending email notification", "to", recipient, "error", err)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	m.mu.Lock()
	err := m.sender.DialAndSendWithContext(ctx, msg)
	m.mu.Unlock()
	if err != nil {
		logger.Log.Errorw("An error occurred while sending email notification", "to", recipient, "error", err)
		return
	}

	logger.Log.Infow("email notification sent", "to", recipient, "subject", subject)
}
