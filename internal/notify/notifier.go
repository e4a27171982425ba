package notify

import (
	"context"
	"fmt"

	"agapept/internal/config"
	"agapept/internal/domain"
	"agapept/internal/logger"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Sender delivers one composed message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// EmailNotifier composes a summary per submission and hands it to a Sender.
type EmailNotifier struct {
	sender Sender
}

// NewEmailNotifier wraps sender; see New for the configured SMTP variant.
func NewEmailNotifier(sender Sender) *EmailNotifier {
	return &EmailNotifier{sender: sender}
}

func (n *EmailNotifier) Notify(ctx context.Context, s *domain.Submission) error {
	if err := n.sender.Send(ctx, Compose(s)); err != nil {
		return fmt.Errorf("failed to send submission %d notification: %w", s.ID, err)
	}
	return nil
}

// NoopNotifier is used when no outbound channel is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, s *domain.Submission) error {
	logger.Get().Debug("Notification skipped, email is not configured", zap.Int64("submission_id", s.ID))
	return nil
}

// New returns an SMTP notifier when recipient and credentials are all set,
// and a NoopNotifier otherwise.
func New(cfg config.EmailConfig) domain.Notifier {
	if !cfg.Enabled() {
		return NoopNotifier{}
	}
	return NewEmailNotifier(&SMTPSender{cfg: cfg})
}

// SMTPSender sends mail from the configured user to the configured recipient.
type SMTPSender struct {
	cfg config.EmailConfig
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.buildMsg(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", s.cfg.Host, err)
	}
	return nil
}

func (s *SMTPSender) buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.User); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", s.cfg.User, err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", s.cfg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
