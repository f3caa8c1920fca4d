// Package mailer sends transactional email over SMTP with go-mail.
package mailer

import (
	"context"
	"fmt"
	"html"

	"langnghe/internal/config"
	"langnghe/pkg/logger"

	"github.com/wneessen/go-mail"
)

const welcomeSubject = "Chào mừng bạn đến với Làng Nghề Việt"

type Mailer struct {
	cfg config.SMTP
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether an SMTP host is configured. A disabled mailer logs
// messages instead of sending them.
func (m *Mailer) Enabled() bool { return m.cfg.Host != "" }

func (m *Mailer) buildWelcome(name, email string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.cfg.From, err)
	}
	if err := msg.To(email); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", email, err)
	}
	msg.Subject(welcomeSubject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Xin chào %s,\n\nCảm ơn bạn đã đăng ký nhận bản tin. Chúng tôi sẽ gửi đến bạn những sản phẩm thủ công mới nhất từ các làng nghề Việt Nam.\n\nLàng Nghề Việt",
		name))
	msg.AddAlternativeString(mail.TypeTextHTML, fmt.Sprintf(
		`<p>Xin chào <strong>%s</strong>,</p><p>Cảm ơn bạn đã đăng ký nhận bản tin. Chúng tôi sẽ gửi đến bạn những sản phẩm thủ công mới nhất từ các làng nghề Việt Nam.</p><p>Làng Nghề Việt</p>`,
		html.EscapeString(name)))
	return msg, nil
}

// SendWelcome greets a new newsletter subscriber.
func (m *Mailer) SendWelcome(ctx context.Context, name, email string) error {
	msg, err := m.buildWelcome(name, email)
	if err != nil {
		return err
	}

	if !m.Enabled() {
		logger.Info().Str("to", email).Str("subject", welcomeSubject).Msg("SMTP not configured, welcome email not sent")
		return nil
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	logger.Info().Str("to", email).Msg("Sending welcome email")
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send welcome email to %s: %w", email, err)
	}
	return nil
}
