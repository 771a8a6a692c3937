// Package mail sends transactional email over SMTP. When SMTP is not
// configured the mailer degrades to logging, which keeps local development
// working without credentials.
package mail

import (
	"context"
	"fmt"
	"log"

	gomail "github.com/wneessen/go-mail"

	"jobskills/internal/config"
)

type Sender interface {
	SendText(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, html string) error
}

type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) SendText(ctx context.Context, to, subject, body string) error {
	return m.send(ctx, to, subject, gomail.TypeTextPlain, body)
}

func (m *SMTPMailer) SendHTML(ctx context.Context, to, subject, html string) error {
	return m.send(ctx, to, subject, gomail.TypeTextHTML, html)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject string, ct gomail.ContentType, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(ct, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer stands in for SMTP in development: it logs the would-be send and
// succeeds.
type LogMailer struct {
	Logger *log.Logger
}

func (m LogMailer) SendText(_ context.Context, to, subject, _ string) error {
	if m.Logger != nil {
		m.Logger.Printf("[Mail] (dev) text mail to=%s subject=%q", to, subject)
	}
	return nil
}

func (m LogMailer) SendHTML(_ context.Context, to, subject, _ string) error {
	if m.Logger != nil {
		m.Logger.Printf("[Mail] (dev) html mail to=%s subject=%q", to, subject)
	}
	return nil
}
