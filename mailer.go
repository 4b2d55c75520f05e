package tutorsite

import (
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// ErrMailNotConfigured is returned by SMTPMailer before any network activity
// when the transport credentials are incomplete.
var ErrMailNotConfigured = errors.New("tutorsite: SMTP host, port, username, and password must all be set")

// Mailer delivers a single plaintext notification. Implementations do not
// retry or queue; a transport failure surfaces to the caller.
type Mailer interface {
	Send(subject, body, replyTo string) error
}

// SMTPConfig holds the outbound mail transport settings.
type SMTPConfig struct {
	Host     string // SMTP_HOST
	Port     int    // SMTP_PORT (default 587)
	Username string // SMTP_USERNAME
	Password string // SMTP_PASSWORD
	From     string // MAIL_FROM (defaults to Username)
	To       string // MAIL_TO   (defaults to Username)
}

// configured reports whether every required transport setting is present.
func (c SMTPConfig) configured() bool {
	return c.Host != "" && c.Port != 0 && c.Username != "" && c.Password != ""
}

// SMTPMailer sends notifications over SMTP. On the submission port (587)
// the connection is upgraded with STARTTLS before authenticating; on other
// ports no TLS upgrade is attempted, matching servers that speak plain SMTP
// locally. The connection is always torn down before Send returns.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer builds a mailer from cfg. Missing configuration is not an
// error here; it surfaces as ErrMailNotConfigured on the first Send so the
// site can start without mail credentials.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.To == "" {
		cfg.To = cfg.Username
	}
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one plaintext email. replyTo may be empty.
func (m *SMTPMailer) Send(subject, body, replyTo string) error {
	if !m.cfg.configured() {
		return ErrMailNotConfigured
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("tutorsite: invalid MAIL_FROM: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("tutorsite: invalid MAIL_TO: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return fmt.Errorf("tutorsite: invalid reply-to: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	tlsPolicy := mail.NoTLS
	if m.cfg.Port == 587 {
		tlsPolicy = mail.TLSMandatory
	}
	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return fmt.Errorf("tutorsite: smtp client: %w", err)
	}
	// DialAndSend closes the connection whether delivery succeeds or fails.
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("tutorsite: send mail: %w", err)
	}
	return nil
}
