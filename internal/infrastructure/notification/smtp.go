package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/aqario/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// SMTPMailer sends email through an SMTP relay. STARTTLS is used when the
// server offers it; PLAIN auth when a username is configured.
type SMTPMailer struct {
	config  config.SMTPConfig
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewSMTPMailer creates a mailer. An empty host or from address disables it.
func NewSMTPMailer(cfg config.SMTPConfig, timeout time.Duration, logger *zap.Logger) *SMTPMailer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPMailer{
		config:  cfg,
		timeout: timeout,
		logger:  logger.Named("smtp"),
		now:     time.Now,
	}
}

// Enabled reports whether host and from address are configured
func (m *SMTPMailer) Enabled() bool {
	return m.config.Host != "" && m.config.From != ""
}

// Send delivers msg, bounded by the mailer timeout and ctx
func (m *SMTPMailer) Send(ctx context.Context, msg Email) error {
	if !m.Enabled() {
		return ErrChannelDisabled
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	addr := net.JoinHostPort(m.config.Host, strconv.Itoa(m.config.Port))
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake failed: %w", err)
	}
	defer client.Close()

	if err := m.deliver(client, msg); err != nil {
		return err
	}

	m.logger.Debug("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) deliver(client *smtp.Client, msg Email) error {
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.config.Host}); err != nil {
			return fmt.Errorf("starttls failed: %w", err)
		}
	}
	if m.config.Username != "" {
		if ok, _ := client.Extension("AUTH"); !ok {
			return fmt.Errorf("smtp server %s does not support AUTH", m.config.Host)
		}
		auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO rejected: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA rejected: %w", err)
	}
	if _, err := w.Write(m.compose(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("message rejected: %w", err)
	}
	return client.Quit()
}

// compose renders headers and body. Non-ASCII subjects are Q-encoded.
func (m *SMTPMailer) compose(msg Email) []byte {
	from := mail.Address{Name: m.config.FromName, Address: m.config.From}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", m.now().UTC().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.Write(bytes.ReplaceAll([]byte(msg.Body), []byte("\n"), []byte("\r\n")))
	return buf.Bytes()
}

var _ Mailer = (*SMTPMailer)(nil)
