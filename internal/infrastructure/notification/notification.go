// Package notification delivers best-effort messages to clients over email
// (SMTP) and WhatsApp (Twilio REST API).
//
// A channel without credentials is disabled: sending through it returns
// ErrChannelDisabled without any network traffic. Callers treat that, and
// every other delivery error, as non-fatal.
package notification

import (
	"context"
	"errors"
	"strings"
)

// ErrChannelDisabled is returned when a channel is not configured
var ErrChannelDisabled = errors.New("notification: channel disabled")

// Email is a plain-text message to one recipient
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends email
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg Email) error
}

// WhatsAppSender sends WhatsApp messages
type WhatsAppSender interface {
	Enabled() bool
	// Send delivers body to a phone number, normalized with
	// NormalizeWhatsAppNumber
	Send(ctx context.Context, to, body string) error
}

const (
	whatsAppScheme = "whatsapp:"
	// local numbers are assumed to be Saudi
	defaultCountryCode = "+966"
)

// NormalizeWhatsAppNumber turns a local number into a Twilio WhatsApp
// address: "0501234567" -> "whatsapp:+966501234567". Values already
// carrying the whatsapp: prefix are returned unchanged.
func NormalizeWhatsAppNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, whatsAppScheme) {
		return phone
	}
	return whatsAppScheme + defaultCountryCode + strings.TrimPrefix(phone, "0")
}
