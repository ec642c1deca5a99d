package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultTwilioBaseURL = "https://api.twilio.com"
	messagesPath         = "/2010-04-01/Accounts/{sid}/Messages.json"
)

// twilioMessage is the subset of the Messages resource we read back
type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

// TwilioWhatsApp sends WhatsApp messages through the Twilio REST API
type TwilioWhatsApp struct {
	httpClient *resty.Client
	accountSID string
	authToken  string
	from       string
	logger     *zap.Logger
}

// NewTwilioWhatsApp creates a Twilio client. The channel is disabled unless
// account sid, auth token and sender are all set.
func NewTwilioWhatsApp(cfg config.TwilioConfig, timeout time.Duration, logger *zap.Logger) *TwilioWhatsApp {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &TwilioWhatsApp{
		httpClient: client,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.WhatsAppFrom,
		logger:     logger.Named("twilio"),
	}
}

// Enabled reports whether credentials and sender are configured
func (w *TwilioWhatsApp) Enabled() bool {
	return w.accountSID != "" && w.authToken != "" && w.from != ""
}

// Send posts one message to the Messages resource
func (w *TwilioWhatsApp) Send(ctx context.Context, to, body string) error {
	if !w.Enabled() {
		return ErrChannelDisabled
	}
	to = NormalizeWhatsAppNumber(to)

	var result twilioMessage
	var apiErr twilioError
	resp, err := w.httpClient.R().
		SetContext(ctx).
		SetBasicAuth(w.accountSID, w.authToken).
		SetPathParam("sid", w.accountSID).
		SetFormData(map[string]string{
			"From": w.from,
			"To":   to,
			"Body": body,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(messagesPath)
	if err != nil {
		return fmt.Errorf("failed to call Twilio API: %w", err)
	}
	if resp.IsError() {
		w.logger.Warn("Twilio API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.Int("code", apiErr.Code),
			zap.String("message", apiErr.Message))
		return fmt.Errorf("twilio API error: %s (status: %d, code: %d)", apiErr.Message, resp.StatusCode(), apiErr.Code)
	}

	w.logger.Debug("WhatsApp message queued",
		zap.String("sid", result.SID),
		zap.String("status", result.Status))
	return nil
}

var _ WhatsAppSender = (*TwilioWhatsApp)(nil)
