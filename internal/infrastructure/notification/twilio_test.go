package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWhatsAppNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0501234567", "whatsapp:+966501234567"},
		{"501234567", "whatsapp:+966501234567"},
		{" 0501234567 ", "whatsapp:+966501234567"},
		{"00501234567", "whatsapp:+9660501234567"},
		{"whatsapp:+15551234567", "whatsapp:+15551234567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWhatsAppNumber(tt.in), tt.in)
	}
}

func twilioConfig(baseURL string) config.TwilioConfig {
	return config.TwilioConfig{
		AccountSID:   "AC123",
		AuthToken:    "secret",
		WhatsAppFrom: "whatsapp:+14155238886",
		BaseURL:      baseURL,
	}
}

func TestTwilioWhatsApp_Send(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	}))
	defer server.Close()

	sender := NewTwilioWhatsApp(twilioConfig(server.URL), time.Second, nil)
	require.True(t, sender.Enabled())
	require.NoError(t, sender.Send(context.Background(), "0501234567", "مرحبا"))

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", got.URL.Path)
	user, pass, ok := got.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "AC123", user)
	assert.Equal(t, "secret", pass)
	assert.Equal(t, "whatsapp:+14155238886", got.PostForm.Get("From"))
	assert.Equal(t, "whatsapp:+966501234567", got.PostForm.Get("To"))
	assert.Equal(t, "مرحبا", got.PostForm.Get("Body"))
}

func TestTwilioWhatsApp_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number","status":400}`))
	}))
	defer server.Close()

	err := NewTwilioWhatsApp(twilioConfig(server.URL), time.Second, nil).
		Send(context.Background(), "0501234567", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid 'To' Phone Number")
	assert.Contains(t, err.Error(), "21211")
}

func TestTwilioWhatsApp_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	err := NewTwilioWhatsApp(twilioConfig(server.URL), 50*time.Millisecond, nil).
		Send(context.Background(), "0501234567", "hi")
	assert.Error(t, err)
}

func TestTwilioWhatsApp_Disabled(t *testing.T) {
	cfgs := []config.TwilioConfig{
		{},
		{AccountSID: "AC1", AuthToken: "t"},
		{AccountSID: "AC1", WhatsAppFrom: "whatsapp:+1"},
		{AuthToken: "t", WhatsAppFrom: "whatsapp:+1"},
	}
	for _, cfg := range cfgs {
		sender := NewTwilioWhatsApp(cfg, 0, nil)
		assert.False(t, sender.Enabled())
		assert.ErrorIs(t, sender.Send(context.Background(), "0501234567", "hi"), ErrChannelDisabled)
	}
}
