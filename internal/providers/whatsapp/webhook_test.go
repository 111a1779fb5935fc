package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smallbiznis/smartdairy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookSend(t *testing.T) {
	var got Message
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewWebhook(WebhookConfig{URL: srv.URL, Token: "secret", Timeout: time.Second})
	err := p.Send(context.Background(), Message{To: "919876543210", Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, Message{To: "919876543210", Text: "hello"}, got)
}

func TestWebhookRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewWebhook(WebhookConfig{URL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, p.Send(context.Background(), Message{To: "1", Text: "x"}))
	assert.Equal(t, int32(2), calls.Load())
}

func TestWebhookClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad number", http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewWebhook(WebhookConfig{URL: srv.URL, Timeout: 5 * time.Second})
	err := p.Send(context.Background(), Message{To: "1", Text: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "bad number")
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewFromSettings(t *testing.T) {
	settings := config.DefaultSettings()
	p := NewFromSettings(config.NewStaticSettings(settings), zap.NewNop())
	assert.Equal(t, "disabled", p.Name())
	assert.ErrorIs(t, p.Send(context.Background(), Message{}), ErrDisabled)

	settings.Messaging.WebhookURL = "http://gateway.local/send"
	p = NewFromSettings(config.NewStaticSettings(settings), zap.NewNop())
	assert.Equal(t, "webhook", p.Name())
}
