package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"news_alerts/internal/config"
	"news_alerts/internal/domain"
	"news_alerts/internal/metrics"
)

// Webhook delivers notification batches to the messaging-bot service over
// HTTP. The bot acknowledges per batch; there is no per-record status.
type Webhook struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func NewWebhook(cfg config.RelayConfig, logger *slog.Logger) *Webhook {
	return &Webhook{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.WebhookURL,
		maxAttempts:    cfg.Retry.MaxAttempts,
		initialBackoff: cfg.Retry.InitialBackoff,
		maxBackoff:     cfg.Retry.MaxBackoff,
		logger:         logger.With("component", "relay"),
	}
}

type notificationBatch struct {
	Notifications []domain.Notification `json:"notifications"`
}

type digestMessage struct {
	ChatIDs []int64 `json:"chat_ids"`
	Text    string  `json:"text"`
}

// SendNotifications posts one batch to the bot webhook. An empty batch is a
// no-op: no request is made.
func (w *Webhook) SendNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	err := w.post(ctx, w.baseURL+"/webhook", notificationBatch{Notifications: notifications})
	if err != nil {
		metrics.RelayDeliveries.WithLabelValues("notifications", "error").Inc()
		return err
	}

	metrics.RelayDeliveries.WithLabelValues("notifications", "ok").Inc()
	w.logger.Debug("notification batch delivered", "count", len(notifications))
	return nil
}

func (w *Webhook) SendDigest(ctx context.Context, chatIDs []int64, text string) error {
	if len(chatIDs) == 0 {
		return nil
	}

	err := w.post(ctx, w.baseURL+"/digest", digestMessage{ChatIDs: chatIDs, Text: text})
	if err != nil {
		metrics.RelayDeliveries.WithLabelValues("digest", "error").Inc()
		return err
	}

	metrics.RelayDeliveries.WithLabelValues("digest", "ok").Inc()
	return nil
}

func (w *Webhook) post(ctx context.Context, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal relay payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		lastErr = w.doPost(ctx, url, body)
		if lastErr == nil {
			return nil
		}

		if attempt == w.maxAttempts {
			break
		}

		backoff := w.calculateBackoff(attempt)
		w.logger.Warn("relay request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", lastErr,
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("relay aborted: %v: %w", ctx.Err(), domain.ErrUpstreamUnavailable)
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("relay after %d attempts: %v: %w", w.maxAttempts, lastErr, domain.ErrUpstreamUnavailable)
}

func (w *Webhook) doPost(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

func (w *Webhook) calculateBackoff(attempt int) time.Duration {
	backoff := w.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > w.maxBackoff {
		backoff = w.maxBackoff
	}
	return backoff
}
