package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/finledger/finledger/pkg/config"
)

// Alert describes a validation failure worth operator attention.
type Alert struct {
	TenantID   string                    `json:"tenantID"`
	RunID      string                    `json:"runID"`
	Kind       string                    `json:"kind"` // "check_failure" or "run_failure"
	Message    string                    `json:"message"`
	Failures   []domain.ValidationResult `json:"failures,omitempty"`
	OccurredAt time.Time                 `json:"occurredAt"`
}

// Alerter delivers validation failure alerts. Delivery is best-effort; a
// failed send never fails the validation run that produced the alert.
type Alerter interface {
	Send(ctx context.Context, alert Alert) error
}

// SlogAlerter writes alerts to the structured log at error level. Always safe
// as the channel of last resort.
type SlogAlerter struct {
	Logger *slog.Logger
}

var _ Alerter = (*SlogAlerter)(nil)

func (a *SlogAlerter) Send(_ context.Context, alert Alert) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("Validation alert",
		slog.String("tenant_id", alert.TenantID),
		slog.String("run_id", alert.RunID),
		slog.String("kind", alert.Kind),
		slog.String("message", alert.Message),
		slog.Int("failure_count", len(alert.Failures)),
	)
	return nil
}

// WebhookAlerter POSTs the alert as JSON to a configured endpoint.
type WebhookAlerter struct {
	URL    string
	Client *http.Client
}

var _ Alerter = (*WebhookAlerter)(nil)

func (a *WebhookAlerter) Send(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver alert webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// MultiAlerter fans an alert out to every configured channel and reports the
// last delivery error, if any.
type MultiAlerter struct {
	Alerters []Alerter
}

var _ Alerter = (*MultiAlerter)(nil)

func (a *MultiAlerter) Send(ctx context.Context, alert Alert) error {
	var lastErr error
	for _, alerter := range a.Alerters {
		if err := alerter.Send(ctx, alert); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// FromConfig assembles the alert channels named in FAILURE_ALERT_CHANNELS.
// Unknown channel names are skipped with a warning; an empty selection falls
// back to the log channel so failures are never silently dropped.
func FromConfig(cfg *config.Config, logger *slog.Logger) Alerter {
	alerters := make([]Alerter, 0, len(cfg.AlertChannels))
	for _, channel := range cfg.AlertChannels {
		switch channel {
		case "log":
			alerters = append(alerters, &SlogAlerter{Logger: logger})
		case "webhook":
			if cfg.AlertWebhookURL == "" {
				logger.Warn("Webhook alert channel configured without ALERT_WEBHOOK_URL, skipping")
				continue
			}
			alerters = append(alerters, &WebhookAlerter{URL: cfg.AlertWebhookURL})
		default:
			logger.Warn("Unknown alert channel, skipping", slog.String("channel", channel))
		}
	}
	if len(alerters) == 0 {
		alerters = append(alerters, &SlogAlerter{Logger: logger})
	}
	return &MultiAlerter{Alerters: alerters}
}
