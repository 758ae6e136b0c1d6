package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"creator-settlement/config"
	"creator-settlement/internal/core/domain"
	"creator-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notifyRetryIntervals defines the delivery retry schedule.
var notifyRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

// Notification event types
const (
	EventWithdrawalRequested = "WITHDRAWAL_REQUESTED"
	EventBalanceCredited     = "BALANCE_CREDITED"
)

// NotifyPayload is the JSON structure sent to the platform webhook.
type NotifyPayload struct {
	EventType string            `json:"event_type"`
	Data      NotifyPayloadData `json:"data"`
	Signature string            `json:"signature"`
}

// NotifyPayloadData holds the event details in the notification.
type NotifyPayloadData struct {
	UserID       string `json:"user_id"`
	RequestID    string `json:"request_id,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`
	Amount       int64  `json:"amount"`
	NetAmount    int64  `json:"net_amount,omitempty"`
	PayoutMethod string `json:"payout_method,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// webhookNotifier implements ports.NotificationService by POSTing signed
// events to the platform webhook. Strictly best-effort: delivery runs in a
// background goroutine with retries, and failures are logged and dropped.
type webhookNotifier struct {
	cfg        config.NotifyConfig
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewWebhookNotifier creates a new webhook-backed notification service.
func NewWebhookNotifier(cfg config.NotifyConfig, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) ports.NotificationService {
	return &webhookNotifier{
		cfg:        cfg,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// WithdrawalRequested reports a newly created payout request.
func (s *webhookNotifier) WithdrawalRequested(ctx context.Context, req *domain.WithdrawalRequest) {
	s.send(EventWithdrawalRequested, NotifyPayloadData{
		UserID:       req.UserID.String(),
		RequestID:    req.ID.String(),
		Amount:       req.Amount,
		NetAmount:    req.NetAmount,
		PayoutMethod: string(req.PayoutMethod),
		Timestamp:    time.Now().Unix(),
	})
}

// BalanceCredited reports an accrual credit applied by reconciliation.
func (s *webhookNotifier) BalanceCredited(ctx context.Context, userID uuid.UUID, amount int64, submissionID uuid.UUID) {
	s.send(EventBalanceCredited, NotifyPayloadData{
		UserID:       userID.String(),
		SubmissionID: submissionID.String(),
		Amount:       amount,
		Timestamp:    time.Now().Unix(),
	})
}

func (s *webhookNotifier) send(eventType string, data NotifyPayloadData) {
	if s.cfg.WebhookURL == "" {
		s.log.Debug().Str("event", eventType).Msg("notify: no webhook URL configured, skipping")
		return
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		s.log.Error().Err(err).Str("event", eventType).Msg("notify: failed to marshal data")
		return
	}

	payload := NotifyPayload{
		EventType: eventType,
		Data:      data,
		Signature: s.sigSvc.Sign(s.cfg.Secret, string(dataBytes)),
	}

	// Fire async with retries
	go s.deliverWithRetries(s.cfg.WebhookURL, payload, eventType)
}

// deliverWithRetries attempts to deliver the notification with backoff.
func (s *webhookNotifier) deliverWithRetries(url string, payload NotifyPayload, eventType string) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("event", eventType).Msg("notify: failed to marshal payload")
		return
	}

	for attempt := 0; attempt <= len(notifyRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(notifyRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payloadBytes))
		if err != nil {
			s.log.Error().Err(err).Str("event", eventType).Int("attempt", attempt+1).Msg("notify: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("event", eventType).Int("attempt", attempt+1).Msg("notify: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("event", eventType).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notify: delivered successfully")
			return
		}

		s.log.Warn().Str("event", eventType).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notify: non-2xx response, retrying")
	}

	s.log.Error().Str("event", eventType).Msg("notify: all retry attempts exhausted")
}
