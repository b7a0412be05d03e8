package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	notificationerrors "github.com/SimantDhakalGeorgian/shifty-pro-api/internal/notification/errors"

	"go.uber.org/zap"
)

const (
	DefaultOneSignalURL = "https://onesignal.com/api/v1/notifications"
	maxRetries          = 2
)

type Message struct {
	PlayerIDs []string
	Title     string
	Body      string
}

type Result struct {
	ID         string `json:"id"`
	Recipients int    `json:"recipients"`
}

//go:generate mockgen -destination=mock/notification_sender_mock.go -package=mock . Sender
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

type oneSignalPayload struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
}

type OneSignalClient struct {
	appID      string
	apiKey     string
	url        string
	httpClient *http.Client
	backoff    func(attempt int) time.Duration
	logger     *zap.Logger
}

func NewOneSignalClient(appID, apiKey, url string, logger ...*zap.Logger) *OneSignalClient {
	l := zap.L().Named("notification.onesignal")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.onesignal")
	}
	if url == "" {
		url = DefaultOneSignalURL
	}
	return &OneSignalClient{
		appID:  appID,
		apiKey: apiKey,
		url:    url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * 500 * time.Millisecond
		},
		logger: l,
	}
}

func (c *OneSignalClient) Send(ctx context.Context, msg Message) (Result, error) {
	if c.appID == "" || c.apiKey == "" {
		return Result{}, notificationerrors.ErrNotConfigured
	}
	if len(msg.PlayerIDs) == 0 {
		return Result{}, notificationerrors.ErrNoRecipients
	}

	body, err := json.Marshal(oneSignalPayload{
		AppID:            c.appID,
		IncludePlayerIDs: msg.PlayerIDs,
		Headings:         map[string]string{"en": msg.Title},
		Contents:         map[string]string{"en": msg.Body},
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal onesignal payload: %w", err)
	}

	for attempt := 0; ; attempt++ {
		status, respBody, err := c.post(ctx, body)
		retryable := err != nil || status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
		if !retryable {
			if status < 200 || status >= 300 {
				c.logger.Warn("onesignal rejected notification",
					zap.Int("status", status),
					zap.ByteString("response", truncate(respBody, 200)),
				)
				return Result{}, notificationerrors.ErrDeliveryFailed.WithCause(
					fmt.Errorf("onesignal status %d", status))
			}
			var res Result
			if err := json.Unmarshal(respBody, &res); err != nil {
				return Result{}, fmt.Errorf("decode onesignal response: %w", err)
			}
			return res, nil
		}

		if attempt == maxRetries {
			c.logger.Error("onesignal request failed after retries",
				zap.Int("status", status),
				zap.Int("attempts", attempt+1),
				zap.Error(err),
			)
			cause := err
			if cause == nil {
				cause = fmt.Errorf("onesignal status %d", status)
			}
			return Result{}, notificationerrors.ErrDeliveryFailed.WithCause(cause)
		}

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(c.backoff(attempt)):
		}
	}
}

func (c *OneSignalClient) post(ctx context.Context, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
