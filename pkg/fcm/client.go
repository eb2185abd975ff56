package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nutritrack/notification-service/internal/entity"
)

const DefaultEndpoint = "https://fcm.googleapis.com/fcm/send"

// Gateway error strings returned by FCM for dead registrations.
const (
	errNotRegistered       = "NotRegistered"
	errInvalidRegistration = "InvalidRegistration"
	errMissingRegistration = "MissingRegistration"
	errMismatchSenderID    = "MismatchSenderId"
)

// Client talks to the FCM HTTP endpoint. Built once at startup and
// shared across invocations.
type Client struct {
	serverKey  string
	endpoint   string
	httpClient *http.Client
}

func NewClient(serverKey, endpoint string, timeout time.Duration) (*Client, error) {
	if serverKey == "" {
		return nil, entity.ErrGatewayNotConfigured
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		serverKey:  serverKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}

type webpushNotification struct {
	Icon    string `json:"icon,omitempty"`
	Badge   string `json:"badge,omitempty"`
	Vibrate []int  `json:"vibrate,omitempty"`
}

type webpush struct {
	Notification webpushNotification `json:"notification"`
}

type message struct {
	To           string            `json:"to"`
	Notification *notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
	Webpush      *webpush          `json:"webpush,omitempty"`
	DryRun       bool              `json:"dry_run,omitempty"`
}

type result struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

type response struct {
	Success int      `json:"success"`
	Failure int      `json:"failure"`
	Results []result `json:"results"`
}

// Send delivers one reminder payload to its recipient token.
func (c *Client) Send(ctx context.Context, p *entity.Payload) error {
	msg := &message{
		To: p.Token,
		Notification: &notification{
			Title: p.Notification.Title,
			Body:  p.Notification.Body,
			Icon:  p.DisplayHints.Icon,
		},
		Data: map[string]string{
			"type":     p.Data.Type,
			"mealType": p.Data.MealType,
			"deepLink": p.Data.DeepLink,
		},
		Webpush: &webpush{
			Notification: webpushNotification{
				Icon:    p.DisplayHints.Icon,
				Badge:   p.DisplayHints.Badge,
				Vibrate: p.DisplayHints.Vibrate,
			},
		},
	}
	return c.post(ctx, msg)
}

// SendDryRun probes a token without displaying anything to the user.
func (c *Client) SendDryRun(ctx context.Context, token string) error {
	msg := &message{
		To:     token,
		Data:   map[string]string{"type": "token_check"},
		DryRun: true,
	}
	return c.post(ctx, msg)
}

func (c *Client) post(ctx context.Context, msg *message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fcm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("fcm rejected server key: %w", entity.ErrGatewayNotConfigured)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fcm API error: %s", resp.Status)
	}

	var fcmResp response
	if err := json.NewDecoder(resp.Body).Decode(&fcmResp); err != nil {
		return fmt.Errorf("failed to decode fcm response: %w", err)
	}

	if len(fcmResp.Results) > 0 && fcmResp.Results[0].Error != "" {
		return classify(fcmResp.Results[0].Error)
	}
	if fcmResp.Failure > 0 {
		return fmt.Errorf("fcm reported %d failed deliveries", fcmResp.Failure)
	}

	return nil
}

// classify maps gateway error strings onto the entity sentinels so
// callers can errors.Is without knowing FCM vocabulary.
func classify(code string) error {
	switch code {
	case errNotRegistered:
		return fmt.Errorf("fcm: %s: %w", code, entity.ErrTokenNotRegistered)
	case errInvalidRegistration, errMissingRegistration, errMismatchSenderID:
		return fmt.Errorf("fcm: %s: %w", code, entity.ErrTokenInvalid)
	default:
		return fmt.Errorf("fcm send failed: %s", code)
	}
}
