package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/voltline/backend/internal/models"
)

// WebhookNotifier POSTs events as JSON to an external endpoint.
type WebhookNotifier struct {
	BaseURL string
	Client  *http.Client
}

type requestCreatedBody struct {
	Event   string                `json:"event"`
	Request models.ServiceRequest `json:"request"`
}

type statusChangedBody struct {
	Event string `json:"event"`
	Data  Event  `json:"data"`
}

func (n WebhookNotifier) RequestCreated(ctx context.Context, r models.ServiceRequest) error {
	return n.post(ctx, requestCreatedBody{Event: "request.created", Request: r})
}

func (n WebhookNotifier) StatusChanged(ctx context.Context, ev Event) error {
	return n.post(ctx, statusChangedBody{Event: "status.changed", Data: ev})
}

func (n WebhookNotifier) post(ctx context.Context, payload any) error {
	client := n.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.BaseURL, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("webhook error: " + resp.Status)
	}
	return nil
}
