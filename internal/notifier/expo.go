package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"beach-reserve/internal/pkg/errs"
)

// ExpoMessage is the push payload Expo's HTTP/2 gateway accepts.
type ExpoMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Sound string         `json:"sound,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
}

type expoTicket struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type expoResponse struct {
	Data []expoTicket `json:"data"`
}

type ExpoClient struct {
	url        string
	httpClient *http.Client
}

func NewExpoClient(url string) *ExpoClient {
	return &ExpoClient{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send pushes a batch in one request. A non-ok ticket fails the whole batch
// so the outbox retry resends it; Expo deduplicates on its side.
func (c *ExpoClient) Send(ctx context.Context, messages []ExpoMessage) error {
	if len(messages) == 0 {
		return nil
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return errs.Wrap(err, "failed to marshal push messages")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "push request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.New(fmt.Sprintf("push gateway returned %d: %s", resp.StatusCode, payload))
	}

	var parsed expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return errs.Wrap(err, "failed to decode push response")
	}

	for _, ticket := range parsed.Data {
		if ticket.Status != "ok" {
			return errs.New(fmt.Sprintf("push ticket error: %s", ticket.Message))
		}
	}
	return nil
}
