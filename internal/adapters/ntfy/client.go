// Package ntfy delivers notifications to an ntfy push server.
package ntfy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"toasty/internal/domain"
	"toasty/internal/logging"
	"toasty/internal/ports"
)

const requestTimeout = 10 * time.Second

// Client implements ports.Notifier against an ntfy server
type Client struct {
	server string
	topic  string
	token  string
	http   *http.Client
}

var _ ports.Notifier = (*Client)(nil)

// NewClient creates an ntfy client for the given server and topic
func NewClient(server, topic, token string) *Client {
	return &Client{
		server: strings.TrimRight(server, "/"),
		topic:  topic,
		token:  token,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

// Send publishes the notification. The message is the request body; title,
// priority and tags travel as ntfy headers.
func (c *Client) Send(ctx context.Context, n domain.Notification, meta domain.DeliveryMeta) error {
	url := fmt.Sprintf("%s/%s", c.server, c.topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(n.Message))
	if err != nil {
		return fmt.Errorf("failed to build ntfy request: %w", err)
	}

	req.Header.Set("X-Title", n.Title)
	req.Header.Set("X-Priority", n.Priority)
	if len(n.Tags) > 0 {
		req.Header.Set("X-Tags", strings.Join(n.Tags, ","))
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logging.Logger.Debug("Sending ntfy notification",
		"url", url,
		"title", n.Title,
		"priority", n.Priority,
		"session", meta.SessionID,
		"hook", meta.HookName)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ntfy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
