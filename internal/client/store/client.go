package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/click2025-space/clickers-workspace/internal/config"
	api "github.com/click2025-space/clickers-workspace/internal/generated"
	"github.com/click2025-space/clickers-workspace/internal/model"
)

const userIDHeader = "X-User-Id"

// Client is the Message Store as seen from the synchronizer: list, create
// and delete over the workspace REST layer.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

func New(cfg *config.ClientConfig) *Client {
	return &Client{
		baseURL: cfg.ServerBaseURL,
		userID:  cfg.UserID,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) List(ctx context.Context) (model.MessageList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/messages", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(userIDHeader, c.userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var response api.GetMessagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	messages := make(model.MessageList, len(response.Messages))
	for i, msg := range response.Messages {
		messages[i], err = fromAPIMessage(msg)
		if err != nil {
			return nil, err
		}
	}

	return messages, nil
}

func (c *Client) Create(ctx context.Context, channel string, body model.Body) (*model.Message, error) {
	payload := api.SendMessageRequest{
		Channel: channel,
		Content: model.EncodeBody(body),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(userIDHeader, c.userID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var response api.SendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	message, err := fromAPIMessage(response.Message)
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (c *Client) Delete(ctx context.Context, messageID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/messages/"+messageID, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(userIDHeader, c.userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusForbidden:
		return model.ErrNotMessageSender
	case http.StatusNotFound:
		return model.ErrMessageNotFound
	default:
		return c.decodeError(resp)
	}
}

func (c *Client) decodeError(resp *http.Response) error {
	var apiErr api.Error
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("store error (status %d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}

func fromAPIMessage(msg api.Message) (model.Message, error) {
	sentAt, err := time.Parse(time.RFC3339, msg.SentAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to parse message timestamp: %w", err)
	}

	return model.Message{
		ID:       msg.Id,
		SenderID: msg.SenderId,
		Channel:  msg.Channel,
		Body:     model.ParseBody(msg.Content),
		SentAt:   sentAt,
		Seq:      msg.Seq,
	}, nil
}
