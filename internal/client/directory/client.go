package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/click2025-space/clickers-workspace/internal/config"
	api "github.com/click2025-space/clickers-workspace/internal/generated"
	"github.com/click2025-space/clickers-workspace/internal/model"
)

const userIDHeader = "X-User-Id"

// Client reads the members directory. The synchronizer only needs it for
// display-name and avatar resolution; nothing here mutates.
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

func (c *Client) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/members", nil)
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
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response api.GetMembersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	participants := make([]model.Participant, len(response.Members))
	for i, member := range response.Members {
		avatarURL := ""
		if member.AvatarUrl != nil {
			avatarURL = *member.AvatarUrl
		}

		participants[i] = model.Participant{
			ID:        member.Id,
			Name:      member.Name,
			Role:      member.Role,
			AvatarURL: avatarURL,
			Status:    member.Status,
		}
	}

	return participants, nil
}
