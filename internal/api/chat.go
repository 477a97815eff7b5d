package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diogo/procchat/internal/errors"
	"github.com/diogo/procchat/internal/models"
)

// SendMessage performs one chat exchange: it posts the message to the
// backend, routed to assistantID via the assistant-id header, and returns
// the decoded reply. The raw reply string (reply.Response) is left for the
// interpreter; this layer only cares about the transport and the envelope.
func (c *Client) SendMessage(ctx context.Context, assistantID, message string) (*models.ChatReply, error) {
	payload, err := json.Marshal(models.ChatRequest{
		UserID:  c.userID,
		Message: message,
	})
	if err != nil {
		return nil, errors.NewExchangeError(0, PathChat, fmt.Sprintf("encoding request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathChat, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.NewExchangeError(0, PathChat, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderAssistantID, assistantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewExchangeError(0, PathChat, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExchangeError(0, PathChat, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewExchangeError(resp.StatusCode, PathChat, truncateBody(body))
	}

	var reply models.ChatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, errors.NewExchangeError(0, PathChat, fmt.Sprintf("decoding reply: %v", err))
	}

	return &reply, nil
}

// truncateBody keeps error messages readable when the backend returns a
// long HTML error page.
func truncateBody(body []byte) string {
	const maxLen = 200
	s := string(body)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
