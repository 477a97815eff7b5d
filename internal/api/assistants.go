package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diogo/procchat/internal/errors"
	"github.com/diogo/procchat/internal/models"
)

// LoadAssistants fetches the assistant directory. It issues one request
// and does not retry; callers treat a failure as "empty directory" and
// log it as a diagnostic.
func (c *Client) LoadAssistants(ctx context.Context) ([]models.Assistant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathAssistants, nil)
	if err != nil {
		return nil, errors.NewDirectoryError(err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewDirectoryError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewDirectoryError(fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewDirectoryError(err.Error())
	}

	var list models.AssistantList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.NewDirectoryError(fmt.Sprintf("decoding directory: %v", err))
	}

	return list.Assistants, nil
}
