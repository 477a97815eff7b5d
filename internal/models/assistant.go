// Package models defines the core data types shared across the client.
package models

import "strings"

// Assistant is a named backend-side persona the user routes messages to.
// The directory endpoint returns more than id/name; the extra fields are
// optional and decoded only when the backend provides them.
type Assistant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	Model     string `json:"model,omitempty"`
	VectorID  string `json:"vector_id,omitempty"`
}

// AssistantList is the payload of GET /assistants/.
type AssistantList struct {
	Total      int         `json:"total"`
	Assistants []Assistant `json:"assistants"`
}

// FindAssistant returns the assistant matching id, or by case-insensitive
// name when no id matches. Returns nil when nothing matches.
func FindAssistant(assistants []Assistant, idOrName string) *Assistant {
	for i := range assistants {
		if assistants[i].ID == idOrName {
			return &assistants[i]
		}
	}
	for i := range assistants {
		if strings.EqualFold(assistants[i].Name, idOrName) {
			return &assistants[i]
		}
	}
	return nil
}
