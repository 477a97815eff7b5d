package models

// ChatReply is the payload of POST /chat/. Only Response drives the
// conversation lifecycle; the backend also echoes the slots it has filled
// so far and its own view of the history, which we surface in verbose
// output only.
type ChatReply struct {
	Response            string            `json:"response"`
	CompletedSlots      map[string]string `json:"completed_slots,omitempty"`
	ConversationHistory []string          `json:"conversation_history,omitempty"`
}

// ChatRequest is the body of POST /chat/.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
