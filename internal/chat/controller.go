package chat

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/diogo/procchat/internal/interpret"
	"github.com/diogo/procchat/internal/models"
)

// Exchanger performs one chat exchange against the backend. *api.Client
// satisfies it; tests substitute fakes.
type Exchanger interface {
	SendMessage(ctx context.Context, assistantID, message string) (*models.ChatReply, error)
}

// Controller owns the session state: the conversation log, the assistant
// directory, the current selection, and the pending flag that keeps a
// single exchange in flight at a time.
type Controller struct {
	exchanger Exchanger
	log       *Log
	logf      func(format string, args ...any)

	mu         sync.Mutex
	assistants []models.Assistant
	selectedID string
	pending    bool
	lastErr    error
	lastReply  *models.ChatReply
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDiagnostics replaces the diagnostic logger. Failures are reported
// here and nowhere else.
func WithDiagnostics(logf func(format string, args ...any)) ControllerOption {
	return func(c *Controller) {
		if logf != nil {
			c.logf = logf
		}
	}
}

// NewController creates a controller over the given exchanger and log.
func NewController(exchanger Exchanger, conversation *Log, opts ...ControllerOption) *Controller {
	c := &Controller{
		exchanger: exchanger,
		log:       conversation,
		logf:      log.Printf,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Conversation returns the underlying log.
func (c *Controller) Conversation() *Log {
	return c.log
}

// SetAssistants replaces the held assistant directory wholesale. An
// existing selection is kept only when the new list still contains it.
func (c *Controller) SetAssistants(assistants []models.Assistant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assistants = make([]models.Assistant, len(assistants))
	copy(c.assistants, assistants)

	if c.selectedID != "" && models.FindAssistant(c.assistants, c.selectedID) == nil {
		c.selectedID = ""
	}
}

// Assistants returns a copy of the held directory.
func (c *Controller) Assistants() []models.Assistant {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Assistant, len(c.assistants))
	copy(out, c.assistants)
	return out
}

// SelectAssistant selects an assistant by id or name. It reports whether
// the directory contains a match.
func (c *Controller) SelectAssistant(idOrName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := models.FindAssistant(c.assistants, idOrName)
	if a == nil {
		return false
	}
	c.selectedID = a.ID
	return true
}

// SelectedAssistant returns the currently selected assistant, or nil.
func (c *Controller) SelectedAssistant() *models.Assistant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.FindAssistant(c.assistants, c.selectedID)
}

// Pending reports whether an exchange is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// LastError returns the diagnostic from the most recent failed exchange,
// cleared by the next accepted submission.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// LastReply returns the most recent successful backend reply, including
// the completed-slots echo used in verbose output.
func (c *Controller) LastReply() *models.ChatReply {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastReply
}

// Submit runs one full exchange for text: guard checks, optimistic user
// turn, backend call, assistant turn. It blocks until the exchange
// resolves and reports whether the submission was accepted. A refused
// submission leaves the log untouched.
func (c *Controller) Submit(ctx context.Context, text string) bool {
	if !c.Begin(text) {
		return false
	}
	c.Exchange(ctx, text)
	return true
}

// Begin attempts the idle-to-sending transition. It refuses silently when
// text trims to empty, no assistant is selected, or an exchange is already
// in flight. On acceptance the user turn is appended before returning, so
// the optimistic update is visible ahead of the backend call.
func (c *Controller) Begin(text string) bool {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	if trimmed == "" || c.selectedID == "" || c.pending {
		c.mu.Unlock()
		return false
	}
	c.pending = true
	c.lastErr = nil
	c.mu.Unlock()

	// The turn carries the raw text; only the guard trims.
	c.log.Append(models.Turn{
		ID:      uuid.NewString(),
		Role:    models.RoleUser,
		Content: models.PlainText(text),
	})
	return true
}

// Exchange performs the backend call for a submission accepted by Begin
// and returns the controller to idle. On success the interpreted reply is
// appended as the assistant turn; on failure nothing is appended and the
// user turn is left standing.
func (c *Controller) Exchange(ctx context.Context, text string) {
	c.mu.Lock()
	assistantID := c.selectedID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.pending = false
		c.mu.Unlock()
	}()

	reply, err := c.exchanger.SendMessage(ctx, assistantID, text)
	if err != nil {
		c.logf("chat exchange failed: %v", err)
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.lastReply = reply
	c.mu.Unlock()

	c.log.Append(models.Turn{
		ID:      uuid.NewString(),
		Role:    models.RoleAssistant,
		Content: interpret.Reply(reply.Response),
	})
}
