package tui

import (
	"context"
	stderrors "errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/procchat/internal/chat"
	"github.com/diogo/procchat/internal/models"
)

// fakeDirectory scripts the directory fetch.
type fakeDirectory struct {
	assistants []models.Assistant
	err        error
}

func (f *fakeDirectory) LoadAssistants(ctx context.Context) ([]models.Assistant, error) {
	return f.assistants, f.err
}

// fakeExchanger scripts the chat exchange.
type fakeExchanger struct {
	reply *models.ChatReply
	err   error
	calls int
}

func (f *fakeExchanger) SendMessage(ctx context.Context, assistantID, message string) (*models.ChatReply, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func newTestModel(ex chat.Exchanger, assistants []models.Assistant) (Model, *chat.Controller) {
	ctrl := chat.NewController(ex, chat.NewLog(), chat.WithDiagnostics(func(string, ...any) {}))
	ctrl.SetAssistants(assistants)
	m := NewModel(&fakeDirectory{assistants: assistants}, ctrl)

	// Size the components so updateViewport has real dimensions
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), ctrl
}

func TestModel_InitialState(t *testing.T) {
	m, _ := newTestModel(&fakeExchanger{}, nil)

	if m.loading {
		t.Error("loading = true initially, want false")
	}
	if !m.ready {
		t.Error("ready = false after size message, want true")
	}
}

func TestModel_AssistantsLoadedOpensSelector(t *testing.T) {
	m, ctrl := newTestModel(&fakeExchanger{}, nil)

	updated, _ := m.Update(assistantsLoadedMsg{
		assistants: []models.Assistant{{ID: "a1", Name: "Legal"}},
	})
	m = updated.(Model)

	if !m.selecting {
		t.Error("selecting = false after directory load with no selection, want true")
	}
	if len(ctrl.Assistants()) != 1 {
		t.Errorf("controller holds %d assistants, want 1", len(ctrl.Assistants()))
	}
}

func TestModel_AssistantsLoadFailureKeepsEmptyDirectory(t *testing.T) {
	m, ctrl := newTestModel(&fakeExchanger{}, nil)

	updated, _ := m.Update(assistantsLoadedMsg{err: stderrors.New("connection refused")})
	m = updated.(Model)

	if m.selecting {
		t.Error("selecting = true after failed directory load, want false")
	}
	if m.err == nil {
		t.Error("err = nil after failed directory load, want diagnostic")
	}
	if len(ctrl.Assistants()) != 0 {
		t.Errorf("controller holds %d assistants, want 0", len(ctrl.Assistants()))
	}
}

func TestModel_EnterSubmits(t *testing.T) {
	ex := &fakeExchanger{reply: &models.ChatReply{Response: "hi there"}}
	m, ctrl := newTestModel(ex, []models.Assistant{{ID: "a1", Name: "Legal"}})
	ctrl.SelectAssistant("a1")

	m.textarea.SetValue("hello")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.loading {
		t.Error("loading = false after accepted submit, want true")
	}
	if cmd == nil {
		t.Fatal("cmd = nil after accepted submit, want exchange command")
	}
	if ctrl.Conversation().Len() != 1 {
		t.Errorf("log has %d turns before exchange resolves, want 1", ctrl.Conversation().Len())
	}
	if m.textarea.Value() != "" {
		t.Errorf("textarea = %q after submit, want cleared", m.textarea.Value())
	}

	// Run the exchange and feed the completion back through Update
	done := m.exchange("hello")()
	if _, ok := done.(exchangeDoneMsg); !ok {
		t.Fatalf("exchange cmd returned %T, want exchangeDoneMsg", done)
	}
}

func TestModel_ExchangeDoneStopsLoading(t *testing.T) {
	ex := &fakeExchanger{reply: &models.ChatReply{Response: "hi there"}}
	m, ctrl := newTestModel(ex, []models.Assistant{{ID: "a1", Name: "Legal"}})
	ctrl.SelectAssistant("a1")
	ctrl.Submit(context.Background(), "hello")

	m.loading = true
	updated, _ := m.Update(exchangeDoneMsg{})
	m = updated.(Model)

	if m.loading {
		t.Error("loading = true after exchangeDoneMsg, want false")
	}
	if m.err != nil {
		t.Errorf("err = %v after successful exchange, want nil", m.err)
	}
	if ctrl.Conversation().Len() != 2 {
		t.Errorf("log has %d turns, want 2", ctrl.Conversation().Len())
	}
}

func TestModel_EnterWhileLoadingIgnored(t *testing.T) {
	ex := &fakeExchanger{reply: &models.ChatReply{Response: "ok"}}
	m, ctrl := newTestModel(ex, []models.Assistant{{ID: "a1", Name: "Legal"}})
	ctrl.SelectAssistant("a1")
	m.loading = true

	m.textarea.SetValue("second message")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if ctrl.Conversation().Len() != 0 {
		t.Errorf("log has %d turns, want 0 (submit while loading is a no-op)", ctrl.Conversation().Len())
	}
	if ex.calls != 0 {
		t.Errorf("exchanger called %d times, want 0", ex.calls)
	}
}

func TestModel_EnterWithoutSelectionRefused(t *testing.T) {
	ex := &fakeExchanger{reply: &models.ChatReply{Response: "ok"}}
	m, ctrl := newTestModel(ex, []models.Assistant{{ID: "a1", Name: "Legal"}})

	m.textarea.SetValue("hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.loading {
		t.Error("loading = true with no assistant selected, want false")
	}
	if ctrl.Conversation().Len() != 0 {
		t.Errorf("log has %d turns, want 0", ctrl.Conversation().Len())
	}
}

func TestModel_SlashAssistantsOpensSelector(t *testing.T) {
	m, _ := newTestModel(&fakeExchanger{}, []models.Assistant{{ID: "a1", Name: "Legal"}})

	m.textarea.SetValue("/assistants")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.selecting {
		t.Error("selecting = false after /assistants, want true")
	}
}

func TestSelector_EnterSelects(t *testing.T) {
	assistants := []models.Assistant{
		{ID: "a1", Name: "Legal"},
		{ID: "a2", Name: "Procurement"},
	}
	m, ctrl := newTestModel(&fakeExchanger{}, assistants)
	m.selecting = true
	m.directoryLoading = false
	m.cursor = 1

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.selecting {
		t.Error("selecting = true after enter, want false")
	}
	if got := ctrl.SelectedAssistant(); got == nil || got.ID != "a2" {
		t.Errorf("SelectedAssistant() = %v, want a2", got)
	}
}

func TestSelector_FilterNarrowsList(t *testing.T) {
	assistants := []models.Assistant{
		{ID: "a1", Name: "Legal"},
		{ID: "a2", Name: "Procurement"},
	}
	m, _ := newTestModel(&fakeExchanger{}, assistants)
	m.selecting = true
	m.filter = "proc"

	filtered := m.filteredAssistants()
	if len(filtered) != 1 || filtered[0].ID != "a2" {
		t.Errorf("filteredAssistants() = %v, want just a2", filtered)
	}
}

func TestSelector_EscCancels(t *testing.T) {
	m, ctrl := newTestModel(&fakeExchanger{}, []models.Assistant{{ID: "a1", Name: "Legal"}})
	m.selecting = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.selecting {
		t.Error("selecting = true after esc, want false")
	}
	if ctrl.SelectedAssistant() != nil {
		t.Error("esc should not select an assistant")
	}
}
