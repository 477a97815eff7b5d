package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/procchat/internal/chat"
	"github.com/diogo/procchat/internal/models"
	"github.com/diogo/procchat/internal/render"
)

// DirectoryClient fetches the assistant directory. *api.Client satisfies it.
type DirectoryClient interface {
	LoadAssistants(ctx context.Context) ([]models.Assistant, error)
}

// Message types for the TUI
type (
	// assistantsLoadedMsg is sent when the startup directory fetch resolves
	assistantsLoadedMsg struct {
		assistants []models.Assistant
		err        error
	}
	// exchangeDoneMsg is sent when a chat exchange resolves (success or failure)
	exchangeDoneMsg struct{}
)

// Model represents the TUI state
type Model struct {
	directory DirectoryClient
	ctrl      *chat.Controller

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading          bool
	directoryLoading bool
	ready            bool
	err              error

	// Assistant selection overlay
	selecting bool
	cursor    int
	filter    string

	// Dimensions
	width  int
	height int
}

// NewModel creates a new chat TUI model
func NewModel(directory DirectoryClient, ctrl *chat.Controller) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		directory: directory,
		ctrl:      ctrl,
		textarea:  ta,
		spinner:   s,
		// A caller may have fetched the directory already (flag-driven
		// preselection); fetch only when it hasn't.
		directoryLoading: len(ctrl.Assistants()) == 0,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		m.spinner.Tick,
	}
	if m.directoryLoading {
		cmds = append(cmds, m.loadAssistants())
	}
	return tea.Batch(cmds...)
}

// loadAssistants returns the startup command that fetches the directory once.
func (m Model) loadAssistants() tea.Cmd {
	return func() tea.Msg {
		assistants, err := m.directory.LoadAssistants(context.Background())
		return assistantsLoadedMsg{assistants: assistants, err: err}
	}
}

// exchange returns the command that runs the backend call for an accepted
// submission.
func (m Model) exchange(text string) tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Exchange(context.Background(), text)
		return exchangeDoneMsg{}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.selecting {
		return m.updateSelector(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		inputHeight := 5
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case assistantsLoadedMsg:
		m.directoryLoading = false
		if msg.err != nil {
			// Directory failure is a diagnostic; the list stays empty.
			m.err = msg.err
		} else {
			m.ctrl.SetAssistants(msg.assistants)
			if m.ctrl.SelectedAssistant() == nil && len(msg.assistants) > 0 {
				m.selecting = true
				m.cursor = 0
				m.filter = ""
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if !m.loading {
				return m, tea.Quit
			}

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			if input == "/assistants" || input == "/assistant" {
				m.textarea.Reset()
				m.selecting = true
				m.cursor = 0
				m.filter = ""
				return m, nil
			}

			if !m.loading {
				raw := m.textarea.Value()
				if m.ctrl.Begin(raw) {
					m.loading = true
					m.err = nil
					m.textarea.Reset()
					m.updateViewport()
					m.viewport.GotoBottom()
					return m, tea.Batch(m.exchange(raw), m.spinner.Tick)
				}
			}
		}

	case exchangeDoneMsg:
		m.loading = false
		m.err = m.ctrl.LastError()
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.loading || m.directoryLoading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only pass KeyMsg to textarea to prevent escape sequence leaks
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.selecting {
		return m.renderSelector()
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("Procurement Chat"),
	}
	if a := m.ctrl.SelectedAssistant(); a != nil {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			subtitleStyle.Render(a.Name),
		)
	} else if m.directoryLoading {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			hintStyle.Render("loading assistants..."),
		)
	} else {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			hintStyle.Render("no assistant selected"),
		)
	}
	header := headerStyle.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, headerParts...))
	sections = append(sections, header)

	// Messages area
	var messagesContent string
	if m.ctrl.Conversation().Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	// Input area
	var inputContent string
	if m.loading {
		inputContent = m.spinner.View() + loadingStyle.Render(" Waiting for the assistant...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	// Diagnostics line. Exchange failures leave the user turn standing;
	// this is the only place they surface.
	if m.err != nil {
		sections = append(sections, errorStyle.Render("  ! "+m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the empty-history screen
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	title := welcomeTitleStyle.Width(width).Render("Procurement Chat")
	subtitle := welcomeStyle.Width(width).Render("Pick an assistant with /assistants, then type a message below")

	content := lipgloss.JoinVertical(lipgloss.Center, "", title, "", subtitle, "")

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom shortcut bar
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"/assistants", "Switch assistant"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).
		Render(strings.Join(items, "  │  "))
}

// updateViewport refreshes the viewport content from the conversation log
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	turns := m.ctrl.Conversation().Snapshot()
	for i, turn := range turns {
		if i > 0 {
			content.WriteString("\n")
		}

		if turn.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(turn.Content.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ Assistant")
			bubble := assistantBubbleStyle.Width(bubbleWidth).
				Render(m.renderContent(turn.Content, bubbleWidth-4))
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderContent renders one assistant reply for the viewport.
func (m Model) renderContent(c models.DisplayContent, width int) string {
	if c.Kind == models.KindStructuredAnalysis {
		return renderAnalysis(c.Analysis)
	}

	rendered, err := render.MarkdownWithWidth(c.Text, width)
	if err != nil {
		return c.Text
	}
	return strings.TrimRight(rendered, "\n")
}

// renderAnalysis lays out a structured analysis inside the bubble.
func renderAnalysis(a models.Analysis) string {
	lines := []string{
		analysisHeaderStyle.Render("Final answer"),
		a.FinalAnswerText(),
		"",
		analysisFieldStyle.Render("Risk assessment: ") + a.RiskAssessmentText(),
		analysisFieldStyle.Render("Documentation & approvals: ") + a.DocumentationText(),
		analysisFieldStyle.Render("Procurement strategy: ") + a.ProcurementStrategyText(),
	}
	return strings.Join(lines, "\n")
}

// RunChat starts the chat TUI
func RunChat(directory DirectoryClient, ctrl *chat.Controller) error {
	p := tea.NewProgram(
		NewModel(directory, ctrl),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
