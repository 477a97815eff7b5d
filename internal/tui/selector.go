package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/procchat/internal/models"
)

// updateSelector handles updates while the assistant selector is open
func (m Model) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case assistantsLoadedMsg:
		m.directoryLoading = false
		if msg.err != nil {
			m.selecting = false
			m.err = msg.err
		} else {
			m.ctrl.SetAssistants(msg.assistants)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.selecting = false
			m.cursor = 0
			m.filter = ""

		case "up", "k":
			if n := len(m.filteredAssistants()); n > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = n - 1
				}
			}

		case "down", "j":
			if n := len(m.filteredAssistants()); n > 0 {
				m.cursor++
				if m.cursor >= n {
					m.cursor = 0
				}
			}

		case "enter":
			filtered := m.filteredAssistants()
			if len(filtered) > 0 && m.cursor < len(filtered) {
				m.ctrl.SelectAssistant(filtered[m.cursor].ID)
				m.selecting = false
				m.cursor = 0
				m.filter = ""
			}

		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.cursor = 0
			}

		default:
			// Printable characters narrow the filter
			if len(msg.String()) == 1 {
				r := []rune(msg.String())[0]
				if r >= ' ' && r <= '~' {
					m.filter += msg.String()
					m.cursor = 0
				}
			}
		}
	}

	return m, nil
}

// filteredAssistants returns the directory filtered by the typed prefix
func (m Model) filteredAssistants() []models.Assistant {
	assistants := m.ctrl.Assistants()
	if m.filter == "" {
		return assistants
	}

	filter := strings.ToLower(m.filter)
	var filtered []models.Assistant
	for _, a := range assistants {
		if strings.Contains(strings.ToLower(a.Name), filter) ||
			strings.Contains(strings.ToLower(a.ID), filter) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// renderSelector renders the assistant selection overlay
func (m Model) renderSelector() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var content strings.Builder

	title := selectorTitleStyle.Render("Select an assistant")
	if a := m.ctrl.SelectedAssistant(); a != nil {
		title += hintStyle.Render(fmt.Sprintf("  (current: %s)", a.Name))
	}
	content.WriteString(title)
	content.WriteString("\n\n")

	if m.filter != "" {
		content.WriteString(inputLabelStyle.Render("filter: ") + m.filter + "_")
		content.WriteString("\n\n")
	}

	assistants := m.ctrl.Assistants()
	switch {
	case m.directoryLoading:
		content.WriteString(loadingStyle.Render("  Loading assistants..."))
	case len(assistants) == 0:
		content.WriteString(hintStyle.Render("  No assistants available"))
	default:
		filtered := m.filteredAssistants()
		if len(filtered) == 0 {
			content.WriteString(hintStyle.Render("  No assistants match filter"))
		} else {
			maxItems := 8
			startIdx := 0
			if m.cursor >= maxItems {
				startIdx = m.cursor - maxItems + 1
			}
			endIdx := startIdx + maxItems
			if endIdx > len(filtered) {
				endIdx = len(filtered)
			}

			if startIdx > 0 {
				content.WriteString(hintStyle.Render("  ↑ more above"))
				content.WriteString("\n")
			}

			for i := startIdx; i < endIdx; i++ {
				a := filtered[i]
				cursor := "  "
				nameStyle := selectorItemStyle
				if i == m.cursor {
					cursor = selectorCursorStyle.Render("▸ ")
					nameStyle = selectorSelectedStyle
				}

				line := cursor + nameStyle.Render(a.Name)
				if a.Model != "" {
					line += selectorMetaStyle.Render("  [" + a.Model + "]")
				}
				content.WriteString(line)
				content.WriteString("\n")
			}

			if endIdx < len(filtered) {
				content.WriteString(hintStyle.Render("  ↓ more below"))
				content.WriteString("\n")
			}
		}
	}

	content.WriteString("\n")

	shortcuts := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Select"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" Cancel"),
	}
	content.WriteString(strings.Join(shortcuts, "  │  "))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(content.String())
}
