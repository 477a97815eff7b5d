// Package tui provides the terminal user interface for procchat.
package tui

import "github.com/charmbracelet/lipgloss"

// Fixed palette (tokyonight-ish)
var (
	colorPrimary   = lipgloss.Color("#7aa2f7")
	colorSecondary = lipgloss.Color("#bb9af7")
	colorAccent    = lipgloss.Color("#9ece6a")
	colorError     = lipgloss.Color("#f7768e")
	colorText      = lipgloss.Color("#c0caf5")
	colorTextDim   = lipgloss.Color("#565f89")
	colorTextMute  = lipgloss.Color("#3b4261")
	colorBorder    = lipgloss.Color("#3b4261")
)

var (
	// Header panel style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Messages area panel
	messagesAreaStyle = lipgloss.NewStyle().
				Padding(0, 1)

	// User message bubble
	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	userBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorTextMute).
			Foreground(colorText).
			Padding(0, 1).
			MarginBottom(1)

	// Assistant message bubble
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginBottom(1)

	// Analysis panel inside an assistant bubble
	analysisHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	analysisFieldStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	// Input area panel
	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Loading/spinner style
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Status bar styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	// Welcome styles
	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Align(lipgloss.Center)

	// Selector overlay styles
	selectorTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	selectorItemStyle = lipgloss.NewStyle().
				Foreground(colorText)

	selectorSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	selectorCursorStyle = lipgloss.NewStyle().
				Foreground(colorAccent)

	selectorMetaStyle = lipgloss.NewStyle().
				Foreground(colorTextMute)
)
