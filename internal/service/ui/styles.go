package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (Cyan), readable on light and dark terminals.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// UserStyle ANSI 2 (Green) for the user's transcript lines.
	UserStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	// AssistantStyle ANSI 5 (Magenta) for model replies.
	AssistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	// NoticeStyle ANSI 3 (Yellow) for transient retry notices.
	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle ANSI 1 (Red) for terminal failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// MutedStyle ANSI 8 (Gray) for hints and secondary info.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
