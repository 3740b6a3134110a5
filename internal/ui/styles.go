package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) reads well on both dark and light terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) keeps descriptions subdued
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// BannerStyle for the interactive welcome line
	BannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// SpeakerStyle for the assistant name prefixing replies
	SpeakerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
