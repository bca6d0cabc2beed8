package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/studyflow/internal/models"
)

var (
	primary = lipgloss.Color("#7C3AED")
	muted   = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#10B981")
	warning = lipgloss.Color("#F59E0B")
	danger  = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	successStyle = lipgloss.NewStyle().
			Foreground(success)

	meStyle = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1)
)

// difficultyBadge colors a chapter difficulty.
func difficultyBadge(d models.Difficulty) string {
	color := muted
	switch d {
	case models.DifficultyEasy:
		color = success
	case models.DifficultyMedium:
		color = warning
	case models.DifficultyHard:
		color = danger
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(d))
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = min(max(filled, 0), width)
	bar := lipgloss.NewStyle().Foreground(primary).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, pct)
}

// renderMarkdown renders tutor output for the terminal, falling back to the
// raw text if the renderer cannot be built.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
