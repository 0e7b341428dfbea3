// Package styles provides reusable lipgloss styles for kursor's CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title heads a command's output block.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4ade80"))

	// Path renders a filesystem path.
	Path = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff"))

	// Muted renders secondary detail (indices, annotations).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#909090"))

	// Missing marks a search root that does not exist on disk.
	Missing = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#909090")).
		Strikethrough(true)
)
