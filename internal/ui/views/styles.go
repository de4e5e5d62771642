package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Query        lipgloss.Style
	Dim          lipgloss.Style
	Cursor       lipgloss.Style
	CursorRow    lipgloss.Style
	PreviewMark  lipgloss.Style
	PreviewBox   lipgloss.Style
	Footer       lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Highlight    lipgloss.Style
	Scroll       lipgloss.Style
	OriginBadge  lipgloss.Style
	EmptyNotice  lipgloss.Style
	ScanProgress lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Query:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		CursorRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		PreviewMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		PreviewBox:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		OriginBadge:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		EmptyNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ScanProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
}
