package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpContent renders the key binding reference shown in the pager.
func helpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("findt Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("↑/↓, ctrl+k/ctrl+j"), descStyle.Render("Move up/down")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("ctrl+g / ctrl+e"), descStyle.Render("Jump to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Scroll by page")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s               %s\n", keyStyle.Render("Type"), descStyle.Render("Real-time search")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Backspace"), descStyle.Render("Remove characters")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+u"), descStyle.Render("Clear search")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+f"), descStyle.Render("Toggle fancy fuzzy mode (if available)")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Actions"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s              %s\n", keyStyle.Render("Enter"), descStyle.Render("Select file & show preview")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+c"), descStyle.Render("Copy file path to clipboard")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+y"), descStyle.Render("Copy file content to clipboard")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+p"), descStyle.Render("Toggle preview pane")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+v"), descStyle.Render("View file in pager")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("System"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+h"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s             %s\n", keyStyle.Render("ctrl+q"), descStyle.Render("Quit")))
	help.WriteString(fmt.Sprintf("  %s                %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear search or quit")))

	return help.String()
}

// openHelpPager shows the help screen in the ov pager, pausing the main
// loop until the user closes it.
func (m *Model) openHelpPager() tea.Cmd {
	return func() tea.Msg {
		err := m.showInPager(strings.NewReader(helpContent()))
		return pagerClosedMsg{err: err}
	}
}

// openFilePager views the file under the cursor in the ov pager.
func (m *Model) openFilePager() tea.Cmd {
	entry := m.currentEntry()
	if entry == nil {
		return nil
	}
	return func() tea.Msg {
		f, err := os.Open(entry.Path)
		if err != nil {
			return pagerClosedMsg{err: err}
		}
		defer f.Close()
		return pagerClosedMsg{err: m.showInPager(f)}
	}
}

// showInPager releases the terminal, runs ov over the reader and
// restores the terminal afterwards.
func (m *Model) showInPager(r io.Reader) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before taking the terminal back.
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
