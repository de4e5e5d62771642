// Package ui is the interactive loop: one key event is decoded into a
// command, applied atomically to the search and view state, and the
// frame is redrawn from the result. All mutation happens here.
package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"findt/internal/clipboard"
	"findt/internal/content"
	"findt/internal/domain"
	"findt/internal/match"
	"findt/internal/ui/input"
	"findt/internal/ui/logic"
	"findt/internal/ui/views"
)

const statusTTL = 2 * time.Second

// Model is the Bubble Tea model for the finder.
type Model struct {
	matcher *match.Matcher
	copier  clipboard.Copier

	renderer *views.Renderer
	nav      *logic.Navigator
	spinner  spinner.Model

	// search state
	query string
	mode  domain.SearchMode

	entries []domain.FileEntry
	results []domain.MatchResult

	// view state
	previewPath  string
	previewLines []string
	showPreview  bool

	scanning bool
	progress domain.ScanProgress

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int

	program *tea.Program
}

// NewModel creates the UI model. The entry list arrives later via
// ScanCompletedMsg; until then the model renders the scan progress screen.
func NewModel(matcher *match.Matcher, copier clipboard.Copier, initialQuery string, mode domain.SearchMode) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		matcher:     matcher,
		copier:      copier,
		renderer:    views.NewRenderer(),
		nav:         logic.NewNavigator(),
		spinner:     sp,
		query:       initialQuery,
		mode:        mode,
		showPreview: true,
		scanning:    true,
		width:       80,
		height:      24,
	}
}

// SetProgram stores the program reference needed to release the terminal
// around external pagers.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ScanProgressMsg:
		m.progress = msg.Progress
		return m, nil

	case ScanCompletedMsg:
		m.scanning = false
		m.entries = msg.Entries
		if msg.Err != nil {
			log.Printf("scan finished with error: %v", msg.Err)
		}
		m.refreshResults()
		return m, nil

	case statusExpireMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			return m, m.setStatus("Pager failed: "+msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey applies exactly one command per key event. The transition
// completes (including any synchronous re-match) before the next render.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ch := input.Resolve(msg)

	if m.scanning {
		// Only quitting is possible while the scan runs.
		if cmd == input.CmdQuit || cmd == input.CmdClearOrQuit {
			return m, tea.Quit
		}
		return m, nil
	}

	switch cmd {
	case input.CmdMoveUp:
		m.nav.Move(-1)
	case input.CmdMoveDown:
		m.nav.Move(1)
	case input.CmdJumpTop:
		m.nav.JumpTop()
	case input.CmdJumpBottom:
		m.nav.JumpBottom()
	case input.CmdPageUp:
		m.nav.Move(-m.listRows())
	case input.CmdPageDown:
		m.nav.Move(m.listRows())

	case input.CmdSelect:
		m.selectCurrent()

	case input.CmdCopyPath:
		return m, m.copyPath()

	case input.CmdCopyContent:
		return m, m.copyContent()

	case input.CmdToggleFuzzy:
		if !m.matcher.FuzzyAvailable() {
			return m, m.setStatus("Fuzzy matching is not available", true)
		}
		if m.mode == domain.ModeFuzzy {
			m.mode = domain.ModeExact
		} else {
			m.mode = domain.ModeFuzzy
		}
		m.refreshResults()

	case input.CmdTogglePreview:
		m.showPreview = !m.showPreview

	case input.CmdShowHelp:
		return m, m.openHelpPager()

	case input.CmdOpenPager:
		return m, m.openFilePager()

	case input.CmdClearOrQuit:
		if m.query == "" {
			return m, tea.Quit
		}
		m.query = ""
		m.refreshResults()

	case input.CmdClearQuery:
		m.query = ""
		m.refreshResults()

	case input.CmdBackspace:
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.refreshResults()
		}

	case input.CmdInsertChar:
		m.query += string(ch)
		m.refreshResults()

	case input.CmdQuit:
		return m, tea.Quit
	}

	return m, nil
}

// refreshResults re-runs the matcher against the current query and mode
// and resets the selection to the top of the new result list.
func (m *Model) refreshResults() {
	m.results = m.matcher.Match(m.query, m.mode, m.entries)
	m.nav.SetCount(len(m.results))
}

// selectCurrent marks the entry under the cursor for preview and loads
// its preview lines.
func (m *Model) selectCurrent() {
	entry := m.currentEntry()
	if entry == nil {
		return
	}
	m.previewPath = entry.Path
	lines := content.Preview(entry.Path, views.PreviewContentLines)
	m.previewLines = views.HighlightPreview(entry.Name, lines)
}

func (m *Model) currentEntry() *domain.FileEntry {
	i := m.nav.Cursor()
	if i < 0 || i >= len(m.results) {
		return nil
	}
	return m.results[i].Entry
}

func (m *Model) copyPath() tea.Cmd {
	entry := m.currentEntry()
	if entry == nil {
		return nil
	}
	if err := m.copier.Copy(entry.Path); err != nil {
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus("📋 Copied path: "+entry.Path, false)
}

func (m *Model) copyContent() tea.Cmd {
	entry := m.currentEntry()
	if entry == nil {
		return nil
	}
	text, err := content.Full(entry.Path)
	if err != nil {
		return m.setStatus("Could not copy content: "+err.Error(), true)
	}
	if err := m.copier.Copy(text); err != nil {
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus("📋 Copied content from: "+entry.Name, false)
}

// setStatus shows a transient footer message and schedules its expiry.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg{seq: seq}
	})
}

// listRows is the number of result rows in the current viewport.
func (m *Model) listRows() int {
	rows := views.ListRows(m.height, m.previewVisible()) - 2 // scroll indicators
	if rows < 1 {
		rows = 1
	}
	return rows
}

// previewVisible reports whether the inline preview block is on screen.
func (m *Model) previewVisible() bool {
	if !m.showPreview || m.previewPath == "" {
		return false
	}
	for i := range m.results {
		if m.results[i].Entry.Path == m.previewPath {
			return true
		}
	}
	return false
}

func (m *Model) View() string {
	start, end := m.nav.Window(m.listRows())

	return m.renderer.Render(views.Frame{
		Width:          m.width,
		Height:         m.height,
		Query:          m.query,
		Mode:           m.mode,
		FuzzyAvailable: m.matcher.FuzzyAvailable(),
		ClipboardReady: m.copier.Available(),
		Scanning:       m.scanning,
		Spinner:        m.spinner.View(),
		ScanProgress:   m.progress,
		Results:        m.results,
		Cursor:         m.nav.Cursor(),
		Start:          start,
		End:            end,
		PreviewPath:    m.previewPath,
		ShowPreview:    m.showPreview,
		PreviewLines:   m.previewLines,
		Status:         m.status,
		StatusIsErr:    m.statusErr,
	})
}

// Results exposes the current result list for tests and the pager.
func (m *Model) Results() []domain.MatchResult {
	return m.results
}

// Mode returns the active search mode.
func (m *Model) Mode() domain.SearchMode {
	return m.mode
}

// Query returns the current query string.
func (m *Model) Query() string {
	return m.query
}

// Cursor returns the selected result index (-1 when empty).
func (m *Model) Cursor() int {
	return m.nav.Cursor()
}

