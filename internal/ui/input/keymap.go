// Package input maps decoded key sequences to the abstract commands the
// model dispatches on. The binding table is data, not logic, so tests can
// assert the complete mapping.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Command is one abstract action the dispatcher can execute.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdJumpTop
	CmdJumpBottom
	CmdPageUp
	CmdPageDown
	CmdSelect
	CmdCopyPath
	CmdCopyContent
	CmdToggleFuzzy
	CmdTogglePreview
	CmdShowHelp
	CmdOpenPager
	CmdClearOrQuit
	CmdClearQuery
	CmdBackspace
	CmdQuit
	CmdInsertChar
)

// bindings maps Bubble Tea key strings (decoded control bytes and escape
// sequences) to commands. Any printable rune outside this table is an
// InsertChar edit on the query.
var bindings = map[string]Command{
	"up":        CmdMoveUp,
	"ctrl+k":    CmdMoveUp,
	"down":      CmdMoveDown,
	"ctrl+j":    CmdMoveDown,
	"ctrl+g":    CmdJumpTop,
	"ctrl+e":    CmdJumpBottom,
	"pgup":      CmdPageUp,
	"pgdown":    CmdPageDown,
	"enter":     CmdSelect,
	"ctrl+c":    CmdCopyPath,
	"ctrl+y":    CmdCopyContent,
	"ctrl+f":    CmdToggleFuzzy,
	"ctrl+p":    CmdTogglePreview,
	"ctrl+h":    CmdShowHelp,
	"ctrl+v":    CmdOpenPager,
	"esc":       CmdClearOrQuit,
	"ctrl+u":    CmdClearQuery,
	"backspace": CmdBackspace,
	"ctrl+q":    CmdQuit,
}

// Resolve turns a key message into a command. For InsertChar the rune is
// returned alongside; for everything unbound it returns CmdNone.
func Resolve(msg tea.KeyMsg) (Command, rune) {
	if cmd, ok := bindings[msg.String()]; ok {
		return cmd, 0
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		return CmdInsertChar, msg.Runes[0]
	}
	if msg.Type == tea.KeySpace {
		return CmdInsertChar, ' '
	}
	return CmdNone, 0
}
