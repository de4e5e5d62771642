package ui

import (
	"findt/internal/domain"
)

// ScanProgressMsg reports walk progress while the startup scan runs.
type ScanProgressMsg struct {
	Progress domain.ScanProgress
}

// ScanCompletedMsg delivers the full entry list once the scan finishes.
type ScanCompletedMsg struct {
	Entries []domain.FileEntry
	Err     error
}

// statusExpireMsg clears a transient status message. The sequence number
// keeps an old timer from wiping a newer message.
type statusExpireMsg struct {
	seq int
}

// pagerClosedMsg is sent after an external pager (help or file view)
// returns control of the terminal.
type pagerClosedMsg struct {
	err error
}
