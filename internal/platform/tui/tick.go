// Package tui provides the Bubble Tea front end: a vendor menu, a paged
// stock view, plain table rendering for the CLI and an SSH server that
// serves the same browser to remote terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a transient status line stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg expires the status line with the matching sequence number.
type clearStatusMsg struct {
	seq int
}

// clearStatusCmd schedules the expiry of status line seq.
func clearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
