// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/dayinhistory/internal/history"
)

// fetchDoneMsg carries the outcome of a fetch back to Update.
type fetchDoneMsg struct {
	result history.Result
}

// fetchCmd returns a Bubble Tea command that runs req off the event loop.
func fetchCmd(ctx context.Context, lookup *history.Lookup, req history.Request) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{result: lookup.Run(ctx, req)}
	}
}
