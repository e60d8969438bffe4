// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pdiddy/dayinhistory/internal/history"
	"github.com/pdiddy/dayinhistory/pkg/types"
)

const (
	minCardWidth   = 28
	maxCardColumns = 4
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	if heading := m.resultsHeading(); heading != "" {
		b.WriteString("\n")
		b.WriteString(heading)
		b.WriteString("\n")
		b.WriteString(m.results.View())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// headerView renders everything above the result cards.
func (m Model) headerView() string {
	rows := []string{
		titleStyle.Render("This Day in History"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render("Select a date: "),
			m.inputBox(m.dateInput.View(), m.focus == focusDate),
			" ",
			m.button("Fetch History", fetchButtonStyle, focusFetch),
		),
	}

	if m.lookup.HasEvents() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render("Filter by year:"),
			" ",
			m.inputBox(m.filterInput.View(), m.focus == focusFilter),
			" ",
			m.button("Search", searchButtonStyle, focusSearch),
			" ",
			m.button("Clear Filter", clearButtonStyle, focusClear),
		))
	}

	switch s := m.lookup.Status().(type) {
	case history.Loading:
		rows = append(rows, loadingStyle.Render(m.spinner.View()+" Loading events..."))
	case history.Failed:
		rows = append(rows, errorBannerStyle.Render(ansi.Truncate(s.Message, max(m.width-4, 1), "…")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// resultsHeading titles the card list, or is empty when there is nothing
// to show.
func (m Model) resultsHeading() string {
	filtered := m.lookup.Filtered()
	if len(filtered) == 0 {
		if m.lookup.HasEvents() {
			return mutedStyle.Render(fmt.Sprintf("No events match %q.", strings.TrimSpace(m.lookup.Filter())))
		}
		return ""
	}

	heading := "Historical Events"
	if label := m.lookup.Events().Label; label != "" {
		heading += " for " + label
	}
	if total := m.lookup.Events().Len(); len(filtered) != total {
		heading += fmt.Sprintf(" (%d of %d)", len(filtered), total)
	}
	return headingStyle.Render(heading + ":")
}

// cardsView lays the filtered events out as a grid of cards.
func (m Model) cardsView() string {
	events := m.lookup.Filtered()
	if len(events) == 0 {
		return ""
	}

	cols := min(max(m.width/minCardWidth, 1), maxCardColumns)
	cardWidth := max(m.width/cols, minCardWidth)

	var rows []string
	for i := 0; i < len(events); i += cols {
		end := min(i+cols, len(events))
		cells := make([]string, 0, cols)
		for _, e := range events[i:end] {
			cells = append(cells, renderCard(e, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one event. width is the total width including border.
func renderCard(e types.HistoricalEvent, width int) string {
	body := cardYearStyle.Render(e.Year) + "\n" + cardTextStyle.Render(e.Text)
	return cardStyle.Width(width - 2).Render(body)
}

func (m Model) inputBox(view string, focused bool) string {
	if focused {
		return focusedInputStyle.Render(view)
	}
	return inputStyle.Render(view)
}

func (m Model) button(label string, style lipgloss.Style, f focus) string {
	if m.focus == f {
		style = style.Inherit(focusedButtonStyle)
	}
	return style.Render(label)
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
