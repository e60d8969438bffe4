// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive "this day in history" page: a date
// field with a Fetch action, a year filter with Search and Clear actions,
// a loading indicator, an error banner and one card per event.
package tui

import (
	"context"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/dayinhistory/internal/history"
)

// focus identifies the control receiving keyboard input.
type focus int

const (
	focusDate focus = iota
	focusFetch
	focusFilter
	focusSearch
	focusClear
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a Model.
type Options struct {
	// Date prefills the date field (YYYY-MM-DD).
	Date string
	// Logger receives diagnostics; nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for the page.
type Model struct {
	ctx    context.Context
	lookup *history.Lookup
	logger *log.Logger

	// cancel aborts the in-flight request, if any.
	cancel context.CancelFunc

	dateInput   textinput.Model
	filterInput textinput.Model
	spinner     spinner.Model
	results     viewport.Model
	help        help.Model
	keys        keyMap
	focus       focus

	width  int
	height int
}

// New returns a page driving lookup. ctx bounds every request the page
// makes.
func New(ctx context.Context, lookup *history.Lookup, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	di := textinput.New()
	di.Prompt = ""
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 10
	di.Width = 12
	di.SetValue(opts.Date)
	di.Focus()

	fi := textinput.New()
	fi.Prompt = ""
	fi.Placeholder = "Enter year like 1990"
	fi.CharLimit = 16
	fi.Width = 22

	m := Model{
		ctx:         ctx,
		lookup:      lookup,
		logger:      logger,
		dateInput:   di,
		filterInput: fi,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle)),
		results:     viewport.New(defaultWidth, defaultHeight),
		help:        help.New(),
		keys:        newKeyMap(),
		focus:       focusDate,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case fetchDoneMsg:
		return m.handleFetchDone(msg)

	case spinner.TickMsg:
		if !history.IsLoading(m.lookup.Status()) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		cmd := m.setFocus(m.nextFocus(1))
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.setFocus(m.nextFocus(-1))
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		if m.lookup.HasEvents() {
			m.clearFilter()
		}
		return m, nil
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	return m.updateFocusedInput(msg)
}

// submit triggers the action belonging to the focused control.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusDate, focusFetch:
		cmd := m.startFetch()
		return m, cmd
	case focusFilter, focusSearch:
		m.lookup.ApplyFilter()
		m.results.GotoTop()
		m.layout()
	case focusClear:
		m.clearFilter()
	}
	return m, nil
}

// startFetch supersedes any in-flight request and issues a new one for
// the date field's value.
func (m *Model) startFetch() tea.Cmd {
	if m.cancel != nil {
		m.logger.Printf("tui: cancelling request #%d", m.lookup.Token())
		m.cancel()
		m.cancel = nil
	}

	req, err := m.lookup.Begin(m.dateInput.Value())
	if err != nil {
		m.layout()
		return nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.layout()
	return tea.Batch(fetchCmd(ctx, m.lookup, req), m.spinner.Tick)
}

func (m Model) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	if !m.lookup.Complete(msg.result) {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	var cmd tea.Cmd
	if msg.result.Err == nil {
		m.filterInput.SetValue("")
		m.results.GotoTop()
	}
	if !m.lookup.HasEvents() && m.focus >= focusFilter {
		cmd = m.setFocus(focusDate)
	}
	m.layout()
	return m, cmd
}

func (m *Model) clearFilter() {
	m.filterInput.SetValue("")
	m.lookup.ClearFilter()
	m.results.GotoTop()
	m.layout()
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case focusFilter:
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.lookup.SetFilter(m.filterInput.Value())
	}
	return m, cmd
}

// focusOrder lists the controls that can take focus. The filter controls
// only exist once events have been loaded.
func (m Model) focusOrder() []focus {
	if m.lookup.HasEvents() {
		return []focus{focusDate, focusFetch, focusFilter, focusSearch, focusClear}
	}
	return []focus{focusDate, focusFetch}
}

func (m Model) nextFocus(delta int) focus {
	order := m.focusOrder()
	i := 0
	for j, f := range order {
		if f == m.focus {
			i = j
			break
		}
	}
	n := len(order)
	return order[((i+delta)%n+n)%n]
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.dateInput.Blur()
	m.filterInput.Blur()
	switch f {
	case focusDate:
		return m.dateInput.Focus()
	case focusFilter:
		return m.filterInput.Focus()
	}
	return nil
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// layout sizes the results viewport to the space left under the header
// and refreshes its content.
func (m *Model) layout() {
	h := m.height - lineCount(m.headerView()) - lineCount(m.resultsHeading()) - lineCount(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	m.results.Width = m.width
	m.results.Height = h
	m.results.SetContent(m.cardsView())
}
