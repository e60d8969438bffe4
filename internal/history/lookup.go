// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history implements the "this day in history" lookup: turning a
// selected date into a source request, normalizing the response into an
// EventList, and maintaining the year-filtered view of it.
package history

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/pdiddy/dayinhistory/pkg/types"
)

// Request is one issued fetch. Token orders requests; only the result of
// the latest token is ever applied.
type Request struct {
	Token    uint64
	Selected string
	Date     MonthDay
}

// Result is the outcome of running a Request.
type Result struct {
	Token  uint64
	Events types.EventList
	Err    error
}

// Lookup owns the lookup state: status, the current EventList, the filter
// text and the filtered view. A Lookup is not safe for concurrent use,
// except for Run which only reads fields fixed at construction.
type Lookup struct {
	source Source
	logger *log.Logger

	status   Status
	token    uint64
	events   types.EventList
	filtered []types.HistoricalEvent
	filter   string
}

// NewLookup returns an Idle lookup reading from source. Diagnostics
// (failure causes, dropped responses) go to logger; nil discards them.
func NewLookup(source Source, logger *log.Logger) *Lookup {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Lookup{source: source, logger: logger, status: Idle{}}
}

// Begin validates selected and, if usable, moves to Loading under a new
// token. Any earlier request is superseded either way, so its result will
// be discarded by Complete. On a ValidationError the status becomes Failed
// and no request should be made.
func (l *Lookup) Begin(selected string) (Request, error) {
	l.token++
	md, err := ParseDate(selected)
	if err != nil {
		l.status = Failed{Message: UserMessage(err), Err: err}
		return Request{}, err
	}
	l.status = Loading{Token: l.token, Date: md}
	return Request{Token: l.token, Selected: selected, Date: md}, nil
}

// Run performs req against the source. It does not touch lookup state and
// may be called from another goroutine. Source failures are returned as
// *FetchError wrapping the cause.
func (l *Lookup) Run(ctx context.Context, req Request) Result {
	day, err := l.source.Events(ctx, req.Date)
	if err != nil {
		return Result{Token: req.Token, Err: &FetchError{Cause: err}}
	}
	return Result{
		Token: req.Token,
		Events: types.EventList{
			Label:  day.Label,
			Month:  req.Date.Month,
			Day:    req.Date.Day,
			Events: reversed(day.Events),
		},
	}
}

// Complete applies res if it belongs to the latest request and reports
// whether it did. Stale results are dropped. On success the EventList and
// filtered view are replaced and the filter is cleared; on failure they
// are left untouched and the status becomes Failed. Either way the lookup
// leaves Loading.
func (l *Lookup) Complete(res Result) bool {
	if res.Token != l.token {
		l.logger.Printf("history: dropping stale response #%d (latest #%d)", res.Token, l.token)
		return false
	}

	if res.Err != nil {
		l.logger.Printf("history: fetch #%d failed: %v", res.Token, causeOf(res.Err))
		l.status = Failed{Message: UserMessage(res.Err), Err: res.Err}
		return true
	}

	l.events = res.Events
	l.filtered = res.Events.Events
	l.filter = ""
	l.status = Loaded{Events: res.Events}
	return true
}

// FetchHistory runs a complete fetch for selected synchronously.
func (l *Lookup) FetchHistory(ctx context.Context, selected string) (types.EventList, error) {
	req, err := l.Begin(selected)
	if err != nil {
		return types.EventList{}, err
	}
	res := l.Run(ctx, req)
	l.Complete(res)
	if res.Err != nil {
		return types.EventList{}, res.Err
	}
	return res.Events, nil
}

// SetFilter records the filter text without recomputing the view, the way
// typing into the filter box does.
func (l *Lookup) SetFilter(text string) { l.filter = text }

// ApplyFilter recomputes the filtered view from the current filter text.
func (l *Lookup) ApplyFilter() []types.HistoricalEvent {
	l.filtered = ApplyYearFilter(l.events.Events, l.filter)
	return l.filtered
}

// ApplyYearFilter sets the filter text and recomputes the filtered view.
func (l *Lookup) ApplyYearFilter(text string) []types.HistoricalEvent {
	l.filter = text
	return l.ApplyFilter()
}

// ClearFilter resets the filter text and restores the full EventList.
func (l *Lookup) ClearFilter() []types.HistoricalEvent {
	l.filtered, l.filter = ClearFilter(l.events.Events)
	return l.filtered
}

// Status returns the current status.
func (l *Lookup) Status() Status { return l.status }

// Events returns the EventList of the last successful fetch.
func (l *Lookup) Events() types.EventList { return l.events }

// Filtered returns the current filtered view.
func (l *Lookup) Filtered() []types.HistoricalEvent { return l.filtered }

// Filter returns the current filter text.
func (l *Lookup) Filter() string { return l.filter }

// HasEvents reports whether a successful fetch has produced events.
func (l *Lookup) HasEvents() bool { return !l.events.IsEmpty() }

// Token returns the token of the latest request.
func (l *Lookup) Token() uint64 { return l.token }

func causeOf(err error) error {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Cause != nil {
		return fe.Cause
	}
	return err
}
