// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for dayinhistory.
// HistoricalEvent and EventList are the normalized form of a source
// response; configuration structs live in config.go.
package types

// HistoricalEvent is one entry of a "this day in history" listing.
// Year is kept as text: sources return values like "1493" as well as
// "44 BC" or "c. 1200".
type HistoricalEvent struct {
	// Year is the year label exactly as the source returned it.
	Year string `json:"year" yaml:"year"`

	// Text is the free-form description of the event.
	Text string `json:"text" yaml:"text"`

	// Links lists reference pages the source attached to the event.
	Links []EventLink `json:"links,omitempty" yaml:"links,omitempty"`
}

// EventLink is a titled reference URL.
type EventLink struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// EventList is the ordered set of events for a single month/day, in
// display order.
type EventList struct {
	// Label is the source's human-readable date (e.g. "March 15"), if any.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Month and Day are the request components the list was fetched for.
	Month string `json:"month" yaml:"month"`
	Day   string `json:"day" yaml:"day"`

	Events []HistoricalEvent `json:"events" yaml:"events"`
}

// Len returns the number of events in the list.
func (l EventList) Len() int { return len(l.Events) }

// IsEmpty reports whether the list has no events.
func (l EventList) IsEmpty() bool { return len(l.Events) == 0 }
