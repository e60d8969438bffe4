// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"slices"
	"strings"

	"github.com/pdiddy/dayinhistory/pkg/types"
)

// ApplyYearFilter returns the events whose Year contains the trimmed
// filter text. Matching is a case-sensitive substring test on the textual
// year; relative order is preserved. A blank filter returns events as-is.
func ApplyYearFilter(events []types.HistoricalEvent, filter string) []types.HistoricalEvent {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return events
	}

	matched := make([]types.HistoricalEvent, 0, len(events))
	for _, e := range events {
		if strings.Contains(e.Year, filter) {
			matched = append(matched, e)
		}
	}
	return matched
}

// ClearFilter returns the unfiltered events together with the reset (empty)
// filter text.
func ClearFilter(events []types.HistoricalEvent) ([]types.HistoricalEvent, string) {
	return events, ""
}

// reversed returns a copy of events in the opposite order.
func reversed(events []types.HistoricalEvent) []types.HistoricalEvent {
	out := slices.Clone(events)
	slices.Reverse(out)
	return out
}
