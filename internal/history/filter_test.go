// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/dayinhistory/pkg/types"
)

func sampleEvents() []types.HistoricalEvent {
	return []types.HistoricalEvent{
		{Year: "1990", Text: "first"},
		{Year: "1890", Text: "second"},
		{Year: "2019", Text: "third"},
	}
}

func TestApplyYearFilter_Blank(t *testing.T) {
	events := sampleEvents()
	for _, f := range []string{"", "  ", "\t"} {
		got := ApplyYearFilter(events, f)
		assert.Equal(t, events, got)
		assert.Len(t, got, len(events))
	}
}

func TestApplyYearFilter_Substring(t *testing.T) {
	events := sampleEvents()
	// "2019" contains "19" too.
	got := ApplyYearFilter(events, "19")
	assert.Equal(t, events, got)

	got = ApplyYearFilter(events, "18")
	assert.Equal(t, []types.HistoricalEvent{events[1]}, got)

	got = ApplyYearFilter(events, "99")
	assert.Equal(t, []types.HistoricalEvent{events[0]}, got)
}

func TestApplyYearFilter_TrimsFilter(t *testing.T) {
	got := ApplyYearFilter(sampleEvents(), " 2019 ")
	assert.Equal(t, []types.HistoricalEvent{{Year: "2019", Text: "third"}}, got)
}

func TestApplyYearFilter_CaseSensitive(t *testing.T) {
	events := []types.HistoricalEvent{{Year: "44 BC"}, {Year: "44 bc"}}
	got := ApplyYearFilter(events, "BC")
	assert.Equal(t, []types.HistoricalEvent{{Year: "44 BC"}}, got)
}

func TestApplyYearFilter_NoMatch(t *testing.T) {
	got := ApplyYearFilter(sampleEvents(), "17")
	assert.Empty(t, got)
}

func TestApplyYearFilter_DoesNotMutateInput(t *testing.T) {
	events := sampleEvents()
	_ = ApplyYearFilter(events, "2019")
	assert.Equal(t, sampleEvents(), events)
}

func TestClearFilter(t *testing.T) {
	events := sampleEvents()
	got, text := ClearFilter(events)
	assert.Equal(t, events, got)
	assert.Equal(t, "", text)
}

func TestReversed(t *testing.T) {
	events := sampleEvents()
	got := reversed(events)
	assert.Equal(t, []string{"2019", "1890", "1990"}, years(got))
	// Input keeps source order.
	assert.Equal(t, []string{"1990", "1890", "2019"}, years(events))
}

func years(events []types.HistoricalEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Year
	}
	return out
}
