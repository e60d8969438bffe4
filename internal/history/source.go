// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/dayinhistory/internal/httputil"
	"github.com/pdiddy/dayinhistory/pkg/types"
)

// Day is a source response for one month/day, in source order.
type Day struct {
	Label  string
	Events []types.HistoricalEvent
}

// Source fetches the raw event listing for a month/day.
type Source interface {
	Name() string
	Events(ctx context.Context, md MonthDay) (Day, error)
}

// MuffinLabsSource queries the muffinlabs "today in history" API.
type MuffinLabsSource struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
}

// NewMuffinLabsSource builds a source from cfg, applying defaults. A zero
// Timeout leaves the request without a deadline.
func NewMuffinLabsSource(cfg types.SourceConfig) *MuffinLabsSource {
	cfg = cfg.WithDefaults()
	return &MuffinLabsSource{
		Client:    &http.Client{Timeout: cfg.Timeout},
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
	}
}

// Name returns the source identifier.
func (s *MuffinLabsSource) Name() string { return "muffinlabs" }

// Events requests {BaseURL}/{month}/{day} and returns the Events
// collection in the order the API delivered it.
func (s *MuffinLabsSource) Events(ctx context.Context, md MonthDay) (Day, error) {
	reqURL := requestURL(s.BaseURL, md)

	var mr muffinResponse
	if err := httputil.GetJSON(ctx, s.Client, reqURL, s.UserAgent, &mr); err != nil {
		return Day{}, fmt.Errorf("muffinlabs: %w", err)
	}
	if mr.Data.Events == nil {
		return Day{}, fmt.Errorf("muffinlabs: response for %s/%s has no Events collection", md.Month, md.Day)
	}

	day := Day{Label: mr.Date, Events: make([]types.HistoricalEvent, 0, len(mr.Data.Events))}
	for _, e := range mr.Data.Events {
		ev := types.HistoricalEvent{Year: e.Year, Text: e.Text}
		for _, l := range e.Links {
			ev.Links = append(ev.Links, types.EventLink{Title: l.Title, URL: l.Link})
		}
		day.Events = append(day.Events, ev)
	}
	return day, nil
}

// requestURL joins base with the escaped month and day segments.
func requestURL(base string, md MonthDay) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(md.Month) + "/" + url.PathEscape(md.Day)
}

// muffinlabs API JSON structures.
type muffinResponse struct {
	Date string     `json:"date"`
	URL  string     `json:"url"`
	Data muffinData `json:"data"`
}

type muffinData struct {
	Events []muffinEvent `json:"Events"`
}

type muffinEvent struct {
	Year  string       `json:"year"`
	Text  string       `json:"text"`
	HTML  string       `json:"html"`
	Links []muffinLink `json:"links"`
}

type muffinLink struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
