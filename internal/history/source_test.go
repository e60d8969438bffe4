// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dayinhistory/internal/httputil"
	"github.com/pdiddy/dayinhistory/pkg/types"
)

const sampleMuffinJSON = `{
  "date": "March 15",
  "url": "https://wikipedia.org/wiki/March_15",
  "data": {
    "Events": [
      {"year": "1493", "text": "A", "html": "A", "links": [{"title": "Columbus", "link": "https://wikipedia.org/wiki/Columbus"}]},
      {"year": "2001", "text": "B", "html": "B", "links": []}
    ],
    "Births": [{"year": "1767", "text": "Andrew Jackson"}],
    "Deaths": []
  }
}`

// muffinTestServer records request paths and answers with body.
func muffinTestServer(t *testing.T, statusCode int, body string, paths *[]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if paths != nil {
			*paths = append(*paths, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testSource(ts *httptest.Server) *MuffinLabsSource {
	return &MuffinLabsSource{Client: ts.Client(), BaseURL: ts.URL + "/date", UserAgent: "dayinhistory-test"}
}

func TestMuffinLabsSource_Events(t *testing.T) {
	var paths []string
	ts := muffinTestServer(t, http.StatusOK, sampleMuffinJSON, &paths)

	day, err := testSource(ts).Events(context.Background(), MonthDay{Month: "03", Day: "15"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/date/03/15"}, paths)
	assert.Equal(t, "March 15", day.Label)
	require.Len(t, day.Events, 2)
	// Source order is preserved here; reversal happens in the lookup.
	assert.Equal(t, "1493", day.Events[0].Year)
	assert.Equal(t, "A", day.Events[0].Text)
	assert.Equal(t, []types.EventLink{{Title: "Columbus", URL: "https://wikipedia.org/wiki/Columbus"}}, day.Events[0].Links)
	assert.Equal(t, "2001", day.Events[1].Year)
	assert.Empty(t, day.Events[1].Links)
}

func TestMuffinLabsSource_YearNotInRequest(t *testing.T) {
	var paths []string
	ts := muffinTestServer(t, http.StatusOK, sampleMuffinJSON, &paths)

	md, err := ParseDate("1987-07-04")
	require.NoError(t, err)
	_, err = testSource(ts).Events(context.Background(), md)
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.Equal(t, "/date/07/04", paths[0])
	assert.NotContains(t, paths[0], "1987")
}

func TestMuffinLabsSource_NonSuccess(t *testing.T) {
	ts := muffinTestServer(t, http.StatusServiceUnavailable, "down", nil)

	_, err := testSource(ts).Events(context.Background(), MonthDay{Month: "03", Day: "15"})
	require.Error(t, err)

	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
}

func TestMuffinLabsSource_MissingEvents(t *testing.T) {
	ts := muffinTestServer(t, http.StatusOK, `{"date":"March 15","data":{}}`, nil)

	_, err := testSource(ts).Events(context.Background(), MonthDay{Month: "03", Day: "15"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Events collection")
}

func TestMuffinLabsSource_EmptyEvents(t *testing.T) {
	ts := muffinTestServer(t, http.StatusOK, `{"date":"March 15","data":{"Events":[]}}`, nil)

	day, err := testSource(ts).Events(context.Background(), MonthDay{Month: "03", Day: "15"})
	require.NoError(t, err)
	assert.Empty(t, day.Events)
}

func TestNewMuffinLabsSource_Defaults(t *testing.T) {
	s := NewMuffinLabsSource(types.SourceConfig{})
	assert.Equal(t, types.DefaultSourceBaseURL, s.BaseURL)
	assert.Equal(t, types.DefaultUserAgent, s.UserAgent)
	assert.Equal(t, time.Duration(0), s.Client.Timeout)
	assert.Equal(t, "muffinlabs", s.Name())
}

func TestRequestURL(t *testing.T) {
	tests := []struct {
		base string
		md   MonthDay
		want string
	}{
		{"https://history.muffinlabs.com/date", MonthDay{"03", "15"}, "https://history.muffinlabs.com/date/03/15"},
		{"https://history.muffinlabs.com/date/", MonthDay{"3", "5"}, "https://history.muffinlabs.com/date/3/5"},
		{"http://localhost:8080", MonthDay{"a/b", "1"}, "http://localhost:8080/a%2Fb/1"},
	}
	for _, tt := range tests {
		got := requestURL(tt.base, tt.md)
		if got != tt.want {
			t.Errorf("requestURL(%q, %+v) = %q, want %q", tt.base, tt.md, got, tt.want)
		}
		if strings.Count(got, "//") != 1 {
			t.Errorf("requestURL(%q, %+v) = %q has a doubled slash", tt.base, tt.md, got)
		}
	}
}
