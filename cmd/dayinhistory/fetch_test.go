// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dayinhistory/internal/history"
	"github.com/pdiddy/dayinhistory/pkg/types"
)

const sampleBody = `{"date":"March 15","data":{"Events":[
  {"year":"1493","text":"A"},
  {"year":"2001","text":"B"}
]}}`

func testLookup(t *testing.T, status int, body string) (*history.Lookup, *[]string) {
	t.Helper()
	var paths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)

	src := history.NewMuffinLabsSource(types.SourceConfig{BaseURL: ts.URL + "/date"})
	return history.NewLookup(src, nil), &paths
}

func TestFetchAndPrint_Text(t *testing.T) {
	lookup, paths := testLookup(t, http.StatusOK, sampleBody)

	var out bytes.Buffer
	err := fetchAndPrint(context.Background(), lookup, "2024-03-15", "", "text", &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"/date/03/15"}, *paths)
	text := out.String()
	assert.Contains(t, text, "March 15: 2 events")
	assert.Less(t, strings.Index(text, "2001"), strings.Index(text, "1493"))
}

func TestFetchAndPrint_YearFilter(t *testing.T) {
	lookup, _ := testLookup(t, http.StatusOK, sampleBody)

	var out bytes.Buffer
	err := fetchAndPrint(context.Background(), lookup, "2024-03-15", "14", "text", &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "March 15: 1 of 2 events")
	assert.Contains(t, out.String(), "1493")
	assert.NotContains(t, out.String(), "2001")
}

func TestFetchAndPrint_JSON(t *testing.T) {
	lookup, _ := testLookup(t, http.StatusOK, sampleBody)

	var out bytes.Buffer
	require.NoError(t, fetchAndPrint(context.Background(), lookup, "2024-03-15", "", "json", &out))

	var got types.EventList
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "03", got.Month)
	assert.Equal(t, []types.HistoricalEvent{{Year: "2001", Text: "B"}, {Year: "1493", Text: "A"}}, got.Events)
}

func TestFetchAndPrint_YAML(t *testing.T) {
	lookup, _ := testLookup(t, http.StatusOK, sampleBody)

	var out bytes.Buffer
	require.NoError(t, fetchAndPrint(context.Background(), lookup, "2024-03-15", "20", "yaml", &out))

	var got types.EventList
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "March 15", got.Label)
	assert.Equal(t, []types.HistoricalEvent{{Year: "2001", Text: "B"}}, got.Events)
}

func TestFetchAndPrint_Errors(t *testing.T) {
	lookup, paths := testLookup(t, http.StatusOK, sampleBody)
	var out bytes.Buffer

	err := fetchAndPrint(context.Background(), lookup, "", "", "text", &out)
	assert.EqualError(t, err, history.MsgInvalidDate)
	assert.Empty(t, *paths)

	err = fetchAndPrint(context.Background(), lookup, "2024-03-15", "", "xml", &out)
	assert.ErrorContains(t, err, "unsupported format")
	assert.Empty(t, *paths)

	failing, _ := testLookup(t, http.StatusBadGateway, "bad gateway")
	err = fetchAndPrint(context.Background(), failing, "2024-03-15", "", "text", &out)
	assert.EqualError(t, err, history.MsgFetchFailed)
	assert.Empty(t, out.String())
}
