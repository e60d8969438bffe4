// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dayinhistory/internal/history"
	"github.com/pdiddy/dayinhistory/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [YYYY-MM-DD]",
	Short: "Print the events for a date",
	Long: `Fetch looks up the events for the month and day of the given date and
prints them, most recent first. The year of the date is not used.

Use --year to keep only events whose year contains the given text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	date, _ := cmd.Flags().GetString("date")
	if date == "" && len(args) > 0 {
		date = args[0]
	}
	year, _ := cmd.Flags().GetString("year")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var diag io.Writer
	if verbose {
		diag = os.Stderr
	}
	lookup := history.NewLookup(history.NewMuffinLabsSource(sourceConfig()), diagLogger(diag))
	return fetchAndPrint(cmd.Context(), lookup, date, year, format, cmd.OutOrStdout())
}

// fetchAndPrint fetches date, applies the year filter and writes the
// result to w in the requested format.
func fetchAndPrint(ctx context.Context, lookup *history.Lookup, date, year, format string, w io.Writer) error {
	switch format {
	case "text", "json", "yaml", "":
	default:
		return fmt.Errorf("unsupported format %q: use text, json or yaml", format)
	}

	if _, err := lookup.FetchHistory(ctx, date); err != nil {
		return err
	}

	list := lookup.Events()
	list.Events = lookup.ApplyYearFilter(year)
	return formatEvents(w, list, lookup.Events().Len(), format)
}

func formatEvents(w io.Writer, list types.EventList, total int, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	label := list.Label
	if label == "" {
		label = list.Month + "/" + list.Day
	}
	if list.Len() == total {
		fmt.Fprintf(w, "%s: %d events\n", label, total)
	} else {
		fmt.Fprintf(w, "%s: %d of %d events\n", label, list.Len(), total)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, e := range list.Events {
		fmt.Fprintf(w, "%-6s  %s\n", e.Year, e.Text)
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("date", "", "date to look up (YYYY-MM-DD)")
	fetchCmd.Flags().String("year", "", "keep only events whose year contains this text")
	fetchCmd.Flags().String("format", "text", "output format: text, json or yaml")
	fetchCmd.Flags().BoolP("verbose", "v", false, "log failure details to stderr")

	rootCmd.AddCommand(fetchCmd)
}
