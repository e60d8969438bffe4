// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/dayinhistory/internal/history"
	"github.com/pdiddy/dayinhistory/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive page",
	Long: `Browse opens a full-screen page: enter a date (YYYY-MM-DD), fetch the
events for that month and day, then narrow them down by year.

Failure details are never shown on screen; pass --log-file to record them.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	date, _ := cmd.Flags().GetString("date")
	logFile, _ := cmd.Flags().GetString("log-file")

	var logger *log.Logger
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "dayinhistory ")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	lookup := history.NewLookup(history.NewMuffinLabsSource(sourceConfig()), logger)
	model := tui.New(cmd.Context(), lookup, tui.Options{Date: date, Logger: logger})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}

func init() {
	browseCmd.Flags().String("date", "", "prefill the date field (YYYY-MM-DD)")
	browseCmd.Flags().String("log-file", "", "append diagnostics to this file")

	rootCmd.AddCommand(browseCmd)
}
