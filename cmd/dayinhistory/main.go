// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dayinhistory CLI: an
// interactive "this day in history" page (browse) and a one-shot lookup
// (fetch) against a public historical-events source.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/dayinhistory/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dayinhistory CLI.
var rootCmd = &cobra.Command{
	Use:   "dayinhistory",
	Short: "Look up historical events for a calendar day",
	Long: `dayinhistory fetches the events that happened on a given month and day
from a public "today in history" source and lets you filter them by year.

Use browse for the interactive page, or fetch to print a single lookup.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dayinhistory.yaml or ~/.config/dayinhistory/dayinhistory.yaml)")
	rootCmd.PersistentFlags().String("base-url", types.DefaultSourceBaseURL, "historical-events endpoint; requests go to {base-url}/{month}/{day}")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (0 = none)")
	rootCmd.PersistentFlags().String("user-agent", types.DefaultUserAgent, "User-Agent header for outbound requests")

	viper.BindPFlag("source.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("http.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dayinhistory")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dayinhistory"))
		}
	}

	viper.SetEnvPrefix("DAYINHISTORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// sourceConfig assembles the source settings from flags, environment and
// config file, in viper's usual precedence.
func sourceConfig() types.SourceConfig {
	return types.SourceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		BaseURL: viper.GetString("source.base_url"),
	}.WithDefaults()
}

// diagLogger returns a logger for failure causes, or one that discards
// them when w is nil.
func diagLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "dayinhistory: ", log.LstdFlags)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
