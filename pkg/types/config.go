// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultSourceBaseURL is the muffinlabs "this day in history" endpoint.
// Requests are made to {base}/{month}/{day}.
const DefaultSourceBaseURL = "https://history.muffinlabs.com/date"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "dayinhistory/0.1"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SourceConfig selects and configures the historical-events source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the endpoint prefix; month and day are appended as path
	// segments.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c SourceConfig) WithDefaults() SourceConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultSourceBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}
