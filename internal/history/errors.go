// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import "errors"

// User-facing messages. These are the only error texts ever shown.
const (
	MsgInvalidDate = "Please select a valid date."
	MsgFetchFailed = "Something went wrong. Try again."
)

// ValidationError reports a missing or unusable user input. No request is
// made when it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FetchError reports that the source could not be reached or returned an
// unusable response. Error returns the fixed user message; the underlying
// cause is available through Unwrap for diagnostics.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string { return MsgFetchFailed }

func (e *FetchError) Unwrap() error { return e.Cause }

// UserMessage returns the text to display for err. Unknown errors collapse
// to the generic fetch message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return MsgFetchFailed
}
