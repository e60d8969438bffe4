// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"

	"github.com/pdiddy/dayinhistory/pkg/types"
)

// Status is the lookup's load state. Exactly one of Idle, Loading, Loaded
// or Failed is current at any time.
type Status interface {
	fmt.Stringer
	isStatus()
}

// Idle is the initial state: nothing requested yet.
type Idle struct{}

// Loading means request Token is in flight.
type Loading struct {
	Token uint64
	Date  MonthDay
}

// Loaded holds the list produced by the most recent successful fetch.
type Loaded struct {
	Events types.EventList
}

// Failed holds the message to show for the most recent failure. Err is the
// diagnostic cause and is never displayed.
type Failed struct {
	Message string
	Err     error
}

func (Idle) isStatus()    {}
func (Loading) isStatus() {}
func (Loaded) isStatus()  {}
func (Failed) isStatus()  {}

func (Idle) String() string      { return "idle" }
func (s Loading) String() string { return fmt.Sprintf("loading %s/%s (#%d)", s.Date.Month, s.Date.Day, s.Token) }
func (s Loaded) String() string  { return fmt.Sprintf("loaded %d events", s.Events.Len()) }
func (s Failed) String() string  { return "failed: " + s.Message }

// IsLoading reports whether s is Loading.
func IsLoading(s Status) bool {
	_, ok := s.(Loading)
	return ok
}

// ErrorMessage returns the failure message for a Failed status, or "".
func ErrorMessage(s Status) string {
	if f, ok := s.(Failed); ok {
		return f.Message
	}
	return ""
}
