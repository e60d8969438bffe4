// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import "strings"

// MonthDay is the part of a selected date that keys a request. The
// components are kept exactly as entered; "03" stays "03".
type MonthDay struct {
	Month string
	Day   string
}

// ParseDate decomposes a YYYY-MM-DD selection into its month and day. The
// year component must be present but is otherwise ignored.
func ParseDate(selected string) (MonthDay, error) {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return MonthDay{}, &ValidationError{Message: MsgInvalidDate}
	}

	parts := strings.Split(selected, "-")
	if len(parts) != 3 {
		return MonthDay{}, &ValidationError{Message: MsgInvalidDate}
	}
	for _, p := range parts {
		if p == "" {
			return MonthDay{}, &ValidationError{Message: MsgInvalidDate}
		}
	}
	return MonthDay{Month: parts[1], Day: parts[2]}, nil
}
