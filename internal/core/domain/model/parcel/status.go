package parcel

import (
	"strings"

	"mailroom/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the mailroom workflow.
//
// State transitions:
//
//	Received ──┬──> PickedUp
//	           │
//	           └──> Exception
//
// Both PickedUp and Exception are terminal: no transition leaves them,
// and no transition removes a record from the store.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status, entered when a parcel is checked in.
	// Parcels in this status are awaiting pickup by their recipient.
	Received

	// PickedUp indicates the parcel has been collected by its recipient.
	// This is a terminal state.
	PickedUp

	// Exception marks a parcel pulled out of the normal flow through an
	// administrative path (damaged, misdelivered, unclaimed). Terminal;
	// no follow-up transitions are defined.
	Exception
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Received:  "Received",
		PickedUp:  "PickedUp",
		Exception: "Exception",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "Received",
		PickedUp:  "PickedUp",
		Exception: "Exception",
	}
}

// StatusFromString parses a status name as it appears on the wire.
// Matching is case-insensitive and accepts both "PickedUp" and "picked_up"
// spellings. Returns a ValueIsInvalidError for anything else.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for status, name := range getValidStatusStrings() {
		if strings.ToLower(name) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, PickedUp, Exception.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, which render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are defined from s.
func (s Status) IsTerminal() bool {
	return s == PickedUp || s == Exception
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Received -> PickedUp
//
// Any other source status fails with an InvalidStateError naming the
// current status; in particular a second pickup attempt on a PickedUp
// parcel fails rather than silently succeeding.
func (s Status) PickUp() (Status, error) {
	if s != Received {
		return Unknown, errs.NewInvalidStateError("parcel", s.String())
	}

	return PickedUp, nil
}

// MarkException transitions the status to Exception.
//
// Valid transitions:
//   - Received -> Exception
//
// Exception is only reachable through an administrative path; the regular
// check-in/pickup operations never produce it.
func (s Status) MarkException() (Status, error) {
	if s != Received {
		return Unknown, errs.NewInvalidStateError("parcel", s.String())
	}

	return Exception, nil
}
