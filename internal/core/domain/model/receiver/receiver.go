// Package receiver models the known-receivers directory: the list of staff
// names offered as autocomplete suggestions on the check-in form. Each entry
// is an explicit entity with its own store so the directory can be tested
// and discarded independently of the parcel lifecycle.
package receiver

import (
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

// ErrReceiverIsNotConstructed is returned when a Receiver instance was not
// created through NewReceiver or RestoreReceiver.
var ErrReceiverIsNotConstructed = errs.NewValueIsRequiredError("Receiver must be created via NewReceiver or RestoreReceiver")

// Receiver is one entry in the known-receivers directory. Names are unique;
// repeat sightings increment the usage counter instead of adding rows, so
// suggestions can be ordered by how often a name is actually used.
type Receiver struct {
	id         kernel.UUID
	name       string
	timesSeen  int
	lastSeenAt time.Time

	isConstructed bool
}

// NewReceiver creates a directory entry for a name seen for the first time.
// The name must be non-empty after trimming.
func NewReceiver(name string, seenAt time.Time) (*Receiver, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if seenAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("seen_at")
	}

	return &Receiver{
		id:            kernel.NewUUID(),
		name:          name,
		timesSeen:     1,
		lastSeenAt:    seenAt,
		isConstructed: true,
	}, nil
}

// RestoreReceiver reconstructs a directory entry from persistence.
func RestoreReceiver(id kernel.UUID, name string, timesSeen int, lastSeenAt time.Time) (*Receiver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if timesSeen < 1 {
		return nil, errs.NewValueIsInvalidError("times_seen")
	}

	return &Receiver{
		id:            id,
		name:          name,
		timesSeen:     timesSeen,
		lastSeenAt:    lastSeenAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Receiver was created through a constructor.
func (r *Receiver) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiverIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (r *Receiver) ID() kernel.UUID {
	return r.id
}

// Name returns the staff member's name.
func (r *Receiver) Name() string {
	return r.name
}

// TimesSeen returns how many check-ins used this name.
func (r *Receiver) TimesSeen() int {
	return r.timesSeen
}

// LastSeenAt returns when the name was last used.
func (r *Receiver) LastSeenAt() time.Time {
	return r.lastSeenAt
}

// Seen records another use of the name. The last-seen timestamp only moves
// forward.
func (r *Receiver) Seen(at time.Time) {
	r.timesSeen++
	if at.After(r.lastSeenAt) {
		r.lastSeenAt = at
	}
}

// IsEqual compares two entries by their unique identifiers.
func (r *Receiver) IsEqual(other *Receiver) bool {
	return other != nil && r.id.IsEqual(other.id)
}
