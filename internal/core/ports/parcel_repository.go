// Package ports defines repository interfaces for the mailroom domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability. The core never depends on a
// concrete store; everything it needs from one is expressed here.
package ports

import (
	"context"

	"mailroom/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Implementations pass the caller's context through to the underlying store
// unaltered, perform no retries, and never cache records across calls.
//
// Errors are classified, never masked: a missing record surfaces as an
// ObjectNotFoundError, a failed conditional update as an InvalidStateError,
// and a store/network failure as a TransportError; the raw cause rides along
// wrapped.
type ParcelRepository interface {
	// Add persists a new parcel and seals the store-assigned id and audit
	// timestamps into the aggregate via MarkStored. The parcel must be valid
	// and not previously stored. No other record is touched.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its store-assigned identifier.
	Get(ctx context.Context, id int64) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves every parcel carrying the given
	// carrier-issued tracking number. Tracking numbers are not unique, so
	// zero, one, or many records may come back; an empty result is not an
	// error.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) ([]*parcel.Parcel, error)

	// Update persists changes to an existing parcel, conditional on the
	// record still being in the expected status at write time. The condition
	// makes the read-then-write of a pickup a single logical operation: when
	// the stored status no longer matches (another caller got there first)
	// the update is not applied and an InvalidStateError naming the current
	// status is returned instead of blindly overwriting.
	Update(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status) error
}
