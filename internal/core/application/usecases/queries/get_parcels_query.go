// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var (
	ErrGetParcelsQueryIsNotConstructed = errors.New(
		"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
	)
)

// GetParcelsQuery retrieves parcel records, optionally narrowed by equality
// filters. All given filters must match at once; a query with no filters
// returns the full list.
//
// Example:
//
//	query, err := NewGetParcelsQuery(GetParcelsFilter{Status: "Received", RoomNumber: "302"})
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewGetParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve parcels: %w", err)
//	}
//	fmt.Printf("%d parcels awaiting pickup in room 302\n", len(parcels))
type GetParcelsQuery struct {
	status         parcel.Status
	hasStatus      bool
	roomNumber     string
	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

// GetParcelsFilter holds the optional equality predicates. Empty fields do
// not constrain the result. Status, when present, must name a known status.
type GetParcelsFilter struct {
	Status         string
	RoomNumber     string
	Carrier        string
	TrackingNumber string
}

// NewGetParcelsQuery creates a query to retrieve parcels matching the filter.
// An unrecognized status name is rejected rather than silently matching
// nothing.
func NewGetParcelsQuery(filter GetParcelsFilter) (GetParcelsQuery, error) {
	query := GetParcelsQuery{
		roomNumber:     strings.TrimSpace(filter.RoomNumber),
		carrier:        strings.TrimSpace(filter.Carrier),
		trackingNumber: strings.TrimSpace(filter.TrackingNumber),
		guard:          guard.NewConstructorGuard(),
	}

	if s := strings.TrimSpace(filter.Status); s != "" {
		status, err := parcel.StatusFromString(s)
		if err != nil {
			return GetParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		query.status = status
		query.hasStatus = true
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelsQueryIsNotConstructed if validation fails.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Status returns the status filter; the second result is false when the
// query does not constrain status.
func (q GetParcelsQuery) Status() (parcel.Status, bool) {
	return q.status, q.hasStatus
}

// RoomNumber returns the room filter, empty when unconstrained.
func (q GetParcelsQuery) RoomNumber() string {
	return q.roomNumber
}

// Carrier returns the carrier filter, empty when unconstrained.
func (q GetParcelsQuery) Carrier() string {
	return q.carrier
}

// TrackingNumber returns the tracking number filter, empty when
// unconstrained.
func (q GetParcelsQuery) TrackingNumber() string {
	return q.trackingNumber
}

// GetParcelsQueryResponse represents one parcel row in the read model.
// Pickup attributes are nil for parcels still awaiting collection.
type GetParcelsQueryResponse struct {
	ID              int64
	TrackingNumber  string
	Carrier         string
	GuestName       string
	RoomNumber      string
	GuestPhone      string
	Status          string
	ReceivedBy      string
	ReceivedAt      time.Time
	PickedUpBy      string
	PickedUpAt      *time.Time
	StorageLocation string
	StorageNumber   string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
