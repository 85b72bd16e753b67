package parcel

import (
	"errors"
	"strings"
	"time"

	"mailroom/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel. This ensures all parcels
	// are properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrParcelAlreadyStored is returned when MarkStored is called on a
	// parcel that already carries a store-assigned id.
	ErrParcelAlreadyStored = errors.New("parcel already has a store-assigned id")
)

// Details carries the optional attributes captured at check-in.
// All fields may be empty.
type Details struct {
	// GuestPhone is the recipient's phone suffix, used for identity
	// confirmation at pickup.
	GuestPhone string

	// Notes is free-form text attached to the parcel.
	Notes string

	// StorageLocation and StorageNumber reference the physical shelf/bin.
	StorageLocation string
	StorageNumber   string
}

// Parcel represents one physical package tracked through its lifecycle.
// It is the aggregate root that manages the parcel from check-in through
// pickup (or an administrative exception).
//
// Parcel maintains these invariants:
//   - Tracking number, carrier, recipient name, room number, and receiving
//     staff member are non-empty after trimming
//   - ReceivedAt is set exactly once at construction
//   - PickedUpAt and PickedUpBy are set if and only if status is PickedUp
//   - ReceivedAt <= PickedUpAt whenever both are present
//   - The store-assigned id is sealed exactly once and never changes
//   - Status transitions follow the Received -> PickedUp / Exception machine
//
// Tracking numbers are carrier-issued and not globally unique: distinct
// carriers may coincidentally reuse them, so the id is the only reliable
// identity once assigned.
type Parcel struct {
	// id is the store-assigned identifier; zero until the parcel is persisted
	id int64

	trackingNumber string
	carrier        string
	guestName      string
	roomNumber     string
	guestPhone     string
	receivedBy     string

	// pickedUpBy is set only by the PickUp transition
	pickedUpBy string

	storageLocation string
	storageNumber   string
	notes           string

	status     Status
	receivedAt time.Time
	pickedUpAt *time.Time

	// createdAt and updatedAt are store-managed audit timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a Parcel at check-in time, in Received status and without
// a store-assigned id. This is the only way to create a new parcel, ensuring
// all intake invariants are maintained.
//
// All string inputs are trimmed; the five identifying fields must be
// non-empty afterward. Validation reports the complete set of violations,
// joined, rather than stopping at the first one. receivedAt must be a
// non-zero timestamp and is immutable afterwards.
func NewParcel(
	trackingNumber, carrier, guestName, roomNumber, receivedBy string,
	receivedAt time.Time,
	details Details,
) (*Parcel, error) {
	p := &Parcel{
		status:          Received,
		guestPhone:      strings.TrimSpace(details.GuestPhone),
		notes:           strings.TrimSpace(details.Notes),
		storageLocation: strings.TrimSpace(details.StorageLocation),
		storageNumber:   strings.TrimSpace(details.StorageNumber),
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setTrackingNumber(trackingNumber),
		p.setCarrier(carrier),
		p.setGuestName(guestName),
		p.setRoomNumber(roomNumber),
		p.setReceivedBy(receivedBy),
		p.setReceivedAt(receivedAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence, including its
// store-assigned id, status, and pickup attributes. It re-validates the
// cross-field invariants so corrupt rows cannot produce an aggregate that
// violates them.
func RestoreParcel(
	id int64,
	trackingNumber, carrier, guestName, roomNumber, receivedBy string,
	receivedAt time.Time,
	details Details,
	status Status,
	pickedUpBy string,
	pickedUpAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(trackingNumber, carrier, guestName, roomNumber, receivedBy, receivedAt, details)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = validatePickupFields(status, pickedUpBy, pickedUpAt, receivedAt); err != nil {
		return nil, err
	}

	p.id = id
	p.status = status
	p.pickedUpBy = strings.TrimSpace(pickedUpBy)
	p.pickedUpAt = pickedUpAt
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// validatePickupFields enforces that pickup attributes are present exactly
// when the status is PickedUp, and that pickup never precedes receipt.
func validatePickupFields(status Status, pickedUpBy string, pickedUpAt *time.Time, receivedAt time.Time) error {
	if status == PickedUp {
		if strings.TrimSpace(pickedUpBy) == "" {
			return errs.NewValueIsRequiredError("picked_up_by")
		}
		if pickedUpAt == nil {
			return errs.NewValueIsRequiredError("pickup_time")
		}
		if pickedUpAt.Before(receivedAt) {
			return errs.NewValueIsInvalidError("pickup_time precedes receive_time")
		}
		return nil
	}

	if strings.TrimSpace(pickedUpBy) != "" {
		return errs.NewValueIsInvalidError("picked_up_by set without PickedUp status")
	}
	if pickedUpAt != nil {
		return errs.NewValueIsInvalidError("pickup_time set without PickedUp status")
	}
	return nil
}

// Validate ensures the Parcel instance was properly constructed through
// NewParcel or RestoreParcel. This prevents bypassing validation by directly
// instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their store-assigned identifiers.
// Unstored parcels (id not yet assigned) are never equal to anything.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id > 0 && p.id == other.id
}

// ID returns the store-assigned identifier, or zero when the parcel has not
// been persisted yet.
func (p *Parcel) ID() int64 {
	return p.id
}

// IsStored reports whether the store has assigned this parcel an id.
func (p *Parcel) IsStored() bool {
	return p.id > 0
}

// TrackingNumber returns the carrier-issued shipment identifier.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Carrier returns the shipping company name.
func (p *Parcel) Carrier() string {
	return p.carrier
}

// GuestName returns the recipient's name.
func (p *Parcel) GuestName() string {
	return p.guestName
}

// RoomNumber returns the delivery destination room.
func (p *Parcel) RoomNumber() string {
	return p.roomNumber
}

// GuestPhone returns the recipient's phone suffix, empty when not captured.
func (p *Parcel) GuestPhone() string {
	return p.guestPhone
}

// ReceivedBy returns the staff member who logged the check-in.
func (p *Parcel) ReceivedBy() string {
	return p.receivedBy
}

// PickedUpBy returns the person who collected the parcel, empty until pickup.
func (p *Parcel) PickedUpBy() string {
	return p.pickedUpBy
}

// StorageLocation returns the shelf reference, empty when not captured.
func (p *Parcel) StorageLocation() string {
	return p.storageLocation
}

// StorageNumber returns the bin reference, empty when not captured.
func (p *Parcel) StorageNumber() string {
	return p.storageNumber
}

// Notes returns the free-form annotation text.
func (p *Parcel) Notes() string {
	return p.notes
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// ReceivedAt returns the check-in timestamp.
func (p *Parcel) ReceivedAt() time.Time {
	return p.receivedAt
}

// PickedUpAt returns the pickup timestamp, nil until pickup.
func (p *Parcel) PickedUpAt() *time.Time {
	return p.pickedUpAt
}

// CreatedAt returns the store-managed creation audit timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the store-managed modification audit timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// MarkStored seals the store-assigned id and audit timestamps into the
// aggregate after a successful insert. The id is immutable: calling
// MarkStored on an already stored parcel fails with ErrParcelAlreadyStored.
func (p *Parcel) MarkStored(id int64, createdAt, updatedAt time.Time) error {
	if p.IsStored() {
		return ErrParcelAlreadyStored
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}

	p.id = id
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return nil
}

// PickUp records the parcel's collection by its recipient.
//
// Business rules enforced:
//   - pickedUpBy must be non-empty after trimming
//   - the parcel must be in Received status; a PickedUp or Exception parcel
//     fails with an InvalidStateError naming the current status
//   - the pickup timestamp may not precede the receive timestamp
//
// After a successful call the status is PickedUp and both pickup attributes
// are set; there is no transition out of this state.
func (p *Parcel) PickUp(pickedUpBy string, at time.Time) error {
	pickedUpBy = strings.TrimSpace(pickedUpBy)
	if pickedUpBy == "" {
		return errs.NewValueIsRequiredError("picked_up_by")
	}
	if at.Before(p.receivedAt) {
		return errs.NewValueIsInvalidError("pickup_time precedes receive_time")
	}

	newStatus, err := p.status.PickUp()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.pickedUpBy = pickedUpBy
	p.pickedUpAt = &at
	return nil
}

// MarkException pulls the parcel out of the normal flow through the
// administrative path. Only a Received parcel can be marked; the state is
// terminal.
func (p *Parcel) MarkException() error {
	newStatus, err := p.status.MarkException()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// AppendNotes adds an annotation to the parcel's notes. Existing notes are
// never overwritten; the new text is appended after a separator. Empty input
// is ignored.
func (p *Parcel) AppendNotes(extra string) {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return
	}

	if p.notes == "" {
		p.notes = extra
		return
	}
	p.notes = p.notes + "; " + extra
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	p.carrier = carrier
	return nil
}

func (p *Parcel) setGuestName(guestName string) error {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return errs.NewValueIsRequiredError("guest_name")
	}
	p.guestName = guestName
	return nil
}

func (p *Parcel) setRoomNumber(roomNumber string) error {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return errs.NewValueIsRequiredError("room_number")
	}
	p.roomNumber = roomNumber
	return nil
}

func (p *Parcel) setReceivedBy(receivedBy string) error {
	receivedBy = strings.TrimSpace(receivedBy)
	if receivedBy == "" {
		return errs.NewValueIsRequiredError("received_by")
	}
	p.receivedBy = receivedBy
	return nil
}

func (p *Parcel) setReceivedAt(receivedAt time.Time) error {
	if receivedAt.IsZero() {
		return errs.NewValueIsRequiredError("receive_time")
	}
	p.receivedAt = receivedAt
	return nil
}
