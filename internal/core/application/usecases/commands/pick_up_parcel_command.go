package commands

import (
	"errors"
	"strings"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var (
	ErrPickUpParcelCommandIsNotConstructed = errors.New(
		"PickUpParcelCommand must be created via NewPickUpParcelCommand constructor",
	)

	// ErrParcelIdentifierIsRequired is returned when neither a parcel id nor
	// a tracking number is supplied.
	ErrParcelIdentifierIsRequired = errors.New("either parcel id or tracking number is required")
)

// PickUpParcelCommand represents a request to record a parcel's collection.
// The parcel is identified either by its store-assigned id or by its
// tracking number; the id wins when both are present. Because tracking
// numbers are not unique, a tracking number that matches several records is
// rejected by the handler rather than resolved by guessing.
//
// Example:
//
//	cmd, err := NewPickUpParcelCommand(0, "SF123", "张三", "")
//	if err != nil {
//	    return fmt.Errorf("invalid pickup data: %w", err)
//	}
//
//	handler := NewPickUpParcelCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, commands.ErrTrackingNumberAmbiguous) {
//	    // ask the operator to pick the exact record and retry with its id
//	}
type PickUpParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID       int64
	trackingNumber string
	pickedUpBy     string
	notes          string

	guard guard.ConstructorGuard
}

// NewPickUpParcelCommand creates a command to record a pickup.
// parcelID may be zero when a tracking number is given, and the tracking
// number may be empty when an id is given; at least one is required.
// pickedUpBy must be non-empty after trimming. notes are optional and are
// appended to the parcel's annotations.
func NewPickUpParcelCommand(parcelID int64, trackingNumber, pickedUpBy, notes string) (PickUpParcelCommand, error) {
	command := PickUpParcelCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIdentifier(parcelID, trackingNumber),
		command.setPickedUpBy(pickedUpBy),
	); err != nil {
		return PickUpParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPickUpParcelCommandIsNotConstructed if validation fails.
func (c PickUpParcelCommand) Validate() error {
	return c.guard.Validate(ErrPickUpParcelCommandIsNotConstructed)
}

// ParcelID returns the store-assigned identifier, zero when the parcel is
// identified by tracking number instead.
func (c PickUpParcelCommand) ParcelID() int64 {
	return c.parcelID
}

// TrackingNumber returns the carrier-issued identifier, empty when the
// parcel is identified by id instead.
func (c PickUpParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

// PickedUpBy returns the name of the person collecting the parcel.
func (c PickUpParcelCommand) PickedUpBy() string {
	return c.pickedUpBy
}

// Notes returns the optional annotation to append, empty when absent.
func (c PickUpParcelCommand) Notes() string {
	return c.notes
}

func (c *PickUpParcelCommand) setIdentifier(parcelID int64, trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)

	if parcelID < 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if parcelID == 0 && trackingNumber == "" {
		return ErrParcelIdentifierIsRequired
	}

	c.parcelID = parcelID
	c.trackingNumber = trackingNumber
	return nil
}

func (c *PickUpParcelCommand) setPickedUpBy(pickedUpBy string) error {
	pickedUpBy = strings.TrimSpace(pickedUpBy)
	if pickedUpBy == "" {
		return errs.NewValueIsRequiredError("picked_up_by")
	}

	c.pickedUpBy = pickedUpBy
	return nil
}
