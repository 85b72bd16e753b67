package commands

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var (
	ErrCheckInParcelCommandIsNotConstructed = errors.New(
		"CheckInParcelCommand must be created via NewCheckInParcelCommand constructor",
	)
)

// CheckInParcelCommand represents a request to record a parcel's arrival at
// the mailroom. Encapsulates the identifying fields captured at the front
// desk plus the optional storage and contact details.
//
// Validation reports the complete set of required-field violations at once,
// joined, so the caller can fix the whole form in one round trip.
//
// Example:
//
//	cmd, err := NewCheckInParcelCommand("SF123", "顺丰", "张三", "302", "Admin", parcel.Details{})
//	if err != nil {
//	    return fmt.Errorf("invalid check-in data: %w", err)
//	}
//
//	handler := NewCheckInParcelCommandHandler(uowFactory)
//	stored, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to check in parcel: %w", err)
//	}
//	fmt.Printf("Parcel %d awaiting pickup", stored.ID())
type CheckInParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	carrier        string
	guestName      string
	roomNumber     string
	receivedBy     string
	details        parcel.Details

	guard guard.ConstructorGuard
}

// NewCheckInParcelCommand creates a command to check in a parcel.
// The five identifying fields are required and must be non-empty after
// trimming; details are optional. All violations are reported together.
func NewCheckInParcelCommand(
	trackingNumber, carrier, guestName, roomNumber, receivedBy string,
	details parcel.Details,
) (CheckInParcelCommand, error) {
	command := CheckInParcelCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setCarrier(carrier),
		command.setGuestName(guestName),
		command.setRoomNumber(roomNumber),
		command.setReceivedBy(receivedBy),
	); err != nil {
		return CheckInParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckInParcelCommandIsNotConstructed if validation fails.
func (c CheckInParcelCommand) Validate() error {
	return c.guard.Validate(ErrCheckInParcelCommandIsNotConstructed)
}

// TrackingNumber returns the carrier-issued shipment identifier.
func (c CheckInParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Carrier returns the shipping company name.
func (c CheckInParcelCommand) Carrier() string {
	return c.carrier
}

// GuestName returns the recipient's name.
func (c CheckInParcelCommand) GuestName() string {
	return c.guestName
}

// RoomNumber returns the delivery destination room.
func (c CheckInParcelCommand) RoomNumber() string {
	return c.roomNumber
}

// ReceivedBy returns the staff member logging the intake.
func (c CheckInParcelCommand) ReceivedBy() string {
	return c.receivedBy
}

// Details returns the optional intake attributes.
func (c CheckInParcelCommand) Details() parcel.Details {
	return c.details
}

func (c *CheckInParcelCommand) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *CheckInParcelCommand) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	c.carrier = carrier
	return nil
}

func (c *CheckInParcelCommand) setGuestName(guestName string) error {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return errs.NewValueIsRequiredError("guest_name")
	}

	c.guestName = guestName
	return nil
}

func (c *CheckInParcelCommand) setRoomNumber(roomNumber string) error {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return errs.NewValueIsRequiredError("room_number")
	}

	c.roomNumber = roomNumber
	return nil
}

func (c *CheckInParcelCommand) setReceivedBy(receivedBy string) error {
	receivedBy = strings.TrimSpace(receivedBy)
	if receivedBy == "" {
		return errs.NewValueIsRequiredError("received_by")
	}

	c.receivedBy = receivedBy
	return nil
}
