package commands

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/parcel"
)

// CheckInParcelCommandHandler handles the business logic for parcel intake.
// Creates a new parcel in Received status and persists it; the store assigns
// the id and audit timestamps, which come back sealed in the returned
// aggregate.
//
// Example:
//
//	handler := NewCheckInParcelCommandHandler(uowFactory)
//	cmd, _ := NewCheckInParcelCommand("SF123", "顺丰", "张三", "302", "Admin", parcel.Details{})
//
//	stored, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("check-in failed: %w", err)
//	}
//	// stored.ID() and stored.ReceivedAt() are now set
type CheckInParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCheckInParcelCommandHandler creates a handler for parcel intake.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCheckInParcelCommandHandler(uowFactory ParcelUoWFactory) CheckInParcelCommandHandler {
	return CheckInParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the check-in command.
// Stamps the receive time, builds the aggregate, and persists it inside a
// transaction; on any error the transaction rolls back and no record exists.
// Returns the stored parcel including its assigned id.
func (h *CheckInParcelCommandHandler) Handle(ctx context.Context, cmd CheckInParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.TrackingNumber(),
		cmd.Carrier(),
		cmd.GuestName(),
		cmd.RoomNumber(),
		cmd.ReceivedBy(),
		time.Now(),
		cmd.Details(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
