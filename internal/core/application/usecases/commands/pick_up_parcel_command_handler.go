package commands

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// ErrTrackingNumberAmbiguous is returned when a pickup identified only by
// tracking number matches more than one record. Silently picking one of them
// would be a correctness hazard, so the caller must retry with the exact
// parcel id.
var ErrTrackingNumberAmbiguous = errors.New(
	"tracking number matches multiple parcels, disambiguating id is required",
)

// PickUpParcelCommandHandler handles the business logic for parcel pickup.
// Resolves the target record, applies the Received -> PickedUp transition,
// and persists it conditionally on the record still being in Received status,
// so two concurrent pickups of the same parcel cannot both succeed.
//
// Example:
//
//	handler := NewPickUpParcelCommandHandler(uowFactory)
//	cmd, _ := NewPickUpParcelCommand(7, "", "张三", "")
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // already picked up (or in Exception); the error names the status
//	}
type PickUpParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewPickUpParcelCommandHandler creates a handler for pickup operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewPickUpParcelCommandHandler(uowFactory ParcelUoWFactory) PickUpParcelCommandHandler {
	return PickUpParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
//
// Resolution: by id when one is given; otherwise by tracking number, which
// must match exactly one record. Zero matches fail as not found; several
// fail with ErrTrackingNumberAmbiguous regardless of their statuses.
//
// A resolved parcel that is no longer in Received status fails with an
// InvalidStateError naming the current status; pickup is not idempotent.
// Returns the updated parcel on success.
func (h *PickUpParcelCommandHandler) Handle(ctx context.Context, cmd PickUpParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	target, err := h.resolve(ctx, parcelRepo, cmd)
	if err != nil {
		return nil, err
	}

	if err = target.PickUp(cmd.PickedUpBy(), time.Now()); err != nil {
		return nil, err
	}
	target.AppendNotes(cmd.Notes())

	// Conditional on Received: a concurrent pickup that committed first
	// makes this update match zero rows and fail with InvalidStateError
	// instead of overwriting the earlier pickup.
	if err = parcelRepo.Update(ctx, target, parcel.Received); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

func (h *PickUpParcelCommandHandler) resolve(
	ctx context.Context,
	parcelRepo ports.ParcelRepository,
	cmd PickUpParcelCommand,
) (*parcel.Parcel, error) {
	if cmd.ParcelID() > 0 {
		return parcelRepo.Get(ctx, cmd.ParcelID())
	}

	matches, err := parcelRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, errs.NewObjectNotFoundError("tracking_number", cmd.TrackingNumber())
	case 1:
		return matches[0], nil
	default:
		return nil, ErrTrackingNumberAmbiguous
	}
}
