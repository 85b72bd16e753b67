package commands

import (
	"context"
	"errors"
	"time"

	"mailroom/internal/core/domain/model/receiver"
	"mailroom/internal/pkg/errs"
)

// RecordReceiverCommandHandler maintains the known-receivers directory.
// An unseen name becomes a new entry; a known name gets its usage counter
// incremented and its last-seen timestamp advanced.
type RecordReceiverCommandHandler struct {
	uowFactory ReceiverUoWFactory
}

// NewRecordReceiverCommandHandler creates a handler for receiver recording.
// Requires a ReceiverUoWFactory for transactional persistence.
func NewRecordReceiverCommandHandler(uowFactory ReceiverUoWFactory) RecordReceiverCommandHandler {
	return RecordReceiverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record-receiver command as an upsert.
func (h *RecordReceiverCommandHandler) Handle(ctx context.Context, cmd RecordReceiverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	receiverRepo := uow.ReceiverRepository()
	existing, err := receiverRepo.GetByName(ctx, cmd.Name())
	switch {
	case err == nil:
		existing.Seen(time.Now())
		if err = receiverRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		entry, newErr := receiver.NewReceiver(cmd.Name(), time.Now())
		if newErr != nil {
			return newErr
		}
		if err = receiverRepo.Add(ctx, entry); err != nil {
			return err
		}
	default:
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
