package ports

import (
	"context"

	"mailroom/internal/core/domain/model/receiver"
)

// ReceiverRepository defines the persistence contract for the known-receivers
// directory backing the check-in autocomplete.
type ReceiverRepository interface {
	// GetByName retrieves the entry for a name, or an ObjectNotFoundError
	// when the name has never been recorded.
	GetByName(ctx context.Context, name string) (*receiver.Receiver, error)

	// Add persists a new directory entry.
	Add(ctx context.Context, aggregate *receiver.Receiver) error

	// Update persists changes to an existing entry (usage counter and
	// last-seen timestamp).
	Update(ctx context.Context, aggregate *receiver.Receiver) error
}
