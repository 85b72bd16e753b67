// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mailroom/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ReceiverRepoFactory provides access to the receiver repository within a transaction.
	ReceiverRepoFactory interface {
		ReceiverRepository() ports.ReceiverRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	// Used by check-in and pickup, which never touch the receiver directory.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ReceiverUoW manages transactions for receiver-directory operations.
	ReceiverUoW interface {
		TxManager
		ReceiverRepoFactory
	}

	// ReceiverUoWFactory creates new receiver unit of work instances.
	ReceiverUoWFactory interface {
		Create() ReceiverUoW
	}
)
