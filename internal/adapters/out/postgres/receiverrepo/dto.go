// Package receiverrepo provides persistence for the known-receivers
// directory backing the check-in autocomplete.
package receiverrepo

import (
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/receiver"

	"github.com/google/uuid"
)

// ReceiverDTO represents the database structure for receiver directory
// entries. Names are unique; repeats bump the counter instead of adding rows.
type ReceiverDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"uniqueIndex;not null"`
	TimesSeen  int       `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for receiver entries.
func (ReceiverDTO) TableName() string {
	return "receivers"
}

func fromDomain(aggregate *receiver.Receiver) ReceiverDTO {
	return ReceiverDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		TimesSeen:  aggregate.TimesSeen(),
		LastSeenAt: aggregate.LastSeenAt(),
	}
}

func toDomain(dto ReceiverDTO) (*receiver.Receiver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return receiver.RestoreReceiver(id, dto.Name, dto.TimesSeen, dto.LastSeenAt)
}
