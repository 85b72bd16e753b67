// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, handling the conversion between domain entities and database rows.
package parcelrepo

import (
	"time"

	"mailroom/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The store assigns the id and the audit timestamps; indexes
// cover the lookups that check-out and listing actually perform.
type ParcelDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	TrackingNumber  string `gorm:"index;not null"`
	Carrier         string `gorm:"not null"`
	GuestName       string `gorm:"not null"`
	RoomNumber      string `gorm:"index;not null"`
	GuestPhone      string
	Status          int    `gorm:"index;not null"`
	ReceivedBy      string `gorm:"not null"`
	ReceiveTime     time.Time
	PickedUpBy      string
	PickupTime      *time.Time
	StorageLocation string
	StorageNumber   string
	Notes           string
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for parcel records.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database
// representation. Audit timestamps stay under GORM's control for new rows.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:              aggregate.ID(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Carrier:         aggregate.Carrier(),
		GuestName:       aggregate.GuestName(),
		RoomNumber:      aggregate.RoomNumber(),
		GuestPhone:      aggregate.GuestPhone(),
		Status:          int(aggregate.Status()),
		ReceivedBy:      aggregate.ReceivedBy(),
		ReceiveTime:     aggregate.ReceivedAt(),
		PickedUpBy:      aggregate.PickedUpBy(),
		PickupTime:      aggregate.PickedUpAt(),
		StorageLocation: aggregate.StorageLocation(),
		StorageNumber:   aggregate.StorageNumber(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to a parcel domain aggregate.
// Reconstruction goes through RestoreParcel so a corrupt row cannot yield an
// aggregate that violates the pickup invariants.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	return parcel.RestoreParcel(
		dto.ID,
		dto.TrackingNumber,
		dto.Carrier,
		dto.GuestName,
		dto.RoomNumber,
		dto.ReceivedBy,
		dto.ReceiveTime,
		parcel.Details{
			GuestPhone:      dto.GuestPhone,
			Notes:           dto.Notes,
			StorageLocation: dto.StorageLocation,
			StorageNumber:   dto.StorageNumber,
		},
		parcel.Status(dto.Status),
		dto.PickedUpBy,
		dto.PickupTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
