package parcelrepo

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel and seals the store-assigned id and audit
// timestamps into the aggregate.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsStored() {
		return parcel.ErrParcelAlreadyStored
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.MarkStored(dto.ID, dto.CreatedAt, dto.UpdatedAt); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by its store-assigned id.
func (r *GormParcelRepository) Get(ctx context.Context, id int64) (*parcel.Parcel, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves every parcel carrying the given tracking
// number. Tracking numbers are not unique; an empty result is not an error.
func (r *GormParcelRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) ([]*parcel.Parcel, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking_number")
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).
		Order("receive_time DESC, id DESC").
		Find(&dtos, "tracking_number = ?", trackingNumber).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// Update saves changes to an existing parcel, conditional on the stored row
// still carrying the expected status. A lost race surfaces as an
// InvalidStateError naming the status that actually won.
func (r *GormParcelRepository) Update(
	ctx context.Context,
	aggregate *parcel.Parcel,
	expected parcel.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsStored() {
		return errs.NewValueIsInvalidError("id")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":           dto.Status,
			"picked_up_by":     dto.PickedUpBy,
			"pickup_time":      dto.PickupTime,
			"storage_location": dto.StorageLocation,
			"storage_number":   dto.StorageNumber,
			"notes":            dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var current ParcelDTO
		if err := r.db.WithContext(ctx).First(&current, "id = ?", dto.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("id", dto.ID)
			}
			return err
		}
		return errs.NewInvalidStateError("parcel", parcel.Status(current.Status).String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
