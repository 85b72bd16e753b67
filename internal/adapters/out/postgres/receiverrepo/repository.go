package receiverrepo

import (
	"context"
	"errors"

	"mailroom/internal/core/domain/model/receiver"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceiverRepository implements ReceiverRepository using GORM.
type GormReceiverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormReceiverRepository creates a new GORM receiver repository.
func NewGormReceiverRepository(db *gorm.DB, tracker aggregateTracker) *GormReceiverRepository {
	return &GormReceiverRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByName retrieves the directory entry for a name.
func (r *GormReceiverRepository) GetByName(ctx context.Context, name string) (*receiver.Receiver, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto ReceiverDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a new directory entry.
func (r *GormReceiverRepository) Add(ctx context.Context, aggregate *receiver.Receiver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the bumped usage counter and last-seen timestamp.
func (r *GormReceiverRepository) Update(ctx context.Context, aggregate *receiver.Receiver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReceiverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"times_seen":   dto.TimesSeen,
			"last_seen_at": dto.LastSeenAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
