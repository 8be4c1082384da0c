package draftrepo

import (
	"context"
	"errors"
	"time"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDraftRepository implements DraftRepository using GORM.
type GormDraftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

type noTracking struct{}

func (noTracking) TrackAggregate(string, any) {}

// NewGormDraftRepository creates a new GORM draft repository.
func NewGormDraftRepository(db *gorm.DB, tracker aggregateTracker) *GormDraftRepository {
	return &GormDraftRepository{
		db:      db,
		tracker: tracker,
	}
}

// NewReader returns a repository for reads outside a unit of work.
func NewReader(db *gorm.DB) *GormDraftRepository {
	return NewGormDraftRepository(db, noTracking{})
}

// Add saves a new draft at version 1.
func (r *GormDraftRepository) Add(ctx context.Context, aggregate *draft.Draft) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	dto := fromDomain(aggregate)
	dto.Version = 1
	dto.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkSaved(dto.Version, now)
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves the draft if nobody else saved it since it was loaded.
func (r *GormDraftRepository) Update(ctx context.Context, aggregate *draft.Draft) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loaded := aggregate.Version()
	next := fromDomain(aggregate)
	next.Version = loaded + 1
	next.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&next).
		Where("version = ?", loaded).
		Select("data", "quotes", "step", "active_section", "active_step", "version", "updated_at").
		Updates(&next)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	aggregate.MarkSaved(next.Version, next.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a draft by ID.
func (r *GormDraftRepository) Get(ctx context.Context, id kernel.UUID) (*draft.Draft, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DraftDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteUntouchedSince removes drafts last saved before the given time.
func (r *GormDraftRepository) DeleteUntouchedSince(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", before).Delete(&DraftDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormDraftRepository) missingOrStale(ctx context.Context, aggregate *draft.Draft) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DraftDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("draft", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidError("draft " + aggregate.ID().String())
}
