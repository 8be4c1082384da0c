package kycrepo

import (
	"context"
	"errors"
	"strings"

	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKycRepository implements KycRepository using GORM.
type GormKycRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormKycRepository creates a new GORM KYC repository.
func NewGormKycRepository(db *gorm.DB, tracker aggregateTracker) *GormKycRepository {
	return &GormKycRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer with its documents.
func (r *GormKycRepository) Add(ctx context.Context, aggregate *kyc.Customer) error {
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

// Update saves the customer's statuses and every document.
func (r *GormKycRepository) Update(ctx context.Context, aggregate *kyc.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer with its documents ordered by id.
func (r *GormKycRepository) Get(ctx context.Context, id string) (*kyc.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("customer id")
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
