// Package draftrepo stores order drafts in PostgreSQL. The wizard's form data
// is kept as one JSON document per draft; the cursor and version are columns
// so they can be filtered and compared without decoding the document.
package draftrepo

import (
	"time"

	"orderwizard/internal/core/domain/model/draft"
	"orderwizard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DraftDTO represents the database structure for persisting draft aggregates.
type DraftDTO struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Data          draft.FormData         `gorm:"type:jsonb;serializer:json;not null"`
	Quotes        []draft.ShippingOption `gorm:"type:jsonb;serializer:json"`
	Step          int                    `gorm:"type:smallint;not null"`
	ActiveSection string                 `gorm:"type:varchar(32);not null"`
	ActiveStep    int                    `gorm:"type:smallint;not null"`
	Version       int64                  `gorm:"not null"`
	UpdatedAt     time.Time              `gorm:"not null;index"`
}

// TableName specifies the database table name for draft aggregates.
func (DraftDTO) TableName() string {
	return "drafts"
}

func fromDomain(d *draft.Draft) DraftDTO {
	return DraftDTO{
		ID:            d.ID().Bytes(),
		Data:          d.Data(),
		Quotes:        d.Quotes(),
		Step:          d.Step(),
		ActiveSection: d.ActiveSection().String(),
		ActiveStep:    d.ActiveStep(),
		Version:       d.Version(),
		UpdatedAt:     d.UpdatedAt(),
	}
}

func toDomain(dto DraftDTO) (*draft.Draft, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	section, err := draft.ParseSection(dto.ActiveSection)
	if err != nil {
		return nil, err
	}

	return draft.RestoreDraft(id, dto.Data, dto.Step, section, dto.ActiveStep, dto.Quotes, dto.Version, dto.UpdatedAt)
}
