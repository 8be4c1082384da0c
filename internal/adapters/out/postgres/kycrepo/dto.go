// Package kycrepo stores KYC customers and their documents in PostgreSQL.
package kycrepo

import (
	"time"

	"orderwizard/internal/core/domain/model/kyc"
)

// CustomerDTO represents the database structure for persisting KYC customers.
type CustomerDTO struct {
	ID                   string        `gorm:"type:varchar(64);primaryKey"`
	FirstName            string        `gorm:"type:varchar(255);not null"`
	LastName             string        `gorm:"type:varchar(255);not null"`
	CompletionDate       time.Time
	DoneByEmail          string        `gorm:"type:varchar(255)"`
	DoneByPhone          string        `gorm:"type:varchar(32)"`
	VerifiedBy           string        `gorm:"type:varchar(255)"`
	CustomerType         string        `gorm:"type:varchar(16);not null;index"`
	KycStatus            string        `gorm:"type:varchar(16);not null"`
	CsbStatus            string        `gorm:"type:varchar(16);not null"`
	LastVerificationDate *time.Time
	Submitted            bool          `gorm:"not null"`
	Documents            []DocumentDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for KYC customers.
func (CustomerDTO) TableName() string {
	return "kyc_customers"
}

// DocumentDTO represents the database structure for persisting KYC documents.
// Document ids are only unique within a customer.
type DocumentDTO struct {
	ID          int       `gorm:"primaryKey;autoIncrement:false"`
	CustomerID  string    `gorm:"type:varchar(64);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	Number      string    `gorm:"type:varchar(64)"`
	LastUpdated time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	Selected    bool      `gorm:"not null"`
}

// TableName specifies the database table name for KYC documents.
func (DocumentDTO) TableName() string {
	return "kyc_documents"
}

func fromDomain(c *kyc.Customer) CustomerDTO {
	documents := make([]DocumentDTO, 0, len(c.Documents()))
	for _, d := range c.Documents() {
		documents = append(documents, DocumentDTO{
			ID:          d.ID(),
			CustomerID:  c.ID(),
			Name:        d.Name(),
			FileName:    d.FileName(),
			Number:      d.Number(),
			LastUpdated: d.LastUpdated(),
			Status:      string(d.Status()),
			Selected:    d.Selected(),
		})
	}

	profile := c.Profile()
	return CustomerDTO{
		ID:                   c.ID(),
		FirstName:            profile.FirstName,
		LastName:             profile.LastName,
		CompletionDate:       profile.CompletionDate,
		DoneByEmail:          profile.DoneByEmail,
		DoneByPhone:          profile.DoneByPhone,
		VerifiedBy:           profile.VerifiedBy,
		CustomerType:         string(profile.Type),
		KycStatus:            string(c.KycStatus()),
		CsbStatus:            string(c.CsbStatus()),
		LastVerificationDate: c.LastVerificationDate(),
		Submitted:            c.Submitted(),
		Documents:            documents,
	}
}

func toDomain(dto CustomerDTO) (*kyc.Customer, error) {
	documents := make([]*kyc.Document, 0, len(dto.Documents))
	for _, d := range dto.Documents {
		document, err := kyc.RestoreDocument(
			d.ID, d.Name, d.FileName, d.Number, d.LastUpdated, kyc.DocumentStatus(d.Status), d.Selected,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	return kyc.RestoreCustomer(
		dto.ID,
		kyc.Profile{
			FirstName:      dto.FirstName,
			LastName:       dto.LastName,
			CompletionDate: dto.CompletionDate,
			DoneByEmail:    dto.DoneByEmail,
			DoneByPhone:    dto.DoneByPhone,
			VerifiedBy:     dto.VerifiedBy,
			Type:           kyc.CustomerType(dto.CustomerType),
		},
		kyc.KycStatus(dto.KycStatus),
		kyc.CsbStatus(dto.CsbStatus),
		dto.LastVerificationDate,
		dto.Submitted,
		documents,
	)
}
