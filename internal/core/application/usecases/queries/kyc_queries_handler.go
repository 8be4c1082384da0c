package queries

import (
	"context"

	"orderwizard/internal/core/domain/model/kyc"
	"orderwizard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetKycCustomersQueryHandler reads the dashboard straight from the KYC tables.
type GetKycCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetKycCustomersQueryHandler(db *gorm.DB) GetKycCustomersQueryHandler {
	return GetKycCustomersQueryHandler{db: db}
}

// Handle returns customers ordered by name, with how many of their documents
// there are and how many are approved.
func (h GetKycCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetKycCustomersQuery,
) ([]KycCustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]KycCustomerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.first_name,
			c.last_name,
			c.completion_date,
			c.done_by_email,
			c.done_by_phone,
			c.verified_by,
			c.customer_type,
			c.kyc_status,
			c.csb_status,
			c.last_verification_date,
			c.submitted,
			COUNT(d.id),
			COUNT(d.id) FILTER (WHERE d.status = ?)
		FROM kyc_customers c
		LEFT JOIN kyc_documents d ON d.customer_id = c.id
		WHERE (CAST(? AS text) = '' OR c.customer_type = ?)
		GROUP BY c.id
		ORDER BY c.first_name, c.last_name, c.id
	`, string(kyc.DocumentApproved), string(query.CustomerType()), string(query.CustomerType())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c KycCustomerResponse
		var customerType, kycStatus, csbStatus string

		err = rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.CompletionDate,
			&c.DoneByEmail,
			&c.DoneByPhone,
			&c.VerifiedBy,
			&customerType,
			&kycStatus,
			&csbStatus,
			&c.LastVerificationDate,
			&c.Submitted,
			&c.DocumentCount,
			&c.ApprovedCount,
		)
		if err != nil {
			return nil, err
		}

		c.CustomerType = kyc.CustomerType(customerType)
		c.KycStatus = kyc.KycStatus(kycStatus)
		c.CsbStatus = kyc.CsbStatus(csbStatus)
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetKycDocumentsQueryHandler reads one customer's documents.
type GetKycDocumentsQueryHandler struct {
	db *gorm.DB
}

func NewGetKycDocumentsQueryHandler(db *gorm.DB) GetKycDocumentsQueryHandler {
	return GetKycDocumentsQueryHandler{db: db}
}

// Handle returns the documents ordered by id, errs.ErrObjectNotFound when the
// customer does not exist.
func (h GetKycDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetKycDocumentsQuery,
) ([]KycDocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM kyc_customers WHERE id = ?)`, query.CustomerID()).
		Row().Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	documents := make([]KycDocumentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			file_name,
			number,
			last_updated,
			status,
			selected
		FROM kyc_documents
		WHERE customer_id = ?
		ORDER BY id
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d KycDocumentResponse
		var status string

		if err = rows.Scan(&d.ID, &d.Name, &d.FileName, &d.Number, &d.LastUpdated, &status, &d.Selected); err != nil {
			return nil, err
		}
		d.Status = kyc.DocumentStatus(status)
		documents = append(documents, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
