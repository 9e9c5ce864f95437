package repository

import (
	"tax-practice-management/internal/model"
)

// CreateOptions is the input for Repository.Create.
type CreateOptions struct {
	FirmID      string
	FullName    string
	CompanyName string
	Email       string
	ContactInfo *model.ContactInfo
	Type        model.ClientType
	Status      model.ClientStatus
	TaxInfo     *model.ClientTaxInfo
}

// GetOneOptions filters a single-client fetch.
type GetOneOptions struct {
	FirmID string
	ID     string
}

// ListOptions filters a client list fetch.
type ListOptions struct {
	FirmID   string
	Statuses []model.ClientStatus
	Types    []model.ClientType
}

// UpdateOptions is a partial client update. Nil pointers are skipped.
// ContactInfo and TaxInfo replace the stored JSON blobs when non-nil.
type UpdateOptions struct {
	FirmID string
	ID     string

	FullName    *string
	CompanyName *string
	Email       *string
	Status      *string
	ContactInfo *model.ContactInfo
	TaxInfo     *model.ClientTaxInfo
}
