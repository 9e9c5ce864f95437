package repository

import (
	"time"

	"tax-practice-management/internal/model"
)

// CreateOptions is the input for Repository.Create.
type CreateOptions struct {
	FirmID        string
	ClientID      string
	ProjectID     string
	ReturnType    model.TaxReturnType
	TaxYear       int
	Status        model.TaxReturnStatus
	DueDate       *time.Time
	IsExtended    bool
	ExtensionDate *time.Time
}

// GetOneOptions filters a single-return fetch.
type GetOneOptions struct {
	FirmID string
	ID     string
}

// ListOptions filters a tax return list fetch.
type ListOptions struct {
	FirmID      string
	ClientID    string
	TaxYear     int
	Statuses    []model.TaxReturnStatus
	ReturnTypes []model.TaxReturnType
}

// UpdateOptions is a partial tax return update. Nil pointers are skipped.
type UpdateOptions struct {
	FirmID string
	ID     string

	ProjectID     *string
	Status        *string
	DueDate       *time.Time
	IsExtended    *bool
	ExtensionDate *time.Time
}
