package client

import (
	"tax-practice-management/internal/model"
)

// CreateInput is the input for creating a client.
type CreateInput struct {
	FullName    string
	CompanyName string
	Email       string
	ContactInfo *model.ContactInfo
	Type        model.ClientType
	Status      model.ClientStatus
	TaxInfo     *model.ClientTaxInfo
}

// UpdateInput is a partial client update. Nil means "not supplied".
type UpdateInput struct {
	ID          string
	FullName    *string
	CompanyName *string
	Email       *string
	ContactInfo *model.ContactInfo
	Status      *string
	TaxInfo     *model.ClientTaxInfo
}

// Filters narrows the list operation.
type Filters struct {
	Status []model.ClientStatus
	Type   []model.ClientType
	Search string
}

// ListInput is the input for the list operation.
type ListInput struct {
	Filters Filters
}

// ListOutput is the result of the list operation.
type ListOutput struct {
	Clients []model.Client
	Total   int
}

// ClientOutput wraps a single client.
type ClientOutput struct {
	Client model.Client
}
