package taxreturn

import (
	"time"

	"tax-practice-management/internal/model"
)

// CreateInput is the input for creating a tax return.
type CreateInput struct {
	ClientID      string
	ProjectID     string
	ReturnType    model.TaxReturnType
	TaxYear       int
	Status        model.TaxReturnStatus
	DueDate       *time.Time
	IsExtended    bool
	ExtensionDate *time.Time
}

// UpdateInput is a partial tax return update. Nil means "not supplied".
type UpdateInput struct {
	ID            string
	ProjectID     *string
	Status        *string
	DueDate       *time.Time
	IsExtended    *bool
	ExtensionDate *time.Time
}

// Filters narrows the list operation.
type Filters struct {
	ClientID   string
	TaxYear    int
	Status     []model.TaxReturnStatus
	ReturnType []model.TaxReturnType
}

// ListInput is the input for the list operation.
type ListInput struct {
	Filters Filters
}

// ListOutput is the result of the list operation.
type ListOutput struct {
	Returns []model.TaxReturn
	Total   int
}

// ReturnOutput wraps a single tax return.
type ReturnOutput struct {
	Return model.TaxReturn
}
