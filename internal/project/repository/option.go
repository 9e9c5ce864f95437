package repository

import (
	"encoding/json"
	"time"

	"tax-practice-management/internal/model"
)

// CreateOptions is the input for Repository.Create.
type CreateOptions struct {
	FirmID      string
	ClientID    string
	Name        string
	Description string
	Status      model.ProjectStatus
	Priority    model.Priority
	ServiceType model.ServiceCategory
	StartDate   *time.Time
	DueDate     *time.Time
	TemplateID  string
}

// GetOneOptions filters a single-project fetch. Non-empty fields apply as
// AND conditions.
type GetOneOptions struct {
	FirmID string
	ID     string
}

// ListOptions filters a project list fetch. The heavy lifting (search,
// deadline windows, grouping) happens in the use case; the repository only
// pushes down cheap equality filters.
type ListOptions struct {
	FirmID   string
	ClientID string
	Statuses []model.ProjectStatus
}

// UpdateOptions is a partial single-project update. Nil pointers are skipped.
type UpdateOptions struct {
	FirmID      string
	ID          string
	Name        *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	Stage       *string
}

// BulkUpdateOptions applies one update set to many projects.
// Nil fields are not written; raw JSON blobs are stored verbatim.
type BulkUpdateOptions struct {
	FirmID     string
	ProjectIDs []string

	Status      *string
	Priority    *string
	DueDate     *time.Time
	Description *string

	ServiceInfo    json.RawMessage
	AccountingInfo json.RawMessage
	PayrollInfo    json.RawMessage
	TaxInfo        json.RawMessage
}
