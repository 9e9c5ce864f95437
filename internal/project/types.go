package project

import (
	"encoding/json"
	"time"

	"tax-practice-management/internal/model"
)

// CreateInput is the input for creating a project.
type CreateInput struct {
	Name        string
	Description string
	ClientID    string
	Status      model.ProjectStatus
	Priority    model.Priority
	ServiceType model.ServiceCategory
	StartDate   *time.Time
	DueDate     *time.Time
	TemplateID  string
}

// UpdateInput is a partial single-project update. Nil pointers mean
// "field not supplied"; a pointer to a zero value is an explicit value.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	Stage       *string
}

// DateRange is an inclusive deadline window.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Filters is the in-memory filter specification. Empty fields mean no
// constraint; populated fields combine with logical AND.
type Filters struct {
	Search         string
	Services       []model.ServiceCategory
	Statuses       []model.ProjectStatus
	Priorities     []model.Priority
	ReturnTypes    []model.TaxReturnType
	ReviewStatuses []string
	ClientID       string
	DueThisWeek    bool
	DueThisMonth   bool
	DueThisQuarter bool
	DateRange      *DateRange
}

// GroupBy selects one of the fixed grouping functions.
type GroupBy string

const (
	GroupByNone     GroupBy = ""
	GroupByStatus   GroupBy = "status"
	GroupByService  GroupBy = "service"
	GroupByDeadline GroupBy = "deadline"
	GroupByClient   GroupBy = "client"
)

// SortKey selects the sort column for list output.
type SortKey string

const (
	SortByCreated        SortKey = "created"
	SortByDue            SortKey = "due"
	SortByName           SortKey = "name"
	SortByStatus         SortKey = "status"
	SortByPriority       SortKey = "priority"
	SortByEstimatedHours SortKey = "estimated_hours"
	SortByCompletion     SortKey = "completion"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortSpec pairs a key with a direction.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// ListInput is the input for the list operation.
type ListInput struct {
	Filters Filters
	Sort    SortSpec
	GroupBy GroupBy
}

// Group is one named bucket of projects. Buckets appear in the order their
// first project was encountered.
type Group struct {
	Key      string
	Projects []model.ProjectWithRelations
}

// ListOutput is the result of the list operation.
type ListOutput struct {
	Projects []model.ProjectWithRelations
	Groups   []Group // populated only when GroupBy was requested
	Total    int
}

// ProjectOutput wraps a single hydrated project.
type ProjectOutput struct {
	Project model.ProjectWithRelations
}

// FieldUpdates is the bulk-update payload. Nil means "not supplied";
// a non-nil pointer to an empty value is an explicit update. The four
// service-info blobs are carried opaquely and re-serialized as given.
type FieldUpdates struct {
	Status      *string
	Priority    *string
	DueDate     *time.Time
	Description *string

	ServiceInfo    json.RawMessage
	AccountingInfo json.RawMessage
	PayrollInfo    json.RawMessage
	TaxInfo        json.RawMessage
}

// IsEmpty reports whether no recognized field is supplied.
func (f FieldUpdates) IsEmpty() bool {
	return f.Status == nil && f.Priority == nil && f.DueDate == nil &&
		f.Description == nil && f.ServiceInfo == nil && f.AccountingInfo == nil &&
		f.PayrollInfo == nil && f.TaxInfo == nil
}

// BulkUpdateInput is the input for the bulk update workflow.
type BulkUpdateInput struct {
	ProjectIDs []string
	Updates    FieldUpdates
}

// BulkUpdateOutput is the result of the bulk update workflow.
type BulkUpdateOutput struct {
	Projects []model.ProjectWithRelations
	Message  string
}

// MetricsOutput aggregates counts over the filtered project set.
type MetricsOutput struct {
	TotalProjects     int
	CompletedProjects int
	CompletionRate    float64
	ByService         map[model.ServiceCategory]int
	ByStatus          map[model.ProjectStatus]int
	ByPriority        map[model.Priority]int
}
