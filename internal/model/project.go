package model

import "time"

// ProjectStatus is the lifecycle status of a project (engagement).
type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "not_started"
	ProjectStatusTodo       ProjectStatus = "todo"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusBlocked    ProjectStatus = "blocked"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusArchived   ProjectStatus = "archived"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectStatusNotStarted, ProjectStatusTodo, ProjectStatusInProgress,
		ProjectStatusReview, ProjectStatusBlocked, ProjectStatusCompleted,
		ProjectStatusArchived, ProjectStatusOnHold, ProjectStatusCancelled:
		return true
	}
	return false
}

// Priority is shared by projects and tasks. Tasks additionally allow "urgent".
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ServiceCategory classifies the engagement's service line.
type ServiceCategory string

const (
	ServiceTaxReturn        ServiceCategory = "tax_return"
	ServiceBookkeeping      ServiceCategory = "bookkeeping"
	ServicePayroll          ServiceCategory = "payroll"
	ServiceBusinessServices ServiceCategory = "business_services"
	ServiceAdvisory         ServiceCategory = "advisory"
	ServiceUncategorized    ServiceCategory = "uncategorized"
)

// TaxInfo is the tax-return sub-record stored as a JSON column on projects.
type TaxInfo struct {
	ReturnType     TaxReturnType `json:"return_type,omitempty"`
	FilingDeadline *time.Time    `json:"filing_deadline,omitempty"`
	IsExtended     bool          `json:"is_extended,omitempty"`
	ReviewStatus   string        `json:"review_status,omitempty"`
	TaxYear        int           `json:"tax_year,omitempty"`
}

// PayrollInfo is the payroll sub-record stored as a JSON column on projects.
type PayrollInfo struct {
	NextPayrollDate *time.Time `json:"next_payroll_date,omitempty"`
	Frequency       string     `json:"frequency,omitempty"`
	EmployeeCount   int        `json:"employee_count,omitempty"`
}

// AccountingInfo is the bookkeeping sub-record stored as a JSON column on projects.
type AccountingInfo struct {
	Period       string     `json:"period,omitempty"` // monthly, quarterly, annual
	LastClosed   *time.Time `json:"last_closed,omitempty"`
	Software     string     `json:"software,omitempty"`
	Reconciled   bool       `json:"reconciled,omitempty"`
	FiscalEndDay string     `json:"fiscal_end_day,omitempty"`
}

// BusinessServicesInfo is the advisory/business-services sub-record.
type BusinessServicesInfo struct {
	DueDate     *time.Time `json:"due_date,omitempty"`
	ServiceName string     `json:"service_name,omitempty"`
	Recurring   bool       `json:"recurring,omitempty"`
}

// Project is a client engagement tracked through a status lifecycle.
type Project struct {
	ID              string
	FirmID          string
	ClientID        string
	Name            string
	Description     string
	Status          ProjectStatus
	Priority        Priority
	ServiceType     ServiceCategory
	Stage           string
	StartDate       *time.Time
	DueDate         *time.Time
	TemplateID      string
	ParentProjectID string

	TaxInfo              *TaxInfo
	AccountingInfo       *AccountingInfo
	PayrollInfo          *PayrollInfo
	BusinessServicesInfo *BusinessServicesInfo

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectClient is the client summary embedded in a hydrated project.
type ProjectClient struct {
	ID          string
	FullName    string
	CompanyName string
	Email       string
}

// ProjectTask is the task summary embedded in a hydrated project.
type ProjectTask struct {
	ID             string
	Title          string
	Status         TaskStatus
	Priority       Priority
	DueDate        *time.Time
	AssigneeID     string
	AssigneeName   string
	EstimatedHours float64
}

// ProjectWithRelations is a project hydrated with its client and task relations.
// Absent relations stay nil; every consumer must treat nested access as optional.
type ProjectWithRelations struct {
	Project
	Client *ProjectClient
	Tasks  []ProjectTask
}

// CompletionPercent returns the share of the project's tasks that are completed,
// in [0, 100]. A project without tasks reports 0.
func (p ProjectWithRelations) CompletionPercent() float64 {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Status == TaskStatusCompleted {
			done++
		}
	}
	return float64(done) / float64(len(p.Tasks)) * 100
}

// EstimatedHours sums the estimated hours of the project's tasks.
func (p ProjectWithRelations) EstimatedHours() float64 {
	var sum float64
	for _, t := range p.Tasks {
		sum += t.EstimatedHours
	}
	return sum
}
