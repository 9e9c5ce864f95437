package http

import (
	"encoding/json"
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/project"
)

// --- Request DTOs ---

type createReq struct {
	Name        string     `json:"name"         binding:"required,min=1,max=255"`
	Description string     `json:"description"  binding:"max=2000"`
	ClientID    string     `json:"client_id"    binding:"required,uuid"`
	Status      string     `json:"status"       binding:"omitempty"`
	Priority    string     `json:"priority"     binding:"omitempty,oneof=low medium high urgent"`
	ServiceType string     `json:"service_type" binding:"omitempty"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	TemplateID  string     `json:"template_id"  binding:"omitempty,uuid"`
}

func (r createReq) validate() error {
	if r.Status != "" && !model.ValidProjectStatus(r.Status) {
		return project.ErrInvalidStatus
	}
	return nil
}

func (r createReq) toInput() project.CreateInput {
	return project.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		ClientID:    r.ClientID,
		Status:      model.ProjectStatus(r.Status),
		Priority:    model.Priority(r.Priority),
		ServiceType: model.ServiceCategory(r.ServiceType),
		StartDate:   r.StartDate,
		DueDate:     r.DueDate,
		TemplateID:  r.TemplateID,
	}
}

// ---

type listReq struct {
	Search         string   `form:"search"`
	Services       []string `form:"service"`
	Statuses       []string `form:"status"`
	Priorities     []string `form:"priority"`
	ReturnTypes    []string `form:"return_type"`
	ReviewStatuses []string `form:"review_status"`
	ClientID       string   `form:"client_id"`
	DueThisWeek    bool     `form:"due_this_week"`
	DueThisMonth   bool     `form:"due_this_month"`
	DueThisQuarter bool     `form:"due_this_quarter"`
	DueFrom        string   `form:"due_from"`
	DueTo          string   `form:"due_to"`
	GroupBy        string   `form:"group_by"  binding:"omitempty,oneof=status service deadline client"`
	SortBy         string   `form:"sort_by"   binding:"omitempty,oneof=created due name status priority estimated_hours completion"`
	SortOrder      string   `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() (project.ListInput, error) {
	filters := project.Filters{
		Search:         r.Search,
		ReviewStatuses: r.ReviewStatuses,
		ClientID:       r.ClientID,
		DueThisWeek:    r.DueThisWeek,
		DueThisMonth:   r.DueThisMonth,
		DueThisQuarter: r.DueThisQuarter,
	}
	for _, s := range r.Services {
		filters.Services = append(filters.Services, model.ServiceCategory(s))
	}
	for _, s := range r.Statuses {
		filters.Statuses = append(filters.Statuses, model.ProjectStatus(s))
	}
	for _, s := range r.Priorities {
		filters.Priorities = append(filters.Priorities, model.Priority(s))
	}
	for _, s := range r.ReturnTypes {
		filters.ReturnTypes = append(filters.ReturnTypes, model.TaxReturnType(s))
	}

	if r.DueFrom != "" && r.DueTo != "" {
		from, err := time.Parse("2006-01-02", r.DueFrom)
		if err != nil {
			return project.ListInput{}, err
		}
		to, err := time.Parse("2006-01-02", r.DueTo)
		if err != nil {
			return project.ListInput{}, err
		}
		filters.DateRange = &project.DateRange{From: from, To: to}
	}

	order := project.SortOrder(r.SortOrder)
	if order == "" {
		order = project.SortAsc
	}
	return project.ListInput{
		Filters: filters,
		Sort:    project.SortSpec{Key: project.SortKey(r.SortBy), Order: order},
		GroupBy: project.GroupBy(r.GroupBy),
	}, nil
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Name        *string    `json:"name"        binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
	Stage       *string    `json:"stage"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() project.UpdateInput {
	return project.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Stage:       r.Stage,
	}
}

// ---

// bulkUpdateReq carries field presence with pointers: an absent key stays
// nil while an explicit null or empty value is still an update.
type bulkUpdateReq struct {
	ProjectIDs []string `json:"projectIds"`
	Updates    struct {
		Status      *string    `json:"status"`
		Priority    *string    `json:"priority"`
		DueDate     *time.Time `json:"due_date"`
		Description *string    `json:"description"`

		ServiceInfo    json.RawMessage `json:"service_info"`
		AccountingInfo json.RawMessage `json:"accounting_info"`
		PayrollInfo    json.RawMessage `json:"payroll_info"`
		TaxInfo        json.RawMessage `json:"tax_info"`
	} `json:"updates"`
}

func (r bulkUpdateReq) validate() error { return nil }

func (r bulkUpdateReq) toInput() project.BulkUpdateInput {
	return project.BulkUpdateInput{
		ProjectIDs: r.ProjectIDs,
		Updates: project.FieldUpdates{
			Status:         r.Updates.Status,
			Priority:       r.Updates.Priority,
			DueDate:        r.Updates.DueDate,
			Description:    r.Updates.Description,
			ServiceInfo:    r.Updates.ServiceInfo,
			AccountingInfo: r.Updates.AccountingInfo,
			PayrollInfo:    r.Updates.PayrollInfo,
			TaxInfo:        r.Updates.TaxInfo,
		},
	}
}

// --- Response DTOs ---

type clientResp struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

type taskSummaryResp struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	AssigneeID     string     `json:"assignee_id,omitempty"`
	AssigneeName   string     `json:"assignee_name,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
}

type projectResp struct {
	ID              string `json:"id"`
	ClientID        string `json:"client_id,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	ServiceType     string `json:"service_type,omitempty"`
	Stage           string `json:"stage,omitempty"`
	TemplateID      string `json:"template_id,omitempty"`
	ParentProjectID string `json:"parent_project_id,omitempty"`

	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"` // derived
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	TaxInfo              *model.TaxInfo              `json:"tax_info,omitempty"`
	AccountingInfo       *model.AccountingInfo       `json:"accounting_info,omitempty"`
	PayrollInfo          *model.PayrollInfo          `json:"payroll_info,omitempty"`
	BusinessServicesInfo *model.BusinessServicesInfo `json:"business_services_info,omitempty"`

	Client *clientResp       `json:"client,omitempty"`
	Tasks  []taskSummaryResp `json:"tasks,omitempty"`

	CompletionPercent float64 `json:"completion_percent"`
	EstimatedHours    float64 `json:"estimated_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *handler) newProjectResp(p model.ProjectWithRelations) projectResp {
	resp := projectResp{
		ID:              p.ID,
		ClientID:        p.ClientID,
		Name:            p.Name,
		Description:     p.Description,
		Status:          string(p.Status),
		Priority:        string(p.Priority),
		ServiceType:     string(p.ServiceType),
		Stage:           p.Stage,
		TemplateID:      p.TemplateID,
		ParentProjectID: p.ParentProjectID,
		StartDate:       p.StartDate,
		DueDate:         p.DueDate,
		CompletedAt:     p.CompletedAt,

		TaxInfo:              p.TaxInfo,
		AccountingInfo:       p.AccountingInfo,
		PayrollInfo:          p.PayrollInfo,
		BusinessServicesInfo: p.BusinessServicesInfo,

		CompletionPercent: p.CompletionPercent(),
		EstimatedHours:    p.EstimatedHours(),

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if deadline, ok := h.uc.Deadline(p.Project); ok {
		resp.Deadline = &deadline
	}
	if p.Client != nil {
		resp.Client = &clientResp{
			ID:          p.Client.ID,
			FullName:    p.Client.FullName,
			CompanyName: p.Client.CompanyName,
			Email:       p.Client.Email,
		}
	}
	for _, t := range p.Tasks {
		resp.Tasks = append(resp.Tasks, taskSummaryResp{
			ID:             t.ID,
			Title:          t.Title,
			Status:         string(t.Status),
			Priority:       string(t.Priority),
			DueDate:        t.DueDate,
			AssigneeID:     t.AssigneeID,
			AssigneeName:   t.AssigneeName,
			EstimatedHours: t.EstimatedHours,
		})
	}
	return resp
}

type groupResp struct {
	Key      string        `json:"key"`
	Projects []projectResp `json:"projects"`
}

type listResp struct {
	Projects []projectResp `json:"projects"`
	Groups   []groupResp   `json:"groups,omitempty"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	resp := listResp{
		Projects: make([]projectResp, len(out.Projects)),
		Total:    out.Total,
	}
	for i, p := range out.Projects {
		resp.Projects[i] = h.newProjectResp(p)
	}
	for _, g := range out.Groups {
		gr := groupResp{Key: g.Key, Projects: make([]projectResp, len(g.Projects))}
		for i, p := range g.Projects {
			gr.Projects[i] = h.newProjectResp(p)
		}
		resp.Groups = append(resp.Groups, gr)
	}
	return resp
}

type detailResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailResp(out project.ProjectOutput) detailResp {
	return detailResp{Project: h.newProjectResp(out.Project)}
}

type bulkUpdateResp struct {
	Projects []projectResp `json:"projects"`
	Message  string        `json:"message"`
}

func (h *handler) newBulkUpdateResp(out project.BulkUpdateOutput) bulkUpdateResp {
	resp := bulkUpdateResp{
		Projects: make([]projectResp, len(out.Projects)),
		Message:  out.Message,
	}
	for i, p := range out.Projects {
		resp.Projects[i] = h.newProjectResp(p)
	}
	return resp
}

type metricsResp struct {
	TotalProjects     int            `json:"total_projects"`
	CompletedProjects int            `json:"completed_projects"`
	CompletionRate    float64        `json:"completion_rate"`
	ByService         map[string]int `json:"by_service"`
	ByStatus          map[string]int `json:"by_status"`
	ByPriority        map[string]int `json:"by_priority"`
}

func (h *handler) newMetricsResp(out project.MetricsOutput) metricsResp {
	resp := metricsResp{
		TotalProjects:     out.TotalProjects,
		CompletedProjects: out.CompletedProjects,
		CompletionRate:    out.CompletionRate,
		ByService:         make(map[string]int, len(out.ByService)),
		ByStatus:          make(map[string]int, len(out.ByStatus)),
		ByPriority:        make(map[string]int, len(out.ByPriority)),
	}
	for k, v := range out.ByService {
		resp.ByService[string(k)] = v
	}
	for k, v := range out.ByStatus {
		resp.ByStatus[string(k)] = v
	}
	for k, v := range out.ByPriority {
		resp.ByPriority[string(k)] = v
	}
	return resp
}
