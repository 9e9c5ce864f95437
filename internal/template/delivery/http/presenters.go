package http

import (
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/template"
)

// --- Request DTOs ---

type taskReq struct {
	ID               string   `json:"id"`
	Title            string   `json:"title" binding:"required,min=1,max=255"`
	Description      string   `json:"description" binding:"max=2000"`
	EstimatedMinutes int      `json:"estimated_minutes" binding:"omitempty,gte=0"`
	Priority         string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	OrderIndex       int      `json:"order_index"`
	Dependencies     []string `json:"dependencies"`
}

func (r taskReq) toInput() template.TaskInput {
	return template.TaskInput{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		EstimatedMinutes: r.EstimatedMinutes,
		Priority:         model.Priority(r.Priority),
		OrderIndex:       r.OrderIndex,
		Dependencies:     r.Dependencies,
	}
}

type createReq struct {
	Title             string         `json:"title" binding:"required,min=1,max=255"`
	Description       string         `json:"description" binding:"max=2000"`
	Category          string         `json:"category"`
	DefaultPriority   string         `json:"default_priority" binding:"omitempty,oneof=low medium high urgent"`
	RecurringSchedule string         `json:"recurring_schedule"`
	SeasonalPriority  map[int]string `json:"seasonal_priority"`
	Tasks             []taskReq      `json:"tasks"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() template.CreateInput {
	input := template.CreateInput{
		Title:             r.Title,
		Description:       r.Description,
		Category:          model.ServiceCategory(r.Category),
		DefaultPriority:   model.Priority(r.DefaultPriority),
		RecurringSchedule: r.RecurringSchedule,
		SeasonalPriority:  seasonalPriority(r.SeasonalPriority),
	}
	for _, t := range r.Tasks {
		input.Tasks = append(input.Tasks, t.toInput())
	}
	return input
}

// ---

type updateReq struct {
	ID                string         `json:"-"` // populated from URI param
	Title             *string        `json:"title" binding:"omitempty,min=1,max=255"`
	Description       *string        `json:"description" binding:"omitempty,max=2000"`
	Category          *string        `json:"category"`
	DefaultPriority   *string        `json:"default_priority" binding:"omitempty,oneof=low medium high urgent"`
	RecurringSchedule *string        `json:"recurring_schedule"`
	SeasonalPriority  map[int]string `json:"seasonal_priority"`
	Tasks             []taskReq      `json:"tasks"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() template.UpdateInput {
	input := template.UpdateInput{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		DefaultPriority:   r.DefaultPriority,
		RecurringSchedule: r.RecurringSchedule,
		SeasonalPriority:  seasonalPriority(r.SeasonalPriority),
	}
	if r.Tasks != nil {
		input.Tasks = make([]template.TaskInput, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			input.Tasks = append(input.Tasks, t.toInput())
		}
	}
	return input
}

// ---

type expandReq struct {
	TemplateID string `json:"-"` // populated from URI param
	ProjectID  string `json:"project_id" binding:"required,uuid"`
}

func (r expandReq) validate() error { return nil }

func (r expandReq) toInput() template.ExpandInput {
	return template.ExpandInput{TemplateID: r.TemplateID, ProjectID: r.ProjectID}
}

// ---

type reorderReq struct {
	TemplateID string `json:"-"` // populated from URI params
	TaskID     string `json:"-"`
	Direction  string `json:"direction" binding:"required,oneof=up down"`
}

func (r reorderReq) validate() error { return nil }

func (r reorderReq) toInput() template.ReorderInput {
	return template.ReorderInput{
		TemplateID: r.TemplateID,
		TaskID:     r.TaskID,
		Direction:  template.ReorderDirection(r.Direction),
	}
}

func seasonalPriority(m map[int]string) model.SeasonalPriority {
	if m == nil {
		return nil
	}
	sp := make(model.SeasonalPriority, len(m))
	for quarter, priority := range m {
		sp[quarter] = model.Priority(priority)
	}
	return sp
}

// --- Response DTOs ---

type templateTaskResp struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Priority         string   `json:"priority"`
	OrderIndex       int      `json:"order_index"`
	Dependencies     []string `json:"dependencies,omitempty"`
}

type templateResp struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	Description           string             `json:"description,omitempty"`
	Category              string             `json:"category,omitempty"`
	DefaultPriority       string             `json:"default_priority"`
	EstimatedTotalMinutes int                `json:"estimated_total_minutes"`
	RecurringSchedule     string             `json:"recurring_schedule,omitempty"`
	SeasonalPriority      map[int]string     `json:"seasonal_priority,omitempty"`
	Tasks                 []templateTaskResp `json:"tasks"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func newTemplateResp(t model.ProjectTemplate) templateResp {
	resp := templateResp{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		Category:              string(t.Category),
		DefaultPriority:       string(t.DefaultPriority),
		EstimatedTotalMinutes: t.EstimatedTotalMinutes,
		RecurringSchedule:     t.RecurringSchedule,
		Tasks:                 make([]templateTaskResp, len(t.Tasks)),
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
	if len(t.SeasonalPriority) > 0 {
		resp.SeasonalPriority = make(map[int]string, len(t.SeasonalPriority))
		for quarter, priority := range t.SeasonalPriority {
			resp.SeasonalPriority[quarter] = string(priority)
		}
	}
	for i, tt := range t.Tasks {
		resp.Tasks[i] = templateTaskResp{
			ID:               tt.ID,
			Title:            tt.Title,
			Description:      tt.Description,
			EstimatedMinutes: tt.EstimatedMinutes,
			Priority:         string(tt.Priority),
			OrderIndex:       tt.OrderIndex,
			Dependencies:     tt.Dependencies,
		}
	}
	return resp
}

type detailResp struct {
	Template templateResp `json:"template"`
}

func (h *handler) newDetailResp(out template.TemplateOutput) detailResp {
	return detailResp{Template: newTemplateResp(out.Template)}
}

type listResp struct {
	Templates []templateResp `json:"templates"`
	Total     int            `json:"total"`
}

func (h *handler) newListResp(out template.ListOutput) listResp {
	resp := listResp{Templates: make([]templateResp, len(out.Templates)), Total: out.Total}
	for i, t := range out.Templates {
		resp.Templates[i] = newTemplateResp(t)
	}
	return resp
}

type expandedTaskResp struct {
	ID             string   `json:"id"`
	ProjectID      string   `json:"project_id"`
	Title          string   `json:"title"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	EstimatedHours float64  `json:"estimated_hours"`
	OrderIndex     int      `json:"order_index"`
	Dependencies   []string `json:"dependencies,omitempty"`
}

type expandResp struct {
	Tasks []expandedTaskResp `json:"tasks"`
	Total int                `json:"total"`
}

func (h *handler) newExpandResp(out template.ExpandOutput) expandResp {
	resp := expandResp{Tasks: make([]expandedTaskResp, len(out.Tasks)), Total: len(out.Tasks)}
	for i, t := range out.Tasks {
		resp.Tasks[i] = expandedTaskResp{
			ID:             t.ID,
			ProjectID:      t.ProjectID,
			Title:          t.Title,
			Status:         string(t.Status),
			Priority:       string(t.Priority),
			EstimatedHours: t.EstimatedHours,
			OrderIndex:     t.OrderIndex,
			Dependencies:   t.Dependencies,
		}
	}
	return resp
}
