package http

import (
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/task"
)

// --- Request DTOs ---

type checklistItemReq struct {
	ID        string `json:"id"`
	Text      string `json:"text" binding:"required"`
	Completed bool   `json:"completed"`
}

type createReq struct {
	ProjectID      string             `json:"project_id"     binding:"omitempty,uuid"`
	ParentTaskID   string             `json:"parent_task_id" binding:"omitempty,uuid"`
	Title          string             `json:"title"          binding:"required,min=1,max=255"`
	Description    string             `json:"description"    binding:"max=2000"`
	Status         string             `json:"status"`
	Priority       string             `json:"priority"       binding:"omitempty,oneof=low medium high urgent"`
	Category       string             `json:"category"`
	AssigneeID     string             `json:"assignee_id"    binding:"omitempty,uuid"`
	StartDate      *time.Time         `json:"start_date"`
	DueDate        *time.Time         `json:"due_date"`
	EstimatedHours float64            `json:"estimated_hours" binding:"omitempty,gte=0"`
	Checklist      []checklistItemReq `json:"checklist"`
	Dependencies   []string           `json:"dependencies"`
	OrderIndex     int                `json:"order_index"`
}

func (r createReq) validate() error {
	if r.Status != "" && !model.ValidTaskStatus(r.Status) {
		return task.ErrInvalidStatus
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	input := task.CreateInput{
		ProjectID:      r.ProjectID,
		ParentTaskID:   r.ParentTaskID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         model.TaskStatus(r.Status),
		Priority:       model.Priority(r.Priority),
		Category:       r.Category,
		AssigneeID:     r.AssigneeID,
		StartDate:      r.StartDate,
		DueDate:        r.DueDate,
		EstimatedHours: r.EstimatedHours,
		Dependencies:   r.Dependencies,
		OrderIndex:     r.OrderIndex,
	}
	for _, item := range r.Checklist {
		input.Checklist = append(input.Checklist, model.ChecklistItem{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	return input
}

// ---

type listReq struct {
	ProjectID  string   `form:"project_id"  binding:"omitempty,uuid"`
	AssigneeID string   `form:"assignee_id" binding:"omitempty,uuid"`
	Statuses   []string `form:"status"`
	Search     string   `form:"search"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	filters := task.Filters{
		ProjectID:  r.ProjectID,
		AssigneeID: r.AssigneeID,
		Search:     r.Search,
	}
	for _, s := range r.Statuses {
		filters.Statuses = append(filters.Statuses, model.TaskStatus(s))
	}
	return task.ListInput{Filters: filters}
}

// ---

type updateReq struct {
	ID             string     `json:"-"` // populated from URI param
	Title          *string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description    *string    `json:"description" binding:"omitempty,max=2000"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Category       *string    `json:"category"`
	AssigneeID     *string    `json:"assignee_id"`
	StartDate      *time.Time `json:"start_date"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours" binding:"omitempty,gte=0"`
	OrderIndex     *int       `json:"order_index"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		Category:       r.Category,
		AssigneeID:     r.AssigneeID,
		StartDate:      r.StartDate,
		DueDate:        r.DueDate,
		EstimatedHours: r.EstimatedHours,
		OrderIndex:     r.OrderIndex,
	}
}

// ---

type checklistReq struct {
	TaskID string             `json:"-"` // populated from URI param
	Items  []checklistItemReq `json:"items" binding:"required"`
}

func (r checklistReq) validate() error { return nil }

func (r checklistReq) toInput() task.ChecklistInput {
	input := task.ChecklistInput{TaskID: r.TaskID}
	for _, item := range r.Items {
		input.Items = append(input.Items, model.ChecklistItem{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	return input
}

// ---

type classifyReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r classifyReq) validate() error { return nil }

func (r classifyReq) toInput() task.ClassifyInput {
	return task.ClassifyInput{Title: r.Title, Description: r.Description}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id,omitempty"`
	ParentTaskID string `json:"parent_task_id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Category     string `json:"category,omitempty"`
	AssigneeID   string `json:"assignee_id,omitempty"`

	StartDate      *time.Time `json:"start_date,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	OrderIndex     int        `json:"order_index"`

	Checklist          []model.ChecklistItem    `json:"checklist,omitempty"`
	ChecklistCompleted int                      `json:"checklist_completed"`
	ChecklistTotal     int                      `json:"checklist_total"`
	ActivityLog        []model.ActivityLogEntry `json:"activity_log,omitempty"`
	Dependencies       []string                 `json:"dependencies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	completed, total := t.ChecklistProgress()
	return taskResp{
		ID:                 t.ID,
		ProjectID:          t.ProjectID,
		ParentTaskID:       t.ParentTaskID,
		Title:              t.Title,
		Description:        t.Description,
		Status:             string(t.Status),
		Priority:           string(t.Priority),
		Category:           t.Category,
		AssigneeID:         t.AssigneeID,
		StartDate:          t.StartDate,
		DueDate:            t.DueDate,
		EstimatedHours:     t.EstimatedHours,
		OrderIndex:         t.OrderIndex,
		Checklist:          t.Checklist,
		ChecklistCompleted: completed,
		ChecklistTotal:     total,
		ActivityLog:        t.ActivityLog,
		Dependencies:       t.Dependencies,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.TaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	resp := listResp{Tasks: make([]taskResp, len(out.Tasks)), Total: out.Total}
	for i, t := range out.Tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	return resp
}

type classifyResp struct {
	Category    string            `json:"category"`
	Suggestions []task.Suggestion `json:"suggestions"`
}

func (h *handler) newClassifyResp(out task.ClassifyOutput) classifyResp {
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []task.Suggestion{}
	}
	return classifyResp{Category: out.Category, Suggestions: suggestions}
}
