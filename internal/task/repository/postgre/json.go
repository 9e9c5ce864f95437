package postgre

import (
	"database/sql"
	"encoding/json"
	"time"

	"tax-practice-management/internal/model"
)

// taskRow mirrors the tasks table for scanning.
type taskRow struct {
	ID           string
	FirmID       string
	ProjectID    sql.NullString
	ParentTaskID sql.NullString
	Title        string
	Description  sql.NullString
	Status       string
	Priority     string
	Category     sql.NullString
	AssigneeID   sql.NullString
	StartDate    sql.NullTime
	DueDate      sql.NullTime

	EstimatedHours sql.NullFloat64
	OrderIndex     int

	Checklist       []byte
	ActivityLog     []byte
	RecurringConfig []byte
	Dependencies    []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

const taskColumns = `id, firm_id, project_id, parent_task_id, title, description,
	status, priority, category, assignee_id, start_date, due_date,
	estimated_hours, order_index, checklist, activity_log, recurring_config,
	dependencies, created_at, updated_at`

func (row *taskRow) scanTargets() []any {
	return []any{
		&row.ID, &row.FirmID, &row.ProjectID, &row.ParentTaskID, &row.Title,
		&row.Description, &row.Status, &row.Priority, &row.Category,
		&row.AssigneeID, &row.StartDate, &row.DueDate,
		&row.EstimatedHours, &row.OrderIndex,
		&row.Checklist, &row.ActivityLog, &row.RecurringConfig, &row.Dependencies,
		&row.CreatedAt, &row.UpdatedAt,
	}
}

// toModel converts a scanned row into a domain task. Unparseable JSON blobs
// are treated as absent rather than failing the whole fetch.
func (row *taskRow) toModel() model.Task {
	t := model.Task{
		ID:             row.ID,
		FirmID:         row.FirmID,
		ProjectID:      row.ProjectID.String,
		ParentTaskID:   row.ParentTaskID.String,
		Title:          row.Title,
		Description:    row.Description.String,
		Status:         model.TaskStatus(row.Status),
		Priority:       model.Priority(row.Priority),
		Category:       row.Category.String,
		AssigneeID:     row.AssigneeID.String,
		EstimatedHours: row.EstimatedHours.Float64,
		OrderIndex:     row.OrderIndex,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.StartDate.Valid {
		d := row.StartDate.Time
		t.StartDate = &d
	}
	if row.DueDate.Valid {
		d := row.DueDate.Time
		t.DueDate = &d
	}

	if len(row.Checklist) > 0 {
		_ = json.Unmarshal(row.Checklist, &t.Checklist)
	}
	if len(row.ActivityLog) > 0 {
		_ = json.Unmarshal(row.ActivityLog, &t.ActivityLog)
	}
	if len(row.RecurringConfig) > 0 {
		var cfg model.RecurringConfig
		if json.Unmarshal(row.RecurringConfig, &cfg) == nil {
			t.RecurringConfig = &cfg
		}
	}
	if len(row.Dependencies) > 0 {
		_ = json.Unmarshal(row.Dependencies, &t.Dependencies)
	}
	return t
}
