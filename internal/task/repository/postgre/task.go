package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tax-practice-management/internal/model"
	repo "tax-practice-management/internal/task/repository"
)

// Create inserts a new task row and returns the created entity.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	checklist := marshalOrNull(opt.Checklist)
	deps := marshalOrNull(opt.Dependencies)

	query := fmt.Sprintf(`
		INSERT INTO tasks (firm_id, project_id, parent_task_id, title, description,
			status, priority, category, assignee_id, start_date, due_date,
			estimated_hours, order_index, checklist, dependencies, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8,
			NULLIF($9, ''), $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s`, taskColumns)

	var row taskRow
	err := r.db.QueryRowContext(ctx, query,
		opt.FirmID, opt.ProjectID, opt.ParentTaskID, opt.Title, opt.Description,
		string(opt.Status), string(opt.Priority), opt.Category, opt.AssigneeID,
		opt.StartDate, opt.DueDate, opt.EstimatedHours, opt.OrderIndex,
		checklist, deps,
	).Scan(row.scanTargets()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOne retrieves a single task. Returns zero-value Task (ID == "") when
// not found, which is not an error.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE firm_id = $1 AND id = $2 LIMIT 1", taskColumns)

	var row taskRow
	err := r.db.QueryRowContext(ctx, query, opt.FirmID, opt.ID).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns the firm's tasks matching opt, ordered for board display.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY order_index, created_at",
		taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var row taskRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, row.toModel())
	}
	return tasks, rows.Err()
}

// Update applies a partial update to one task and returns the updated entity.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	sets, args := r.buildUpdateSet(opt)
	if len(args) == 0 {
		return r.GetOne(ctx, repo.GetOneOptions{FirmID: opt.FirmID, ID: opt.ID})
	}

	idx := len(args) + 1
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE firm_id = $%d AND id = $%d RETURNING %s`,
		sets, idx, idx+1, taskColumns)
	args = append(args, opt.FirmID, opt.ID)

	var row taskRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// Delete removes one task.
func (r *implRepository) Delete(ctx context.Context, firmID, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE firm_id = $1 AND id = $2", firmID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// marshalOrNull serializes v, returning nil (SQL NULL) for empty values.
func marshalOrNull(v any) []byte {
	switch t := v.(type) {
	case []model.ChecklistItem:
		if len(t) == 0 {
			return nil
		}
	case []string:
		if len(t) == 0 {
			return nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
