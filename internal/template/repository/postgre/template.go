package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tax-practice-management/internal/model"
	repo "tax-practice-management/internal/template/repository"
)

// templateRow mirrors the project_templates table for scanning.
type templateRow struct {
	ID                    string
	FirmID                string
	Title                 string
	Description           sql.NullString
	Category              sql.NullString
	DefaultPriority       string
	EstimatedTotalMinutes int
	RecurringSchedule     sql.NullString
	SeasonalPriority      []byte
	CreatedAt             sql.NullTime
	UpdatedAt             sql.NullTime
}

const templateColumns = `id, firm_id, title, description, category, default_priority,
	estimated_total_minutes, recurring_schedule, seasonal_priority, created_at, updated_at`

func (row *templateRow) scanTargets() []any {
	return []any{
		&row.ID, &row.FirmID, &row.Title, &row.Description, &row.Category,
		&row.DefaultPriority, &row.EstimatedTotalMinutes, &row.RecurringSchedule,
		&row.SeasonalPriority, &row.CreatedAt, &row.UpdatedAt,
	}
}

func (row *templateRow) toModel() model.ProjectTemplate {
	t := model.ProjectTemplate{
		ID:                    row.ID,
		FirmID:                row.FirmID,
		Title:                 row.Title,
		Description:           row.Description.String,
		Category:              model.ServiceCategory(row.Category.String),
		DefaultPriority:       model.Priority(row.DefaultPriority),
		EstimatedTotalMinutes: row.EstimatedTotalMinutes,
		RecurringSchedule:     row.RecurringSchedule.String,
		CreatedAt:             row.CreatedAt.Time,
		UpdatedAt:             row.UpdatedAt.Time,
	}
	if len(row.SeasonalPriority) > 0 {
		_ = json.Unmarshal(row.SeasonalPriority, &t.SeasonalPriority)
	}
	return t
}

// Create inserts a template and its task list.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.ProjectTemplate, error) {
	seasonal, _ := json.Marshal(opt.SeasonalPriority)

	total := 0
	for _, t := range opt.Tasks {
		total += t.EstimatedMinutes
	}

	query := fmt.Sprintf(`
		INSERT INTO project_templates (firm_id, title, description, category,
			default_priority, estimated_total_minutes, recurring_schedule,
			seasonal_priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, templateColumns)

	var row templateRow
	err := r.db.QueryRowContext(ctx, query,
		opt.FirmID, opt.Title, opt.Description, string(opt.Category),
		string(opt.DefaultPriority), total, opt.RecurringSchedule, seasonal,
	).Scan(row.scanTargets()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.ProjectTemplate{}, repo.ErrFailedToInsert
	}

	tpl := row.toModel()
	if len(opt.Tasks) > 0 {
		return r.ReplaceTasks(ctx, opt.FirmID, tpl.ID, opt.Tasks)
	}
	return tpl, nil
}

// GetOne retrieves a template with its tasks. Returns zero-value on not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.ProjectTemplate, error) {
	query := fmt.Sprintf("SELECT %s FROM project_templates WHERE firm_id = $1 AND id = $2 LIMIT 1",
		templateColumns)

	var row templateRow
	err := r.db.QueryRowContext(ctx, query, opt.FirmID, opt.ID).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.ProjectTemplate{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.ProjectTemplate{}, repo.ErrFailedToGet
	}

	tpl := row.toModel()
	tasks, err := r.fetchTasks(ctx, []string{tpl.ID})
	if err != nil {
		return model.ProjectTemplate{}, err
	}
	tpl.Tasks = tasks[tpl.ID]
	return tpl, nil
}

// List returns the firm's templates with their tasks.
func (r *implRepository) List(ctx context.Context, firmID string) ([]model.ProjectTemplate, error) {
	query := fmt.Sprintf("SELECT %s FROM project_templates WHERE firm_id = $1 ORDER BY title",
		templateColumns)

	rows, err := r.db.QueryContext(ctx, query, firmID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var templates []model.ProjectTemplate
	var ids []string
	for rows.Next() {
		var row templateRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, repo.ErrFailedToList
		}
		tpl := row.toModel()
		templates = append(templates, tpl)
		ids = append(ids, tpl.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}

	tasks, err := r.fetchTasks(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Tasks = tasks[templates[i].ID]
	}
	return templates, nil
}

// Update applies a partial update to the template header row.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.ProjectTemplate, error) {
	var sets []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Title != nil {
		add("title", *opt.Title)
	}
	if opt.Description != nil {
		add("description", *opt.Description)
	}
	if opt.Category != nil {
		add("category", *opt.Category)
	}
	if opt.DefaultPriority != nil {
		add("default_priority", *opt.DefaultPriority)
	}
	if opt.RecurringSchedule != nil {
		add("recurring_schedule", *opt.RecurringSchedule)
	}
	if opt.SeasonalPriority != nil {
		b, _ := json.Marshal(opt.SeasonalPriority)
		add("seasonal_priority", b)
	}

	if len(sets) == 0 {
		return r.GetOne(ctx, repo.GetOneOptions{FirmID: opt.FirmID, ID: opt.ID})
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE project_templates SET %s WHERE firm_id = $%d AND id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, idx+1, templateColumns)
	args = append(args, opt.FirmID, opt.ID)

	var row templateRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.ProjectTemplate{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.ProjectTemplate{}, repo.ErrFailedToUpdate
	}

	tpl := row.toModel()
	tasks, err := r.fetchTasks(ctx, []string{tpl.ID})
	if err != nil {
		return model.ProjectTemplate{}, err
	}
	tpl.Tasks = tasks[tpl.ID]
	return tpl, nil
}

// Delete removes a template and its tasks.
func (r *implRepository) Delete(ctx context.Context, firmID, id string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM template_tasks WHERE template_id = $1", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM project_templates WHERE firm_id = $1 AND id = $2", firmID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ReplaceTasks swaps the template's task list wholesale and refreshes the
// estimated total.
func (r *implRepository) ReplaceTasks(ctx context.Context, firmID, templateID string, tasks []model.TemplateTask) (model.ProjectTemplate, error) {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM template_tasks WHERE template_id = $1", templateID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceTasks"), err)
		return model.ProjectTemplate{}, repo.ErrFailedToUpdate
	}

	total := 0
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		deps, _ := json.Marshal(t.Dependencies)
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO template_tasks (id, template_id, title, description,
				estimated_minutes, priority, order_index, dependencies)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.ID, templateID, t.Title, t.Description,
			t.EstimatedMinutes, string(t.Priority), t.OrderIndex, deps)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceTasks"), err)
			return model.ProjectTemplate{}, repo.ErrFailedToUpdate
		}
		total += t.EstimatedMinutes
	}

	if _, err := r.db.ExecContext(ctx, `
		UPDATE project_templates SET estimated_total_minutes = $1, updated_at = NOW()
		WHERE firm_id = $2 AND id = $3`, total, firmID, templateID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceTasks"), err)
		return model.ProjectTemplate{}, repo.ErrFailedToUpdate
	}

	return r.GetOne(ctx, repo.GetOneOptions{FirmID: firmID, ID: templateID})
}

// fetchTasks loads template tasks grouped by template, in order_index order.
func (r *implRepository) fetchTasks(ctx context.Context, templateIDs []string) (map[string][]model.TemplateTask, error) {
	tasks := make(map[string][]model.TemplateTask)
	if len(templateIDs) == 0 {
		return tasks, nil
	}

	const query = `
		SELECT id, template_id, title, COALESCE(description, ''),
			estimated_minutes, priority, order_index, COALESCE(dependencies, '[]')
		FROM template_tasks WHERE template_id = ANY($1)
		ORDER BY order_index`

	rows, err := r.db.QueryContext(ctx, query, templateIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("fetchTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var t model.TemplateTask
		var priority string
		var deps []byte
		if err := rows.Scan(&t.ID, &t.TemplateID, &t.Title, &t.Description,
			&t.EstimatedMinutes, &priority, &t.OrderIndex, &deps); err != nil {
			return nil, repo.ErrFailedToList
		}
		t.Priority = model.Priority(priority)
		_ = json.Unmarshal(deps, &t.Dependencies)
		tasks[t.TemplateID] = append(tasks[t.TemplateID], t)
	}
	return tasks, rows.Err()
}
