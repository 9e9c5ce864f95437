package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tax-practice-management/internal/model"
	repo "tax-practice-management/internal/project/repository"
)

// Create inserts a new project row and returns the created entity.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (firm_id, client_id, name, description, status, priority,
			service_type, start_date, due_date, template_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NOW(), NOW())
		RETURNING %s`, projectColumns)

	var row projectRow
	err := r.db.QueryRowContext(ctx, query,
		opt.FirmID, opt.ClientID, opt.Name, opt.Description,
		string(opt.Status), string(opt.Priority), string(opt.ServiceType),
		opt.StartDate, opt.DueDate, opt.TemplateID,
	).Scan(row.scanTargets()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOne retrieves a single project by the provided filters (AND condition).
// Returns zero-value Project (ID == "") when not found, which is not an error.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Project, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE %s LIMIT 1", projectColumns, mods)

	var row projectRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// Update applies a partial update to one project and returns the updated entity.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Project, error) {
	sets, args := r.buildUpdateSet(opt)
	if len(args) == 0 {
		return r.GetOne(ctx, repo.GetOneOptions{FirmID: opt.FirmID, ID: opt.ID})
	}

	idx := len(args) + 1
	query := fmt.Sprintf(`UPDATE projects SET %s WHERE firm_id = $%d AND id = $%d RETURNING %s`,
		sets, idx, idx+1, projectColumns)
	args = append(args, opt.FirmID, opt.ID)

	var row projectRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Project{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// BulkUpdate applies one update set to every project in opt.ProjectIDs.
func (r *implRepository) BulkUpdate(ctx context.Context, opt repo.BulkUpdateOptions) (int64, error) {
	sets, args := r.buildBulkUpdateSet(opt)
	if len(args) == 0 {
		return 0, nil
	}

	idx := len(args) + 1
	query := fmt.Sprintf(`UPDATE projects SET %s WHERE firm_id = $%d AND id = ANY($%d)`,
		sets, idx, idx+1)
	args = append(args, opt.FirmID, opt.ProjectIDs)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("BulkUpdate"), err)
		return 0, repo.ErrFailedToUpdate
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

// ArchiveTasks flips every task under the given projects to archived.
// The status overwrite is set-based, so re-running it is a no-op.
func (r *implRepository) ArchiveTasks(ctx context.Context, firmID string, projectIDs []string) (int64, error) {
	const query = `
		UPDATE tasks SET status = 'archived', updated_at = $1
		WHERE firm_id = $2 AND project_id = ANY($3)`

	res, err := r.db.ExecContext(ctx, query, time.Now(), firmID, projectIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ArchiveTasks"), err)
		return 0, repo.ErrFailedToUpdate
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}
