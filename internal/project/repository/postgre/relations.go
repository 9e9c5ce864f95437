package postgre

import (
	"context"
	"fmt"

	"tax-practice-management/internal/model"
	repo "tax-practice-management/internal/project/repository"
)

// List returns the firm's projects hydrated with client and task relations.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.ProjectWithRelations, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE %s ORDER BY created_at DESC", projectColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var row projectRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}

	return r.hydrate(ctx, opt.FirmID, projects)
}

// ListByIDs returns the given projects hydrated with relations.
func (r *implRepository) ListByIDs(ctx context.Context, firmID string, ids []string) ([]model.ProjectWithRelations, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM projects WHERE firm_id = $1 AND id = ANY($2)", projectColumns)
	rows, err := r.db.QueryContext(ctx, query, firmID, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var row projectRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListByIDs"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}

	return r.hydrate(ctx, firmID, projects)
}

// hydrate attaches client summaries and task lists to the given projects.
// Missing relations stay nil; hydration never invents placeholder records.
func (r *implRepository) hydrate(ctx context.Context, firmID string, projects []model.Project) ([]model.ProjectWithRelations, error) {
	result := make([]model.ProjectWithRelations, len(projects))

	clientIDs := make([]string, 0, len(projects))
	projectIDs := make([]string, 0, len(projects))
	for i, p := range projects {
		result[i] = model.ProjectWithRelations{Project: p}
		if p.ClientID != "" {
			clientIDs = append(clientIDs, p.ClientID)
		}
		projectIDs = append(projectIDs, p.ID)
	}
	if len(projects) == 0 {
		return result, nil
	}

	clients, err := r.fetchClients(ctx, firmID, clientIDs)
	if err != nil {
		return nil, err
	}
	tasks, err := r.fetchTasks(ctx, firmID, projectIDs)
	if err != nil {
		return nil, err
	}

	for i := range result {
		if c, ok := clients[result[i].ClientID]; ok {
			client := c
			result[i].Client = &client
		}
		result[i].Tasks = tasks[result[i].ID]
	}
	return result, nil
}

func (r *implRepository) fetchClients(ctx context.Context, firmID string, ids []string) (map[string]model.ProjectClient, error) {
	clients := make(map[string]model.ProjectClient)
	if len(ids) == 0 {
		return clients, nil
	}

	const query = `
		SELECT id, full_name, COALESCE(company_name, ''), COALESCE(email, '')
		FROM clients WHERE firm_id = $1 AND id = ANY($2)`

	rows, err := r.db.QueryContext(ctx, query, firmID, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("fetchClients"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var c model.ProjectClient
		if err := rows.Scan(&c.ID, &c.FullName, &c.CompanyName, &c.Email); err != nil {
			return nil, repo.ErrFailedToList
		}
		clients[c.ID] = c
	}
	return clients, rows.Err()
}

func (r *implRepository) fetchTasks(ctx context.Context, firmID string, projectIDs []string) (map[string][]model.ProjectTask, error) {
	tasks := make(map[string][]model.ProjectTask)
	if len(projectIDs) == 0 {
		return tasks, nil
	}

	const query = `
		SELECT t.project_id, t.id, t.title, t.status, t.priority, t.due_date,
			COALESCE(t.assignee_id, ''), COALESCE(u.full_name, ''),
			COALESCE(t.estimated_hours, 0)
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assignee_id
		WHERE t.firm_id = $1 AND t.project_id = ANY($2)
		ORDER BY t.order_index, t.created_at`

	rows, err := r.db.QueryContext(ctx, query, firmID, projectIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("fetchTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var projectID string
		var t model.ProjectTask
		var status, priority string
		if err := rows.Scan(&projectID, &t.ID, &t.Title, &status, &priority,
			&t.DueDate, &t.AssigneeID, &t.AssigneeName, &t.EstimatedHours); err != nil {
			return nil, repo.ErrFailedToList
		}
		t.Status = model.TaskStatus(status)
		t.Priority = model.Priority(priority)
		tasks[projectID] = append(tasks[projectID], t)
	}
	return tasks, rows.Err()
}
