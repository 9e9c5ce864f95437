package postgre

import (
	"encoding/json"
	"fmt"
	"strings"

	repo "tax-practice-management/internal/task/repository"
)

// buildListQuery builds WHERE clause + args for List.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	conditions = append(conditions, fmt.Sprintf("firm_id = $%d", idx))
	args = append(args, opt.FirmID)
	idx++

	if opt.ProjectID != "" {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", idx))
		args = append(args, opt.ProjectID)
		idx++
	}
	if opt.AssigneeID != "" {
		conditions = append(conditions, fmt.Sprintf("assignee_id = $%d", idx))
		args = append(args, opt.AssigneeID)
		idx++
	}
	if len(opt.Statuses) > 0 {
		statuses := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", idx))
		args = append(args, statuses)
		idx++
	}

	return strings.Join(conditions, " AND "), args
}

// buildUpdateSet builds the SET clause + args for a partial update.
// Nil pointers are skipped; non-nil JSON blobs replace the stored value.
func (r *implRepository) buildUpdateSet(opt repo.UpdateOptions) (string, []any) {
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
	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.Priority != nil {
		add("priority", *opt.Priority)
	}
	if opt.Category != nil {
		add("category", *opt.Category)
	}
	if opt.AssigneeID != nil {
		add("assignee_id", *opt.AssigneeID)
	}
	if opt.StartDate != nil {
		add("start_date", *opt.StartDate)
	}
	if opt.DueDate != nil {
		add("due_date", *opt.DueDate)
	}
	if opt.EstimatedHours != nil {
		add("estimated_hours", *opt.EstimatedHours)
	}
	if opt.OrderIndex != nil {
		add("order_index", *opt.OrderIndex)
	}
	if opt.Checklist != nil {
		b, _ := json.Marshal(opt.Checklist)
		add("checklist", b)
	}
	if opt.ActivityLog != nil {
		b, _ := json.Marshal(opt.ActivityLog)
		add("activity_log", b)
	}

	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args
}
