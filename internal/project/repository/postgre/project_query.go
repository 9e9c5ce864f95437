package postgre

import (
	"fmt"
	"strings"

	repo "tax-practice-management/internal/project/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOne.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.FirmID != "" {
		conditions = append(conditions, fmt.Sprintf("firm_id = $%d", idx))
		args = append(args, opt.FirmID)
		idx++
	}
	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for List. Only cheap equality
// filters are pushed down; richer filtering happens in memory upstream.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	conditions = append(conditions, fmt.Sprintf("firm_id = $%d", idx))
	args = append(args, opt.FirmID)
	idx++

	if opt.ClientID != "" {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", idx))
		args = append(args, opt.ClientID)
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

// buildUpdateSet builds the SET clause + args for a partial single update.
// Nil pointers are skipped; supplied zero values are written as given.
func (r *implRepository) buildUpdateSet(opt repo.UpdateOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Name != nil {
		add("name", *opt.Name)
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
	if opt.DueDate != nil {
		add("due_date", *opt.DueDate)
	}
	if opt.Stage != nil {
		add("stage", *opt.Stage)
	}

	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args
}

// buildBulkUpdateSet builds the SET clause + args for the bulk update.
func (r *implRepository) buildBulkUpdateSet(opt repo.BulkUpdateOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.Priority != nil {
		add("priority", *opt.Priority)
	}
	if opt.DueDate != nil {
		add("due_date", *opt.DueDate)
	}
	if opt.Description != nil {
		add("description", *opt.Description)
	}
	if opt.ServiceInfo != nil {
		add("business_services_info", []byte(opt.ServiceInfo))
	}
	if opt.AccountingInfo != nil {
		add("accounting_info", []byte(opt.AccountingInfo))
	}
	if opt.PayrollInfo != nil {
		add("payroll_info", []byte(opt.PayrollInfo))
	}
	if opt.TaxInfo != nil {
		add("tax_info", []byte(opt.TaxInfo))
	}

	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args
}
