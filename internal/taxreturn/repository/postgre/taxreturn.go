package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tax-practice-management/internal/model"
	repo "tax-practice-management/internal/taxreturn/repository"
)

// returnRow mirrors the tax_returns table for scanning.
type returnRow struct {
	ID            string
	FirmID        string
	ClientID      string
	ProjectID     sql.NullString
	ReturnType    string
	TaxYear       int
	Status        string
	DueDate       sql.NullTime
	IsExtended    bool
	ExtensionDate sql.NullTime
	CreatedAt     sql.NullTime
	UpdatedAt     sql.NullTime
}

const returnColumns = `id, firm_id, client_id, project_id, return_type, tax_year,
	status, due_date, is_extended, extension_date, created_at, updated_at`

func (row *returnRow) scanTargets() []any {
	return []any{
		&row.ID, &row.FirmID, &row.ClientID, &row.ProjectID, &row.ReturnType,
		&row.TaxYear, &row.Status, &row.DueDate, &row.IsExtended,
		&row.ExtensionDate, &row.CreatedAt, &row.UpdatedAt,
	}
}

func (row *returnRow) toModel() model.TaxReturn {
	t := model.TaxReturn{
		ID:         row.ID,
		FirmID:     row.FirmID,
		ClientID:   row.ClientID,
		ProjectID:  row.ProjectID.String,
		ReturnType: model.TaxReturnType(row.ReturnType),
		TaxYear:    row.TaxYear,
		Status:     model.TaxReturnStatus(row.Status),
		IsExtended: row.IsExtended,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
	if row.DueDate.Valid {
		d := row.DueDate.Time
		t.DueDate = &d
	}
	if row.ExtensionDate.Valid {
		d := row.ExtensionDate.Time
		t.ExtensionDate = &d
	}
	return t
}

// Create inserts a tax return and returns the stored record.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.TaxReturn, error) {
	query := fmt.Sprintf(`
		INSERT INTO tax_returns (firm_id, client_id, project_id, return_type,
			tax_year, status, due_date, is_extended, extension_date,
			created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s`, returnColumns)

	var row returnRow
	err := r.db.QueryRowContext(ctx, query,
		opt.FirmID, opt.ClientID, opt.ProjectID, string(opt.ReturnType),
		opt.TaxYear, string(opt.Status), opt.DueDate, opt.IsExtended, opt.ExtensionDate,
	).Scan(row.scanTargets()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.TaxReturn{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOne retrieves a tax return. Returns zero-value on not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.TaxReturn, error) {
	query := fmt.Sprintf("SELECT %s FROM tax_returns WHERE firm_id = $1 AND id = $2 LIMIT 1",
		returnColumns)

	var row returnRow
	err := r.db.QueryRowContext(ctx, query, opt.FirmID, opt.ID).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.TaxReturn{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.TaxReturn{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns the firm's tax returns with optional filters.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.TaxReturn, error) {
	conds := []string{"firm_id = $1"}
	args := []any{opt.FirmID}
	idx := 2

	if opt.ClientID != "" {
		conds = append(conds, fmt.Sprintf("client_id = $%d", idx))
		args = append(args, opt.ClientID)
		idx++
	}
	if opt.TaxYear > 0 {
		conds = append(conds, fmt.Sprintf("tax_year = $%d", idx))
		args = append(args, opt.TaxYear)
		idx++
	}
	if len(opt.Statuses) > 0 {
		statuses := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			statuses[i] = string(s)
		}
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", idx))
		args = append(args, statuses)
		idx++
	}
	if len(opt.ReturnTypes) > 0 {
		types := make([]string, len(opt.ReturnTypes))
		for i, t := range opt.ReturnTypes {
			types[i] = string(t)
		}
		conds = append(conds, fmt.Sprintf("return_type = ANY($%d)", idx))
		args = append(args, types)
		idx++
	}

	query := fmt.Sprintf("SELECT %s FROM tax_returns WHERE %s ORDER BY tax_year DESC, created_at",
		returnColumns, strings.Join(conds, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var returns []model.TaxReturn
	for rows.Next() {
		var row returnRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, repo.ErrFailedToList
		}
		returns = append(returns, row.toModel())
	}
	return returns, rows.Err()
}

// Update applies a partial update. Returns zero-value when no row matched.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.TaxReturn, error) {
	var sets []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.ProjectID != nil {
		add("project_id", *opt.ProjectID)
	}
	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.DueDate != nil {
		add("due_date", *opt.DueDate)
	}
	if opt.IsExtended != nil {
		add("is_extended", *opt.IsExtended)
	}
	if opt.ExtensionDate != nil {
		add("extension_date", *opt.ExtensionDate)
	}

	if len(sets) == 0 {
		return r.GetOne(ctx, repo.GetOneOptions{FirmID: opt.FirmID, ID: opt.ID})
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE tax_returns SET %s WHERE firm_id = $%d AND id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, idx+1, returnColumns)
	args = append(args, opt.FirmID, opt.ID)

	var row returnRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.TaxReturn{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.TaxReturn{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}
