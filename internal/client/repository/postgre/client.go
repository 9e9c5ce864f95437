package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"tax-practice-management/internal/model"
	repo "tax-practice-management/internal/client/repository"
)

// clientRow mirrors the clients table for scanning.
type clientRow struct {
	ID          string
	FirmID      string
	FullName    string
	CompanyName sql.NullString
	Email       sql.NullString
	ContactInfo []byte
	Type        string
	Status      string
	TaxInfo     []byte
	CreatedAt   sql.NullTime
	UpdatedAt   sql.NullTime
}

const clientColumns = `id, firm_id, full_name, company_name, email, contact_info,
	type, status, tax_info, created_at, updated_at`

func (row *clientRow) scanTargets() []any {
	return []any{
		&row.ID, &row.FirmID, &row.FullName, &row.CompanyName, &row.Email,
		&row.ContactInfo, &row.Type, &row.Status, &row.TaxInfo,
		&row.CreatedAt, &row.UpdatedAt,
	}
}

func (row *clientRow) toModel() model.Client {
	c := model.Client{
		ID:          row.ID,
		FirmID:      row.FirmID,
		FullName:    row.FullName,
		CompanyName: row.CompanyName.String,
		Email:       row.Email.String,
		Type:        model.ClientType(row.Type),
		Status:      model.ClientStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if len(row.ContactInfo) > 0 {
		_ = json.Unmarshal(row.ContactInfo, &c.ContactInfo)
	}
	if len(row.TaxInfo) > 0 {
		_ = json.Unmarshal(row.TaxInfo, &c.TaxInfo)
	}
	return c
}

func marshalOrNull(v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// Create inserts a client and returns the stored record.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Client, error) {
	query := fmt.Sprintf(`
		INSERT INTO clients (firm_id, full_name, company_name, email, contact_info,
			type, status, tax_info, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, clientColumns)

	var contact, tax any
	if opt.ContactInfo != nil {
		contact = marshalOrNull(opt.ContactInfo)
	}
	if opt.TaxInfo != nil {
		tax = marshalOrNull(opt.TaxInfo)
	}

	var row clientRow
	err := r.db.QueryRowContext(ctx, query,
		opt.FirmID, opt.FullName, opt.CompanyName, opt.Email, contact,
		string(opt.Type), string(opt.Status), tax,
	).Scan(row.scanTargets()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Client{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOne retrieves a client. Returns zero-value on not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients WHERE firm_id = $1 AND id = $2 LIMIT 1",
		clientColumns)

	var row clientRow
	err := r.db.QueryRowContext(ctx, query, opt.FirmID, opt.ID).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.Client{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Client{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns the firm's clients with optional status/type filters.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Client, error) {
	conds := []string{"firm_id = $1"}
	args := []any{opt.FirmID}
	idx := 2

	if len(opt.Statuses) > 0 {
		statuses := make([]string, len(opt.Statuses))
		for i, s := range opt.Statuses {
			statuses[i] = string(s)
		}
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", idx))
		args = append(args, statuses)
		idx++
	}
	if len(opt.Types) > 0 {
		types := make([]string, len(opt.Types))
		for i, t := range opt.Types {
			types[i] = string(t)
		}
		conds = append(conds, fmt.Sprintf("type = ANY($%d)", idx))
		args = append(args, types)
		idx++
	}

	query := fmt.Sprintf("SELECT %s FROM clients WHERE %s ORDER BY full_name",
		clientColumns, strings.Join(conds, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var row clientRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, repo.ErrFailedToList
		}
		clients = append(clients, row.toModel())
	}
	return clients, rows.Err()
}

// Update applies a partial update. Returns zero-value when no row matched.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Client, error) {
	var sets []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.FullName != nil {
		add("full_name", *opt.FullName)
	}
	if opt.CompanyName != nil {
		add("company_name", *opt.CompanyName)
	}
	if opt.Email != nil {
		add("email", *opt.Email)
	}
	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.ContactInfo != nil {
		add("contact_info", marshalOrNull(opt.ContactInfo))
	}
	if opt.TaxInfo != nil {
		add("tax_info", marshalOrNull(opt.TaxInfo))
	}

	if len(sets) == 0 {
		return r.GetOne(ctx, repo.GetOneOptions{FirmID: opt.FirmID, ID: opt.ID})
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE clients SET %s WHERE firm_id = $%d AND id = $%d RETURNING %s`,
		strings.Join(sets, ", "), idx, idx+1, clientColumns)
	args = append(args, opt.FirmID, opt.ID)

	var row clientRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if err == sql.ErrNoRows {
		return model.Client{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Client{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}
