package postgre

import (
	"database/sql"
	"encoding/json"
	"time"

	"tax-practice-management/internal/model"
)

// projectRow mirrors the projects table for scanning. JSON columns arrive as
// raw bytes and are decoded after the scan.
type projectRow struct {
	ID              string
	FirmID          string
	ClientID        sql.NullString
	Name            string
	Description     sql.NullString
	Status          string
	Priority        string
	ServiceType     sql.NullString
	Stage           sql.NullString
	StartDate       sql.NullTime
	DueDate         sql.NullTime
	TemplateID      sql.NullString
	ParentProjectID sql.NullString

	TaxInfo              []byte
	AccountingInfo       []byte
	PayrollInfo          []byte
	BusinessServicesInfo []byte

	CompletedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const projectColumns = `id, firm_id, client_id, name, description, status, priority,
	service_type, stage, start_date, due_date, template_id, parent_project_id,
	tax_info, accounting_info, payroll_info, business_services_info,
	completed_at, created_at, updated_at`

func (row *projectRow) scanTargets() []any {
	return []any{
		&row.ID, &row.FirmID, &row.ClientID, &row.Name, &row.Description,
		&row.Status, &row.Priority, &row.ServiceType, &row.Stage,
		&row.StartDate, &row.DueDate, &row.TemplateID, &row.ParentProjectID,
		&row.TaxInfo, &row.AccountingInfo, &row.PayrollInfo, &row.BusinessServicesInfo,
		&row.CompletedAt, &row.CreatedAt, &row.UpdatedAt,
	}
}

// toModel converts a scanned row into a domain project. Unparseable JSON
// blobs are treated as absent rather than failing the whole fetch.
func (row *projectRow) toModel() model.Project {
	p := model.Project{
		ID:              row.ID,
		FirmID:          row.FirmID,
		ClientID:        row.ClientID.String,
		Name:            row.Name,
		Description:     row.Description.String,
		Status:          model.ProjectStatus(row.Status),
		Priority:        model.Priority(row.Priority),
		ServiceType:     model.ServiceCategory(row.ServiceType.String),
		Stage:           row.Stage.String,
		TemplateID:      row.TemplateID.String,
		ParentProjectID: row.ParentProjectID.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.StartDate.Valid {
		t := row.StartDate.Time
		p.StartDate = &t
	}
	if row.DueDate.Valid {
		t := row.DueDate.Time
		p.DueDate = &t
	}
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		p.CompletedAt = &t
	}

	if len(row.TaxInfo) > 0 {
		var info model.TaxInfo
		if json.Unmarshal(row.TaxInfo, &info) == nil {
			p.TaxInfo = &info
		}
	}
	if len(row.AccountingInfo) > 0 {
		var info model.AccountingInfo
		if json.Unmarshal(row.AccountingInfo, &info) == nil {
			p.AccountingInfo = &info
		}
	}
	if len(row.PayrollInfo) > 0 {
		var info model.PayrollInfo
		if json.Unmarshal(row.PayrollInfo, &info) == nil {
			p.PayrollInfo = &info
		}
	}
	if len(row.BusinessServicesInfo) > 0 {
		var info model.BusinessServicesInfo
		if json.Unmarshal(row.BusinessServicesInfo, &info) == nil {
			p.BusinessServicesInfo = &info
		}
	}

	return p
}
