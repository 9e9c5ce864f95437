package http

import (
	"time"

	"tax-practice-management/internal/model"
	"tax-practice-management/internal/taxreturn"
)

// --- Request DTOs ---

type createReq struct {
	ClientID      string     `json:"client_id" binding:"required,uuid"`
	ProjectID     string     `json:"project_id" binding:"omitempty,uuid"`
	ReturnType    string     `json:"return_type"`
	TaxYear       int        `json:"tax_year" binding:"required"`
	Status        string     `json:"status" binding:"omitempty,oneof=not_started in_progress review_needed completed filed"`
	DueDate       *time.Time `json:"due_date"`
	IsExtended    bool       `json:"is_extended"`
	ExtensionDate *time.Time `json:"extension_date"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() taxreturn.CreateInput {
	return taxreturn.CreateInput{
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		ReturnType:    model.TaxReturnType(r.ReturnType),
		TaxYear:       r.TaxYear,
		Status:        model.TaxReturnStatus(r.Status),
		DueDate:       r.DueDate,
		IsExtended:    r.IsExtended,
		ExtensionDate: r.ExtensionDate,
	}
}

// ---

type listReq struct {
	ClientID    string   `form:"client_id" binding:"omitempty,uuid"`
	TaxYear     int      `form:"tax_year"`
	Statuses    []string `form:"status"`
	ReturnTypes []string `form:"return_type"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() taxreturn.ListInput {
	filters := taxreturn.Filters{ClientID: r.ClientID, TaxYear: r.TaxYear}
	for _, s := range r.Statuses {
		filters.Status = append(filters.Status, model.TaxReturnStatus(s))
	}
	for _, t := range r.ReturnTypes {
		filters.ReturnType = append(filters.ReturnType, model.TaxReturnType(t))
	}
	return taxreturn.ListInput{Filters: filters}
}

// ---

type updateReq struct {
	ID            string     `json:"-"` // populated from URI param
	ProjectID     *string    `json:"project_id" binding:"omitempty"`
	Status        *string    `json:"status" binding:"omitempty,oneof=not_started in_progress review_needed completed filed"`
	DueDate       *time.Time `json:"due_date"`
	IsExtended    *bool      `json:"is_extended"`
	ExtensionDate *time.Time `json:"extension_date"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() taxreturn.UpdateInput {
	return taxreturn.UpdateInput{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		Status:        r.Status,
		DueDate:       r.DueDate,
		IsExtended:    r.IsExtended,
		ExtensionDate: r.ExtensionDate,
	}
}

// --- Response DTOs ---

type returnResp struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	ProjectID     string     `json:"project_id,omitempty"`
	ReturnType    string     `json:"return_type"`
	TaxYear       int        `json:"tax_year"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	IsExtended    bool       `json:"is_extended"`
	ExtensionDate *time.Time `json:"extension_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func newReturnResp(t model.TaxReturn) returnResp {
	return returnResp{
		ID:            t.ID,
		ClientID:      t.ClientID,
		ProjectID:     t.ProjectID,
		ReturnType:    string(t.ReturnType),
		TaxYear:       t.TaxYear,
		Status:        string(t.Status),
		DueDate:       t.DueDate,
		IsExtended:    t.IsExtended,
		ExtensionDate: t.ExtensionDate,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type detailResp struct {
	Return returnResp `json:"tax_return"`
}

func (h *handler) newDetailResp(out taxreturn.ReturnOutput) detailResp {
	return detailResp{Return: newReturnResp(out.Return)}
}

type listResp struct {
	Returns []returnResp `json:"tax_returns"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(out taxreturn.ListOutput) listResp {
	resp := listResp{Returns: make([]returnResp, len(out.Returns)), Total: out.Total}
	for i, t := range out.Returns {
		resp.Returns[i] = newReturnResp(t)
	}
	return resp
}
