package http

import (
	"time"

	"tax-practice-management/internal/client"
	"tax-practice-management/internal/model"
)

// --- Request DTOs ---

type contactInfoReq struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type taxInfoReq struct {
	TaxID        string `json:"tax_id"`
	FilingStatus string `json:"filing_status"`
	State        string `json:"state"`
}

type createReq struct {
	FullName    string          `json:"full_name" binding:"max=255"`
	CompanyName string          `json:"company_name" binding:"max=255"`
	Email       string          `json:"email" binding:"omitempty,email"`
	ContactInfo *contactInfoReq `json:"contact_info"`
	Type        string          `json:"type" binding:"omitempty,oneof=individual business non_profit"`
	Status      string          `json:"status" binding:"omitempty,oneof=active inactive pending archived"`
	TaxInfo     *taxInfoReq     `json:"tax_info"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() client.CreateInput {
	return client.CreateInput{
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		Email:       r.Email,
		ContactInfo: contactInfo(r.ContactInfo),
		Type:        model.ClientType(r.Type),
		Status:      model.ClientStatus(r.Status),
		TaxInfo:     taxInfo(r.TaxInfo),
	}
}

// ---

type listReq struct {
	Statuses []string `form:"status"`
	Types    []string `form:"type"`
	Search   string   `form:"search"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() client.ListInput {
	filters := client.Filters{Search: r.Search}
	for _, s := range r.Statuses {
		filters.Status = append(filters.Status, model.ClientStatus(s))
	}
	for _, t := range r.Types {
		filters.Type = append(filters.Type, model.ClientType(t))
	}
	return client.ListInput{Filters: filters}
}

// ---

type updateReq struct {
	ID          string          `json:"-"` // populated from URI param
	FullName    *string         `json:"full_name" binding:"omitempty,max=255"`
	CompanyName *string         `json:"company_name" binding:"omitempty,max=255"`
	Email       *string         `json:"email" binding:"omitempty,email"`
	Status      *string         `json:"status" binding:"omitempty,oneof=active inactive pending archived"`
	ContactInfo *contactInfoReq `json:"contact_info"`
	TaxInfo     *taxInfoReq     `json:"tax_info"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() client.UpdateInput {
	return client.UpdateInput{
		ID:          r.ID,
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		Email:       r.Email,
		Status:      r.Status,
		ContactInfo: contactInfo(r.ContactInfo),
		TaxInfo:     taxInfo(r.TaxInfo),
	}
}

func contactInfo(r *contactInfoReq) *model.ContactInfo {
	if r == nil {
		return nil
	}
	return &model.ContactInfo{Email: r.Email, Phone: r.Phone, Address: r.Address}
}

func taxInfo(r *taxInfoReq) *model.ClientTaxInfo {
	if r == nil {
		return nil
	}
	return &model.ClientTaxInfo{TaxID: r.TaxID, FilingStatus: r.FilingStatus, State: r.State}
}

// --- Response DTOs ---

type clientResp struct {
	ID          string               `json:"id"`
	FullName    string               `json:"full_name"`
	CompanyName string               `json:"company_name,omitempty"`
	Email       string               `json:"email,omitempty"`
	ContactInfo *model.ContactInfo   `json:"contact_info,omitempty"`
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	TaxInfo     *model.ClientTaxInfo `json:"tax_info,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func newClientResp(c model.Client) clientResp {
	return clientResp{
		ID:          c.ID,
		FullName:    c.FullName,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		ContactInfo: c.ContactInfo,
		Type:        string(c.Type),
		Status:      string(c.Status),
		TaxInfo:     c.TaxInfo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type detailResp struct {
	Client clientResp `json:"client"`
}

func (h *handler) newDetailResp(out client.ClientOutput) detailResp {
	return detailResp{Client: newClientResp(out.Client)}
}

type listResp struct {
	Clients []clientResp `json:"clients"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(out client.ListOutput) listResp {
	resp := listResp{Clients: make([]clientResp, len(out.Clients)), Total: out.Total}
	for i, c := range out.Clients {
		resp.Clients[i] = newClientResp(c)
	}
	return resp
}
