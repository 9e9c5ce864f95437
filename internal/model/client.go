package model

import "time"

// ClientType classifies a client entity.
type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeBusiness   ClientType = "business"
	ClientTypeNonProfit  ClientType = "non_profit"
)

// ClientStatus is the lifecycle status of a client record.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusPending  ClientStatus = "pending"
	ClientStatusArchived ClientStatus = "archived"
)

// ValidClientType reports whether s is a known client type.
func ValidClientType(s string) bool {
	switch ClientType(s) {
	case ClientTypeIndividual, ClientTypeBusiness, ClientTypeNonProfit:
		return true
	}
	return false
}

// ValidClientStatus reports whether s is a known client status.
func ValidClientStatus(s string) bool {
	switch ClientStatus(s) {
	case ClientStatusActive, ClientStatusInactive, ClientStatusPending, ClientStatusArchived:
		return true
	}
	return false
}

// ContactInfo is the free-form contact blob stored as JSON.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ClientTaxInfo is the client-level tax blob stored as JSON.
type ClientTaxInfo struct {
	TaxID        string `json:"tax_id,omitempty"`
	FilingStatus string `json:"filing_status,omitempty"`
	State        string `json:"state,omitempty"`
}

// Client is a firm's customer. One client has many projects.
type Client struct {
	ID          string
	FirmID      string
	FullName    string
	CompanyName string
	Email       string
	ContactInfo *ContactInfo
	Type        ClientType
	Status      ClientStatus
	TaxInfo     *ClientTaxInfo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
