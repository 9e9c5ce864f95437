package model

import "time"

// TaxReturnType is an IRS form family. Unknown types behave as TaxReturnOther.
type TaxReturnType string

const (
	TaxReturn1040  TaxReturnType = "1040"
	TaxReturn1120  TaxReturnType = "1120"
	TaxReturn1065  TaxReturnType = "1065"
	TaxReturn1120S TaxReturnType = "1120S"
	TaxReturn990   TaxReturnType = "990"
	TaxReturn941   TaxReturnType = "941"
	TaxReturn940   TaxReturnType = "940"
	TaxReturnOther TaxReturnType = "other"
)

// TaxReturnStatus is the lifecycle status of a tax return.
type TaxReturnStatus string

const (
	TaxReturnStatusNotStarted   TaxReturnStatus = "not_started"
	TaxReturnStatusInProgress   TaxReturnStatus = "in_progress"
	TaxReturnStatusReviewNeeded TaxReturnStatus = "review_needed"
	TaxReturnStatusCompleted    TaxReturnStatus = "completed"
	TaxReturnStatusFiled        TaxReturnStatus = "filed"
)

// ValidTaxReturnStatus reports whether s is a known tax return status.
func ValidTaxReturnStatus(s string) bool {
	switch TaxReturnStatus(s) {
	case TaxReturnStatusNotStarted, TaxReturnStatusInProgress,
		TaxReturnStatusReviewNeeded, TaxReturnStatusCompleted, TaxReturnStatusFiled:
		return true
	}
	return false
}

// TaxReturn tracks a single filing for a client, optionally linked to a project.
type TaxReturn struct {
	ID            string
	FirmID        string
	ClientID      string
	ProjectID     string // optional
	ReturnType    TaxReturnType
	TaxYear       int
	Status        TaxReturnStatus
	DueDate       *time.Time
	IsExtended    bool
	ExtensionDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
