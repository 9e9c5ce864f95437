package usecase

import (
	"time"

	"tax-practice-management/internal/model"
)

// statutoryDates is the filing calendar for one return type. Months and
// days are fixed by statute; extMonth == 0 means no extension window.
type statutoryDates struct {
	month, extMonth time.Month
	day, extDay     int
	quarterly       bool
}

var taxDeadlines = map[model.TaxReturnType]statutoryDates{
	model.TaxReturn1040:  {month: time.April, day: 15, extMonth: time.October, extDay: 15},
	model.TaxReturn1120:  {month: time.April, day: 15, extMonth: time.October, extDay: 15},
	model.TaxReturn1065:  {month: time.March, day: 15, extMonth: time.September, extDay: 15},
	model.TaxReturn1120S: {month: time.March, day: 15, extMonth: time.September, extDay: 15},
	model.TaxReturn990:   {month: time.May, day: 15, extMonth: time.November, extDay: 15},
	model.TaxReturn941:   {quarterly: true},
	model.TaxReturn940:   {month: time.January, day: 31},
	model.TaxReturnOther: {month: time.April, day: 15, extMonth: time.October, extDay: 15},
}

// estimatedTaxDates are the quarterly estimated-payment days, in calendar
// order within a year. The January date belongs to the prior tax year.
var estimatedTaxDates = []struct {
	month time.Month
	day   int
}{
	{time.January, 15},
	{time.April, 15},
	{time.June, 15},
	{time.September, 15},
}

// Deadline derives the effective deadline for a project. The sources are
// consulted in a fixed precedence order; the first present one wins:
//
//	due_date, tax filing deadline, next payroll date,
//	business-services due date, statutory date for the return type.
func (uc *implUseCase) Deadline(p model.Project) (time.Time, bool) {
	if p.DueDate != nil {
		return *p.DueDate, true
	}
	if p.TaxInfo != nil && p.TaxInfo.FilingDeadline != nil {
		return *p.TaxInfo.FilingDeadline, true
	}
	if p.PayrollInfo != nil && p.PayrollInfo.NextPayrollDate != nil {
		return *p.PayrollInfo.NextPayrollDate, true
	}
	if p.BusinessServicesInfo != nil && p.BusinessServicesInfo.DueDate != nil {
		return *p.BusinessServicesInfo.DueDate, true
	}
	if p.TaxInfo != nil && p.TaxInfo.ReturnType != "" {
		return uc.statutoryDeadline(p.TaxInfo)
	}
	return time.Time{}, false
}

// statutoryDeadline resolves the filing calendar for the return type.
// Unknown types fall back to the individual calendar. Extended returns use
// the extension date when the type has one.
func (uc *implUseCase) statutoryDeadline(info *model.TaxInfo) (time.Time, bool) {
	dates, ok := taxDeadlines[info.ReturnType]
	if !ok {
		dates = taxDeadlines[model.TaxReturnOther]
	}
	if dates.quarterly {
		return uc.NextEstimatedTaxDeadline(), true
	}

	month, day := dates.month, dates.day
	if info.IsExtended && dates.extMonth != 0 {
		month, day = dates.extMonth, dates.extDay
	}

	// Statutory dates combine with the current calendar year, even when
	// that date has already passed. TaxYear does not shift the year.
	now := uc.now().In(uc.loc)
	return time.Date(now.Year(), month, day, 0, 0, 0, 0, uc.loc), true
}

// NextEstimatedTaxDeadline returns the first quarterly estimated-tax date
// strictly after now.
func (uc *implUseCase) NextEstimatedTaxDeadline() time.Time {
	now := uc.now().In(uc.loc)
	for _, d := range estimatedTaxDates {
		candidate := time.Date(now.Year(), d.month, d.day, 0, 0, 0, 0, uc.loc)
		if candidate.After(now) {
			return candidate
		}
	}
	// Past the September date; the next one is January of next year.
	return time.Date(now.Year()+1, time.January, 15, 0, 0, 0, 0, uc.loc)
}

func (uc *implUseCase) startOfDay(t time.Time) time.Time {
	t = t.In(uc.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, uc.loc)
}
