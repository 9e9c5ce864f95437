package usecase_test

import (
	"testing"
	"time"

	"tax-practice-management/internal/model"
)

func TestDeadline_FallbackChain(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	due := datePtr(2026, time.March, 1)
	filing := datePtr(2026, time.April, 15)
	payroll := datePtr(2026, time.February, 20)
	bizDue := datePtr(2026, time.June, 30)

	tcs := []struct {
		name string
		p    model.Project
		want time.Time
		ok   bool
	}{
		{
			name: "due date wins over everything",
			p: model.Project{
				DueDate:     due,
				TaxInfo:     &model.TaxInfo{FilingDeadline: filing},
				PayrollInfo: &model.PayrollInfo{NextPayrollDate: payroll},
			},
			want: *due, ok: true,
		},
		{
			name: "filing deadline when no due date",
			p: model.Project{
				TaxInfo:     &model.TaxInfo{FilingDeadline: filing},
				PayrollInfo: &model.PayrollInfo{NextPayrollDate: payroll},
			},
			want: *filing, ok: true,
		},
		{
			name: "payroll date when no tax info",
			p: model.Project{
				PayrollInfo:          &model.PayrollInfo{NextPayrollDate: payroll},
				BusinessServicesInfo: &model.BusinessServicesInfo{DueDate: bizDue},
			},
			want: *payroll, ok: true,
		},
		{
			name: "business services due date next",
			p: model.Project{
				BusinessServicesInfo: &model.BusinessServicesInfo{DueDate: bizDue},
			},
			want: *bizDue, ok: true,
		},
		{
			name: "statutory date by return type",
			p: model.Project{
				TaxInfo: &model.TaxInfo{ReturnType: model.TaxReturn1065, TaxYear: 2025},
			},
			want: date(2026, time.March, 15), ok: true,
		},
		{
			name: "nothing derivable",
			p:    model.Project{},
			ok:   false,
		},
		{
			name: "empty sub-records are skipped",
			p: model.Project{
				TaxInfo:     &model.TaxInfo{},
				PayrollInfo: &model.PayrollInfo{},
			},
			ok: false,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := uc.Deadline(tc.p)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("deadline = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeadline_StatutoryTable(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	tcs := []struct {
		returnType model.TaxReturnType
		extended   bool
		want       time.Time
	}{
		{model.TaxReturn1040, false, date(2026, time.April, 15)},
		{model.TaxReturn1040, true, date(2026, time.October, 15)},
		{model.TaxReturn1120, false, date(2026, time.April, 15)},
		{model.TaxReturn1065, false, date(2026, time.March, 15)},
		{model.TaxReturn1065, true, date(2026, time.September, 15)},
		{model.TaxReturn1120S, false, date(2026, time.March, 15)},
		{model.TaxReturn1120S, true, date(2026, time.September, 15)},
		{model.TaxReturn990, false, date(2026, time.May, 15)},
		{model.TaxReturn990, true, date(2026, time.November, 15)},
		{model.TaxReturn940, false, date(2026, time.January, 31)},
		// 940 has no extension window; extended falls back to the regular date.
		{model.TaxReturn940, true, date(2026, time.January, 31)},
		{model.TaxReturnOther, false, date(2026, time.April, 15)},
		{"unknown-form", false, date(2026, time.April, 15)},
	}

	for _, tc := range tcs {
		name := string(tc.returnType)
		if tc.extended {
			name += " extended"
		}
		t.Run(name, func(t *testing.T) {
			p := model.Project{TaxInfo: &model.TaxInfo{
				ReturnType: tc.returnType,
				IsExtended: tc.extended,
				TaxYear:    2025,
			}}
			got, ok := uc.Deadline(p)
			if !ok {
				t.Fatal("expected a statutory deadline")
			}
			if !got.Equal(tc.want) {
				t.Errorf("deadline = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeadline_QuarterlyForm941(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	p := model.Project{TaxInfo: &model.TaxInfo{ReturnType: model.TaxReturn941}}
	got, ok := uc.Deadline(p)
	if !ok {
		t.Fatal("expected a deadline for 941")
	}
	// Clock is 2026-02-10; the next estimated date is April 15.
	if want := date(2026, time.April, 15); !got.Equal(want) {
		t.Errorf("deadline = %v, want %v", got, want)
	}
}

func TestNextEstimatedTaxDeadline(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	got := uc.NextEstimatedTaxDeadline()
	if want := date(2026, time.April, 15); !got.Equal(want) {
		t.Errorf("next estimated deadline = %v, want %v", got, want)
	}
}

func TestDeadline_StatutoryUsesCurrentYear(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	// January 31 has already passed at the fixed clock; the statutory date
	// still lands in the current calendar year, and TaxYear is ignored.
	tcs := []struct {
		name string
		info model.TaxInfo
		want time.Time
	}{
		{"passed date stays in current year", model.TaxInfo{ReturnType: model.TaxReturn940}, date(2026, time.January, 31)},
		{"tax year does not shift the date", model.TaxInfo{ReturnType: model.TaxReturn1065, TaxYear: 2023}, date(2026, time.March, 15)},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			got, ok := uc.Deadline(model.Project{TaxInfo: &info})
			if !ok {
				t.Fatal("expected a deadline")
			}
			if !got.Equal(tc.want) {
				t.Errorf("deadline = %v, want %v", got, tc.want)
			}
		})
	}
}
