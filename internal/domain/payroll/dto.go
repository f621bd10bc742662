package payroll

import (
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Adjustment - an ad-hoc manager-entered line item, earning or deduction.
type Adjustment struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
}

// DeductionDetail - an already-computed deduction line (e.g. insurance
// withholding) supplied by an external collaborator.
type DeductionDetail struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ========== COMPUTE DTOs ==========

type ComputeRequest struct {
	TeacherID        string            `json:"teacher_id"`
	Month            string            `json:"month,omitempty"` // "YYYY-MM"; empty means current month
	Adjustments      []Adjustment      `json:"adjustments,omitempty"`
	DeductionDetails []DeductionDetail `json:"deduction_details,omitempty"`
	Note             *string           `json:"note,omitempty"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if r.Month != "" && !validator.IsValidMonthToken(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	for _, adj := range r.Adjustments {
		if validator.IsEmpty(adj.Label) {
			errs = append(errs, validator.ValidationError{Field: "adjustments", Message: "every adjustment requires a label"})
			break
		}
	}
	for _, adj := range r.Adjustments {
		if adj.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "adjustments", Message: "amounts must be non-negative; use is_deduction for deductions"})
			break
		}
	}
	for _, d := range r.DeductionDetails {
		if validator.IsEmpty(d.Label) || d.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deduction_details", Message: "every detail requires a label and a non-negative amount"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type BreakdownResponse struct {
	TeacherID        string            `json:"teacher_id"`
	PeriodLabel      string            `json:"period_label"`
	PeriodStart      string            `json:"period_start"`
	PeriodEnd        string            `json:"period_end_exclusive"`
	TotalWorkHours   decimal.Decimal   `json:"total_work_hours"`
	HourlyTotal      decimal.Decimal   `json:"hourly_total"`
	AllowanceHours   decimal.Decimal   `json:"weekly_holiday_allowance_hours"`
	AllowanceTotal   decimal.Decimal   `json:"weekly_holiday_allowance"`
	BaseSalaryTotal  decimal.Decimal   `json:"base_salary_total"`
	GrossPay         decimal.Decimal   `json:"gross_pay"`
	DeductionsTotal  decimal.Decimal   `json:"deductions_total"`
	NetPay           decimal.Decimal   `json:"net_pay"`
	WeeklySummaries  []WeeklySummary   `json:"weekly_summaries"`
	Adjustments      []Adjustment      `json:"adjustments,omitempty"`
	DeductionDetails []DeductionDetail `json:"deduction_details,omitempty"`
}

type RunItemResponse struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"item_kind"`
	Label      string                 `json:"label"`
	Amount     decimal.Decimal        `json:"amount"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	OrderIndex int                    `json:"order_index"`
}

type AcknowledgementResponse struct {
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
	Note        *string `json:"note,omitempty"`
}

type RunResponse struct {
	ID                string                   `json:"id"`
	TeacherID         string                   `json:"teacher_id"`
	TeacherName       string                   `json:"teacher_name,omitempty"`
	ProfileID         string                   `json:"payroll_profile_id"`
	PeriodLabel       string                   `json:"period_label"`
	PeriodStart       string                   `json:"period_start"`
	PeriodEnd         string                   `json:"period_end_exclusive"`
	ContractType      string                   `json:"contract_type"`
	InsuranceEnrolled bool                     `json:"insurance_enrolled"`
	TotalWorkHours    decimal.Decimal          `json:"total_work_hours"`
	HourlyTotal       decimal.Decimal          `json:"hourly_total"`
	AllowanceTotal    decimal.Decimal          `json:"weekly_holiday_allowance"`
	BaseSalaryTotal   decimal.Decimal          `json:"base_salary_total"`
	GrossPay          decimal.Decimal          `json:"gross_pay"`
	DeductionsTotal   decimal.Decimal          `json:"deductions_total"`
	NetPay            decimal.Decimal          `json:"net_pay"`
	Status            string                   `json:"status"`
	MessagePreview    *string                  `json:"message_preview,omitempty"`
	Meta              RunMeta                  `json:"meta"`
	Items             []RunItemResponse        `json:"items,omitempty"`
	Acknowledgement   *AcknowledgementResponse `json:"acknowledgement,omitempty"`
	RequestedAt       *string                  `json:"requested_at,omitempty"`
	CreatedAt         string                   `json:"created_at"`
	UpdatedAt         string                   `json:"updated_at"`
}

type SavedRunResponse struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

// ========== LIST DTOs ==========

type RunFilter struct {
	Month     *string
	TeacherID *string
	Status    *string
	Page      int
	Limit     int
}

type ListRunsResponse struct {
	Data       []RunResponse `json:"data"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}
