package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractType enum
type ContractType string

const (
	ContractEmployee   ContractType = "employee"
	ContractFreelancer ContractType = "freelancer"
	ContractNone       ContractType = "none"
)

// Profile - versioned pay terms for one teacher. At most one profile is
// active for a given date; EffectiveTo is open-ended when nil.
type Profile struct {
	ID                string
	TeacherID         string
	HourlyRate        decimal.Decimal
	BaseSalaryAmount  *decimal.Decimal
	ContractType      ContractType
	InsuranceEnrolled bool
	EffectiveFrom     time.Time
	EffectiveTo       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RunStatus enum
type RunStatus string

const (
	RunStatusDraft      RunStatus = "draft"
	RunStatusPendingAck RunStatus = "pending_ack"
	RunStatusConfirmed  RunStatus = "confirmed"
	RunStatusPaid       RunStatus = "paid"
)

// AckStatus enum
type AckStatus string

const (
	AckStatusPending   AckStatus = "pending"
	AckStatusConfirmed AckStatus = "confirmed"
)

// CanMarkPaid reports whether a run may transition to paid. The run's own
// status and its acknowledgement are eventually-consistent duplicates of the
// same fact; either signal suffices.
func CanMarkPaid(runStatus RunStatus, ackStatus *AckStatus) bool {
	if runStatus == RunStatusConfirmed {
		return true
	}
	return ackStatus != nil && *ackStatus == AckStatusConfirmed
}

// Run - the persisted payroll snapshot for one teacher and one period.
// Identity (TeacherID, PeriodStart) resolves to at most one live run;
// recomputation overwrites totals in place, it never forks a second run.
// ContractType and InsuranceEnrolled are copied from the profile at
// computation time so later profile edits cannot rewrite history.
type Run struct {
	ID                string
	TeacherID         string
	ProfileID         string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	PeriodLabel       string
	ContractType      ContractType
	InsuranceEnrolled bool
	TotalWorkHours    decimal.Decimal
	HourlyTotal       decimal.Decimal
	AllowanceTotal    decimal.Decimal
	BaseSalaryTotal   decimal.Decimal
	GrossPay          decimal.Decimal
	DeductionsTotal   decimal.Decimal
	NetPay            decimal.Decimal
	Status            RunStatus
	MessagePreview    *string
	Meta              RunMeta
	RequestedBy       *string
	RequestedAt       *time.Time
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	TeacherName *string
}

// RunMeta is the structured snapshot stored on the run row for audit and
// display: the week-by-week picture plus the requester's inputs.
type RunMeta struct {
	WeeklySummaries  []WeeklySummary  `json:"weekly_summaries"`
	Adjustments      []Adjustment     `json:"adjustments,omitempty"`
	DeductionDetails []DeductionDetail `json:"deduction_details,omitempty"`
	Note             *string          `json:"note,omitempty"`
}

// ItemKind enum
type ItemKind string

const (
	ItemKindEarning   ItemKind = "earning"
	ItemKindDeduction ItemKind = "deduction"
	ItemKindInfo      ItemKind = "info"
)

// RunItem - one line of a run's breakdown. The full item set is replaced on
// every recomputation of the parent run, never patched.
type RunItem struct {
	ID         string
	RunID      string
	Kind       ItemKind
	Label      string
	Amount     decimal.Decimal
	Metadata   map[string]interface{}
	OrderIndex int
	CreatedAt  time.Time
}

// Acknowledgement - the worker-side confirmation record, one-to-one with a
// run. Re-requesting confirmation resets Status to pending and ConfirmedAt
// to nil; the free-text note survives unless explicitly replaced.
type Acknowledgement struct {
	ID          string
	RunID       string
	Status      AckStatus
	RequestedAt time.Time
	ConfirmedAt *time.Time
	Note        *string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WeeklySummary - one Monday-start week clipped to the payroll period.
// The ineligibility reasons are part of the contract, not cosmetic: the
// worker-facing view must show exactly which condition failed.
type WeeklySummary struct {
	WeekStart          string          `json:"week_start"`
	WeekEnd            string          `json:"week_end"`
	TotalWorkHours     decimal.Decimal `json:"total_work_hours"`
	Eligible           bool            `json:"eligible_for_weekly_holiday_allowance"`
	AllowanceHours     decimal.Decimal `json:"weekly_holiday_allowance_hours"`
	ContainsTardy      bool            `json:"contains_tardy"`
	ContainsAbsence    bool            `json:"contains_absence"`
	ContainsSubstitute bool            `json:"contains_substitute"`
	IneligibleReasons  []string        `json:"ineligible_reasons,omitempty"`
}

// Breakdown - the computed wage calculation for one teacher and one period.
// Derived, never persisted standalone; runs snapshot its totals.
type Breakdown struct {
	TotalWorkHours   decimal.Decimal
	HourlyTotal      decimal.Decimal
	AllowanceHours   decimal.Decimal
	AllowanceTotal   decimal.Decimal
	BaseSalaryTotal  decimal.Decimal
	GrossPay         decimal.Decimal
	DeductionsTotal  decimal.Decimal
	NetPay           decimal.Decimal
	WeeklySummaries  []WeeklySummary
	Adjustments      []Adjustment
	DeductionDetails []DeductionDetail
}
