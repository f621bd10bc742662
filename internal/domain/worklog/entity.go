package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum for a single work-log entry (one teacher, one calendar date).
type Status string

const (
	StatusWork       Status = "work"
	StatusTardy      Status = "tardy"
	StatusAbsence    Status = "absence"
	StatusSubstitute Status = "substitute"
	StatusDayOff     Status = "day_off"
)

// RequiresWorkHours reports whether the status carries worked hours.
// Absences and day-offs contribute no hours to payroll.
func RequiresWorkHours(s Status) bool {
	switch s {
	case StatusWork, StatusTardy, StatusSubstitute:
		return true
	default:
		return false
	}
}

// SubstituteType enum, present only when Status is substitute.
type SubstituteType string

const (
	SubstituteInternal SubstituteType = "internal"
	SubstituteExternal SubstituteType = "external"
)

// ExternalPayStatus tracks payment of an externally sourced substitute.
// Its lifecycle is independent of the covered teacher's payroll run.
type ExternalPayStatus string

const (
	ExternalPayPending   ExternalPayStatus = "pending"
	ExternalPayCompleted ExternalPayStatus = "completed"
)

// ReviewStatus enum
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Entry - one teacher's attendance record for one calendar date.
// Only entries with ReviewStatus approved are ever aggregated into payroll.
type Entry struct {
	ID                       string
	TeacherID                string
	WorkDate                 time.Time
	Status                   Status
	WorkHours                *decimal.Decimal
	SubstituteType           *SubstituteType
	ExternalTeacherHours     *decimal.Decimal
	ExternalTeacherPayStatus *ExternalPayStatus
	ReviewStatus             ReviewStatus
	ReviewedBy               *string
	ReviewedAt               *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time

	// Joined fields
	TeacherName *string
}
