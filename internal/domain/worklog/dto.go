package worklog

import (
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ExternalLedgerEntryResponse struct {
	ID          string           `json:"id"`
	TeacherID   string           `json:"teacher_id"`
	TeacherName string           `json:"teacher_name,omitempty"`
	WorkDate    string           `json:"work_date"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
	PayStatus   string           `json:"pay_status"`
}

type UpdateExternalPayStatusRequest struct {
	ID        string `json:"-"`
	PayStatus string `json:"pay_status"`
}

func (r *UpdateExternalPayStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayStatus != string(ExternalPayPending) && r.PayStatus != string(ExternalPayCompleted) {
		errs = append(errs, validator.ValidationError{Field: "pay_status", Message: "must be 'pending' or 'completed'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
