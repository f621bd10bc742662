package payroll

import "errors"

var (
	ErrNoActiveProfile = errors.New("no active payroll profile for this period")
	ErrRunNotFound     = errors.New("payroll run not found")
	ErrRunNotConfirmed = errors.New("payroll run is not confirmed by either party, cannot mark paid")
	ErrRunAlreadyPaid  = errors.New("payroll run already paid, cannot modify")
	ErrAckNotFound     = errors.New("payroll acknowledgement not found")
	ErrAckNotPending   = errors.New("payroll acknowledgement is not awaiting confirmation")
)
