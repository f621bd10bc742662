package worklog

import "errors"

var (
	ErrEntryNotFound         = errors.New("work log entry not found")
	ErrNotExternalSubstitute = errors.New("work log entry is not an external substitute")
	ErrInvalidPayStatus      = errors.New("invalid external pay status")
)
