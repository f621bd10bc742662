package worklog

import "context"

// Service is the External Substitute Ledger surface: a parallel pay-status
// tracker for externally sourced substitute hours, fully decoupled from the
// covered teacher's payroll run.
type Service interface {
	ListExternalLedger(ctx context.Context, month string) ([]ExternalLedgerEntryResponse, error)
	UpdateExternalPayStatus(ctx context.Context, req UpdateExternalPayStatusRequest) (ExternalLedgerEntryResponse, error)
}
