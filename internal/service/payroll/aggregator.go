package payroll

import (
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// Minimum worked hours inside a week before the weekly holiday allowance
// applies (Labor Standards Act short-time threshold).
var allowanceThresholdHours = decimal.NewFromInt(15)

const (
	reasonBelowThreshold  = "total work hours below 15"
	reasonContainsTardy   = "week contains a tardy"
	reasonContainsAbsence = "week contains an absence"
)

const dateLayout = "2006-01-02"

// BuildWeeklySummaries buckets approved entries into Monday-start weeks
// clipped to the period and judges allowance eligibility per week. A week is
// judged only from the days visible inside the period; a boundary week never
// pulls hours from the adjacent month.
//
// Hours come from the teacher's own WorkHours field. External substitute
// hours belong to the external ledger and never count here. Substitute days
// are flagged for display but do not veto the allowance.
func BuildWeeklySummaries(p period.Period, entries []worklog.Entry, allowancePerWeek decimal.Decimal) []payroll.WeeklySummary {
	spans := period.PartitionWeeks(p)
	summaries := make([]payroll.WeeklySummary, 0, len(spans))

	for _, span := range spans {
		summary := payroll.WeeklySummary{
			WeekStart:      span.Start.Format(dateLayout),
			WeekEnd:        span.End.Format(dateLayout),
			TotalWorkHours: decimal.Zero,
			AllowanceHours: decimal.Zero,
		}

		for _, e := range entries {
			// Work dates scan from the database as midnight UTC; rebuild
			// the calendar day in the period's zone before the span check.
			day := time.Date(e.WorkDate.Year(), e.WorkDate.Month(), e.WorkDate.Day(), 0, 0, 0, 0, span.Start.Location())
			if !span.Contains(day) {
				continue
			}

			switch e.Status {
			case worklog.StatusTardy:
				summary.ContainsTardy = true
			case worklog.StatusAbsence:
				summary.ContainsAbsence = true
			case worklog.StatusSubstitute:
				summary.ContainsSubstitute = true
			}

			if worklog.RequiresWorkHours(e.Status) && e.WorkHours != nil {
				summary.TotalWorkHours = summary.TotalWorkHours.Add(*e.WorkHours)
			}
		}

		if summary.TotalWorkHours.LessThan(allowanceThresholdHours) {
			summary.IneligibleReasons = append(summary.IneligibleReasons, reasonBelowThreshold)
		}
		if summary.ContainsTardy {
			summary.IneligibleReasons = append(summary.IneligibleReasons, reasonContainsTardy)
		}
		if summary.ContainsAbsence {
			summary.IneligibleReasons = append(summary.IneligibleReasons, reasonContainsAbsence)
		}

		if len(summary.IneligibleReasons) == 0 {
			summary.Eligible = true
			summary.AllowanceHours = allowancePerWeek
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
