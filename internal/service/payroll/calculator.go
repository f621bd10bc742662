package payroll

import (
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ComputeBreakdown folds the weekly summaries, the profile's pay terms and
// the manager-entered lines into one wage calculation.
//
// Monetary rounding happens exactly once per component, at the component
// total. Week-level hour sums stay unrounded so a month of fractional hours
// cannot drift by per-week rounding.
func ComputeBreakdown(profile payroll.Profile, summaries []payroll.WeeklySummary, adjustments []payroll.Adjustment, deductionDetails []payroll.DeductionDetail) payroll.Breakdown {
	totalHours := decimal.Zero
	allowanceHours := decimal.Zero
	for _, s := range summaries {
		totalHours = totalHours.Add(s.TotalWorkHours)
		if s.Eligible {
			allowanceHours = allowanceHours.Add(s.AllowanceHours)
		}
	}

	hourlyTotal := totalHours.Mul(profile.HourlyRate).Round(0)
	allowanceTotal := allowanceHours.Mul(profile.HourlyRate).Round(0)

	baseSalaryTotal := decimal.Zero
	if profile.BaseSalaryAmount != nil {
		baseSalaryTotal = *profile.BaseSalaryAmount
	}

	gross := hourlyTotal.Add(allowanceTotal).Add(baseSalaryTotal)
	deductionsTotal := decimal.Zero

	for _, adj := range adjustments {
		if adj.IsDeduction {
			deductionsTotal = deductionsTotal.Add(adj.Amount)
		} else {
			gross = gross.Add(adj.Amount)
		}
	}
	for _, d := range deductionDetails {
		deductionsTotal = deductionsTotal.Add(d.Amount)
	}

	// Net pay may go negative when deductions exceed earnings; it is
	// reported as-is, never clamped.
	return payroll.Breakdown{
		TotalWorkHours:   totalHours,
		HourlyTotal:      hourlyTotal,
		AllowanceHours:   allowanceHours,
		AllowanceTotal:   allowanceTotal,
		BaseSalaryTotal:  baseSalaryTotal,
		GrossPay:         gross,
		DeductionsTotal:  deductionsTotal,
		NetPay:           gross.Sub(deductionsTotal),
		WeeklySummaries:  summaries,
		Adjustments:      adjustments,
		DeductionDetails: deductionDetails,
	}
}
