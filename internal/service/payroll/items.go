package payroll

import (
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// BuildRunItems renders a breakdown into the ordered line items stored with
// a run. The order is fixed: hourly wages, weekly holiday allowance, base
// salary, earning adjustments, deduction details, deduction adjustments, and
// a trailing info line carrying the week-by-week snapshot.
func BuildRunItems(b payroll.Breakdown) []payroll.RunItem {
	var items []payroll.RunItem

	items = append(items, payroll.RunItem{
		Kind:   payroll.ItemKindEarning,
		Label:  "Hourly wages",
		Amount: b.HourlyTotal,
		Metadata: map[string]interface{}{
			"total_work_hours": b.TotalWorkHours.String(),
		},
	})

	if b.AllowanceTotal.IsPositive() {
		items = append(items, payroll.RunItem{
			Kind:   payroll.ItemKindEarning,
			Label:  "Weekly holiday allowance",
			Amount: b.AllowanceTotal,
			Metadata: map[string]interface{}{
				"allowance_hours": b.AllowanceHours.String(),
			},
		})
	}

	if b.BaseSalaryTotal.IsPositive() {
		items = append(items, payroll.RunItem{
			Kind:   payroll.ItemKindEarning,
			Label:  "Base salary",
			Amount: b.BaseSalaryTotal,
		})
	}

	for _, adj := range b.Adjustments {
		if adj.IsDeduction {
			continue
		}
		items = append(items, payroll.RunItem{
			Kind:     payroll.ItemKindEarning,
			Label:    adj.Label,
			Amount:   adj.Amount,
			Metadata: map[string]interface{}{"source": "adjustment"},
		})
	}

	for _, d := range b.DeductionDetails {
		items = append(items, payroll.RunItem{
			Kind:     payroll.ItemKindDeduction,
			Label:    d.Label,
			Amount:   d.Amount,
			Metadata: map[string]interface{}{"source": "deduction_detail"},
		})
	}

	for _, adj := range b.Adjustments {
		if !adj.IsDeduction {
			continue
		}
		items = append(items, payroll.RunItem{
			Kind:     payroll.ItemKindDeduction,
			Label:    adj.Label,
			Amount:   adj.Amount,
			Metadata: map[string]interface{}{"source": "adjustment"},
		})
	}

	weeks := make([]interface{}, 0, len(b.WeeklySummaries))
	for _, s := range b.WeeklySummaries {
		weeks = append(weeks, map[string]interface{}{
			"week_start":         s.WeekStart,
			"week_end":           s.WeekEnd,
			"total_work_hours":   s.TotalWorkHours.String(),
			"eligible":           s.Eligible,
			"allowance_hours":    s.AllowanceHours.String(),
			"ineligible_reasons": s.IneligibleReasons,
		})
	}
	items = append(items, payroll.RunItem{
		Kind:   payroll.ItemKindInfo,
		Label:  "Weekly summary",
		Amount: decimal.Zero,
		Metadata: map[string]interface{}{
			"weekly_summaries": weeks,
			"total_work_hours": b.TotalWorkHours.String(),
			"allowance_hours":  b.AllowanceHours.String(),
		},
	})

	for i := range items {
		items[i].OrderIndex = i
	}

	return items
}
