package payroll

import (
	"testing"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunItems_FullOrdering(t *testing.T) {
	b := payroll.Breakdown{
		TotalWorkHours:  decimal.NewFromInt(20),
		HourlyTotal:     decimal.NewFromInt(300000),
		AllowanceHours:  decimal.NewFromInt(8),
		AllowanceTotal:  decimal.NewFromInt(120000),
		BaseSalaryTotal: decimal.NewFromInt(500000),
		Adjustments: []payroll.Adjustment{
			{Label: "Workshop bonus", Amount: decimal.NewFromInt(30000)},
			{Label: "Equipment damage", Amount: decimal.NewFromInt(20000), IsDeduction: true},
		},
		DeductionDetails: []payroll.DeductionDetail{
			{Label: "Employment insurance", Amount: decimal.NewFromInt(5000)},
		},
		WeeklySummaries: []payroll.WeeklySummary{
			{WeekStart: "2026-08-03", WeekEnd: "2026-08-09", TotalWorkHours: decimal.NewFromInt(20), Eligible: true},
		},
	}

	items := BuildRunItems(b)
	require.Len(t, items, 7)

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
		assert.Equal(t, i, item.OrderIndex)
	}

	assert.Equal(t, []string{
		"Hourly wages",
		"Weekly holiday allowance",
		"Base salary",
		"Workshop bonus",
		"Employment insurance",
		"Equipment damage",
		"Weekly summary",
	}, labels)

	assert.Equal(t, payroll.ItemKindEarning, items[0].Kind)
	assert.Equal(t, payroll.ItemKindEarning, items[3].Kind)
	assert.Equal(t, payroll.ItemKindDeduction, items[4].Kind)
	assert.Equal(t, payroll.ItemKindDeduction, items[5].Kind)
	assert.Equal(t, payroll.ItemKindInfo, items[6].Kind)
}

func TestBuildRunItems_OptionalLinesOmitted(t *testing.T) {
	b := payroll.Breakdown{
		TotalWorkHours: decimal.NewFromInt(5),
		HourlyTotal:    decimal.NewFromInt(50000),
	}

	items := BuildRunItems(b)
	require.Len(t, items, 2)
	assert.Equal(t, "Hourly wages", items[0].Label)
	assert.Equal(t, "Weekly summary", items[1].Label)
}

func TestBuildRunItems_InfoLineCarriesWeeklySnapshot(t *testing.T) {
	b := payroll.Breakdown{
		TotalWorkHours: decimal.NewFromInt(16),
		HourlyTotal:    decimal.NewFromInt(160000),
		WeeklySummaries: []payroll.WeeklySummary{
			{WeekStart: "2026-08-03", WeekEnd: "2026-08-09", TotalWorkHours: decimal.NewFromInt(16), IneligibleReasons: []string{"week contains a tardy"}},
		},
	}

	items := BuildRunItems(b)
	info := items[len(items)-1]
	assert.Equal(t, payroll.ItemKindInfo, info.Kind)
	assert.True(t, info.Amount.IsZero())

	weeks, ok := info.Metadata["weekly_summaries"].([]interface{})
	require.True(t, ok)
	require.Len(t, weeks, 1)
	week := weeks[0].(map[string]interface{})
	assert.Equal(t, "2026-08-03", week["week_start"])
}
