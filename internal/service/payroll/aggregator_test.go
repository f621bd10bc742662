package payroll

import (
	"testing"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, token string) period.Period {
	t.Helper()
	p, err := period.Resolve(token, time.UTC)
	require.NoError(t, err)
	return p
}

func entry(day time.Time, status worklog.Status, hours string) worklog.Entry {
	e := worklog.Entry{WorkDate: day, Status: status, ReviewStatus: worklog.ReviewApproved}
	if hours != "" {
		h := decimal.RequireFromString(hours)
		e.WorkHours = &h
	}
	return e
}

func TestBuildWeeklySummaries_EligibleWeek(t *testing.T) {
	p := mustPeriod(t, "2026-08")
	allowance := decimal.NewFromInt(8)

	// Week of Aug 3-9: four work days totalling exactly 15 hours.
	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "4"),
		entry(time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "4"),
		entry(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "4"),
		entry(time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "3"),
	}

	summaries := BuildWeeklySummaries(p, entries, allowance)
	require.Len(t, summaries, 6)

	week := summaries[1]
	assert.Equal(t, "2026-08-03", week.WeekStart)
	assert.Equal(t, "2026-08-09", week.WeekEnd)
	assert.True(t, week.TotalWorkHours.Equal(decimal.NewFromInt(15)))
	assert.True(t, week.Eligible)
	assert.True(t, week.AllowanceHours.Equal(allowance))
	assert.Empty(t, week.IneligibleReasons)
}

func TestBuildWeeklySummaries_BelowThreshold(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "14.9"),
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	week := summaries[1]
	assert.False(t, week.Eligible)
	assert.True(t, week.AllowanceHours.IsZero())
	assert.Contains(t, week.IneligibleReasons, "total work hours below 15")
}

func TestBuildWeeklySummaries_TardyVetoes(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	// Plenty of hours, but one tardy day. Tardy hours still count toward
	// the weekly total; only the allowance is lost.
	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "10"),
		entry(time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), worklog.StatusTardy, "6"),
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	week := summaries[1]
	assert.True(t, week.TotalWorkHours.Equal(decimal.NewFromInt(16)))
	assert.True(t, week.ContainsTardy)
	assert.False(t, week.Eligible)
	assert.Equal(t, []string{"week contains a tardy"}, week.IneligibleReasons)
}

func TestBuildWeeklySummaries_AbsenceVetoes(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "20"),
		entry(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), worklog.StatusAbsence, ""),
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	week := summaries[1]
	assert.True(t, week.ContainsAbsence)
	assert.False(t, week.Eligible)
	assert.Equal(t, []string{"week contains an absence"}, week.IneligibleReasons)
}

func TestBuildWeeklySummaries_SubstituteDoesNotVeto(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "12"),
		entry(time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), worklog.StatusSubstitute, "4"),
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	week := summaries[1]
	assert.True(t, week.ContainsSubstitute)
	assert.True(t, week.TotalWorkHours.Equal(decimal.NewFromInt(16)))
	assert.True(t, week.Eligible)
}

func TestBuildWeeklySummaries_ExternalHoursExcluded(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	// External substitute day: the teacher themselves worked no hours that
	// day, the external person's hours live on a separate field and must
	// not leak into the teacher's total.
	external := worklog.SubstituteExternal
	extHours := decimal.NewFromInt(5)
	e := entry(time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), worklog.StatusSubstitute, "")
	e.SubstituteType = &external
	e.ExternalTeacherHours = &extHours

	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "10"),
		e,
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	week := summaries[1]
	assert.True(t, week.TotalWorkHours.Equal(decimal.NewFromInt(10)))
	assert.True(t, week.ContainsSubstitute)
}

func TestBuildWeeklySummaries_DayOffContributesNothing(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), worklog.StatusDayOff, ""),
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	week := summaries[1]
	assert.True(t, week.TotalWorkHours.IsZero())
	assert.False(t, week.ContainsAbsence)
	assert.False(t, week.Eligible)
}

func TestBuildWeeklySummaries_BoundaryWeekJudgedFromVisibleDaysOnly(t *testing.T) {
	p := mustPeriod(t, "2026-08")

	// Aug 1-2 are the tail of a week that started in July. Only the two
	// visible days count for that span.
	entries := []worklog.Entry{
		entry(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "8"),
		entry(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), worklog.StatusWork, "8"),
	}

	summaries := BuildWeeklySummaries(p, entries, decimal.NewFromInt(8))
	first := summaries[0]
	assert.Equal(t, "2026-08-01", first.WeekStart)
	assert.Equal(t, "2026-08-02", first.WeekEnd)
	assert.True(t, first.TotalWorkHours.Equal(decimal.NewFromInt(16)))
	assert.True(t, first.Eligible)
}
