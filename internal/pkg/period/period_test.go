package period

import (
	"testing"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func TestResolve_MonthToken(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	p, err := Resolve("2026-08", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, loc), p.Start)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, loc), p.End)
	assert.Equal(t, "2026-08", p.Label)
	assert.Equal(t, "August 2026", p.Display())
}

func TestResolve_DecemberRollsIntoNextYear(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	p, err := Resolve("2025-12", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, loc), p.End)
}

func TestResolve_EmptyTokenIsCurrentMonth(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	p, err := Resolve("", loc)
	require.NoError(t, err)

	now := time.Now().In(loc)
	assert.Equal(t, now.Year(), p.Start.Year())
	assert.Equal(t, now.Month(), p.Start.Month())
	assert.Equal(t, 1, p.Start.Day())
}

func TestResolve_MalformedToken(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	for _, token := range []string{"2026-13", "2026/08", "202608", "aug-2026"} {
		_, err := Resolve(token, loc)
		require.Error(t, err, token)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "month", verrs[0].Field)
	}
}

func TestPeriod_Contains_HalfOpen(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	p, err := Resolve("2026-08", loc)
	require.NoError(t, err)

	assert.True(t, p.Contains(time.Date(2026, time.August, 1, 0, 0, 0, 0, loc)))
	assert.True(t, p.Contains(time.Date(2026, time.August, 31, 0, 0, 0, 0, loc)))
	assert.False(t, p.Contains(time.Date(2026, time.September, 1, 0, 0, 0, 0, loc)))
	assert.False(t, p.Contains(time.Date(2026, time.July, 31, 0, 0, 0, 0, loc)))
}

func TestPartitionWeeks_ClipsFirstAndLastWeek(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	// August 2026 starts on a Saturday and ends on a Monday.
	p, err := Resolve("2026-08", loc)
	require.NoError(t, err)

	spans := PartitionWeeks(p)
	require.Len(t, spans, 6)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, loc), spans[0].Start)
	assert.Equal(t, time.Date(2026, time.August, 2, 0, 0, 0, 0, loc), spans[0].End)

	assert.Equal(t, time.Date(2026, time.August, 3, 0, 0, 0, 0, loc), spans[1].Start)
	assert.Equal(t, time.Date(2026, time.August, 9, 0, 0, 0, 0, loc), spans[1].End)

	last := spans[len(spans)-1]
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, loc), last.Start)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, loc), last.End)
}

func TestPartitionWeeks_MonthStartingOnMonday(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	// June 2026 starts on a Monday.
	p, err := Resolve("2026-06", loc)
	require.NoError(t, err)

	spans := PartitionWeeks(p)
	require.Len(t, spans, 5)

	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, loc), spans[0].Start)
	assert.Equal(t, time.Date(2026, time.June, 7, 0, 0, 0, 0, loc), spans[0].End)
	assert.Equal(t, time.Date(2026, time.June, 29, 0, 0, 0, 0, loc), spans[4].Start)
	assert.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, loc), spans[4].End)
}

func TestPartitionWeeks_SingleDayLeadingWeek(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	// February 2026 starts on a Sunday: the first clipped week is one day.
	p, err := Resolve("2026-02", loc)
	require.NoError(t, err)

	spans := PartitionWeeks(p)
	require.NotEmpty(t, spans)
	assert.True(t, spans[0].Start.Equal(spans[0].End))
	assert.Equal(t, time.Sunday, spans[0].Start.Weekday())
}

func TestWeekSpan_Contains(t *testing.T) {
	t.Parallel()
	loc := seoul(t)

	span := WeekSpan{
		Start: time.Date(2026, time.August, 3, 0, 0, 0, 0, loc),
		End:   time.Date(2026, time.August, 9, 0, 0, 0, 0, loc),
	}

	assert.True(t, span.Contains(time.Date(2026, time.August, 3, 0, 0, 0, 0, loc)))
	assert.True(t, span.Contains(time.Date(2026, time.August, 9, 0, 0, 0, 0, loc)))
	assert.False(t, span.Contains(time.Date(2026, time.August, 10, 0, 0, 0, 0, loc)))
	assert.False(t, span.Contains(time.Date(2026, time.August, 2, 0, 0, 0, 0, loc)))
}
