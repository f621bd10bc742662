package period

import (
	"fmt"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/validator"
)

// Period is a half-open calendar interval [Start, End) in the
// organization-local time zone. For a monthly payroll period Start is the
// first day of the month and End is the first day of the following month.
type Period struct {
	Start time.Time
	End   time.Time
	Label string // "2026-08"
}

// Display returns a human-readable label, e.g. "August 2026".
func (p Period) Display() string {
	return p.Start.Format("January 2006")
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.Start) && date.Before(p.End)
}

// Resolve turns a "YYYY-MM" month token into a monthly Period in loc.
// An empty token means the current month.
func Resolve(token string, loc *time.Location) (Period, error) {
	if token == "" {
		now := time.Now().In(loc)
		return monthOf(now.Year(), now.Month(), loc), nil
	}

	if !validator.IsValidMonthToken(token) {
		return Period{}, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	parsed, err := time.ParseInLocation("2006-01", token, loc)
	if err != nil {
		return Period{}, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	return monthOf(parsed.Year(), parsed.Month(), loc), nil
}

func monthOf(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: fmt.Sprintf("%04d-%02d", year, int(month)),
	}
}

// WeekSpan is one Monday-start calendar week clipped to a payroll period.
// Start and End are inclusive dates; a week straddling a period boundary
// only covers its days inside the period.
type WeekSpan struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date (at local midnight) falls inside the span.
func (w WeekSpan) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// PartitionWeeks splits a period into Monday-start weeks that intersect it,
// clipping the first and last weeks to the period bounds. Weeks are judged
// from the days visible inside the period only: a week split across two
// payroll periods is evaluated independently in each.
func PartitionWeeks(p Period) []WeekSpan {
	lastDay := p.End.AddDate(0, 0, -1)

	var spans []WeekSpan
	for monday := mondayOf(p.Start); !monday.After(lastDay); monday = monday.AddDate(0, 0, 7) {
		span := WeekSpan{Start: monday, End: monday.AddDate(0, 0, 6)}
		if span.Start.Before(p.Start) {
			span.Start = p.Start
		}
		if span.End.After(lastDay) {
			span.End = lastDay
		}
		spans = append(spans, span)
	}

	return spans
}

func mondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return date.AddDate(0, 0, -offset)
}
