package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMonthToken(t *testing.T) {
	t.Parallel()

	valid := []string{"2026-01", "2026-12", "1999-06"}
	for _, token := range valid {
		assert.True(t, IsValidMonthToken(token), token)
	}

	invalid := []string{"", "2026-13", "2026-00", "2026-1", "26-01", "2026/01", "2026-01-15"}
	for _, token := range invalid {
		assert.False(t, IsValidMonthToken(token), token)
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2026-08-31")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("not-a-date")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "is required"},
		{Field: "teacher_id", Message: "must be a valid UUID"},
	}

	assert.Equal(t, "month: is required; teacher_id: must be a valid UUID", errs.Error())
	assert.Equal(t, map[string]string{
		"month":      "is required",
		"teacher_id": "must be a valid UUID",
	}, errs.ToMap())
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("0192aef3-1c44-7ab8-9f10-3c5a2e9b0d71"))
	assert.True(t, IsValidUUID("0192AEF3-1C44-7AB8-9F10-3C5A2E9B0D71"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}
