package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("j+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f2c6e-1234-7abc-8def-0123456789ab"))
	assert.True(t, IsValidUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, IsValidUUID("550e8400e29b41d4a716446655440000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("10-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "rating", Message: "rating must be between 1 and 5"},
	}

	assert.Equal(t, "name: name is required; rating: rating must be between 1 and 5", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "name is required",
		"rating": "rating must be between 1 and 5",
	}, errs.ToMap())
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("peer", []string{"self", "manager", "peer"}))
	assert.False(t, IsInSlice("360", []string{"self", "manager", "peer"}))
}
