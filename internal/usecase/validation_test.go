package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldErrors(errs []ValidationError) map[string]string {
	m := map[string]string{}
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestValidateCreateLeadInput_Valid(t *testing.T) {
	assert.Empty(t, ValidateCreateLeadInput(validCreateInput()))
}

func TestValidateCreateLeadInput_MissingRequired(t *testing.T) {
	errs := fieldErrors(ValidateCreateLeadInput(CreateLeadInput{}))

	for _, field := range []string{"first_name", "last_name", "email", "phone", "country", "treatment_type", "source"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateCreateLeadInput_NoFormatRules(t *testing.T) {
	// Presence only: odd-looking contact values pass through untouched.
	input := validCreateInput()
	input.Email = "not-an-email"
	input.Phone = "555"
	input.FirstName = strings.Repeat("a", 500)

	assert.Empty(t, ValidateCreateLeadInput(input))
}

func TestValidateCreateLeadInput_PreferredDate(t *testing.T) {
	input := validCreateInput()
	input.PreferredDate = "2026-02-30-bogus"
	errs := fieldErrors(ValidateCreateLeadInput(input))
	assert.Contains(t, errs, "preferred_date")

	input.PreferredDate = "2026-03-15"
	assert.Empty(t, ValidateCreateLeadInput(input))
}
