package usecase

import (
	"fmt"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateLeadInput only enforces presence. Contact fields are free
// strings: the intake form sends whatever the staff typed, and format rules
// live in the form, not here.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if strings.TrimSpace(input.Country) == "" {
		errors = append(errors, ValidationError{"country", "is required"})
	}

	if strings.TrimSpace(input.TreatmentType) == "" {
		errors = append(errors, ValidationError{"treatment_type", "is required"})
	}

	if strings.TrimSpace(input.Source) == "" {
		errors = append(errors, ValidationError{"source", "is required"})
	}

	// Optional field, but when present it must at least parse as a date.
	if input.PreferredDate != "" && !isValidDate(input.PreferredDate) {
		errors = append(errors, ValidationError{"preferred_date", "must be a valid date (YYYY-MM-DD)"})
	}

	return errors
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}

	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}

	return false
}
