// Package validation is the single shared validation module used by both the
// HTTP binding layer and the usecases.
package validation

import (
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
)

// Categories a job may be posted under.
var JobCategories = []string{
	"plumbing",
	"electrical",
	"carpentry",
	"painting",
	"cleaning",
	"landscaping",
	"moving",
	"appliance_repair",
	"hvac",
	"other",
}

var (
	// Allow letters, spaces, and common name punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("job_category", JobCategory)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// JobCategory validates the category against the known set
func JobCategory(fl validator.FieldLevel) bool {
	return IsJobCategory(fl.Field().String())
}

// IsJobCategory reports whether s is a known job category
func IsJobCategory(s string) bool {
	return slices.Contains(JobCategories, s)
}

// ValidBudget checks the budget window: both bounds positive and min <= max.
// Called from the job usecase before any write.
func ValidBudget(min, max float64) bool {
	return min > 0 && max > 0 && min <= max
}
