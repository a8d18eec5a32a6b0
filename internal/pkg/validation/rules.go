package validation

import (
	"regexp"
	"unicode/utf8"
)

// Validation rule values
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	PasswordMinLength = 8

	NameMinLength = 2
	NameMaxLength = 100

	CGPAMin = 0.0
	CGPAMax = 10.0
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// StringValidation checks a string against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new required string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length in characters
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// RangeValidation checks a float against an inclusive range
type RangeValidation struct {
	Value float64
	Min   float64
	Max   float64
}

// NewRangeValidation creates an inclusive range check
func NewRangeValidation(value, min, max float64) *RangeValidation {
	return &RangeValidation{Value: value, Min: min, Max: max}
}

// Validate performs validation
func (v *RangeValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}

// IsValidEmail checks a normalized email address
func IsValidEmail(email string) bool {
	return NewStringValidation(email).WithMaxLength(254).WithPattern(CompiledPatterns.Email).Validate()
}

// IsValidCGPA checks the grade point average scale
func IsValidCGPA(cgpa float64) bool {
	return NewRangeValidation(cgpa, CGPAMin, CGPAMax).Validate()
}
