package errors

import (
	"fmt"
	"strings"
)

// ValidationError collects field problems in the order they were found
type ValidationError struct {
	order  []string
	Fields map[string][]string `json:"fields"`
}

func (v *ValidationError) Error() string {
	if len(v.order) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(v.order))
	for i, field := range v.order {
		parts[i] = field + ": " + strings.Join(v.Fields[field], ", ")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) add(field, message string) {
	if _, seen := v.Fields[field]; !seen {
		v.order = append(v.order, field)
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// ValidationBuilder accumulates field problems and builds one InvalidArgument
type ValidationBuilder struct {
	err *ValidationError
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: &ValidationError{Fields: make(map[string][]string)}}
}

// Field records a problem with a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.add(field, message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when nothing was recorded. Otherwise the error is
// InvalidArgument with the per-field messages under MetaValidation.
func (vb *ValidationBuilder) Build() error {
	if len(vb.err.order) == 0 {
		return nil
	}
	return InvalidArgument(vb.err.Error()).WithMeta(MetaValidation, vb.err.Fields)
}

// ItemField names a field of the i-th statblock item, e.g. "items[2].name"
func ItemField(i int, name string) string {
	return fmt.Sprintf("items[%d].%s", i, name)
}

// ValidateRequired flags a blank string
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange flags a value outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum flags a value missing from allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
