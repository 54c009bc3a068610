package validator

import (
	"slices"
	"strings"
)

// Validator collects input errors keyed by field name.
type Validator struct {
	Errors map[string][]string
}

func New() *Validator {
	return &Validator{
		Errors: map[string][]string{},
	}
}

func (v *Validator) AddError(field, message string) {
	if v.Errors == nil {
		v.Errors = make(map[string][]string)
	}
	v.Errors[field] = append(v.Errors[field], message)
}

// Check adds the error only when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *Validator) First(field string) string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages[0]
	}
	return ""
}

func (v *Validator) Fields() []string {
	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

func (v *Validator) Error() string {
	if !v.HasErrors() {
		return ""
	}

	var sb strings.Builder
	for i, field := range v.Fields() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(v.Errors[field], ", "))
	}
	return sb.String()
}

func (v *Validator) AsError() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
