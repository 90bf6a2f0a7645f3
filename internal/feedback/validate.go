package feedback

import (
	"fmt"
	"strings"
)

// ValidateSubmission checks flat feedback data against the parsed templates
// and returns every violation at once; the caller surfaces them as a single
// aggregated error list rather than field-by-field.
func ValidateSubmission(templates []Template, data map[string]interface{}) []string {
	var errs []string

	for _, tmpl := range templates {
		for _, field := range tmpl.Fields {
			value := data[fmt.Sprintf("%d_%s", tmpl.ID, field.Name)]

			if field.Validation == nil {
				continue
			}

			if field.Validation.Required {
				switch field.Type {
				case FieldTypeDropdown:
					if s, _ := value.(string); s == "" {
						errs = append(errs, fmt.Sprintf("Please select a %s", strings.ToLower(field.Label)))
					}
				case FieldTypeMultiselect:
					if selections, _ := value.([]interface{}); len(selections) == 0 {
						errs = append(errs, fmt.Sprintf("%s is required", field.Label))
					}
				default:
					if isEmptyValue(value) {
						errs = append(errs, fmt.Sprintf("%s is required", field.Label))
					}
				}
			}

			if field.Validation.MinLength > 0 {
				if s, ok := value.(string); ok && len(s) < field.Validation.MinLength {
					errs = append(errs, fmt.Sprintf("%s must be at least %d characters", field.Label, field.Validation.MinLength))
				}
			}
		}
	}

	return errs
}

// isEmptyValue mirrors the dashboard's truthiness check: nil, empty string,
// false and zero all count as missing.
func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case []interface{}:
		return len(v) == 0
	}
	return false
}
