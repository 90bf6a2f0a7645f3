package feedback

import (
	"encoding/json"
	"fmt"

	"talenthub-backend/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// Field input types as stored in template definitions.
const (
	FieldTypeText        = "text"
	FieldTypeTextarea    = "textarea"
	FieldTypeRating      = "rating"
	FieldTypeDropdown    = "dropdown"
	FieldTypeMultiselect = "multiselect"
)

type ValidationRules struct {
	Required  bool `json:"required,omitempty"`
	MinLength int  `json:"minLength,omitempty"`
}

type Field struct {
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Icon        string           `json:"icon,omitempty"`
	Type        string           `json:"type"`
	Placeholder string           `json:"placeholder,omitempty"`
	Validation  *ValidationRules `json:"validation,omitempty"`
	// Options feed dropdown/multiselect rendering; expected non-empty for
	// dropdowns but not enforced here.
	Options []string `json:"options,omitempty"`
}

// Template is one parsed feedback template. Parsed once per request from the
// JSON string embedded in the interview record and never persisted.
type Template struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// ParseTemplate decodes a raw template string of the shape
// {"feedbackTemplates":[{"name":...,"fields":[...]}]}. It never panics on
// malformed input; callers drop nil results and move on, there is no
// server round-trip to repair a bad template.
func ParseTemplate(id int, raw string) (*Template, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("template %d is not valid JSON", id)
	}

	first := gjson.Get(raw, "feedbackTemplates.0")
	if !first.Exists() {
		return nil, fmt.Errorf("template %d has no feedbackTemplates entry", id)
	}

	var data struct {
		Name   string  `json:"name"`
		Fields []Field `json:"fields"`
	}
	if err := json.Unmarshal([]byte(first.Raw), &data); err != nil {
		return nil, fmt.Errorf("template %d: %w", id, err)
	}

	return &Template{ID: id, Name: data.Name, Fields: data.Fields}, nil
}

// ParseTemplates parses every template attached to an interview, logging and
// skipping malformed ones and any whose field list comes out empty (an empty
// form section is worse than no section).
func ParseTemplates(raw []models.FeedbackTemplate, logger echo.Logger) []Template {
	templates := make([]Template, 0, len(raw))
	for _, ft := range raw {
		if ft.Template == "" {
			continue
		}
		parsed, err := ParseTemplate(ft.ID, ft.Template)
		if err != nil {
			if logger != nil {
				logger.Warnf("Skipping malformed feedback template %d: %v", ft.ID, err)
			}
			DroppedTemplates.Inc()
			continue
		}
		if len(parsed.Fields) == 0 {
			if logger != nil {
				logger.Warnf("Skipping feedback template %d with no fields", ft.ID)
			}
			DroppedTemplates.Inc()
			continue
		}
		templates = append(templates, *parsed)
	}
	return templates
}
