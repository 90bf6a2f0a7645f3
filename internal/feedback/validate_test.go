package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationTemplates() []Template {
	return []Template{
		{
			ID:   1,
			Name: "Technical Assessment",
			Fields: []Field{
				{
					Name:       "technicalSkill",
					Label:      "Technical Skill",
					Type:       FieldTypeRating,
					Validation: &ValidationRules{Required: true},
				},
				{
					Name:       "comments",
					Label:      "Comments",
					Type:       FieldTypeTextarea,
					Validation: &ValidationRules{Required: true, MinLength: 10},
				},
				{
					Name:       "seniority",
					Label:      "Seniority Level",
					Type:       FieldTypeDropdown,
					Options:    []string{"Junior", "Mid", "Senior"},
					Validation: &ValidationRules{Required: true},
				},
				{
					Name:       "languages",
					Label:      "Languages",
					Type:       FieldTypeMultiselect,
					Options:    []string{"Go", "Python", "Rust"},
					Validation: &ValidationRules{Required: true},
				},
				{
					Name:  "optionalNote",
					Label: "Optional Note",
					Type:  FieldTypeText,
				},
			},
		},
	}
}

func TestValidateSubmission_AllValid(t *testing.T) {
	errs := ValidateSubmission(validationTemplates(), map[string]interface{}{
		"1_technicalSkill": 8.0,
		"1_comments":       "Strong problem solving skills",
		"1_seniority":      "Senior",
		"1_languages":      []interface{}{"Go"},
	})
	assert.Empty(t, errs)
}

func TestValidateSubmission_AggregatesAllErrors(t *testing.T) {
	errs := ValidateSubmission(validationTemplates(), map[string]interface{}{})

	require.Len(t, errs, 4)
	assert.Contains(t, errs, "Technical Skill is required")
	assert.Contains(t, errs, "Comments is required")
	assert.Contains(t, errs, "Please select a seniority level")
	assert.Contains(t, errs, "Languages is required")
}

func TestValidateSubmission_MinLength(t *testing.T) {
	errs := ValidateSubmission(validationTemplates(), map[string]interface{}{
		"1_technicalSkill": 8.0,
		"1_comments":       "too short",
		"1_seniority":      "Mid",
		"1_languages":      []interface{}{"Python"},
	})

	// "too short" is 9 characters against a minimum of 10.
	require.Len(t, errs, 1)
	assert.Equal(t, "Comments must be at least 10 characters", errs[0])
}

func TestValidateSubmission_EmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"nil", nil},
		{"empty string", ""},
		{"false", false},
		{"zero float", 0.0},
		{"zero int", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSubmission(validationTemplates(), map[string]interface{}{
				"1_technicalSkill": tt.value,
				"1_comments":       "a sufficiently long comment",
				"1_seniority":      "Junior",
				"1_languages":      []interface{}{"Rust"},
			})
			require.Len(t, errs, 1)
			assert.Equal(t, "Technical Skill is required", errs[0])
		})
	}
}

func TestValidateSubmission_MultiselectEmptyList(t *testing.T) {
	errs := ValidateSubmission(validationTemplates(), map[string]interface{}{
		"1_technicalSkill": 7.0,
		"1_comments":       "a sufficiently long comment",
		"1_seniority":      "Senior",
		"1_languages":      []interface{}{},
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Languages is required", errs[0])
}

func TestValidateSubmission_NoTemplates(t *testing.T) {
	assert.Empty(t, ValidateSubmission(nil, map[string]interface{}{"1_anything": "x"}))
}
