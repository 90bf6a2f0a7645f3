package feedback

import (
	"fmt"
	"regexp"
	"strings"
)

// GeneralSection buckets feedback keys that carry no numeric section prefix.
const GeneralSection = "general"

var sectionKeyPattern = regexp.MustCompile(`^(\d+)_(.+)$`)

// FieldKey is the decoded form of a raw feedback-data key. Keys follow a soft
// "<sectionNumber>_<fieldName>" convention; anything else is an unprefixed
// field that belongs to the general section.
type FieldKey struct {
	Section  string
	Field    string
	Numbered bool
}

// ParseFieldKey decodes a raw key. It is total: keys that don't match the
// numbered convention keep their full text as the field name under "general".
func ParseFieldKey(key string) FieldKey {
	if m := sectionKeyPattern.FindStringSubmatch(key); m != nil {
		return FieldKey{Section: m[1], Field: m[2], Numbered: true}
	}
	return FieldKey{Section: GeneralSection, Field: key}
}

// FlattenFormData converts the dashboard's nested per-template edit map into
// the flat "<templateId>_<fieldName>" wire format.
func FlattenFormData(nested map[string]map[string]interface{}) map[string]interface{} {
	flat := make(map[string]interface{})
	for templateID, fields := range nested {
		for fieldName, value := range fields {
			flat[fmt.Sprintf("%s_%s", templateID, fieldName)] = value
		}
	}
	return flat
}

// ExpandFormData reverses FlattenFormData. The split is anchored at the FIRST
// underscore so field names containing underscores survive the round trip.
// Keys without an underscore cannot be attributed to a template and are
// skipped.
func ExpandFormData(flat map[string]interface{}) map[string]map[string]interface{} {
	nested := make(map[string]map[string]interface{})
	for key, value := range flat {
		parts := strings.SplitN(key, "_", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		templateID, fieldName := parts[0], parts[1]
		if nested[templateID] == nil {
			nested[templateID] = make(map[string]interface{})
		}
		nested[templateID][fieldName] = value
	}
	return nested
}
