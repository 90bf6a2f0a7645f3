package feedback

// Categorize groups a flat feedback-data map into sections keyed by the
// numeric prefix of each key, with unprefixed keys under "general". It is
// total: every key lands in exactly one section and nothing fails. If two raw
// keys normalize to the same (section, field) pair the later map entry wins;
// the backend enforces key uniqueness so this is an accepted
// last-write-wins policy rather than a validated error.
func Categorize(data map[string]interface{}) map[string]map[string]interface{} {
	categorized := make(map[string]map[string]interface{})

	for key, value := range data {
		fk := ParseFieldKey(key)
		if categorized[fk.Section] == nil {
			categorized[fk.Section] = make(map[string]interface{})
		}
		categorized[fk.Section][fk.Field] = value
	}

	return categorized
}
