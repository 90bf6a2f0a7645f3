package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	capitalLetters = regexp.MustCompile(`([A-Z])`)
	digits         = regexp.MustCompile(`\d+`)
	doubleSpaces   = regexp.MustCompile(`\s+`)
)

// HumanizeFieldName turns a camelCase or snake_case field name into a display
// label, e.g. "technicalSkill" -> "Technical Skill", "code_quality" ->
// "Code quality" stays "Code Quality" only where the source casing says so.
func HumanizeFieldName(name string) string {
	// Add space before capital letters
	s := capitalLetters.ReplaceAllString(name, " $1")
	// Replace underscores with spaces
	s = strings.ReplaceAll(s, "_", " ")
	// Capitalize first letter
	s = capitalizeFirst(s)
	// Cleanup any double spaces
	s = doubleSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// HumanizeSectionName humanizes a raw section key, stripping digits first so
// keys like "7" or "customSection2" degrade to something readable.
func HumanizeSectionName(name string) string {
	return HumanizeFieldName(digits.ReplaceAllString(name, ""))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
