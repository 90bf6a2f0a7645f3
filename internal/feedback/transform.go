package feedback

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"talenthub-backend/internal/utils"
)

type StrengthsWeaknesses struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Section is the display model for one categorized group of feedback fields.
// Derived and recomputed on every read, never persisted.
type Section struct {
	Title               string              `json:"title"`
	Rating              float64             `json:"rating"`
	Notes               string              `json:"notes"`
	StrengthsWeaknesses StrengthsWeaknesses `json:"strengthsWeaknesses"`
}

// Domain-specific section names for the numbered prefixes templates use.
var sectionTitles = map[string]string{
	"1":            "Technical Skills",
	"2":            "Communication & Collaboration",
	"3":            "Cultural Fit & Experience",
	"4":            "Leadership & Management",
	"5":            "Domain Knowledge",
	GeneralSection: "General Assessment",
}

var booleanNamePattern = regexp.MustCompile(`(?i)(flag|is|has|can|should|would|does)`)

type fieldKind int

const (
	kindDropped fieldKind = iota
	kindRating
	kindBoolean
	kindText
)

type classifiedValue struct {
	Kind   fieldKind
	Rating float64
	Bool   bool
	Text   string
}

// valueClassifier decides what kind of field a raw value represents.
// Persisted feedback carries no per-field type metadata, so the read path has
// to infer it; the interface isolates that shim so it can be dropped once
// records carry the template's field types end-to-end.
type valueClassifier interface {
	Classify(fieldName string, value interface{}) classifiedValue
}

// legacyClassifier infers field types from untyped values. Priority order:
// numeric wins over boolean wins over text, so the string "7" is always a
// rating even when the field name looks boolean.
type legacyClassifier struct{}

func (legacyClassifier) Classify(fieldName string, value interface{}) classifiedValue {
	if n, ok := numericValue(value); ok {
		return classifiedValue{Kind: kindRating, Rating: n}
	}
	if isBooleanValue(fieldName, value) {
		return classifiedValue{Kind: kindBoolean, Bool: value == true || value == "true"}
	}
	if s, ok := value.(string); ok && len(s) > 0 {
		return classifiedValue{Kind: kindText, Text: s}
	}
	return classifiedValue{Kind: kindDropped}
}

func numericValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isBooleanValue(fieldName string, value interface{}) bool {
	if _, ok := value.(bool); ok {
		return true
	}
	if value == "true" || value == "false" {
		return true
	}
	return booleanNamePattern.MatchString(fieldName)
}

// TransformSections turns categorized feedback data into display sections.
// Sections come out numerically ordered with "general" last; fields are
// processed in name order so notes and strengths render stably.
func TransformSections(categorized map[string]map[string]interface{}) []Section {
	classifier := legacyClassifier{}
	sections := make([]Section, 0, len(categorized))

	for _, sectionKey := range sortedSectionKeys(categorized) {
		sections = append(sections, buildSection(sectionKey, categorized[sectionKey], classifier))
	}

	// A record with no usable data still needs something to show.
	if len(sections) == 0 {
		sections = append(sections, Section{
			Title:  "Overall Assessment",
			Rating: 3.5,
			Notes:  "General assessment of candidate suitability for the role.",
			StrengthsWeaknesses: StrengthsWeaknesses{
				Strengths:  []string{"Demonstrated relevant skills"},
				Weaknesses: []string{"Areas for improvement"},
			},
		})
	}

	return sections
}

func buildSection(sectionKey string, fields map[string]interface{}, classifier valueClassifier) Section {
	ratingFields := make(map[string]float64)
	booleanFields := make(map[string]bool)
	textFields := make(map[string]string)

	for fieldName, value := range fields {
		cv := classifier.Classify(fieldName, value)
		switch cv.Kind {
		case kindRating:
			ratingFields[fieldName] = cv.Rating
		case kindBoolean:
			booleanFields[fieldName] = cv.Bool
		case kindText:
			textFields[fieldName] = cv.Text
		}
	}

	title := sectionTitles[sectionKey]
	if title == "" {
		title = utils.HumanizeSectionName(sectionKey)
	}

	avgRating := 3.0
	if len(ratingFields) > 0 {
		sum := 0.0
		for _, v := range ratingFields {
			sum += v
		}
		avgRating = sum / float64(len(ratingFields))
	}

	noteParts := make([]string, 0, len(textFields))
	for _, name := range sortedKeys(textFields) {
		noteParts = append(noteParts, fmt.Sprintf("%s: %s", utils.HumanizeFieldName(name), textFields[name]))
	}
	notes := strings.Join(noteParts, ". ")
	if notes == "" {
		notes = fmt.Sprintf("Assessment of candidate's %s capabilities.", strings.ToLower(title))
	}

	strengths := make([]string, 0)
	weaknesses := make([]string, 0)
	// Ratings in (5,7) are a deliberate dead zone: neither a strength nor a
	// weakness.
	for _, name := range sortedKeys(ratingFields) {
		switch v := ratingFields[name]; {
		case v >= 7:
			strengths = append(strengths, utils.HumanizeFieldName(name))
		case v <= 5:
			weaknesses = append(weaknesses, utils.HumanizeFieldName(name))
		}
	}
	for _, name := range sortedKeys(booleanFields) {
		if booleanFields[name] {
			strengths = append(strengths, utils.HumanizeFieldName(name))
		} else {
			weaknesses = append(weaknesses, fmt.Sprintf("Needs improvement in %s", strings.ToLower(utils.HumanizeFieldName(name))))
		}
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Demonstrated competency in this area")
	}
	if len(weaknesses) == 0 && avgRating < 7 {
		weaknesses = append(weaknesses, "Could improve in this area")
	}

	return Section{
		Title: title,
		// Raw ratings are assumed to be on the template's 0-10 slider scale
		// and halved for 0-5 display. The assumption is unverified upstream;
		// do not "fix" without confirming the producing service's range.
		Rating: avgRating / 2,
		Notes:  notes,
		StrengthsWeaknesses: StrengthsWeaknesses{
			Strengths:  strengths,
			Weaknesses: weaknesses,
		},
	}
}

// OverallRating is the mean of section ratings, defaulting to 3.5 when there
// are no sections at all.
func OverallRating(sections []Section) float64 {
	if len(sections) == 0 {
		return 3.5
	}
	sum := 0.0
	for _, s := range sections {
		sum += s.Rating
	}
	return sum / float64(len(sections))
}

// sortedSectionKeys orders numeric sections ascending, then any other keys
// alphabetically, with "general" always last.
func sortedSectionKeys(categorized map[string]map[string]interface{}) []string {
	keys := make([]string, 0, len(categorized))
	for k := range categorized {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a == GeneralSection {
			return false
		}
		if b == GeneralSection {
			return true
		}
		an, aErr := strconv.Atoi(a)
		bn, bErr := strconv.Atoi(b)
		switch {
		case aErr == nil && bErr == nil:
			return an < bn
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return a < b
		}
	})
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
