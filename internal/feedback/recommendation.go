package feedback

// Two recommendation vocabularies coexist here and are intentionally NOT
// unified: the read path's stored records use the five-value
// ReviewRecommendation, while the submission form writes the three-value
// SubmissionRecommendation. Reconciling them is a product decision, not a
// code cleanup.

// ReviewRecommendation is the enum stored on feedback records and surfaced
// by the insights read path.
type ReviewRecommendation string

const (
	StrongProceed ReviewRecommendation = "STRONG_PROCEED"
	Proceed       ReviewRecommendation = "PROCEED"
	Borderline    ReviewRecommendation = "BORDERLINE"
	Reject        ReviewRecommendation = "REJECT"
	StrongReject  ReviewRecommendation = "STRONG_REJECT"
)

// Label maps a coded recommendation to its display string. Total: unknown
// values map to "No Decision".
func (r ReviewRecommendation) Label() string {
	switch r {
	case StrongProceed:
		return "Strong Hire"
	case Proceed:
		return "Hire"
	case Borderline:
		return "Hire - with another technical round"
	case Reject:
		return "No Hire"
	case StrongReject:
		return "Strong No Hire"
	default:
		return "No Decision"
	}
}

// SubmissionRecommendation is the vocabulary the feedback submission form
// writes. Only PROCEED overlaps with the review vocabulary.
type SubmissionRecommendation string

const (
	SubmitProceed SubmissionRecommendation = "PROCEED"
	SubmitHold    SubmissionRecommendation = "HOLD"
	SubmitReject  SubmissionRecommendation = "REJECT"
)

func (r SubmissionRecommendation) Valid() bool {
	switch r {
	case SubmitProceed, SubmitHold, SubmitReject:
		return true
	}
	return false
}
