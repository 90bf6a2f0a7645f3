package models

// Interview mirrors the interview service's representation. Owned by the
// interview service; this backend only reads it.
type Interview struct {
	InterviewID       int                `json:"interviewId"`
	CandidateEmail    string             `json:"candidateEmail"`
	Position          string             `json:"position"`
	Mode              string             `json:"mode"`
	InterviewDate     string             `json:"interviewDate"`
	Status            string             `json:"status"`
	FeedbackTemplates []FeedbackTemplate `json:"feedbackTemplates"`
}

// FeedbackTemplate carries a JSON-encoded template definition. The string is
// parsed per page load and malformed templates are dropped, never repaired.
type FeedbackTemplate struct {
	ID       int    `json:"id"`
	Template string `json:"template"`
}

// StatusFeedbackSubmitted is the literal the interview service expects after
// feedback has been filed for an interview.
const StatusFeedbackSubmitted = "COMPLETED_COMPLETED"
