package feedback

import (
	"fmt"
	"strconv"
	"time"

	"talenthub-backend/internal/models"
)

// InterviewFeedback is the insights-page view of one feedback record: raw
// data categorized into sections, ratings aggregated, recommendation mapped
// to its display label. Rebuilt from the stored record on every fetch.
type InterviewFeedback struct {
	ID                  string    `json:"id"`
	InterviewerID       string    `json:"interviewerId"`
	Interviewer         string    `json:"interviewer"`
	Role                string    `json:"role"`
	Date                time.Time `json:"date"`
	Duration            string    `json:"duration"`
	OverallRating       float64   `json:"overallRating"`
	Status              string    `json:"status"`
	FeedbackSections    []Section `json:"feedbackSections"`
	FinalRecommendation string    `json:"finalRecommendation"`
	PrivateNotes        string    `json:"privateNotes"`
}

// BuildInterviewFeedback runs the one-way transform chain
// raw record -> categorized -> sections -> display model.
func BuildInterviewFeedback(record models.Feedback) InterviewFeedback {
	sections := TransformSections(Categorize(record.FeedbackData))

	return InterviewFeedback{
		ID:                  strconv.FormatUint(uint64(record.FeedbackID), 10),
		InterviewerID:       strconv.Itoa(record.InterviewerID),
		Interviewer:         fmt.Sprintf("Interviewer %d", record.InterviewerID),
		Role:                "Technical Evaluator",
		Date:                record.SubmittedAt,
		Duration:            "45 minutes",
		OverallRating:       OverallRating(sections),
		Status:              "COMPLETED",
		FeedbackSections:    sections,
		FinalRecommendation: ReviewRecommendation(record.Recommendation).Label(),
		PrivateNotes:        "Private notes about candidate performance and potential team fit.",
	}
}

// BuildInterviewFeedbackList transforms a full feedback list for an
// interview, preserving record order.
func BuildInterviewFeedbackList(records []models.Feedback) []InterviewFeedback {
	out := make([]InterviewFeedback, 0, len(records))
	for _, r := range records {
		out = append(out, BuildInterviewFeedback(r))
	}
	return out
}
