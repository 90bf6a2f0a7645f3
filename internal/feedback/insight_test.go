package feedback

import (
	"testing"
	"time"

	"talenthub-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInterviewFeedback(t *testing.T) {
	submitted := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	record := models.Feedback{
		FeedbackID:     42,
		InterviewerID:  7,
		Recommendation: "BORDERLINE",
		FeedbackData: map[string]interface{}{
			"1_technicalSkill": "8",
			"1_comments":       "Strong coder",
		},
		SubmittedAt: submitted,
	}

	view := BuildInterviewFeedback(record)

	assert.Equal(t, "42", view.ID)
	assert.Equal(t, "7", view.InterviewerID)
	assert.Equal(t, "Interviewer 7", view.Interviewer)
	assert.Equal(t, "Technical Evaluator", view.Role)
	assert.Equal(t, submitted, view.Date)
	assert.Equal(t, "45 minutes", view.Duration)
	assert.Equal(t, "COMPLETED", view.Status)
	assert.Equal(t, "Hire - with another technical round", view.FinalRecommendation)

	require.Len(t, view.FeedbackSections, 1)
	assert.Equal(t, "Technical Skills", view.FeedbackSections[0].Title)
	assert.InDelta(t, 4.0, view.OverallRating, 0.001)
}

func TestBuildInterviewFeedback_EmptyData(t *testing.T) {
	view := BuildInterviewFeedback(models.Feedback{FeedbackID: 1, Recommendation: "PROCEED"})

	require.Len(t, view.FeedbackSections, 1)
	assert.Equal(t, "Overall Assessment", view.FeedbackSections[0].Title)
	assert.InDelta(t, 3.5, view.OverallRating, 0.001)
	assert.Equal(t, "Hire", view.FinalRecommendation)
}

func TestBuildInterviewFeedbackList_PreservesOrder(t *testing.T) {
	views := BuildInterviewFeedbackList([]models.Feedback{
		{FeedbackID: 3, Recommendation: "REJECT"},
		{FeedbackID: 1, Recommendation: "PROCEED"},
	})

	require.Len(t, views, 2)
	assert.Equal(t, "3", views[0].ID)
	assert.Equal(t, "1", views[1].ID)
	assert.Equal(t, "No Hire", views[0].FinalRecommendation)
}

func TestBuildInterviewFeedbackList_Empty(t *testing.T) {
	views := BuildInterviewFeedbackList(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
