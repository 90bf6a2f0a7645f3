package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is one interviewer's submitted feedback for an interview. The
// feedback_data keys follow the "<templateId>_<fieldName>" convention the
// dashboard uses when flattening its per-template form state.
type Feedback struct {
	FeedbackID  uint   `json:"feedbackId" gorm:"primaryKey"`
	ReferenceID string `json:"referenceId" gorm:"unique;not null"`

	InterviewID   int `json:"interviewId" gorm:"not null;index" validate:"required"`
	InterviewerID int `json:"interviewerId" gorm:"index"`

	Recommendation string                 `json:"recommendation" gorm:"not null"`
	FeedbackData   map[string]interface{} `json:"feedbackData" gorm:"serializer:json"`

	// StatusSynced records whether the follow-up interview status update
	// succeeded. Feedback stays committed either way; a false value means
	// "feedback saved, status pending" and the sync can be retried alone.
	StatusSynced bool `json:"statusSynced" gorm:"default:false"`

	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	// Using uuid v7 to be indexable with B-tree
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	f.ReferenceID = uuidV7.String()

	if f.SubmittedAt.IsZero() {
		f.SubmittedAt = time.Now()
	}

	return
}

func GetFeedbackByID(db *gorm.DB, id uint) (*Feedback, error) {
	var feedback Feedback
	result := db.Where("feedback_id = ?", id).First(&feedback)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("feedback not found")
		}
		return nil, result.Error
	}
	return &feedback, nil
}

// GetFeedbackByInterviewID returns all feedback submitted for an interview,
// oldest first so the earliest record stays canonical for the edit form.
func GetFeedbackByInterviewID(db *gorm.DB, interviewID int) ([]Feedback, error) {
	var feedback []Feedback
	result := db.Where("interview_id = ?", interviewID).
		Order("submitted_at asc").
		Find(&feedback)
	if result.Error != nil {
		return nil, result.Error
	}
	return feedback, nil
}
