package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"talenthub-backend/internal/common"
	"talenthub-backend/internal/config"
	"talenthub-backend/internal/feedback"
	"talenthub-backend/internal/interviews"
	"talenthub-backend/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Parsed template sets are cached briefly; templates are immutable for the
// lifetime of an interview so staleness is not a concern.
const templateCacheTTL = 10 * time.Minute

type FeedbackHandler struct {
	common.ServerState
}

func NewFeedbackHandler(db *gorm.DB, cfg *config.Config, jwt common.JWTIssuer, redis *redis.Client, interviewAPI common.InterviewAPI) *FeedbackHandler {
	return &FeedbackHandler{
		ServerState: common.ServerState{
			DB:         db,
			Config:     cfg,
			JwtIssuer:  jwt,
			Redis:      redis,
			Interviews: interviewAPI,
		},
	}
}

type CreateFeedbackRequest struct {
	InterviewID    int                    `json:"interviewId" validate:"required"`
	InterviewerID  int                    `json:"interviewerId" validate:"required"`
	Recommendation string                 `json:"recommendation" validate:"required"`
	FeedbackData   map[string]interface{} `json:"feedbackData"`
}

type UpdateFeedbackRequest struct {
	Recommendation string                 `json:"recommendation" validate:"required"`
	FeedbackData   map[string]interface{} `json:"feedbackData"`
}

type feedbackResponse struct {
	*models.Feedback
	// StatusSyncError reports the partial-success case: the feedback write is
	// committed, only the follow-up interview status update failed.
	StatusSyncError string `json:"statusSyncError,omitempty"`
}

// FeedbackFormResponse bootstraps the feedback form: the interview, its
// usable templates, and any existing feedback expanded back into the nested
// per-template edit map.
type FeedbackFormResponse struct {
	Interview      *models.Interview                 `json:"interview"`
	Templates      []feedback.Template               `json:"templates"`
	Mode           string                            `json:"mode"`
	FeedbackID     *uint                             `json:"feedbackId,omitempty"`
	Recommendation string                            `json:"recommendation,omitempty"`
	FormData       map[string]map[string]interface{} `json:"formData"`
}

// CreateFeedback validates a submission against the interview's templates,
// persists it, then pushes the interview status update as a second,
// independent call. A failed status call never rolls back the committed
// feedback write; it is reported separately and can be retried alone.
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	req := new(CreateFeedbackRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !feedback.SubmissionRecommendation(req.Recommendation).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown recommendation %q", req.Recommendation))
	}

	interview, err := h.fetchInterview(c, req.InterviewID)
	if err != nil {
		return err
	}

	templates := h.parsedTemplatesFor(c, interview)
	if validationErrs := feedback.ValidateSubmission(templates, req.FeedbackData); len(validationErrs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Validation failed",
			"errors":  validationErrs,
		})
	}

	record := models.Feedback{
		InterviewID:    req.InterviewID,
		InterviewerID:  req.InterviewerID,
		Recommendation: req.Recommendation,
		FeedbackData:   req.FeedbackData,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		c.Logger().Errorf("Failed to create feedback: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create feedback")
	}

	syncErr := h.syncInterviewStatus(c, &record)

	return c.JSON(http.StatusCreated, feedbackResponse{Feedback: &record, StatusSyncError: syncErr})
}

// UpdateFeedback replaces an existing record's recommendation and data, then
// re-runs the status update call just like a fresh submission.
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	id, err := parseIDParam(c, "feedbackId")
	if err != nil {
		return err
	}

	req := new(UpdateFeedbackRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !feedback.SubmissionRecommendation(req.Recommendation).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown recommendation %q", req.Recommendation))
	}

	record, err := models.GetFeedbackByID(h.DB, uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Feedback not found")
	}

	interview, err := h.fetchInterview(c, record.InterviewID)
	if err != nil {
		return err
	}

	templates := h.parsedTemplatesFor(c, interview)
	if validationErrs := feedback.ValidateSubmission(templates, req.FeedbackData); len(validationErrs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Validation failed",
			"errors":  validationErrs,
		})
	}

	record.Recommendation = req.Recommendation
	record.FeedbackData = req.FeedbackData
	if err := h.DB.Save(record).Error; err != nil {
		c.Logger().Errorf("Failed to update feedback %d: %v", record.FeedbackID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update feedback")
	}

	syncErr := h.syncInterviewStatus(c, record)

	return c.JSON(http.StatusOK, feedbackResponse{Feedback: record, StatusSyncError: syncErr})
}

// GetFeedbackForInterview returns the raw stored records for an interview.
func (h *FeedbackHandler) GetFeedbackForInterview(c echo.Context) error {
	interviewID, err := parseIDParam(c, "interviewId")
	if err != nil {
		return err
	}

	records, err := models.GetFeedbackByInterviewID(h.DB, interviewID)
	if err != nil {
		c.Logger().Errorf("Failed to fetch feedback for interview %d: %v", interviewID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch feedback")
	}

	return c.JSON(http.StatusOK, records)
}

// GetInterviewInsights runs the read-path transform over every stored record
// for an interview: categorized sections, derived ratings, mapped
// recommendation labels.
func (h *FeedbackHandler) GetInterviewInsights(c echo.Context) error {
	interviewID, err := parseIDParam(c, "interviewId")
	if err != nil {
		return err
	}

	records, err := models.GetFeedbackByInterviewID(h.DB, interviewID)
	if err != nil {
		c.Logger().Errorf("Failed to fetch feedback for interview %d: %v", interviewID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch feedback")
	}

	return c.JSON(http.StatusOK, feedback.BuildInterviewFeedbackList(records))
}

// GetFeedbackForm bootstraps the submission form for an interview. When
// feedback already exists, the first record is canonical and the form opens
// in update mode with its data expanded back into per-template field maps.
func (h *FeedbackHandler) GetFeedbackForm(c echo.Context) error {
	interviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	interview, err := h.fetchInterview(c, interviewID)
	if err != nil {
		return err
	}

	resp := FeedbackFormResponse{
		Interview: interview,
		Templates: h.parsedTemplatesFor(c, interview),
		Mode:      "create",
		FormData:  map[string]map[string]interface{}{},
	}

	records, err := models.GetFeedbackByInterviewID(h.DB, interviewID)
	if err != nil {
		c.Logger().Errorf("Failed to fetch existing feedback for interview %d: %v", interviewID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch existing feedback")
	}

	if len(records) > 0 {
		existing := records[0]
		resp.Mode = "update"
		resp.FeedbackID = &existing.FeedbackID
		resp.Recommendation = existing.Recommendation
		resp.FormData = feedback.ExpandFormData(existing.FeedbackData)
	}

	return c.JSON(http.StatusOK, resp)
}

// SyncFeedbackStatus retries just the second step of the submit sequence for
// a record whose interview status update previously failed.
func (h *FeedbackHandler) SyncFeedbackStatus(c echo.Context) error {
	id, err := parseIDParam(c, "feedbackId")
	if err != nil {
		return err
	}

	record, err := models.GetFeedbackByID(h.DB, uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Feedback not found")
	}

	if syncErr := h.syncInterviewStatus(c, record); syncErr != "" {
		return echo.NewHTTPError(http.StatusBadGateway, syncErr)
	}

	return c.JSON(http.StatusOK, record)
}

func (h *FeedbackHandler) fetchInterview(c echo.Context, interviewID int) (*models.Interview, error) {
	interview, err := h.Interviews.GetInterview(c.Request().Context(), interviewID)
	if err != nil {
		if errors.Is(err, interviews.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Interview not found")
		}
		c.Logger().Errorf("Failed to fetch interview %d: %v", interviewID, err)
		CaptureError(err)
		return nil, echo.NewHTTPError(http.StatusBadGateway, "Interview service unavailable")
	}
	return interview, nil
}

// parsedTemplatesFor returns the usable templates for an interview, reading
// through the optional Redis cache.
func (h *FeedbackHandler) parsedTemplatesFor(c echo.Context, interview *models.Interview) []feedback.Template {
	ctx := c.Request().Context()
	key := fmt.Sprintf("feedback:templates:%d", interview.InterviewID)

	if h.Redis != nil {
		if raw, err := h.Redis.Get(ctx, key).Result(); err == nil {
			var cached []feedback.Template
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached
			}
			c.Logger().Warnf("Discarding unreadable template cache entry %s", key)
		}
	}

	templates := feedback.ParseTemplates(interview.FeedbackTemplates, c.Logger())

	if h.Redis != nil {
		if data, err := json.Marshal(templates); err == nil {
			if err := h.Redis.Set(ctx, key, data, templateCacheTTL).Err(); err != nil {
				c.Logger().Warnf("Failed to cache templates for interview %d: %v", interview.InterviewID, err)
			}
		}
	}

	return templates
}

// syncInterviewStatus performs the follow-up status update and records the
// outcome on the feedback row. Returns a message for the partial-success
// case, empty on success.
func (h *FeedbackHandler) syncInterviewStatus(c echo.Context, record *models.Feedback) string {
	err := h.Interviews.UpdateStatus(c.Request().Context(), record.InterviewID, models.StatusFeedbackSubmitted)

	record.StatusSynced = err == nil
	if dbErr := h.DB.Model(record).Update("status_synced", record.StatusSynced).Error; dbErr != nil {
		c.Logger().Errorf("Failed to record status sync state for feedback %d: %v", record.FeedbackID, dbErr)
	}

	if err != nil {
		c.Logger().Errorf("Feedback %d saved but interview status update failed: %v", record.FeedbackID, err)
		CaptureError(err)
		return "Feedback saved but interview status update failed. Please retry the status sync."
	}
	return ""
}

func parseIDParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
	}
	return id, nil
}
