package dto

import (
	"time"

	"github.com/learnhub-edu/learnhub-api/internal/scoring"
)

// AttemptSubmitDTO carries the full answer map of one submission.
// The identity, if any, comes from the bearer token, never the body.
type AttemptSubmitDTO struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

// AttemptResultDTO is the submitted view: summary score plus the
// per-question correctness review.
type AttemptResultDTO struct {
	TestID     uint                     `json:"test_id"`
	TestTitle  string                   `json:"test_title,omitempty"`
	Score      int                      `json:"score"`
	TotalMarks int                      `json:"total_marks"`
	Message    string                   `json:"message"`
	Review     []scoring.QuestionReview `json:"review"`
}

// AttemptSummaryDTO is one row of a user's score history.
type AttemptSummaryDTO struct {
	ID          uint      `json:"id"`
	TestID      uint      `json:"test_id"`
	TestTitle   string    `json:"test_title,omitempty"`
	Score       int       `json:"score"`
	TotalMarks  int       `json:"total_marks"`
	CompletedAt time.Time `json:"completed_at"`
}
