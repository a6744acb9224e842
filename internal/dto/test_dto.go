package dto

import "github.com/learnhub-edu/learnhub-api/internal/model"

// QuestionDTO is a question as shown to a test-taker: the correct
// option is withheld until the attempt has been submitted.
type QuestionDTO struct {
	ID         uint           `json:"id"`
	Text       string         `json:"question"`
	Options    []model.Option `json:"options"`
	Marks      int            `json:"marks"`
	OrderIndex int            `json:"order_index"`
}

// TestDetailDTO is the full test a user starts an attempt against,
// questions in canonical order_index order.
type TestDetailDTO struct {
	ID          uint          `json:"id"`
	TopicID     uint          `json:"topic_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	TotalMarks  int           `json:"total_marks"`
	Questions   []QuestionDTO `json:"questions"`
}
