package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is the persisted record of one completed test submission.
// Rows are append-only: created exactly once at submission time and
// never updated or deleted afterwards.
type Attempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	TestID      uint           `json:"test_id" gorm:"not null;index"`
	Test        Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Score       int            `json:"score" gorm:"not null"`
	TotalMarks  int            `json:"total_marks" gorm:"not null"`
	Answers     string         `json:"answers" gorm:"type:jsonb;not null"` // AnswerMap persisted as an opaque blob
	CompletedAt time.Time      `json:"completed_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
