package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	TopicID     uint           `json:"topic_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	TotalMarks  int            `json:"total_marks" gorm:"not null"` // authored denominator, independent of per-question marks
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
