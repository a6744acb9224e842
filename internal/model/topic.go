package model

import (
	"time"

	"gorm.io/gorm"
)

type Topic struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	Subject     Subject        `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Name        string         `json:"name" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	OrderIndex  int            `json:"order_index" gorm:"not null"`
	Videos      []Video        `json:"videos,omitempty" gorm:"foreignKey:TopicID"`
	Tests       []Test         `json:"tests,omitempty" gorm:"foreignKey:TopicID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
