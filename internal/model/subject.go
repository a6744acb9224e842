package model

import (
	"time"

	"gorm.io/gorm"
)

type Subject struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"` // "Physics", "Chemistry", "Mathematics"
	Slug        string         `json:"slug" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Topics      []Topic        `json:"topics,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
