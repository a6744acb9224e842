package model

import (
	"time"

	"gorm.io/gorm"
)

// Option letters are fixed; CorrectOption is always one of these.
const (
	OptionLetterA = "A"
	OptionLetterB = "B"
	OptionLetterC = "C"
	OptionLetterD = "D"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	Text          string         `json:"question" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	CorrectOption string         `json:"correct_option" gorm:"size:1;not null"`
	Marks         int            `json:"marks" gorm:"not null"`
	OrderIndex    int            `json:"order_index" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Option is one (letter, text) pair of a question in presentation order.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Options returns the four answer choices in their fixed A-D order,
// so callers never index option columns by letter dynamically.
func (q Question) Options() []Option {
	return []Option{
		{Letter: OptionLetterA, Text: q.OptionA},
		{Letter: OptionLetterB, Text: q.OptionB},
		{Letter: OptionLetterC, Text: q.OptionC},
		{Letter: OptionLetterD, Text: q.OptionD},
	}
}
