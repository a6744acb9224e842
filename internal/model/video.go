package model

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

type Video struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	TopicID     uint           `json:"topic_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	YouTubeURL  string         `json:"youtube_url" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	OrderIndex  int            `json:"order_index" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Matches the video id in the common YouTube URL shapes (watch?v=, youtu.be/, embed/).
var youtubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// EmbedURL converts the stored YouTube URL into an embeddable player URL.
// Returns the empty string when no 11-character video id can be extracted.
func (v Video) EmbedURL() string {
	m := youtubeIDPattern.FindStringSubmatch(v.YouTubeURL)
	if m == nil || len(m[2]) != 11 {
		return ""
	}
	return "https://www.youtube.com/embed/" + m[2]
}
