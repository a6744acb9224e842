package dto

import "time"

// SubjectSummaryDTO lists a subject on the subjects index.
type SubjectSummaryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	TopicCount  int    `json:"topic_count"`
}

// TopicSummaryDTO lists a topic within its subject.
type TopicSummaryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"order_index"`
}

// SubjectDetailDTO is a subject with its ordered topics.
type SubjectDetailDTO struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description,omitempty"`
	Topics      []TopicSummaryDTO `json:"topics"`
}

// VideoDTO is a video lecture with its computed embed URL.
type VideoDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	YouTubeURL  string `json:"youtube_url"`
	EmbedURL    string `json:"embed_url,omitempty"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"order_index"`
}

// TopicDetailDTO is a topic with its parent subject, ordered videos
// and the practice tests attached to it.
type TopicDetailDTO struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description,omitempty"`
	Subject     SubjectSummaryDTO `json:"subject"`
	Videos      []VideoDTO        `json:"videos"`
	Tests       []TestSummaryDTO  `json:"tests"`
}

// TestSummaryDTO lists a test, enriched with its topic and subject names.
type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TotalMarks    int       `json:"total_marks"`
	QuestionCount int       `json:"question_count"`
	TopicName     string    `json:"topic_name,omitempty"`
	SubjectName   string    `json:"subject_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
