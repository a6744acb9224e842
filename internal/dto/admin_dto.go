package dto

// SubjectCreateDTO is for admin to add a subject to the catalog.
type SubjectCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

// TopicCreateDTO is for admin to add a topic under a subject.
type TopicCreateDTO struct {
	SubjectID   uint   `json:"subject_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" binding:"required,min=1"`
}

// VideoCreateDTO is for admin to attach a video lecture to a topic.
type VideoCreateDTO struct {
	TopicID     uint   `json:"topic_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	YouTubeURL  string `json:"youtube_url" binding:"required,url"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" binding:"required,min=1"`
}

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	Text          string `json:"question" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required,oneof=A B C D"`
	Marks         int    `json:"marks" binding:"min=0"`
	OrderIndex    int    `json:"order_index" binding:"required,min=1"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
type TestCreateDTO struct {
	TopicID     uint                `json:"topic_id" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	TotalMarks  int                 `json:"total_marks" binding:"required,gt=0"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
