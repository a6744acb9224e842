package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Subject{},
		&model.Topic{},
		&model.Video{},
		&model.Test{},
		&model.Question{},
		&model.Attempt{},
		&model.User{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// captureNotifier records notifications for assertions.
type captureNotifier struct {
	titles   []string
	messages []string
}

func (n *captureNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

// seedTest creates a subject/topic/test hierarchy with two questions:
// marks 2 and 3, correct options A and C, authored total of 5 marks.
func seedTest(t *testing.T, db *gorm.DB) *model.Test {
	t.Helper()
	subject := model.Subject{Name: "Physics", Slug: "physics", Description: "Laws of nature"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	topic := model.Topic{SubjectID: subject.ID, Name: "Kinematics", Slug: "kinematics", OrderIndex: 1}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	test := model.Test{
		TopicID:     topic.ID,
		Title:       "Kinematics Basics",
		Description: "Motion in one dimension",
		TotalMarks:  5,
		Questions: []model.Question{
			{
				Text:    "What is the SI unit of velocity?",
				OptionA: "m/s", OptionB: "m", OptionC: "s", OptionD: "m/s^2",
				CorrectOption: "A", Marks: 2, OrderIndex: 1,
			},
			{
				Text:    "Which quantity is a vector?",
				OptionA: "Speed", OptionB: "Distance", OptionC: "Displacement", OptionD: "Time",
				CorrectOption: "C", Marks: 3, OrderIndex: 2,
			},
		},
	}
	if err := db.Create(&test).Error; err != nil {
		t.Fatalf("seed test: %v", err)
	}
	return &test
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, PasswordHash: "x", Name: "Student"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}
