package service

import (
	"testing"

	"github.com/learnhub-edu/learnhub-api/internal/model"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
)

func TestGetTestDetailsOrdersQuestionsAndWithholdsAnswers(t *testing.T) {
	db := newTestDB(t)

	topic := model.Topic{Name: "Algebra", Slug: "algebra", OrderIndex: 1}
	subject := model.Subject{Name: "Mathematics", Slug: "mathematics", Topics: []model.Topic{topic}}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	test := model.Test{TopicID: subject.Topics[0].ID, Title: "Linear Equations", TotalMarks: 3}
	if err := db.Create(&test).Error; err != nil {
		t.Fatalf("seed test: %v", err)
	}
	// Inserted with order indexes reversed relative to creation order.
	questions := []model.Question{
		{TestID: test.ID, Text: "second", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "B", Marks: 1, OrderIndex: 2},
		{TestID: test.ID, Text: "first", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "D", Marks: 2, OrderIndex: 1},
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}

	svc := NewTestService(repository.NewTestRepository(db))
	detail, err := svc.GetTestDetails(test.ID)
	if err != nil {
		t.Fatalf("GetTestDetails: %v", err)
	}
	if detail.Title != "Linear Equations" || detail.TotalMarks != 3 {
		t.Errorf("test detail = %q / %d marks", detail.Title, detail.TotalMarks)
	}
	if len(detail.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(detail.Questions))
	}
	if detail.Questions[0].Text != "first" || detail.Questions[1].Text != "second" {
		t.Errorf("questions not in order_index order: %q then %q",
			detail.Questions[0].Text, detail.Questions[1].Text)
	}
	for _, q := range detail.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
	}
}

func TestGetTestDetailsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTestService(repository.NewTestRepository(db))
	if _, err := svc.GetTestDetails(404); err == nil {
		t.Error("unknown test resolved, want error")
	}
}
