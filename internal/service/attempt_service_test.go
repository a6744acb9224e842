package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/learnhub-edu/learnhub-api/internal/model"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/learnhub-edu/learnhub-api/internal/scoring"
	"gorm.io/gorm"
)

func newAttemptService(db *gorm.DB, notifier Notifier) AttemptService {
	return NewAttemptService(
		repository.NewTestRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAttemptRepository(db),
		notifier,
	)
}

func answersFor(test *model.Test, letters ...string) scoring.AnswerMap {
	answers := scoring.AnswerMap{}
	for i, l := range letters {
		answers[test.Questions[i].ID] = l
	}
	return answers
}

func countAttempts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Attempt{}).Count(&n).Error; err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	return n
}

func TestSubmitScoresPartiallyCorrectAttempt(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db)
	user := seedUser(t, db, "student@example.com")
	notifier := &captureNotifier{}
	svc := newAttemptService(db, notifier)

	result, err := svc.Submit(test.ID, &user.ID, answersFor(test, "A", "B"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 2 {
		t.Errorf("score = %d, want 2", result.Score)
	}
	if result.TotalMarks != 5 {
		t.Errorf("total marks = %d, want 5", result.TotalMarks)
	}
	if result.TestTitle != "Kinematics Basics" {
		t.Errorf("test title = %q", result.TestTitle)
	}
	if want := "You scored 2 out of 5"; result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
	if len(result.Review) != 2 {
		t.Fatalf("review length = %d, want 2", len(result.Review))
	}
	if !result.Review[0].Correct || result.Review[1].Correct {
		t.Errorf("review correctness = (%v, %v), want (true, false)",
			result.Review[0].Correct, result.Review[1].Correct)
	}

	if len(notifier.messages) != 1 || notifier.messages[0] != result.Message {
		t.Errorf("notifier messages = %v", notifier.messages)
	}
	if notifier.titles[0] != "Test Submitted!" {
		t.Errorf("notifier title = %q", notifier.titles[0])
	}
}

func TestSubmitAllCorrect(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db)
	svc := newAttemptService(db, &captureNotifier{})

	result, err := svc.Submit(test.ID, nil, answersFor(test, "A", "C"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 5 {
		t.Errorf("score = %d, want 5", result.Score)
	}
}

func TestSubmitPersistsAttemptOnlyForSignedInUsers(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db)
	user := seedUser(t, db, "student@example.com")
	svc := newAttemptService(db, &captureNotifier{})

	// Anonymous: scored but never persisted.
	if _, err := svc.Submit(test.ID, nil, answersFor(test, "A", "C")); err != nil {
		t.Fatalf("anonymous Submit: %v", err)
	}
	if n := countAttempts(t, db); n != 0 {
		t.Fatalf("anonymous submission persisted %d attempts, want 0", n)
	}

	// Signed in: exactly one record with the full answer blob.
	if _, err := svc.Submit(test.ID, &user.ID, answersFor(test, "A", "B")); err != nil {
		t.Fatalf("authenticated Submit: %v", err)
	}
	if n := countAttempts(t, db); n != 1 {
		t.Fatalf("authenticated submission persisted %d attempts, want 1", n)
	}

	var attempt model.Attempt
	if err := db.First(&attempt).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if attempt.UserID != user.ID || attempt.TestID != test.ID {
		t.Errorf("attempt keys = (user %d, test %d)", attempt.UserID, attempt.TestID)
	}
	if attempt.Score != 2 || attempt.TotalMarks != 5 {
		t.Errorf("attempt score = %d/%d, want 2/5", attempt.Score, attempt.TotalMarks)
	}

	var blob map[string]string
	if err := json.Unmarshal([]byte(attempt.Answers), &blob); err != nil {
		t.Fatalf("answers blob is not valid JSON: %v", err)
	}
	if len(blob) != 2 {
		t.Errorf("answers blob has %d entries, want 2", len(blob))
	}
	if got := blob[fmt.Sprintf("%d", test.Questions[1].ID)]; got != "B" {
		t.Errorf("blob answer for q2 = %q, want B", got)
	}
}

// failingAttemptRepo refuses every write while the read side keeps working.
type failingAttemptRepo struct {
	repository.AttemptRepository
}

func (r *failingAttemptRepo) Create(*model.Attempt) error {
	return errors.New("connection refused")
}

func TestSubmitStillReturnsScoreWhenAttemptWriteFails(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db)
	user := seedUser(t, db, "student@example.com")
	notifier := &captureNotifier{}
	svc := NewAttemptService(
		repository.NewTestRepository(db),
		repository.NewQuestionRepository(db),
		&failingAttemptRepo{repository.NewAttemptRepository(db)},
		notifier,
	)

	result, err := svc.Submit(test.ID, &user.ID, answersFor(test, "A", "C"))
	if err != nil {
		t.Fatalf("Submit surfaced the failed attempt write: %v", err)
	}
	if result.Score != 5 || result.TotalMarks != 5 {
		t.Errorf("score = %d/%d, want 5/5", result.Score, result.TotalMarks)
	}
	if len(result.Review) != 2 {
		t.Errorf("review length = %d, want 2", len(result.Review))
	}
	if len(notifier.messages) != 1 {
		t.Errorf("notifier messages = %v, want exactly one", notifier.messages)
	}
	if n := countAttempts(t, db); n != 0 {
		t.Errorf("failed write still persisted %d attempts", n)
	}
}

func TestSubmitGateRejectsIncompleteAnswerMaps(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db)
	user := seedUser(t, db, "student@example.com")
	notifier := &captureNotifier{}
	svc := newAttemptService(db, notifier)

	partial := scoring.AnswerMap{test.Questions[0].ID: "A"}
	_, err := svc.Submit(test.ID, &user.ID, partial)
	if !errors.Is(err, ErrIncompleteSubmission) {
		t.Fatalf("Submit with partial answers: err = %v, want ErrIncompleteSubmission", err)
	}
	if n := countAttempts(t, db); n != 0 {
		t.Errorf("rejected submission persisted %d attempts", n)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("rejected submission notified: %v", notifier.messages)
	}

	// Completing the map makes the same submission pass.
	partial[test.Questions[1].ID] = "C"
	if _, err := svc.Submit(test.ID, &user.ID, partial); err != nil {
		t.Fatalf("Submit after completing answers: %v", err)
	}
}

func TestSubmitFallsBackWhenTestRecordMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db, &captureNotifier{})

	// Questions exist but their test row does not.
	questions := []model.Question{
		{TestID: 999, Text: "orphan", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "A", Marks: 4, OrderIndex: 1},
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed orphan question: %v", err)
	}

	result, err := svc.Submit(999, nil, scoring.AnswerMap{questions[0].ID: "A"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.TotalMarks != scoring.FallbackTotalMarks {
		t.Errorf("total marks = %d, want fallback %d", result.TotalMarks, scoring.FallbackTotalMarks)
	}
	if result.Score != 4 {
		t.Errorf("score = %d, want 4", result.Score)
	}
}

func TestSubmitRejectsTestWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAttemptService(db, &captureNotifier{})

	_, err := svc.Submit(12345, nil, scoring.AnswerMap{})
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestGetUserAttemptsNewestFirstWithTestTitles(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db)
	user := seedUser(t, db, "student@example.com")
	svc := newAttemptService(db, &captureNotifier{})

	older := model.Attempt{
		UserID: user.ID, TestID: test.ID, Score: 2, TotalMarks: 5,
		Answers: "{}", CompletedAt: time.Now().Add(-time.Hour),
	}
	newer := model.Attempt{
		UserID: user.ID, TestID: test.ID, Score: 5, TotalMarks: 5,
		Answers: "{}", CompletedAt: time.Now(),
	}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("seed older attempt: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("seed newer attempt: %v", err)
	}

	attempts, err := svc.GetUserAttempts(user.ID)
	if err != nil {
		t.Fatalf("GetUserAttempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if attempts[0].Score != 5 || attempts[1].Score != 2 {
		t.Errorf("attempts not newest first: scores %d, %d", attempts[0].Score, attempts[1].Score)
	}
	for _, a := range attempts {
		if a.TestTitle != "Kinematics Basics" {
			t.Errorf("attempt %d missing test title: %q", a.ID, a.TestTitle)
		}
	}

	// Another user sees nothing.
	other := seedUser(t, db, "other@example.com")
	attempts, err = svc.GetUserAttempts(other.ID)
	if err != nil {
		t.Fatalf("GetUserAttempts(other): %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("other user sees %d attempts, want 0", len(attempts))
	}
}
