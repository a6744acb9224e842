package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/learnhub-edu/learnhub-api/internal/scoring"
	"github.com/rs/zerolog/log"
)

// ErrIncompleteSubmission is returned when the all-or-nothing gate is
// not satisfied: every question must carry exactly one selection.
var ErrIncompleteSubmission = errors.New("every question must be answered before submitting")

// ErrNoQuestions is returned when a test has no questions to submit against.
var ErrNoQuestions = errors.New("test has no questions, submission is not possible")

// AttemptService runs the attempt lifecycle: load the ordered questions,
// gate the submission, score it, persist the attempt for authenticated
// users and return the per-question correctness review.
type AttemptService interface {
	Submit(testID uint, userID *uint, answers scoring.AnswerMap) (*dto.AttemptResultDTO, error)
	GetUserAttempts(userID uint) ([]dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	notifier     Notifier
}

func NewAttemptService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	notifier Notifier,
) AttemptService {
	return &attemptService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		notifier:     notifier,
	}
}

// Submit evaluates a full answer map against the test's questions.
//
// The attempt write is intentionally not allowed to fail the submission:
// the caller still gets their score and review even when the durable
// record could not be created. The repository error is logged so the
// condition is visible to operators.
func (s *attemptService) Submit(testID uint, userID *uint, answers scoring.AnswerMap) (*dto.AttemptResultDTO, error) {
	questions, err := s.questionRepo.FindByTestID(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Submit: failed to load questions")
		return nil, fmt.Errorf("loading questions for test %d: %w", testID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("test %d: %w", testID, ErrNoQuestions)
	}

	totalMarks := scoring.FallbackTotalMarks
	testTitle := ""
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		// Questions resolved but the test row did not; keep going with
		// the fallback denominator.
		log.Warn().Err(err).Uint("testID", testID).Msg("Submit: test record unresolved, using fallback total marks")
	} else {
		totalMarks = test.TotalMarks
		testTitle = test.Title
	}

	if !scoring.CanSubmit(answers, questions) {
		return nil, fmt.Errorf("test %d: %w", testID, ErrIncompleteSubmission)
	}

	score := scoring.Score(answers, questions)

	if userID != nil {
		blob, marshalErr := json.Marshal(answers)
		if marshalErr != nil {
			log.Error().Err(marshalErr).Uint("testID", testID).Msg("Submit: failed to encode answer map")
		} else {
			attempt := model.Attempt{
				UserID:     *userID,
				TestID:     testID,
				Score:      score,
				TotalMarks: totalMarks,
				Answers:    string(blob),
			}
			if createErr := s.attemptRepo.Create(&attempt); createErr != nil {
				log.Error().Err(createErr).
					Uint("userID", *userID).
					Uint("testID", testID).
					Int("score", score).
					Msg("Submit: failed to persist attempt record")
			}
		}
	}

	message := fmt.Sprintf("You scored %d out of %d", score, totalMarks)
	s.notifier.Notify("Test Submitted!", message)

	return &dto.AttemptResultDTO{
		TestID:     testID,
		TestTitle:  testTitle,
		Score:      score,
		TotalMarks: totalMarks,
		Message:    message,
		Review:     scoring.BuildReview(answers, questions),
	}, nil
}

// GetUserAttempts returns the user's score history, newest first.
func (s *attemptService) GetUserAttempts(userID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to find attempts from repository")
		return nil, fmt.Errorf("error fetching attempts for user %d: %w", userID, err)
	}

	var dtos []dto.AttemptSummaryDTO
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if errCp := copier.Copy(&summary, &attempt); errCp != nil {
			log.Error().Err(errCp).Uint("attemptID", attempt.ID).Msg("Error copying attempt to summary DTO")
			continue
		}
		summary.TestTitle = attempt.Test.Title
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
