package service

import (
	"fmt"

	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// TestService serves a single test for an attempt: the test record and
// its questions in canonical order. Correct options are never included;
// no correctness information leaves the server before submission.
type TestService interface {
	GetTestDetails(testID uint) (*dto.TestDetailDTO, error)
}

type testService struct {
	testRepo repository.TestRepository
}

func NewTestService(testRepo repository.TestRepository) TestService {
	return &testService{testRepo: testRepo}
}

func (s *testService) GetTestDetails(testID uint) (*dto.TestDetailDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Failed to get test details from repository")
		return nil, fmt.Errorf("test not found with ID %d: %w", testID, err)
	}

	resp := dto.TestDetailDTO{
		ID:          test.ID,
		TopicID:     test.TopicID,
		Title:       test.Title,
		Description: test.Description,
		TotalMarks:  test.TotalMarks,
		Questions:   make([]dto.QuestionDTO, 0, len(test.Questions)),
	}
	for _, q := range test.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionDTO{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options(),
			Marks:      q.Marks,
			OrderIndex: q.OrderIndex,
		})
	}
	return &resp, nil
}
