package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// CatalogService serves the read-only browsing surface: subjects,
// topics with their videos and tests, and the tests index.
type CatalogService interface {
	GetAllSubjects() ([]dto.SubjectSummaryDTO, error)
	GetSubjectBySlug(slug string) (*dto.SubjectDetailDTO, error)
	GetTopicBySlug(slug string) (*dto.TopicDetailDTO, error)
	GetAllTests() ([]dto.TestSummaryDTO, error)
}

type catalogService struct {
	subjectRepo repository.SubjectRepository
	topicRepo   repository.TopicRepository
	testRepo    repository.TestRepository
}

func NewCatalogService(
	subjectRepo repository.SubjectRepository,
	topicRepo repository.TopicRepository,
	testRepo repository.TestRepository,
) CatalogService {
	return &catalogService{
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		testRepo:    testRepo,
	}
}

func (s *catalogService) GetAllSubjects() ([]dto.SubjectSummaryDTO, error) {
	subjectsWithCount, err := s.subjectRepo.FindAllWithTopicCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get subjects with topic count from repository")
		return nil, fmt.Errorf("error fetching subjects: %w", err)
	}

	var dtos []dto.SubjectSummaryDTO
	for _, swc := range subjectsWithCount {
		dtos = append(dtos, dto.SubjectSummaryDTO{
			ID:          swc.Subject.ID,
			Name:        swc.Subject.Name,
			Slug:        swc.Subject.Slug,
			Description: swc.Subject.Description,
			TopicCount:  swc.TopicCount,
		})
	}
	return dtos, nil
}

func (s *catalogService) GetSubjectBySlug(slug string) (*dto.SubjectDetailDTO, error) {
	subject, err := s.subjectRepo.FindBySlugWithTopics(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Subject not found")
		return nil, fmt.Errorf("subject not found with slug %q: %w", slug, err)
	}

	var resp dto.SubjectDetailDTO
	if err := copier.Copy(&resp, subject); err != nil {
		log.Error().Err(err).Msg("Failed to copy Subject model to SubjectDetailDTO")
		return nil, fmt.Errorf("error preparing subject response: %w", err)
	}
	if resp.Topics == nil {
		resp.Topics = []dto.TopicSummaryDTO{}
	}
	return &resp, nil
}

func (s *catalogService) GetTopicBySlug(slug string) (*dto.TopicDetailDTO, error) {
	topic, err := s.topicRepo.FindBySlugWithContent(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Topic not found")
		return nil, fmt.Errorf("topic not found with slug %q: %w", slug, err)
	}

	var resp dto.TopicDetailDTO
	if err := copier.Copy(&resp, topic); err != nil {
		log.Error().Err(err).Msg("Failed to copy Topic model to TopicDetailDTO")
		return nil, fmt.Errorf("error preparing topic response: %w", err)
	}

	// copier cannot derive the embed URL; fill it per video.
	resp.Videos = make([]dto.VideoDTO, 0, len(topic.Videos))
	for _, v := range topic.Videos {
		resp.Videos = append(resp.Videos, dto.VideoDTO{
			ID:          v.ID,
			Title:       v.Title,
			YouTubeURL:  v.YouTubeURL,
			EmbedURL:    v.EmbedURL(),
			Description: v.Description,
			OrderIndex:  v.OrderIndex,
		})
	}
	if resp.Tests == nil {
		resp.Tests = []dto.TestSummaryDTO{}
	}
	return &resp, nil
}

func (s *catalogService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	testsWithContext, err := s.testRepo.FindAllWithContext()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get tests with context from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	var dtos []dto.TestSummaryDTO
	for _, twc := range testsWithContext {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			Title:         twc.Test.Title,
			Description:   twc.Test.Description,
			TotalMarks:    twc.Test.TotalMarks,
			QuestionCount: twc.QuestionCount,
			TopicName:     twc.TopicName,
			SubjectName:   twc.SubjectName,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}
