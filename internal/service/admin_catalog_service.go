package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// AdminCatalogService is the authoring side of the catalog.
type AdminCatalogService interface {
	CreateSubject(req dto.SubjectCreateDTO) (*model.Subject, error)
	CreateTopic(req dto.TopicCreateDTO) (*model.Topic, error)
	CreateVideo(req dto.VideoCreateDTO) (*model.Video, error)
	CreateTest(req dto.TestCreateDTO) (*dto.TestDetailDTO, error)
}

type adminCatalogService struct {
	subjectRepo repository.SubjectRepository
	topicRepo   repository.TopicRepository
	videoRepo   repository.VideoRepository
	testRepo    repository.TestRepository
	testService TestService
}

func NewAdminCatalogService(
	subjectRepo repository.SubjectRepository,
	topicRepo repository.TopicRepository,
	videoRepo repository.VideoRepository,
	testRepo repository.TestRepository,
	testService TestService,
) AdminCatalogService {
	return &adminCatalogService{
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
		videoRepo:   videoRepo,
		testRepo:    testRepo,
		testService: testService,
	}
}

func (s *adminCatalogService) CreateSubject(req dto.SubjectCreateDTO) (*model.Subject, error) {
	subject := model.Subject{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.subjectRepo.Create(&subject); err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("Failed to create subject")
		return nil, fmt.Errorf("database error creating subject: %w", err)
	}
	return &subject, nil
}

func (s *adminCatalogService) CreateTopic(req dto.TopicCreateDTO) (*model.Topic, error) {
	if _, err := s.subjectRepo.FindByID(req.SubjectID); err != nil {
		return nil, fmt.Errorf("subject not found with ID %d: %w", req.SubjectID, err)
	}

	var topic model.Topic
	if err := copier.Copy(&topic, &req); err != nil {
		log.Error().Err(err).Msg("Failed to copy TopicCreateDTO to Topic model")
		return nil, fmt.Errorf("error preparing topic: %w", err)
	}
	if err := s.topicRepo.Create(&topic); err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("Failed to create topic")
		return nil, fmt.Errorf("database error creating topic: %w", err)
	}
	return &topic, nil
}

func (s *adminCatalogService) CreateVideo(req dto.VideoCreateDTO) (*model.Video, error) {
	if _, err := s.topicRepo.FindByID(req.TopicID); err != nil {
		return nil, fmt.Errorf("topic not found with ID %d: %w", req.TopicID, err)
	}

	var video model.Video
	if err := copier.Copy(&video, &req); err != nil {
		log.Error().Err(err).Msg("Failed to copy VideoCreateDTO to Video model")
		return nil, fmt.Errorf("error preparing video: %w", err)
	}
	if video.EmbedURL() == "" {
		return nil, fmt.Errorf("could not extract a video id from %q", req.YouTubeURL)
	}
	if err := s.videoRepo.Create(&video); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create video")
		return nil, fmt.Errorf("database error creating video: %w", err)
	}
	return &video, nil
}

// CreateTest validates the question set and creates the test with its
// questions in one go. The authored total_marks is taken as-is: no
// consistency with the sum of question marks is enforced.
func (s *adminCatalogService) CreateTest(req dto.TestCreateDTO) (*dto.TestDetailDTO, error) {
	if _, err := s.topicRepo.FindByID(req.TopicID); err != nil {
		return nil, fmt.Errorf("topic not found with ID %d: %w", req.TopicID, err)
	}

	orderSeen := make(map[int]bool)
	var questions []model.Question
	for _, qDto := range req.Questions {
		if orderSeen[qDto.OrderIndex] {
			return nil, fmt.Errorf("duplicate order_index %d found in questions", qDto.OrderIndex)
		}
		orderSeen[qDto.OrderIndex] = true

		var question model.Question
		if err := copier.Copy(&question, &qDto); err != nil {
			log.Error().Err(err).Msg("Failed to copy QuestionCreateDTO to Question model")
			return nil, fmt.Errorf("error preparing question: %w", err)
		}
		questions = append(questions, question)
	}

	test := model.Test{
		TopicID:     req.TopicID,
		Title:       req.Title,
		Description: req.Description,
		TotalMarks:  req.TotalMarks,
		Questions:   questions,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}

	return s.testService.GetTestDetails(test.ID)
}
