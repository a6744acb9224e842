package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminCatalogController struct {
	adminService service.AdminCatalogService
}

func NewAdminCatalogController(adminService service.AdminCatalogService) *AdminCatalogController {
	return &AdminCatalogController{adminService: adminService}
}

// CreateSubject godoc
// @Summary (Admin) Create a subject
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param subject body dto.SubjectCreateDTO true "Subject data"
// @Success 201 {object} model.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/subjects [post]
func (c *AdminCatalogController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSubject: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	subject, err := c.adminService.CreateSubject(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateSubject: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create subject", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, subject)
}

// CreateTopic godoc
// @Summary (Admin) Create a topic under a subject
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param topic body dto.TopicCreateDTO true "Topic data"
// @Success 201 {object} model.Topic
// @Failure 400 {object} dto.ErrorResponse "Invalid input data or unknown subject"
// @Router /admin/topics [post]
func (c *AdminCatalogController) CreateTopic(ctx *gin.Context) {
	var req dto.TopicCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTopic: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	topic, err := c.adminService.CreateTopic(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateTopic: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create topic", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, topic)
}

// CreateVideo godoc
// @Summary (Admin) Attach a video lecture to a topic
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param video body dto.VideoCreateDTO true "Video data (must be a resolvable YouTube URL)"
// @Success 201 {object} model.Video
// @Failure 400 {object} dto.ErrorResponse "Invalid input data or unresolvable YouTube URL"
// @Router /admin/videos [post]
func (c *AdminCatalogController) CreateVideo(ctx *gin.Context) {
	var req dto.VideoCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateVideo: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	video, err := c.adminService.CreateVideo(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateVideo: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create video", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, video)
}

// CreateTest godoc
// @Summary (Admin) Create a test with its questions
// @Description Create a practice test under a topic with all of its multiple-choice questions.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param test body dto.TestCreateDTO true "Test creation data including all questions"
// @Success 201 {object} dto.TestDetailDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/tests [post]
func (c *AdminCatalogController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testResp, err := c.adminService.CreateTest(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateTest: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}
