package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/service"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetAllSubjects godoc
// @Summary List all subjects
// @Description Get all subjects ordered by name, each with its topic count.
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.SubjectSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *CatalogController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.catalogService.GetAllSubjects()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSubjects: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve subjects", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetSubjectBySlug godoc
// @Summary Get a subject with its topics
// @Description Get a subject by slug, including its topics ordered by order_index.
// @Tags Catalog
// @Produce json
// @Param slug path string true "Subject slug"
// @Success 200 {object} dto.SubjectDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{slug} [get]
func (c *CatalogController) GetSubjectBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")
	subject, err := c.catalogService.GetSubjectBySlug(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("GetSubjectBySlug: Subject not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, subject)
}

// GetTopicBySlug godoc
// @Summary Get a topic with its videos and tests
// @Description Get a topic by slug, including its parent subject, videos ordered by order_index, and practice tests.
// @Tags Catalog
// @Produce json
// @Param slug path string true "Topic slug"
// @Success 200 {object} dto.TopicDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /topics/{slug} [get]
func (c *CatalogController) GetTopicBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")
	topic, err := c.catalogService.GetTopicBySlug(slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("GetTopicBySlug: Topic not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, topic)
}

// GetAllTests godoc
// @Summary List all practice tests
// @Description Get all tests enriched with their topic and subject names and question counts.
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *CatalogController) GetAllTests(ctx *gin.Context) {
	tests, err := c.catalogService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}
