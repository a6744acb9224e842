package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/middleware"
	"github.com/learnhub-edu/learnhub-api/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService    service.TestService
	attemptService service.AttemptService
}

func NewTestController(testService service.TestService, attemptService service.AttemptService) *TestController {
	return &TestController{
		testService:    testService,
		attemptService: attemptService,
	}
}

// GetTestDetails godoc
// @Summary Get a test to start an attempt
// @Description Get a test with its questions in canonical order. Correct options are not included.
// @Tags Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *TestController) GetTestDetails(ctx *gin.Context) {
	testIDStr := ctx.Param("test_id")
	testID, err := strconv.ParseUint(testIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}
	testDetails, err := c.testService.GetTestDetails(uint(testID))
	if err != nil {
		log.Warn().Err(err).Uint64("testID", testID).Msg("GetTestDetails: Test not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitAttempt godoc
// @Summary Submit answers for an entire test
// @Description Submit the full answer map for a test. Every question must be answered. Anonymous callers get their score and review but no attempt record is persisted.
// @Tags Tests & Attempts
// @Accept json
// @Produce json
// @Param test_id path int true "ID of the Test being attempted"
// @Param submission body dto.AttemptSubmitDTO true "Answer map: question id to selected option letter"
// @Success 200 {object} dto.AttemptResultDTO "Score, message, and per-question correctness review"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or incomplete submission"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Security BearerAuth
// @Router /tests/{test_id}/attempts [post]
func (c *TestController) SubmitAttempt(ctx *gin.Context) {
	testIDStr := ctx.Param("test_id")
	testID, err := strconv.ParseUint(testIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if len(req.Answers) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Submission must contain at least one answer."})
		return
	}

	userID := middleware.UserID(ctx)
	log.Info().Uint64("testID", testID).Interface("userID", userID).Int("answerCount", len(req.Answers)).Msg("Received test submission")

	result, err := c.attemptService.Submit(uint(testID), userID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteSubmission):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrNoQuestions):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint64("testID", testID).Msg("SubmitAttempt: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit test attempt", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyAttempts godoc
// @Summary Get the signed-in user's attempt history
// @Description Retrieve all attempts by the authenticated user, newest first, with test titles.
// @Tags Tests & Attempts
// @Produce json
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Authorization required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /me/attempts [get]
func (c *TestController) GetMyAttempts(ctx *gin.Context) {
	userID := middleware.UserID(ctx)
	if userID == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization required"})
		return
	}

	attempts, err := c.attemptService.GetUserAttempts(*userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", *userID).Msg("GetMyAttempts: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
