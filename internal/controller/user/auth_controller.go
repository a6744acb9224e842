package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/middleware"
	"github.com/learnhub-edu/learnhub-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Create an account
// @Description Register with email and password (minimum 6 characters).
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterDTO true "Registration data"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userResp, err := c.authService.Register(req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Register: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to register", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, userResp)
}

// Login godoc
// @Summary Sign in
// @Description Exchange email and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Login credentials"
// @Success 200 {object} dto.TokenDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Login: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to sign in", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, token)
}

// GetProfile godoc
// @Summary Get the signed-in user's profile
// @Description Return the account details of the authenticated user.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse "Authorization required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /me [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID := middleware.UserID(ctx)
	if userID == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization required"})
		return
	}

	userResp, err := c.authService.GetUser(*userID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", *userID).Msg("GetProfile: User not found")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, userResp)
}
