package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/learnhub-edu/learnhub-api/internal/dto"
	"github.com/learnhub-edu/learnhub-api/internal/service"
	"github.com/rs/zerolog/log"
)

const userIDKey = "auth_user_id"

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// OptionalAuth resolves the bearer identity when one is presented.
// A missing or invalid token leaves the request anonymous; it never
// rejects the request.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token != "" {
			if userID, err := auth.ParseToken(token); err == nil {
				ctx.Set(userIDKey, userID)
			} else {
				log.Debug().Err(err).Msg("OptionalAuth: ignoring invalid bearer token")
			}
		}
		ctx.Next()
	}
}

// RequireAuth rejects requests without a valid bearer identity.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization required"})
			return
		}
		userID, err := auth.ParseToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// UserID reads the resolved identity from the request context.
// nil means the caller is anonymous.
func UserID(ctx *gin.Context) *uint {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
