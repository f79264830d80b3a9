package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aihub.app/api/common/logger"
	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
)

type contextKey string

const (
	SessionCookieName            = "aihub_session"
	profileContextKey contextKey = "profile"
	tokenContextKey   contextKey = "session_token"
)

// RequireSession resolves the bearer token, or the session cookie, to a profile.
func RequireSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("not authenticated", "UNAUTHENTICATED"))
			return
		}

		ctx := c.Request.Context()
		profile, err := authService.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				ClearSessionCookie(c, false)
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("session expired", "UNAUTHENTICATED"))
				return
			}
			slog.ErrorContext(ctx, "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure("failed to validate session", "INTERNAL_ERROR"))
			return
		}

		ctx = context.WithValue(ctx, profileContextKey, profile)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			ProfileID:      &profile.ID,
			OrganizationID: profile.OrganizationID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireOrganization rejects profiles that have not joined an organization yet.
// It must run after RequireSession.
func RequireOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := GetProfile(c.Request.Context())
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("not authenticated", "UNAUTHENTICATED"))
			return
		}
		if profile.OrganizationID == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Failure("create or join an organization first", "NO_ORGANIZATION"))
			return
		}
		c.Next()
	}
}

func GetProfile(ctx context.Context) *model.Profile {
	profile, _ := ctx.Value(profileContextKey).(*model.Profile)
	return profile
}

func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// SessionToken reads "Authorization: Bearer <token>", falling back to the session cookie.
func SessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// WithProfile stores profile in ctx the way RequireSession does.
func WithProfile(ctx context.Context, profile *model.Profile) context.Context {
	return context.WithValue(ctx, profileContextKey, profile)
}

func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
