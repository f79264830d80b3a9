package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/http/middleware"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/store"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{service.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{service.ErrEmailExists, http.StatusBadRequest, "EMAIL_EXISTS"},
	{service.ErrSelfDelete, http.StatusBadRequest, "SELF_DELETE"},
	{service.ErrOwnRole, http.StatusBadRequest, "OWN_ROLE"},
	{service.ErrAlreadyInOrganization, http.StatusBadRequest, "ALREADY_IN_ORGANIZATION"},
	{service.ErrProviderNotConfigured, http.StatusBadRequest, "PROVIDER_NOT_CONFIGURED"},
	{service.ErrWordPressNotConfigured, http.StatusBadRequest, "WORDPRESS_NOT_CONFIGURED"},
	{service.ErrWordPressInvalidState, http.StatusBadRequest, "WORDPRESS_INVALID_STATE"},
	{service.ErrWordPressAuthRejected, http.StatusBadRequest, "WORDPRESS_AUTH_REJECTED"},
	{service.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
	{service.ErrNoOrganization, http.StatusForbidden, "NO_ORGANIZATION"},
	{service.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{service.ErrWordPressNotConnected, http.StatusNotFound, "WORDPRESS_NOT_CONNECTED"},
	{service.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{store.ErrConflict, http.StatusConflict, "CONFLICT"},
	{service.ErrWordPressRefreshFailed, http.StatusBadGateway, "WORDPRESS_REFRESH_FAILED"},
	{service.ErrInvalidAIResponse, http.StatusBadGateway, "INVALID_AI_RESPONSE"},
	{service.ErrUpstream, http.StatusBadGateway, "UPSTREAM_ERROR"},
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Success(data))
}

// respondError maps service errors to a status and error code. Anything
// unrecognized is logged and reported as a 500 without details.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}
		if m.status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "request failed upstream", "error", err, "code", m.code)
		}
		c.JSON(m.status, dto.Failure(clientMessage(err, m), m.code))
		return
	}

	slog.ErrorContext(ctx, "unhandled error", "error", err)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.Failure("internal server error", "INTERNAL_ERROR"))
}

// clientMessage keeps validation details but hides upstream error chains.
func clientMessage(err error, m errorMapping) string {
	if m.status >= http.StatusInternalServerError {
		return m.err.Error()
	}
	if errors.Is(err, service.ErrInvalidInput) {
		msg := err.Error()
		if _, detail, ok := strings.Cut(msg, ": "); ok {
			return detail
		}
		return msg
	}
	return m.err.Error()
}

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, dto.Failure(err.Error(), "INVALID_INPUT"))
}

func actor(c *gin.Context) *model.Profile {
	return middleware.GetProfile(c.Request.Context())
}

// pathID reads a snowflake ID path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, ok := dto.ParseID(c.Param(name))
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Failure("invalid "+name, "INVALID_INPUT"))
	}
	return id, ok
}
