package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/http/middleware"
	"aihub.app/api/internal/service"
)

type AuthHandler struct {
	authService  service.AuthService
	sessionTTL   time.Duration
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionTTL:   sessionTTL,
		isProduction: isProduction,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token, int(h.sessionTTL.Seconds()), h.isProduction)
	respond(c, http.StatusCreated, dto.AuthResponse{Profile: dto.ToProfileResponse(profile), Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token, int(h.sessionTTL.Seconds()), h.isProduction)
	respond(c, http.StatusOK, dto.AuthResponse{Profile: dto.ToProfileResponse(profile), Token: token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if token := middleware.SessionToken(c); token != "" {
		if err := h.authService.Logout(ctx, token); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err)
		}
	}

	middleware.ClearSessionCookie(c, h.isProduction)
	respond(c, http.StatusOK, gin.H{"message": "logged out"})
}
