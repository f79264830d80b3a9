package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type WordPressHandler struct {
	wpService service.WordPressService
}

func NewWordPressHandler(wpService service.WordPressService) *WordPressHandler {
	return &WordPressHandler{wpService: wpService}
}

func (h *WordPressHandler) Authorize(c *gin.Context) {
	var req dto.AuthorizeRequest
	// an empty body is allowed
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	authURL, err := h.wpService.AuthorizeURL(c.Request.Context(), actor(c), req.RedirectTo)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.AuthorizeResponse{AuthorizationURL: authURL})
}

// Callback is hit by the browser coming back from WordPress.com, without a session.
func (h *WordPressHandler) Callback(c *gin.Context) {
	target := h.wpService.HandleCallback(c.Request.Context(), c.Query("code"), c.Query("state"), c.Query("error"))
	c.Redirect(http.StatusTemporaryRedirect, target)
}

func (h *WordPressHandler) PasswordToken(c *gin.Context) {
	var req dto.PasswordTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	integration, err := h.wpService.ConnectWithPassword(c.Request.Context(), actor(c), req.Username, req.Password, req.Site)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToIntegrationResponse(integration))
}

func (h *WordPressHandler) Status(c *gin.Context) {
	status, err := h.wpService.Status(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, status)
}

func (h *WordPressHandler) Disconnect(c *gin.Context) {
	if err := h.wpService.Disconnect(c.Request.Context(), actor(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"disconnected": true})
}

func (h *WordPressHandler) ConnectBasic(c *gin.Context) {
	var req dto.ConnectBasicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	integration, err := h.wpService.ConnectBasic(c.Request.Context(), actor(c), req.SiteURL, req.Username, req.AppPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToIntegrationResponse(integration))
}

func (h *WordPressHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	if q.Page == 0 {
		q.Page = 1
	}

	posts, err := h.wpService.Search(c.Request.Context(), actor(c), q.Query, q.Page, q.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToSearchResponse(posts, q.Page))
}
