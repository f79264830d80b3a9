package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) List(c *gin.Context) {
	var page dto.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		bindError(c, err)
		return
	}

	contents, err := h.contentService.List(c.Request.Context(), actor(c), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToContentResponses(contents))
}

func (h *ContentHandler) Get(c *gin.Context) {
	contentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	content, err := h.contentService.Get(c.Request.Context(), actor(c), contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToContentResponse(content))
}

func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	content, err := h.contentService.Create(c.Request.Context(), actor(c), service.CreateContentInput{
		ToolSlug: req.ToolSlug,
		Title:    req.Title,
		Body:     req.Body,
		Input:    req.Input,
		Metadata: req.Metadata,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToContentResponse(content))
}

func (h *ContentHandler) Update(c *gin.Context) {
	contentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	content, err := h.contentService.Update(c.Request.Context(), actor(c), contentID, req.Title, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToContentResponse(content))
}

func (h *ContentHandler) Delete(c *gin.Context) {
	contentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.Delete(c.Request.Context(), actor(c), contentID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
