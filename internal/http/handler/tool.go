package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type ToolHandler struct {
	toolService service.ToolService
}

func NewToolHandler(toolService service.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

func (h *ToolHandler) List(c *gin.Context) {
	tools, err := h.toolService.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tools)
}

func (h *ToolHandler) Get(c *gin.Context) {
	tool, err := h.toolService.Get(c.Request.Context(), actor(c), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tool)
}

func (h *ToolHandler) Update(c *gin.Context) {
	var req dto.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tool, err := h.toolService.Update(c.Request.Context(), actor(c), c.Param("slug"), service.ToolUpdate{
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.UserPrompt,
		Provider:     req.Provider,
		Model:        req.Model,
		Temperature:  req.Temperature,
		TopP:         req.TopP,
		MaxTokens:    req.MaxTokens,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tool)
}

// Reset drops the organization's override.
func (h *ToolHandler) Reset(c *gin.Context) {
	tool, err := h.toolService.Reset(c.Request.Context(), actor(c), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tool)
}
