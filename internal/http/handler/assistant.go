package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type AssistantHandler struct {
	assistantService service.AssistantService
}

func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

func saveOptions(f dto.SaveFields) service.SaveOptions {
	return service.SaveOptions{Save: f.Save, Title: f.Title}
}

func (h *AssistantHandler) Proofread(c *gin.Context) {
	var req dto.ProofreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.assistantService.Proofread(c.Request.Context(), actor(c), service.ProofreadInput{
		Text:        req.Text,
		SaveOptions: saveOptions(req.SaveFields),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ProofreadResponse{
		Suggestions: result.Suggestions,
		Content:     dto.ToContentResponse(result.Content),
	})
}

func (h *AssistantHandler) Thread(c *gin.Context) {
	var req dto.ThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.assistantService.Thread(c.Request.Context(), actor(c), service.ThreadInput{
		Text:        req.Text,
		Platform:    req.Platform,
		MaxPosts:    req.MaxPosts,
		SaveOptions: saveOptions(req.SaveFields),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ThreadResponse{
		Posts:   result.Posts,
		Content: dto.ToContentResponse(result.Content),
	})
}

func (h *AssistantHandler) Summary(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.assistantService.Summary(c.Request.Context(), actor(c), service.SummaryInput{
		Text:        req.Text,
		SaveOptions: saveOptions(req.SaveFields),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SummaryResponse{
		Summary: result.Summary,
		Content: dto.ToContentResponse(result.Content),
	})
}

func (h *AssistantHandler) Newsletter(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.assistantService.Newsletter(c.Request.Context(), actor(c), service.NewsletterInput{
		Text:         req.Text,
		PostIDs:      req.PostIDs,
		Instructions: req.Instructions,
		SaveOptions:  saveOptions(req.SaveFields),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewsletterResponse{
		Newsletter: result.Newsletter,
		Content:    dto.ToContentResponse(result.Content),
	})
}
