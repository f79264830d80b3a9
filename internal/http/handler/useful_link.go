package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type UsefulLinkHandler struct {
	linkService service.UsefulLinkService
}

func NewUsefulLinkHandler(linkService service.UsefulLinkService) *UsefulLinkHandler {
	return &UsefulLinkHandler{linkService: linkService}
}

func (h *UsefulLinkHandler) List(c *gin.Context) {
	links, err := h.linkService.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToUsefulLinkResponses(links))
}

func (h *UsefulLinkHandler) Create(c *gin.Context) {
	var req dto.CreateUsefulLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	link, err := h.linkService.Create(c.Request.Context(), actor(c), service.CreateUsefulLinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToUsefulLinkResponse(link))
}

// Update takes the link ID from the body.
func (h *UsefulLinkHandler) Update(c *gin.Context) {
	var req dto.UpdateUsefulLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	linkID, ok := dto.ParseID(req.ID)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Failure("invalid id", "INVALID_INPUT"))
		return
	}

	link, err := h.linkService.Update(c.Request.Context(), actor(c), linkID, service.UpdateUsefulLinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToUsefulLinkResponse(link))
}

// Delete takes the link ID from the ?id= query parameter.
func (h *UsefulLinkHandler) Delete(c *gin.Context) {
	linkID, ok := dto.ParseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, dto.Failure("invalid id", "INVALID_INPUT"))
		return
	}

	if err := h.linkService.Delete(c.Request.Context(), actor(c), linkID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
