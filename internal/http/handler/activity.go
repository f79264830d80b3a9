package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *gin.Context) {
	var page dto.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		bindError(c, err)
		return
	}

	activities, err := h.activityService.List(c.Request.Context(), actor(c), page.Limit, page.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToActivityResponses(activities))
}
