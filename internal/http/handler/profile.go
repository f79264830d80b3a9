package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, org, err := h.profileService.Get(c.Request.Context(), actor(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.MeResponse{
		Profile:         dto.ToProfileResponse(profile),
		Organization:    dto.ToOrganizationBrief(org),
		HasOrganization: org != nil,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), actor(c), service.ProfileUpdate{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToProfileResponse(profile))
}
