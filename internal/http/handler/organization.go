package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/dto"
	"aihub.app/api/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	org, profile, err := h.orgService.Create(c.Request.Context(), actor(c), service.CreateOrganizationInput{
		Name:    req.Name,
		Slug:    req.Slug,
		LogoURL: req.LogoURL,
		Website: req.Website,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.CreateOrganizationResponse{
		Organization: dto.ToOrganizationResponse(org),
		Profile:      dto.ToProfileResponse(profile),
	})
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	org, err := h.orgService.Get(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), actor(c), service.UpdateOrganizationInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Website: req.Website,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	members, err := h.orgService.ListMembers(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToProfileResponses(members))
}

func (h *OrganizationHandler) ChangeMemberRole(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.orgService.ChangeMemberRole(c.Request.Context(), actor(c), memberID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToProfileResponse(member))
}
