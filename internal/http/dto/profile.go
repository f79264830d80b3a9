package dto

import (
	"time"

	"aihub.app/api/internal/model"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=255"`
	Name     string `json:"name" binding:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

type AuthResponse struct {
	Profile *ProfileResponse `json:"profile"`
	Token   string           `json:"token"`
}

type ProfileResponse struct {
	ID             int64      `json:"id,string"`
	OrganizationID *string    `json:"organization_id,omitempty"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	AvatarURL      *string    `json:"avatar_url,omitempty"`
	Role           model.Role `json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToProfileResponse(p *model.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:             p.ID,
		OrganizationID: idString(p.OrganizationID),
		Email:          p.Email,
		Name:           p.Name,
		AvatarURL:      p.AvatarURL,
		Role:           p.Role,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProfileResponses(profiles []model.Profile) []*ProfileResponse {
	out := make([]*ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = ToProfileResponse(&profiles[i])
	}
	return out
}

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url,max=2048"`
}

type MeResponse struct {
	Profile         *ProfileResponse   `json:"profile"`
	Organization    *OrganizationBrief `json:"organization,omitempty"`
	HasOrganization bool               `json:"has_organization"`
}
