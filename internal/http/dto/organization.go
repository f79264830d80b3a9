package dto

import (
	"time"

	"aihub.app/api/internal/model"
)

type CreateOrganizationRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Slug    *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255"`
	LogoURL *string `json:"logo_url,omitempty" binding:"omitempty,url,max=2048"`
	Website *string `json:"website,omitempty" binding:"omitempty,url,max=2048"`
}

type UpdateOrganizationRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	LogoURL *string `json:"logo_url,omitempty" binding:"omitempty,url,max=2048"`
	Website *string `json:"website,omitempty" binding:"omitempty,url,max=2048"`
}

type ChangeRoleRequest struct {
	Role model.Role `json:"role" binding:"required,oneof=ADMIN USER"`
}

type OrganizationResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToOrganizationResponse(o *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		LogoURL:   o.LogoURL,
		Website:   o.Website,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type OrganizationBrief struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToOrganizationBrief(o *model.Organization) *OrganizationBrief {
	if o == nil {
		return nil
	}
	return &OrganizationBrief{ID: o.ID, Name: o.Name, Slug: o.Slug}
}

type CreateOrganizationResponse struct {
	Organization *OrganizationResponse `json:"organization"`
	Profile      *ProfileResponse      `json:"profile"`
}

type DeleteUserRequest struct {
	UserID int64 `json:"user_id,string" binding:"required"`
}
