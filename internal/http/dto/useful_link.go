package dto

import (
	"time"

	"aihub.app/api/internal/model"
)

type CreateUsefulLinkRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	URL         string  `json:"url" binding:"required,max=2048"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

type UpdateUsefulLinkRequest struct {
	ID          string  `json:"id" binding:"required"`
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	URL         *string `json:"url,omitempty" binding:"omitempty,max=2048"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

type UsefulLinkResponse struct {
	ID          int64     `json:"id,string"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToUsefulLinkResponse(l *model.UsefulLink) *UsefulLinkResponse {
	return &UsefulLinkResponse{
		ID:          l.ID,
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		CreatedBy:   idString(l.CreatedBy),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func ToUsefulLinkResponses(links []model.UsefulLink) []*UsefulLinkResponse {
	out := make([]*UsefulLinkResponse, len(links))
	for i := range links {
		out[i] = ToUsefulLinkResponse(&links[i])
	}
	return out
}
