package dto

import (
	"encoding/json"
	"time"

	"aihub.app/api/internal/model"
)

type CreateContentRequest struct {
	ToolSlug string          `json:"tool_slug" binding:"required,max=64"`
	Title    string          `json:"title" binding:"required,min=1,max=255"`
	Body     string          `json:"body" binding:"required"`
	Input    *string         `json:"input,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type UpdateContentRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Body  *string `json:"body,omitempty" binding:"omitempty,min=1"`
}

type ContentResponse struct {
	ID        int64           `json:"id,string"`
	ProfileID int64           `json:"profile_id,string"`
	ToolSlug  string          `json:"tool_slug"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Input     *string         `json:"input,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToContentResponse(c *model.Content) *ContentResponse {
	if c == nil {
		return nil
	}
	return &ContentResponse{
		ID:        c.ID,
		ProfileID: c.ProfileID,
		ToolSlug:  c.ToolSlug,
		Title:     c.Title,
		Body:      c.Body,
		Input:     c.Input,
		Metadata:  c.Metadata,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToContentResponses(contents []model.Content) []*ContentResponse {
	out := make([]*ContentResponse, len(contents))
	for i := range contents {
		out[i] = ToContentResponse(&contents[i])
	}
	return out
}
