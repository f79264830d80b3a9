package model

import (
	"encoding/json"
	"time"
)

type Content struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	ProfileID      int64           `json:"profile_id"`
	ToolSlug       string          `json:"tool_slug"`
	Title          string          `json:"title"`
	Body           string          `json:"body"`
	Input          *string         `json:"input,omitempty"`
	Metadata       json.RawMessage `json:"metadata"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
