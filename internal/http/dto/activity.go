package dto

import (
	"encoding/json"
	"time"

	"aihub.app/api/internal/model"
)

type ActivityResponse struct {
	ID        int64           `json:"id,string"`
	ProfileID *string         `json:"profile_id,omitempty"`
	Action    string          `json:"action"`
	ToolSlug  *string         `json:"tool_slug,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToActivityResponses(activities []model.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = &ActivityResponse{
			ID:        a.ID,
			ProfileID: idString(a.ProfileID),
			Action:    a.Action,
			ToolSlug:  a.ToolSlug,
			Metadata:  a.Metadata,
			CreatedAt: a.CreatedAt,
		}
	}
	return out
}
