package model

import (
	"encoding/json"
	"time"
)

const (
	ActivityOrganizationCreated = "organization.created"
	ActivityOrganizationUpdated = "organization.updated"
	ActivityMemberRoleChanged   = "member.role_changed"
	ActivityUserDeleted         = "user.deleted"
	ActivityAPIKeyCreated       = "apikey.created"
	ActivityAPIKeyUpdated       = "apikey.updated"
	ActivityAPIKeyDeleted       = "apikey.deleted"
	ActivityAPIKeyVerified      = "apikey.verified"
	ActivityToolUpdated         = "tool.updated"
	ActivityToolReset           = "tool.reset"
	ActivityAssistantRun        = "assistant.run"
	ActivityWordPressConnected  = "wordpress.connected"
	ActivityWordPressRemoved    = "wordpress.disconnected"
	ActivityContentCreated      = "content.created"
	ActivityContentDeleted      = "content.deleted"
)

type Activity struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	ProfileID      *int64          `json:"profile_id,omitempty"`
	Action         string          `json:"action"`
	ToolSlug       *string         `json:"tool_slug,omitempty"`
	Metadata       json.RawMessage `json:"metadata"`
	CreatedAt      time.Time       `json:"created_at"`
}
