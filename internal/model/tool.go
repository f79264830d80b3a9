package model

import "time"

const (
	ToolSlugProofreader = "proofreader"
	ToolSlugNewsletter  = "newsletter"
	ToolSlugThread      = "thread"
	ToolSlugSummary     = "summary"
)

// DefaultTool is the global configuration of an assistant tool.
type DefaultTool struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	SystemPrompt string    `json:"system_prompt"`
	UserPrompt   string    `json:"user_prompt"`
	Provider     Provider  `json:"provider"`
	Model        string    `json:"model"`
	Temperature  float64   `json:"temperature"`
	TopP         float64   `json:"top_p"`
	MaxTokens    int32     `json:"max_tokens"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToolOverride holds an organization's customizations of a DefaultTool.
// A nil field falls back to the default.
type ToolOverride struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	DefaultToolID  int64     `json:"default_tool_id"`
	SystemPrompt   *string   `json:"system_prompt,omitempty"`
	UserPrompt     *string   `json:"user_prompt,omitempty"`
	Provider       *Provider `json:"provider,omitempty"`
	Model          *string   `json:"model,omitempty"`
	Temperature    *float64  `json:"temperature,omitempty"`
	TopP           *float64  `json:"top_p,omitempty"`
	MaxTokens      *int32    `json:"max_tokens,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ResolvedTool is a DefaultTool with an organization's override applied.
type ResolvedTool struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	SystemPrompt string   `json:"system_prompt"`
	UserPrompt   string   `json:"user_prompt"`
	Provider     Provider `json:"provider"`
	Model        string   `json:"model"`
	Temperature  float64  `json:"temperature"`
	TopP         float64  `json:"top_p"`
	MaxTokens    int32    `json:"max_tokens"`
	IsCustom     bool     `json:"is_custom"`
}

// Resolve overlays every non-nil field of o onto d.
func Resolve(d DefaultTool, o *ToolOverride) ResolvedTool {
	r := ResolvedTool{
		Slug:         d.Slug,
		Name:         d.Name,
		Description:  d.Description,
		SystemPrompt: d.SystemPrompt,
		UserPrompt:   d.UserPrompt,
		Provider:     d.Provider,
		Model:        d.Model,
		Temperature:  d.Temperature,
		TopP:         d.TopP,
		MaxTokens:    d.MaxTokens,
	}
	if o == nil {
		return r
	}

	r.IsCustom = true
	if o.SystemPrompt != nil {
		r.SystemPrompt = *o.SystemPrompt
	}
	if o.UserPrompt != nil {
		r.UserPrompt = *o.UserPrompt
	}
	if o.Provider != nil {
		r.Provider = *o.Provider
	}
	if o.Model != nil {
		r.Model = *o.Model
	}
	if o.Temperature != nil {
		r.Temperature = *o.Temperature
	}
	if o.TopP != nil {
		r.TopP = *o.TopP
	}
	if o.MaxTokens != nil {
		r.MaxTokens = *o.MaxTokens
	}
	return r
}
