package dto

import "aihub.app/api/internal/model"

type UpdateToolRequest struct {
	SystemPrompt *string         `json:"system_prompt,omitempty" binding:"omitempty,max=20000"`
	UserPrompt   *string         `json:"user_prompt,omitempty" binding:"omitempty,max=20000"`
	Provider     *model.Provider `json:"provider,omitempty"`
	Model        *string         `json:"model,omitempty" binding:"omitempty,min=1,max=255"`
	Temperature  *float64        `json:"temperature,omitempty"`
	TopP         *float64        `json:"top_p,omitempty"`
	MaxTokens    *int32          `json:"max_tokens,omitempty"`
}
