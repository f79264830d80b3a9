package dto

import (
	"time"

	"aihub.app/api/internal/model"
)

type CreateAPIKeyRequest struct {
	Provider model.Provider `json:"provider" binding:"required"`
	APIKey   string         `json:"api_key" binding:"required,max=1024"`
	Name     string         `json:"name" binding:"omitempty,max=255"`
}

type UpdateAPIKeyRequest struct {
	Name   *string             `json:"name,omitempty" binding:"omitempty,max=255"`
	APIKey *string             `json:"api_key,omitempty" binding:"omitempty,max=1024"`
	Status *model.APIKeyStatus `json:"status,omitempty"`
}

// VerifyAPIKeyRequest checks either a stored key by id or a raw provider/api_key pair.
type VerifyAPIKeyRequest struct {
	ID       string         `json:"id,omitempty"`
	Provider model.Provider `json:"provider,omitempty"`
	APIKey   string         `json:"api_key,omitempty" binding:"max=1024"`
}

type VerifyAPIKeyResponse struct {
	Valid    bool           `json:"valid"`
	Provider model.Provider `json:"provider"`
	Message  string         `json:"message"`
}

type APIKeyResponse struct {
	ID             int64              `json:"id,string"`
	Provider       model.Provider     `json:"provider"`
	Name           string             `json:"name"`
	KeyHint        string             `json:"key_hint"`
	Status         model.APIKeyStatus `json:"status"`
	LastVerifiedAt *time.Time         `json:"last_verified_at,omitempty"`
	CreatedBy      *string            `json:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func ToAPIKeyResponse(k *model.APIKey) *APIKeyResponse {
	return &APIKeyResponse{
		ID:             k.ID,
		Provider:       k.Provider,
		Name:           k.Name,
		KeyHint:        k.KeyHint,
		Status:         k.Status,
		LastVerifiedAt: k.LastVerifiedAt,
		CreatedBy:      idString(k.CreatedBy),
		CreatedAt:      k.CreatedAt,
		UpdatedAt:      k.UpdatedAt,
	}
}

func ToAPIKeyResponses(keys []model.APIKey) []*APIKeyResponse {
	out := make([]*APIKeyResponse, len(keys))
	for i := range keys {
		out[i] = ToAPIKeyResponse(&keys[i])
	}
	return out
}
