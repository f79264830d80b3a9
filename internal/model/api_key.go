package model

import "time"

// Provider identifies an AI vendor.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle:
		return true
	}
	return false
}

type APIKeyStatus string

const (
	APIKeyStatusActive   APIKeyStatus = "active"
	APIKeyStatusInactive APIKeyStatus = "inactive"
	APIKeyStatusInvalid  APIKeyStatus = "invalid"
)

func (s APIKeyStatus) Valid() bool {
	switch s {
	case APIKeyStatusActive, APIKeyStatusInactive, APIKeyStatusInvalid:
		return true
	}
	return false
}

type APIKey struct {
	ID             int64        `json:"id"`
	OrganizationID int64        `json:"organization_id"`
	Provider       Provider     `json:"provider"`
	Name           string       `json:"name"`
	Key            string       `json:"-"` // plaintext, only populated after decryption
	KeyHint        string       `json:"key_hint"`
	Status         APIKeyStatus `json:"status"`
	LastVerifiedAt *time.Time   `json:"last_verified_at,omitempty"`
	CreatedBy      *int64       `json:"created_by,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
