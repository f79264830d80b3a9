package model

import "time"

type AuthType string

const (
	AuthTypeOAuth AuthType = "oauth"
	AuthTypeBasic AuthType = "basic"
)

// WordPressIntegration is an organization's connection to a WordPress site.
// Secret fields hold plaintext only after the store has decrypted them.
type WordPressIntegration struct {
	ID             int64      `json:"id"`
	OrganizationID int64      `json:"organization_id"`
	AuthType       AuthType   `json:"auth_type"`
	SiteURL        string     `json:"site_url"`
	SiteID         *string    `json:"site_id,omitempty"`
	SiteName       *string    `json:"site_name,omitempty"`
	Username       *string    `json:"username,omitempty"`
	AccessToken    *string    `json:"-"`
	RefreshToken   *string    `json:"-"`
	AppPassword    *string    `json:"-"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	ConnectedBy    *int64     `json:"connected_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NeedsRefresh reports whether an OAuth token expires within the given window.
// Basic-auth integrations and tokens without an expiry never need a refresh.
func (w *WordPressIntegration) NeedsRefresh(now time.Time, window time.Duration) bool {
	if w.AuthType != AuthTypeOAuth || w.TokenExpiresAt == nil {
		return false
	}
	return !now.Add(window).Before(*w.TokenExpiresAt)
}
