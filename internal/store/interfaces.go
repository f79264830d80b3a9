package store

import (
	"context"
	"errors"
	"time"

	"aihub.app/api/internal/model"
)

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a unique constraint
	ErrConflict = errors.New("conflict")
)

// ProfileStore defines the contract for profile data access
type ProfileStore interface {
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	GetByWorkOSUserID(ctx context.Context, workosUserID string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	LinkWorkOSUser(ctx context.Context, id int64, workosUserID string) error
	SetMembership(ctx context.Context, id int64, orgID *int64, role model.Role) (*model.Profile, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) // checks expiry
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByProfile(ctx context.Context, profileID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// APIKeyStore defines the contract for AI vendor key access.
// Keys are encrypted on write; reads of a single key return the plaintext.
type APIKeyStore interface {
	GetByID(ctx context.Context, orgID, id int64) (*model.APIKey, error)
	GetActiveByProvider(ctx context.Context, orgID int64, provider model.Provider) (*model.APIKey, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]model.APIKey, error)
	Create(ctx context.Context, key *model.APIKey) error
	Update(ctx context.Context, key *model.APIKey) error
	SetVerification(ctx context.Context, id int64, status model.APIKeyStatus) error
	Delete(ctx context.Context, orgID, id int64) error
}

// ToolStore defines the contract for default tools and organization overrides
type ToolStore interface {
	GetDefaultBySlug(ctx context.Context, slug string) (*model.DefaultTool, error)
	ListDefaults(ctx context.Context) ([]model.DefaultTool, error)
	UpsertDefault(ctx context.Context, tool *model.DefaultTool) error
	GetOverride(ctx context.Context, orgID, defaultToolID int64) (*model.ToolOverride, error)
	ListOverrides(ctx context.Context, orgID int64) ([]model.ToolOverride, error)
	UpsertOverride(ctx context.Context, override *model.ToolOverride) error
	DeleteOverride(ctx context.Context, orgID, defaultToolID int64) error
}

// WordPressStore defines the contract for WordPress connections.
// Tokens and passwords are encrypted on write and decrypted on read.
type WordPressStore interface {
	GetByOrganization(ctx context.Context, orgID int64) (*model.WordPressIntegration, error)
	Upsert(ctx context.Context, integration *model.WordPressIntegration) error
	UpdateTokens(ctx context.Context, id int64, accessToken string, refreshToken *string, expiresAt *time.Time) (*model.WordPressIntegration, error)
	ListExpiring(ctx context.Context, before time.Time) ([]model.WordPressIntegration, error)
	Delete(ctx context.Context, orgID int64) error
}

// ContentStore defines the contract for saved assistant output
type ContentStore interface {
	GetByID(ctx context.Context, orgID, id int64) (*model.Content, error)
	List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Content, error)
	Create(ctx context.Context, content *model.Content) error
	Update(ctx context.Context, content *model.Content) error
	Delete(ctx context.Context, orgID, id int64) error
}

// UsefulLinkStore defines the contract for organization bookmarks
type UsefulLinkStore interface {
	GetByID(ctx context.Context, orgID, id int64) (*model.UsefulLink, error)
	List(ctx context.Context, orgID int64) ([]model.UsefulLink, error)
	Create(ctx context.Context, link *model.UsefulLink) error
	Update(ctx context.Context, link *model.UsefulLink) error
	Delete(ctx context.Context, orgID, id int64) error
}

// ActivityStore defines the contract for the audit log
type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Activity, error)
}

// OAuthState is what the WordPress authorize step remembers until the callback.
type OAuthState struct {
	OrganizationID int64  `json:"organization_id"`
	ProfileID      int64  `json:"profile_id"`
	RedirectTo     string `json:"redirect_to,omitempty"`
}

// OAuthStateStore holds short-lived OAuth state values
type OAuthStateStore interface {
	Save(ctx context.Context, state string, value OAuthState, ttl time.Duration) error
	Consume(ctx context.Context, state string) (*OAuthState, error) // single use
}
