package model

import "time"

// Role is a profile's role inside its organization.
type Role string

const (
	RoleOwner Role = "OWNER"
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// CanManage reports whether the role may administer organization resources.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

type Profile struct {
	ID             int64     `json:"id"`
	OrganizationID *int64    `json:"organization_id,omitempty"`
	WorkOSUserID   *string   `json:"-"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InOrganization reports whether the profile belongs to the given organization.
func (p *Profile) InOrganization(orgID int64) bool {
	return p.OrganizationID != nil && *p.OrganizationID == orgID
}
