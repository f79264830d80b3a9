package service

import "aihub.app/api/internal/model"

// memberOrg returns the caller's organization ID.
func memberOrg(actor *model.Profile) (int64, error) {
	if actor == nil {
		return 0, ErrUnauthenticated
	}
	if actor.OrganizationID == nil {
		return 0, ErrNoOrganization
	}
	return *actor.OrganizationID, nil
}

// managerOrg is memberOrg restricted to OWNER and ADMIN.
func managerOrg(actor *model.Profile) (int64, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return 0, err
	}
	if !actor.Role.CanManage() {
		return 0, ErrForbidden
	}
	return orgID, nil
}

// canModify reports whether actor may change a resource created by createdBy.
func canModify(actor *model.Profile, createdBy *int64) bool {
	if actor.Role.CanManage() {
		return true
	}
	return createdBy != nil && *createdBy == actor.ID
}
