package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type profileStore struct {
	queries *sqlc.Queries
}

func newProfileStore(queries *sqlc.Queries) ProfileStore {
	return &profileStore{queries: queries}
}

func (s *profileStore) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	row, err := s.queries.GetProfile(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toProfileModel(row), nil
}

func (s *profileStore) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	row, err := s.queries.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, translate(err)
	}
	return toProfileModel(row), nil
}

func (s *profileStore) GetByWorkOSUserID(ctx context.Context, workosUserID string) (*model.Profile, error) {
	row, err := s.queries.GetProfileByWorkOSUserID(ctx, &workosUserID)
	if err != nil {
		return nil, translate(err)
	}
	return toProfileModel(row), nil
}

func (s *profileStore) Create(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.CreateProfile(ctx, sqlc.CreateProfileParams{
		ID:             profile.ID,
		OrganizationID: profile.OrganizationID,
		WorkosUserID:   profile.WorkOSUserID,
		Email:          profile.Email,
		Name:           profile.Name,
		AvatarUrl:      profile.AvatarURL,
		Role:           string(profile.Role),
	})
	if err != nil {
		return translate(err)
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) Update(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.UpdateProfile(ctx, sqlc.UpdateProfileParams{
		ID:        profile.ID,
		Name:      profile.Name,
		AvatarUrl: profile.AvatarURL,
	})
	if err != nil {
		return translate(err)
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) LinkWorkOSUser(ctx context.Context, id int64, workosUserID string) error {
	return translate(s.queries.LinkProfileWorkOSUser(ctx, sqlc.LinkProfileWorkOSUserParams{
		ID:           id,
		WorkosUserID: &workosUserID,
	}))
}

func (s *profileStore) SetMembership(ctx context.Context, id int64, orgID *int64, role model.Role) (*model.Profile, error) {
	row, err := s.queries.UpdateProfileMembership(ctx, sqlc.UpdateProfileMembershipParams{
		ID:             id,
		OrganizationID: orgID,
		Role:           string(role),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toProfileModel(row), nil
}

func (s *profileStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Profile, error) {
	rows, err := s.queries.ListProfilesByOrganization(ctx, &orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Profile, len(rows))
	for i, row := range rows {
		result[i] = *toProfileModel(row)
	}
	return result, nil
}

func (s *profileStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteProfile(ctx, id)
}

func toProfileModel(row sqlc.Profile) *model.Profile {
	return &model.Profile{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		WorkOSUserID:   row.WorkosUserID,
		Email:          row.Email,
		Name:           row.Name,
		AvatarURL:      row.AvatarUrl,
		Role:           model.Role(row.Role),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
