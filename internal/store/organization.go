package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
		ID:      org.ID,
		Name:    org.Name,
		Slug:    org.Slug,
		LogoUrl: org.LogoURL,
		Website: org.Website,
	})
	if err != nil {
		return translate(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Update(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.UpdateOrganization(ctx, sqlc.UpdateOrganizationParams{
		ID:      org.ID,
		Name:    org.Name,
		LogoUrl: org.LogoURL,
		Website: org.Website,
	})
	if err != nil {
		return translate(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	return &model.Organization{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		LogoURL:   row.LogoUrl,
		Website:   row.Website,
		IsDeleted: row.IsDeleted,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
