package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type usefulLinkStore struct {
	queries *sqlc.Queries
}

func newUsefulLinkStore(queries *sqlc.Queries) UsefulLinkStore {
	return &usefulLinkStore{queries: queries}
}

func (s *usefulLinkStore) GetByID(ctx context.Context, orgID, id int64) (*model.UsefulLink, error) {
	row, err := s.queries.GetUsefulLink(ctx, sqlc.GetUsefulLinkParams{ID: id, OrganizationID: orgID})
	if err != nil {
		return nil, translate(err)
	}
	return toUsefulLinkModel(row), nil
}

func (s *usefulLinkStore) List(ctx context.Context, orgID int64) ([]model.UsefulLink, error) {
	rows, err := s.queries.ListUsefulLinksByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.UsefulLink, len(rows))
	for i, row := range rows {
		result[i] = *toUsefulLinkModel(row)
	}
	return result, nil
}

func (s *usefulLinkStore) Create(ctx context.Context, link *model.UsefulLink) error {
	row, err := s.queries.CreateUsefulLink(ctx, sqlc.CreateUsefulLinkParams{
		ID:             link.ID,
		OrganizationID: link.OrganizationID,
		Title:          link.Title,
		Url:            link.URL,
		Description:    link.Description,
		CreatedBy:      link.CreatedBy,
	})
	if err != nil {
		return translate(err)
	}
	*link = *toUsefulLinkModel(row)
	return nil
}

func (s *usefulLinkStore) Update(ctx context.Context, link *model.UsefulLink) error {
	row, err := s.queries.UpdateUsefulLink(ctx, sqlc.UpdateUsefulLinkParams{
		ID:             link.ID,
		OrganizationID: link.OrganizationID,
		Title:          link.Title,
		Url:            link.URL,
		Description:    link.Description,
	})
	if err != nil {
		return translate(err)
	}
	*link = *toUsefulLinkModel(row)
	return nil
}

func (s *usefulLinkStore) Delete(ctx context.Context, orgID, id int64) error {
	return rowsOrNotFound(s.queries.DeleteUsefulLink(ctx, sqlc.DeleteUsefulLinkParams{ID: id, OrganizationID: orgID}))
}

func toUsefulLinkModel(row sqlc.UsefulLink) *model.UsefulLink {
	return &model.UsefulLink{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Title:          row.Title,
		URL:            row.Url,
		Description:    row.Description,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
