package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type contentStore struct {
	queries *sqlc.Queries
}

func newContentStore(queries *sqlc.Queries) ContentStore {
	return &contentStore{queries: queries}
}

func (s *contentStore) GetByID(ctx context.Context, orgID, id int64) (*model.Content, error) {
	row, err := s.queries.GetContent(ctx, sqlc.GetContentParams{ID: id, OrganizationID: orgID})
	if err != nil {
		return nil, translate(err)
	}
	return toContentModel(row), nil
}

func (s *contentStore) List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Content, error) {
	rows, err := s.queries.ListContentsByOrganization(ctx, sqlc.ListContentsByOrganizationParams{
		OrganizationID: orgID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Content, len(rows))
	for i, row := range rows {
		result[i] = *toContentModel(row)
	}
	return result, nil
}

func (s *contentStore) Create(ctx context.Context, c *model.Content) error {
	metadata := []byte(c.Metadata)
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}

	row, err := s.queries.CreateContent(ctx, sqlc.CreateContentParams{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		ProfileID:      c.ProfileID,
		ToolSlug:       c.ToolSlug,
		Title:          c.Title,
		Body:           c.Body,
		Input:          c.Input,
		Metadata:       metadata,
	})
	if err != nil {
		return translate(err)
	}
	*c = *toContentModel(row)
	return nil
}

func (s *contentStore) Update(ctx context.Context, c *model.Content) error {
	row, err := s.queries.UpdateContent(ctx, sqlc.UpdateContentParams{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Title:          c.Title,
		Body:           c.Body,
	})
	if err != nil {
		return translate(err)
	}
	*c = *toContentModel(row)
	return nil
}

func (s *contentStore) Delete(ctx context.Context, orgID, id int64) error {
	return rowsOrNotFound(s.queries.DeleteContent(ctx, sqlc.DeleteContentParams{ID: id, OrganizationID: orgID}))
}

func toContentModel(row sqlc.Content) *model.Content {
	return &model.Content{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		ProfileID:      row.ProfileID,
		ToolSlug:       row.ToolSlug,
		Title:          row.Title,
		Body:           row.Body,
		Input:          row.Input,
		Metadata:       row.Metadata,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
