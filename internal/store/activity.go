package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) Create(ctx context.Context, a *model.Activity) error {
	metadata := []byte(a.Metadata)
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}

	row, err := s.queries.CreateActivity(ctx, sqlc.CreateActivityParams{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		ProfileID:      a.ProfileID,
		Action:         a.Action,
		ToolSlug:       a.ToolSlug,
		Metadata:       metadata,
	})
	if err != nil {
		return translate(err)
	}
	*a = *toActivityModel(row)
	return nil
}

func (s *activityStore) List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Activity, error) {
	rows, err := s.queries.ListActivitiesByOrganization(ctx, sqlc.ListActivitiesByOrganizationParams{
		OrganizationID: orgID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Activity, len(rows))
	for i, row := range rows {
		result[i] = *toActivityModel(row)
	}
	return result, nil
}

func toActivityModel(row sqlc.Activity) *model.Activity {
	return &model.Activity{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		ProfileID:      row.ProfileID,
		Action:         row.Action,
		ToolSlug:       row.ToolSlug,
		Metadata:       row.Metadata,
		CreatedAt:      row.CreatedAt.Time,
	}
}
