package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type toolStore struct {
	queries *sqlc.Queries
}

func newToolStore(queries *sqlc.Queries) ToolStore {
	return &toolStore{queries: queries}
}

func (s *toolStore) GetDefaultBySlug(ctx context.Context, slug string) (*model.DefaultTool, error) {
	row, err := s.queries.GetDefaultToolBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return toDefaultToolModel(row), nil
}

func (s *toolStore) ListDefaults(ctx context.Context) ([]model.DefaultTool, error) {
	rows, err := s.queries.ListDefaultTools(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.DefaultTool, len(rows))
	for i, row := range rows {
		result[i] = *toDefaultToolModel(row)
	}
	return result, nil
}

func (s *toolStore) UpsertDefault(ctx context.Context, tool *model.DefaultTool) error {
	row, err := s.queries.UpsertDefaultTool(ctx, sqlc.UpsertDefaultToolParams{
		ID:           tool.ID,
		Slug:         tool.Slug,
		Name:         tool.Name,
		Description:  tool.Description,
		SystemPrompt: tool.SystemPrompt,
		UserPrompt:   tool.UserPrompt,
		Provider:     string(tool.Provider),
		Model:        tool.Model,
		Temperature:  tool.Temperature,
		TopP:         tool.TopP,
		MaxTokens:    tool.MaxTokens,
	})
	if err != nil {
		return translate(err)
	}
	*tool = *toDefaultToolModel(row)
	return nil
}

func (s *toolStore) GetOverride(ctx context.Context, orgID, defaultToolID int64) (*model.ToolOverride, error) {
	row, err := s.queries.GetToolOverride(ctx, sqlc.GetToolOverrideParams{
		OrganizationID: orgID,
		DefaultToolID:  defaultToolID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toToolOverrideModel(row), nil
}

func (s *toolStore) ListOverrides(ctx context.Context, orgID int64) ([]model.ToolOverride, error) {
	rows, err := s.queries.ListToolOverridesByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.ToolOverride, len(rows))
	for i, row := range rows {
		result[i] = *toToolOverrideModel(row)
	}
	return result, nil
}

func (s *toolStore) UpsertOverride(ctx context.Context, o *model.ToolOverride) error {
	var provider *string
	if o.Provider != nil {
		p := string(*o.Provider)
		provider = &p
	}

	row, err := s.queries.UpsertToolOverride(ctx, sqlc.UpsertToolOverrideParams{
		ID:             o.ID,
		OrganizationID: o.OrganizationID,
		DefaultToolID:  o.DefaultToolID,
		SystemPrompt:   o.SystemPrompt,
		UserPrompt:     o.UserPrompt,
		Provider:       provider,
		Model:          o.Model,
		Temperature:    o.Temperature,
		TopP:           o.TopP,
		MaxTokens:      o.MaxTokens,
	})
	if err != nil {
		return translate(err)
	}
	*o = *toToolOverrideModel(row)
	return nil
}

func (s *toolStore) DeleteOverride(ctx context.Context, orgID, defaultToolID int64) error {
	return s.queries.DeleteToolOverride(ctx, sqlc.DeleteToolOverrideParams{
		OrganizationID: orgID,
		DefaultToolID:  defaultToolID,
	})
}

func toDefaultToolModel(row sqlc.DefaultTool) *model.DefaultTool {
	return &model.DefaultTool{
		ID:           row.ID,
		Slug:         row.Slug,
		Name:         row.Name,
		Description:  row.Description,
		SystemPrompt: row.SystemPrompt,
		UserPrompt:   row.UserPrompt,
		Provider:     model.Provider(row.Provider),
		Model:        row.Model,
		Temperature:  row.Temperature,
		TopP:         row.TopP,
		MaxTokens:    row.MaxTokens,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

func toToolOverrideModel(row sqlc.Tool) *model.ToolOverride {
	var provider *model.Provider
	if row.Provider != nil {
		p := model.Provider(*row.Provider)
		provider = &p
	}

	return &model.ToolOverride{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		DefaultToolID:  row.DefaultToolID,
		SystemPrompt:   row.SystemPrompt,
		UserPrompt:     row.UserPrompt,
		Provider:       provider,
		Model:          row.Model,
		Temperature:    row.Temperature,
		TopP:           row.TopP,
		MaxTokens:      row.MaxTokens,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
