package service

import (
	"context"
	"errors"
	"fmt"

	"aihub.app/api/common/id"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

// ToolUpdate is a partial override. Nil fields keep their current value.
type ToolUpdate struct {
	SystemPrompt *string
	UserPrompt   *string
	Provider     *model.Provider
	Model        *string
	Temperature  *float64
	TopP         *float64
	MaxTokens    *int32
}

type ToolService interface {
	List(ctx context.Context, actor *model.Profile) ([]model.ResolvedTool, error)
	Get(ctx context.Context, actor *model.Profile, slug string) (*model.ResolvedTool, error)
	// Resolve applies an organization's override to the default tool.
	Resolve(ctx context.Context, orgID int64, slug string) (*model.ResolvedTool, error)
	Update(ctx context.Context, actor *model.Profile, slug string, in ToolUpdate) (*model.ResolvedTool, error)
	Reset(ctx context.Context, actor *model.Profile, slug string) (*model.ResolvedTool, error)
	SeedDefaults(ctx context.Context, tools []model.DefaultTool) error
}

type toolService struct {
	toolStore  store.ToolStore
	activities ActivityService
}

func NewToolService(toolStore store.ToolStore, activities ActivityService) ToolService {
	return &toolService{toolStore: toolStore, activities: activities}
}

func (s *toolService) List(ctx context.Context, actor *model.Profile) ([]model.ResolvedTool, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	defaults, err := s.toolStore.ListDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing default tools: %w", err)
	}
	overrides, err := s.toolStore.ListOverrides(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing tool overrides: %w", err)
	}

	byDefault := make(map[int64]*model.ToolOverride, len(overrides))
	for i := range overrides {
		byDefault[overrides[i].DefaultToolID] = &overrides[i]
	}

	resolved := make([]model.ResolvedTool, len(defaults))
	for i, d := range defaults {
		resolved[i] = model.Resolve(d, byDefault[d.ID])
	}
	return resolved, nil
}

func (s *toolService) Get(ctx context.Context, actor *model.Profile, slug string) (*model.ResolvedTool, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	return s.Resolve(ctx, orgID, slug)
}

func (s *toolService) Resolve(ctx context.Context, orgID int64, slug string) (*model.ResolvedTool, error) {
	def, override, err := s.load(ctx, orgID, slug)
	if err != nil {
		return nil, err
	}
	resolved := model.Resolve(*def, override)
	return &resolved, nil
}

func (s *toolService) Update(ctx context.Context, actor *model.Profile, slug string, in ToolUpdate) (*model.ResolvedTool, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}
	if err := validateToolUpdate(in); err != nil {
		return nil, err
	}

	def, override, err := s.load(ctx, orgID, slug)
	if err != nil {
		return nil, err
	}
	// A model name only means something to the provider it was chosen for.
	if current := model.Resolve(*def, override); in.Provider != nil && *in.Provider != current.Provider && in.Model == nil {
		return nil, invalidInput("model is required when changing provider from %s to %s", current.Provider, *in.Provider)
	}
	if override == nil {
		override = &model.ToolOverride{
			ID:             id.New(),
			OrganizationID: orgID,
			DefaultToolID:  def.ID,
		}
	}
	applyToolUpdate(override, in)

	if err := s.toolStore.UpsertOverride(ctx, override); err != nil {
		return nil, fmt.Errorf("saving tool override: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityToolUpdated, &def.Slug, nil)
	resolved := model.Resolve(*def, override)
	return &resolved, nil
}

func (s *toolService) Reset(ctx context.Context, actor *model.Profile, slug string) (*model.ResolvedTool, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}

	def, err := s.defaultTool(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.toolStore.DeleteOverride(ctx, orgID, def.ID); err != nil {
		return nil, fmt.Errorf("deleting tool override: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityToolReset, &def.Slug, nil)
	resolved := model.Resolve(*def, nil)
	return &resolved, nil
}

// SeedDefaults upserts default tools by slug. Existing IDs are preserved.
func (s *toolService) SeedDefaults(ctx context.Context, tools []model.DefaultTool) error {
	for i := range tools {
		t := tools[i]
		if t.Slug == "" || t.Name == "" {
			return invalidInput("tool %d: slug and name are required", i)
		}
		if !t.Provider.Valid() {
			return invalidInput("tool %s: unknown provider %q", t.Slug, t.Provider)
		}
		if err := validateToolUpdate(ToolUpdate{Temperature: &t.Temperature, TopP: &t.TopP, MaxTokens: &t.MaxTokens}); err != nil {
			return fmt.Errorf("tool %s: %w", t.Slug, err)
		}

		existing, err := s.toolStore.GetDefaultBySlug(ctx, t.Slug)
		switch {
		case err == nil:
			t.ID = existing.ID
		case errors.Is(err, store.ErrNotFound):
			t.ID = id.New()
		default:
			return fmt.Errorf("getting tool %s: %w", t.Slug, err)
		}

		if err := s.toolStore.UpsertDefault(ctx, &t); err != nil {
			return fmt.Errorf("upserting tool %s: %w", t.Slug, err)
		}
	}
	return nil
}

func (s *toolService) load(ctx context.Context, orgID int64, slug string) (*model.DefaultTool, *model.ToolOverride, error) {
	def, err := s.defaultTool(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	override, err := s.toolStore.GetOverride(ctx, orgID, def.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return def, nil, nil
		}
		return nil, nil, fmt.Errorf("getting tool override: %w", err)
	}
	return def, override, nil
}

func (s *toolService) defaultTool(ctx context.Context, slug string) (*model.DefaultTool, error) {
	def, err := s.toolStore.GetDefaultBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting tool: %w", err)
	}
	return def, nil
}

func validateToolUpdate(in ToolUpdate) error {
	if in.Provider != nil && !in.Provider.Valid() {
		return invalidInput("unknown provider %q", *in.Provider)
	}
	if in.Temperature != nil && (*in.Temperature < 0 || *in.Temperature > 2) {
		return invalidInput("temperature must be between 0 and 2")
	}
	if in.TopP != nil && (*in.TopP < 0 || *in.TopP > 1) {
		return invalidInput("top_p must be between 0 and 1")
	}
	if in.MaxTokens != nil && (*in.MaxTokens < 1 || *in.MaxTokens > 32000) {
		return invalidInput("max_tokens must be between 1 and 32000")
	}
	return nil
}

func applyToolUpdate(o *model.ToolOverride, in ToolUpdate) {
	if in.SystemPrompt != nil {
		o.SystemPrompt = in.SystemPrompt
	}
	if in.UserPrompt != nil {
		o.UserPrompt = in.UserPrompt
	}
	if in.Provider != nil {
		o.Provider = in.Provider
	}
	if in.Model != nil {
		o.Model = in.Model
	}
	if in.Temperature != nil {
		o.Temperature = in.Temperature
	}
	if in.TopP != nil {
		o.TopP = in.TopP
	}
	if in.MaxTokens != nil {
		o.MaxTokens = in.MaxTokens
	}
}
