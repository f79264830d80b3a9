package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"aihub.app/api/common/id"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

type CreateContentInput struct {
	ToolSlug string
	Title    string
	Body     string
	Input    *string
	Metadata json.RawMessage
}

type ContentService interface {
	List(ctx context.Context, actor *model.Profile, limit, offset int32) ([]model.Content, error)
	Get(ctx context.Context, actor *model.Profile, contentID int64) (*model.Content, error)
	Create(ctx context.Context, actor *model.Profile, in CreateContentInput) (*model.Content, error)
	Update(ctx context.Context, actor *model.Profile, contentID int64, title, body *string) (*model.Content, error)
	Delete(ctx context.Context, actor *model.Profile, contentID int64) error
}

type contentService struct {
	contentStore store.ContentStore
	activities   ActivityService
}

func NewContentService(contentStore store.ContentStore, activities ActivityService) ContentService {
	return &contentService{contentStore: contentStore, activities: activities}
}

func (s *contentService) List(ctx context.Context, actor *model.Profile, limit, offset int32) ([]model.Content, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	limit, offset = page(limit, offset)

	contents, err := s.contentStore.List(ctx, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing contents: %w", err)
	}
	return contents, nil
}

func (s *contentService) Get(ctx context.Context, actor *model.Profile, contentID int64) (*model.Content, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, orgID, contentID)
}

func (s *contentService) Create(ctx context.Context, actor *model.Profile, in CreateContentInput) (*model.Content, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ToolSlug) == "" || strings.TrimSpace(in.Title) == "" || in.Body == "" {
		return nil, invalidInput("tool_slug, title and body are required")
	}
	if len(in.Metadata) > 0 && !json.Valid(in.Metadata) {
		return nil, invalidInput("metadata must be valid JSON")
	}

	content := &model.Content{
		ID:             id.New(),
		OrganizationID: orgID,
		ProfileID:      actor.ID,
		ToolSlug:       strings.TrimSpace(in.ToolSlug),
		Title:          strings.TrimSpace(in.Title),
		Body:           in.Body,
		Input:          in.Input,
		Metadata:       in.Metadata,
	}
	if err := s.contentStore.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("creating content: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityContentCreated, &content.ToolSlug, map[string]any{
		"content_id": content.ID,
	})
	return content, nil
}

func (s *contentService) Update(ctx context.Context, actor *model.Profile, contentID int64, title, body *string) (*model.Content, error) {
	content, err := s.loadForChange(ctx, actor, contentID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return nil, invalidInput("title cannot be empty")
		}
		content.Title = t
	}
	if body != nil {
		if *body == "" {
			return nil, invalidInput("body cannot be empty")
		}
		content.Body = *body
	}

	if err := s.contentStore.Update(ctx, content); err != nil {
		return nil, fmt.Errorf("updating content: %w", err)
	}
	return content, nil
}

func (s *contentService) Delete(ctx context.Context, actor *model.Profile, contentID int64) error {
	content, err := s.loadForChange(ctx, actor, contentID)
	if err != nil {
		return err
	}

	if err := s.contentStore.Delete(ctx, content.OrganizationID, content.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting content: %w", err)
	}

	recordActivity(ctx, s.activities, content.OrganizationID, actor.ID, model.ActivityContentDeleted, &content.ToolSlug, map[string]any{
		"content_id": content.ID,
	})
	return nil
}

func (s *contentService) loadForChange(ctx context.Context, actor *model.Profile, contentID int64) (*model.Content, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	content, err := s.load(ctx, orgID, contentID)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, &content.ProfileID) {
		return nil, ErrForbidden
	}
	return content, nil
}

func (s *contentService) load(ctx context.Context, orgID, contentID int64) (*model.Content, error) {
	content, err := s.contentStore.GetByID(ctx, orgID, contentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting content: %w", err)
	}
	return content, nil
}
