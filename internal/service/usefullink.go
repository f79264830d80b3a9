package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"aihub.app/api/common/id"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

type CreateUsefulLinkInput struct {
	Title       string
	URL         string
	Description *string
}

type UpdateUsefulLinkInput struct {
	Title       *string
	URL         *string
	Description *string
}

type UsefulLinkService interface {
	List(ctx context.Context, actor *model.Profile) ([]model.UsefulLink, error)
	Create(ctx context.Context, actor *model.Profile, in CreateUsefulLinkInput) (*model.UsefulLink, error)
	Update(ctx context.Context, actor *model.Profile, linkID int64, in UpdateUsefulLinkInput) (*model.UsefulLink, error)
	Delete(ctx context.Context, actor *model.Profile, linkID int64) error
}

type usefulLinkService struct {
	linkStore store.UsefulLinkStore
}

func NewUsefulLinkService(linkStore store.UsefulLinkStore) UsefulLinkService {
	return &usefulLinkService{linkStore: linkStore}
}

func (s *usefulLinkService) List(ctx context.Context, actor *model.Profile) ([]model.UsefulLink, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	links, err := s.linkStore.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing useful links: %w", err)
	}
	return links, nil
}

func (s *usefulLinkService) Create(ctx context.Context, actor *model.Profile, in CreateUsefulLinkInput) (*model.UsefulLink, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidInput("title is required")
	}
	link := &model.UsefulLink{
		ID:             id.New(),
		OrganizationID: orgID,
		Title:          title,
		Description:    trimOptional(in.Description),
		CreatedBy:      &actor.ID,
	}
	if link.URL, err = validateLinkURL(in.URL); err != nil {
		return nil, err
	}

	if err := s.linkStore.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("creating useful link: %w", err)
	}
	return link, nil
}

func (s *usefulLinkService) Update(ctx context.Context, actor *model.Profile, linkID int64, in UpdateUsefulLinkInput) (*model.UsefulLink, error) {
	link, err := s.loadForChange(ctx, actor, linkID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidInput("title cannot be empty")
		}
		link.Title = title
	}
	if in.URL != nil {
		if link.URL, err = validateLinkURL(*in.URL); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		link.Description = trimOptional(in.Description)
	}

	if err := s.linkStore.Update(ctx, link); err != nil {
		return nil, fmt.Errorf("updating useful link: %w", err)
	}
	return link, nil
}

func (s *usefulLinkService) Delete(ctx context.Context, actor *model.Profile, linkID int64) error {
	link, err := s.loadForChange(ctx, actor, linkID)
	if err != nil {
		return err
	}

	if err := s.linkStore.Delete(ctx, link.OrganizationID, link.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting useful link: %w", err)
	}
	return nil
}

// loadForChange returns the link if actor is its creator or a manager.
func (s *usefulLinkService) loadForChange(ctx context.Context, actor *model.Profile, linkID int64) (*model.UsefulLink, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	link, err := s.linkStore.GetByID(ctx, orgID, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting useful link: %w", err)
	}
	if !canModify(actor, link.CreatedBy) {
		return nil, ErrForbidden
	}
	return link, nil
}

func validateLinkURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", invalidInput("url must be an absolute http(s) URL")
	}
	return raw, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return optionalString(strings.TrimSpace(*s))
}
