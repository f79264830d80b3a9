package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

type ProfileUpdate struct {
	Name      *string
	AvatarURL *string
}

type ProfileService interface {
	// Get returns the profile and its organization, which is nil for profiles
	// not yet in one.
	Get(ctx context.Context, profileID int64) (*model.Profile, *model.Organization, error)
	Update(ctx context.Context, actor *model.Profile, in ProfileUpdate) (*model.Profile, error)
}

type profileService struct {
	profileStore store.ProfileStore
	orgStore     store.OrganizationStore
}

func NewProfileService(profileStore store.ProfileStore, orgStore store.OrganizationStore) ProfileService {
	return &profileService{profileStore: profileStore, orgStore: orgStore}
}

func (s *profileService) Get(ctx context.Context, profileID int64) (*model.Profile, *model.Organization, error) {
	profile, err := s.profileStore.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("getting profile: %w", err)
	}

	if profile.OrganizationID == nil {
		return profile, nil, nil
	}

	org, err := s.orgStore.GetByID(ctx, *profile.OrganizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return profile, nil, nil
		}
		return nil, nil, fmt.Errorf("getting organization: %w", err)
	}
	return profile, org, nil
}

func (s *profileService) Update(ctx context.Context, actor *model.Profile, in ProfileUpdate) (*model.Profile, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	profile := *actor
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		profile.Name = name
	}
	if in.AvatarURL != nil {
		profile.AvatarURL = optionalString(strings.TrimSpace(*in.AvatarURL))
	}

	if err := s.profileStore.Update(ctx, &profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return &profile, nil
}
