package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"aihub.app/api/common"
	"aihub.app/api/common/id"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

type CreateOrganizationInput struct {
	Name    string
	Slug    *string
	LogoURL *string
	Website *string
}

type UpdateOrganizationInput struct {
	Name    *string
	LogoURL *string
	Website *string
}

type OrganizationService interface {
	// Create makes the caller the OWNER of a new organization.
	Create(ctx context.Context, actor *model.Profile, in CreateOrganizationInput) (*model.Organization, *model.Profile, error)
	Get(ctx context.Context, actor *model.Profile) (*model.Organization, error)
	Update(ctx context.Context, actor *model.Profile, in UpdateOrganizationInput) (*model.Organization, error)
	ListMembers(ctx context.Context, actor *model.Profile) ([]model.Profile, error)
	ChangeMemberRole(ctx context.Context, actor *model.Profile, memberID int64, role model.Role) (*model.Profile, error)
}

type organizationService struct {
	txRunner     TxRunner
	orgStore     store.OrganizationStore
	profileStore store.ProfileStore
	activities   ActivityService
}

func NewOrganizationService(
	txRunner TxRunner,
	orgStore store.OrganizationStore,
	profileStore store.ProfileStore,
	activities ActivityService,
) OrganizationService {
	return &organizationService{
		txRunner:     txRunner,
		orgStore:     orgStore,
		profileStore: profileStore,
		activities:   activities,
	}
}

func (s *organizationService) Create(ctx context.Context, actor *model.Profile, in CreateOrganizationInput) (*model.Organization, *model.Profile, error) {
	if actor == nil {
		return nil, nil, ErrUnauthenticated
	}
	if actor.OrganizationID != nil {
		return nil, nil, ErrAlreadyInOrganization
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, nil, invalidInput("name is required")
	}

	var (
		org     *model.Organization
		profile *model.Profile
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		finalSlug, err := ensureSlug(ctx, stores.Organizations(), name, in.Slug)
		if err != nil {
			return err
		}

		org = &model.Organization{
			ID:      id.New(),
			Name:    name,
			Slug:    finalSlug,
			LogoURL: in.LogoURL,
			Website: in.Website,
		}
		if err := stores.Organizations().Create(ctx, org); err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		profile, err = stores.Profiles().SetMembership(ctx, actor.ID, &org.ID, model.RoleOwner)
		if err != nil {
			return fmt.Errorf("assigning owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "organization created", "organization_id", org.ID, "slug", org.Slug)
	recordActivity(ctx, s.activities, org.ID, actor.ID, model.ActivityOrganizationCreated, nil, map[string]any{
		"name": org.Name,
		"slug": org.Slug,
	})
	return org, profile, nil
}

func (s *organizationService) Get(ctx context.Context, actor *model.Profile) (*model.Organization, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	org, err := s.orgStore.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) Update(ctx context.Context, actor *model.Profile, in UpdateOrganizationInput) (*model.Organization, error) {
	if _, err := managerOrg(actor); err != nil {
		return nil, err
	}

	org, err := s.Get(ctx, actor)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		org.Name = name
	}
	if in.LogoURL != nil {
		org.LogoURL = optionalString(strings.TrimSpace(*in.LogoURL))
	}
	if in.Website != nil {
		org.Website = optionalString(strings.TrimSpace(*in.Website))
	}

	if err := s.orgStore.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	recordActivity(ctx, s.activities, org.ID, actor.ID, model.ActivityOrganizationUpdated, nil, nil)
	return org, nil
}

func (s *organizationService) ListMembers(ctx context.Context, actor *model.Profile) ([]model.Profile, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	members, err := s.profileStore.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	return members, nil
}

func (s *organizationService) ChangeMemberRole(ctx context.Context, actor *model.Profile, memberID int64, role model.Role) (*model.Profile, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleOwner {
		return nil, ErrForbidden
	}
	if memberID == actor.ID {
		return nil, ErrOwnRole
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return nil, invalidInput("role must be ADMIN or USER")
	}

	member, err := s.profileStore.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}
	if !member.InOrganization(orgID) {
		return nil, ErrNotFound
	}

	updated, err := s.profileStore.SetMembership(ctx, member.ID, &orgID, role)
	if err != nil {
		return nil, fmt.Errorf("changing role: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityMemberRoleChanged, nil, map[string]any{
		"member_id": member.ID,
		"from":      member.Role,
		"to":        role,
	})
	return updated, nil
}

func ensureSlug(ctx context.Context, orgStore store.OrganizationStore, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "org")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
