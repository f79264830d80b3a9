package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

type AdminService interface {
	DeleteUser(ctx context.Context, actor *model.Profile, userID int64) error
}

type adminService struct {
	profileStore store.ProfileStore
	txRunner     TxRunner
	identity     IdentityProvider
	activities   ActivityService
}

func NewAdminService(
	profileStore store.ProfileStore,
	txRunner TxRunner,
	identity IdentityProvider,
	activities ActivityService,
) AdminService {
	return &adminService{
		profileStore: profileStore,
		txRunner:     txRunner,
		identity:     identity,
		activities:   activities,
	}
}

func (s *adminService) DeleteUser(ctx context.Context, actor *model.Profile, userID int64) error {
	orgID, err := managerOrg(actor)
	if err != nil {
		return err
	}
	if userID == actor.ID {
		return ErrSelfDelete
	}

	target, err := s.profileStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}
	if !target.InOrganization(orgID) {
		return ErrNotFound
	}
	if target.Role == model.RoleOwner && actor.Role != model.RoleOwner {
		return ErrForbidden
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Sessions().DeleteByProfile(ctx, target.ID); err != nil {
			return fmt.Errorf("deleting sessions: %w", err)
		}
		if err := stores.Profiles().Delete(ctx, target.ID); err != nil {
			return fmt.Errorf("deleting profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deleted", "target_profile_id", target.ID)
	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityUserDeleted, nil, map[string]any{
		"user_id": target.ID,
		"email":   target.Email,
	})

	// Runs after commit; a failure leaves only an orphaned identity user.
	if target.WorkOSUserID != nil && s.identity != nil {
		if err := s.identity.DeleteUser(ctx, *target.WorkOSUserID); err != nil {
			slog.ErrorContext(ctx, "failed to delete identity user", "error", err,
				"target_profile_id", target.ID, "workos_user_id", *target.WorkOSUserID)
			return upstream("deleting identity user", err)
		}
	}
	return nil
}
