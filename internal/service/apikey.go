package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"aihub.app/api/common/id"
	"aihub.app/api/common/llm"
	"aihub.app/api/common/logger"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

type CreateAPIKeyInput struct {
	Provider model.Provider
	Key      string
	Name     string
}

type UpdateAPIKeyInput struct {
	Name   *string
	Key    *string
	Status *model.APIKeyStatus
}

// VerifyAPIKeyInput checks either a stored key (ID) or a raw provider/key pair.
type VerifyAPIKeyInput struct {
	ID       *int64
	Provider model.Provider
	Key      string
}

type VerifyResult struct {
	Valid    bool           `json:"valid"`
	Provider model.Provider `json:"provider"`
	Message  string         `json:"message"`
}

type APIKeyService interface {
	List(ctx context.Context, actor *model.Profile) ([]model.APIKey, error)
	Get(ctx context.Context, actor *model.Profile, keyID int64) (*model.APIKey, error)
	Create(ctx context.Context, actor *model.Profile, in CreateAPIKeyInput) (*model.APIKey, error)
	Update(ctx context.Context, actor *model.Profile, keyID int64, in UpdateAPIKeyInput) (*model.APIKey, error)
	Delete(ctx context.Context, actor *model.Profile, keyID int64) error
	Verify(ctx context.Context, actor *model.Profile, in VerifyAPIKeyInput) (*VerifyResult, error)
}

type apiKeyService struct {
	keyStore   store.APIKeyStore
	llm        LLMFactory
	activities ActivityService
}

func NewAPIKeyService(keyStore store.APIKeyStore, llmFactory LLMFactory, activities ActivityService) APIKeyService {
	return &apiKeyService{keyStore: keyStore, llm: llmFactory, activities: activities}
}

func (s *apiKeyService) List(ctx context.Context, actor *model.Profile) ([]model.APIKey, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	keys, err := s.keyStore.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing api keys: %w", err)
	}
	return keys, nil
}

func (s *apiKeyService) Get(ctx context.Context, actor *model.Profile, keyID int64) (*model.APIKey, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, orgID, keyID)
}

func (s *apiKeyService) Create(ctx context.Context, actor *model.Profile, in CreateAPIKeyInput) (*model.APIKey, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}
	if !in.Provider.Valid() {
		return nil, invalidInput("unknown provider %q", in.Provider)
	}
	secretKey := strings.TrimSpace(in.Key)
	if secretKey == "" {
		return nil, invalidInput("api_key is required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = string(in.Provider)
	}

	key := &model.APIKey{
		ID:             id.New(),
		OrganizationID: orgID,
		Provider:       in.Provider,
		Name:           name,
		Key:            secretKey,
		Status:         model.APIKeyStatusActive,
		CreatedBy:      &actor.ID,
	}
	if err := s.keyStore.Create(ctx, key); err != nil {
		return nil, fmt.Errorf("creating api key: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityAPIKeyCreated, nil, map[string]any{
		"api_key_id": key.ID,
		"provider":   key.Provider,
	})
	return key, nil
}

func (s *apiKeyService) Update(ctx context.Context, actor *model.Profile, keyID int64, in UpdateAPIKeyInput) (*model.APIKey, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}

	key, err := s.load(ctx, orgID, keyID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		key.Name = name
	}
	if in.Key != nil {
		secretKey := strings.TrimSpace(*in.Key)
		if secretKey == "" {
			return nil, invalidInput("api_key cannot be empty")
		}
		key.Key = secretKey
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, invalidInput("unknown status %q", *in.Status)
		}
		key.Status = *in.Status
	}

	if err := s.keyStore.Update(ctx, key); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating api key: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityAPIKeyUpdated, nil, map[string]any{
		"api_key_id": key.ID,
		"rotated":    in.Key != nil,
	})
	return key, nil
}

func (s *apiKeyService) Delete(ctx context.Context, actor *model.Profile, keyID int64) error {
	orgID, err := managerOrg(actor)
	if err != nil {
		return err
	}

	if err := s.keyStore.Delete(ctx, orgID, keyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting api key: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityAPIKeyDeleted, nil, map[string]any{
		"api_key_id": keyID,
	})
	return nil
}

func (s *apiKeyService) Verify(ctx context.Context, actor *model.Profile, in VerifyAPIKeyInput) (*VerifyResult, error) {
	var (
		orgID  int64
		stored *model.APIKey
		err    error
	)
	provider, secretKey := in.Provider, strings.TrimSpace(in.Key)

	if in.ID != nil {
		if orgID, err = managerOrg(actor); err != nil {
			return nil, err
		}
		if stored, err = s.load(ctx, orgID, *in.ID); err != nil {
			return nil, err
		}
		provider, secretKey = stored.Provider, stored.Key
	} else {
		if orgID, err = memberOrg(actor); err != nil {
			return nil, err
		}
		if !provider.Valid() {
			return nil, invalidInput("unknown provider %q", provider)
		}
		if secretKey == "" {
			return nil, invalidInput("api_key is required")
		}
	}

	verifier, err := s.llm.Verifier(provider, secretKey)
	if err != nil {
		return nil, fmt.Errorf("building verifier: %w", err)
	}

	sc := logger.StartSpan(ctx, "llm.verify_key")
	defer sc.End()

	result := &VerifyResult{Provider: provider}
	status := model.APIKeyStatusActive
	verifyErr := verifier.VerifyKey(sc.Context())
	switch {
	case verifyErr == nil:
		result.Valid = true
		result.Message = "API key is valid"
	case llm.IsAuthError(verifyErr):
		result.Message = "API key was rejected by the provider"
		status = model.APIKeyStatusInvalid
	default:
		sc.RecordError(verifyErr)
		slog.WarnContext(ctx, "api key verification failed", "error", verifyErr, "provider", provider)
		return nil, upstream("verifying api key", verifyErr)
	}

	if stored != nil {
		if err := s.keyStore.SetVerification(ctx, stored.ID, status); err != nil {
			return nil, fmt.Errorf("recording verification: %w", err)
		}
		recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityAPIKeyVerified, nil, map[string]any{
			"api_key_id": stored.ID,
			"valid":      result.Valid,
		})
	}
	return result, nil
}

func (s *apiKeyService) load(ctx context.Context, orgID, keyID int64) (*model.APIKey, error) {
	key, err := s.keyStore.GetByID(ctx, orgID, keyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting api key: %w", err)
	}
	return key, nil
}
