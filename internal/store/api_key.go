package store

import (
	"context"
	"fmt"

	"aihub.app/api/common/secret"
	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type apiKeyStore struct {
	queries *sqlc.Queries
	box     *secret.Box
}

func newAPIKeyStore(queries *sqlc.Queries, box *secret.Box) APIKeyStore {
	return &apiKeyStore{queries: queries, box: box}
}

func (s *apiKeyStore) GetByID(ctx context.Context, orgID, id int64) (*model.APIKey, error) {
	row, err := s.queries.GetApiKey(ctx, sqlc.GetApiKeyParams{ID: id, OrganizationID: orgID})
	if err != nil {
		return nil, translate(err)
	}
	return s.decrypted(row)
}

func (s *apiKeyStore) GetActiveByProvider(ctx context.Context, orgID int64, provider model.Provider) (*model.APIKey, error) {
	row, err := s.queries.GetActiveApiKeyByProvider(ctx, sqlc.GetActiveApiKeyByProviderParams{
		OrganizationID: orgID,
		Provider:       string(provider),
	})
	if err != nil {
		return nil, translate(err)
	}
	return s.decrypted(row)
}

// ListByOrganization returns keys without their plaintext.
func (s *apiKeyStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.APIKey, error) {
	rows, err := s.queries.ListApiKeysByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.APIKey, len(rows))
	for i, row := range rows {
		result[i] = *toAPIKeyModel(row)
	}
	return result, nil
}

func (s *apiKeyStore) Create(ctx context.Context, key *model.APIKey) error {
	ciphertext, err := s.box.Encrypt(key.Key)
	if err != nil {
		return fmt.Errorf("encrypting api key: %w", err)
	}

	row, err := s.queries.CreateApiKey(ctx, sqlc.CreateApiKeyParams{
		ID:             key.ID,
		OrganizationID: key.OrganizationID,
		Provider:       string(key.Provider),
		Name:           key.Name,
		KeyCiphertext:  ciphertext,
		KeyHint:        secret.Hint(key.Key),
		Status:         string(key.Status),
		CreatedBy:      key.CreatedBy,
	})
	if err != nil {
		return translate(err)
	}

	plaintext := key.Key
	*key = *toAPIKeyModel(row)
	key.Key = plaintext
	return nil
}

// Update persists name, status and the plaintext key, which is re-encrypted.
func (s *apiKeyStore) Update(ctx context.Context, key *model.APIKey) error {
	ciphertext, err := s.box.Encrypt(key.Key)
	if err != nil {
		return fmt.Errorf("encrypting api key: %w", err)
	}

	row, err := s.queries.UpdateApiKey(ctx, sqlc.UpdateApiKeyParams{
		ID:             key.ID,
		OrganizationID: key.OrganizationID,
		Name:           key.Name,
		KeyCiphertext:  ciphertext,
		KeyHint:        secret.Hint(key.Key),
		Status:         string(key.Status),
	})
	if err != nil {
		return translate(err)
	}

	plaintext := key.Key
	*key = *toAPIKeyModel(row)
	key.Key = plaintext
	return nil
}

func (s *apiKeyStore) SetVerification(ctx context.Context, id int64, status model.APIKeyStatus) error {
	return s.queries.UpdateApiKeyVerification(ctx, sqlc.UpdateApiKeyVerificationParams{
		ID:     id,
		Status: string(status),
	})
}

func (s *apiKeyStore) Delete(ctx context.Context, orgID, id int64) error {
	return rowsOrNotFound(s.queries.DeleteApiKey(ctx, sqlc.DeleteApiKeyParams{ID: id, OrganizationID: orgID}))
}

func (s *apiKeyStore) decrypted(row sqlc.ApiKey) (*model.APIKey, error) {
	key := toAPIKeyModel(row)
	plaintext, err := s.box.Decrypt(row.KeyCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypting api key %d: %w", row.ID, err)
	}
	key.Key = plaintext
	return key, nil
}

func toAPIKeyModel(row sqlc.ApiKey) *model.APIKey {
	return &model.APIKey{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Provider:       model.Provider(row.Provider),
		Name:           row.Name,
		KeyHint:        row.KeyHint,
		Status:         model.APIKeyStatus(row.Status),
		LastVerifiedAt: pgTimestamptzToTime(row.LastVerifiedAt),
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
