package store

import (
	"context"
	"fmt"
	"time"

	"aihub.app/api/common/secret"
	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type wordPressStore struct {
	queries *sqlc.Queries
	box     *secret.Box
}

func newWordPressStore(queries *sqlc.Queries, box *secret.Box) WordPressStore {
	return &wordPressStore{queries: queries, box: box}
}

func (s *wordPressStore) GetByOrganization(ctx context.Context, orgID int64) (*model.WordPressIntegration, error) {
	row, err := s.queries.GetWordPressIntegrationByOrganization(ctx, orgID)
	if err != nil {
		return nil, translate(err)
	}
	return s.toModel(row)
}

func (s *wordPressStore) Upsert(ctx context.Context, w *model.WordPressIntegration) error {
	access, err := s.box.EncryptPtr(w.AccessToken)
	if err != nil {
		return fmt.Errorf("encrypting access token: %w", err)
	}
	refresh, err := s.box.EncryptPtr(w.RefreshToken)
	if err != nil {
		return fmt.Errorf("encrypting refresh token: %w", err)
	}
	password, err := s.box.EncryptPtr(w.AppPassword)
	if err != nil {
		return fmt.Errorf("encrypting application password: %w", err)
	}

	row, err := s.queries.UpsertWordPressIntegration(ctx, sqlc.UpsertWordPressIntegrationParams{
		ID:                     w.ID,
		OrganizationID:         w.OrganizationID,
		AuthType:               string(w.AuthType),
		SiteUrl:                w.SiteURL,
		SiteID:                 w.SiteID,
		SiteName:               w.SiteName,
		Username:               w.Username,
		AccessTokenCiphertext:  access,
		RefreshTokenCiphertext: refresh,
		AppPasswordCiphertext:  password,
		TokenExpiresAt:         timeToPgTimestamptz(w.TokenExpiresAt),
		ConnectedBy:            w.ConnectedBy,
	})
	if err != nil {
		return translate(err)
	}

	out, err := s.toModel(row)
	if err != nil {
		return err
	}
	*w = *out
	return nil
}

func (s *wordPressStore) UpdateTokens(ctx context.Context, id int64, accessToken string, refreshToken *string, expiresAt *time.Time) (*model.WordPressIntegration, error) {
	access, err := s.box.Encrypt(accessToken)
	if err != nil {
		return nil, fmt.Errorf("encrypting access token: %w", err)
	}
	refresh, err := s.box.EncryptPtr(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("encrypting refresh token: %w", err)
	}

	row, err := s.queries.UpdateWordPressTokens(ctx, sqlc.UpdateWordPressTokensParams{
		ID:                     id,
		AccessTokenCiphertext:  &access,
		RefreshTokenCiphertext: refresh,
		TokenExpiresAt:         timeToPgTimestamptz(expiresAt),
	})
	if err != nil {
		return nil, translate(err)
	}
	return s.toModel(row)
}

func (s *wordPressStore) ListExpiring(ctx context.Context, before time.Time) ([]model.WordPressIntegration, error) {
	rows, err := s.queries.ListExpiringWordPressIntegrations(ctx, timeToPgTimestamptz(&before))
	if err != nil {
		return nil, err
	}
	result := make([]model.WordPressIntegration, 0, len(rows))
	for _, row := range rows {
		w, err := s.toModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	return result, nil
}

func (s *wordPressStore) Delete(ctx context.Context, orgID int64) error {
	return rowsOrNotFound(s.queries.DeleteWordPressIntegration(ctx, orgID))
}

func (s *wordPressStore) toModel(row sqlc.WordpressIntegration) (*model.WordPressIntegration, error) {
	access, err := s.box.DecryptPtr(row.AccessTokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypting access token: %w", err)
	}
	refresh, err := s.box.DecryptPtr(row.RefreshTokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypting refresh token: %w", err)
	}
	password, err := s.box.DecryptPtr(row.AppPasswordCiphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypting application password: %w", err)
	}

	return &model.WordPressIntegration{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		AuthType:       model.AuthType(row.AuthType),
		SiteURL:        row.SiteUrl,
		SiteID:         row.SiteID,
		SiteName:       row.SiteName,
		Username:       row.Username,
		AccessToken:    access,
		RefreshToken:   refresh,
		AppPassword:    password,
		TokenExpiresAt: pgTimestamptzToTime(row.TokenExpiresAt),
		ConnectedBy:    row.ConnectedBy,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}, nil
}
