package store

import (
	"context"

	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/model"
)

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	row, err := s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:        session.ID,
		ProfileID: session.ProfileID,
		TokenHash: session.TokenHash,
		ExpiresAt: timeToPgTimestamptz(&session.ExpiresAt),
	})
	if err != nil {
		return translate(err)
	}
	*session = *toSessionModel(row)
	return nil
}

func (s *sessionStore) GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	row, err := s.queries.GetValidSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, translate(err)
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return s.queries.DeleteSessionByTokenHash(ctx, tokenHash)
}

func (s *sessionStore) DeleteByProfile(ctx context.Context, profileID int64) error {
	return s.queries.DeleteSessionsByProfile(ctx, profileID)
}

func (s *sessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return s.queries.DeleteExpiredSessions(ctx)
}

func toSessionModel(row sqlc.Session) *model.Session {
	return &model.Session{
		ID:        row.ID,
		ProfileID: row.ProfileID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt.Time,
		CreatedAt: row.CreatedAt.Time,
	}
}
