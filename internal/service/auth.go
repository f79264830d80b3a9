package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"aihub.app/api/common/id"
	"aihub.app/api/common/logger"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

const defaultSessionTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.Profile, string, error)
	Login(ctx context.Context, email, password string) (*model.Profile, string, error)
	// Authenticate resolves a bearer token to its profile.
	Authenticate(ctx context.Context, token string) (*model.Profile, error)
	Logout(ctx context.Context, token string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	profileStore store.ProfileStore
	sessionStore store.SessionStore
	identity     IdentityProvider
	sessionTTL   time.Duration
}

func NewAuthService(
	profileStore store.ProfileStore,
	sessionStore store.SessionStore,
	identity IdentityProvider,
	sessionTTL time.Duration,
) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &authService{
		profileStore: profileStore,
		sessionStore: sessionStore,
		identity:     identity,
		sessionTTL:   sessionTTL,
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*model.Profile, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", invalidInput("email and password are required")
	}

	if _, err := s.profileStore.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}

	user, err := s.identity.CreateUser(ctx, email, password, name)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create identity user", "error", err, "email", email)
		return nil, "", upstream("creating identity user", err)
	}

	if strings.TrimSpace(name) == "" {
		name = displayName(user)
	}
	profile := &model.Profile{
		ID:           id.New(),
		WorkOSUserID: &user.ID,
		Email:        email,
		Name:         strings.TrimSpace(name),
		AvatarURL:    optionalString(user.ProfilePictureURL),
		Role:         model.RoleUser,
	}
	if err := s.profileStore.Create(ctx, profile); err != nil {
		s.removeIdentityUser(ctx, user.ID)
		if errors.Is(err, store.ErrConflict) {
			return nil, "", ErrEmailExists
		}
		return nil, "", fmt.Errorf("creating profile: %w", err)
	}

	token, err := s.startSession(ctx, profile.ID)
	if err != nil {
		return nil, "", err
	}

	slog.InfoContext(ctx, "profile registered", "profile_id", profile.ID)
	return profile, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.Profile, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.identity.AuthenticatePassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrCredentialsRejected) {
			slog.WarnContext(ctx, "password authentication rejected", "error", err)
			return nil, "", ErrInvalidCredentials
		}
		slog.ErrorContext(ctx, "password authentication failed", "error", err)
		return nil, "", upstream("authenticating identity user", err)
	}

	profile, err := s.profileForIdentity(ctx, user, email)
	if err != nil {
		return nil, "", err
	}

	token, err := s.startSession(ctx, profile.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Step(ctx, slog.LevelInfo, "login succeeded", "profile_id", profile.ID)
	return profile, token, nil
}

// removeIdentityUser undoes CreateUser when the profile could not be stored,
// so the email can be registered again.
func (s *authService) removeIdentityUser(ctx context.Context, userID string) {
	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "failed to remove identity user after profile insert failed",
			"error", err, "workos_user_id", userID)
	}
}

// profileForIdentity finds the profile by identity ID, then by email, linking
// it on first login. A profile is created for identities unknown locally.
func (s *authService) profileForIdentity(ctx context.Context, user *IdentityUser, email string) (*model.Profile, error) {
	profile, err := s.profileStore.GetByWorkOSUserID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting profile by identity: %w", err)
	}

	profile, err = s.profileStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.profileStore.LinkWorkOSUser(ctx, profile.ID, user.ID); err != nil {
			return nil, fmt.Errorf("linking identity: %w", err)
		}
		profile.WorkOSUserID = &user.ID
		return profile, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("getting profile by email: %w", err)
	}

	profile = &model.Profile{
		ID:           id.New(),
		WorkOSUserID: &user.ID,
		Email:        email,
		Name:         displayName(user),
		AvatarURL:    optionalString(user.ProfilePictureURL),
		Role:         model.RoleUser,
	}
	if err := s.profileStore.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return profile, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.Profile, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionStore.GetValidByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	profile, err := s.profileStore.GetByID(ctx, session.ProfileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return profile, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionStore.DeleteByTokenHash(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessionStore.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting expired sessions: %w", err)
	}
	return n, nil
}

func (s *authService) startSession(ctx context.Context, profileID int64) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		ProfileID: profileID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session", "error", err, "profile_id", profileID)
		return "", fmt.Errorf("creating session: %w", err)
	}
	return token, nil
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
