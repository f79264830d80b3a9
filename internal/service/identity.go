package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/workos/workos-go/v6/pkg/usermanagement"
	"github.com/workos/workos-go/v6/pkg/workos_errors"

	"aihub.app/api/core/config"
)

// IdentityUser is a user as the identity provider knows it.
type IdentityUser struct {
	ID                string
	Email             string
	FirstName         string
	LastName          string
	ProfilePictureURL string
}

// ErrCredentialsRejected is returned by an IdentityProvider when it answered
// but refused the email and password.
var ErrCredentialsRejected = errors.New("identity provider rejected the credentials")

// IdentityProvider owns credentials. Profiles only reference its user IDs.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, name string) (*IdentityUser, error)
	AuthenticatePassword(ctx context.Context, email, password string) (*IdentityUser, error)
	DeleteUser(ctx context.Context, userID string) error
}

type workOSIdentityProvider struct {
	clientID string
}

func NewWorkOSIdentityProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSIdentityProvider{clientID: cfg.ClientID}
}

func (p *workOSIdentityProvider) CreateUser(ctx context.Context, email, password, name string) (*IdentityUser, error) {
	first, last := splitName(name)
	user, err := usermanagement.CreateUser(ctx, usermanagement.CreateUserOpts{
		Email:     email,
		Password:  password,
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		return nil, fmt.Errorf("creating workos user: %w", err)
	}
	return toIdentityUser(user), nil
}

func (p *workOSIdentityProvider) AuthenticatePassword(ctx context.Context, email, password string) (*IdentityUser, error) {
	resp, err := usermanagement.AuthenticateWithPassword(ctx, usermanagement.AuthenticateWithPasswordOpts{
		ClientID: p.clientID,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if credentialsRejected(err) {
			return nil, fmt.Errorf("%w: %w", ErrCredentialsRejected, err)
		}
		return nil, fmt.Errorf("authenticating with password: %w", err)
	}
	return toIdentityUser(resp.User), nil
}

func (p *workOSIdentityProvider) DeleteUser(ctx context.Context, userID string) error {
	if err := usermanagement.DeleteUser(ctx, usermanagement.DeleteUserOpts{User: userID}); err != nil {
		return fmt.Errorf("deleting workos user: %w", err)
	}
	return nil
}

// credentialsRejected reports whether WorkOS answered a password
// authentication with a client error. Step-up challenges count as rejections
// since only plain password sign-in is supported. Rate limits, server errors
// and transport failures do not.
func credentialsRejected(err error) bool {
	var httpErr workos_errors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code >= http.StatusBadRequest &&
			httpErr.Code < http.StatusInternalServerError &&
			httpErr.Code != http.StatusTooManyRequests
	}

	var (
		emailVerification *workos_errors.EmailVerificationRequiredError
		mfaEnrollment     *workos_errors.MFAEnrollmentError
		mfaChallenge      *workos_errors.MFAChallengeError
		orgSelection      *workos_errors.OrganizationSelectionRequiredError
		ssoRequired       *workos_errors.SSORequiredError
		orgAuthMethods    *workos_errors.OrganizationAuthenticationMethodsRequiredError
	)
	return errors.As(err, &emailVerification) ||
		errors.As(err, &mfaEnrollment) ||
		errors.As(err, &mfaChallenge) ||
		errors.As(err, &orgSelection) ||
		errors.As(err, &ssoRequired) ||
		errors.As(err, &orgAuthMethods)
}

func toIdentityUser(u usermanagement.User) *IdentityUser {
	return &IdentityUser{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}

func displayName(u *IdentityUser) string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.LastName != "" {
		return u.LastName
	}
	return u.Email
}
