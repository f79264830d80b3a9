package service_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		profiles *mockProfileStore
		sessions *mockSessionStore
		identity *mockIdentityProvider
		svc      service.AuthService
		created  []*model.Session
		stored   *model.Profile
	)

	BeforeEach(func() {
		ctx = context.Background()
		created = nil
		stored = nil
		profiles = &mockProfileStore{
			createFn: func(_ context.Context, p *model.Profile) error {
				stored = p
				return nil
			},
		}
		sessions = &mockSessionStore{
			createFn: func(_ context.Context, s *model.Session) error {
				created = append(created, s)
				return nil
			},
		}
		identity = &mockIdentityProvider{}
		svc = service.NewAuthService(profiles, sessions, identity, time.Hour)
	})

	Describe("Register", func() {
		It("creates a USER profile and a session", func() {
			profile, token, err := svc.Register(ctx, "  New@Example.com ", "secret-pass", "New User")

			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(profile.Email).To(Equal("new@example.com"))
			Expect(profile.Role).To(Equal(model.RoleUser))
			Expect(profile.OrganizationID).To(BeNil())
			Expect(stored).To(Equal(profile))

			Expect(created).To(HaveLen(1))
			Expect(created[0].ProfileID).To(Equal(profile.ID))
			Expect(created[0].TokenHash).NotTo(Equal(token))
			Expect(created[0].ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
		})

		It("rejects an email that is already registered", func() {
			profiles.getByEmailFn = func(_ context.Context, email string) (*model.Profile, error) {
				return &model.Profile{ID: 1, Email: email}, nil
			}
			identityCalled := false
			identity.createUserFn = func(context.Context, string, string, string) (*service.IdentityUser, error) {
				identityCalled = true
				return nil, nil
			}

			_, _, err := svc.Register(ctx, "taken@example.com", "pw", "")

			Expect(err).To(MatchError(service.ErrEmailExists))
			Expect(identityCalled).To(BeFalse())
			Expect(created).To(BeEmpty())
		})

		It("maps a profile unique violation to ErrEmailExists and removes the identity user", func() {
			identity.createUserFn = func(_ context.Context, email, _, _ string) (*service.IdentityUser, error) {
				return &service.IdentityUser{ID: "user_race", Email: email}, nil
			}
			var deleted []string
			identity.deleteUserFn = func(_ context.Context, userID string) error {
				deleted = append(deleted, userID)
				return nil
			}
			profiles.createFn = func(context.Context, *model.Profile) error {
				return store.ErrConflict
			}

			_, _, err := svc.Register(ctx, "race@example.com", "pw", "Race")

			Expect(err).To(MatchError(service.ErrEmailExists))
			Expect(deleted).To(Equal([]string{"user_race"}))
			Expect(created).To(BeEmpty())
		})

		It("keeps the profile error when removing the identity user also fails", func() {
			dbErr := errors.New("connection reset")
			profiles.createFn = func(context.Context, *model.Profile) error {
				return dbErr
			}
			deleteCalls := 0
			identity.deleteUserFn = func(context.Context, string) error {
				deleteCalls++
				return errors.New("workos unavailable")
			}

			_, _, err := svc.Register(ctx, "broken@example.com", "pw", "")

			Expect(err).To(MatchError(dbErr))
			Expect(errors.Is(err, service.ErrUpstream)).To(BeFalse())
			Expect(deleteCalls).To(Equal(1))
		})

		It("wraps identity failures as upstream errors", func() {
			identity.createUserFn = func(context.Context, string, string, string) (*service.IdentityUser, error) {
				return nil, errors.New("password too weak")
			}

			_, _, err := svc.Register(ctx, "weak@example.com", "pw", "")
			Expect(errors.Is(err, service.ErrUpstream)).To(BeTrue())
		})

		It("requires email and password", func() {
			_, _, err := svc.Register(ctx, " ", "", "")
			Expect(errors.Is(err, service.ErrInvalidInput)).To(BeTrue())
		})
	})

	Describe("Login", func() {
		It("returns ErrInvalidCredentials when the identity provider rejects the password", func() {
			identity.authenticatePasswordFn = func(context.Context, string, string) (*service.IdentityUser, error) {
				return nil, fmt.Errorf("%w: invalid_credentials", service.ErrCredentialsRejected)
			}

			_, _, err := svc.Login(ctx, "user@example.com", "wrong")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
			Expect(created).To(BeEmpty())
		})

		It("reports an unreachable identity provider as an upstream error", func() {
			identity.authenticatePasswordFn = func(context.Context, string, string) (*service.IdentityUser, error) {
				return nil, errors.New("dial tcp: connection refused")
			}

			_, _, err := svc.Login(ctx, "user@example.com", "pw")

			Expect(errors.Is(err, service.ErrUpstream)).To(BeTrue())
			Expect(errors.Is(err, service.ErrInvalidCredentials)).To(BeFalse())
			Expect(created).To(BeEmpty())
		})

		It("links an existing profile found by email", func() {
			existing := &model.Profile{ID: 7, Email: "user@example.com", Role: model.RoleUser}
			profiles.getByEmailFn = func(context.Context, string) (*model.Profile, error) {
				return existing, nil
			}
			var linked string
			profiles.linkWorkOSUserFn = func(_ context.Context, id int64, workosID string) error {
				Expect(id).To(Equal(int64(7)))
				linked = workosID
				return nil
			}

			profile, token, err := svc.Login(ctx, "User@Example.com", "pw")

			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(profile.ID).To(Equal(int64(7)))
			Expect(linked).To(Equal("user_01"))
			Expect(stored).To(BeNil())
		})

		It("creates a profile for an identity unknown locally", func() {
			profile, _, err := svc.Login(ctx, "fresh@example.com", "pw")

			Expect(err).NotTo(HaveOccurred())
			Expect(stored).NotTo(BeNil())
			Expect(profile.WorkOSUserID).To(HaveValue(Equal("user_01")))
		})
	})

	Describe("Authenticate", func() {
		It("resolves a token issued by Register", func() {
			_, token, err := svc.Register(ctx, "a@example.com", "pw", "A")
			Expect(err).NotTo(HaveOccurred())

			sessions.getValidByTokenHashFn = func(_ context.Context, hash string) (*model.Session, error) {
				Expect(hash).To(Equal(created[0].TokenHash))
				return created[0], nil
			}
			profiles.getByIDFn = func(_ context.Context, id int64) (*model.Profile, error) {
				return stored, nil
			}

			profile, err := svc.Authenticate(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile).To(Equal(stored))
		})

		It("rejects unknown or expired tokens", func() {
			_, err := svc.Authenticate(ctx, "nope")
			Expect(err).To(MatchError(service.ErrUnauthenticated))

			_, err = svc.Authenticate(ctx, "")
			Expect(err).To(MatchError(service.ErrUnauthenticated))
		})
	})
})
