package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/store"
)

var _ = Describe("ProfileService", func() {
	var (
		profiles *mockProfileStore
		orgs     *mockOrganizationStore
		svc      service.ProfileService
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		profiles = &mockProfileStore{}
		orgs = &mockOrganizationStore{}
		svc = service.NewProfileService(profiles, orgs)
	})

	Describe("Get", func() {
		It("returns the profile with its organization", func() {
			profiles.getByIDFn = func(_ context.Context, id int64) (*model.Profile, error) {
				return member(id, 100, model.RoleAdmin), nil
			}
			orgs.getByIDFn = func(_ context.Context, id int64) (*model.Organization, error) {
				return &model.Organization{ID: id, Name: "Acme Media", Slug: "acme-media"}, nil
			}

			profile, org, err := svc.Get(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ID).To(Equal(int64(1)))
			Expect(org.Slug).To(Equal("acme-media"))
		})

		It("returns no organization for a profile outside one", func() {
			profiles.getByIDFn = func(_ context.Context, id int64) (*model.Profile, error) {
				return &model.Profile{ID: id, Role: model.RoleUser}, nil
			}

			profile, org, err := svc.Get(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(profile).NotTo(BeNil())
			Expect(org).To(BeNil())
		})

		It("maps a missing profile to ErrNotFound", func() {
			_, _, err := svc.Get(ctx, 1)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("Update", func() {
		It("trims the name and keeps role and organization", func() {
			var saved model.Profile
			profiles.updateFn = func(_ context.Context, p *model.Profile) error {
				saved = *p
				return nil
			}
			actor := member(1, 100, model.RoleUser)

			updated, err := svc.Update(ctx, actor, service.ProfileUpdate{Name: strPtr("  Jane Doe ")})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Jane Doe"))
			Expect(saved.Role).To(Equal(model.RoleUser))
			Expect(*saved.OrganizationID).To(Equal(int64(100)))
		})

		It("rejects an empty name", func() {
			_, err := svc.Update(ctx, member(1, 100, model.RoleUser), service.ProfileUpdate{Name: strPtr("   ")})
			Expect(err).To(MatchError(service.ErrInvalidInput))
		})

		It("clears the avatar when given an empty string", func() {
			actor := member(1, 100, model.RoleUser)
			actor.AvatarURL = strPtr("https://cdn.example.com/a.png")

			updated, err := svc.Update(ctx, actor, service.ProfileUpdate{AvatarURL: strPtr("")})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.AvatarURL).To(BeNil())
		})

		It("surfaces store errors", func() {
			profiles.updateFn = func(_ context.Context, _ *model.Profile) error {
				return store.ErrConflict
			}

			_, err := svc.Update(ctx, member(1, 100, model.RoleUser), service.ProfileUpdate{Name: strPtr("Jane")})
			Expect(err).To(MatchError(store.ErrConflict))
		})
	})
})
