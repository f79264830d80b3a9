package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/store"
)

var _ = Describe("OrganizationService", func() {
	var (
		ctx        context.Context
		orgs       *mockOrganizationStore
		profiles   *mockProfileStore
		txRunner   *mockTxRunner
		activities *recordingActivities
		svc        service.OrganizationService
		takenSlugs map[string]bool
	)

	BeforeEach(func() {
		ctx = context.Background()
		takenSlugs = map[string]bool{}
		orgs = &mockOrganizationStore{
			getBySlugFn: func(_ context.Context, slug string) (*model.Organization, error) {
				if takenSlugs[slug] {
					return &model.Organization{Slug: slug}, nil
				}
				return nil, store.ErrNotFound
			},
		}
		profiles = &mockProfileStore{}
		txRunner = &mockTxRunner{
			withTxFn: func(_ context.Context, fn func(service.StoreProvider) error) error {
				return fn(&mockStoreProvider{orgs: orgs, profiles: profiles})
			},
		}
		activities = &recordingActivities{}
		svc = service.NewOrganizationService(txRunner, orgs, profiles, activities)
	})

	Describe("Create", func() {
		It("creates the organization and makes the caller its OWNER", func() {
			actor := &model.Profile{ID: 10, Role: model.RoleUser}
			var promoted model.Role

			profiles.setMembershipFn = func(_ context.Context, id int64, orgID *int64, role model.Role) (*model.Profile, error) {
				Expect(id).To(Equal(int64(10)))
				Expect(orgID).NotTo(BeNil())
				promoted = role
				return &model.Profile{ID: id, OrganizationID: orgID, Role: role}, nil
			}

			org, profile, err := svc.Create(ctx, actor, service.CreateOrganizationInput{Name: "Acme Media"})

			Expect(err).NotTo(HaveOccurred())
			Expect(org.Slug).To(Equal("acme-media"))
			Expect(promoted).To(Equal(model.RoleOwner))
			Expect(profile.InOrganization(org.ID)).To(BeTrue())
			Expect(activities.actions).To(ConsistOf(model.ActivityOrganizationCreated))
		})

		It("suffixes a slug that is already taken", func() {
			takenSlugs["acme"] = true
			takenSlugs["acme-1"] = true

			org, _, err := svc.Create(ctx, &model.Profile{ID: 1}, service.CreateOrganizationInput{Name: "Acme"})

			Expect(err).NotTo(HaveOccurred())
			Expect(org.Slug).To(Equal("acme-2"))
		})

		It("rejects callers that already belong to an organization", func() {
			_, _, err := svc.Create(ctx, member(1, 5, model.RoleUser), service.CreateOrganizationInput{Name: "Other"})
			Expect(err).To(MatchError(service.ErrAlreadyInOrganization))
		})

		It("does not record activity when the transaction fails", func() {
			profiles.setMembershipFn = func(context.Context, int64, *int64, model.Role) (*model.Profile, error) {
				return nil, errors.New("boom")
			}

			_, _, err := svc.Create(ctx, &model.Profile{ID: 1}, service.CreateOrganizationInput{Name: "Acme"})

			Expect(err).To(HaveOccurred())
			Expect(activities.actions).To(BeEmpty())
		})
	})

	Describe("ChangeMemberRole", func() {
		It("lets the OWNER promote a member", func() {
			profiles.getByIDFn = func(_ context.Context, id int64) (*model.Profile, error) {
				return member(id, 5, model.RoleUser), nil
			}

			updated, err := svc.ChangeMemberRole(ctx, member(1, 5, model.RoleOwner), 2, model.RoleAdmin)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(model.RoleAdmin))
		})

		It("forbids ADMINs from changing roles", func() {
			_, err := svc.ChangeMemberRole(ctx, member(1, 5, model.RoleAdmin), 2, model.RoleAdmin)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("refuses to change the caller's own role", func() {
			_, err := svc.ChangeMemberRole(ctx, member(1, 5, model.RoleOwner), 1, model.RoleUser)
			Expect(err).To(MatchError(service.ErrOwnRole))
		})

		It("treats members of other organizations as not found", func() {
			profiles.getByIDFn = func(_ context.Context, id int64) (*model.Profile, error) {
				return member(id, 99, model.RoleUser), nil
			}

			_, err := svc.ChangeMemberRole(ctx, member(1, 5, model.RoleOwner), 2, model.RoleAdmin)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})
})
