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

var _ = Describe("ToolService", func() {
	var (
		ctx       context.Context
		tools     *mockToolStore
		svc       service.ToolService
		proofread model.DefaultTool
		override  *model.ToolOverride
	)

	BeforeEach(func() {
		ctx = context.Background()
		proofread = model.DefaultTool{
			ID:           100,
			Slug:         model.ToolSlugProofreader,
			Name:         "Proofreader",
			SystemPrompt: "You are a proofreader.",
			UserPrompt:   "{{text}}",
			Provider:     model.ProviderOpenAI,
			Model:        "gpt-4o-mini",
			Temperature:  0.3,
			TopP:         1,
			MaxTokens:    2048,
		}
		override = nil
		tools = &mockToolStore{
			getDefaultBySlugFn: func(_ context.Context, slug string) (*model.DefaultTool, error) {
				if slug == proofread.Slug {
					d := proofread
					return &d, nil
				}
				return nil, store.ErrNotFound
			},
			getOverrideFn: func(context.Context, int64, int64) (*model.ToolOverride, error) {
				if override == nil {
					return nil, store.ErrNotFound
				}
				return override, nil
			},
			upsertOverrideFn: func(_ context.Context, o *model.ToolOverride) error {
				override = o
				return nil
			},
		}
		svc = service.NewToolService(tools, &recordingActivities{})
	})

	It("resolves to the default when no override exists", func() {
		tool, err := svc.Get(ctx, member(1, 5, model.RoleUser), model.ToolSlugProofreader)

		Expect(err).NotTo(HaveOccurred())
		Expect(tool.IsCustom).To(BeFalse())
		Expect(tool.Model).To(Equal("gpt-4o-mini"))
	})

	It("merges successive partial updates into one override", func() {
		owner := member(1, 5, model.RoleOwner)
		temp := 0.9
		_, err := svc.Update(ctx, owner, model.ToolSlugProofreader, service.ToolUpdate{Temperature: &temp})
		Expect(err).NotTo(HaveOccurred())

		tool, err := svc.Update(ctx, owner, model.ToolSlugProofreader, service.ToolUpdate{Model: strPtr("gpt-4o")})
		Expect(err).NotTo(HaveOccurred())

		Expect(tool.IsCustom).To(BeTrue())
		Expect(tool.Temperature).To(Equal(0.9))
		Expect(tool.Model).To(Equal("gpt-4o"))
		Expect(tool.SystemPrompt).To(Equal("You are a proofreader."))
		Expect(override.OrganizationID).To(Equal(int64(5)))
		Expect(override.DefaultToolID).To(Equal(int64(100)))
	})

	It("requires a model when switching provider", func() {
		admin := member(1, 5, model.RoleAdmin)

		_, err := svc.Update(ctx, admin, model.ToolSlugProofreader, service.ToolUpdate{Provider: ptr(model.ProviderAnthropic)})
		Expect(err).To(MatchError(service.ErrInvalidInput))
		Expect(override).To(BeNil())

		tool, err := svc.Update(ctx, admin, model.ToolSlugProofreader, service.ToolUpdate{
			Provider: ptr(model.ProviderAnthropic),
			Model:    strPtr("claude-sonnet-4-5"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(tool.Provider).To(Equal(model.ProviderAnthropic))
		Expect(tool.Model).To(Equal("claude-sonnet-4-5"))
	})

	It("accepts the current provider without a model", func() {
		tool, err := svc.Update(ctx, member(1, 5, model.RoleAdmin), model.ToolSlugProofreader, service.ToolUpdate{Provider: ptr(model.ProviderOpenAI)})

		Expect(err).NotTo(HaveOccurred())
		Expect(tool.Model).To(Equal("gpt-4o-mini"))
	})

	DescribeTable("rejects out of range parameters",
		func(in service.ToolUpdate) {
			_, err := svc.Update(ctx, member(1, 5, model.RoleAdmin), model.ToolSlugProofreader, in)
			Expect(errors.Is(err, service.ErrInvalidInput)).To(BeTrue())
			Expect(override).To(BeNil())
		},
		Entry("temperature above 2", service.ToolUpdate{Temperature: ptr(2.5)}),
		Entry("negative temperature", service.ToolUpdate{Temperature: ptr(-0.1)}),
		Entry("top_p above 1", service.ToolUpdate{TopP: ptr(1.5)}),
		Entry("zero max_tokens", service.ToolUpdate{MaxTokens: ptr(int32(0))}),
		Entry("max_tokens above 32000", service.ToolUpdate{MaxTokens: ptr(int32(32001))}),
		Entry("unknown provider", service.ToolUpdate{Provider: ptr(model.Provider("mistral"))}),
	)

	It("forbids USER role from editing tools", func() {
		_, err := svc.Update(ctx, member(1, 5, model.RoleUser), model.ToolSlugProofreader, service.ToolUpdate{})
		Expect(err).To(MatchError(service.ErrForbidden))
	})

	It("returns ErrNotFound for unknown tools", func() {
		_, err := svc.Get(ctx, member(1, 5, model.RoleUser), "poetry")
		Expect(err).To(MatchError(service.ErrNotFound))
	})
})

func ptr[T any](v T) *T { return &v }
