package service_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/common/llm"
	"aihub.app/api/core/config"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
)

var _ = Describe("LLMFactory", func() {
	var factory service.LLMFactory

	BeforeEach(func() {
		factory = service.NewLLMFactory(config.LLMConfig{
			OpenAIModel:    "gpt-4.1-mini",
			AnthropicModel: "claude-haiku-4-5",
		}, nil)
	})

	It("falls back to the configured default model", func() {
		completer, err := factory.Completer(model.ProviderAnthropic, "sk-ant-test", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(completer.Model()).To(Equal("claude-haiku-4-5"))
	})

	It("prefers the model named by the tool", func() {
		completer, err := factory.Completer(model.ProviderOpenAI, "sk-test", "gpt-4o")
		Expect(err).NotTo(HaveOccurred())
		Expect(completer.Model()).To(Equal("gpt-4o"))
	})

	It("uses the library default when config leaves the model empty", func() {
		completer, err := service.NewLLMFactory(config.LLMConfig{}, nil).Completer(model.ProviderOpenAI, "sk-test", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(completer.Model()).To(Equal(llm.DefaultOpenAIModel))
	})
})
