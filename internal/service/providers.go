package service

import (
	"net/http"

	"aihub.app/api/common/llm"
	"aihub.app/api/core/config"
	"aihub.app/api/internal/model"
)

// LLMFactory builds vendor clients for an organization's stored key.
type LLMFactory interface {
	Completer(provider model.Provider, apiKey, modelName string) (llm.Completer, error)
	Verifier(provider model.Provider, apiKey string) (llm.Verifier, error)
}

type llmFactory struct {
	cfg        config.LLMConfig
	httpClient *http.Client
}

func NewLLMFactory(cfg config.LLMConfig, httpClient *http.Client) LLMFactory {
	return &llmFactory{cfg: cfg, httpClient: httpClient}
}

func (f *llmFactory) Completer(provider model.Provider, apiKey, modelName string) (llm.Completer, error) {
	cfg := f.config(provider, apiKey)
	if modelName != "" {
		cfg.Model = modelName
	}
	return llm.NewCompleter(cfg)
}

func (f *llmFactory) Verifier(provider model.Provider, apiKey string) (llm.Verifier, error) {
	return llm.NewVerifier(f.config(provider, apiKey))
}

func (f *llmFactory) config(provider model.Provider, apiKey string) llm.Config {
	cfg := llm.Config{
		Provider:   string(provider),
		APIKey:     apiKey,
		Timeout:    f.cfg.RequestTimeout,
		HTTPClient: f.httpClient,
	}
	switch provider {
	case model.ProviderOpenAI:
		cfg.BaseURL = f.cfg.OpenAIBaseURL
		cfg.Model = f.cfg.OpenAIModel
	case model.ProviderAnthropic:
		cfg.BaseURL = f.cfg.AnthropicBaseURL
		cfg.Model = f.cfg.AnthropicModel
	case model.ProviderGoogle:
		cfg.BaseURL = f.cfg.GoogleBaseURL
		cfg.Model = f.cfg.GoogleModel
	}
	return cfg
}
