package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/invopop/jsonschema"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

// Models used when neither the request nor the process config names one.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultGoogleModel    = "gemini-2.5-flash"
)

const defaultMaxTokens = 2048

// Config holds LLM client configuration. The API key belongs to an
// organization and is supplied per request, never from process config.
type Config struct {
	Provider   string        // "openai", "anthropic" or "google"
	APIKey     string        // Required: API key for the provider
	BaseURL    string        // Optional: custom API endpoint
	Model      string        // Model name (e.g., "gpt-4o-mini", "claude-sonnet-4-5", "gemini-2.5-flash")
	Timeout    time.Duration // Optional: per-request timeout
	HTTPClient *http.Client  // Optional: transport override
}

// Completer runs a single system+user prompt against a model.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Model() string
	Provider() string
}

// Verifier checks that an API key is accepted by the vendor.
type Verifier interface {
	VerifyKey(ctx context.Context) error
}

// Client is implemented by every vendor adapter.
type Client interface {
	Completer
	Verifier
}

type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil = model default
	TopP         *float64 // nil = model default
	MaxTokens    int
}

type CompletionResponse struct {
	Content          string
	FinishReason     string
	PromptTokens     int
	CompletionTokens int
}

type constructor func(cfg Config) (Client, error)

var constructors = map[string]constructor{
	ProviderOpenAI:    newOpenAIClient,
	ProviderAnthropic: newAnthropicClient,
	ProviderGoogle:    newGoogleClient,
}

// Supported reports whether a provider has an adapter.
func Supported(provider string) bool {
	_, ok := constructors[provider]
	return ok
}

// NewClient builds the adapter registered for cfg.Provider.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	ctor, ok := constructors[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
	return ctor(cfg)
}

// NewCompleter builds a Completer for cfg.Provider.
func NewCompleter(cfg Config) (Completer, error) {
	return NewClient(cfg)
}

// NewVerifier builds a Verifier for cfg.Provider.
func NewVerifier(cfg Config) (Verifier, error) {
	return NewClient(cfg)
}

// GenerateSchema reflects a JSON schema for T with all definitions inlined.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

func Temp(t float64) *float64 {
	return &t
}

func maxTokensOrDefault(n int) int {
	if n <= 0 {
		return defaultMaxTokens
	}
	return n
}
