package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
	ErrEmptyResponse       = errors.New("empty response from model")
)

// StatusCode extracts the vendor HTTP status from an SDK error.
// It returns 0 when err did not come from a vendor response.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return openaiErr.StatusCode
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode
	}

	var genaiErr genai.APIError
	if errors.As(err, &genaiErr) {
		return genaiErr.Code
	}
	var genaiErrPtr *genai.APIError
	if errors.As(err, &genaiErrPtr) {
		return genaiErrPtr.Code
	}

	return 0
}

// IsAuthError is true when the vendor rejected the credentials.
func IsAuthError(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsRetryable classifies an error for callers that choose to retry.
// Nothing in this package retries on its own.
func IsRetryable(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.DebugContext(ctx, "llm error not retryable: context cancelled or deadline exceeded")
		return false
	}

	code := StatusCode(err)
	switch {
	case code == 0:
		// Network errors (no API response) are generally retryable
		slog.WarnContext(ctx, "llm network error", "error", err)
		return true
	case code == http.StatusTooManyRequests:
		slog.WarnContext(ctx, "llm rate limited", "status_code", code)
		return true
	case code >= 500:
		slog.WarnContext(ctx, "llm server error", "status_code", code)
		return true
	default:
		slog.ErrorContext(ctx, "llm client error, not retryable", "status_code", code)
		return false
	}
}
