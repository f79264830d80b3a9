package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Request middleware sets the tenant fields once, so handlers and services
// never repeat organization_id or profile_id in their log calls.
type LogFields struct {
	OrganizationID *int64  // Caller's organization
	ProfileID      *int64  // Authenticated profile
	RequestID      *string // Request trace ID, echoed in X-Request-ID
	Tool           *string // Assistant tool slug (e.g., "proofreader")
	Provider       *string // AI vendor (e.g., "anthropic")
	Component      string  // Component name (OTel semantic convention style, e.g., "aihub.service.assistant")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

// mergeFields merges two LogFields, preferring non-nil/non-empty values from 'new'.
func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.OrganizationID != nil {
		result.OrganizationID = new.OrganizationID
	}
	if new.ProfileID != nil {
		result.ProfileID = new.ProfileID
	}
	if new.RequestID != nil {
		result.RequestID = new.RequestID
	}
	if new.Tool != nil {
		result.Tool = new.Tool
	}
	if new.Provider != nil {
		result.Provider = new.Provider
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{Tool: logger.Ptr(slug)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like prompts or AI responses.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
