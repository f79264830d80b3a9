package logger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"aihub.app/api/common/metrics"
)

const traceKey contextKey = "request_trace"

// MaxTraceEntries caps how many steps one request trace keeps.
const MaxTraceEntries = 256

var entryValidator = validator.New(validator.WithRequiredStructEnabled())

// TraceEntry is one step recorded while serving a request.
type TraceEntry struct {
	Level   string         `json:"level" validate:"required,oneof=debug info warn error"`
	Message string         `json:"message" validate:"required"`
	Time    time.Time      `json:"time" validate:"required"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

// Trace accumulates the steps of a single request so they can be emitted
// together as one structured record when the request finishes.
type Trace struct {
	RequestID string

	mu      sync.Mutex
	entries []TraceEntry
	dropped int
}

// NewTrace starts a trace. An empty requestID gets a fresh UUID.
func NewTrace(requestID string) *Trace {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &Trace{RequestID: requestID}
}

// WithTrace attaches t to ctx and tags the context's log fields with its request ID.
func WithTrace(ctx context.Context, t *Trace) context.Context {
	ctx = context.WithValue(ctx, traceKey, t)
	return WithLogFields(ctx, LogFields{RequestID: Ptr(t.RequestID)})
}

// TraceFromContext returns the request trace, or nil outside a request.
func TraceFromContext(ctx context.Context) *Trace {
	t, _ := ctx.Value(traceKey).(*Trace)
	return t
}

// Step appends an entry to the request trace in ctx. Outside a request it
// logs directly so the message is never lost.
func Step(ctx context.Context, level slog.Level, msg string, attrs ...any) {
	t := TraceFromContext(ctx)
	if t == nil {
		slog.Log(ctx, level, msg, attrs...)
		return
	}
	t.Add(TraceEntry{
		Level:   strings.ToLower(level.String()),
		Message: msg,
		Time:    time.Now(),
		Attrs:   attrsToMap(attrs),
	})
}

// Add validates and appends an entry. Invalid entries and entries past
// MaxTraceEntries are dropped and counted.
func (t *Trace) Add(e TraceEntry) bool {
	valid := entryValidator.Struct(e) == nil

	t.mu.Lock()
	kept := valid && len(t.entries) < MaxTraceEntries
	if kept {
		t.entries = append(t.entries, e)
	} else {
		t.dropped++
	}
	t.mu.Unlock()

	if !kept {
		metrics.TraceEntriesDropped.Inc()
	}
	return kept
}

func (t *Trace) Entries() []TraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TraceEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Trace) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// Emit writes the accumulated entries as a single debug record.
func (t *Trace) Emit(ctx context.Context) {
	entries := t.Entries()
	if len(entries) == 0 {
		return
	}
	slog.DebugContext(ctx, "request trace",
		"entries", entries,
		"entry_count", len(entries),
		"dropped", t.Dropped())
}

// attrsToMap turns slog-style alternating key/value pairs into a map.
func attrsToMap(attrs []any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs)/2)
	for i := 0; i < len(attrs); i++ {
		switch v := attrs[i].(type) {
		case slog.Attr:
			out[v.Key] = v.Value.Any()
		case string:
			if i+1 < len(attrs) {
				out[v] = attrs[i+1]
				i++
			} else {
				out["!BADKEY"] = v
			}
		default:
			out["!BADKEY"] = v
		}
	}
	return out
}
