package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"aihub.app/api/common/llm"
	"aihub.app/api/common/logger"
	"aihub.app/api/common/metrics"
	"aihub.app/api/internal/assistant"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
)

// SaveOptions asks for the result to be stored as a Content row.
type SaveOptions struct {
	Save  bool
	Title string
}

type ProofreadInput struct {
	Text string
	SaveOptions
}

type ThreadInput struct {
	Text     string
	Platform string
	MaxPosts int
	SaveOptions
}

type SummaryInput struct {
	Text string
	SaveOptions
}

type NewsletterInput struct {
	Text         string
	PostIDs      []int64
	Instructions string
	SaveOptions
}

type ProofreadResult struct {
	Suggestions []model.Suggestion `json:"suggestions"`
	Content     *model.Content     `json:"content,omitempty"`
}

type ThreadResult struct {
	Posts   []string       `json:"posts"`
	Content *model.Content `json:"content,omitempty"`
}

type SummaryResult struct {
	Summary string         `json:"summary"`
	Content *model.Content `json:"content,omitempty"`
}

type NewsletterResult struct {
	Newsletter string         `json:"newsletter"`
	Content    *model.Content `json:"content,omitempty"`
}

type AssistantService interface {
	Proofread(ctx context.Context, actor *model.Profile, in ProofreadInput) (*ProofreadResult, error)
	Thread(ctx context.Context, actor *model.Profile, in ThreadInput) (*ThreadResult, error)
	Summary(ctx context.Context, actor *model.Profile, in SummaryInput) (*SummaryResult, error)
	Newsletter(ctx context.Context, actor *model.Profile, in NewsletterInput) (*NewsletterResult, error)
}

type assistantService struct {
	tools      ToolService
	keyStore   store.APIKeyStore
	llm        LLMFactory
	contents   ContentService
	posts      PostSource
	activities ActivityService
}

func NewAssistantService(
	tools ToolService,
	keyStore store.APIKeyStore,
	llmFactory LLMFactory,
	contents ContentService,
	posts PostSource,
	activities ActivityService,
) AssistantService {
	return &assistantService{
		tools:      tools,
		keyStore:   keyStore,
		llm:        llmFactory,
		contents:   contents,
		posts:      posts,
		activities: activities,
	}
}

// run is the outcome of one provider call.
type run struct {
	orgID  int64
	tool   *model.ResolvedTool
	output string
}

func (s *assistantService) Proofread(ctx context.Context, actor *model.Profile, in ProofreadInput) (*ProofreadResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, invalidInput("text is required")
	}

	r, err := s.complete(ctx, actor, model.ToolSlugProofreader, in.Text, nil, assistant.ProofreadInstructions())
	if err != nil {
		return nil, err
	}

	suggestions, err := assistant.ParseSuggestions(r.output)
	if err != nil {
		logger.Step(ctx, slog.LevelWarn, "unparseable proofreading response", "output", logger.Truncate(r.output, 500))
		return nil, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}

	result := &ProofreadResult{Suggestions: suggestions}
	result.Content, err = s.save(ctx, actor, r, in.SaveOptions, in.Text, in.Text, map[string]any{"suggestions": suggestions})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *assistantService) Thread(ctx context.Context, actor *model.Profile, in ThreadInput) (*ThreadResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, invalidInput("text is required")
	}
	maxPosts := in.MaxPosts
	if maxPosts <= 0 {
		maxPosts = assistant.DefaultMaxPosts
	}

	vars := map[string]string{
		"platform":  in.Platform,
		"max_posts": strconv.Itoa(maxPosts),
	}
	r, err := s.complete(ctx, actor, model.ToolSlugThread, in.Text, vars, assistant.ThreadInstructions(in.Platform, maxPosts))
	if err != nil {
		return nil, err
	}

	posts, err := assistant.ParseThread(r.output, maxPosts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}

	result := &ThreadResult{Posts: posts}
	result.Content, err = s.save(ctx, actor, r, in.SaveOptions, strings.Join(posts, "\n\n"), in.Text, map[string]any{
		"posts":    posts,
		"platform": in.Platform,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *assistantService) Summary(ctx context.Context, actor *model.Profile, in SummaryInput) (*SummaryResult, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, invalidInput("text is required")
	}

	r, err := s.complete(ctx, actor, model.ToolSlugSummary, in.Text, nil, "")
	if err != nil {
		return nil, err
	}

	summary, err := assistant.ParseSummary(r.output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}

	result := &SummaryResult{Summary: summary}
	result.Content, err = s.save(ctx, actor, r, in.SaveOptions, summary, in.Text, nil)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *assistantService) Newsletter(ctx context.Context, actor *model.Profile, in NewsletterInput) (*NewsletterResult, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.Text)
	if text == "" && len(in.PostIDs) == 0 {
		return nil, invalidInput("text or post_ids is required")
	}

	if len(in.PostIDs) > 0 {
		if s.posts == nil {
			return nil, ErrWordPressNotConnected
		}
		posts, err := s.posts.PostsMarkdown(ctx, orgID, in.PostIDs)
		if err != nil {
			return nil, err
		}
		text = joinNonEmpty(text, posts)
	}

	var extra string
	if in.Instructions != "" {
		extra = "Additional instructions from the editor:\n" + strings.TrimSpace(in.Instructions)
	}
	vars := map[string]string{"instructions": in.Instructions}

	r, err := s.complete(ctx, actor, model.ToolSlugNewsletter, text, vars, extra)
	if err != nil {
		return nil, err
	}

	newsletter, err := assistant.ParseSummary(r.output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}

	result := &NewsletterResult{Newsletter: newsletter}
	result.Content, err = s.save(ctx, actor, r, in.SaveOptions, newsletter, text, map[string]any{
		"post_ids": in.PostIDs,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// complete resolves the tool, loads the organization's key for its provider,
// assembles the prompt and calls the provider once.
func (s *assistantService) complete(ctx context.Context, actor *model.Profile, slug, text string, vars map[string]string, instructions string) (*run, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	tool, err := s.tools.Resolve(ctx, orgID, slug)
	if err != nil {
		return nil, err
	}

	provider := string(tool.Provider)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Tool:      &tool.Slug,
		Provider:  &provider,
		Component: "aihub.service.assistant",
	})

	key, err := s.keyStore.GetActiveByProvider(ctx, orgID, tool.Provider)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, tool.Provider)
		}
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	completer, err := s.llm.Completer(tool.Provider, key.Key, tool.Model)
	if err != nil {
		return nil, fmt.Errorf("building %s client: %w", tool.Provider, err)
	}

	prompt := assistant.Build(*tool, text, vars, instructions)
	logger.Step(ctx, slog.LevelDebug, "prompt assembled",
		"system_chars", len(prompt.System),
		"user_chars", len(prompt.User))

	sc := logger.StartSpan(ctx, "assistant."+slug,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("ai.provider", provider),
			attribute.String("ai.model", completer.Model()),
		))
	defer sc.End()

	start := time.Now()
	resp, err := completer.Complete(sc.Context(), llm.CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		Temperature:  llm.Temp(tool.Temperature),
		TopP:         llm.Temp(tool.TopP),
		MaxTokens:    int(tool.MaxTokens),
	})
	metrics.AICompletions.WithLabelValues(provider, slug, metrics.Outcome(err)).Inc()
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "ai completion failed", "error", err, "status", llm.StatusCode(err))
		return nil, upstream("calling "+provider, err)
	}

	logger.Step(ctx, slog.LevelInfo, "ai completion finished",
		"model", completer.Model(),
		"finish_reason", resp.FinishReason,
		"duration_ms", time.Since(start).Milliseconds())

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityAssistantRun, &tool.Slug, map[string]any{
		"provider":          tool.Provider,
		"model":             completer.Model(),
		"prompt_tokens":     resp.PromptTokens,
		"completion_tokens": resp.CompletionTokens,
	})
	return &run{orgID: orgID, tool: tool, output: resp.Content}, nil
}

func (s *assistantService) save(ctx context.Context, actor *model.Profile, r *run, opts SaveOptions, body, input string, metadata map[string]any) (*model.Content, error) {
	if !opts.Save {
		return nil, nil
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = fmt.Sprintf("%s %s", r.tool.Name, time.Now().UTC().Format("2006-01-02 15:04"))
	}
	var raw json.RawMessage
	if len(metadata) > 0 {
		b, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding content metadata: %w", err)
		}
		raw = b
	}

	content, err := s.contents.Create(ctx, actor, CreateContentInput{
		ToolSlug: r.tool.Slug,
		Title:    title,
		Body:     body,
		Input:    &input,
		Metadata: raw,
	})
	if err != nil {
		return nil, fmt.Errorf("saving content: %w", err)
	}
	return content, nil
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
