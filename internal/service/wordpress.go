package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"aihub.app/api/common/id"
	"aihub.app/api/common/logger"
	"aihub.app/api/common/metrics"
	"aihub.app/api/core/config"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/store"
	"aihub.app/api/internal/wordpress"
)

const (
	refreshWindow   = 5 * time.Minute
	oauthStateTTL   = 10 * time.Minute
	defaultPerPage  = 10
	maxPerPage      = 100
	postSeparator   = "\n\n---\n\n"
	settingsPath    = "/settings/wordpress"
	wpErrorParam    = "wp_error"
	wpConnectedFlag = "wp_connected"
)

// WordPressOAuth is the token endpoint surface. *wordpress.OAuth implements it.
type WordPressOAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*wordpress.Token, error)
	PasswordToken(ctx context.Context, username, password, site string) (*wordpress.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*wordpress.Token, error)
}

// WordPressAPI is the REST surface used by the service. *wordpress.Client implements it.
type WordPressAPI interface {
	SiteInfo(ctx context.Context) (*wordpress.Site, error)
	Search(ctx context.Context, query string, page, perPage int) ([]wordpress.Post, error)
	GetPost(ctx context.Context, postID int64) (*wordpress.Post, error)
}

// PostSource renders WordPress posts for prompts.
type PostSource interface {
	PostsMarkdown(ctx context.Context, orgID int64, postIDs []int64) (string, error)
}

type WordPressStatus struct {
	Connected bool            `json:"connected"`
	SiteURL   string          `json:"site_url,omitempty"`
	SiteName  *string         `json:"site_name,omitempty"`
	AuthType  *model.AuthType `json:"auth_type,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

type WordPressService interface {
	PostSource
	AuthorizeURL(ctx context.Context, actor *model.Profile, redirectTo string) (string, error)
	// HandleCallback completes the authorization-code flow and returns where
	// the browser should go next. Failures are reported in the URL.
	HandleCallback(ctx context.Context, code, state, oauthError string) string
	ConnectWithPassword(ctx context.Context, actor *model.Profile, username, password, site string) (*model.WordPressIntegration, error)
	ConnectBasic(ctx context.Context, actor *model.Profile, siteURL, username, appPassword string) (*model.WordPressIntegration, error)
	Status(ctx context.Context, actor *model.Profile) (*WordPressStatus, error)
	Disconnect(ctx context.Context, actor *model.Profile) error
	Search(ctx context.Context, actor *model.Profile, query string, page, perPage int) ([]wordpress.Post, error)
	// RefreshExpiring refreshes every OAuth token expiring within the window.
	RefreshExpiring(ctx context.Context, within time.Duration) (refreshed, failed int, err error)
}

type WordPressOption func(*wordPressService)

func WithWordPressHTTPClient(c *http.Client) WordPressOption {
	return func(s *wordPressService) { s.httpClient = c }
}

func WithWordPressClock(now func() time.Time) WordPressOption {
	return func(s *wordPressService) { s.now = now }
}

type wordPressService struct {
	wpStore      store.WordPressStore
	states       store.OAuthStateStore
	activities   ActivityService
	oauth        WordPressOAuth
	cfg          config.WordPressConfig
	dashboardURL string
	httpClient   *http.Client
	converter    *wordpress.Converter
	now          func() time.Time
}

// NewWordPressService builds the integration service. oauth may be nil when
// WordPress.com OAuth is not configured; basic-auth sites still work.
func NewWordPressService(
	wpStore store.WordPressStore,
	states store.OAuthStateStore,
	activities ActivityService,
	oauth WordPressOAuth,
	cfg config.WordPressConfig,
	dashboardURL string,
	opts ...WordPressOption,
) WordPressService {
	s := &wordPressService{
		wpStore:      wpStore,
		states:       states,
		activities:   activities,
		oauth:        oauth,
		cfg:          cfg,
		dashboardURL: strings.TrimRight(dashboardURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		converter:    wordpress.NewConverter(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *wordPressService) AuthorizeURL(ctx context.Context, actor *model.Profile, redirectTo string) (string, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return "", err
	}
	if s.oauth == nil {
		return "", ErrWordPressNotConfigured
	}
	if redirectTo != "" && !s.allowedRedirect(redirectTo) {
		return "", invalidInput("redirect_to must point at the dashboard")
	}

	state, err := newState()
	if err != nil {
		return "", fmt.Errorf("generating oauth state: %w", err)
	}
	if err := s.states.Save(ctx, state, store.OAuthState{
		OrganizationID: orgID,
		ProfileID:      actor.ID,
		RedirectTo:     redirectTo,
	}, oauthStateTTL); err != nil {
		return "", fmt.Errorf("saving oauth state: %w", err)
	}

	return s.oauth.AuthCodeURL(state), nil
}

func (s *wordPressService) HandleCallback(ctx context.Context, code, state, oauthError string) string {
	fallback := s.dashboardURL + settingsPath

	if s.oauth == nil {
		return withParam(fallback, wpErrorParam, "not_configured")
	}

	saved, err := s.states.Consume(ctx, state)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to consume oauth state", "error", err)
		}
		return withParam(fallback, wpErrorParam, "invalid_state")
	}

	target := fallback
	if saved.RedirectTo != "" {
		target = s.absoluteRedirect(saved.RedirectTo)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &saved.OrganizationID,
		ProfileID:      &saved.ProfileID,
	})

	if oauthError != "" {
		return withParam(target, wpErrorParam, "access_denied")
	}
	if code == "" {
		return withParam(target, wpErrorParam, "missing_code")
	}

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "wordpress code exchange failed", "error", err)
		return withParam(target, wpErrorParam, "exchange_failed")
	}

	if _, err := s.persistOAuth(ctx, saved.OrganizationID, saved.ProfileID, tok); err != nil {
		slog.ErrorContext(ctx, "failed to save wordpress integration", "error", err)
		return withParam(target, wpErrorParam, "save_failed")
	}
	return withParam(target, wpConnectedFlag, "1")
}

func (s *wordPressService) ConnectWithPassword(ctx context.Context, actor *model.Profile, username, password, site string) (*model.WordPressIntegration, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}
	if s.oauth == nil {
		return nil, ErrWordPressNotConfigured
	}
	if username == "" || password == "" {
		return nil, invalidInput("username and password are required")
	}

	tok, err := s.oauth.PasswordToken(ctx, username, password, strings.TrimSpace(site))
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, ErrWordPressAuthRejected
		}
		return nil, upstream("requesting wordpress token", err)
	}

	return s.persistOAuth(ctx, orgID, actor.ID, tok)
}

func (s *wordPressService) ConnectBasic(ctx context.Context, actor *model.Profile, siteURL, username, appPassword string) (*model.WordPressIntegration, error) {
	orgID, err := managerOrg(actor)
	if err != nil {
		return nil, err
	}
	siteURL, err = wordpress.NormalizeSiteURL(siteURL)
	if err != nil {
		return nil, invalidInput("site_url is not a valid URL")
	}
	if username == "" || appPassword == "" {
		return nil, invalidInput("username and app_password are required")
	}

	site, err := wordpress.NewBasicClient(siteURL, username, appPassword, s.httpClient).SiteInfo(ctx)
	if err != nil {
		if errors.Is(err, wordpress.ErrUnauthorized) {
			return nil, ErrWordPressAuthRejected
		}
		return nil, upstream("verifying wordpress site", err)
	}

	integration := &model.WordPressIntegration{
		ID:             id.New(),
		OrganizationID: orgID,
		AuthType:       model.AuthTypeBasic,
		SiteURL:        siteURL,
		SiteName:       optionalString(site.Name),
		Username:       &username,
		AppPassword:    &appPassword,
		ConnectedBy:    &actor.ID,
	}
	if err := s.wpStore.Upsert(ctx, integration); err != nil {
		return nil, fmt.Errorf("saving wordpress integration: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityWordPressConnected, nil, map[string]any{
		"auth_type": integration.AuthType,
		"site_url":  integration.SiteURL,
	})
	return integration, nil
}

func (s *wordPressService) Status(ctx context.Context, actor *model.Profile) (*WordPressStatus, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}

	status := &WordPressStatus{}
	err = s.withIntegration(ctx, orgID, func(integration *model.WordPressIntegration) error {
		authType := integration.AuthType
		status.Connected = true
		status.SiteURL = integration.SiteURL
		status.SiteName = integration.SiteName
		status.AuthType = &authType
		status.ExpiresAt = integration.TokenExpiresAt
		return nil
	})
	if errors.Is(err, ErrWordPressNotConnected) {
		return &WordPressStatus{Connected: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (s *wordPressService) Disconnect(ctx context.Context, actor *model.Profile) error {
	orgID, err := managerOrg(actor)
	if err != nil {
		return err
	}

	if err := s.wpStore.Delete(ctx, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWordPressNotConnected
		}
		return fmt.Errorf("deleting wordpress integration: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, actor.ID, model.ActivityWordPressRemoved, nil, nil)
	return nil
}

func (s *wordPressService) Search(ctx context.Context, actor *model.Profile, query string, page, perPage int) ([]wordpress.Post, error) {
	orgID, err := memberOrg(actor)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var posts []wordpress.Post
	err = s.withClient(ctx, orgID, func(api WordPressAPI) error {
		var err error
		posts, err = api.Search(ctx, strings.TrimSpace(query), page, perPage)
		return err
	})
	if err != nil {
		return nil, s.apiError("searching wordpress posts", err)
	}
	return posts, nil
}

func (s *wordPressService) PostsMarkdown(ctx context.Context, orgID int64, postIDs []int64) (string, error) {
	sections := make([]string, 0, len(postIDs))
	err := s.withClient(ctx, orgID, func(api WordPressAPI) error {
		for _, postID := range postIDs {
			post, err := api.GetPost(ctx, postID)
			if err != nil {
				var apiErr *wordpress.APIError
				if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
					return invalidInput("wordpress post %d not found", postID)
				}
				return err
			}
			section, err := s.converter.PostMarkdown(*post)
			if err != nil {
				return err
			}
			sections = append(sections, section)
		}
		return nil
	})
	if err != nil {
		return "", s.apiError("fetching wordpress posts", err)
	}
	return strings.Join(sections, postSeparator), nil
}

func (s *wordPressService) RefreshExpiring(ctx context.Context, within time.Duration) (int, int, error) {
	integrations, err := s.wpStore.ListExpiring(ctx, s.now().Add(within))
	if err != nil {
		return 0, 0, fmt.Errorf("listing expiring integrations: %w", err)
	}

	var refreshed, failed int
	for i := range integrations {
		integration := &integrations[i]
		if integration.AuthType != model.AuthTypeOAuth {
			continue
		}
		if _, err := s.refresh(ctx, integration); err != nil {
			failed++
			slog.ErrorContext(ctx, "failed to refresh wordpress token",
				"error", err,
				"organization_id", integration.OrganizationID)
			continue
		}
		refreshed++
	}
	return refreshed, failed, nil
}

// withIntegration loads the organization's integration and refreshes an OAuth
// token that expires within refreshWindow before calling fn. A failed refresh
// skips fn.
func (s *wordPressService) withIntegration(ctx context.Context, orgID int64, fn func(*model.WordPressIntegration) error) error {
	integration, err := s.wpStore.GetByOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWordPressNotConnected
		}
		return fmt.Errorf("getting wordpress integration: %w", err)
	}

	if integration.NeedsRefresh(s.now(), refreshWindow) {
		integration, err = s.refresh(ctx, integration)
		if err != nil {
			return err
		}
	}
	return fn(integration)
}

// withClient runs fn against a REST client authenticated for the organization's site.
func (s *wordPressService) withClient(ctx context.Context, orgID int64, fn func(WordPressAPI) error) error {
	return s.withIntegration(ctx, orgID, func(integration *model.WordPressIntegration) error {
		api, err := s.clientFor(ctx, integration)
		if err != nil {
			return err
		}

		sc := logger.StartSpan(ctx, "wordpress.request")
		defer sc.End()
		if err := fn(api); err != nil {
			sc.RecordError(err)
			return err
		}
		return nil
	})
}

func (s *wordPressService) refresh(ctx context.Context, integration *model.WordPressIntegration) (*model.WordPressIntegration, error) {
	if s.oauth == nil || integration.RefreshToken == nil || *integration.RefreshToken == "" {
		metrics.WordPressTokenRefreshes.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: no refresh token available", ErrWordPressRefreshFailed)
	}

	sc := logger.StartSpan(ctx, "wordpress.refresh_token")
	defer sc.End()

	tok, err := s.oauth.Refresh(sc.Context(), *integration.RefreshToken)
	metrics.WordPressTokenRefreshes.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		sc.RecordError(err)
		logger.Step(ctx, slog.LevelError, "wordpress token refresh failed", "error", err.Error())
		return nil, fmt.Errorf("%w: %w", ErrWordPressRefreshFailed, err)
	}

	refreshToken := tok.RefreshToken
	if refreshToken == "" {
		refreshToken = *integration.RefreshToken
	}
	updated, err := s.wpStore.UpdateTokens(ctx, integration.ID, tok.AccessToken, &refreshToken, tok.Expiry)
	if err != nil {
		return nil, fmt.Errorf("%w: saving tokens: %w", ErrWordPressRefreshFailed, err)
	}

	logger.Step(ctx, slog.LevelInfo, "wordpress token refreshed", "integration_id", integration.ID)
	return updated, nil
}

func (s *wordPressService) clientFor(ctx context.Context, integration *model.WordPressIntegration) (WordPressAPI, error) {
	switch integration.AuthType {
	case model.AuthTypeOAuth:
		if integration.AccessToken == nil {
			return nil, ErrWordPressNotConnected
		}
		return wordpress.NewBearerClient(ctx, s.cfg.APIBaseURL, siteIdentifier(integration), *integration.AccessToken, s.httpClient), nil
	case model.AuthTypeBasic:
		if integration.Username == nil || integration.AppPassword == nil {
			return nil, ErrWordPressNotConnected
		}
		return wordpress.NewBasicClient(integration.SiteURL, *integration.Username, *integration.AppPassword, s.httpClient), nil
	default:
		return nil, fmt.Errorf("unknown wordpress auth type %q", integration.AuthType)
	}
}

func (s *wordPressService) persistOAuth(ctx context.Context, orgID, profileID int64, tok *wordpress.Token) (*model.WordPressIntegration, error) {
	integration := &model.WordPressIntegration{
		ID:             id.New(),
		OrganizationID: orgID,
		AuthType:       model.AuthTypeOAuth,
		SiteURL:        tok.BlogURL,
		SiteID:         optionalString(tok.BlogID),
		AccessToken:    &tok.AccessToken,
		RefreshToken:   optionalString(tok.RefreshToken),
		TokenExpiresAt: tok.Expiry,
		ConnectedBy:    &profileID,
	}

	api, err := s.clientFor(ctx, integration)
	if err != nil {
		return nil, err
	}
	if site, err := api.SiteInfo(ctx); err != nil {
		slog.WarnContext(ctx, "could not fetch wordpress site info", "error", err)
	} else {
		integration.SiteName = optionalString(site.Name)
		if integration.SiteURL == "" {
			integration.SiteURL = site.URL
		}
	}

	if err := s.wpStore.Upsert(ctx, integration); err != nil {
		return nil, fmt.Errorf("saving wordpress integration: %w", err)
	}

	recordActivity(ctx, s.activities, orgID, profileID, model.ActivityWordPressConnected, nil, map[string]any{
		"auth_type": integration.AuthType,
		"site_url":  integration.SiteURL,
	})
	return integration, nil
}

// apiError keeps service sentinels and maps REST failures to upstream errors.
func (s *wordPressService) apiError(op string, err error) error {
	switch {
	case errors.Is(err, ErrWordPressNotConnected),
		errors.Is(err, ErrWordPressRefreshFailed),
		errors.Is(err, ErrInvalidInput):
		return err
	case errors.Is(err, wordpress.ErrUnauthorized):
		return ErrWordPressAuthRejected
	default:
		return upstream(op, err)
	}
}

func (s *wordPressService) allowedRedirect(target string) bool {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return true
	}
	return s.dashboardURL != "" && strings.HasPrefix(target, s.dashboardURL+"/")
}

func (s *wordPressService) absoluteRedirect(target string) string {
	if strings.HasPrefix(target, "/") {
		return s.dashboardURL + target
	}
	return target
}

// siteIdentifier prefers the numeric blog ID. WordPress.com also accepts the domain.
func siteIdentifier(integration *model.WordPressIntegration) string {
	if integration.SiteID != nil && *integration.SiteID != "" {
		return *integration.SiteID
	}
	if u, err := url.Parse(integration.SiteURL); err == nil && u.Host != "" {
		return u.Host
	}
	return integration.SiteURL
}

func withParam(target, key, value string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

func newState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
