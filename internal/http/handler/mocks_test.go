package handler_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/middleware"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/wordpress"
)

// asProfile stands in for RequireSession in handler tests.
func asProfile(p *model.Profile) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithProfile(c.Request.Context(), p))
		c.Next()
	}
}

func member(id int64, role model.Role) *model.Profile {
	orgID := int64(100)
	return &model.Profile{ID: id, OrganizationID: &orgID, Email: "member@example.com", Name: "Member", Role: role}
}

type mockAuthService struct {
	registerFn     func(ctx context.Context, email, password, name string) (*model.Profile, string, error)
	loginFn        func(ctx context.Context, email, password string) (*model.Profile, string, error)
	authenticateFn func(ctx context.Context, token string) (*model.Profile, error)
	logoutFn       func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, email, password, name string) (*model.Profile, string, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, email, password, name)
	}
	return &model.Profile{ID: 1, Email: email, Name: name, Role: model.RoleUser}, "token", nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.Profile, string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return &model.Profile{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.Profile, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, service.ErrUnauthenticated
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

func (m *mockAuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockAdminService struct {
	deleteUserFn func(ctx context.Context, actor *model.Profile, userID int64) error
}

func (m *mockAdminService) DeleteUser(ctx context.Context, actor *model.Profile, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, actor, userID)
	}
	return nil
}

type mockAPIKeyService struct {
	listFn   func(ctx context.Context, actor *model.Profile) ([]model.APIKey, error)
	getFn    func(ctx context.Context, actor *model.Profile, keyID int64) (*model.APIKey, error)
	createFn func(ctx context.Context, actor *model.Profile, in service.CreateAPIKeyInput) (*model.APIKey, error)
	updateFn func(ctx context.Context, actor *model.Profile, keyID int64, in service.UpdateAPIKeyInput) (*model.APIKey, error)
	deleteFn func(ctx context.Context, actor *model.Profile, keyID int64) error
	verifyFn func(ctx context.Context, actor *model.Profile, in service.VerifyAPIKeyInput) (*service.VerifyResult, error)
}

func (m *mockAPIKeyService) List(ctx context.Context, actor *model.Profile) ([]model.APIKey, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor)
	}
	return nil, nil
}

func (m *mockAPIKeyService) Get(ctx context.Context, actor *model.Profile, keyID int64) (*model.APIKey, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, keyID)
	}
	return nil, service.ErrNotFound
}

func (m *mockAPIKeyService) Create(ctx context.Context, actor *model.Profile, in service.CreateAPIKeyInput) (*model.APIKey, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, in)
	}
	return &model.APIKey{ID: 1, Provider: in.Provider, Name: in.Name, Status: model.APIKeyStatusActive}, nil
}

func (m *mockAPIKeyService) Update(ctx context.Context, actor *model.Profile, keyID int64, in service.UpdateAPIKeyInput) (*model.APIKey, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, keyID, in)
	}
	return &model.APIKey{ID: keyID}, nil
}

func (m *mockAPIKeyService) Delete(ctx context.Context, actor *model.Profile, keyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, keyID)
	}
	return nil
}

func (m *mockAPIKeyService) Verify(ctx context.Context, actor *model.Profile, in service.VerifyAPIKeyInput) (*service.VerifyResult, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, actor, in)
	}
	return &service.VerifyResult{Valid: true, Provider: in.Provider}, nil
}

type mockUsefulLinkService struct {
	updateFn func(ctx context.Context, actor *model.Profile, linkID int64, in service.UpdateUsefulLinkInput) (*model.UsefulLink, error)
	deleteFn func(ctx context.Context, actor *model.Profile, linkID int64) error
}

func (m *mockUsefulLinkService) List(ctx context.Context, actor *model.Profile) ([]model.UsefulLink, error) {
	return nil, nil
}

func (m *mockUsefulLinkService) Create(ctx context.Context, actor *model.Profile, in service.CreateUsefulLinkInput) (*model.UsefulLink, error) {
	return &model.UsefulLink{ID: 1, Title: in.Title, URL: in.URL}, nil
}

func (m *mockUsefulLinkService) Update(ctx context.Context, actor *model.Profile, linkID int64, in service.UpdateUsefulLinkInput) (*model.UsefulLink, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, linkID, in)
	}
	return &model.UsefulLink{ID: linkID}, nil
}

func (m *mockUsefulLinkService) Delete(ctx context.Context, actor *model.Profile, linkID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, linkID)
	}
	return nil
}

type mockContentService struct {
	listFn func(ctx context.Context, actor *model.Profile, limit, offset int32) ([]model.Content, error)
}

func (m *mockContentService) List(ctx context.Context, actor *model.Profile, limit, offset int32) ([]model.Content, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, limit, offset)
	}
	return nil, nil
}

func (m *mockContentService) Get(ctx context.Context, actor *model.Profile, contentID int64) (*model.Content, error) {
	return nil, service.ErrNotFound
}

func (m *mockContentService) Create(ctx context.Context, actor *model.Profile, in service.CreateContentInput) (*model.Content, error) {
	return &model.Content{ID: 1, ToolSlug: in.ToolSlug, Title: in.Title, Body: in.Body}, nil
}

func (m *mockContentService) Update(ctx context.Context, actor *model.Profile, contentID int64, title, body *string) (*model.Content, error) {
	return &model.Content{ID: contentID}, nil
}

func (m *mockContentService) Delete(ctx context.Context, actor *model.Profile, contentID int64) error {
	return nil
}

type mockWordPressService struct {
	authorizeURLFn   func(ctx context.Context, actor *model.Profile, redirectTo string) (string, error)
	handleCallbackFn func(ctx context.Context, code, state, oauthError string) string
	statusFn         func(ctx context.Context, actor *model.Profile) (*service.WordPressStatus, error)
	searchFn         func(ctx context.Context, actor *model.Profile, query string, page, perPage int) ([]wordpress.Post, error)
}

func (m *mockWordPressService) PostsMarkdown(ctx context.Context, orgID int64, postIDs []int64) (string, error) {
	return "", nil
}

func (m *mockWordPressService) AuthorizeURL(ctx context.Context, actor *model.Profile, redirectTo string) (string, error) {
	if m.authorizeURLFn != nil {
		return m.authorizeURLFn(ctx, actor, redirectTo)
	}
	return "https://public-api.wordpress.com/oauth2/authorize", nil
}

func (m *mockWordPressService) HandleCallback(ctx context.Context, code, state, oauthError string) string {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code, state, oauthError)
	}
	return "https://app.example.com/settings/wordpress?wp_connected=1"
}

func (m *mockWordPressService) ConnectWithPassword(ctx context.Context, actor *model.Profile, username, password, site string) (*model.WordPressIntegration, error) {
	return &model.WordPressIntegration{SiteURL: site, AuthType: model.AuthTypeOAuth}, nil
}

func (m *mockWordPressService) ConnectBasic(ctx context.Context, actor *model.Profile, siteURL, username, appPassword string) (*model.WordPressIntegration, error) {
	return &model.WordPressIntegration{SiteURL: siteURL, AuthType: model.AuthTypeBasic}, nil
}

func (m *mockWordPressService) Status(ctx context.Context, actor *model.Profile) (*service.WordPressStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, actor)
	}
	return &service.WordPressStatus{Connected: false}, nil
}

func (m *mockWordPressService) Disconnect(ctx context.Context, actor *model.Profile) error {
	return nil
}

func (m *mockWordPressService) Search(ctx context.Context, actor *model.Profile, query string, page, perPage int) ([]wordpress.Post, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, actor, query, page, perPage)
	}
	return nil, nil
}

func (m *mockWordPressService) RefreshExpiring(ctx context.Context, within time.Duration) (int, int, error) {
	return 0, 0, nil
}
