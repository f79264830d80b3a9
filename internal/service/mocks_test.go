package service_test

import (
	"context"
	"time"

	"aihub.app/api/common/llm"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/store"
)

type mockProfileStore struct {
	getByIDFn            func(ctx context.Context, id int64) (*model.Profile, error)
	getByEmailFn         func(ctx context.Context, email string) (*model.Profile, error)
	getByWorkOSUserIDFn  func(ctx context.Context, workosUserID string) (*model.Profile, error)
	createFn             func(ctx context.Context, profile *model.Profile) error
	updateFn             func(ctx context.Context, profile *model.Profile) error
	linkWorkOSUserFn     func(ctx context.Context, id int64, workosUserID string) error
	setMembershipFn      func(ctx context.Context, id int64, orgID *int64, role model.Role) (*model.Profile, error)
	listByOrganizationFn func(ctx context.Context, orgID int64) ([]model.Profile, error)
	deleteFn             func(ctx context.Context, id int64) error
}

func (m *mockProfileStore) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockProfileStore) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *mockProfileStore) GetByWorkOSUserID(ctx context.Context, workosUserID string) (*model.Profile, error) {
	if m.getByWorkOSUserIDFn != nil {
		return m.getByWorkOSUserIDFn(ctx, workosUserID)
	}
	return nil, store.ErrNotFound
}

func (m *mockProfileStore) Create(ctx context.Context, profile *model.Profile) error {
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileStore) Update(ctx context.Context, profile *model.Profile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileStore) LinkWorkOSUser(ctx context.Context, id int64, workosUserID string) error {
	if m.linkWorkOSUserFn != nil {
		return m.linkWorkOSUserFn(ctx, id, workosUserID)
	}
	return nil
}

func (m *mockProfileStore) SetMembership(ctx context.Context, id int64, orgID *int64, role model.Role) (*model.Profile, error) {
	if m.setMembershipFn != nil {
		return m.setMembershipFn(ctx, id, orgID, role)
	}
	return &model.Profile{ID: id, OrganizationID: orgID, Role: role}, nil
}

func (m *mockProfileStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Profile, error) {
	if m.listByOrganizationFn != nil {
		return m.listByOrganizationFn(ctx, orgID)
	}
	return nil, nil
}

func (m *mockProfileStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockOrganizationStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Organization, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Organization, error)
	createFn    func(ctx context.Context, org *model.Organization) error
	updateFn    func(ctx context.Context, org *model.Organization) error
}

func (m *mockOrganizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) Create(ctx context.Context, org *model.Organization) error {
	if m.createFn != nil {
		return m.createFn(ctx, org)
	}
	return nil
}

func (m *mockOrganizationStore) Update(ctx context.Context, org *model.Organization) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, org)
	}
	return nil
}

type mockSessionStore struct {
	createFn              func(ctx context.Context, session *model.Session) error
	getValidByTokenHashFn func(ctx context.Context, tokenHash string) (*model.Session, error)
	deleteByTokenHashFn   func(ctx context.Context, tokenHash string) error
	deleteByProfileFn     func(ctx context.Context, profileID int64) error
	deleteExpiredFn       func(ctx context.Context) (int64, error)
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	if m.getValidByTokenHashFn != nil {
		return m.getValidByTokenHashFn(ctx, tokenHash)
	}
	return nil, store.ErrNotFound
}

func (m *mockSessionStore) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if m.deleteByTokenHashFn != nil {
		return m.deleteByTokenHashFn(ctx, tokenHash)
	}
	return nil
}

func (m *mockSessionStore) DeleteByProfile(ctx context.Context, profileID int64) error {
	if m.deleteByProfileFn != nil {
		return m.deleteByProfileFn(ctx, profileID)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return 0, nil
}

type mockAPIKeyStore struct {
	getByIDFn             func(ctx context.Context, orgID, id int64) (*model.APIKey, error)
	getActiveByProviderFn func(ctx context.Context, orgID int64, provider model.Provider) (*model.APIKey, error)
	listByOrganizationFn  func(ctx context.Context, orgID int64) ([]model.APIKey, error)
	createFn              func(ctx context.Context, key *model.APIKey) error
	updateFn              func(ctx context.Context, key *model.APIKey) error
	setVerificationFn     func(ctx context.Context, id int64, status model.APIKeyStatus) error
	deleteFn              func(ctx context.Context, orgID, id int64) error
}

func (m *mockAPIKeyStore) GetByID(ctx context.Context, orgID, id int64) (*model.APIKey, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, orgID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockAPIKeyStore) GetActiveByProvider(ctx context.Context, orgID int64, provider model.Provider) (*model.APIKey, error) {
	if m.getActiveByProviderFn != nil {
		return m.getActiveByProviderFn(ctx, orgID, provider)
	}
	return nil, store.ErrNotFound
}

func (m *mockAPIKeyStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.APIKey, error) {
	if m.listByOrganizationFn != nil {
		return m.listByOrganizationFn(ctx, orgID)
	}
	return nil, nil
}

func (m *mockAPIKeyStore) Create(ctx context.Context, key *model.APIKey) error {
	if m.createFn != nil {
		return m.createFn(ctx, key)
	}
	return nil
}

func (m *mockAPIKeyStore) Update(ctx context.Context, key *model.APIKey) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, key)
	}
	return nil
}

func (m *mockAPIKeyStore) SetVerification(ctx context.Context, id int64, status model.APIKeyStatus) error {
	if m.setVerificationFn != nil {
		return m.setVerificationFn(ctx, id, status)
	}
	return nil
}

func (m *mockAPIKeyStore) Delete(ctx context.Context, orgID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, orgID, id)
	}
	return nil
}

type mockToolStore struct {
	getDefaultBySlugFn func(ctx context.Context, slug string) (*model.DefaultTool, error)
	listDefaultsFn     func(ctx context.Context) ([]model.DefaultTool, error)
	upsertDefaultFn    func(ctx context.Context, tool *model.DefaultTool) error
	getOverrideFn      func(ctx context.Context, orgID, defaultToolID int64) (*model.ToolOverride, error)
	listOverridesFn    func(ctx context.Context, orgID int64) ([]model.ToolOverride, error)
	upsertOverrideFn   func(ctx context.Context, override *model.ToolOverride) error
	deleteOverrideFn   func(ctx context.Context, orgID, defaultToolID int64) error
}

func (m *mockToolStore) GetDefaultBySlug(ctx context.Context, slug string) (*model.DefaultTool, error) {
	if m.getDefaultBySlugFn != nil {
		return m.getDefaultBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockToolStore) ListDefaults(ctx context.Context) ([]model.DefaultTool, error) {
	if m.listDefaultsFn != nil {
		return m.listDefaultsFn(ctx)
	}
	return nil, nil
}

func (m *mockToolStore) UpsertDefault(ctx context.Context, tool *model.DefaultTool) error {
	if m.upsertDefaultFn != nil {
		return m.upsertDefaultFn(ctx, tool)
	}
	return nil
}

func (m *mockToolStore) GetOverride(ctx context.Context, orgID, defaultToolID int64) (*model.ToolOverride, error) {
	if m.getOverrideFn != nil {
		return m.getOverrideFn(ctx, orgID, defaultToolID)
	}
	return nil, store.ErrNotFound
}

func (m *mockToolStore) ListOverrides(ctx context.Context, orgID int64) ([]model.ToolOverride, error) {
	if m.listOverridesFn != nil {
		return m.listOverridesFn(ctx, orgID)
	}
	return nil, nil
}

func (m *mockToolStore) UpsertOverride(ctx context.Context, override *model.ToolOverride) error {
	if m.upsertOverrideFn != nil {
		return m.upsertOverrideFn(ctx, override)
	}
	return nil
}

func (m *mockToolStore) DeleteOverride(ctx context.Context, orgID, defaultToolID int64) error {
	if m.deleteOverrideFn != nil {
		return m.deleteOverrideFn(ctx, orgID, defaultToolID)
	}
	return nil
}

type mockWordPressStore struct {
	getByOrganizationFn func(ctx context.Context, orgID int64) (*model.WordPressIntegration, error)
	upsertFn            func(ctx context.Context, integration *model.WordPressIntegration) error
	updateTokensFn      func(ctx context.Context, id int64, accessToken string, refreshToken *string, expiresAt *time.Time) (*model.WordPressIntegration, error)
	listExpiringFn      func(ctx context.Context, before time.Time) ([]model.WordPressIntegration, error)
	deleteFn            func(ctx context.Context, orgID int64) error
}

func (m *mockWordPressStore) GetByOrganization(ctx context.Context, orgID int64) (*model.WordPressIntegration, error) {
	if m.getByOrganizationFn != nil {
		return m.getByOrganizationFn(ctx, orgID)
	}
	return nil, store.ErrNotFound
}

func (m *mockWordPressStore) Upsert(ctx context.Context, integration *model.WordPressIntegration) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, integration)
	}
	return nil
}

func (m *mockWordPressStore) UpdateTokens(ctx context.Context, id int64, accessToken string, refreshToken *string, expiresAt *time.Time) (*model.WordPressIntegration, error) {
	if m.updateTokensFn != nil {
		return m.updateTokensFn(ctx, id, accessToken, refreshToken, expiresAt)
	}
	return nil, store.ErrNotFound
}

func (m *mockWordPressStore) ListExpiring(ctx context.Context, before time.Time) ([]model.WordPressIntegration, error) {
	if m.listExpiringFn != nil {
		return m.listExpiringFn(ctx, before)
	}
	return nil, nil
}

func (m *mockWordPressStore) Delete(ctx context.Context, orgID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, orgID)
	}
	return nil
}

type mockContentStore struct {
	getByIDFn func(ctx context.Context, orgID, id int64) (*model.Content, error)
	listFn    func(ctx context.Context, orgID int64, limit, offset int32) ([]model.Content, error)
	createFn  func(ctx context.Context, content *model.Content) error
	updateFn  func(ctx context.Context, content *model.Content) error
	deleteFn  func(ctx context.Context, orgID, id int64) error
}

func (m *mockContentStore) GetByID(ctx context.Context, orgID, id int64) (*model.Content, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, orgID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockContentStore) List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Content, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orgID, limit, offset)
	}
	return nil, nil
}

func (m *mockContentStore) Create(ctx context.Context, content *model.Content) error {
	if m.createFn != nil {
		return m.createFn(ctx, content)
	}
	return nil
}

func (m *mockContentStore) Update(ctx context.Context, content *model.Content) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, content)
	}
	return nil
}

func (m *mockContentStore) Delete(ctx context.Context, orgID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, orgID, id)
	}
	return nil
}

type mockUsefulLinkStore struct {
	getByIDFn func(ctx context.Context, orgID, id int64) (*model.UsefulLink, error)
	listFn    func(ctx context.Context, orgID int64) ([]model.UsefulLink, error)
	createFn  func(ctx context.Context, link *model.UsefulLink) error
	updateFn  func(ctx context.Context, link *model.UsefulLink) error
	deleteFn  func(ctx context.Context, orgID, id int64) error
}

func (m *mockUsefulLinkStore) GetByID(ctx context.Context, orgID, id int64) (*model.UsefulLink, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, orgID, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUsefulLinkStore) List(ctx context.Context, orgID int64) ([]model.UsefulLink, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orgID)
	}
	return nil, nil
}

func (m *mockUsefulLinkStore) Create(ctx context.Context, link *model.UsefulLink) error {
	if m.createFn != nil {
		return m.createFn(ctx, link)
	}
	return nil
}

func (m *mockUsefulLinkStore) Update(ctx context.Context, link *model.UsefulLink) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, link)
	}
	return nil
}

func (m *mockUsefulLinkStore) Delete(ctx context.Context, orgID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, orgID, id)
	}
	return nil
}

type mockActivityStore struct {
	createFn func(ctx context.Context, activity *model.Activity) error
	listFn   func(ctx context.Context, orgID int64, limit, offset int32) ([]model.Activity, error)
}

func (m *mockActivityStore) Create(ctx context.Context, activity *model.Activity) error {
	if m.createFn != nil {
		return m.createFn(ctx, activity)
	}
	return nil
}

func (m *mockActivityStore) List(ctx context.Context, orgID int64, limit, offset int32) ([]model.Activity, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orgID, limit, offset)
	}
	return nil, nil
}

type mockOAuthStateStore struct {
	saveFn    func(ctx context.Context, state string, value store.OAuthState, ttl time.Duration) error
	consumeFn func(ctx context.Context, state string) (*store.OAuthState, error)
}

func (m *mockOAuthStateStore) Save(ctx context.Context, state string, value store.OAuthState, ttl time.Duration) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, state, value, ttl)
	}
	return nil
}

func (m *mockOAuthStateStore) Consume(ctx context.Context, state string) (*store.OAuthState, error) {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, state)
	}
	return nil, store.ErrNotFound
}

type mockIdentityProvider struct {
	createUserFn           func(ctx context.Context, email, password, name string) (*service.IdentityUser, error)
	authenticatePasswordFn func(ctx context.Context, email, password string) (*service.IdentityUser, error)
	deleteUserFn           func(ctx context.Context, userID string) error
}

func (m *mockIdentityProvider) CreateUser(ctx context.Context, email, password, name string) (*service.IdentityUser, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, email, password, name)
	}
	return &service.IdentityUser{ID: "user_01", Email: email}, nil
}

func (m *mockIdentityProvider) AuthenticatePassword(ctx context.Context, email, password string) (*service.IdentityUser, error) {
	if m.authenticatePasswordFn != nil {
		return m.authenticatePasswordFn(ctx, email, password)
	}
	return &service.IdentityUser{ID: "user_01", Email: email}, nil
}

func (m *mockIdentityProvider) DeleteUser(ctx context.Context, userID string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

type mockCompleter struct {
	completeFn func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error)
	model      string
	provider   string
}

func (m *mockCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return &llm.CompletionResponse{}, nil
}

func (m *mockCompleter) Model() string    { return m.model }
func (m *mockCompleter) Provider() string { return m.provider }

type mockVerifier struct {
	verifyKeyFn func(ctx context.Context) error
}

func (m *mockVerifier) VerifyKey(ctx context.Context) error {
	if m.verifyKeyFn != nil {
		return m.verifyKeyFn(ctx)
	}
	return nil
}

type mockLLMFactory struct {
	completerFn func(provider model.Provider, apiKey, modelName string) (llm.Completer, error)
	verifierFn  func(provider model.Provider, apiKey string) (llm.Verifier, error)
}

func (m *mockLLMFactory) Completer(provider model.Provider, apiKey, modelName string) (llm.Completer, error) {
	if m.completerFn != nil {
		return m.completerFn(provider, apiKey, modelName)
	}
	return &mockCompleter{model: modelName, provider: string(provider)}, nil
}

func (m *mockLLMFactory) Verifier(provider model.Provider, apiKey string) (llm.Verifier, error) {
	if m.verifierFn != nil {
		return m.verifierFn(provider, apiKey)
	}
	return &mockVerifier{}, nil
}

type mockPostSource struct {
	postsMarkdownFn func(ctx context.Context, orgID int64, postIDs []int64) (string, error)
}

func (m *mockPostSource) PostsMarkdown(ctx context.Context, orgID int64, postIDs []int64) (string, error) {
	if m.postsMarkdownFn != nil {
		return m.postsMarkdownFn(ctx, orgID, postIDs)
	}
	return "", nil
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

type mockStoreProvider struct {
	orgs       store.OrganizationStore
	profiles   store.ProfileStore
	sessions   store.SessionStore
	activities store.ActivityStore
}

func (m *mockStoreProvider) Organizations() store.OrganizationStore { return m.orgs }
func (m *mockStoreProvider) Profiles() store.ProfileStore           { return m.profiles }
func (m *mockStoreProvider) Sessions() store.SessionStore           { return m.sessions }
func (m *mockStoreProvider) Activities() store.ActivityStore        { return m.activities }

// recordingActivities captures recorded actions without a database.
type recordingActivities struct {
	actions []string
	err     error
}

func (r *recordingActivities) Record(_ context.Context, orgID int64, profileID *int64, action string, toolSlug *string, _ map[string]any) (*model.Activity, error) {
	r.actions = append(r.actions, action)
	if r.err != nil {
		return nil, r.err
	}
	return &model.Activity{OrganizationID: orgID, ProfileID: profileID, Action: action, ToolSlug: toolSlug}, nil
}

func (r *recordingActivities) List(context.Context, *model.Profile, int32, int32) ([]model.Activity, error) {
	return nil, nil
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func member(id, orgID int64, role model.Role) *model.Profile {
	return &model.Profile{ID: id, OrganizationID: int64Ptr(orgID), Email: "member@example.com", Name: "Member", Role: role}
}
