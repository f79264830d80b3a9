package service

import (
	"net/http"

	"aihub.app/api/core/config"
	"aihub.app/api/internal/queue"
	"aihub.app/api/internal/store"
	"aihub.app/api/internal/wordpress"
)

type Services struct {
	stores     *store.Stores
	txRunner   TxRunner
	states     store.OAuthStateStore
	producer   queue.Producer
	identity   IdentityProvider
	llm        LLMFactory
	wpOAuth    WordPressOAuth
	cfg        config.Config
	httpClient *http.Client
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	states store.OAuthStateStore,
	producer queue.Producer,
	identity IdentityProvider,
	cfg config.Config,
) *Services {
	httpClient := &http.Client{Timeout: cfg.LLM.RequestTimeout}

	var wpOAuth WordPressOAuth
	if cfg.WordPress.Enabled() {
		wpOAuth = wordpress.NewOAuth(cfg.WordPress, nil)
	}

	return &Services{
		stores:     stores,
		txRunner:   txRunner,
		states:     states,
		producer:   producer,
		identity:   identity,
		llm:        NewLLMFactory(cfg.LLM, httpClient),
		wpOAuth:    wpOAuth,
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Profiles(), s.stores.Sessions(), s.identity, s.cfg.Security.SessionTTL)
}

func (s *Services) Profiles() ProfileService {
	return NewProfileService(s.stores.Profiles(), s.stores.Organizations())
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.txRunner, s.stores.Organizations(), s.stores.Profiles(), s.Activities())
}

func (s *Services) Admin() AdminService {
	return NewAdminService(s.stores.Profiles(), s.txRunner, s.identity, s.Activities())
}

func (s *Services) APIKeys() APIKeyService {
	return NewAPIKeyService(s.stores.APIKeys(), s.llm, s.Activities())
}

func (s *Services) UsefulLinks() UsefulLinkService {
	return NewUsefulLinkService(s.stores.UsefulLinks())
}

func (s *Services) Tools() ToolService {
	return NewToolService(s.stores.Tools(), s.Activities())
}

func (s *Services) Contents() ContentService {
	return NewContentService(s.stores.Contents(), s.Activities())
}

func (s *Services) Activities() ActivityService {
	return NewActivityService(s.stores.Activities(), s.producer)
}

func (s *Services) WordPress() WordPressService {
	return NewWordPressService(
		s.stores.WordPress(),
		s.states,
		s.Activities(),
		s.wpOAuth,
		s.cfg.WordPress,
		s.cfg.DashboardURL,
		WithWordPressHTTPClient(s.httpClient),
	)
}

func (s *Services) Assistant() AssistantService {
	return NewAssistantService(
		s.Tools(),
		s.stores.APIKeys(),
		s.llm,
		s.Contents(),
		s.WordPress(),
		s.Activities(),
	)
}
