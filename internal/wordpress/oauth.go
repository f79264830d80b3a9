package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"aihub.app/api/core/config"
)

var ErrNoRefreshToken = errors.New("integration has no refresh token")

// Token is the subset of a WordPress.com token response the service persists.
type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       *time.Time
	BlogID       string
	BlogURL      string
}

// OAuth drives the WordPress.com OAuth2 endpoints. Client credentials are sent
// in the form body, which is what WordPress.com expects.
type OAuth struct {
	cfg        *oauth2.Config
	httpClient *http.Client
}

func NewOAuth(cfg config.WordPressConfig, httpClient *http.Client) *OAuth {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &OAuth{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"global"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthorizeURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

func (o *OAuth) AuthCodeURL(state string) string {
	return o.cfg.AuthCodeURL(state)
}

func (o *OAuth) Exchange(ctx context.Context, code string) (*Token, error) {
	tok, err := o.cfg.Exchange(o.clientContext(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	return fromOAuth2(tok), nil
}

// PasswordToken uses the resource-owner password grant. site scopes the token
// to one blog when set.
func (o *OAuth) PasswordToken(ctx context.Context, username, password, site string) (*Token, error) {
	cfg := *o.cfg
	if site != "" {
		cfg.Endpoint.TokenURL = withQuery(cfg.Endpoint.TokenURL, "blog", site)
	}
	tok, err := cfg.PasswordCredentialsToken(o.clientContext(ctx), username, password)
	if err != nil {
		return nil, fmt.Errorf("password grant: %w", err)
	}
	return fromOAuth2(tok), nil
}

// Refresh issues a single refresh_token grant. The previous refresh token is
// kept when the server does not rotate it.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}
	src := o.cfg.TokenSource(o.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	return fromOAuth2(tok), nil
}

func (o *OAuth) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
}

func fromOAuth2(tok *oauth2.Token) *Token {
	t := &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		BlogID:       extraString(tok, "blog_id"),
		BlogURL:      extraString(tok, "blog_url"),
	}
	if !tok.Expiry.IsZero() {
		exp := tok.Expiry
		t.Expiry = &exp
	}
	return t
}

// extraString reads a token response field that may be encoded as a string or a number.
func extraString(tok *oauth2.Token, key string) string {
	switch v := tok.Extra(key).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
