package wordpress_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/core/config"
	"aihub.app/api/internal/wordpress"
)

var _ = Describe("OAuth", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
		calls   atomic.Int32
		oauth   *wordpress.OAuth
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		calls.Store(0)
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			calls.Add(1)
			handler(w, r)
		}))
		DeferCleanup(server.Close)

		oauth = wordpress.NewOAuth(config.WordPressConfig{
			ClientID:     "client-1",
			ClientSecret: "secret-1",
			RedirectURI:  "http://localhost:8080/wordpress/oauth/callback",
			AuthorizeURL: server.URL + "/oauth2/authorize",
			TokenURL:     server.URL + "/oauth2/token",
		}, server.Client())
	})

	It("builds the authorize URL with state and redirect", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }

		raw := oauth.AuthCodeURL("state-123")
		u, err := url.Parse(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Path).To(Equal("/oauth2/authorize"))
		Expect(u.Query().Get("state")).To(Equal("state-123"))
		Expect(u.Query().Get("client_id")).To(Equal("client-1"))
		Expect(u.Query().Get("response_type")).To(Equal("code"))
		Expect(u.Query().Get("redirect_uri")).To(Equal("http://localhost:8080/wordpress/oauth/callback"))
		Expect(calls.Load()).To(BeZero())
	})

	It("exchanges a code and reads the blog fields", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			Expect(r.ParseForm()).To(Succeed())
			Expect(r.PostForm.Get("grant_type")).To(Equal("authorization_code"))
			Expect(r.PostForm.Get("code")).To(Equal("code-1"))
			Expect(r.PostForm.Get("client_secret")).To(Equal("secret-1"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","refresh_token":"ref-1","expires_in":3600,"blog_id":"98765","blog_url":"https://acme.wordpress.com"}`))
		}

		tok, err := oauth.Exchange(ctx, "code-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(tok.AccessToken).To(Equal("tok-1"))
		Expect(tok.RefreshToken).To(Equal("ref-1"))
		Expect(tok.BlogID).To(Equal("98765"))
		Expect(tok.BlogURL).To(Equal("https://acme.wordpress.com"))
		Expect(tok.Expiry).NotTo(BeNil())
		Expect(*tok.Expiry).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
	})

	It("accepts a numeric blog_id", func() {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","blog_id":12345}`))
		}

		tok, err := oauth.Exchange(ctx, "code-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(tok.BlogID).To(Equal("12345"))
		Expect(tok.Expiry).To(BeNil())
	})

	It("uses the password grant", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			Expect(r.ParseForm()).To(Succeed())
			Expect(r.PostForm.Get("grant_type")).To(Equal("password"))
			Expect(r.PostForm.Get("username")).To(Equal("editor"))
			Expect(r.PostForm.Get("password")).To(Equal("hunter2"))
			Expect(r.URL.Query().Get("blog")).To(Equal("acme.wordpress.com"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok-2","token_type":"bearer","blog_id":"1","blog_url":"https://acme.wordpress.com"}`))
		}

		tok, err := oauth.PasswordToken(ctx, "editor", "hunter2", "acme.wordpress.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(tok.AccessToken).To(Equal("tok-2"))
	})

	Describe("Refresh", func() {
		It("performs exactly one refresh request and keeps an unrotated refresh token", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.ParseForm()).To(Succeed())
				Expect(r.PostForm.Get("grant_type")).To(Equal("refresh_token"))
				Expect(r.PostForm.Get("refresh_token")).To(Equal("ref-1"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"tok-new","token_type":"bearer","expires_in":7200}`))
			}

			tok, err := oauth.Refresh(ctx, "ref-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(tok.AccessToken).To(Equal("tok-new"))
			Expect(tok.RefreshToken).To(Equal("ref-1"))
			Expect(calls.Load()).To(Equal(int32(1)))
		})

		It("fails without calling the endpoint when there is no refresh token", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

			_, err := oauth.Refresh(ctx, "")
			Expect(err).To(MatchError(wordpress.ErrNoRefreshToken))
			Expect(calls.Load()).To(BeZero())
		})

		It("returns an error when the token endpoint rejects the grant", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			}

			_, err := oauth.Refresh(ctx, "ref-1")
			Expect(err).To(HaveOccurred())
			Expect(calls.Load()).To(Equal(int32(1)))
		})
	})
})
