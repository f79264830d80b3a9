package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/common/logger"
	"aihub.app/api/internal/http/middleware"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
)

type stubAuthService struct {
	service.AuthService
	authenticateFn func(ctx context.Context, token string) (*model.Profile, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*model.Profile, error) {
	return s.authenticateFn(ctx, token)
}

var _ = Describe("RequireSession", func() {
	var (
		router   *gin.Engine
		auth     *stubAuthService
		seen     *model.Profile
		seenTok  string
		orgID    int64
		received bool
	)

	BeforeEach(func() {
		orgID = 100
		seen, seenTok, received = nil, "", false
		auth = &stubAuthService{
			authenticateFn: func(_ context.Context, token string) (*model.Profile, error) {
				if token == "good" {
					return &model.Profile{ID: 7, OrganizationID: &orgID, Role: model.RoleUser}, nil
				}
				return nil, service.ErrUnauthenticated
			},
		}

		router = gin.New()
		router.GET("/me", middleware.RequireSession(auth), func(c *gin.Context) {
			received = true
			seen = middleware.GetProfile(c.Request.Context())
			seenTok = middleware.GetToken(c.Request.Context())
			c.Status(http.StatusNoContent)
		})
	})

	serve := func(mutate func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if mutate != nil {
			mutate(req)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("resolves a bearer token to the profile", func() {
		w := serve(func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") })

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seen.ID).To(Equal(int64(7)))
		Expect(seenTok).To(Equal("good"))
	})

	It("falls back to the session cookie", func() {
		w := serve(func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good"})
		})

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seen).NotTo(BeNil())
	})

	It("returns 401 without a token", func() {
		w := serve(nil)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(ContainSubstring(`"code":"UNAUTHENTICATED"`))
		Expect(received).To(BeFalse())
	})

	It("returns 401 and clears the cookie for an expired session", func() {
		w := serve(func(r *http.Request) { r.Header.Set("Authorization", "Bearer stale") })

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "="))
		Expect(received).To(BeFalse())
	})

	It("returns 500 when the session lookup fails", func() {
		auth.authenticateFn = func(_ context.Context, _ string) (*model.Profile, error) {
			return nil, errors.New("db down")
		}

		w := serve(func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") })

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})

var _ = Describe("RequireOrganization", func() {
	serveAs := func(p *model.Profile) *httptest.ResponseRecorder {
		router := gin.New()
		router.GET("/org",
			func(c *gin.Context) {
				if p != nil {
					c.Request = c.Request.WithContext(middleware.WithProfile(c.Request.Context(), p))
				}
				c.Next()
			},
			middleware.RequireOrganization(),
			func(c *gin.Context) { c.Status(http.StatusNoContent) },
		)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/org", nil))
		return w
	}

	It("passes members through", func() {
		orgID := int64(1)
		Expect(serveAs(&model.Profile{ID: 1, OrganizationID: &orgID}).Code).To(Equal(http.StatusNoContent))
	})

	It("returns 403 NO_ORGANIZATION for profiles without one", func() {
		w := serveAs(&model.Profile{ID: 1})

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(w.Body.String()).To(ContainSubstring("NO_ORGANIZATION"))
	})

	It("returns 401 when no session ran", func() {
		Expect(serveAs(nil).Code).To(Equal(http.StatusUnauthorized))
	})
})

var _ = Describe("RequestTrace", func() {
	It("reuses an incoming request id and exposes the trace", func() {
		var trace *logger.Trace
		router := gin.New()
		router.Use(middleware.RequestTrace())
		router.GET("/ping", func(c *gin.Context) {
			trace = logger.TraceFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("req-123"))
		Expect(trace).NotTo(BeNil())
		Expect(trace.RequestID).To(Equal("req-123"))
	})

	It("generates a request id when none is sent", func() {
		router := gin.New()
		router.Use(middleware.RequestTrace())
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		Expect(w.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())
	})
})

var _ = Describe("Recovery", func() {
	It("turns a panic into a 500 envelope", func() {
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("INTERNAL_ERROR"))
	})
})
