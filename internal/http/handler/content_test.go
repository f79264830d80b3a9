package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/http/handler"
	"aihub.app/api/internal/model"
)

var _ = Describe("ContentHandler", func() {
	var (
		router *gin.Engine
		svc    *mockContentService
	)

	BeforeEach(func() {
		svc = &mockContentService{}
		router = gin.New()
		router.Use(asProfile(member(3, model.RoleUser)))
		h := handler.NewContentHandler(svc)
		router.GET("/contents", h.List)
		router.GET("/contents/:id", h.Get)
	})

	It("passes paging parameters through", func() {
		var limit, offset int32
		svc.listFn = func(_ context.Context, _ *model.Profile, l, o int32) ([]model.Content, error) {
			limit, offset = l, o
			return []model.Content{{ID: 11, ToolSlug: "summary", Title: "Weekly", Body: "text"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/contents?limit=10&offset=20", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(limit).To(Equal(int32(10)))
		Expect(offset).To(Equal(int32(20)))
		items := decode(w)["data"].([]any)
		Expect(items).To(HaveLen(1))
		Expect(items[0]).To(HaveKeyWithValue("id", "11"))
	})

	It("rejects a limit above 100", func() {
		req := httptest.NewRequest(http.MethodGet, "/contents?limit=500", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for unknown content", func() {
		req := httptest.NewRequest(http.MethodGet, "/contents/12", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(decode(w)["code"]).To(Equal("NOT_FOUND"))
	})
})
