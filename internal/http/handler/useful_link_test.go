package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/http/handler"
	"aihub.app/api/internal/model"
	"aihub.app/api/internal/service"
)

var _ = Describe("UsefulLinkHandler", func() {
	var (
		router *gin.Engine
		svc    *mockUsefulLinkService
	)

	BeforeEach(func() {
		svc = &mockUsefulLinkService{}
		router = gin.New()
		router.Use(asProfile(member(3, model.RoleUser)))
		h := handler.NewUsefulLinkHandler(svc)
		router.PUT("/useful-links", h.Update)
		router.DELETE("/useful-links", h.Delete)
	})

	It("reads the id from the update body", func() {
		var got int64
		var title string
		svc.updateFn = func(_ context.Context, _ *model.Profile, linkID int64, in service.UpdateUsefulLinkInput) (*model.UsefulLink, error) {
			got = linkID
			title = *in.Title
			return &model.UsefulLink{ID: linkID, Title: *in.Title}, nil
		}

		req := httptest.NewRequest(http.MethodPut, "/useful-links", bytes.NewBufferString(`{"id":"42","title":"Style guide"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got).To(Equal(int64(42)))
		Expect(title).To(Equal("Style guide"))
	})

	It("reads the id from the delete query string", func() {
		var got int64
		svc.deleteFn = func(_ context.Context, _ *model.Profile, linkID int64) error {
			got = linkID
			return nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/useful-links?id=42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got).To(Equal(int64(42)))
	})

	It("returns 403 when someone else's link is deleted", func() {
		svc.deleteFn = func(_ context.Context, _ *model.Profile, _ int64) error {
			return service.ErrForbidden
		}

		req := httptest.NewRequest(http.MethodDelete, "/useful-links?id=42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("returns 400 without an id", func() {
		req := httptest.NewRequest(http.MethodDelete, "/useful-links", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
