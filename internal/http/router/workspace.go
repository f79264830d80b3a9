package router

import (
	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/handler"
)

func UsefulLinkRouter(rg *gin.RouterGroup, h *handler.UsefulLinkHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("", h.Delete)
}

func ToolRouter(rg *gin.RouterGroup, h *handler.ToolHandler) {
	rg.GET("", h.List)
	rg.GET("/:slug", h.Get)
	rg.PUT("/:slug", h.Update)
	rg.DELETE("/:slug", h.Reset)
}

func AssistantRouter(rg *gin.RouterGroup, h *handler.AssistantHandler) {
	rg.POST("/proofread", h.Proofread)
	rg.POST("/thread", h.Thread)
	rg.POST("/summary", h.Summary)
	rg.POST("/newsletter", h.Newsletter)
}

func ContentRouter(rg *gin.RouterGroup, h *handler.ContentHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func ActivityRouter(rg *gin.RouterGroup, h *handler.ActivityHandler) {
	rg.GET("", h.List)
}
