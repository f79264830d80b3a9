package router

import (
	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/handler"
)

func APIKeyRouter(rg *gin.RouterGroup, h *handler.APIKeyHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/verify", h.Verify)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// WordPressRouter sets up WordPress routes
// - /wordpress/oauth/callback is public (browser redirect from WordPress.com)
// - everything else requires membership
func WordPressRouter(publicRg, memberRg *gin.RouterGroup, h *handler.WordPressHandler) {
	publicRg.GET("/oauth/callback", h.Callback)

	memberRg.POST("/oauth/authorize", h.Authorize)
	memberRg.POST("/oauth/token", h.PasswordToken)
	memberRg.GET("/oauth/token", h.Status)
	memberRg.POST("/oauth/disconnect", h.Disconnect)
	memberRg.POST("/connect", h.ConnectBasic)
	memberRg.GET("/search", h.Search)
}
