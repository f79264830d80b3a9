package router

import (
	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

func ProfileRouter(rg *gin.RouterGroup, h *handler.ProfileHandler) {
	rg.GET("", h.Get)
	rg.PUT("", h.Update)
}
