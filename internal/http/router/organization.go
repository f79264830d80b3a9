package router

import (
	"github.com/gin-gonic/gin"

	"aihub.app/api/internal/http/handler"
)

// OrganizationRouter sets up organization routes
// - /organization/create only needs a session
// - everything else requires membership
func OrganizationRouter(sessionRg, memberRg *gin.RouterGroup, h *handler.OrganizationHandler) {
	sessionRg.POST("/create", h.Create)

	memberRg.GET("", h.Get)
	memberRg.PUT("", h.Update)
	memberRg.GET("/members", h.ListMembers)
	memberRg.PATCH("/members/:id", h.ChangeMemberRole)
}

func AdminRouter(rg *gin.RouterGroup, h *handler.AdminHandler) {
	rg.DELETE("/users/delete", h.DeleteUser)
}
