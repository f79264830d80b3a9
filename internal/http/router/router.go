package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aihub.app/api/internal/http/handler"
	"aihub.app/api/internal/http/middleware"
	"aihub.app/api/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	SessionTTL   time.Duration
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.SessionTTL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	session := router.Group("")
	session.Use(middleware.RequireSession(services.Auth()))

	member := session.Group("")
	member.Use(middleware.RequireOrganization())

	profileHandler := handler.NewProfileHandler(services.Profiles())
	ProfileRouter(session.Group("/profile"), profileHandler)

	orgHandler := handler.NewOrganizationHandler(services.Organizations())
	OrganizationRouter(session.Group("/organization"), member.Group("/organization"), orgHandler)

	adminHandler := handler.NewAdminHandler(services.Admin())
	AdminRouter(member.Group("/admin"), adminHandler)

	keyHandler := handler.NewAPIKeyHandler(services.APIKeys())
	APIKeyRouter(member.Group("/integrations"), keyHandler)

	linkHandler := handler.NewUsefulLinkHandler(services.UsefulLinks())
	UsefulLinkRouter(member.Group("/useful-links"), linkHandler)

	toolHandler := handler.NewToolHandler(services.Tools())
	ToolRouter(member.Group("/tools"), toolHandler)

	assistantHandler := handler.NewAssistantHandler(services.Assistant())
	AssistantRouter(member.Group("/assistant"), assistantHandler)

	wpHandler := handler.NewWordPressHandler(services.WordPress())
	WordPressRouter(router.Group("/wordpress"), member.Group("/wordpress"), wpHandler)

	contentHandler := handler.NewContentHandler(services.Contents())
	ContentRouter(member.Group("/contents"), contentHandler)

	activityHandler := handler.NewActivityHandler(services.Activities())
	ActivityRouter(member.Group("/activities"), activityHandler)
}
