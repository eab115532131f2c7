package server

import (
	"io/fs"
	"net/http"
	"strings"

	httpHandler "media-portal/interfaces/http"
	"media-portal/interfaces/middleware"
	"media-portal/web"

	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	healthHandler httpHandler.IHealthHandler,
	youtubeHandler httpHandler.IYouTubeHandler,
	deploymentHandler httpHandler.IDeploymentHandler,
	pageHandler httpHandler.IPageHandler,
	isDevelopment bool,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(isDevelopment))

	// Health checks stay outside the /api middleware
	router.GET("/health", healthHandler.Health)
	router.GET("/api/health", healthHandler.Health)

	corsHandler := middleware.CORS()
	apiHeaders := middleware.APIHeaders()

	api := router.Group("/api")
	api.Use(corsHandler, apiHeaders)
	api.Any("/youtube", youtubeHandler.Search)
	if deploymentHandler != nil {
		api.Any("/deployment-check", deploymentHandler.Check)
	}

	if static, err := fs.Sub(web.FS, "static"); err == nil {
		router.StaticFS("/static", http.FS(static))
	}

	// Unmatched /api paths still get CORS; everything else is a page
	router.NoRoute(func(ctx *gin.Context) {
		if !strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			pageHandler.Handle(ctx)
			return
		}
		for _, h := range []gin.HandlerFunc{corsHandler, apiHeaders} {
			if h(ctx); ctx.IsAborted() {
				return
			}
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return router
}
