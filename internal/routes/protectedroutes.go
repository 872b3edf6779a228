package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aureeture/careerhub/internal/handlers"
	"github.com/aureeture/careerhub/internal/middlewares"
	"github.com/aureeture/careerhub/internal/repositories"
)

func RegisterProtectedEndpoints(
	router *gin.Engine,
	profileHandler *handlers.ProfileHandler,
	projectHandler *handlers.ProjectHandler,
	userRepo *repositories.UserRepository,
	identitySecret string,
) {
	protected := router.Group("/api")
	protected.Use(middlewares.AuthMiddleware(identitySecret, userRepo))

	protected.GET("/profile", profileHandler.Get)
	protected.POST("/profile", profileHandler.Create)
	protected.PUT("/profile", profileHandler.Update)

	protected.GET("/projects", projectHandler.List)
	protected.GET("/projects/me", projectHandler.Mine)
	protected.GET("/projects/:id", projectHandler.Get)
	protected.POST("/projects/:id/join", projectHandler.Join)
}
