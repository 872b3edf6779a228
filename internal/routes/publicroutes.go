package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aureeture/careerhub/internal/handlers"
)

func RegisterPublicEndpoints(
	router *gin.Engine,
	sessionHandler *handlers.SessionHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	menteeHandler *handlers.MenteeHandler,
	contactHandler *handlers.ContactHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.GET("/health", handlers.Health)

	public := router.Group("/api")

	public.POST("/mentor-sessions", sessionHandler.Create)
	public.GET("/mentor-sessions", sessionHandler.List)
	public.POST("/mentor-sessions/confirm-payment", sessionHandler.ConfirmPayment)
	public.POST("/mentor-sessions/create-demo", sessionHandler.CreateDemo)
	public.GET("/mentor-sessions/:id", sessionHandler.Get)
	public.PATCH("/mentor-sessions/:id", sessionHandler.Update)
	public.DELETE("/mentor-sessions/:id", sessionHandler.Delete)
	public.POST("/mentor-sessions/:id/complete", sessionHandler.Complete)
	public.GET("/mentor-sessions/:id/verify-join", sessionHandler.VerifyJoin)

	public.POST("/session/join", sessionHandler.Join)
	public.POST("/session/recording/start", sessionHandler.StartRecording)
	public.POST("/session/recording/stop", sessionHandler.StopRecording)

	public.GET("/mentor-availability/slots", availabilityHandler.Slots)
	public.PUT("/mentor-availability", availabilityHandler.Set)

	public.GET("/mentor-mentees", menteeHandler.List)
	public.GET("/mentor-mentees/:id", menteeHandler.Get)

	public.POST("/leads", contactHandler.CreateLead)
	public.POST("/enterprise-demo", contactHandler.CreateEnterpriseDemo)
	public.POST("/contact", contactHandler.CreateMessage)

	public.GET("/caro/ws", webSocketHandler.HandleWebSocket)
}
