package routes

import (
	"net/http"
	"time"

	"legalaid/handlers"
	"legalaid/middleware"
	"legalaid/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.POST("", hb.Appointment.CreateAppointmentHandler)
		api.GET("", hb.Appointment.ListMyAppointmentsHandler)

		// Only the provider side (or an admin) may confirm or reject; the
		// service re-checks the actor, the role gate just fails fast.
		api.PATCH("/:id/status",
			middleware.RequireRole(models.RoleLawyer, models.RoleNGO, models.RoleAdmin),
			hb.Appointment.UpdateAppointmentStatusHandler)
	}
}

// RegisterAvailabilityRoutes registers the derived slot-grid endpoint. It is
// readable by any authenticated actor so citizens can pick slots.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.GET("", hb.Appointment.ResolveAvailabilityHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed. Reads use
// optional auth so an unauthenticated poll degrades to an empty feed instead
// of an error; mutations require a real actor.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		reads := api.Group("")
		reads.Use(middleware.JWTAuthMiddleware(true))
		reads.GET("", hb.Notification.ListNotificationsHandler)
		reads.GET("/unread-count", hb.Notification.UnreadCountHandler)

		writes := api.Group("")
		writes.Use(middleware.JWTAuthMiddleware(false))
		writes.PATCH("/:id/read", hb.Notification.MarkReadHandler)
		writes.PATCH("/read-all", hb.Notification.MarkAllReadHandler)
		writes.DELETE("/:id", hb.Notification.DeleteNotificationHandler)
	}
}

// RegisterCaseRoutes registers the case hand-off endpoints.
func RegisterCaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cases")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.GET("/:id", hb.Case.GetCaseHandler)
		api.POST("/:id/assign",
			middleware.RequireRole(models.RoleLawyer, models.RoleNGO),
			hb.Case.AcceptCaseHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCaseRoutes(r, hb)
	RegisterHealthRoute(r)
}
