package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the guest-facing booking routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/room-types/:id/availability", h.CheckAvailability)
	g.POST("/bookings", h.Create)
}

// RegisterAdminRoutes wires the JWT-gated admin console routes.
func RegisterAdminRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.DELETE("", h.Delete)
	}
}
