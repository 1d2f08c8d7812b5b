package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public photo-serving routes onto the engine root
// (photo URLs are stored in room types, outside the versioned API).
func RegisterRoutes(r gin.IRouter, h *Handler) {
	group := r.Group("/photos")

	group.GET("/:id", h.Serve)
	group.GET("/:id/thumbnail", h.ServeThumbnail)
}

// RegisterAdminRoutes wires the JWT-gated upload route.
func RegisterAdminRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/room-types")
	group.Use(authMiddleware)

	group.POST("/:id/photo", h.Upload)
}
