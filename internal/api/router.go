package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kiwistay/hotel-booking-backend/internal/auth"
	"github.com/kiwistay/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/kiwistay/hotel-booking-backend/internal/booking/http"
	"github.com/kiwistay/hotel-booking-backend/internal/photo"
	photoHttp "github.com/kiwistay/hotel-booking-backend/internal/photo/http"
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
	roomtypeHttp "github.com/kiwistay/hotel-booking-backend/internal/roomtype/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	RoomTypeService roomtype.Service
	BookingService  booking.Service
	PhotoService    photo.Service
	AdminUsername   string
	AdminPassHash   string
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (recovery,
// request-id, logging, CORS) plus the per-module route registrations.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())

	// CORS: the two demo frontends run on their own dev ports; production
	// origins come from config.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:4200", // Angular dev server
			"http://localhost:5173", // Vite/React dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hotel-booking-backend"})
	})

	// adminMiddleware validates the console JWT and its admin role claim.
	adminMiddleware := auth.AdminRequired(cfg.JWTManager)

	adminHandler := NewAdminHandler(cfg.AdminUsername, cfg.AdminPassHash, auth.NewBcryptPasswordVerifier(), cfg.JWTManager)
	roomTypeHandler := roomtypeHttp.NewHandler(cfg.RoomTypeService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	// Public photo serving lives outside the versioned API.
	photoHttp.RegisterRoutes(r, photoHandler)

	v1 := r.Group("/v1")
	{
		roomtypeHttp.RegisterRoutes(v1, roomTypeHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)

		v1.POST("/admin/login", adminHandler.Login)
		v1.GET("/admin/session", adminMiddleware, adminHandler.Session)

		bookingHttp.RegisterAdminRoutes(v1, bookingHandler, adminMiddleware)
		photoHttp.RegisterAdminRoutes(v1, photoHandler, adminMiddleware)
	}

	return r
}
