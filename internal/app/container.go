package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiwistay/hotel-booking-backend/internal/api"
	"github.com/kiwistay/hotel-booking-backend/internal/auth"
	"github.com/kiwistay/hotel-booking-backend/internal/booking"
	"github.com/kiwistay/hotel-booking-backend/internal/photo"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/civil"
	"github.com/kiwistay/hotel-booking-backend/internal/pkg/storage"
	"github.com/kiwistay/hotel-booking-backend/internal/roomtype"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	DBPool            *pgxpool.Pool
	JWTSecret         string
	JWTTTL            time.Duration
	AdminUsername     string
	AdminPasswordHash string
	BookingTimezone   string
	PhotoStoragePath  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Civil-date clock anchoring "today" for check-in validation.
	var clock civil.Clock
	if cfg.BookingTimezone != "" {
		clock = civil.NewClock(cfg.BookingTimezone)
	} else {
		clock = civil.NewClock(civil.DefaultZones...)
	}

	// Room type module
	rtRepo := roomtype.NewPgxRepository(cfg.DBPool)
	rtService := roomtype.NewService(rtRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, rtService, clock)

	// Photo module
	photoStore, err := storage.NewLocalStorage(cfg.PhotoStoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init photo storage: %w", err)
	}
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, rtService, photoStore)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		RoomTypeService: rtService,
		BookingService:  bookingService,
		PhotoService:    photoService,
		AdminUsername:   cfg.AdminUsername,
		AdminPassHash:   cfg.AdminPasswordHash,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
