package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/internal/handlers"
	"github.com/wantosing/backend/internal/middleware"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/services"
	"github.com/wantosing/backend/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis
	redisClient := models.InitRedis(cfg)
	defer redisClient.Close()

	// Initialize the storage layer and the cross-instance change bridge
	st := store.New(store.NewGormBackend(db))
	bridge := store.NewBridge(st, redisClient)

	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()
	go bridge.Run(bridgeCtx)

	// Initialize services
	profileService := services.NewProfileService(st)
	sessionService := services.NewSessionService(st)
	roomService := services.NewRoomService(st, cfg, sessionService)
	qrService := services.NewQRService(cfg, roomService)

	// Start periodic cleanup for expired rooms
	if cfg.RoomCleanupEnabled {
		go func() {
			for {
				removed, err := roomService.CleanupExpired(context.Background())
				if err != nil {
					log.Printf("Room cleanup error: %v", err)
				} else if removed > 0 {
					log.Printf("Room cleanup: removed %d expired rooms", removed)
				}
				time.Sleep(cfg.RoomCleanupInterval)
			}
		}()
	}

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimiter(redisClient, cfg))

	// Initialize handlers
	deviceHandler := handlers.NewDeviceHandler(cfg)
	profileHandler := handlers.NewProfileHandler(profileService)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg)
	roomHandler := handlers.NewRoomHandler(roomService, qrService, cfg)
	watchHandler := handlers.NewWatchHandler(st)

	// Health check outside API group (no /api/v1 prefix)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Setup routes
	api := router.Group("/api/v1")
	{
		// Health check also available under /api/v1/health for compatibility
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// Catch-all OPTIONS handler for CORS preflight requests
		api.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		// Device registration
		api.POST("/device/register", deviceHandler.Register)

		// Profile routes, scoped to the calling device
		profile := api.Group("/profile")
		profile.Use(middleware.DeviceAuth(cfg))
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.PutProfile)
			profile.DELETE("", profileHandler.DeleteProfile)
			profile.POST("/disconnect", profileHandler.Disconnect)
			profile.POST("/sample", profileHandler.ApplySample)
		}

		// Session routes
		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.POST("", sessionHandler.CreateSession)
			sessions.POST("/import", middleware.ImportRateLimit(redisClient, cfg), sessionHandler.ImportSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PATCH("/:id", sessionHandler.UpdateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.POST("/:id/songs", sessionHandler.AddSong)
			sessions.POST("/:id/songs/sample", sessionHandler.QuickAddSample)
			sessions.GET("/:id/export", sessionHandler.ExportSession)
		}

		// Room routes
		rooms := api.Group("/rooms")
		{
			rooms.POST("", roomHandler.CreateRoom)
			rooms.POST("/join", roomHandler.JoinRoom)
			rooms.GET("/:code", roomHandler.GetRoom)
			rooms.GET("/:code/qr.png", roomHandler.RoomQRCode)
			rooms.GET("/:code/invite.pdf", roomHandler.RoomInvitePDF)
			rooms.GET("/:code/participants", roomHandler.ListParticipants)
			rooms.POST("/:code/participants", roomHandler.AddParticipant)
			rooms.POST("/:code/participants/sample", roomHandler.AddSampleParticipant)
			rooms.DELETE("/:code/participants/:index", roomHandler.RemoveParticipant)
			rooms.POST("/:code/session", roomHandler.CreateSessionFromRoom)
		}

		// Change feed
		api.GET("/watch", watchHandler.Watch)
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // SSE connections stay open
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
