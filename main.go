package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	subscriptionControllers "github.com/IskDev0/organick-backend/controllers/subscription"
	"github.com/IskDev0/organick-backend/middleware"
	"github.com/IskDev0/organick-backend/models"
	"github.com/IskDev0/organick-backend/routes"
	"github.com/IskDev0/organick-backend/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := initDatabase()
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.UserRole{},
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
		&models.Payment{},
		&models.UserAddress{},
		&models.News{},
		&models.Subscriber{},
		&models.Application{},
		&models.TeamMember{},
		&models.Testimonial{},
	); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	if err := seedRoles(db); err != nil {
		logger.Fatal("Role seeding failed", zap.Error(err))
	}

	s3Client, err := storage.NewS3Client(context.Background())
	if err != nil {
		logger.Fatal("S3 init failed", zap.Error(err))
	}

	shutdownTracing, err := middleware.InitTracing("organick-backend")
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
	} else {
		defer shutdownTracing()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("organick-backend"))
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", middleware.PrometheusHandler())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r, db, s3Client, subscriptionControllers.NewResendMailer(), logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Info("Server running", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func initDatabase() (*gorm.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// seedRoles makes sure the fixed role rows exist before any user signs up.
func seedRoles(db *gorm.DB) error {
	roles := []models.UserRole{
		{ID: models.RoleCustomer, Name: "customer"},
		{ID: models.RoleAdmin, Name: "admin"},
		{ID: models.RoleAuthor, Name: "author"},
	}
	for _, role := range roles {
		if err := db.FirstOrCreate(&role, models.UserRole{ID: role.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}
