package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"frotavistoria-api/config"
	"frotavistoria-api/database"
	"frotavistoria-api/jobs"
	"frotavistoria-api/middleware"
	"frotavistoria-api/models"
	"frotavistoria-api/repositories"
	"frotavistoria-api/routes"
	"frotavistoria-api/services"

	"github.com/google/uuid"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using default environment variables: %v", err)
	}

	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Ensure the default admin exists
	ensureAdminExists(db, cfg)

	// Ensure the upload tree exists before anything writes to it
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	emailService := services.NewEmailService(cfg)
	photoService := services.NewPhotoService(cfg.UploadDir)

	// Set Gin mode based on environment
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(gin.Recovery())

	routes.SetupRoutes(router, db, cfg, emailService, photoService)

	// Orphaned photo cleanup runs hourly
	cleanupJob := jobs.NewPhotoCleanupJob(db, cfg.UploadDir, time.Hour)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Daily reminder for drivers that have not filled their inspection yet
	inspectionService := services.NewInspectionRequestService(
		db,
		repositories.NewInspectionRequestRepository(db),
		repositories.NewTruckRepository(db),
		repositories.NewVehicleSetRepository(db),
		repositories.NewDriverRepository(db),
		photoService,
		emailService,
	)

	c := cron.New()
	_, err = c.AddFunc("0 9 * * *", func() {
		log.Println("Sending pending inspection reminders...")
		if err := inspectionService.SendPendingReminders(24 * time.Hour); err != nil {
			log.Printf("Failed to send pending inspection reminders: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule inspection reminder cron job: %v", err)
	}
	c.Start()
	defer c.Stop()

	log.Printf("Starting FrotaVistoria API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// ensureAdminExists seeds the default admin account on first boot so the
// staff UI is reachable before any user management happens.
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var admin models.User
	if err := db.Where("role = ?", models.RoleAdmin).First(&admin).Error; err == nil {
		log.Printf("Admin already exists: email=%s", admin.Email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin = models.User{
		ID:       uuid.New().String(),
		Name:     "Administrador",
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create default admin: %v", err)
	}

	log.Printf("Default admin created: email=%s", admin.Email)
}
