package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"frotavistoria-api/config"
	"frotavistoria-api/controllers"
	"frotavistoria-api/middleware"
	"frotavistoria-api/repositories"
	"frotavistoria-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, photoService *services.PhotoService) {
	// Repositories
	truckRepo := repositories.NewTruckRepository(db)
	driverRepo := repositories.NewDriverRepository(db)
	vehicleSetRepo := repositories.NewVehicleSetRepository(db)
	inspectionRepo := repositories.NewInspectionRequestRepository(db)

	// Services
	truckService := services.NewTruckService(truckRepo)
	driverService := services.NewDriverService(driverRepo)
	vehicleSetService := services.NewVehicleSetService(vehicleSetRepo, truckRepo)
	inspectionService := services.NewInspectionRequestService(
		db, inspectionRepo, truckRepo, vehicleSetRepo, driverRepo, photoService, emailService)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	truckController := controllers.NewTruckController(truckService)
	driverController := controllers.NewDriverController(driverService)
	vehicleSetController := controllers.NewVehicleSetController(vehicleSetService)
	inspectionController := controllers.NewInspectionRequestController(inspectionService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Uploaded photos are served straight off the upload tree
	r.Static("/api/uploads", photoService.BaseDir())

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Public inspection routes: the token in the URL is the only
	// credential, so they stay outside the JWT group but behind a
	// per-IP rate limit.
	public := v1.Group("/public")
	public.Use(middleware.RateLimit(30, 10))
	{
		public.GET("/inspections/:token", inspectionController.GetRequestByToken)
		public.POST("/inspections/:token/submit", inspectionController.SubmitInspection)
	}

	// Staff routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Truck routes
		trucks := protected.Group("/trucks")
		{
			trucks.GET("/", truckController.GetTrucks)
			trucks.POST("/", truckController.CreateTruck)
			trucks.GET("/:id", truckController.GetTruck)
			trucks.PUT("/:id", truckController.UpdateTruck)
			trucks.DELETE("/:id", truckController.DeleteTruck)
		}

		// Driver routes
		drivers := protected.Group("/drivers")
		{
			drivers.GET("/", driverController.GetDrivers)
			drivers.POST("/", driverController.CreateDriver)
			drivers.GET("/:id", driverController.GetDriver)
			drivers.PUT("/:id", driverController.UpdateDriver)
			drivers.DELETE("/:id", driverController.DeleteDriver)
		}

		// Vehicle set routes
		vehicleSets := protected.Group("/vehicle-sets")
		{
			vehicleSets.GET("/", vehicleSetController.GetVehicleSets)
			vehicleSets.POST("/", vehicleSetController.CreateVehicleSet)
			vehicleSets.GET("/available/cavalos", vehicleSetController.GetAvailableCavalos)
			vehicleSets.GET("/available/carretas", vehicleSetController.GetAvailableCarretas)
			vehicleSets.GET("/available/dollys", vehicleSetController.GetAvailableDollys)
			vehicleSets.GET("/:id", vehicleSetController.GetVehicleSet)
			vehicleSets.PUT("/:id", vehicleSetController.UpdateVehicleSet)
			vehicleSets.DELETE("/:id", vehicleSetController.DeleteVehicleSet)
		}

		// Inspection request routes (staff side)
		inspections := protected.Group("/inspection-requests")
		{
			inspections.GET("/", inspectionController.ListRequests)
			inspections.POST("/", inspectionController.CreateRequest)
			inspections.PATCH("/:id/status", inspectionController.UpdateStatus)
			inspections.GET("/:id/photos", inspectionController.GetPhotos)
		}
	}
}
