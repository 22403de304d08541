// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/henryfigma/zirveparca/internal/config"
	"github.com/henryfigma/zirveparca/internal/handlers"
	"github.com/henryfigma/zirveparca/internal/middleware"
	"github.com/henryfigma/zirveparca/internal/services"
	"github.com/henryfigma/zirveparca/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	categoryService := services.NewCategoryService(db)
	partBrandService := services.NewPartBrandService(db)
	partService := services.NewPartService(db)
	garageService := services.NewGarageService(db)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	brandHandler := handlers.NewBrandHandler(catalogService)
	vehicleHandler := handlers.NewVehicleHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	partBrandHandler := handlers.NewPartBrandHandler(partBrandService)
	partHandler := handlers.NewPartHandler(partService)
	garageHandler := handlers.NewGarageHandler(garageService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	v1 := r.Group("/v1")

	// Authentication
	auth := v1.Group("/auth")
	auth.POST("/register", middleware.AuthRateLimit(), authHandler.Register)
	auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
	auth.GET("/profile", middleware.AuthRequired(), authHandler.GetProfile)
	auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)
	auth.POST("/addresses", middleware.AuthRequired(), authHandler.AddAddress)
	auth.DELETE("/addresses/:id", middleware.AuthRequired(), authHandler.DeleteAddress)

	// Vehicle brands
	brands := v1.Group("/brands")
	brands.GET("", brandHandler.ListBrands)
	brands.POST("", middleware.AuthRequired(), middleware.AdminRequired(), brandHandler.CreateBrand)
	brands.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), brandHandler.UpdateBrand)
	brands.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), brandHandler.DeleteBrand)

	// Vehicles
	cars := v1.Group("/cars")
	cars.GET("", vehicleHandler.ListVehicles)
	cars.GET("/models", vehicleHandler.ListModels)
	cars.GET("/:id", vehicleHandler.GetVehicle)
	cars.POST("", middleware.AuthRequired(), middleware.AdminRequired(), vehicleHandler.CreateVehicle)
	cars.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), vehicleHandler.UpdateVehicle)
	cars.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), vehicleHandler.DeleteVehicle)

	// Part brands
	partBrands := v1.Group("/part-brands")
	partBrands.GET("", partBrandHandler.ListPartBrands)
	partBrands.POST("", middleware.AuthRequired(), middleware.AdminRequired(), partBrandHandler.CreatePartBrand)
	partBrands.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), partBrandHandler.UpdatePartBrand)
	partBrands.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), partBrandHandler.DeletePartBrand)

	// Categories
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.POST("", middleware.AuthRequired(), middleware.AdminRequired(), categoryHandler.CreateCategory)
	categories.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), categoryHandler.UpdateCategory)
	categories.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), categoryHandler.DeleteCategory)

	// Parts
	parts := v1.Group("/parts")
	parts.GET("", partHandler.ListParts)
	parts.GET("/search", partHandler.SearchParts)
	parts.GET("/compatible/:carId", partHandler.ListCompatible)
	parts.GET("/categories/:carId", partHandler.ListActiveCategories)
	parts.GET("/:id", partHandler.GetPart)
	parts.POST("", middleware.AuthRequired(), middleware.AdminRequired(), partHandler.CreatePart)
	parts.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), partHandler.UpdatePart)
	parts.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), partHandler.DeletePart)

	// Garage
	garage := v1.Group("/garage", middleware.AuthRequired())
	garage.GET("", garageHandler.ListGarage)
	garage.POST("/:carId", garageHandler.AddVehicle)
	garage.DELETE("/:carId", garageHandler.RemoveVehicle)

	// Cart
	cart := v1.Group("/cart", middleware.AuthRequired())
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.DELETE("/items/:partId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)

	// Orders
	orders := v1.Group("/orders", middleware.AuthRequired())
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("", orderHandler.CreateOrder)
	orders.PUT("/:id/status", middleware.AdminRequired(), orderHandler.UpdateStatus)
	orders.DELETE("/:id", middleware.AdminRequired(), orderHandler.DeleteOrder)

	// Users (admin)
	users := v1.Group("/users", middleware.AuthRequired(), middleware.AdminRequired())
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	return r
}
