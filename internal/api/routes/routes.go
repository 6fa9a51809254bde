package routes

import (
	"fmt"
	"net/http"

	"todo-list-backend/internal/api/handlers"
	"todo-list-backend/internal/api/middleware"
	"todo-list-backend/internal/auth"
	"todo-list-backend/internal/config"
	"todo-list-backend/internal/metrics"
	"todo-list-backend/internal/repository"
	"todo-list-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := validator.New()

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	toDoListRepo := repository.NewToDoListRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, organizationRepo, validator, cfg.BcryptCost)
	authenticator := service.NewAuthenticator(userRepo)
	toDoListService := service.NewToDoListService(toDoListRepo, validator)

	sessionConfig := auth.NewSessionConfig(cfg)
	sessionService, err := auth.NewSessionService(sessionConfig, sessionRepo, userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session service: %w", err)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	authHandler := auth.NewAuthHandler(userService, authenticator, sessionService, sessionConfig)
	authMiddleware := auth.NewAuthMiddleware(sessionService, sessionConfig)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	toDoListHandler := handlers.NewToDoListHandler(toDoListService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Registration and login are the only endpoints open to anonymous callers
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/", handlers.APIRoot)
		protected.GET("/logout", authHandler.Logout)
		protected.POST("/logout", authHandler.Logout)

		organizations := protected.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.PATCH("/:id", organizationHandler.PatchOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
		}

		todoLists := protected.Group("/todo_lists")
		{
			todoLists.GET("", toDoListHandler.ListToDoLists)
			todoLists.POST("", toDoListHandler.CreateToDoList)
			todoLists.GET("/:id", toDoListHandler.GetToDoList)
			todoLists.PUT("/:id", toDoListHandler.UpdateToDoList)
			todoLists.PATCH("/:id", toDoListHandler.PatchToDoList)
			todoLists.DELETE("/:id", toDoListHandler.DeleteToDoList)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router, nil
}
