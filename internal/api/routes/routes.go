package routes

import (
	"log"

	_ "org-management-backend/docs" // swagger generated docs
	"org-management-backend/internal/api/handlers"
	"org-management-backend/internal/api/middleware"
	"org-management-backend/internal/auth"
	"org-management-backend/internal/config"
	"org-management-backend/internal/repository"
	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	partitionRepo := repository.NewPartitionRepository(db)

	// Services
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.JWTSecret,
		Algorithm:  cfg.JWTAlgorithm,
		ExpMinutes: cfg.JWTExpMinutes,
		Issuer:     cfg.AppName,
	})
	if err != nil {
		return nil, err
	}
	orgService := service.NewOrganizationService(orgRepo, adminRepo, partitionRepo, validate)
	authService := service.NewAuthService(adminRepo, tokens, validate)

	// Handlers
	orgHandler := handlers.NewOrganizationHandler(orgService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db, cfg.AppName)

	authMiddleware := auth.NewMiddleware(authService)

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	org := router.Group("/org")
	{
		org.POST("/create", orgHandler.CreateOrganization)
		org.GET("/:name", orgHandler.GetOrganization)
		org.PUT("/:name", authMiddleware.RequireAuth(), orgHandler.UpdateOrganization)
		org.DELETE("/:name", authMiddleware.RequireAuth(), orgHandler.DeleteOrganization)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)
	}

	log.Printf("Routes configured for %s", cfg.AppName)

	return router, nil
}
