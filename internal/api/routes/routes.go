package routes

import (
	"saas-dashboard-backend/internal/api/handlers"
	"saas-dashboard-backend/internal/api/middleware"
	"saas-dashboard-backend/internal/auth"
	"saas-dashboard-backend/internal/config"
	"saas-dashboard-backend/internal/repository"
	"saas-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	authzService := service.NewAuthzService(membershipRepo)
	activityService := service.NewActivityService(activityRepo, membershipRepo)
	emailService := service.NewEmailService(cfg)
	notificationService := service.NewNotificationService(notificationRepo)
	organizationService := service.NewOrganizationService(organizationRepo, authzService, activityService, validator)
	invitationService := service.NewInvitationService(invitationRepo, membershipRepo, userRepo, organizationRepo,
		authzService, emailService, notificationService, activityService, validator)
	membershipService := service.NewMembershipService(membershipRepo, authzService, activityService, validator)
	analyticsService := service.NewAnalyticsService(userRepo, organizationRepo, membershipRepo, activityRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	memberHandler := handlers.NewMemberHandler(membershipService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	activityHandler := handlers.NewActivityHandler(activityService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes, all require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("", organizationHandler.ListMyOrganizations)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)

			organizations.GET("/:id/members", memberHandler.ListMembers)
			organizations.PUT("/:id/members/:userId", memberHandler.UpdateMemberRole)
			organizations.DELETE("/:id/members/:userId", memberHandler.RemoveMember)

			organizations.POST("/:id/invitations", invitationHandler.CreateInvitation)
		}

		invitations := v1.Group("/invitations")
		{
			invitations.GET("", invitationHandler.ListMyInvitations)
			invitations.POST("/accept", invitationHandler.AcceptInvitation)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.PUT("/read-all", notificationHandler.MarkAllNotificationsRead)
			notifications.PUT("/:id/read", notificationHandler.MarkNotificationRead)
		}

		v1.GET("/activity", activityHandler.ListActivity)
		v1.GET("/analytics/dashboard", analyticsHandler.DashboardStats)
	}

	return router
}
