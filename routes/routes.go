package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/khavyaindhu/farmersupportapp/config"
	"github.com/khavyaindhu/farmersupportapp/controllers"
	"github.com/khavyaindhu/farmersupportapp/middleware"
	"github.com/khavyaindhu/farmersupportapp/services"
)

// Services bundles the record stores the routes sit on.
type Services struct {
	Users    *services.UserService
	Session  *services.SessionService
	Schemes  *services.SchemeService
	Crops    *services.CropService
	Visits   *services.VisitService
	Advisory *services.AdvisoryService
}

// SetupRouter wires every endpoint.
func SetupRouter(cfg config.Config, svc Services) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	authController := controllers.NewAuthController(svc.Users, svc.Session, cfg.JWTSecret)
	userController := controllers.NewUserController(svc.Users)
	schemeController := controllers.NewSchemeController(svc.Schemes)
	cropController := controllers.NewCropController(svc.Crops)
	visitController := controllers.NewVisitController(svc.Visits)
	advisoryController := controllers.NewAdvisoryController(svc.Advisory)

	// Public routes. The session endpoints are open because the mobile app
	// restores the durable session at startup, before it has a token.
	public := r.Group("/")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/logout", authController.Logout)
		public.GET("/session", authController.CurrentSession)
		public.GET("/schemes", schemeController.Catalogue)
	}

	// Authenticated routes.
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/profile", userController.Profile)
		protected.PUT("/profile", userController.UpdateProfile)

		protected.GET("/scheme", schemeController.Current)
		protected.POST("/scheme/apply", schemeController.Apply)
		protected.DELETE("/scheme/withdraw", schemeController.Withdraw)

		protected.GET("/crops", cropController.List)
		protected.POST("/crops", cropController.Create)
		protected.PUT("/crops/:id", cropController.Update)
		protected.DELETE("/crops/:id", cropController.Delete)
		protected.GET("/crops/analytics", cropController.Analytics)

		protected.GET("/visits", visitController.List)
		protected.POST("/visits", visitController.Create)
		protected.PUT("/visits/:id", visitController.Update)
		protected.DELETE("/visits/:id", visitController.Delete)
		protected.GET("/visits/frequency", visitController.Frequency)

		protected.POST("/disease/detect", advisoryController.Detect)
	}

	// Admin-only routes.
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.GET("/overview", userController.Overview)
		admin.POST("/clear", userController.ClearAll)
	}

	return r
}
