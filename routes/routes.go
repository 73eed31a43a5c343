package routes

import (
	"os"
	"strconv"
	"strings"
	"time"

	"citaflow-backend/config"
	"citaflow-backend/controllers"
	"citaflow-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Customer-facing endpoints, unauthenticated by design
	publicLimit := 60
	if env := os.Getenv("PUBLIC_RATE_LIMIT"); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			publicLimit = n
		}
	}

	public := r.Group("/public")
	public.Use(utils.RateLimitMiddleware(config.Redis, publicLimit, time.Minute))
	{
		public.GET("/tenants/:slug", controllers.GetPublicTenantPage)
		public.GET("/availability", controllers.GetPublicAvailability)
		public.POST("/bookings", controllers.CreatePublicBooking)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Tenant routes
		tenants := api.Group("/tenants")
		{
			tenants.POST("", controllers.CreateTenant)
			tenants.GET("", controllers.GetTenants)
			tenants.GET("/:id", controllers.GetTenant)
			tenants.PUT("/:id", controllers.UpdateTenant)
			tenants.GET("/:id/dashboard", controllers.GetTenantDashboard)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)

			services.GET("/:id/variants", controllers.GetVariants)
			services.POST("/:id/variants", controllers.CreateVariant)
			services.PUT("/:id/variants/:variantId", controllers.UpdateVariant)
			services.DELETE("/:id/variants/:variantId", controllers.DeleteVariant)
		}

		// Schedule and exception routes
		schedules := api.Group("/schedules")
		{
			schedules.POST("", controllers.CreateSchedule)
			schedules.GET("/service/:serviceId", controllers.GetSchedulesByService)
			schedules.GET("/tenant/:tenantId/day/:dayOfWeek", controllers.GetTenantDaySchedules)
			schedules.GET("/tenant/:tenantId/day/:dayOfWeek/free", controllers.GetTenantDayFreeRanges)
			schedules.PUT("/:id/active", controllers.SetScheduleActive)
			schedules.DELETE("/:id", controllers.DeleteSchedule)

			schedules.POST("/exceptions", controllers.CreateException)
			schedules.GET("/exceptions/tenant/:tenantId", controllers.GetExceptionsByTenant)
			schedules.DELETE("/exceptions/:id", controllers.DeleteException)
		}

		// Payment method routes
		payments := api.Group("/payment-methods")
		{
			payments.POST("", controllers.CreatePaymentMethod)
			payments.GET("", controllers.GetPaymentMethods)
			payments.PUT("/:id", controllers.UpdatePaymentMethod)
			payments.DELETE("/:id", controllers.DeletePaymentMethod)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.PATCH("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.GET("/:id/ics", controllers.DownloadAppointmentICS)
		}
	}

	return r
}
