package main

import (
	"fmt"
	"log"
	"os"

	"citaflow-backend/config"
	"citaflow-backend/controllers"
	"citaflow-backend/models"
	"citaflow-backend/routes"
	"citaflow-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.ConnectRedis()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Tenant{},
		&models.Service{},
		&models.ServiceVariant{},
		&models.AvailabilitySchedule{},
		&models.ScheduleException{},
		&models.Appointment{},
		&models.PaymentMethod{},
		&models.NotificationLog{},
	)
}

func main() {
	notifications := services.NewNotificationService(config.DB)
	availability := services.NewAvailabilityService(config.DB)
	booking := services.NewBookingService(config.DB, availability, notifications)
	controllers.InitServices(availability, booking)

	reminders := services.NewReminderService(config.DB, notifications)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
