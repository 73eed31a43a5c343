package controllers

import "citaflow-backend/services"

var (
	availabilityService *services.AvailabilityService
	bookingService      *services.BookingService
)

// InitServices wires the core services into the handlers. Called once from
// main after the database connection is up.
func InitServices(availability *services.AvailabilityService, booking *services.BookingService) {
	availabilityService = availability
	bookingService = booking
}
