// controllers/public.go
package controllers

import (
	"errors"
	"net/http"

	"citaflow-backend/config"
	"citaflow-backend/models"
	"citaflow-backend/services"
	"citaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PublicBookingInput struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	VariantID     *string `json:"variant_id"`
	Date          string  `json:"date" binding:"required"`
	Time          string  `json:"time" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	CustomerEmail string  `json:"customer_email"`
	PaymentMethod string  `json:"payment_method"`
}

// GetPublicTenantPage returns everything the booking page needs: the tenant,
// its active services with variants, and its active payment methods.
// No auth by design.
func GetPublicTenantPage(c *gin.Context) {
	slug := c.Param("slug")

	var tenant models.Tenant
	if err := config.DB.First(&tenant, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Page not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var serviceList []models.Service
	if err := config.DB.Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Order("created_at ASC").
		Find(&serviceList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	var paymentMethods []models.PaymentMethod
	config.DB.Where("tenant_id = ? AND is_active = ?", tenant.ID, true).
		Order("display_order ASC, id ASC").
		Find(&paymentMethods)

	c.JSON(http.StatusOK, gin.H{
		"tenant": gin.H{
			"id":          tenant.ID,
			"name":        tenant.Name,
			"slug":        tenant.Slug,
			"description": tenant.Description,
			"address":     tenant.Address,
			"phone":       tenant.Phone,
		},
		"services":        serviceList,
		"payment_methods": paymentMethods,
	})
}

// GetPublicAvailability returns the bookable slots for a service on a date.
// An empty list is a normal answer, never an error.
func GetPublicAvailability(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "service_id is required")
		return
	}

	date := c.Query("date")
	if !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	duration := 0 // resolver falls back to the service/variant duration
	if variantParam := c.Query("variant_id"); variantParam != "" {
		variantID, err := uuid.Parse(variantParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid variant_id format")
			return
		}
		var service models.Service
		if err := config.DB.First(&service, "id = ?", serviceID).Error; err == nil {
			var variant models.ServiceVariant
			if err := config.DB.First(&variant, "id = ? AND service_id = ?", variantID, serviceID).Error; err == nil {
				duration = services.EffectiveDuration(&service, &variant)
			}
		}
	}

	slots, err := availabilityService.Resolve(serviceID, date, duration)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidService):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve availability")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreatePublicBooking books a slot for an anonymous customer. The slot is
// re-validated and capacity is enforced transactionally, so losing the race
// returns 409 instead of over-booking.
func CreatePublicBooking(c *gin.Context) {
	var input PublicBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service_id format")
		return
	}

	var variantID *uuid.UUID
	if input.VariantID != nil && *input.VariantID != "" {
		id, err := uuid.Parse(*input.VariantID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid variant_id format")
			return
		}
		variantID = &id
	}

	appointment, err := bookingService.CreateAppointment(services.CreateBookingInput{
		ServiceID:     serviceID,
		VariantID:     variantID,
		Date:          input.Date,
		Time:          input.Time,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidService):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, services.ErrSlotUnavailable), errors.Is(err, services.ErrSlotExhausted):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}
