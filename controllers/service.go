// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"citaflow-backend/config"
	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	TenantID                uuid.UUID `json:"tenant_id" binding:"required"`
	Title                   string    `json:"title" binding:"required"`
	Description             string    `json:"description"`
	Price                   *float64  `json:"price"`
	DurationMinutes         *int      `json:"duration_minutes"`
	MaxSimultaneousBookings int       `json:"max_simultaneous_bookings"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Title                   *string  `json:"title"`
	Description             *string  `json:"description"`
	Price                   *float64 `json:"price"`
	DurationMinutes         *int     `json:"duration_minutes"`
	MaxSimultaneousBookings *int     `json:"max_simultaneous_bookings"`
	IsActive                *bool    `json:"is_active"`
}

// CreateService creates a new service for an owned tenant
func CreateService(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, ok := loadOwnedTenant(c, input.TenantID, userID); !ok {
		return
	}

	if input.MaxSimultaneousBookings < 1 {
		input.MaxSimultaneousBookings = 1
	}
	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "duration_minutes must be positive")
		return
	}

	service := models.Service{
		TenantID:                input.TenantID,
		Title:                   input.Title,
		Description:             input.Description,
		Price:                   input.Price,
		DurationMinutes:         input.DurationMinutes,
		MaxSimultaneousBookings: input.MaxSimultaneousBookings,
		IsActive:                true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices lists the services of an owned tenant, variants included
func GetServices(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "tenant_id is required")
		return
	}

	if _, ok := loadOwnedTenant(c, tenantID, userID); !ok {
		return
	}

	var services []models.Service
	if err := config.DB.Where("tenant_id = ?", tenantID).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific owned service with its variants
func GetService(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	service, ok := loadOwnedService(c, serviceID, userID)
	if !ok {
		return
	}

	config.DB.Where("service_id = ?", service.ID).
		Order("display_order ASC, id ASC").
		Find(&service.Variants)

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	service, ok := loadOwnedService(c, serviceID, userID)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = input.Price
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "duration_minutes must be positive")
			return
		}
		service.DurationMinutes = input.DurationMinutes
	}
	if input.MaxSimultaneousBookings != nil {
		if *input.MaxSimultaneousBookings < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "max_simultaneous_bookings must be at least 1")
			return
		}
		service.MaxSimultaneousBookings = *input.MaxSimultaneousBookings
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service together with its variants and schedules
func DeleteService(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	service, ok := loadOwnedService(c, serviceID, userID)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.AvailabilitySchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(service).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// --- Variants ---

type CreateVariantInput struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes *int    `json:"duration_minutes"`
	DisplayOrder    int     `json:"display_order"`
}

type UpdateVariantInput struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	DisplayOrder    *int     `json:"display_order"`
}

// GetVariants lists a service's variants in display order
func GetVariants(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := loadOwnedService(c, serviceID, userID); !ok {
		return
	}

	var variants []models.ServiceVariant
	if err := config.DB.Where("service_id = ?", serviceID).
		Order("display_order ASC, id ASC").
		Find(&variants).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve variants")
		return
	}

	c.JSON(http.StatusOK, variants)
}

// CreateVariant adds a variant to an owned service
func CreateVariant(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := loadOwnedService(c, serviceID, userID); !ok {
		return
	}

	var input CreateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "duration_minutes must be positive")
		return
	}

	variant := models.ServiceVariant{
		ServiceID:       serviceID,
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		DisplayOrder:    input.DisplayOrder,
	}

	if err := config.DB.Create(&variant).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create variant")
		return
	}

	c.JSON(http.StatusCreated, variant)
}

// UpdateVariant updates a variant of an owned service
func UpdateVariant(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variantID, ok := parseIDParam(c, "variantId")
	if !ok {
		return
	}

	if _, ok := loadOwnedService(c, serviceID, userID); !ok {
		return
	}

	var variant models.ServiceVariant
	if err := config.DB.Where("id = ? AND service_id = ?", variantID, serviceID).
		First(&variant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Variant not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		variant.Name = *input.Name
	}
	if input.Price != nil {
		variant.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "duration_minutes must be positive")
			return
		}
		variant.DurationMinutes = input.DurationMinutes
	}
	if input.DisplayOrder != nil {
		variant.DisplayOrder = *input.DisplayOrder
	}

	if err := config.DB.Save(&variant).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update variant")
		return
	}

	c.JSON(http.StatusOK, variant)
}

// DeleteVariant removes a variant from an owned service
func DeleteVariant(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variantID, ok := parseIDParam(c, "variantId")
	if !ok {
		return
	}

	if _, ok := loadOwnedService(c, serviceID, userID); !ok {
		return
	}

	result := config.DB.Where("id = ? AND service_id = ?", variantID, serviceID).
		Delete(&models.ServiceVariant{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete variant")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Variant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Variant deleted successfully"})
}
