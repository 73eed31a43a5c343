// controllers/payment_method.go
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

type CreatePaymentMethodInput struct {
	TenantID     string `json:"tenant_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Details      string `json:"details"`
	DisplayOrder int    `json:"display_order"`
}

type UpdatePaymentMethodInput struct {
	Name         *string `json:"name"`
	Details      *string `json:"details"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

// CreatePaymentMethod adds a payment option to an owned tenant
func CreatePaymentMethod(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreatePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tenantID, err := uuid.Parse(input.TenantID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid tenant_id format")
		return
	}

	if _, ok := loadOwnedTenant(c, tenantID, userID); !ok {
		return
	}

	method := models.PaymentMethod{
		TenantID:     tenantID,
		Name:         input.Name,
		Details:      input.Details,
		IsActive:     true,
		DisplayOrder: input.DisplayOrder,
	}

	if err := config.DB.Create(&method).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment method")
		return
	}

	c.JSON(http.StatusCreated, method)
}

// GetPaymentMethods lists the payment options of an owned tenant
func GetPaymentMethods(c *gin.Context) {
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

	var methods []models.PaymentMethod
	if err := config.DB.Where("tenant_id = ?", tenantID).
		Order("display_order ASC, id ASC").
		Find(&methods).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment methods")
		return
	}

	c.JSON(http.StatusOK, methods)
}

// UpdatePaymentMethod updates a payment option
func UpdatePaymentMethod(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	methodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var method models.PaymentMethod
	if err := config.DB.First(&method, "id = ?", methodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment method not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, ok := loadOwnedTenant(c, method.TenantID, userID); !ok {
		return
	}

	var input UpdatePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		method.Name = *input.Name
	}
	if input.Details != nil {
		method.Details = *input.Details
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		method.DisplayOrder = *input.DisplayOrder
	}

	if err := config.DB.Save(&method).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment method")
		return
	}

	c.JSON(http.StatusOK, method)
}

// DeletePaymentMethod removes a payment option
func DeletePaymentMethod(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	methodID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var method models.PaymentMethod
	if err := config.DB.First(&method, "id = ?", methodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment method not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, ok := loadOwnedTenant(c, method.TenantID, userID); !ok {
		return
	}

	if err := config.DB.Delete(&method).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment method")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted successfully"})
}
