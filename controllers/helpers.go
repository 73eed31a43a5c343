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

// currentUserUUID pulls the authenticated user id out of the gin context.
// Responds 401 and returns false when it is missing or malformed.
func currentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	str, ok := userID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID in context")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// loadOwnedTenant fetches a tenant and enforces ownership: 404 when the row
// does not exist, 403 when it belongs to another user.
func loadOwnedTenant(c *gin.Context, tenantID, userID uuid.UUID) (*models.Tenant, bool) {
	var tenant models.Tenant
	if err := config.DB.First(&tenant, "id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tenant not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	if tenant.OwnerUserID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "You do not have access to this tenant")
		return nil, false
	}
	return &tenant, true
}

// loadOwnedService fetches a service and enforces tenant ownership with the
// same 404/403 split.
func loadOwnedService(c *gin.Context, serviceID, userID uuid.UUID) (*models.Service, bool) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	if _, ok := loadOwnedTenant(c, service.TenantID, userID); !ok {
		return nil, false
	}
	return &service, true
}

// parseIDParam parses a uuid path parameter, responding 400 on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
