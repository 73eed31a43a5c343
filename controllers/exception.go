// controllers/exception.go
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

type CreateExceptionInput struct {
	TenantID      string  `json:"tenant_id" binding:"required"`
	ServiceID     *string `json:"service_id"` // null applies to every service of the tenant
	ExceptionDate string  `json:"exception_date" binding:"required"`
	StartTime     *string `json:"start_time"` // null blocks the entire day
	EndTime       *string `json:"end_time"`
	Reason        string  `json:"reason"`
}

// CreateException blocks part or all of one date for a tenant or one service
func CreateException(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreateExceptionInput
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

	if !utils.ValidateDate(input.ExceptionDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "exception_date must be YYYY-MM-DD")
		return
	}

	var serviceID *uuid.UUID
	if input.ServiceID != nil && *input.ServiceID != "" {
		id, err := uuid.Parse(*input.ServiceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service_id format")
			return
		}
		var service models.Service
		if err := config.DB.First(&service, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		serviceID = &id
	}

	if input.StartTime == nil && input.EndTime != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "end_time requires start_time")
		return
	}
	if input.StartTime != nil {
		start, err := utils.ParseClock(*input.StartTime)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if input.EndTime != nil {
			end, err := utils.ParseClock(*input.EndTime)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, err.Error())
				return
			}
			if end <= start {
				utils.RespondWithError(c, http.StatusBadRequest, "end_time must be after start_time")
				return
			}
		}
	}

	exception := models.ScheduleException{
		TenantID:      tenantID,
		ServiceID:     serviceID,
		ExceptionDate: input.ExceptionDate,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		IsBlocked:     true,
		Reason:        input.Reason,
	}

	if err := config.DB.Create(&exception).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create exception")
		return
	}

	c.JSON(http.StatusCreated, exception)
}

// GetExceptionsByTenant lists a tenant's exceptions, optionally filtered to
// one service (tenant-wide exceptions are always included in the filter)
func GetExceptionsByTenant(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	tenantID, ok := parseIDParam(c, "tenantId")
	if !ok {
		return
	}

	if _, ok := loadOwnedTenant(c, tenantID, userID); !ok {
		return
	}

	query := config.DB.Where("tenant_id = ?", tenantID)
	if serviceFilter := c.Query("service_id"); serviceFilter != "" {
		serviceID, err := uuid.Parse(serviceFilter)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service_id format")
			return
		}
		query = query.Where("service_id IS NULL OR service_id = ?", serviceID)
	}

	var exceptions []models.ScheduleException
	if err := query.Order("exception_date ASC, start_time ASC").Find(&exceptions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve exceptions")
		return
	}

	c.JSON(http.StatusOK, exceptions)
}

// DeleteException removes a date exception
func DeleteException(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	exceptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var exception models.ScheduleException
	if err := config.DB.First(&exception, "id = ?", exceptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Exception not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, ok := loadOwnedTenant(c, exception.TenantID, userID); !ok {
		return
	}

	if err := config.DB.Delete(&exception).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete exception")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exception deleted successfully"})
}
