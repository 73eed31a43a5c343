// controllers/schedule.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"citaflow-backend/config"
	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateScheduleInput struct {
	ServiceID string `json:"service_id" binding:"required"`
	DayOfWeek *int   `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SetScheduleActiveInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// CreateSchedule adds a recurring weekly block to an owned service.
// Overlap with other blocks is not rejected here; the free-range listing is
// advisory and the resolver stays correct under overlapping input.
func CreateSchedule(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service_id format")
		return
	}

	if _, ok := loadOwnedService(c, serviceID, userID); !ok {
		return
	}

	if *input.DayOfWeek < 0 || *input.DayOfWeek > 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "day_of_week must be between 0 (Sunday) and 6 (Saturday)")
		return
	}

	start, err := utils.ParseClock(input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := utils.ParseClock(input.EndTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if end <= start {
		utils.RespondWithError(c, http.StatusBadRequest, "end_time must be after start_time")
		return
	}

	schedule := models.AvailabilitySchedule{
		ServiceID: serviceID,
		DayOfWeek: *input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		IsActive:  true,
	}

	if err := config.DB.Create(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedulesByService lists the weekly blocks of an owned service
func GetSchedulesByService(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}

	if _, ok := loadOwnedService(c, serviceID, userID); !ok {
		return
	}

	var schedules []models.AvailabilitySchedule
	if err := config.DB.Where("service_id = ?", serviceID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetTenantDaySchedules lists the blocks of every service of a tenant for one
// weekday, so the owner can see which ranges are already occupied.
func GetTenantDaySchedules(c *gin.Context) {
	schedules, ok := tenantDaySchedules(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GetTenantDayFreeRanges returns the gaps left between a tenant's blocks for
// one weekday. Advisory only: the owner can still force an overlap.
func GetTenantDayFreeRanges(c *gin.Context) {
	schedules, ok := tenantDaySchedules(c)
	if !ok {
		return
	}

	occupied := make([]utils.TimeRange, 0, len(schedules))
	for _, s := range schedules {
		start, err := utils.ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClock(s.EndTime)
		if err != nil {
			continue
		}
		occupied = append(occupied, utils.TimeRange{Start: start, End: end})
	}

	dayEnd := 23*60 + 59
	free := utils.SubtractRanges([]utils.TimeRange{{Start: 0, End: dayEnd}}, utils.MergeRanges(occupied))

	type freeRange struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	out := []freeRange{}
	for _, r := range free {
		out = append(out, freeRange{Start: utils.FormatClock(r.Start), End: utils.FormatClock(r.End)})
	}

	c.JSON(http.StatusOK, out)
}

func tenantDaySchedules(c *gin.Context) ([]models.AvailabilitySchedule, bool) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return nil, false
	}

	tenantID, ok := parseIDParam(c, "tenantId")
	if !ok {
		return nil, false
	}

	if _, ok := loadOwnedTenant(c, tenantID, userID); !ok {
		return nil, false
	}

	dayOfWeek, err := strconv.Atoi(c.Param("dayOfWeek"))
	if err != nil || dayOfWeek < 0 || dayOfWeek > 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "dayOfWeek must be between 0 and 6")
		return nil, false
	}

	var schedules []models.AvailabilitySchedule
	if err := config.DB.
		Joins("JOIN services ON services.id = availability_schedules.service_id").
		Where("services.tenant_id = ? AND availability_schedules.day_of_week = ? AND availability_schedules.is_active = ?",
			tenantID, dayOfWeek, true).
		Order("availability_schedules.start_time ASC").
		Find(&schedules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return nil, false
	}

	return schedules, true
}

// SetScheduleActive toggles a weekly block without deleting it
func SetScheduleActive(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	scheduleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var schedule models.AvailabilitySchedule
	if err := config.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, ok := loadOwnedService(c, schedule.ServiceID, userID); !ok {
		return
	}

	var input SetScheduleActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	schedule.IsActive = *input.IsActive
	if err := config.DB.Save(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule removes a weekly block
func DeleteSchedule(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	scheduleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var schedule models.AvailabilitySchedule
	if err := config.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, ok := loadOwnedService(c, schedule.ServiceID, userID); !ok {
		return
	}

	if err := config.DB.Delete(&schedule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
