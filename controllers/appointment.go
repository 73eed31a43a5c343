// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"citaflow-backend/config"
	"citaflow-backend/models"
	"citaflow-backend/services"
	"citaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateStatusInput struct {
	Status string  `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	Notes  *string `json:"notes"`
}

// GetAppointments lists an owned tenant's appointments with optional status
// and date filters
func GetAppointments(c *gin.Context) {
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

	query := config.DB.Where("tenant_id = ?", tenantID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		if !utils.ValidateDate(date) {
			utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		query = query.Where("appointment_date = ?", date)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date DESC, appointment_time ASC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// The response carries a whatsapp_url for transitions that notify the
// customer, mirroring what the dashboard opens in a new tab.
func UpdateAppointmentStatus(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, ok := loadOwnedTenant(c, appointment.TenantID, userID); !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	notes := ""
	if input.Notes != nil {
		notes = *input.Notes
	}

	updated, whatsappURL, err := bookingService.UpdateStatus(appointmentID, input.Status, notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrReasonRequired):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	response := gin.H{"appointment": updated}
	if whatsappURL != "" {
		response["whatsapp_url"] = whatsappURL
	}
	c.JSON(http.StatusOK, response)
}

// DownloadAppointmentICS serves the calendar file for a confirmed appointment
func DownloadAppointmentICS(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tenant, ok := loadOwnedTenant(c, appointment.TenantID, userID)
	if !ok {
		return
	}

	if appointment.Status != models.StatusConfirmed {
		utils.RespondWithError(c, http.StatusConflict, "Only confirmed appointments have a calendar file")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", appointment.ServiceID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var variant *models.ServiceVariant
	if appointment.VariantID != nil {
		var v models.ServiceVariant
		if err := config.DB.First(&v, "id = ?", *appointment.VariantID).Error; err == nil {
			variant = &v
		}
	}

	start, err := time.Parse("2006-01-02 15:04", appointment.AppointmentDate+" "+appointment.AppointmentTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid appointment date")
		return
	}
	end := start.Add(time.Duration(services.EffectiveDuration(&service, variant)) * time.Minute)

	ics := utils.GenerateICS(utils.ICSAppointmentData{
		UID:           appointment.ID.String() + "@citaflow",
		Title:         service.Title + " - " + tenant.Name,
		Description:   "Cita de " + appointment.CustomerName + " para " + service.Title,
		Location:      tenant.Address,
		StartDate:     start,
		EndDate:       end,
		CustomerName:  appointment.CustomerName,
		CustomerEmail: appointment.CustomerEmail,
	}, time.Now())

	c.Header("Content-Disposition", `attachment; filename="cita-`+appointment.AppointmentDate+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
