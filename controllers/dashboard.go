package controllers

import (
	"net/http"
	"time"

	"citaflow-backend/config"
	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalAppointments int64               `json:"totalAppointments"`
	PendingCount      int64               `json:"pendingCount"`
	ConfirmedCount    int64               `json:"confirmedCount"`
	CompletedCount    int64               `json:"completedCount"`
	CancelledCount    int64               `json:"cancelledCount"`
	TodayCount        int64               `json:"todayCount"`
	Upcoming          []UpcomingBooking   `json:"upcoming"`
}

type UpcomingBooking struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	DaysOut      int    `json:"daysOut"`
}

// GetTenantDashboard returns the appointment overview for an owned tenant
func GetTenantDashboard(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	tenantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tenant, ok := loadOwnedTenant(c, tenantID, userID)
	if !ok {
		return
	}

	overview := DashboardOverview{Upcoming: []UpcomingBooking{}}

	config.DB.Model(&models.Appointment{}).
		Where("tenant_id = ?", tenant.ID).
		Count(&overview.TotalAppointments)

	for status, target := range map[string]*int64{
		models.StatusPending:   &overview.PendingCount,
		models.StatusConfirmed: &overview.ConfirmedCount,
		models.StatusCompleted: &overview.CompletedCount,
		models.StatusCancelled: &overview.CancelledCount,
	} {
		config.DB.Model(&models.Appointment{}).
			Where("tenant_id = ? AND status = ?", tenant.ID, status).
			Count(target)
	}

	today := time.Now().Format("2006-01-02")
	config.DB.Model(&models.Appointment{}).
		Where("tenant_id = ? AND appointment_date = ? AND status IN ?", tenant.ID, today, models.ActiveStatuses).
		Count(&overview.TodayCount)

	var upcoming []models.Appointment
	config.DB.Where("tenant_id = ? AND appointment_date >= ? AND status IN ?", tenant.ID, today, models.ActiveStatuses).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(10).
		Find(&upcoming)

	now := time.Now()
	for _, a := range upcoming {
		daysOut := 0
		if when, err := time.ParseInLocation("2006-01-02", a.AppointmentDate, now.Location()); err == nil {
			daysOut = utils.DaysBetween(now, when)
		}
		overview.Upcoming = append(overview.Upcoming, UpcomingBooking{
			ID:           a.ID.String(),
			CustomerName: a.CustomerName,
			Date:         a.AppointmentDate,
			Time:         a.AppointmentTime,
			Status:       a.Status,
			DaysOut:      daysOut,
		})
	}

	c.JSON(http.StatusOK, overview)
}
