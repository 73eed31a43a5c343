// controllers/tenant.go
package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"citaflow-backend/config"
	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTenantInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

type UpdateTenantInput struct {
	Name                  *string `json:"name"`
	Description           *string `json:"description"`
	Address               *string `json:"address"`
	Phone                 *string `json:"phone"`
	WhatsAppNotifications *bool   `json:"whatsappNotifications"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CreateTenant creates a new business for the authenticated owner
func CreateTenant(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !slugRegex.MatchString(slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug must contain only lowercase letters, digits and hyphens")
		return
	}

	var existing models.Tenant
	if err := config.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Slug already in use")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	tenant := models.Tenant{
		OwnerUserID:           userID,
		Name:                  input.Name,
		Slug:                  slug,
		Description:           input.Description,
		Address:               input.Address,
		Phone:                 input.Phone,
		WhatsAppNotifications: true,
	}

	if err := config.DB.Create(&tenant).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tenant")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenants lists the tenants owned by the authenticated user
func GetTenants(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var tenants []models.Tenant
	if err := config.DB.Where("owner_user_id = ?", userID).Find(&tenants).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tenants")
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenant retrieves one owned tenant
func GetTenant(c *gin.Context) {
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

	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant updates an owned tenant's profile
func UpdateTenant(c *gin.Context) {
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

	var input UpdateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if input.Description != nil {
		tenant.Description = *input.Description
	}
	if input.Address != nil {
		tenant.Address = *input.Address
	}
	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}
	if input.WhatsAppNotifications != nil {
		tenant.WhatsAppNotifications = *input.WhatsAppNotifications
	}

	if err := config.DB.Save(tenant).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update tenant")
		return
	}

	c.JSON(http.StatusOK, tenant)
}
