package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wantosing/backend/internal/middleware"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile returns the device's stored profile, or null when none exists.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Device not identified"})
		return
	}

	profile := h.profileService.Get(c.Request.Context(), deviceID)
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// PutProfile replaces the stored profile wholesale.
func (h *ProfileHandler) PutProfile(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Device not identified"})
		return
	}

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if profile.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required", "field": "name"})
		return
	}
	if profile.ConnectedService != "" {
		profile.ConnectedService = models.NormalizeService(profile.ConnectedService)
	}

	if err := h.profileService.Set(c.Request.Context(), deviceID, &profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DeleteProfile removes the stored profile entirely.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Device not identified"})
		return
	}

	if err := h.profileService.Clear(c.Request.Context(), deviceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile cleared"})
}

// Disconnect unlinks the connected streaming service but keeps the profile.
func (h *ProfileHandler) Disconnect(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Device not identified"})
		return
	}

	profile, err := h.profileService.Disconnect(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ApplySample loads one of the fixture accounts into the profile slot.
func (h *ProfileHandler) ApplySample(c *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Device not identified"})
		return
	}

	var req struct {
		Kind string `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind is required", "field": "kind"})
		return
	}

	profile, err := h.profileService.ApplySample(c.Request.Context(), deviceID, req.Kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
