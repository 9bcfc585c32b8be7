package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/pkg/jwt"
)

type DeviceHandler struct {
	cfg *config.Config
}

func NewDeviceHandler(cfg *config.Config) *DeviceHandler {
	return &DeviceHandler{cfg: cfg}
}

// Register issues a device token. The client sends its existing device id
// to keep it across token renewals, or nothing to be assigned a new one.
func (h *DeviceHandler) Register(c *gin.Context) {
	var req struct {
		DeviceID string `json:"deviceId"`
	}
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = uuid.New().String()
	} else if _, err := uuid.Parse(deviceID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deviceId must be a UUID"})
		return
	}

	token, err := jwt.GenerateDeviceToken(deviceID, h.cfg.JWTSecret, h.cfg.DeviceTokenDuration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deviceId":  deviceID,
		"token":     token,
		"expiresIn": int(h.cfg.DeviceTokenDuration.Seconds()),
	})
}
