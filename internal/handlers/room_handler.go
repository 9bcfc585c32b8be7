package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/services"
)

type RoomHandler struct {
	roomService *services.RoomService
	qrService   *services.QRService
	cfg         *config.Config
}

func NewRoomHandler(roomService *services.RoomService, qrService *services.QRService, cfg *config.Config) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		qrService:   qrService,
		cfg:         cfg,
	}
}

// CreateRoom opens a new room with a fresh 6-digit code.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	room, err := h.roomService.Create(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"room":      room,
		"inviteUrl": h.roomService.InviteURL(room.Code),
	})
}

// GetRoom returns the room by code.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":      room,
		"inviteUrl": h.roomService.InviteURL(room.Code),
	})
}

// JoinRoom normalizes the submitted code and resolves the room.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required", "field": "code"})
		return
	}

	room, err := h.roomService.Join(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// ListParticipants returns everyone who joined the room, in join order.
func (h *RoomHandler) ListParticipants(c *gin.Context) {
	// The room itself must exist; an empty list is a valid answer
	if _, err := h.roomService.Get(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	participants := h.roomService.Participants(c.Request.Context(), c.Param("code"))
	c.JSON(http.StatusOK, gin.H{"participants": participants, "count": len(participants)})
}

// AddParticipant registers a joiner in the room's participant list.
func (h *RoomHandler) AddParticipant(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.roomService.AddParticipant(c.Request.Context(), c.Param("code"), profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"participant": participant})
}

// AddSampleParticipant adds one of the fixture identities to the room.
func (h *RoomHandler) AddSampleParticipant(c *gin.Context) {
	if !h.cfg.SampleDataEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	_ = c.ShouldBindJSON(&req)

	participant, err := h.roomService.AddSampleParticipant(c.Request.Context(), c.Param("code"), req.Kind, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"participant": participant})
}

// RemoveParticipant drops the participant at the given position.
func (h *RoomHandler) RemoveParticipant(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be a number", "field": "index"})
		return
	}

	if err := h.roomService.RemoveParticipant(c.Request.Context(), c.Param("code"), index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant removed"})
}

// CreateSessionFromRoom snapshots the room's participants into a new
// session. The room keeps living; the session does not track it afterwards.
func (h *RoomHandler) CreateSessionFromRoom(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	_ = c.ShouldBindJSON(&req)

	session, err := h.roomService.CreateSession(c.Request.Context(), c.Param("code"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// RoomQRCode renders the invite link as a QR PNG.
func (h *RoomHandler) RoomQRCode(c *gin.Context) {
	room, err := h.roomService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	png, err := h.qrService.GenerateRoomQRPNG(room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// RoomInvitePDF renders a printable invite sheet with the code and QR.
func (h *RoomHandler) RoomInvitePDF(c *gin.Context) {
	room, err := h.roomService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := h.qrService.GenerateInviteQRPDF(room)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invite PDF"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("wantosing-invite-%s.pdf", room.Code)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
