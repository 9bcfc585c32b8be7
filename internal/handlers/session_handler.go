package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/services"
)

// Imported files are tiny session exports; anything bigger is rejected
// before parsing.
const maxImportBytes = 1 << 20

type SessionHandler struct {
	sessionService *services.SessionService
	cfg            *config.Config
}

func NewSessionHandler(sessionService *services.SessionService, cfg *config.Config) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, cfg: cfg}
}

// ListSessions returns every session, newest first.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// CreateSession creates a fresh session, optionally named.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	// Body is optional; a blank name gets a generated one
	_ = c.ShouldBindJSON(&req)

	session, err := h.sessionService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns one session by id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":       session,
		"totalDuration": session.TotalDuration(),
	})
}

// UpdateSession merges the request body into the stored session. Fields
// present in the body overwrite; everything else is preserved.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var patch models.Session
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch.ID = c.Param("id")

	session, err := h.sessionService.Update(c.Request.Context(), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// DeleteSession removes the session. Deleting an unknown id succeeds.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessionService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// AddSong validates the add-song form and appends the song to the playlist.
func (h *SessionHandler) AddSong(c *gin.Context) {
	var form services.SongForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.sessionService.AddSong(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"song": song})
}

// QuickAddSample appends one of the fixture songs to the playlist.
func (h *SessionHandler) QuickAddSample(c *gin.Context) {
	if !h.cfg.SampleDataEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index is required", "field": "index"})
		return
	}

	song, err := h.sessionService.QuickAddSample(c.Request.Context(), c.Param("id"), req.Index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"song": song})
}

// ExportSession streams the session as a downloadable JSON file.
func (h *SessionHandler) ExportSession(c *gin.Context) {
	payload, filename, err := h.sessionService.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

// ImportSession validates an exported payload and stores it under a fresh id.
func (h *SessionHandler) ImportSession(c *gin.Context) {
	blob, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	if len(blob) > maxImportBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Import file too large"})
		return
	}

	session, err := h.sessionService.Import(c.Request.Context(), blob)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}
