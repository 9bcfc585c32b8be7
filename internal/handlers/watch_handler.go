package handlers

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wantosing/backend/internal/store"
)

// keepaliveInterval bounds how long a proxy sees no bytes on the wire.
const keepaliveInterval = 25 * time.Second

type WatchHandler struct {
	store *store.Store
}

func NewWatchHandler(s *store.Store) *WatchHandler {
	return &WatchHandler{store: s}
}

type changeEvent struct {
	Key     string          `json:"key"`
	Value   json.RawMessage `json:"value,omitempty"`
	Deleted bool            `json:"deleted,omitempty"`
}

// Watch streams storage change events over SSE. An optional ?prefix=
// query narrows the stream to keys sharing that prefix; without it every
// committed write is delivered. Events from this process and from peers
// via the Redis bridge arrive on the same stream.
func (h *WatchHandler) Watch(c *gin.Context) {
	prefix := c.Query("prefix")

	// Buffered so a slow client drops events instead of blocking writers
	events := make(chan store.Event, 64)
	unsubscribe := h.store.Subscribe("", func(ev store.Event) {
		if !strings.HasPrefix(ev.Key, prefix) {
			return
		}
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-keepalive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case ev := <-events:
			payload := changeEvent{Key: ev.Key}
			if ev.Value == nil {
				payload.Deleted = true
			} else {
				payload.Value = json.RawMessage(ev.Value)
			}
			c.SSEvent("change", payload)
			return true
		}
	})
}
