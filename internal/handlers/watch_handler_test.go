package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/store"
)

func TestWatchStreamsChanges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	st := store.New(store.NewMemoryBackend())
	router := gin.New()
	router.GET("/api/v1/watch", NewWatchHandler(st).Watch)

	srv := httptest.NewServer(router)
	defer srv.Close()

	// Keep writing until the stream has delivered; the subscription only
	// exists once the handler is running, so a single write could race it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = st.Set(context.Background(), models.SessionsKey, []byte(`[]`))
				_ = st.Set(context.Background(), "other:key", []byte(`1`))
			}
		}
	}()

	resp, err := http.Get(srv.URL + "/api/v1/watch?prefix=wantosing:")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	timeout := time.AfterFunc(5*time.Second, func() { resp.Body.Close() })
	defer timeout.Stop()

	var event, data string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:") && event == "change":
			data = strings.TrimPrefix(line, "data:")
		}
		if data != "" {
			break
		}
	}

	require.NotEmpty(t, data, "no change frame arrived on the stream")
	assert.Contains(t, data, `"key":"`+models.SessionsKey+`"`)
	// The prefix filter keeps foreign keys off the stream
	assert.NotContains(t, data, "other:key")
}
