package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomCode(t *testing.T) {
	codeShape := regexp.MustCompile(`^[1-9][0-9]{5}$`)
	for i := 0; i < 200; i++ {
		room, err := NewRoom()
		require.NoError(t, err)
		assert.Regexp(t, codeShape, room.Code)
	}
}

func TestRoomExpired(t *testing.T) {
	room := &Room{Code: "123456", CreatedAt: time.Now().UTC().Add(-2 * time.Hour)}
	assert.True(t, room.Expired(time.Hour))
	assert.False(t, room.Expired(24*time.Hour))
}
