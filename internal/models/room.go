package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Room is the ephemeral invite-flow record. The code is what participants
// type or scan; it is distinct from a session's permanent id and is never
// referenced again once a session has been created from the room.
type Room struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRoom allocates a room with a uniform random 6-digit numeric code.
func NewRoom() (*Room, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return nil, err
	}
	return &Room{
		Code:      fmt.Sprintf("%06d", n.Int64()+100000),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Expired reports whether the room is past its invite-flow lifetime.
func (r *Room) Expired(ttl time.Duration) bool {
	return time.Since(r.CreatedAt) > ttl
}
