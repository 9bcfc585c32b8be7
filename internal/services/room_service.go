package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/store"
	"github.com/wantosing/backend/pkg/validation"
)

// RoomService manages the ephemeral invite flow: 6-digit room codes and
// the per-room participant lists that get snapshotted into a session when
// the host matches the songs.
type RoomService struct {
	store    *store.Store
	cfg      *config.Config
	sessions *SessionService
	counter  atomic.Int64 // disambiguates participant ids added within one millisecond
}

func NewRoomService(s *store.Store, cfg *config.Config, sessions *SessionService) *RoomService {
	return &RoomService{store: s, cfg: cfg, sessions: sessions}
}

// Create allocates a room with a random 6-digit code and persists its
// invite-flow record.
func (s *RoomService) Create(ctx context.Context) (*models.Room, error) {
	room, err := models.NewRoom()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(room)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, models.RoomKey(room.Code), raw); err != nil {
		return nil, err
	}
	return room, nil
}

// Get returns the room for a code, or ErrNotFound when it never existed,
// was swept, or its stored record is unreadable.
func (s *RoomService) Get(ctx context.Context, code string) (*models.Room, error) {
	raw, ok, err := s.store.Get(ctx, models.RoomKey(code))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	var room models.Room
	if err := json.Unmarshal(raw, &room); err != nil {
		log.Printf("WARN: discarding malformed room record %s: %v", code, err)
		return nil, ErrNotFound
	}
	return &room, nil
}

// Join normalizes a typed code and resolves it to a room. Format errors
// come back as ValidationError so the message can be shown inline.
func (s *RoomService) Join(ctx context.Context, input string) (*models.Room, error) {
	code, err := validation.NormalizeJoinCode(input)
	if err != nil {
		return nil, &ValidationError{Field: "code", Message: err.Error()}
	}
	return s.Get(ctx, code)
}

// InviteURL builds the link embedded in the QR code and invite sheet.
func (s *RoomService) InviteURL(code string) string {
	return fmt.Sprintf("%s/session/new?room=%s", strings.TrimRight(s.cfg.FrontendURL, "/"), code)
}

// Participants lists the profiles that joined a room, in join order.
// Unknown rooms and malformed stored data both read as empty.
func (s *RoomService) Participants(ctx context.Context, code string) []models.Profile {
	raw, ok, err := s.store.Get(ctx, models.ParticipantsKey(code))
	if err != nil || !ok {
		if err != nil {
			log.Printf("WARN: participants read failed for room %s: %v", code, err)
		}
		return []models.Profile{}
	}
	var participants []models.Profile
	if err := json.Unmarshal(raw, &participants); err != nil {
		log.Printf("WARN: discarding malformed participants for room %s: %v", code, err)
		return []models.Profile{}
	}
	return participants
}

// AddParticipant appends a profile to the room's list. The stored profile
// gets a synthetic id combining its external id (if any) with a timestamp
// and counter so rapid additions never collide.
func (s *RoomService) AddParticipant(ctx context.Context, code string, profile models.Profile) (*models.Profile, error) {
	if _, err := s.Get(ctx, code); err != nil {
		return nil, err
	}
	profile.IntegrationUserID = s.participantID(profile.IntegrationUserID)
	err := s.store.Update(ctx, models.ParticipantsKey(code), func(old []byte) ([]byte, error) {
		var participants []models.Profile
		if len(old) > 0 {
			if err := json.Unmarshal(old, &participants); err != nil {
				participants = nil
			}
		}
		return json.Marshal(append(participants, profile))
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RoomService) participantID(externalID string) string {
	base := externalID
	if base == "" {
		base = "dev"
	}
	return fmt.Sprintf("%s-%d-%d", base, time.Now().UnixMilli(), s.counter.Add(1))
}

// AddSampleParticipant injects one of the fixture profiles (or an ad-hoc
// guest) into the room, mirroring the dev "add user" buttons.
func (s *RoomService) AddSampleParticipant(ctx context.Context, code, kind, guestName string) (*models.Profile, error) {
	var profile models.Profile
	switch kind {
	case models.ServiceSpotify, models.ServiceYouTube:
		profile, _ = SampleProfile(kind)
	case "guest":
		name := strings.TrimSpace(guestName)
		if name == "" {
			name = fmt.Sprintf("Guest %d", s.counter.Load()+1)
		}
		profile = models.Profile{Name: name}
	default:
		return nil, invalidField("kind", "unknown participant kind %q", kind)
	}
	return s.AddParticipant(ctx, code, profile)
}

// RemoveParticipant deletes the entry at the given position. An index out
// of range is a no-op, not an error.
func (s *RoomService) RemoveParticipant(ctx context.Context, code string, index int) error {
	return s.store.Update(ctx, models.ParticipantsKey(code), func(old []byte) ([]byte, error) {
		var participants []models.Profile
		if len(old) > 0 {
			if err := json.Unmarshal(old, &participants); err != nil {
				participants = nil
			}
		}
		if index < 0 || index >= len(participants) {
			return nil, nil
		}
		participants = append(participants[:index], participants[index+1:]...)
		return json.Marshal(participants)
	})
}

// CreateSession snapshots the room's participants into a new session's
// people. The room list is never referenced again afterwards; the copy is
// intentional one-time semantics, not a live link.
func (s *RoomService) CreateSession(ctx context.Context, code, name string) (*models.Session, error) {
	if _, err := s.Get(ctx, code); err != nil {
		return nil, err
	}
	people := s.Participants(ctx, code)
	return s.sessions.CreateWithPeople(ctx, name, people)
}

// CleanupExpired sweeps rooms past their TTL, removing both the room
// record and its participant list. Returns how many rooms were removed.
func (s *RoomService) CleanupExpired(ctx context.Context) (int, error) {
	keys, err := s.store.Keys(ctx, models.RoomKeyPrefix)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, key := range keys {
		raw, ok, err := s.store.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		var room models.Room
		if err := json.Unmarshal(raw, &room); err != nil || room.Expired(s.cfg.RoomTTL) {
			code := strings.TrimPrefix(key, models.RoomKeyPrefix)
			if err := s.store.Delete(ctx, key); err != nil {
				continue
			}
			_ = s.store.Delete(ctx, models.ParticipantsKey(code))
			removed++
		}
	}
	return removed, nil
}
