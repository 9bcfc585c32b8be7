package services

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wantosing/backend/internal/config"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/store"
)

func newRoomService() (*RoomService, *store.Store) {
	st := store.New(store.NewMemoryBackend())
	cfg := &config.Config{
		FrontendURL: "https://wantosing.app",
		RoomTTL:     24 * time.Hour,
	}
	sessions := NewSessionService(st)
	return NewRoomService(st, cfg, sessions), st
}

func TestRoomServiceCreateGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRoomService()

	room, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), room.Code)

	got, err := svc.Get(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.Code, got.Code)

	_, err = svc.Get(ctx, "000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomServiceJoin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRoomService()

	room, err := svc.Create(ctx)
	require.NoError(t, err)

	t.Run("normalizes typed input", func(t *testing.T) {
		got, err := svc.Join(ctx, " "+room.Code[:3]+"-"+room.Code[3:]+" ")
		require.NoError(t, err)
		assert.Equal(t, room.Code, got.Code)
	})

	t.Run("short code is a validation error", func(t *testing.T) {
		_, err := svc.Join(ctx, "123")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "code", verr.Field)
	})

	t.Run("well-formed unknown code", func(t *testing.T) {
		_, err := svc.Join(ctx, "999999")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRoomServiceInviteURL(t *testing.T) {
	svc, _ := newRoomService()
	assert.Equal(t, "https://wantosing.app/session/new?room=123456", svc.InviteURL("123456"))
}

func TestRoomParticipants(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRoomService()

	room, err := svc.Create(ctx)
	require.NoError(t, err)

	t.Run("empty to start", func(t *testing.T) {
		assert.Empty(t, svc.Participants(ctx, room.Code))
	})

	t.Run("added in join order with synthetic ids", func(t *testing.T) {
		first, err := svc.AddParticipant(ctx, room.Code, models.Profile{Name: "Alice", IntegrationUserID: "spotify-alice"})
		require.NoError(t, err)
		second, err := svc.AddParticipant(ctx, room.Code, models.Profile{Name: "Bob"})
		require.NoError(t, err)

		assert.Regexp(t, `^spotify-alice-\d+-\d+$`, first.IntegrationUserID)
		assert.Regexp(t, `^dev-\d+-\d+$`, second.IntegrationUserID)
		assert.NotEqual(t, first.IntegrationUserID, second.IntegrationUserID)

		participants := svc.Participants(ctx, room.Code)
		require.Len(t, participants, 2)
		assert.Equal(t, "Alice", participants[0].Name)
		assert.Equal(t, "Bob", participants[1].Name)
	})

	t.Run("unknown room rejects joins", func(t *testing.T) {
		_, err := svc.AddParticipant(ctx, "000000", models.Profile{Name: "Ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("remove by index", func(t *testing.T) {
		require.NoError(t, svc.RemoveParticipant(ctx, room.Code, 0))
		participants := svc.Participants(ctx, room.Code)
		require.Len(t, participants, 1)
		assert.Equal(t, "Bob", participants[0].Name)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		require.NoError(t, svc.RemoveParticipant(ctx, room.Code, 99))
		require.NoError(t, svc.RemoveParticipant(ctx, room.Code, -1))
		assert.Len(t, svc.Participants(ctx, room.Code), 1)
	})
}

func TestAddSampleParticipant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRoomService()

	room, err := svc.Create(ctx)
	require.NoError(t, err)

	t.Run("fixture kinds", func(t *testing.T) {
		p, err := svc.AddSampleParticipant(ctx, room.Code, models.ServiceSpotify, "")
		require.NoError(t, err)
		assert.Equal(t, "NaphatS", p.Name)

		p, err = svc.AddSampleParticipant(ctx, room.Code, models.ServiceYouTube, "")
		require.NoError(t, err)
		assert.Equal(t, models.ServiceYouTube, p.ConnectedService)
	})

	t.Run("named guest", func(t *testing.T) {
		p, err := svc.AddSampleParticipant(ctx, room.Code, "guest", "Chai")
		require.NoError(t, err)
		assert.Equal(t, "Chai", p.Name)
	})

	t.Run("anonymous guest gets a number", func(t *testing.T) {
		p, err := svc.AddSampleParticipant(ctx, room.Code, "guest", "")
		require.NoError(t, err)
		assert.Regexp(t, `^Guest \d+$`, p.Name)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.AddSampleParticipant(ctx, room.Code, "fax", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "kind", verr.Field)
	})
}

func TestCreateSessionFromRoom(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRoomService()

	room, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, room.Code, models.Profile{Name: "Alice"})
	require.NoError(t, err)

	session, err := svc.CreateSession(ctx, room.Code, "Matched")
	require.NoError(t, err)
	require.Len(t, session.People, 1)
	assert.Equal(t, "Alice", session.People[0].Name)

	// Snapshot semantics: later joins don't appear in the session
	_, err = svc.AddParticipant(ctx, room.Code, models.Profile{Name: "Bob"})
	require.NoError(t, err)
	stored, err := svc.sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.People, 1)

	_, err = svc.CreateSession(ctx, "000000", "Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCleanupExpired(t *testing.T) {
	ctx := context.Background()
	svc, st := newRoomService()

	live, err := svc.Create(ctx)
	require.NoError(t, err)

	// Backdate a second room past the TTL
	stale := &models.Room{Code: "111111", CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, models.RoomKey(stale.Code), raw))
	require.NoError(t, st.Set(ctx, models.ParticipantsKey(stale.Code), []byte(`[{"name":"Old"}]`)))

	removed, err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = svc.Get(ctx, stale.Code)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, svc.Participants(ctx, stale.Code))

	_, err = svc.Get(ctx, live.Code)
	require.NoError(t, err)

	// Nothing left to sweep
	removed, err = svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
