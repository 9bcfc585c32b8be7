package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewSession(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		s := NewSession("Friday Night")
		assert.Equal(t, "Friday Night", s.Name)
		assert.NotEmpty(t, s.ID)
		assert.NotNil(t, s.People)
		assert.NotNil(t, s.Songs)

		created, err := time.Parse(time.RFC3339, s.CreatedAt)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), created, time.Minute)
	})

	t.Run("blank name gets placeholder", func(t *testing.T) {
		s := NewSession("")
		assert.Equal(t, "Session "+s.ID[:8], s.Name)
	})

	t.Run("ids never collide", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			s := NewSession("x")
			assert.False(t, seen[s.ID])
			seen[s.ID] = true
		}
	})
}

func TestSessionMerge(t *testing.T) {
	base := func() *Session {
		return &Session{
			ID:        "id-1",
			Name:      "Original",
			CreatedAt: "2026-01-01T00:00:00Z",
			People:    []Profile{{Name: "Alice"}},
			Songs:     []Song{{ID: "song-1"}},
		}
	}

	t.Run("populated fields overwrite", func(t *testing.T) {
		s := base()
		s.Merge(&Session{ID: "other-id", Name: "Renamed"})
		assert.Equal(t, "id-1", s.ID)
		assert.Equal(t, "Renamed", s.Name)
		assert.Equal(t, "2026-01-01T00:00:00Z", s.CreatedAt)
		assert.Len(t, s.People, 1)
	})

	t.Run("nil slices preserve existing", func(t *testing.T) {
		s := base()
		s.Merge(&Session{Name: "Renamed", People: nil, Songs: nil})
		assert.Len(t, s.People, 1)
		assert.Len(t, s.Songs, 1)
	})

	t.Run("empty slices replace existing", func(t *testing.T) {
		s := base()
		s.Merge(&Session{People: []Profile{}, Songs: []Song{}})
		assert.Empty(t, s.People)
		assert.Empty(t, s.Songs)
	})
}

func TestSongDisplayFallbacks(t *testing.T) {
	track := TrackEntry{
		Source: ServiceSpotify,
		Type:   "track",
		Data: TrackData{
			ExternalID:  "ext-1",
			Name:        "Track Title",
			ArtistNames: []string{"Track Artist"},
			ImageURL:    ptr("https://img.example/cover.jpg"),
			Duration:    ptr(int64(200000)),
		},
	}

	t.Run("defaults win", func(t *testing.T) {
		s := Song{
			DefaultName:       "Default Title",
			DefaultArtistName: "Default Artist",
			DefaultThumbnail:  "https://img.example/default.jpg",
			DefaultDuration:   100000,
			Tracks:            []TrackEntry{track},
		}
		assert.Equal(t, "Default Title", s.DisplayName())
		assert.Equal(t, "Default Artist", s.DisplayArtist())
		assert.Equal(t, "https://img.example/default.jpg", s.DisplayThumbnail())
		assert.Equal(t, int64(100000), s.DisplayDuration())
	})

	t.Run("first track fills missing defaults", func(t *testing.T) {
		s := Song{Tracks: []TrackEntry{track}}
		assert.Equal(t, "Track Title", s.DisplayName())
		assert.Equal(t, "Track Artist", s.DisplayArtist())
		assert.Equal(t, "https://img.example/cover.jpg", s.DisplayThumbnail())
		assert.Equal(t, int64(200000), s.DisplayDuration())
	})

	t.Run("placeholders when nothing is known", func(t *testing.T) {
		s := Song{}
		assert.Equal(t, DefaultSongName, s.DisplayName())
		assert.Equal(t, DefaultArtistName, s.DisplayArtist())
		assert.Empty(t, s.DisplayThumbnail())
		assert.Zero(t, s.DisplayDuration())
	})
}

func TestSessionTotalDuration(t *testing.T) {
	// Summing prefers track durations over the denormalized defaults
	s := Session{Songs: []Song{
		{
			DefaultDuration: 100000,
			Tracks:          []TrackEntry{{Data: TrackData{Duration: ptr(int64(250000))}}},
		},
		{DefaultDuration: 180000},
		{},
	}}
	assert.Equal(t, int64(430000), s.TotalDuration())
}

func TestNormalizeService(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"spotify", ServiceSpotify},
		{"youtube", ServiceYouTube},
		{"ytmusic", ServiceYouTube},
		{"appleMusic", ServiceAppleMusic},
		{"apple", ServiceAppleMusic},
		{"local", ServiceLocal},
		{"tidal", ServiceUnknown},
		{"Spotify", ServiceUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeService(tc.input))
		})
	}
}

func TestProfileDisconnect(t *testing.T) {
	p := Profile{
		Name:              "NaphatS",
		IntegrationUserID: "spotify-user-1",
		ConnectedService:  ServiceSpotify,
		Email:             ptr("n@example.com"),
	}
	p.Disconnect()
	assert.Empty(t, p.ConnectedService)
	assert.Empty(t, p.IntegrationUserID)
	assert.Equal(t, "NaphatS", p.Name)
	require.NotNil(t, p.Email)
}
