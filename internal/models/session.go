package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Display fallbacks when neither defaults nor tracks carry a value.
	DefaultSongName   = "Untitled"
	DefaultArtistName = "Unknown"
)

// TrackData is one platform's metadata for a piece of music. Only
// ExternalID, Name and ArtistNames are required.
type TrackData struct {
	ExternalID  string   `json:"externalId"`
	PreviewURL  *string  `json:"previewUrl,omitempty"`
	Name        string   `json:"name"`
	ArtistNames []string `json:"artistNames"`
	AlbumName   *string  `json:"albumName,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	ISRC        *string  `json:"isrc,omitempty"`
	Duration    *int64   `json:"duration,omitempty"` // milliseconds
	URL         *string  `json:"url,omitempty"`
}

// TrackEntry tags TrackData with the platform it came from.
type TrackEntry struct {
	Source string    `json:"source"`         // "spotify" | "youtube" | "appleMusic" | ...
	Type   string    `json:"type,omitempty"` // "track" | "album" | "playlist"
	Data   TrackData `json:"data"`
}

// Song is one playlist entry, resolvable to tracks on multiple platforms.
// The defaultX fields are denormalized display fallbacks for when tracks
// are missing or incomplete.
type Song struct {
	ID                string       `json:"id"`
	DefaultName       string       `json:"defaultName,omitempty"`
	DefaultArtistName string       `json:"defaultArtistName,omitempty"`
	DefaultThumbnail  string       `json:"defaultThumbnail,omitempty"`
	DefaultDuration   int64        `json:"defaultDuration,omitempty"` // milliseconds
	ISRC              *string      `json:"isrc,omitempty"`
	Tracks            []TrackEntry `json:"tracks"`
}

// primary returns the first track's data, if any.
func (s *Song) primary() *TrackData {
	if len(s.Tracks) == 0 {
		return nil
	}
	return &s.Tracks[0].Data
}

// DisplayName resolves the title: defaultName, else first track, else "Untitled".
func (s *Song) DisplayName() string {
	if s.DefaultName != "" {
		return s.DefaultName
	}
	if p := s.primary(); p != nil && p.Name != "" {
		return p.Name
	}
	return DefaultSongName
}

// DisplayArtist resolves the artist: defaultArtistName, else the first
// track's first artist, else "Unknown".
func (s *Song) DisplayArtist() string {
	if s.DefaultArtistName != "" {
		return s.DefaultArtistName
	}
	if p := s.primary(); p != nil && len(p.ArtistNames) > 0 && p.ArtistNames[0] != "" {
		return p.ArtistNames[0]
	}
	return DefaultArtistName
}

// DisplayThumbnail resolves the artwork URL, empty when nothing is known.
func (s *Song) DisplayThumbnail() string {
	if s.DefaultThumbnail != "" {
		return s.DefaultThumbnail
	}
	if p := s.primary(); p != nil && p.ImageURL != nil {
		return *p.ImageURL
	}
	return ""
}

// DisplayDuration resolves the duration in milliseconds: defaultDuration,
// else the first track's duration, else 0.
func (s *Song) DisplayDuration() int64 {
	if s.DefaultDuration > 0 {
		return s.DefaultDuration
	}
	if p := s.primary(); p != nil && p.Duration != nil {
		return *p.Duration
	}
	return 0
}

// playbackDuration prefers the primary track's duration over the
// denormalized default; used when summing a session's running time.
func (s *Song) playbackDuration() int64 {
	if p := s.primary(); p != nil && p.Duration != nil && *p.Duration > 0 {
		return *p.Duration
	}
	return s.DefaultDuration
}

// Session is the root aggregate: a named gathering with a snapshot of
// people and a shared playlist. ID is immutable once created.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt,omitempty"` // ISO-8601
	People    []Profile `json:"people,omitempty"`
	Songs     []Song    `json:"songs,omitempty"`
}

// NewSession builds an empty session with a collision-resistant id and a
// current UTC timestamp. An empty name gets a short-id placeholder.
func NewSession(name string) *Session {
	id := uuid.New().String()
	if name == "" {
		name = "Session " + id[:8]
	}
	return &Session{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		People:    []Profile{},
		Songs:     []Song{},
	}
}

// Merge overlays the patch's populated fields onto the session. The id is
// never changed; nil slices in the patch preserve the existing ones.
func (s *Session) Merge(patch *Session) {
	if patch.Name != "" {
		s.Name = patch.Name
	}
	if patch.CreatedAt != "" {
		s.CreatedAt = patch.CreatedAt
	}
	if patch.People != nil {
		s.People = patch.People
	}
	if patch.Songs != nil {
		s.Songs = patch.Songs
	}
}

// TotalDuration sums every song's resolved duration in milliseconds.
func (s *Session) TotalDuration() int64 {
	var total int64
	for i := range s.Songs {
		total += s.Songs[i].playbackDuration()
	}
	return total
}
