package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/store"
	"github.com/wantosing/backend/pkg/validation"
)

// SessionService owns the sessions collection: one JSON array under one
// key, newest first. Every mutation is a read-modify-write of the whole
// array through the store's per-key lock.
type SessionService struct {
	store *store.Store
}

func NewSessionService(s *store.Store) *SessionService {
	return &SessionService{store: s}
}

// decodeAll parses the stored array, treating absence or malformed data
// as an empty collection.
func decodeAll(raw []byte) []models.Session {
	if len(raw) == 0 {
		return []models.Session{}
	}
	var sessions []models.Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		log.Printf("WARN: discarding malformed sessions collection: %v", err)
		return []models.Session{}
	}
	return sessions
}

// List returns all sessions, newest first by construction: new entries
// are prepended on create and the order is never re-sorted.
func (s *SessionService) List(ctx context.Context) ([]models.Session, error) {
	raw, _, err := s.store.Get(ctx, models.SessionsKey)
	if err != nil {
		return nil, err
	}
	return decodeAll(raw), nil
}

// Get returns the session with the given id, or ErrNotFound. Absence is a
// normal outcome, not a failure.
func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create stores a fresh empty session at the head of the collection.
func (s *SessionService) Create(ctx context.Context, name string) (*models.Session, error) {
	return s.CreateWithPeople(ctx, name, nil)
}

// CreateWithPeople stores a fresh session carrying a snapshot of people,
// used when a room's participants are matched into a session. The copy is
// one-time: the room's list is never consulted again afterwards.
func (s *SessionService) CreateWithPeople(ctx context.Context, name string, people []models.Profile) (*models.Session, error) {
	session := models.NewSession(name)
	if people != nil {
		session.People = people
	}
	err := s.store.Update(ctx, models.SessionsKey, func(old []byte) ([]byte, error) {
		sessions := append([]models.Session{*session}, decodeAll(old)...)
		return json.Marshal(sessions)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Update merges the patch into the record sharing its id: fields present
// in the patch overwrite, everything else is preserved. An unknown id is
// inserted as a new record. Returns the merged session.
func (s *SessionService) Update(ctx context.Context, patch *models.Session) (*models.Session, error) {
	if patch.ID == "" {
		return nil, invalidField("id", "session id is required")
	}
	var merged models.Session
	err := s.store.Update(ctx, models.SessionsKey, func(old []byte) ([]byte, error) {
		sessions := decodeAll(old)
		found := false
		for i := range sessions {
			if sessions[i].ID == patch.ID {
				sessions[i].Merge(patch)
				merged = sessions[i]
				found = true
				break
			}
		}
		if !found {
			merged = *patch
			sessions = append([]models.Session{merged}, sessions...)
		}
		return json.Marshal(sessions)
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// Remove deletes the session with the given id. A missing id leaves the
// collection unchanged.
func (s *SessionService) Remove(ctx context.Context, id string) error {
	return s.store.Update(ctx, models.SessionsKey, func(old []byte) ([]byte, error) {
		sessions := decodeAll(old)
		filtered := make([]models.Session, 0, len(sessions))
		for i := range sessions {
			if sessions[i].ID != id {
				filtered = append(filtered, sessions[i])
			}
		}
		return json.Marshal(filtered)
	})
}

// Export serializes the full session to the downloadable artifact format:
// pretty-printed JSON in the same shape as storage. Returns the payload
// and the suggested file name.
func (s *SessionService) Export(ctx context.Context, id string) ([]byte, string, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return payload, fmt.Sprintf("wantosing-session-%s.json", session.ID), nil
}

// Import validates an exported payload and stores it as a new session.
// The imported id is never reused; a fresh one is assigned to avoid
// collisions. Any shape violation aborts before mutation and names the
// field that failed.
func (s *SessionService) Import(ctx context.Context, blob []byte) (*models.Session, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, invalidField("file", "invalid file or JSON")
	}

	var name string
	if msg, ok := raw["name"]; !ok || json.Unmarshal(msg, &name) != nil || name == "" {
		return nil, invalidField("name", "missing required field `name`")
	}

	session := models.NewSession(name)
	if msg, ok := raw["createdAt"]; ok {
		var createdAt string
		if json.Unmarshal(msg, &createdAt) == nil && createdAt != "" {
			session.CreatedAt = createdAt
		}
	}

	if msg, ok := raw["people"]; ok {
		people, err := validatePeople(msg)
		if err != nil {
			return nil, err
		}
		session.People = people
	}
	if msg, ok := raw["songs"]; ok {
		songs, err := validateSongs(msg)
		if err != nil {
			return nil, err
		}
		session.Songs = songs
	}

	err := s.store.Update(ctx, models.SessionsKey, func(old []byte) ([]byte, error) {
		sessions := append([]models.Session{*session}, decodeAll(old)...)
		return json.Marshal(sessions)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func validatePeople(msg json.RawMessage) ([]models.Profile, error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(msg, &entries); err != nil {
		return nil, invalidField("people", "must be an array of { name: string }")
	}
	for i, entry := range entries {
		var name string
		if nameMsg, ok := entry["name"]; !ok || json.Unmarshal(nameMsg, &name) != nil {
			return nil, invalidField(fmt.Sprintf("people[%d].name", i), "must be a string")
		}
	}
	var people []models.Profile
	if err := json.Unmarshal(msg, &people); err != nil {
		return nil, invalidField("people", "must be an array of { name: string }")
	}
	return people, nil
}

func validateSongs(msg json.RawMessage) ([]models.Song, error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(msg, &entries); err != nil {
		return nil, invalidField("songs", "must be an array of songs")
	}
	for i, entry := range entries {
		var id string
		if idMsg, ok := entry["id"]; !ok || json.Unmarshal(idMsg, &id) != nil || id == "" {
			return nil, invalidField(fmt.Sprintf("songs[%d].id", i), "must be a non-empty string")
		}
		tracksMsg, ok := entry["tracks"]
		if !ok {
			return nil, invalidField(fmt.Sprintf("songs[%d].tracks", i), "must be an array")
		}
		var tracks []map[string]json.RawMessage
		if err := json.Unmarshal(tracksMsg, &tracks); err != nil {
			return nil, invalidField(fmt.Sprintf("songs[%d].tracks", i), "must be an array")
		}
		for j, track := range tracks {
			field := fmt.Sprintf("songs[%d].tracks[%d]", i, j)
			var source string
			if srcMsg, ok := track["source"]; !ok || json.Unmarshal(srcMsg, &source) != nil || source == "" {
				return nil, invalidField(field+".source", "must be a non-empty string")
			}
			dataMsg, ok := track["data"]
			if !ok {
				return nil, invalidField(field+".data", "is required")
			}
			if err := validateTrackData(field+".data", dataMsg); err != nil {
				return nil, err
			}
		}
	}
	var songs []models.Song
	if err := json.Unmarshal(msg, &songs); err != nil {
		return nil, invalidField("songs", "structure is invalid")
	}
	return songs, nil
}

func validateTrackData(field string, msg json.RawMessage) error {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(msg, &data); err != nil {
		return invalidField(field, "must be an object")
	}
	var str string
	if m, ok := data["externalId"]; !ok || json.Unmarshal(m, &str) != nil || str == "" {
		return invalidField(field+".externalId", "must be a non-empty string")
	}
	if m, ok := data["name"]; !ok || json.Unmarshal(m, &str) != nil || str == "" {
		return invalidField(field+".name", "must be a non-empty string")
	}
	var artists []string
	if m, ok := data["artistNames"]; !ok || json.Unmarshal(m, &artists) != nil {
		return invalidField(field+".artistNames", "must be an array of strings")
	}
	return nil
}

// SongForm is the raw add-song submission. Duration is entered in seconds
// and converted to milliseconds exactly once, here at the form boundary.
type SongForm struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Duration  string `json:"duration"` // seconds, free text
	Thumbnail string `json:"thumbnail"`
	Spotify   string `json:"spotify"`
	YTMusic   string `json:"ytmusic"`
	Apple     string `json:"apple"`
}

const defaultDurationSeconds = 180

// durationMillis applies the seconds-to-milliseconds boundary conversion,
// falling back to three minutes when the field is blank or unparseable.
func (f *SongForm) durationMillis() int64 {
	seconds, err := strconv.Atoi(strings.TrimSpace(f.Duration))
	if err != nil || seconds == 0 {
		seconds = defaultDurationSeconds
	}
	if seconds < 0 {
		seconds = 0
	}
	return int64(seconds) * 1000
}

// platformLinks pairs each form URL field with its track source tag.
func (f *SongForm) platformLinks() []struct{ field, source, url, label string } {
	return []struct{ field, source, url, label string }{
		{"spotify", models.ServiceSpotify, strings.TrimSpace(f.Spotify), "Spotify"},
		{"ytmusic", models.ServiceYouTube, strings.TrimSpace(f.YTMusic), "YouTube Music"},
		{"apple", models.ServiceAppleMusic, strings.TrimSpace(f.Apple), "Apple Music"},
	}
}

// AddSong builds a song from the form and appends it to the session's
// playlist. Each supplied platform URL must be well-formed and match its
// platform's hosts; a bad link rejects the whole add without mutating the
// session. With no links at all, a single synthetic "local" track keeps
// the invariant that every song has at least one entry.
func (s *SessionService) AddSong(ctx context.Context, sessionID string, form SongForm) (*models.Song, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		title = "New Song"
	}
	artist := strings.TrimSpace(form.Artist)
	if artist == "" {
		artist = models.DefaultArtistName
	}
	duration := form.durationMillis()
	thumbnail := strings.TrimSpace(form.Thumbnail)

	var tracks []models.TrackEntry
	for _, link := range form.platformLinks() {
		if link.url == "" {
			continue
		}
		if !validation.ValidatePlatformLink(link.field, link.url) {
			return nil, invalidField(link.field, "invalid %s URL", link.label)
		}
		tracks = append(tracks, newFormTrack(link.source, link.url, title, artist, thumbnail, duration))
	}
	if len(tracks) == 0 {
		local := newFormTrack(models.ServiceLocal, "", title, artist, thumbnail, duration)
		local.Data.ExternalID = strconv.FormatInt(time.Now().UnixMilli(), 10)
		tracks = append(tracks, local)
	}

	song := models.Song{
		ID:                uuid.New().String(),
		Tracks:            tracks,
		DefaultName:       title,
		DefaultArtistName: artist,
		DefaultThumbnail:  thumbnail,
		DefaultDuration:   duration,
	}
	if err := s.appendSong(ctx, sessionID, song); err != nil {
		return nil, err
	}
	return &song, nil
}

func newFormTrack(source, url, title, artist, thumbnail string, duration int64) models.TrackEntry {
	data := models.TrackData{
		ExternalID:  url,
		Name:        title,
		ArtistNames: []string{artist},
		Duration:    &duration,
	}
	if thumbnail != "" {
		data.ImageURL = &thumbnail
	}
	if url != "" {
		data.URL = &url
	}
	return models.TrackEntry{Source: source, Type: "track", Data: data}
}

// QuickAddSample copies a fixture song's track list verbatim into a new
// song with a fresh id and appends it.
func (s *SessionService) QuickAddSample(ctx context.Context, sessionID string, index int) (*models.Song, error) {
	if index < 0 || index >= len(SampleSongs) {
		return nil, invalidField("index", "no sample song at index %d", index)
	}
	sample := SampleSongs[index]
	primary := sample.Tracks[0].Data

	song := models.Song{
		ID:                uuid.New().String(),
		Tracks:            append([]models.TrackEntry(nil), sample.Tracks...),
		DefaultName:       primary.Name,
		DefaultArtistName: primary.ArtistNames[0],
	}
	if primary.ImageURL != nil {
		song.DefaultThumbnail = *primary.ImageURL
	}
	if primary.Duration != nil {
		song.DefaultDuration = *primary.Duration
	}
	if err := s.appendSong(ctx, sessionID, song); err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *SessionService) appendSong(ctx context.Context, sessionID string, song models.Song) error {
	found := false
	err := s.store.Update(ctx, models.SessionsKey, func(old []byte) ([]byte, error) {
		sessions := decodeAll(old)
		for i := range sessions {
			if sessions[i].ID == sessionID {
				sessions[i].Songs = append(sessions[i].Songs, song)
				found = true
				break
			}
		}
		if !found {
			// Leave storage untouched; the caller reports not found.
			return nil, nil
		}
		return json.Marshal(sessions)
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
