package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/wantosing/backend/internal/models"
	"github.com/wantosing/backend/internal/store"
)

// ProfileService owns the single Profile record each device carries.
// Reads never fail: malformed stored data is treated as "no profile".
type ProfileService struct {
	store *store.Store
}

func NewProfileService(s *store.Store) *ProfileService {
	return &ProfileService{store: s}
}

// Get returns the device's profile, or nil when none is stored.
func (s *ProfileService) Get(ctx context.Context, deviceID string) *models.Profile {
	raw, ok, err := s.store.Get(ctx, models.ProfileKey(deviceID))
	if err != nil || !ok {
		if err != nil {
			log.Printf("WARN: profile read failed for device %s: %v", deviceID, err)
		}
		return nil
	}
	var profile models.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		log.Printf("WARN: discarding malformed profile for device %s: %v", deviceID, err)
		return nil
	}
	return &profile
}

// Set replaces the stored profile wholesale. Observers of the profile key
// are notified synchronously after the write.
func (s *ProfileService) Set(ctx context.Context, deviceID string, profile *models.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, models.ProfileKey(deviceID), raw)
}

// Clear removes the stored profile; observers see a nil value.
func (s *ProfileService) Clear(ctx context.Context, deviceID string) error {
	return s.store.Delete(ctx, models.ProfileKey(deviceID))
}

// Disconnect unlinks the connected platform but keeps the rest of the
// profile. Without a stored profile it is a no-op.
func (s *ProfileService) Disconnect(ctx context.Context, deviceID string) (*models.Profile, error) {
	profile := s.Get(ctx, deviceID)
	if profile == nil {
		return nil, ErrNotFound
	}
	profile.Disconnect()
	if err := s.Set(ctx, deviceID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ApplySample overwrites the profile with one of the fixture accounts,
// mirroring the dev quick-switch buttons on the settings page.
func (s *ProfileService) ApplySample(ctx context.Context, deviceID, kind string) (*models.Profile, error) {
	sample, ok := SampleProfile(kind)
	if !ok {
		return nil, invalidField("kind", "unknown sample account %q", kind)
	}
	if err := s.Set(ctx, deviceID, &sample); err != nil {
		return nil, err
	}
	return &sample, nil
}
