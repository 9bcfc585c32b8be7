package models

// Storage key layout. All state lives as JSON strings under these keys in
// one flat namespace; exports and imports carry the same shapes.
const (
	SessionsKey           = "wantosing:sessions"
	ProfileKeyPrefix      = "wantosing:profile:"
	ParticipantsKeyPrefix = "wantosing:participants:"
	RoomKeyPrefix         = "wantosing:room:"
)

// ProfileKey returns the key holding a device's single Profile record.
func ProfileKey(deviceID string) string {
	return ProfileKeyPrefix + deviceID
}

// ParticipantsKey returns the key holding a room's joined profiles.
func ParticipantsKey(roomCode string) string {
	return ParticipantsKeyPrefix + roomCode
}

// RoomKey returns the key holding a room's invite-flow record.
func RoomKey(roomCode string) string {
	return RoomKeyPrefix + roomCode
}
