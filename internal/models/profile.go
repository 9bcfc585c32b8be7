package models

// Connected service identifiers. The stored value is an open string so
// profiles written by older clients keep their tag, but handling code
// normalizes through NormalizeService and treats anything else as unknown.
const (
	ServiceSpotify    = "spotify"
	ServiceYouTube    = "youtube"
	ServiceAppleMusic = "appleMusic"
	ServiceLocal      = "local"
	ServiceUnknown    = "unknown"
)

// NormalizeService maps a free-form source/service tag onto the closed set
// used for icon selection and URL validation.
func NormalizeService(s string) string {
	switch s {
	case ServiceSpotify:
		return ServiceSpotify
	case ServiceYouTube, "ytmusic":
		return ServiceYouTube
	case ServiceAppleMusic, "apple":
		return ServiceAppleMusic
	case ServiceLocal:
		return ServiceLocal
	default:
		return ServiceUnknown
	}
}

// Profile is a participant's identity on one device. Every field is
// optional; absence means unknown, never an error.
type Profile struct {
	Name              string  `json:"name,omitempty"`
	IntegrationUserID string  `json:"integrationUserId,omitempty"`
	ConnectedService  string  `json:"connectedService,omitempty"`
	ImageURL          *string `json:"imageUrl,omitempty"`
	Country           *string `json:"country,omitempty"`
	Email             *string `json:"email,omitempty"`
}

// DisplayName returns the profile name or a guest placeholder.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return "Guest"
}

// Disconnect drops the platform link but keeps the rest of the identity.
func (p *Profile) Disconnect() {
	p.ConnectedService = ""
	p.IntegrationUserID = ""
}
