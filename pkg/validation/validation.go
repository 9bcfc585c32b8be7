package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// JoinCodeLength is the size of the room codes participants type in.
const JoinCodeLength = 6

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)

// IsValidURL reports whether value parses as an absolute http(s) URL.
func IsValidURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidatePlatformLink checks that rawURL is well-formed and plausibly
// belongs to the named platform by host substring matching.
func ValidatePlatformLink(platform, rawURL string) bool {
	if !IsValidURL(rawURL) {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	switch platform {
	case "spotify":
		return strings.Contains(host, "spotify")
	case "ytmusic", "youtube":
		return strings.Contains(host, "youtube") || strings.Contains(host, "youtu.be") || strings.Contains(host, "music.youtube")
	case "apple", "appleMusic":
		return strings.Contains(host, "apple") || strings.Contains(host, "music.apple")
	default:
		return false
	}
}

// NormalizeJoinCode uppercases the entered code, strips everything outside
// A-Z0-9, and requires exactly six remaining characters. The error text is
// shown to the user as-is.
func NormalizeJoinCode(input string) (string, error) {
	code := nonAlphanumeric.ReplaceAllString(strings.ToUpper(strings.TrimSpace(input)), "")
	if len(code) != JoinCodeLength {
		return "", fmt.Errorf("please enter a %d-character code (letters or numbers)", JoinCodeLength)
	}
	return code, nil
}

// SanitizeString removes potentially harmful characters
func SanitizeString(input string) string {
	// Basic sanitization
	input = strings.TrimSpace(input)
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
