// ABOUTME: Platform enumeration for the supported social video platforms
// ABOUTME: Shared vocabulary used by the resolver, fetcher and extractors

package domain

// Platform identifies a supported social platform.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
)

// ParsePlatform converts a user-supplied platform name to a Platform.
// Returns false for unknown names. "x" is accepted as an alias for twitter.
func ParsePlatform(name string) (Platform, bool) {
	switch name {
	case "youtube":
		return PlatformYouTube, true
	case "facebook":
		return PlatformFacebook, true
	case "instagram":
		return PlatformInstagram, true
	case "twitter", "x":
		return PlatformTwitter, true
	}
	return "", false
}

// String returns the lowercase platform name.
func (p Platform) String() string {
	return string(p)
}
