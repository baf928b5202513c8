// ABOUTME: Entry point for turning raw user input into a typed identifier
// ABOUTME: Pure string work, never performs network I/O

package resolver

import (
	"strings"

	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
)

// User-facing guidance returned when nothing in the input resolves.
const (
	youtubeUnresolvedMessage   = "We were unable to identify a valid YouTube video or post in the provided URL. Please ensure you are using a complete YouTube URL format."
	facebookUnresolvedMessage  = "We were unable to identify a valid Facebook video in the provided URL. Please ensure you are using a complete Facebook URL format, or try entering the numeric video ID directly."
	instagramWrongSiteMessage  = "Please enter an Instagram URL. The provided URL appears to be for a different platform."
	instagramUnresolvedMessage = "We were unable to identify a valid Instagram post in the provided URL. Please ensure you are using a complete Instagram URL format."
	twitterUnresolvedMessage   = "We were unable to identify a valid Twitter/X post in the provided URL. Please ensure you are using a complete Twitter/X URL format."
)

// Resolve turns raw input into a typed identifier for the given platform.
// Returns InvalidInputError for empty input and UnresolvedIdentifierError
// when no identifier can be derived.
func Resolve(platform domain.Platform, raw string) (Identifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identifier{}, &coreerrors.InvalidInputError{
			Field:   "url",
			Message: "Please enter a URL or ID.",
		}
	}

	switch platform {
	case domain.PlatformYouTube:
		return resolveYouTube(raw)
	case domain.PlatformFacebook:
		return resolveFacebook(raw)
	case domain.PlatformInstagram:
		return resolveInstagram(raw)
	case domain.PlatformTwitter:
		return resolveTwitter(raw)
	}

	return Identifier{}, &coreerrors.InvalidInputError{
		Field:   "platform",
		Message: "Unsupported platform.",
	}
}

// UnresolvedTwitter reports input that cannot be tied to any tweet, for
// callers that discover this only after expanding a short link.
func UnresolvedTwitter(input string) error {
	return unresolved(domain.PlatformTwitter, input, twitterUnresolvedMessage)
}

func unresolved(platform domain.Platform, input, userMessage string) error {
	return &coreerrors.UnresolvedIdentifierError{
		Platform:    platform.String(),
		Input:       input,
		UserMessage: userMessage,
	}
}
