package resolver

import (
	"testing"

	"vidextract-api/core/domain"
	coreerrors "vidextract-api/core/errors"
)

func TestResolveInstagram_PostURL(t *testing.T) {
	id, err := Resolve(domain.PlatformInstagram, "https://www.instagram.com/p/CxYzAbCdEfG/")

	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindShortcode {
		t.Errorf("Kind = %v, want %v", id.Kind, KindShortcode)
	}
	if id.Value != "CxYzAbCdEfG" {
		t.Errorf("Value = %v", id.Value)
	}
}

func TestResolveInstagram_ReelURL(t *testing.T) {
	testCases := []string{
		"https://www.instagram.com/reel/CxYzAbCdEfG/",
		"https://www.instagram.com/reels/CxYzAbCdEfG/",
		"https://www.instagram.com/tv/CxYzAbCdEfG/",
	}

	for _, input := range testCases {
		id, err := Resolve(domain.PlatformInstagram, input)
		if err != nil {
			t.Errorf("Resolve(%q) returned error: %v", input, err)
			continue
		}
		if id.Value != "CxYzAbCdEfG" {
			t.Errorf("Resolve(%q) Value = %v", input, id.Value)
		}
	}
}

func TestResolveInstagram_TokenFallback(t *testing.T) {
	id, err := Resolve(domain.PlatformInstagram, "https://www.instagram.com/stories/highlights/CxYzAbCdEfG/")

	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id.Kind != KindShortcode {
		t.Errorf("Kind = %v, want %v", id.Kind, KindShortcode)
	}
}

func TestResolveInstagram_WrongPlatformURL(t *testing.T) {
	_, err := Resolve(domain.PlatformInstagram, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	if err == nil {
		t.Fatal("Resolve should reject non-Instagram URLs")
	}
	if !coreerrors.IsUnresolvedIdentifier(err) {
		t.Errorf("Resolve error = %T, want UnresolvedIdentifierError", err)
	}
	if coreerrors.UserMessage(err) != "Please enter an Instagram URL. The provided URL appears to be for a different platform." {
		t.Errorf("UserMessage = %v", coreerrors.UserMessage(err))
	}
}

func TestResolveInstagram_Unresolvable(t *testing.T) {
	_, err := Resolve(domain.PlatformInstagram, "just some words")

	if err == nil {
		t.Fatal("Resolve should return error for unresolvable input")
	}
	if !coreerrors.IsUnresolvedIdentifier(err) {
		t.Errorf("Resolve error = %T, want UnresolvedIdentifierError", err)
	}
}
