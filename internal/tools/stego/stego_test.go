package stego

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		cover  string
		secret string
	}{
		{"plain ascii", "The quick brown fox.", "meet at noon"},
		{"unicode cover", "Привет, мир", "secret"},
		{"unicode secret", "hello world", "пароль"},
		{"empty cover", "", "orphan payload"},
		{"single rune cover", "x", "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(tt.cover, tt.secret)
			decoded, found := Decode(encoded)
			if !found {
				t.Fatalf("no payload found in %q", encoded)
			}
			if decoded != tt.secret {
				t.Errorf("decoded %q, want %q", decoded, tt.secret)
			}
		})
	}
}

func TestEncodedTextLooksLikeCover(t *testing.T) {
	cover := "An ordinary sentence."
	encoded := Encode(cover, "hidden")

	if Strip(encoded) != cover {
		t.Errorf("stripped text %q differs from cover %q", Strip(encoded), cover)
	}
	if encoded == cover {
		t.Errorf("encoded text should carry an invisible payload")
	}
}

func TestEncodeEmptySecretIsIdentity(t *testing.T) {
	cover := "nothing to hide"
	if Encode(cover, "") != cover {
		t.Errorf("empty secret should leave the cover untouched")
	}
}

func TestDecodeWithoutPayload(t *testing.T) {
	for _, text := range []string{"", "just text", "unterminated ‍​‌"} {
		if secret, found := Decode(text); found {
			t.Errorf("Decode(%q) unexpectedly found %q", text, secret)
		}
	}
}

func TestDecodeIgnoresTrailingNoise(t *testing.T) {
	encoded := Encode("cover text", "payload")
	noisy := encoded + "​​ trailing garbage"

	decoded, found := Decode(noisy)
	if !found || decoded != "payload" {
		t.Errorf("got (%q, %v), want (\"payload\", true)", decoded, found)
	}
}

func TestPayloadSurvivesWhitespaceTrim(t *testing.T) {
	encoded := Encode("  padded cover  ", "kept")
	decoded, found := Decode(strings.TrimSpace(encoded))
	if !found || decoded != "kept" {
		t.Errorf("payload lost after trimming: (%q, %v)", decoded, found)
	}
}
