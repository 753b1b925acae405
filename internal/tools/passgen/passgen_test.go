package passgen

import (
	"strings"
	"testing"
)

func TestGenerateRespectsLength(t *testing.T) {
	options := DefaultOptions()
	for _, length := range []int{4, 16, 64, 128} {
		options.Length = length
		password, err := Generate(options)
		if err != nil {
			t.Fatalf("generate length %d: %v", length, err)
		}
		if len(password) != length {
			t.Errorf("length %d: got %d characters", length, len(password))
		}
	}
}

func TestGenerateClampsLength(t *testing.T) {
	options := DefaultOptions()

	options.Length = 0
	password, err := Generate(options)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(password) != minLength {
		t.Errorf("got %d characters, want the %d minimum", len(password), minLength)
	}

	options.Length = 9999
	password, err = Generate(options)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(password) != maxLength {
		t.Errorf("got %d characters, want the %d maximum", len(password), maxLength)
	}
}

func TestGenerateIncludesEveryEnabledClass(t *testing.T) {
	options := DefaultOptions()
	options.Length = 8

	// A short password over four classes is the tightest case; run many
	// samples to catch a class being dropped.
	for i := 0; i < 50; i++ {
		password, err := Generate(options)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		for _, class := range []string{lowerChars, upperChars, digitChars, symbolChars} {
			if !strings.ContainsAny(password, class) {
				t.Fatalf("password %q missing class %q", password, class[:5])
			}
		}
	}
}

func TestGenerateHonorsDisabledClasses(t *testing.T) {
	options := Options{Length: 32, Digits: true}
	password, err := Generate(options)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			t.Fatalf("digits-only password contains %q", r)
		}
	}
}

func TestGenerateRejectsEmptyAlphabet(t *testing.T) {
	if _, err := Generate(Options{Length: 12}); err != ErrNoClasses {
		t.Errorf("got %v, want ErrNoClasses", err)
	}
}
