package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNoClasses indicates that every character class is disabled.
var ErrNoClasses = errors.New("no character classes enabled")

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"

	minLength = 4
	maxLength = 128
)

// Options selects the password length and character classes to sample from.
type Options struct {
	Length  int  `json:"length"`
	Lower   bool `json:"lower"`
	Upper   bool `json:"upper"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// DefaultOptions returns a 16-character password over all classes.
func DefaultOptions() Options {
	return Options{
		Length:  16,
		Lower:   true,
		Upper:   true,
		Digits:  true,
		Symbols: true,
	}
}

// classes returns the enabled character classes.
func (options Options) classes() []string {
	var enabled []string
	if options.Lower {
		enabled = append(enabled, lowerChars)
	}
	if options.Upper {
		enabled = append(enabled, upperChars)
	}
	if options.Digits {
		enabled = append(enabled, digitChars)
	}
	if options.Symbols {
		enabled = append(enabled, symbolChars)
	}
	return enabled
}

// Generate samples a password from crypto/rand. The result contains at
// least one character from every enabled class; length is clamped to 4-128.
func Generate(options Options) (string, error) {
	classes := options.classes()
	if len(classes) == 0 {
		return "", ErrNoClasses
	}

	length := options.Length
	if length < minLength {
		length = minLength
	}
	if length > maxLength {
		length = maxLength
	}

	alphabet := strings.Join(classes, "")
	password := make([]byte, 0, length)
	for _, class := range classes {
		if len(password) == length {
			break
		}
		char, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}
	for len(password) < length {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func randomChar(alphabet string) (byte, error) {
	index, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("sample random char: %w", err)
	}
	return alphabet[index.Int64()], nil
}

// shuffle is a Fisher-Yates pass over the generated bytes, so the
// guaranteed per-class characters do not always lead the password.
func shuffle(password []byte) error {
	for i := len(password) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("shuffle password: %w", err)
		}
		password[i], password[j.Int64()] = password[j.Int64()], password[i]
	}
	return nil
}
