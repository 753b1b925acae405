package stego

import "strings"

// Zero-width codepoints used to smuggle bits through ordinary text. Every
// rune below renders as nothing in virtually all fonts, so the payload is
// invisible yet survives copy and paste.
const (
	zeroBit   = '​' // zero width space
	oneBit    = '‌' // zero width non-joiner
	delimiter = '‍' // zero width joiner, brackets the payload
)

// Encode hides secret inside cover text. The payload is inserted after the
// first rune of the cover so leading-whitespace trimming cannot strip it;
// an empty cover yields the bare payload.
func Encode(cover, secret string) string {
	if secret == "" {
		return cover
	}

	var payload strings.Builder
	payload.WriteRune(delimiter)
	for _, b := range []byte(secret) {
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<bit) != 0 {
				payload.WriteRune(oneBit)
			} else {
				payload.WriteRune(zeroBit)
			}
		}
	}
	payload.WriteRune(delimiter)

	runes := []rune(cover)
	if len(runes) == 0 {
		return payload.String()
	}

	var out strings.Builder
	out.WriteRune(runes[0])
	out.WriteString(payload.String())
	out.WriteString(string(runes[1:]))
	return out.String()
}

// Decode extracts a hidden message from text. It reports false when no
// well-formed payload is present.
func Decode(text string) (string, bool) {
	var bits []byte
	collecting := false
	complete := false

	for _, r := range text {
		switch r {
		case delimiter:
			if collecting {
				complete = true
			} else {
				collecting = true
			}
		case zeroBit:
			if collecting && !complete {
				bits = append(bits, 0)
			}
		case oneBit:
			if collecting && !complete {
				bits = append(bits, 1)
			}
		}
		if complete {
			break
		}
	}

	if !complete || len(bits) == 0 || len(bits)%8 != 0 {
		return "", false
	}

	secret := make([]byte, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		var b byte
		for _, bit := range bits[i : i+8] {
			b = b<<1 | bit
		}
		secret = append(secret, b)
	}
	return string(secret), true
}

// Strip removes any hidden payload from text, returning the visible cover.
func Strip(text string) string {
	var out strings.Builder
	for _, r := range text {
		switch r {
		case zeroBit, oneBit, delimiter:
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
