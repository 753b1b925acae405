package textstat

import (
	"testing"
	"time"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Stats
	}{
		{
			name:     "empty text",
			text:     "",
			expected: Stats{},
		},
		{
			name: "single sentence",
			text: "Hello, world!",
			expected: Stats{
				Characters:        13,
				CharactersNoSpace: 12,
				Words:             2,
				Sentences:         1,
				Lines:             1,
				Paragraphs:        1,
			},
		},
		{
			name: "two sentences with ellipsis-free punctuation",
			text: "One fish. Two fish?",
			expected: Stats{
				Characters:        19,
				CharactersNoSpace: 16,
				Words:             4,
				Sentences:         2,
				Lines:             1,
				Paragraphs:        1,
			},
		},
		{
			name: "paragraphs split on blank lines",
			text: "First paragraph.\n\nSecond paragraph.\nStill the second.",
			expected: Stats{
				Characters:        53,
				CharactersNoSpace: 46,
				Words:             7,
				Sentences:         3,
				Lines:             4,
				Paragraphs:        2,
			},
		},
		{
			name: "unterminated sentence still counts",
			text: "no punctuation here",
			expected: Stats{
				Characters:        19,
				CharactersNoSpace: 17,
				Words:             3,
				Sentences:         1,
				Lines:             1,
				Paragraphs:        1,
			},
		},
		{
			name: "repeated terminators count once",
			text: "Really?! Yes.",
			expected: Stats{
				Characters:        13,
				CharactersNoSpace: 12,
				Words:             2,
				Sentences:         2,
				Lines:             1,
				Paragraphs:        1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			got.ReadingTime = 0
			if got != tt.expected {
				t.Errorf("Analyze(%q) = %+v, want %+v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestReadingTimeScalesWithWords(t *testing.T) {
	text := ""
	for i := 0; i < 400; i++ {
		text += "word "
	}
	stats := Analyze(text)
	if stats.Words != 400 {
		t.Fatalf("got %d words", stats.Words)
	}
	if stats.ReadingTime != 2*time.Minute {
		t.Errorf("400 words at 200 wpm should read in 2m, got %s", stats.ReadingTime)
	}
}
