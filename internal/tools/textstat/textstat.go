package textstat

import (
	"strings"
	"time"
	"unicode"
)

// Average adult reading speed, words per minute.
const readingWordsPerMinute = 200

// Stats summarizes a body of text.
type Stats struct {
	Characters        int
	CharactersNoSpace int
	Words             int
	Sentences         int
	Lines             int
	Paragraphs        int
	ReadingTime       time.Duration
}

// Analyze computes text statistics in a single pass plus a field split.
func Analyze(text string) Stats {
	var stats Stats
	if text == "" {
		return stats
	}

	stats.Lines = 1
	inSentence := false
	blankLine := true
	paragraphOpen := false

	for _, r := range text {
		stats.Characters++
		if !unicode.IsSpace(r) {
			stats.CharactersNoSpace++
			blankLine = false
			if !paragraphOpen {
				paragraphOpen = true
				stats.Paragraphs++
			}
		}

		switch r {
		case '\n':
			stats.Lines++
			if blankLine {
				paragraphOpen = false
			}
			blankLine = true
		case '.', '!', '?':
			if inSentence {
				stats.Sentences++
				inSentence = false
			}
		default:
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				inSentence = true
			}
		}
	}
	if inSentence {
		stats.Sentences++
	}

	stats.Words = len(strings.Fields(text))
	stats.ReadingTime = time.Duration(float64(stats.Words)/readingWordsPerMinute*60) * time.Second
	return stats
}
