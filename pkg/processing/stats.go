package processing

import (
	"math"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used for ReadingTimeMinutes.
const WordsPerMinute = 200

// ComputeTextStats measures raw text. OriginalTokens is left for the
// caller to fill in.
func ComputeTextStats(text string) TextStats {
	words := len(strings.Fields(text))
	return TextStats{
		Characters:         utf8.RuneCountInString(text),
		Words:              words,
		Lines:              strings.Count(text, "\n") + 1,
		ReadingTimeMinutes: math.Round(float64(words)/WordsPerMinute*10) / 10,
	}
}
