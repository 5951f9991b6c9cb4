package compress

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"blinkdeploys/tokenscope/pkg/lexicon"
)

var (
	numberRun       = compileNumberRun()
	numberSeparator = regexp.MustCompile(`[,/&-]`)
)

// compileNumberRun matches a maximal run of number words joined by
// whitespace, hyphens or the lexicon connectives.
func compileNumberRun() *regexp.Regexp {
	words := make([]string, 0, len(lexicon.NumberWords)+len(lexicon.ScaleWords))
	for w := range lexicon.NumberWords {
		words = append(words, w)
	}
	for w := range lexicon.ScaleWords {
		words = append(words, w)
	}
	// longest first so "sixteen" is tried before "six"
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	word := `(?:` + strings.Join(words, "|") + `)`

	joins := []string{`\s*-\s*`}
	for _, c := range lexicon.NumberConnectives {
		if isWordByte(c[0]) {
			joins = append(joins, `\s+`+regexp.QuoteMeta(c)+`\s+`)
		} else {
			joins = append(joins, `\s*`+regexp.QuoteMeta(c)+`\s*`)
		}
	}
	joins = append(joins, `\s+`)
	join := `(?:` + strings.Join(joins, "|") + `)`

	return regexp.MustCompile(`(?i)\b` + word + `(?:` + join + word + `)*\b`)
}

// ConvertNumberWords rewrites runs of English number words as digits
// followed by " (in words)", e.g. "two thousand" becomes
// "2,000 (in words)". Text without number words is returned unchanged.
func ConvertNumberWords(text string) string {
	if !numberRun.MatchString(text) {
		return text
	}

	p := message.NewPrinter(language.English)
	return numberRun.ReplaceAllStringFunc(text, func(run string) string {
		return p.Sprintf("%d (in words)", numberValue(run))
	})
}

// numberValue evaluates a run of number words. Units add to the current
// group; a scale word multiplies the group (an empty group counts as one)
// and moves it into the total.
func numberValue(run string) int64 {
	var total, current int64

	clean := numberSeparator.ReplaceAllString(strings.ToLower(run), " ")
	for _, tok := range strings.Fields(clean) {
		if v, ok := lexicon.NumberWords[tok]; ok {
			current += v
			continue
		}
		if mult, ok := lexicon.ScaleWords[tok]; ok {
			current = max(1, current) * mult
			total += current
			current = 0
		}
	}

	return total + current
}
