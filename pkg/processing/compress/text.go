package compress

import (
	"regexp"
	"strings"

	"blinkdeploys/tokenscope/pkg/lexicon"
)

var (
	spaceRun   = regexp.MustCompile(` +`)
	newlineRun = regexp.MustCompile(`\n+`)

	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	// RE2 has no backreferences, so each mark gets its own pattern.
	repeatedMarks = []struct {
		re   *regexp.Regexp
		mark string
	}{
		{regexp.MustCompile(`!{2,}`), "!"},
		{regexp.MustCompile(`\?{2,}`), "?"},
		{regexp.MustCompile(`\.{2,}`), "."},
		{regexp.MustCompile(`,{2,}`), ","},
	}

	sentenceSplit = regexp.MustCompile(`[.!?]\s*`)

	lineComment  = regexp.MustCompile(`(?m)//.*$`)
	hashComment  = regexp.MustCompile(`(?m)#.*$`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// NormalizeWhitespace collapses runs of spaces to one space, strips every
// line and collapses runs of newlines to one newline. Tabs inside a line
// are left alone.
func NormalizeWhitespace(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return newlineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n")
}

// RemoveRedundantPunctuation removes whitespace before . , ! ? ; : and
// collapses runs of the same mark. Mixed runs such as "?!" are kept.
func RemoveRedundantPunctuation(text string) string {
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	for _, m := range repeatedMarks {
		text = m.re.ReplaceAllLiteralString(text, m.mark)
	}
	return text
}

// RemoveStopwords drops stopwords from every sentence except its first
// word. Sentences end at . ! or ?; the delimiter and the whitespace after
// it are kept. A trailing fragment without a delimiter is a sentence too.
func RemoveStopwords(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	start := 0
	for _, loc := range sentenceSplit.FindAllStringIndex(text, -1) {
		writeSentence(&sb, text[start:loc[0]])
		sb.WriteString(text[loc[0]:loc[1]])
		start = loc[1]
	}
	writeSentence(&sb, text[start:])

	return sb.String()
}

func writeSentence(sb *strings.Builder, sentence string) {
	words := strings.Fields(sentence)
	if len(words) == 0 {
		return
	}

	sb.WriteString(words[0])
	for _, w := range words[1:] {
		if lexicon.IsStopword(strings.ToLower(w)) {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(w)
	}
}

// LooksLikeCode reports whether text carries comment markers: "//", "/*"
// or more than five '#'.
func LooksLikeCode(text string) bool {
	return strings.Contains(text, "//") ||
		strings.Contains(text, "/*") ||
		strings.Count(text, "#") > 5
}

// RemoveCodeComments strips // and # comments to the end of the line, then
// /* */ blocks, which may span lines.
func RemoveCodeComments(text string) string {
	text = lineComment.ReplaceAllString(text, "")
	text = hashComment.ReplaceAllString(text, "")
	return blockComment.ReplaceAllString(text, "")
}

// DeduplicateLines keeps the first occurrence of every non-blank line,
// compared after trimming. Blank lines are always kept.
func DeduplicateLines(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	out := lines[:0]

	for _, line := range lines {
		key := strings.TrimSpace(line)
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
