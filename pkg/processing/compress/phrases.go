package compress

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"blinkdeploys/tokenscope/pkg/lexicon"
)

// phraseRule is a compiled lexicon.Rule.
type phraseRule struct {
	re          *regexp.Regexp
	replacement string
}

var (
	fillerRules       = compileRules(lexicon.FillerPhrases)
	redundantRules    = compileRules(lexicon.RedundantPairs)
	technicalRules    = compileRules(lexicon.TechnicalTerms)
	abbreviationRules = compileRules(lexicon.Abbreviations)
	contractionRules  = compileRules(lexicon.Contractions)

	blankRun         = regexp.MustCompile(`[ \t]+`)
	blankBeforePunct = regexp.MustCompile(`[ \t]+([.,!?;:])`)
)

// compileRules turns table entries into case-insensitive patterns. Word
// boundaries are only anchored on ends that are word characters, and a
// space in the pattern matches any whitespace run.
func compileRules(rules []lexicon.Rule) []phraseRule {
	compiled := make([]phraseRule, 0, len(rules))
	for _, r := range rules {
		expr := strings.ReplaceAll(regexp.QuoteMeta(r.Pattern), " ", `\s+`)
		if isWordByte(r.Pattern[0]) {
			expr = `\b` + expr
		}
		if isWordByte(r.Pattern[len(r.Pattern)-1]) {
			expr += `\b`
		}
		compiled = append(compiled, phraseRule{
			re:          regexp.MustCompile(`(?i)` + expr),
			replacement: r.Replacement,
		})
	}
	return compiled
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// applyRules runs every rule over text in order, then tidies the spacing
// the replacements leave behind.
func applyRules(text string, rules []phraseRule) string {
	for _, r := range rules {
		repl := r.replacement
		text = r.re.ReplaceAllStringFunc(text, func(match string) string {
			return matchCase(match, repl)
		})
	}
	return tidy(text)
}

// matchCase capitalizes replacement when match starts with an uppercase
// letter.
func matchCase(match, replacement string) string {
	if replacement == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(match)
	if !unicode.IsUpper(first) {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}

// tidy collapses blank runs, removes blanks before punctuation and trims
// every line.
func tidy(text string) string {
	text = blankRun.ReplaceAllString(text, " ")
	text = blankBeforePunct.ReplaceAllString(text, "$1")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// RemoveFillerPhrases deletes filler expressions and shortens verbose ones
// ("in order to" becomes "to").
func RemoveFillerPhrases(text string) string {
	return applyRules(text, fillerRules)
}

// CollapseRedundantPairs replaces redundant pairs with the word they mean
// ("each and every" becomes "every").
func CollapseRedundantPairs(text string) string {
	return applyRules(text, redundantRules)
}

// ApplyAbbreviations replaces technical terms with their acronyms, then
// verbose words and phrases with standard abbreviations.
func ApplyAbbreviations(text string) string {
	return applyRules(applyRules(text, technicalRules), abbreviationRules)
}

// ApplyContractions replaces full phrases with contractions
// ("do not" becomes "don't").
func ApplyContractions(text string) string {
	return applyRules(text, contractionRules)
}
