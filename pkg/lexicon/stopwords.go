package lexicon

// stopwords is the set of lowercase words dropped by stopword reduction.
// Negations (not, no, nor) are absent, as is "on".
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// articles and determiners
		"a", "an", "the", "this", "that", "these", "those", "some", "any",
		"each", "such", "own", "same", "other",

		// conjunctions
		"and", "or", "but", "if", "because", "as", "until", "while", "so",
		"than", "then", "once",

		// pronouns
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom",

		// auxiliaries
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",

		// prepositions
		"of", "at", "by", "for", "with", "about", "against", "between",
		"into", "through", "during", "before", "after", "above", "below",
		"to", "from", "up", "down", "in", "out", "off", "over",
		"under", "again", "further",

		// adverbs and fillers
		"here", "there", "when", "where", "why", "how", "all", "both",
		"few", "more", "most", "only", "too", "very", "just", "also",
	} {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the lowercase word w is a stopword.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}
