package lexicon

// NumberWords maps English unit, teen and tens words to their values.
var NumberWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// ScaleWords maps short-scale multiplier words to their values.
var ScaleWords = map[string]int64{
	"hundred":  100,
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
	"trillion": 1_000_000_000_000,
}

// NumberConnectives are the words allowed between number words in a run.
// Hyphens are handled by the tokenizer, not listed here.
var NumberConnectives = []string{"and", "&"}
