package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveFillerPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shortened and capitalized", "In order to win, basically we try.", "To win, we try."},
		{"deleted at start", "It is important to note that the build failed.", "the build failed."},
		{"case insensitive", "We met prior TO the launch.", "We met before the launch."},
		{"capitalized replacement", "Prior to the launch, we met.", "Before the launch, we met."},
		{"whole words only", "Reorder toggles.", "Reorder toggles."},
		{"lines preserved", "basically one\nactually two", "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveFillerPhrases(tt.input))
		})
	}
}

func TestCollapseRedundantPairs(t *testing.T) {
	assert.Equal(t, "Every user agreed.", CollapseRedundantPairs("Each and every user agreed."))
	assert.Equal(t, "the result is good", CollapseRedundantPairs("the end result is good"))
	assert.Equal(t, "unchanged text", CollapseRedundantPairs("unchanged text"))
}

func TestApplyAbbreviations(t *testing.T) {
	got := ApplyAbbreviations("The application programming interface, for example, is approximately done")
	assert.Equal(t, "The API, e.g., is approx. done", got)

	assert.Equal(t, "informational", ApplyAbbreviations("informational"))
	assert.Equal(t, "Config is in the repo", ApplyAbbreviations("Configuration is in the repository"))
}

func TestApplyContractions(t *testing.T) {
	assert.Equal(t, "I'm sure we don't know", ApplyContractions("I am sure we do not know"))
	assert.Equal(t, "Don't stop", ApplyContractions("Do not stop"))
	assert.Equal(t, "We can't", ApplyContractions("We cannot"))
}

func TestConvertNumberWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hundreds with and", "one hundred and twenty three", "123 (in words)"},
		{"thousands", "two thousand", "2,000 (in words)"},
		{"hyphenated", "We sold twenty-five units", "We sold 25 (in words) units"},
		{"compound", "one thousand two hundred", "1,200 (in words)"},
		{"case insensitive", "Seven days", "7 (in words) days"},
		{"no number words", "nothing here", "nothing here"},
		{"inside other words", "someone has a tenant", "someone has a tenant"},
		{"trailing and left alone", "three and a half", "3 (in words) and a half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertNumberWords(tt.input))
		})
	}
}

func TestNumberValue(t *testing.T) {
	assert.Equal(t, int64(123), numberValue("one hundred and twenty three"))
	assert.Equal(t, int64(2000), numberValue("two thousand"))
	assert.Equal(t, int64(1000), numberValue("thousand"))
	assert.Equal(t, int64(0), numberValue("zero"))
	assert.Equal(t, int64(25), numberValue("twenty-five"))
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "To", matchCase("In order to", "to"))
	assert.Equal(t, "to", matchCase("in order to", "to"))
	assert.Equal(t, "", matchCase("Basically", ""))
	assert.Equal(t, "API", matchCase("application programming interface", "API"))
}
