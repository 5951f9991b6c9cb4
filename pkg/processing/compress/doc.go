// Package compress implements the text compression pipeline.
//
// The package has two layers. The transforms (NormalizeWhitespace,
// RemoveRedundantPunctuation, RemoveStopwords, RemoveCodeComments,
// DeduplicateLines, RemoveFillerPhrases, CollapseRedundantPairs,
// ApplyAbbreviations, ApplyContractions, ConvertNumberWords) are pure
// string functions over the lexicon tables. The Compressor chains them in a
// fixed order, gating the optional ones, and measures the token counts
// before and after.
//
// # Basic Usage
//
//	c, err := compress.New(compress.Options{
//	    Counter:           counter,
//	    Model:             "gpt-4",
//	    StopwordThreshold: 5000,
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := c.Compress(text)
//	fmt.Printf("%d -> %d tokens (%.2f%%)\n",
//	    res.OriginalTokens, res.CompressedTokens, res.ReductionPercentage)
//
// # Advanced Passes
//
// The phrase-table passes are off by default and enabled by name through
// Options.Advanced (see AdvancedTechniques). They rewrite wording, so they
// run before stopword reduction, which would break the multi-word phrases
// they match.
package compress
