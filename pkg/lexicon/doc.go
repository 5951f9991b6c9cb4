// Package lexicon holds the static word and phrase tables used by the
// compression transforms.
//
// Every table is package-level data initialized once and never mutated.
// Phrase tables are ordered slices rather than maps: the transforms apply
// rules in declared order, and later rules may match text produced by
// earlier ones.
//
// # Tables
//
//   - Stopwords: high-frequency, low-information words
//   - TechnicalTerms: multi-word technical terms and their acronyms
//   - Abbreviations: verbose phrases and their standard abbreviations
//   - FillerPhrases: filler expressions and their short forms (often empty)
//   - RedundantPairs: redundant word pairs and the single word they mean
//   - Contractions: full phrases and their contracted forms
//   - NumberWords, ScaleWords: English number vocabulary
package lexicon
