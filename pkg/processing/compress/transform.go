package compress

// Technique names as reported in Result.TechniquesApplied.
const (
	TechniqueWhitespace   = "Whitespace normalization"
	TechniquePunctuation  = "Punctuation optimization"
	TechniqueCodeComments = "Code comment removal"
	TechniqueDeduplicate  = "Deduplication"
	TechniqueFiller       = "Filler phrase removal"
	TechniqueRedundant    = "Redundant pair collapsing"
	TechniqueContractions = "Contraction conversion"
	TechniqueAbbreviation = "Abbreviation substitution"
	TechniqueNumberWords  = "Number word conversion"
	TechniqueStopwords    = "Stopword reduction"
)

// Transform is a named, pure string-to-string compression step.
type Transform struct {
	Name  string
	Apply func(string) string
}

// advanced lists the optional passes in the order the pipeline runs them.
var advanced = []Transform{
	{Name: TechniqueFiller, Apply: RemoveFillerPhrases},
	{Name: TechniqueRedundant, Apply: CollapseRedundantPairs},
	{Name: TechniqueAbbreviation, Apply: ApplyAbbreviations},
	{Name: TechniqueContractions, Apply: ApplyContractions},
	{Name: TechniqueNumberWords, Apply: ConvertNumberWords},
}

// AdvancedTechniques returns the names accepted in Options.Advanced, in
// pipeline order.
func AdvancedTechniques() []string {
	names := make([]string, len(advanced))
	for i, t := range advanced {
		names[i] = t.Name
	}
	return names
}
