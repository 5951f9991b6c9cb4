package lexicon

// Rule is a single find-and-replace entry. Pattern is matched
// case-insensitively on word boundaries; Replacement may be empty.
type Rule struct {
	Pattern     string
	Replacement string
}

// TechnicalTerms maps multi-word technical terms to their acronyms.
var TechnicalTerms = []Rule{
	{"application programming interface", "API"},
	{"artificial intelligence", "AI"},
	{"machine learning", "ML"},
	{"natural language processing", "NLP"},
	{"large language model", "LLM"},
	{"large language models", "LLMs"},
	{"user interface", "UI"},
	{"user experience", "UX"},
	{"command line interface", "CLI"},
	{"continuous integration", "CI"},
	{"continuous deployment", "CD"},
	{"software development kit", "SDK"},
	{"operating system", "OS"},
	{"central processing unit", "CPU"},
	{"graphics processing unit", "GPU"},
	{"random access memory", "RAM"},
	{"structured query language", "SQL"},
	{"hypertext transfer protocol", "HTTP"},
	{"uniform resource locator", "URL"},
	{"javascript object notation", "JSON"},
	{"representational state transfer", "REST"},
	{"service level agreement", "SLA"},
	{"key performance indicator", "KPI"},
	{"return on investment", "ROI"},
	{"frequently asked questions", "FAQ"},
	{"proof of concept", "PoC"},
	{"minimum viable product", "MVP"},
	{"content delivery network", "CDN"},
	{"domain name system", "DNS"},
	{"virtual private network", "VPN"},
}

// Abbreviations maps verbose words and phrases to standard abbreviations.
var Abbreviations = []Rule{
	{"for example", "e.g."},
	{"that is to say", "i.e."},
	{"and so on", "etc."},
	{"et cetera", "etc."},
	{"versus", "vs."},
	{"approximately", "approx."},
	{"information", "info"},
	{"configuration", "config"},
	{"documentation", "docs"},
	{"application", "app"},
	{"applications", "apps"},
	{"repository", "repo"},
	{"repositories", "repos"},
	{"specification", "spec"},
	{"environment", "env"},
	{"development", "dev"},
	{"production", "prod"},
	{"administrator", "admin"},
	{"authentication", "auth"},
	{"maximum", "max"},
	{"minimum", "min"},
	{"department", "dept."},
	{"management", "mgmt"},
	{"government", "govt"},
	{"international", "intl"},
	{"as soon as possible", "ASAP"},
	{"for your information", "FYI"},
	{"with respect to", "w.r.t."},
	{"without", "w/o"},
}

// FillerPhrases maps filler and verbose expressions to shorter forms.
// Entries that begin with a longer phrase come before their prefixes.
var FillerPhrases = []Rule{
	{"it is important to note that", ""},
	{"it should be noted that", ""},
	{"it is worth mentioning that", ""},
	{"needless to say", ""},
	{"as a matter of fact", ""},
	{"for all intents and purposes", ""},
	{"at the end of the day", ""},
	{"in my opinion", ""},
	{"to be honest", ""},
	{"basically", ""},
	{"essentially", ""},
	{"actually", ""},
	{"literally", ""},
	{"due to the fact that", "because"},
	{"in spite of the fact that", "although"},
	{"despite the fact that", "although"},
	{"in the event that", "if"},
	{"in order to", "to"},
	{"at this point in time", "now"},
	{"at the present time", "now"},
	{"in the near future", "soon"},
	{"with regard to", "about"},
	{"with reference to", "about"},
	{"in relation to", "about"},
	{"a large number of", "many"},
	{"a majority of", "most"},
	{"has the ability to", "can"},
	{"is able to", "can"},
	{"for the purpose of", "for"},
	{"in close proximity to", "near"},
	{"prior to", "before"},
	{"subsequent to", "after"},
	{"in addition to", "besides"},
	{"on a daily basis", "daily"},
	{"make a decision", "decide"},
	{"take into consideration", "consider"},
}

// RedundantPairs maps redundant word pairs to the single word they mean.
var RedundantPairs = []Rule{
	{"each and every", "every"},
	{"first and foremost", "first"},
	{"any and all", "all"},
	{"true and accurate", "accurate"},
	{"full and complete", "complete"},
	{"null and void", "void"},
	{"basic and fundamental", "fundamental"},
	{"various and sundry", "various"},
	{"if and when", "when"},
	{"unless and until", "until"},
	{"past history", "history"},
	{"end result", "result"},
	{"final outcome", "outcome"},
	{"free gift", "gift"},
	{"advance planning", "planning"},
	{"close proximity", "proximity"},
	{"unexpected surprise", "surprise"},
	{"completely finished", "finished"},
	{"absolutely essential", "essential"},
	{"future plans", "plans"},
	{"added bonus", "bonus"},
	{"join together", "join"},
	{"repeat again", "repeat"},
	{"revert back", "revert"},
	{"combine together", "combine"},
}

// Contractions maps full phrases to their contracted forms.
var Contractions = []Rule{
	{"do not", "don't"},
	{"does not", "doesn't"},
	{"did not", "didn't"},
	{"is not", "isn't"},
	{"are not", "aren't"},
	{"was not", "wasn't"},
	{"were not", "weren't"},
	{"have not", "haven't"},
	{"has not", "hasn't"},
	{"had not", "hadn't"},
	{"will not", "won't"},
	{"would not", "wouldn't"},
	{"should not", "shouldn't"},
	{"could not", "couldn't"},
	{"cannot", "can't"},
	{"can not", "can't"},
	{"must not", "mustn't"},
	{"I am", "I'm"},
	{"you are", "you're"},
	{"we are", "we're"},
	{"they are", "they're"},
	{"it is", "it's"},
	{"that is", "that's"},
	{"there is", "there's"},
	{"I will", "I'll"},
	{"you will", "you'll"},
	{"we will", "we'll"},
	{"they will", "they'll"},
	{"I have", "I've"},
	{"you have", "you've"},
	{"we have", "we've"},
	{"they have", "they've"},
	{"let us", "let's"},
}
