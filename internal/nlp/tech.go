package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// defaultTechTerms is the fixed list of known technology and skill names
// matched against every text regardless of the extraction tier.
var defaultTechTerms = []string{
	"python", "java", "javascript", "html", "css", "sql", "react",
	"node.js", "aws", "docker", "kubernetes", "machine learning", "ai",
	"data science", "nlp", "c++", "ruby", "php", "swift", "golang",
	"scala", "r", "tableau", "power bi", "excel", "word", "powerpoint",
	"photoshop", "illustrator",
}

// TechVocabulary matches a fixed set of technology terms against text using
// word-boundary matching. Immutable after construction.
type TechVocabulary struct {
	re *regexp.Regexp
}

// NewTechVocabulary builds the matcher over the default term list plus any
// extras from configuration.
func NewTechVocabulary(extra ...string) *TechVocabulary {
	terms := make([]string, 0, len(defaultTechTerms)+len(extra))
	terms = append(terms, defaultTechTerms...)
	for _, t := range extra {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}

	// Longer terms first so "machine learning" wins over a bare "machine"
	// configured as an extra.
	sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })

	patterns := make([]string, 0, len(terms))
	for _, t := range terms {
		patterns = append(patterns, termPattern(t))
	}

	return &TechVocabulary{
		re: regexp.MustCompile("(?:" + strings.Join(patterns, "|") + ")"),
	}
}

// termPattern quotes the term and anchors it on word boundaries. Boundaries
// are only asserted next to word characters; terms like "c++" end on
// punctuation where \b cannot match.
func termPattern(term string) string {
	p := regexp.QuoteMeta(term)
	if isWordByte(term[0]) {
		p = `\b` + p
	}
	if isWordByte(term[len(term)-1]) {
		p += `\b`
	}
	return p
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Matches returns every vocabulary term present in the text, lowercased, in
// order of appearance; duplicates are kept for the caller to collapse.
func (v *TechVocabulary) Matches(text string) []string {
	return v.re.FindAllString(strings.ToLower(text), -1)
}
