package nlp

import "strings"

// baseStopWords is a fixed English stop word list shared by keyword extraction
// and similarity scoring.
var baseStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "may", "me", "might", "more", "most",
	"must", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "ourselves", "out", "over",
	"own", "same", "shall", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would", "you",
	"your", "yours", "yourself", "yourselves",
}

// domainStopWords are resume/job wording additions excluded from keyword
// analysis on top of the base list.
var domainStopWords = []string{
	"experience", "year", "years", "skill", "skills", "job",
	"work", "working", "candidate", "ability", "position",
}

// StopWords is an immutable set of terms excluded from keyword extraction and
// vectorization. Build it once at startup and share it across components.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords returns the base English set plus the domain additions and any
// extra terms from configuration. Extra terms are lowercased and trimmed.
func NewStopWords(extra ...string) *StopWords {
	words := make(map[string]struct{}, len(baseStopWords)+len(domainStopWords)+len(extra))
	for _, w := range baseStopWords {
		words[w] = struct{}{}
	}
	for _, w := range domainStopWords {
		words[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}

	return &StopWords{words: words}
}

// Has reports whether the lowercased word is part of the set.
func (s *StopWords) Has(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the set.
func (s *StopWords) Len() int {
	return len(s.words)
}
