package nlp

import (
	"sort"
	"strings"
)

const (
	// DefaultKeywordLimit caps general keyword extraction.
	DefaultKeywordLimit = 30
	// JobKeywordLimit caps job-side keyword extraction during matching.
	JobKeywordLimit = 50
	// ResumeKeywordLimit caps resume-side keyword extraction during matching.
	ResumeKeywordLimit = 100

	minKeywordLen    = 3
	minNounPhraseLen = 4
)

// Extractor derives keywords and skills from text. The linguistic backend is
// selected once at construction; when it is absent the extractor transparently
// runs lexical heuristics instead.
type Extractor struct {
	stop    *StopWords
	backend Backend
	tech    *TechVocabulary
}

// NewExtractor builds an extractor with the given stop word set, an optional
// linguistic backend (nil selects the lexical tier) and extra technical terms
// from configuration.
func NewExtractor(stop *StopWords, backend Backend, extraTech ...string) *Extractor {
	return &Extractor{
		stop:    stop,
		backend: backend,
		tech:    NewTechVocabulary(extraTech...),
	}
}

// HasLinguisticBackend reports whether the rich extraction tier is active.
// Exposed for presentation purposes only; extraction results are usable
// either way.
func (e *Extractor) HasLinguisticBackend() bool {
	return e.backend != nil
}

// Keywords returns up to max terms ordered by descending frequency, ties kept
// in first-encountered order. Empty text yields an empty slice.
func (e *Extractor) Keywords(text string, max int) []string {
	if strings.TrimSpace(text) == "" || max <= 0 {
		return nil
	}

	var candidates []string
	if e.backend != nil {
		if tagged, err := e.taggedCandidates(text); err == nil {
			candidates = tagged
		} else {
			candidates = e.lexicalCandidates(text)
		}
	} else {
		candidates = e.lexicalCandidates(text)
	}

	return topByFrequency(candidates, max)
}

// taggedCandidates keeps tokens tagged noun, proper noun, or adjective longer
// than two characters, stop words excluded.
func (e *Extractor) taggedCandidates(text string) ([]string, error) {
	ann, err := e.backend.Annotate(Normalize(text))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, tok := range ann.Tokens {
		word := strings.ToLower(tok.Text)
		if e.stop.Has(word) {
			continue
		}
		if tok.IsNoun() || (tok.IsAdjective() && len(word) > 2) {
			out = append(out, word)
		}
	}
	return out, nil
}

// lexicalCandidates keeps whitespace tokens of the normalized text longer
// than two characters that are not stop words.
func (e *Extractor) lexicalCandidates(text string) []string {
	var out []string
	for _, word := range strings.Fields(Normalize(text)) {
		if len(word) < minKeywordLen || e.stop.Has(word) {
			continue
		}
		out = append(out, word)
	}
	return out
}

// topByFrequency counts the candidates and returns the max most frequent,
// stable on first-seen order for equal counts.
func topByFrequency(candidates []string, max int) []string {
	if len(candidates) == 0 {
		return nil
	}

	counts := make(map[string]int, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}

// Skills returns the deduplicated skill terms found in the text, in
// first-seen order. Named-entity spans and noun phrases are used when the
// linguistic backend is available; capitalized words of the original text
// otherwise. The fixed technical vocabulary is matched in both tiers.
func (e *Extractor) Skills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var candidates []string
	if e.backend != nil {
		if tagged, err := e.taggedSkills(text); err == nil {
			candidates = tagged
		} else {
			candidates = capitalizedWords(text)
		}
	} else {
		candidates = capitalizedWords(text)
	}

	candidates = append(candidates, e.tech.Matches(text)...)

	return dedup(candidates)
}

// taggedSkills collects entity spans plus noun phrases with no stop-word
// token and more than three characters.
func (e *Extractor) taggedSkills(text string) ([]string, error) {
	ann, err := e.backend.Annotate(Normalize(text))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, ent := range ann.Entities {
		out = append(out, strings.ToLower(ent.Text))
	}

	for _, phrase := range ann.NounPhrases {
		if len(phrase) < minNounPhraseLen {
			continue
		}
		if e.containsStopWord(phrase) {
			continue
		}
		out = append(out, strings.ToLower(phrase))
	}
	return out, nil
}

func (e *Extractor) containsStopWord(phrase string) bool {
	for _, word := range strings.Fields(phrase) {
		if e.stop.Has(word) {
			return true
		}
	}
	return false
}

// capitalizedWords returns the lowercased capitalized words (longer than two
// characters) of the original, non-normalized text.
func capitalizedWords(text string) []string {
	var out []string
	for _, field := range strings.Fields(text) {
		word := strings.Trim(field, ".,;:!?()[]{}\"'")
		if len(word) < minKeywordLen {
			continue
		}
		first := rune(word[0])
		if first < 'A' || first > 'Z' {
			continue
		}
		out = append(out, strings.ToLower(word))
	}
	return out
}

func dedup(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
