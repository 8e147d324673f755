package nlp

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// skillEntityLabels are the entity labels treated as skill candidates.
var skillEntityLabels = map[string]struct{}{
	"ORG":     {},
	"PRODUCT": {},
	"GPE":     {},
}

// ProseBackend is the rich Backend variant built on the prose model assets.
// Construction is expensive; build it once and share the handle for the
// process lifetime.
type ProseBackend struct{}

// NewProseBackend verifies the model assets load by annotating a small probe
// text. On failure the caller should fall back to the lexical tier.
func NewProseBackend() (*ProseBackend, error) {
	if _, err := prose.NewDocument("probe", prose.WithSegmentation(false)); err != nil {
		return nil, fmt.Errorf("loading linguistic model: %w", err)
	}
	return &ProseBackend{}, nil
}

func (b *ProseBackend) Name() string { return "prose" }

// Annotate tags the text with parts of speech, recognizes entities and chunks
// noun phrases from the tag sequence.
func (b *ProseBackend) Annotate(text string) (*Annotation, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	ann := &Annotation{}

	for _, tok := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}

	for _, ent := range doc.Entities() {
		if _, ok := skillEntityLabels[ent.Label]; !ok {
			continue
		}
		ann.Entities = append(ann.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}

	ann.NounPhrases = chunkNounPhrases(ann.Tokens)

	return ann, nil
}

// chunkNounPhrases collects maximal adjective*noun+ runs from the tagged
// token sequence.
func chunkNounPhrases(tokens []Token) []string {
	var phrases []string
	var current []Token

	flush := func() {
		hasNoun := false
		for _, t := range current {
			if t.IsNoun() {
				hasNoun = true
				break
			}
		}
		if hasNoun {
			words := make([]string, 0, len(current))
			for _, t := range current {
				words = append(words, t.Text)
			}
			phrases = append(phrases, strings.Join(words, " "))
		}
		current = current[:0]
	}

	for _, t := range tokens {
		if t.IsNoun() || t.IsAdjective() {
			current = append(current, t)
			continue
		}
		flush()
	}
	flush()

	return phrases
}
