package nlp

// Token is a single word with its part-of-speech tag (Penn Treebank).
type Token struct {
	Text string
	Tag  string
}

// Entity is a recognized named-entity span.
type Entity struct {
	Text  string
	Label string
}

// Annotation is the linguistic analysis of one text.
type Annotation struct {
	Tokens      []Token
	Entities    []Entity
	NounPhrases []string
}

// Backend is the optional linguistic-analysis engine behind the Extractor.
// Implementations must be safe for reuse across calls; per-call state stays in
// the returned Annotation. A nil Backend switches the Extractor to lexical
// heuristics.
type Backend interface {
	Name() string
	Annotate(text string) (*Annotation, error)
}

// IsNoun reports whether the tag marks a noun or proper noun.
func (t Token) IsNoun() bool {
	switch t.Tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// IsAdjective reports whether the tag marks an adjective.
func (t Token) IsAdjective() bool {
	switch t.Tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}
