package recommend

import (
	"strings"

	"go.uber.org/zap"

	"github.com/midlaj-muhammed/expert-journey/internal/nlp"
	"github.com/midlaj-muhammed/expert-journey/internal/scoring"
)

// Kind tags a recommendation record.
type Kind string

const (
	KindMissingKeywords Kind = "missing-keywords"
	KindMissingSkills   Kind = "missing-skills"
	KindLengthWarning   Kind = "length-warning"
	KindGeneralAdvice   Kind = "general-advice"
)

// Recommendation is one improvement suggestion. Content is either an ordered
// item list or a single text, never both.
type Recommendation struct {
	Kind  Kind     `json:"kind"`
	Title string   `json:"title"`
	Items []string `json:"items,omitempty"`
	Text  string   `json:"text,omitempty"`
}

// Deps aggregates the collaborators shared across all rules.
type Deps struct {
	Extractor *nlp.Extractor
	Scorer    *scoring.Scorer
	Logger    *zap.Logger
}

// Input carries the two texts one synthesis call operates on.
type Input struct {
	Resume string
	Job    string
}

// Rule produces at most one recommendation for the given input.
type Rule interface {
	Name() string
	Apply(deps Deps, in Input) (*Recommendation, bool)
}

// Synthesizer runs an ordered rule pipeline over a resume/job pair.
type Synthesizer struct {
	deps  Deps
	rules []Rule
}

// NewSynthesizer builds the synthesizer with the default rule order: missing
// keywords, missing skills, length warning, general advice.
func NewSynthesizer(extractor *nlp.Extractor, scorer *scoring.Scorer, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Synthesizer{
		deps: Deps{Extractor: extractor, Scorer: scorer, Logger: logger},
		rules: []Rule{
			&missingKeywordsRule{limit: missingKeywordsLimit},
			&missingSkillsRule{limit: missingSkillsLimit},
			&lengthRule{minWords: minResumeWords},
			&generalAdviceRule{},
		},
	}
}

// Generate runs every rule in order and collects the emitted
// recommendations. Either input empty yields no recommendations.
func (s *Synthesizer) Generate(resumeText, jobText string) []Recommendation {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return nil
	}

	in := Input{Resume: resumeText, Job: jobText}

	var out []Recommendation
	for _, rule := range s.rules {
		rec, ok := rule.Apply(s.deps, in)
		if !ok {
			s.deps.Logger.Debug("recommendation rule skipped", zap.String("rule", rule.Name()))
			continue
		}

		s.deps.Logger.Debug("recommendation rule emitted",
			zap.String("rule", rule.Name()),
			zap.Int("items", len(rec.Items)),
		)
		out = append(out, *rec)
	}

	return out
}
