package recommend

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/midlaj-muhammed/expert-journey/internal/nlp"
	"github.com/midlaj-muhammed/expert-journey/internal/scoring"
)

func newTestSynthesizer() *Synthesizer {
	stop := nlp.NewStopWords()
	extractor := nlp.NewExtractor(stop, nil)
	scorer := scoring.NewScorer(stop, extractor)

	return NewSynthesizer(extractor, scorer, zap.NewNop())
}

func TestGenerateEmptyInputs(t *testing.T) {
	s := newTestSynthesizer()

	if got := s.Generate("", "some job"); got != nil {
		t.Fatalf("expected no recommendations for empty resume, got %v", got)
	}

	if got := s.Generate("some resume", "  "); got != nil {
		t.Fatalf("expected no recommendations for blank job, got %v", got)
	}
}

func TestGenerateFullPipelineOrder(t *testing.T) {
	s := newTestSynthesizer()

	resume := "Python developer"
	job := "Kubernetes and AWS engineer needed. Docker required."

	recs := s.Generate(resume, job)

	var kinds []Kind
	for _, rec := range recs {
		kinds = append(kinds, rec.Kind)
	}

	want := []Kind{KindMissingKeywords, KindMissingSkills, KindLengthWarning, KindGeneralAdvice}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected rule order %v, got %v", want, kinds)
	}
}

func TestGenerateWellMatchedLongResume(t *testing.T) {
	s := newTestSynthesizer()

	job := "Python developer with Docker"
	resume := strings.Repeat("Python developer with Docker production services ", 40)

	recs := s.Generate(resume, job)

	if len(recs) != 1 {
		t.Fatalf("expected only general advice, got %d recommendations", len(recs))
	}
	if recs[0].Kind != KindGeneralAdvice {
		t.Fatalf("expected general advice, got %s", recs[0].Kind)
	}
}

func TestGeneralAdviceContent(t *testing.T) {
	s := newTestSynthesizer()

	recs := s.Generate("a resume", "a job")

	var general *Recommendation
	count := 0
	for i := range recs {
		if recs[i].Kind == KindGeneralAdvice {
			general = &recs[i]
			count++
		}
	}

	if count != 1 {
		t.Fatalf("expected exactly one general advice record, got %d", count)
	}
	if len(general.Items) != 4 {
		t.Fatalf("expected 4 general advice items, got %d", len(general.Items))
	}
	if general.Title != "General improvements" {
		t.Fatalf("unexpected title: %s", general.Title)
	}
}

func TestMissingKeywordsRuleLimit(t *testing.T) {
	s := newTestSynthesizer()

	job := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda omicron sigma"
	recs := s.Generate("unrelated resume text", job)

	if len(recs) == 0 || recs[0].Kind != KindMissingKeywords {
		t.Fatalf("expected a missing keywords record first, got %v", recs)
	}
	if len(recs[0].Items) != missingKeywordsLimit {
		t.Fatalf("expected %d keyword items, got %d", missingKeywordsLimit, len(recs[0].Items))
	}
}

func TestLengthRuleBoundary(t *testing.T) {
	rule := &lengthRule{minWords: minResumeWords}

	short := Input{Resume: strings.TrimSpace(strings.Repeat("word ", minResumeWords-1)), Job: "job"}
	if _, ok := rule.Apply(Deps{}, short); !ok {
		t.Fatalf("expected the length warning for %d words", minResumeWords-1)
	}

	exact := Input{Resume: strings.TrimSpace(strings.Repeat("word ", minResumeWords)), Job: "job"}
	if _, ok := rule.Apply(Deps{}, exact); ok {
		t.Fatalf("expected no length warning for %d words", minResumeWords)
	}
}
