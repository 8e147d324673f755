package scoring

import (
	"reflect"
	"testing"

	"github.com/midlaj-muhammed/expert-journey/internal/nlp"
)

func newTestScorer() *Scorer {
	stop := nlp.NewStopWords()
	return NewScorer(stop, nlp.NewExtractor(stop, nil))
}

func TestScoreEmptyInputs(t *testing.T) {
	scorer := newTestScorer()

	if got := scorer.Score("", "some job"); got != 0 {
		t.Fatalf("expected 0 for empty resume, got %d", got)
	}

	if got := scorer.Score("some resume", "   "); got != 0 {
		t.Fatalf("expected 0 for blank job, got %d", got)
	}
}

func TestScoreIdenticalTexts(t *testing.T) {
	scorer := newTestScorer()

	text := "Python developer building containerized services with Kubernetes"
	if got := scorer.Score(text, text); got != 100 {
		t.Fatalf("expected 100 for identical texts, got %d", got)
	}
}

func TestScoreBoundsAndOrdering(t *testing.T) {
	scorer := newTestScorer()

	resume := "Python developer with Docker and Kubernetes background"
	closeJob := "Looking for a Python developer familiar with Kubernetes"
	farJob := "Hiring a pastry chef for a bakery kitchen"

	closeScore := scorer.Score(resume, closeJob)
	farScore := scorer.Score(resume, farJob)

	for _, score := range []int{closeScore, farScore} {
		if score < 0 || score > 100 {
			t.Fatalf("score out of range: %d", score)
		}
	}

	if closeScore <= farScore {
		t.Fatalf("expected related job to score higher: close=%d far=%d", closeScore, farScore)
	}
}

func TestScoreSymmetricUnderTFIDF(t *testing.T) {
	scorer := newTestScorer()

	a := "Python developer with Docker and Kubernetes background"
	b := "Looking for a Python developer familiar with Kubernetes"

	// Cosine similarity is order-independent; only the overlap fallback
	// is asymmetric.
	if ab, ba := scorer.Score(a, b), scorer.Score(b, a); ab != ba {
		t.Fatalf("expected symmetric tf-idf scores, got %d and %d", ab, ba)
	}
}

func TestScoreDegenerateVocabulary(t *testing.T) {
	scorer := newTestScorer()

	// Every token is a stop word, so both vectors are empty and the
	// fallback has nothing to overlap either.
	if got := scorer.Score("the and of", "with for your"); got != 0 {
		t.Fatalf("expected 0 for stop-word-only texts, got %d", got)
	}
}

func TestKeywordOverlapIsAsymmetric(t *testing.T) {
	scorer := newTestScorer()

	broad := "python java docker kubernetes aws"
	narrow := "python java"

	if got := scorer.keywordOverlap(broad, narrow); got != 100 {
		t.Fatalf("expected full coverage of the narrow job, got %d", got)
	}

	if got := scorer.keywordOverlap(narrow, broad); got != 40 {
		t.Fatalf("expected 40 for partial coverage of the broad job, got %d", got)
	}
}

func TestMissingKeywords(t *testing.T) {
	scorer := newTestScorer()

	resume := "Python and Docker developer"
	job := "Kubernetes and AWS deployment developer"

	got := scorer.MissingKeywords(resume, job)
	want := []string{"kubernetes", "aws", "deployment"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected missing keywords %v, got %v", want, got)
	}
}

func TestMissingKeywordsIdenticalTexts(t *testing.T) {
	scorer := newTestScorer()

	text := "Senior Go engineer with Kubernetes"
	if got := scorer.MissingKeywords(text, text); got != nil {
		t.Fatalf("expected no missing keywords, got %v", got)
	}
}

func TestMissingKeywordsEmptyJob(t *testing.T) {
	scorer := newTestScorer()

	if got := scorer.MissingKeywords("anything", ""); got != nil {
		t.Fatalf("expected no missing keywords for empty job, got %v", got)
	}
}
