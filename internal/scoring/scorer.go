package scoring

import (
	"math"
	"strings"

	"github.com/midlaj-muhammed/expert-journey/internal/nlp"
)

// Scorer computes a 0-100 similarity score between a resume and a job
// description. The primary method is TF-IDF cosine similarity over the two
// texts; keyword overlap is the fallback when the vocabulary degenerates.
// Stateless across calls and safe for shared use.
type Scorer struct {
	stop      *nlp.StopWords
	extractor *nlp.Extractor
}

// NewScorer builds a scorer sharing the stop word set and the term extractor
// used for the fallback path.
func NewScorer(stop *nlp.StopWords, extractor *nlp.Extractor) *Scorer {
	return &Scorer{stop: stop, extractor: extractor}
}

// Score returns the match percentage between the resume and the job
// description, always within [0, 100]. Either input empty yields 0.
func (s *Scorer) Score(resumeText, jobText string) int {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0
	}

	resumeTokens := s.vectorTokens(resumeText)
	jobTokens := s.vectorTokens(jobText)

	va, vb, ok := tfidfVectors(resumeTokens, jobTokens)
	if !ok {
		return s.keywordOverlap(resumeText, jobText)
	}

	return clampScore(math.Round(cosine(va, vb) * 100))
}

// vectorTokens are the normalized whitespace tokens with stop words removed.
func (s *Scorer) vectorTokens(text string) []string {
	var out []string
	for _, word := range strings.Fields(nlp.Normalize(text)) {
		if s.stop.Has(word) {
			continue
		}
		out = append(out, word)
	}
	return out
}

// keywordOverlap scores by the share of job keywords also present in the
// resume. The job-side denominator makes the operation asymmetric on purpose.
func (s *Scorer) keywordOverlap(resumeText, jobText string) int {
	jobKeywords := s.extractor.Keywords(jobText, nlp.JobKeywordLimit)
	if len(jobKeywords) == 0 {
		return 0
	}

	resumeKeywords := make(map[string]struct{}, nlp.ResumeKeywordLimit)
	for _, kw := range s.extractor.Keywords(resumeText, nlp.ResumeKeywordLimit) {
		resumeKeywords[kw] = struct{}{}
	}

	matching := 0
	for _, kw := range jobKeywords {
		if _, ok := resumeKeywords[kw]; ok {
			matching++
		}
	}

	return clampScore(math.Round(float64(matching) / float64(len(jobKeywords)) * 100))
}

// MissingKeywords returns the top job keywords absent from the resume, in
// job-side frequency order.
func (s *Scorer) MissingKeywords(resumeText, jobText string) []string {
	jobKeywords := s.extractor.Keywords(jobText, nlp.JobKeywordLimit)
	if len(jobKeywords) == 0 {
		return nil
	}

	resumeKeywords := make(map[string]struct{}, nlp.ResumeKeywordLimit)
	for _, kw := range s.extractor.Keywords(resumeText, nlp.ResumeKeywordLimit) {
		resumeKeywords[kw] = struct{}{}
	}

	var missing []string
	for _, kw := range jobKeywords {
		if _, ok := resumeKeywords[kw]; !ok {
			missing = append(missing, kw)
		}
	}
	return missing
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
