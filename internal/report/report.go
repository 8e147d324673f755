// Package report defines the plain-data result of one analysis run for the
// presentation layer and the optional AI enrichment to consume.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/midlaj-muhammed/expert-journey/internal/recommend"
)

// Tier names the extraction tier that produced the analysis.
const (
	TierLinguistic = "linguistic"
	TierLexical    = "lexical"
)

// Advice is the optional AI-generated enrichment of a report.
type Advice struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions,omitempty"`
	Raw         string   `json:"-"`
}

// Report is the full outcome of matching one resume against one job
// description. Freshly built per invocation, never mutated afterwards.
type Report struct {
	RunID           string                     `json:"run_id"`
	Score           int                        `json:"score"`
	Tier            string                     `json:"tier"`
	MissingKeywords []string                   `json:"missing_keywords,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Advice          *Advice                    `json:"advice,omitempty"`
}

// Band classifies the score the way the presentation layer interprets it.
func (r *Report) Band() string {
	switch {
	case r.Score >= 70:
		return "strong"
	case r.Score >= 50:
		return "moderate"
	default:
		return "weak"
	}
}

// DumpToTmpFile writes the report as indented JSON to a temporary file and
// returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	f, err := os.CreateTemp("", "expert-journey-report-*.json")
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}

	return f.Name(), nil
}
