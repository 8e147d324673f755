package ai

import (
	"context"

	"github.com/midlaj-muhammed/expert-journey/internal/report"
)

// Advisor turns a finished analysis report into tailored prose advice. The
// core report never depends on an Advisor being configured or reachable.
type Advisor interface {
	Advise(ctx context.Context, rep *report.Report, resumeText, jobText string) (*report.Advice, error)
}
