package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/midlaj-muhammed/expert-journey/internal/report"
	"github.com/midlaj-muhammed/expert-journey/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryBackoff        = 2 * time.Second
)

// Advisor asks Gemini to rewrite the mechanical analysis into tailored
// advice. Failures are returned to the caller, which treats them as a missing
// enrichment, never as an analysis failure.
type Advisor struct {
	generator  contentGenerator
	maxRetries int
	maxLogLen  int
	logger     *zap.Logger
}

// NewAdvisor builds the advisor around a content generator.
func NewAdvisor(generator contentGenerator, maxRetries, maxLogLength int, logger *zap.Logger) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator:  generator,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
		logger:     logger,
	}
}

// Advise builds the coaching prompt from the report and both texts and parses
// the structured response.
func (a *Advisor) Advise(ctx context.Context, rep *report.Report, resumeText, jobText string) (*report.Advice, error) {
	if rep == nil {
		return nil, errors.New("report is required")
	}
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return nil, errors.New("resume and job texts are required")
	}

	reportJSON, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report payload: %w", err)
	}

	prompt := buildPrompt(string(reportJSON), resumeText, jobText)

	a.logger.Debug("gemini advice request",
		zap.String("run_id", rep.RunID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generateWithRetries(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini advice response",
		zap.String("run_id", rep.RunID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseAdvice(raw)
	if err != nil {
		return nil, err
	}

	advice.Raw = raw
	return advice, nil
}

func (a *Advisor) generateWithRetries(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			a.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, retryBackoff); err != nil {
				return "", err
			}
		}

		raw, err := a.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", a.maxRetries+1, lastErr)
}

func buildPrompt(reportJSON, resumeText, jobText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Report:\n{{REPORT_JSON}}\n\nResume:\n{{RESUME_TEXT}}\n\nJob:\n{{JOB_TEXT}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{REPORT_JSON}}", reportJSON)
	prompt = strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
	prompt = strings.ReplaceAll(prompt, "{{JOB_TEXT}}", jobText)
	return prompt
}

func parseAdvice(raw string) (*report.Advice, error) {
	cleaned := extractJSON(raw)

	var data struct {
		Summary     string `json:"summary"`
		Suggestions []any  `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	advice := &report.Advice{
		Summary: strings.TrimSpace(data.Summary),
	}

	for _, item := range data.Suggestions {
		if s := coerceString(item); s != "" {
			advice.Suggestions = append(advice.Suggestions, s)
		}
	}

	if advice.Summary == "" && len(advice.Suggestions) == 0 {
		return nil, errors.New("gemini response carried no advice")
	}

	return advice, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
