package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/midlaj-muhammed/expert-journey/internal/ai"
	"github.com/midlaj-muhammed/expert-journey/internal/ai/gemini"
	"github.com/midlaj-muhammed/expert-journey/internal/document"
	"github.com/midlaj-muhammed/expert-journey/internal/logger"
	"github.com/midlaj-muhammed/expert-journey/internal/nlp"
	"github.com/midlaj-muhammed/expert-journey/internal/recommend"
	"github.com/midlaj-muhammed/expert-journey/internal/report"
	"github.com/midlaj-muhammed/expert-journey/internal/samples"
	"github.com/midlaj-muhammed/expert-journey/internal/scoring"
	"github.com/midlaj-muhammed/expert-journey/internal/secrets"
)

const (
	PromptShowKeywords = "Show all missing keywords"
	PromptDumpReport   = "Dump report to file"
	PromptExit         = "Exit"

	defaultMissingKeywordDisplay = 15
)

var errExit = errors.New("exit requested")

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "resume file to analyze (pdf, docx or txt)")
	analyzeCmd.Flags().String("job", "", "job description file (pdf, docx or txt)")
	analyzeCmd.Flags().String("job-text", "", "job description given inline")
	analyzeCmd.Flags().String("sample", "", "use a built-in sample job description by title")
	analyzeCmd.Flags().Bool("no-input", false, "skip all interactive prompts")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		log.Fatalf("marking resume flag required: %v", err)
	}
}

// analyze is the main command of the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	logger.Info("starting the expert-journey analysis", zap.String("version", version))

	noInput, _ := cmd.Flags().GetBool("no-input")

	resumeText, err := loadResume(cmd)
	if err != nil {
		logger.Fatal("loading the resume", zap.Error(err))
	}
	if resumeText == "" {
		logger.Fatal("the resume parsed successfully but contains no text")
	}

	jobText, err := loadJob(cmd, noInput)
	if err != nil {
		logger.Fatal("loading the job description", zap.Error(err))
	}
	if strings.TrimSpace(jobText) == "" {
		logger.Fatal("a job description is required",
			zap.String("hint", "pass --job, --job-text or --sample"),
		)
	}

	extractor, tier := buildExtractor(config, logger)
	scorer := scoring.NewScorer(stopWords(config), extractor)
	synthesizer := recommend.NewSynthesizer(extractor, scorer, logger)

	rep := &report.Report{
		RunID:           runID,
		Score:           scorer.Score(resumeText, jobText),
		Tier:            tier,
		MissingKeywords: scorer.MissingKeywords(resumeText, jobText),
		Recommendations: synthesizer.Generate(resumeText, jobText),
	}

	logger.Info("analysis finished",
		zap.Int("score", rep.Score),
		zap.String("band", rep.Band()),
		zap.Int("missing_keywords", len(rep.MissingKeywords)),
		zap.Int("recommendations", len(rep.Recommendations)),
	)

	if advisor := prepareAdvisor(ctx, config.AI, logger); advisor != nil {
		advice, err := advisor.Advise(ctx, rep, resumeText, jobText)
		if err != nil {
			logger.Warn("skipping AI advice", zap.Error(err))
		} else {
			rep.Advice = advice
		}
	}

	printReport(rep, config.Limits.MissingKeywords)

	if noInput {
		return
	}

	prompt := promptui.Select{
		Label: "Next?",
		Items: []string{PromptShowKeywords, PromptDumpReport, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, rep, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, rep *report.Report, logger *zap.Logger) error {
	switch action {
	case PromptShowKeywords:
		if len(rep.MissingKeywords) == 0 {
			fmt.Println("No missing keywords found.")
			return nil
		}
		fmt.Println(strings.Join(rep.MissingKeywords, ", "))
		return nil
	case PromptDumpReport:
		filename, err := rep.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// loadResume extracts the text of the resume file given via flag.
func loadResume(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("resume")
	text, err := document.ExtractFile(path)
	if err != nil {
		return "", fmt.Errorf("extracting %q: %w", path, err)
	}
	return text, nil
}

// loadJob resolves the job description: a file, inline text, a sample title,
// or an interactive sample selection as the last resort.
func loadJob(cmd *cobra.Command, noInput bool) (string, error) {
	if path, _ := cmd.Flags().GetString("job"); path != "" {
		text, err := document.ExtractFile(path)
		if err != nil {
			return "", fmt.Errorf("extracting %q: %w", path, err)
		}
		return text, nil
	}

	if text, _ := cmd.Flags().GetString("job-text"); strings.TrimSpace(text) != "" {
		return text, nil
	}

	if title, _ := cmd.Flags().GetString("sample"); title != "" {
		job, ok := samples.Find(title)
		if !ok {
			return "", fmt.Errorf("no sample job named %q; run '%s samples' to list them", title, app)
		}
		return job.Description, nil
	}

	if noInput {
		return "", nil
	}

	titles := samples.Titles()
	prompt := promptui.Select{
		Label: "Choose a sample job description",
		Items: titles,
		Size:  len(titles),
	}

	_, title, err := prompt.Run()
	if err != nil {
		return "", err
	}

	job, _ := samples.Find(title)
	return job.Description, nil
}

// buildExtractor constructs the term extractor, preferring the linguistic
// backend and degrading to lexical heuristics when it cannot load.
func buildExtractor(config *Config, logger *zap.Logger) (*nlp.Extractor, string) {
	stop := stopWords(config)

	backend, err := nlp.NewProseBackend()
	if err != nil {
		logger.Warn("linguistic backend unavailable, using lexical extraction",
			zap.Error(err),
		)
		return nlp.NewExtractor(stop, nil, config.TechTerms...), report.TierLexical
	}

	logger.Debug("linguistic backend loaded", zap.String("backend", backend.Name()))
	return nlp.NewExtractor(stop, backend, config.TechTerms...), report.TierLinguistic
}

func stopWords(config *Config) *nlp.StopWords {
	return nlp.NewStopWords(config.StopWords...)
}

func prepareAdvisor(ctx context.Context, config *AIConfig, logger *zap.Logger) ai.Advisor {
	if config == nil || !config.Enabled {
		return nil
	}

	advisor, err := newGeminiAdvisor(ctx, config, logger)
	if err != nil {
		logger.Warn("skipping AI advice", zap.Error(err))
		return nil
	}

	return advisor
}

func newGeminiAdvisor(ctx context.Context, cfg *AIConfig, l *zap.Logger) (ai.Advisor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai advice is enabled")
	}

	keyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("gemini-api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.WithProvider(l, "gemini", generator.Model())

	return gemini.NewAdvisor(generator, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength, advisorLogger), nil
}

// printReport renders the analysis for the user. Logging stays structured;
// the report itself is plain human-readable output.
func printReport(rep *report.Report, keywordDisplay int) {
	fmt.Printf("\nMatch score: %d%% (%s match)\n", rep.Score, rep.Band())

	switch rep.Band() {
	case "strong":
		fmt.Println("Excellent match! Your resume aligns well with this job.")
	case "moderate":
		fmt.Println("Good potential! With some improvements, your resume could be a better fit.")
	default:
		fmt.Println("Room for improvement. Consider incorporating more relevant keywords and skills.")
	}

	if len(rep.MissingKeywords) > 0 {
		shown := rep.MissingKeywords
		if len(shown) > keywordDisplay {
			shown = shown[:keywordDisplay]
		}
		fmt.Printf("\nMissing keywords: %s\n", strings.Join(shown, ", "))
	}

	for _, rec := range rep.Recommendations {
		fmt.Printf("\n%s\n", rec.Title)
		if rec.Text != "" {
			fmt.Printf("  %s\n", rec.Text)
		}
		for _, item := range rec.Items {
			fmt.Printf("  - %s\n", item)
		}
	}

	if rep.Advice != nil {
		fmt.Printf("\nAI advice\n")
		if rep.Advice.Summary != "" {
			fmt.Printf("  %s\n", rep.Advice.Summary)
		}
		for _, s := range rep.Advice.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	fmt.Println()
}
