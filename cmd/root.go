package cmd

import (
	"errors"
	"log"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "expert-journey"
)

// Config is the optional YAML configuration of the CLI. Everything has a
// working default; the file only tunes the analysis.
type Config struct {
	// StopWords are extra terms excluded from keyword extraction.
	StopWords []string `mapstructure:"stop-words"`
	// TechTerms extend the built-in technical skill vocabulary.
	TechTerms []string `mapstructure:"tech-terms"`
	Limits    *LimitsConfig
	AI        *AIConfig `mapstructure:"ai"`
}

// LimitsConfig tunes the display caps of the analysis report.
type LimitsConfig struct {
	// MissingKeywords caps the missing-keyword list printed with the score.
	MissingKeywords int `mapstructure:"missing-keywords"`
}

// AIConfig gates the optional Gemini advice enrichment.
type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig stores Gemini provider configuration.
type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "expert-journey matches a resume against a job description and suggests improvements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("gemini-api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is expert-journey.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; an unparseable one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}

	limits, err := decodeLimits(viper.Get("limits"))
	if err != nil {
		return nil, err
	}
	config.Limits = limits

	return config, nil
}

// decodeLimits decodes the limits section weakly typed, so "15" and 15 both
// work in the YAML.
func decodeLimits(raw any) (*LimitsConfig, error) {
	limits := &LimitsConfig{MissingKeywords: defaultMissingKeywordDisplay}
	if raw == nil {
		return limits, nil
	}

	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           limits,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	if limits.MissingKeywords <= 0 {
		limits.MissingKeywords = defaultMissingKeywordDisplay
	}

	return limits, nil
}
