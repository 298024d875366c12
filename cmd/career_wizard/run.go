package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamau/career-compass/internal/config"
	"github.com/kamau/career-compass/internal/observability"
	"github.com/kamau/career-compass/internal/parsing"
	"github.com/kamau/career-compass/internal/questions"
	"github.com/kamau/career-compass/internal/submit"
	"github.com/kamau/career-compass/internal/wizard"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive four-step assessment",
	Long: `Walks through the assessment steps: personality questions -> academic scores -> interests -> results.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values; the CAREER_API_BASE environment variable overrides the built-in API base default.`,
	RunE: runWizardCmd,
}

var (
	runConfigPath string
	runAPIBase    string
	runQuestions  string
	runName       string
	runEmail      string
	runTimeout    int
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVar(&runAPIBase, "api-base", "", "Base URL of the recommendation service")
	runCommand.Flags().StringVarP(&runQuestions, "questions", "q", "", "Path to an alternate question source document")
	runCommand.Flags().StringVarP(&runName, "name", "n", "", "Prefill the full name field")
	runCommand.Flags().StringVar(&runEmail, "email", "", "Prefill the email field")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 0, "HTTP timeout in seconds for service calls")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

// resolveConfig layers flag values over the config file over the environment
// over the documented defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("api-base") {
		cfg.APIBase = runAPIBase
	}
	if cmd.Flags().Changed("questions") {
		cfg.Questions = runQuestions
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = runName
	}
	if cmd.Flags().Changed("email") {
		cfg.Email = runEmail
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = runTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func runWizardCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	document, err := questions.Load(cfg.Questions)
	if err != nil {
		return err
	}
	questionList := parsing.ParseQuestions(document)
	logger.Debug("question document parsed", zap.Int("questions", len(questionList)))

	clientOpts := submit.DefaultOptions()
	if cfg.TimeoutSeconds > 0 {
		clientOpts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := submit.NewClient(cfg.APIBase, logger, clientOpts)

	w := wizard.New(questionList, client, logger)
	if cfg.Name != "" {
		w.SetName(cfg.Name)
	}
	if cfg.Email != "" {
		w.SetEmail(cfg.Email)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintQuestions(questionList)
	}

	return runInteractive(ctx, w, printer, cfg.Verbose)
}
