package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emmett/fonemas/internal/config"
	"github.com/emmett/fonemas/internal/engine"
	"github.com/emmett/fonemas/internal/golden"
)

var (
	Version = "dev"

	configFile string
	corpusPath string
	goldenPath string
	engineCmd  string
	jobs       int
	verbose    bool
	debug      bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:     "golden",
	Short:   "Golden-master regression harness for the fonemas transcription engine",
	Version: Version,
	Long: `Captures a trusted baseline of transcription output over a fixed corpus
and compares later engine output against it.

Generate the baseline once to establish trust, then run test after every
engine change:

  golden generate
  golden test --verbose`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			logger = l
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Capture a fresh golden dataset from the corpus",
	Long: `Reads the corpus, transcribes every sentence and writes the golden
dataset file, replacing any previous baseline wholesale. Per-sentence
engine errors are recorded as error entries and do not change the exit
code.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Compare current engine output against the golden dataset",
	Long: `Loads the golden dataset, re-transcribes every entry and reports any
divergence. Exits 0 only when there are no failures and no errors.`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file (default: ~/.fonemasrc or /etc/fonemas/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "Path to the corpus file (default: from config)")
	rootCmd.PersistentFlags().StringVar(&goldenPath, "golden", "", "Path to the golden dataset file (default: from config)")
	rootCmd.PersistentFlags().StringVar(&engineCmd, "engine", "", "Transcription engine command (default: from config)")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 0, "Maximum concurrent transcriptions (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	testCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a result line per sentence and inline diff detail")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(testCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRunner resolves configuration, applies flag overrides and builds
// the runner plus the paths it should operate on.
func newRunner() (*golden.Runner, *config.Config, error) {
	cfg, err := config.LoadWithFallback(configFile)
	if err != nil {
		return nil, nil, err
	}

	if corpusPath != "" {
		cfg.Corpus = corpusPath
	}
	if goldenPath != "" {
		cfg.Golden = goldenPath
	}
	if engineCmd != "" {
		cfg.Engine.Command = engineCmd
	}
	if jobs > 0 {
		cfg.Run.Jobs = jobs
	}
	if verbose {
		cfg.Run.Verbose = true
	}

	runner := golden.NewRunner(
		engine.NewExec(cfg.Engine.Command, cfg.Engine.Args...),
		golden.Config{
			Options: cfg.Options(),
			Jobs:    cfg.Run.Jobs,
			Verbose: cfg.Run.Verbose,
			Out:     os.Stdout,
			Logger:  logger,
		},
	)
	return runner, cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	runner, cfg, err := newRunner()
	if err != nil {
		return err
	}

	fmt.Println("Generating golden dataset from corpus...")
	fmt.Printf("Reading from: %s\n", cfg.Corpus)

	if _, err := runner.GenerateFile(cmd.Context(), cfg.Corpus, cfg.Golden); err != nil {
		return err
	}

	fmt.Println("\n✓ Golden dataset generated successfully!")
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	runner, cfg, err := newRunner()
	if err != nil {
		return err
	}

	summary, err := runner.TestFile(cmd.Context(), cfg.Golden)
	if err != nil {
		return err
	}

	golden.WriteSummary(os.Stdout, summary)

	if code := golden.ExitCode(summary); code != 0 {
		logger.Sync()
		os.Exit(code)
	}
	return nil
}
