package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sable/foundation/core/error"
	mdwlog "github.com/msto63/sable/foundation/core/log"
	"github.com/msto63/sable/pkg/core/config"
	"github.com/msto63/sable/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLogger *mdwlog.Logger
)

// errReported marks failures whose diagnostic has already been printed
var errReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "sable",
	Short: "sable - token-stream parser for a small curried Lisp",
	Long: `sable turns token files produced by a lexer into syntax trees.

Token files are YAML or JSON documents with a list of tokens:

  source: id.lisp
  tokens:
    - {kind: lparen, line: 1, col: 1}
    - {kind: def, line: 1, col: 2}
    - {kind: identifier, text: id, line: 1, col: 6}
    ...

Commands:
  parse    - parse a token file and print the forms
  check    - validate token files
  inspect  - browse the parsed forms interactively
  history  - show the parse journal
  serve    - run the gRPC parse service`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SABLE_CONFIG or ./configs/sable.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// setup loads the configuration and installs the default logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}
	appLogger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       level,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	mdwlog.SetDefault(appLogger)

	return nil
}

// loadConfig reads --config, then $SABLE_CONFIG and the default paths.
// A missing config file falls back to the defaults unless --config was given.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) && os.Getenv(config.EnvConfigPath) == "" {
		return config.Default(), nil
	}
	return cfg, err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
