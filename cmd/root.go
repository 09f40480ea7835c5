// =============================================================================
// Payroll File Encoder - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command all subcommands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (payfile)
//   ├── generateCmd (payfile generate)  - CNAB240 salary remittance
//   ├── eventsCmd   (payfile events)    - eSocial compliance events
//   ├── checkCmd    (payfile check)     - structural check of event XML
//   └── versionCmd  (payfile version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the main configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "payfile",
	Short: "Payroll file encoder - CNAB240 remittances and eSocial events",
	Long: `payfile encodes payroll runs exported by the HR portal into the two
externally specified compliance formats:

  - A FEBRABAN CNAB240 salary-credit remittance file instructing the bank
    to pay each beneficiary (fixed-width, 240-character records).
  - eSocial XML events for statutory reporting: worker remuneration
    (evtRemun), beneficiary payments (evtPgtos) and the period-closing
    declaration (evtFechaEvPer).

Both consumers validate files on receipt with no feedback channel before
submission, so output is byte-exact and deterministic for identical input.

Example Usage:
  payfile generate --file folha_082026.xlsx --sequence 12
  payfile events --file eventos_082026.yaml
  payfile check output/*.xml`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// LOGGING
// =============================================================================

// newLogger builds the CLI logger. The --verbose flag wins over the
// configured level.
func newLogger(configuredLevel string) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(configuredLevel); err == nil {
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than refusing to run.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
