// =============================================================================
// Payroll File Encoder - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which turns a payroll XLSX
// export into a CNAB240 salary remittance file.
//
// COMMAND USAGE:
//   payfile generate [flags]
//
// FLAGS:
//   --file      : A specific payroll sheet to process (otherwise every
//                 *.xlsx in the input directory is processed)
//   --sequence  : File sequence number (NSA) for the remittance header
//   --dry-run   : Encode but do not write or archive anything
//
// PIPELINE:
//   1. Load configuration
//   2. Discover (or take) the payroll sheet(s)
//   3. Parse beneficiary payment rows
//   4. Assemble the batch aggregate and encode it
//   5. Write the .rem output file
//   6. Archive the processed input
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sigrhx/payfile/internal/cnab"
	"github.com/sigrhx/payfile/internal/config"
	"github.com/sigrhx/payfile/internal/xlsxinput"
	"github.com/sigrhx/payfile/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// generateFile is a specific payroll sheet to process.
var generateFile string

// generateSequence is the file sequence number (NSA) for the batch.
var generateSequence int

// generateDryRun encodes without writing or archiving.
var generateDryRun bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Encode payroll sheets into CNAB240 salary remittance files",
	Long: `The generate command reads beneficiary payment rows from a payroll
XLSX export, assembles a single-lot CNAB240 batch for the configured
originator account, and writes the remittance (.rem) file.

The sequence number must match the NSA agreed with the bank; the bank
rejects files whose sequence it has already consumed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// init registers the generate command and its flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFile, "file", "", "Payroll sheet to process (default: every *.xlsx in the input directory)")
	generateCmd.Flags().IntVar(&generateSequence, "sequence", 1, "File sequence number (NSA) for the remittance header")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Encode without writing output or archiving input")
}

// =============================================================================
// PIPELINE
// =============================================================================

// runGenerate executes the remittance pipeline.
func runGenerate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir, cfg.OutputNameFormat)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	files := []string{generateFile}
	if generateFile == "" {
		files, err = fm.DiscoverInputFiles("*.xlsx")
		if err != nil {
			return err
		}
		if len(files) == 0 {
			log.Warnf("no payroll sheets found in %s", cfg.InputDir)
			return nil
		}
	}

	sequence := generateSequence
	for _, file := range files {
		if err := generateOne(cfg, fm, log, file, sequence); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		sequence++
	}

	return nil
}

// generateOne encodes a single payroll sheet.
func generateOne(cfg *config.Config, fm *utils.FileManager, log *zap.SugaredLogger, file string, sequence int) error {
	log.Infof("processing payroll sheet %s", file)

	payments, err := xlsxinput.Parse(file)
	if err != nil {
		return err
	}
	log.Debugf("parsed %d payment rows", len(payments))

	batch := cnab.Batch{
		Originator: cnab.OriginatorAccount{
			TaxID:        cfg.Originator.TaxID,
			Name:         cfg.Originator.Name,
			BankCode:     cfg.Originator.BankCode,
			BankName:     cfg.Originator.BankName,
			Branch:       cfg.Originator.Branch,
			BranchCheck:  cfg.Originator.BranchCheck,
			Account:      cfg.Originator.Account,
			AccountCheck: cfg.Originator.AccountCheck,
			Agreement:    cfg.Originator.Agreement,
			State:        cfg.Originator.State,
		},
		Payments:    payments,
		Sequence:    sequence,
		GeneratedAt: time.Now(),
	}

	blob, err := cnab.Encode(batch)
	if err != nil {
		return err
	}
	log.Debugf("encoded %d beneficiaries, total %s", len(payments), batch.Total().StringFixed(2))

	if generateDryRun {
		log.Infof("dry run: skipping write and archive for %s", file)
		return nil
	}

	outPath, err := fm.WriteOutput(fm.OutputName(sequence, ".rem"), []byte(blob))
	if err != nil {
		return err
	}
	log.Infof("wrote remittance to %s", outPath)

	archived, err := fm.ArchiveInputFile(file)
	if err != nil {
		return err
	}
	log.Debugf("archived input to %s", archived)

	return nil
}
