// =============================================================================
// Payroll File Encoder - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration: where
// input sheets and generated files live, how output files are named, and
// the originator account / employer identity blocks that are constant per
// installation and therefore belong in config rather than in every payroll
// export.
//
// CONFIGURATION FILE (config.yaml):
//   Directories, logging, output naming, the originator bank account for
//   CNAB240 remittances, and the eSocial employer defaults.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sigrhx/payfile/internal/format"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory where payroll XLSX exports are placed.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated remittance and event
	// files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed input files are moved
	// after successful generation.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the output file name pattern.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Generation timestamp (YYYYMMDD_HHMMSS)
	//   {sequence}  - The batch/file sequence number
	// Default: "folha_{sequence}_{timestamp}"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// ORIGINATOR ACCOUNT (CNAB240)
	// =========================================================================

	// Originator identifies the paying entity and its bank account.
	Originator Originator `yaml:"originator"`

	// =========================================================================
	// ESOCIAL DEFAULTS
	// =========================================================================

	// ESocial carries the per-installation eSocial event defaults.
	ESocial ESocial `yaml:"esocial"`
}

// Originator is the bank account block written into CNAB240 headers.
type Originator struct {
	// TaxID is the originator CNPJ.
	TaxID string `yaml:"tax_id"`

	// Name is the legal entity name.
	Name string `yaml:"name"`

	// BankCode is the 3-digit FEBRABAN bank code.
	BankCode string `yaml:"bank_code"`

	// BankName is the bank's registered name.
	BankName string `yaml:"bank_name"`

	// Branch and BranchCheck identify the originating agência.
	Branch      string `yaml:"branch"`
	BranchCheck string `yaml:"branch_check"`

	// Account and AccountCheck identify the originating account.
	Account      string `yaml:"account"`
	AccountCheck string `yaml:"account_check"`

	// Agreement is the salary-payment agreement (convênio) code.
	Agreement string `yaml:"agreement"`

	// State is the two-letter state code for the lot header.
	State string `yaml:"state"`
}

// ESocial carries the defaults for event headers and the employer block.
type ESocial struct {
	// Environment is 1 (production) or 2 (pre-production).
	// Default: 2
	Environment int `yaml:"environment"`

	// ProcVersion is the emitting application version (verProc).
	ProcVersion string `yaml:"proc_version"`

	// EmployerTaxIDKind is 1 (CNPJ) or 2 (CPF).
	// Default: 1
	EmployerTaxIDKind int `yaml:"employer_tax_id_kind"`

	// EmployerTaxID is the employer tax ID. Defaults to the originator
	// TaxID when empty.
	EmployerTaxID string `yaml:"employer_tax_id"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "folha_{sequence}_{timestamp}"
	}
	if cfg.ESocial.Environment == 0 {
		cfg.ESocial.Environment = 2
	}
	if cfg.ESocial.EmployerTaxIDKind == 0 {
		cfg.ESocial.EmployerTaxIDKind = 1
	}
	if cfg.ESocial.EmployerTaxID == "" {
		cfg.ESocial.EmployerTaxID = cfg.Originator.TaxID
	}
	if cfg.ESocial.ProcVersion == "" {
		cfg.ESocial.ProcVersion = "1.0"
	}
}

// validate rejects configurations no valid file can be generated from and
// creates the working directories.
func validate(cfg *Config) error {
	if format.Digits(cfg.Originator.TaxID) == "" {
		return fmt.Errorf("originator.tax_id is required")
	}
	if format.Digits(cfg.Originator.BankCode) == "" {
		return fmt.Errorf("originator.bank_code is required")
	}

	for _, dir := range []string{cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}
