// =============================================================================
// Payroll File Encoder - Main Entry Point
// =============================================================================
//
// This is the main entry point for the payfile CLI. It initializes the
// Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   payfile generate  - Encode payroll sheets into CNAB240 remittances
//   payfile events    - Build eSocial XML events for a period
//   payfile check     - Structurally check generated event XML
//   payfile version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : encoding core (cnab, esocial, format) and supporting
//                  modules (config, xlsxinput)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/sigrhx/payfile/cmd"
)

// main simply calls Execute from the cmd package, which initializes and
// runs the Cobra CLI.
func main() {
	cmd.Execute()
}
